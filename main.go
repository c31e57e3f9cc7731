package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/flowerfield/pkg/app"
	"github.com/decker502/flowerfield/pkg/config"
	"github.com/decker502/flowerfield/pkg/embedded"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "", "从磁盘加载配置文件（默认使用内置 data/game.yaml）")
	seed       = flag.Uint64("seed", 0, "花田随机种子（0 表示使用配置中的种子）")
	skipIntro  = flag.Bool("skip-intro", false, "跳过开场动画")
	mute       = flag.Bool("mute", false, "关闭音效")
)

func main() {
	flag.Parse()

	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Seed:       *seed,
		SkipIntro:  *skipIntro,
		Mute:       *mute,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.GameWindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
