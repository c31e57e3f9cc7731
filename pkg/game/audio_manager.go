package game

import (
	"encoding/binary"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const (
	// CueSampleRate 音效采样率（16 位立体声 PCM）
	CueSampleRate = 44100

	// cueVolume 默认音量
	cueVolume = 0.35
)

// AudioManager 音效管理器
// 职责：
//   - 启动时一次性合成所有音效的 PCM 数据
//   - 按 Cue 播放，同一 Cue 再次播放时从头开始
//
// 实现 CuePlayer 接口。
type AudioManager struct {
	context *audio.Context
	pcm     map[Cue][]byte
	players map[Cue]*audio.Player
	volume  float64
	muted   bool
}

// NewAudioManager 创建音效管理器
//
// 参数：
//   - ctx: ebiten 音频上下文，采样率必须与 CueSampleRate 一致；为 nil 时静音
//
// 返回：
//   - *AudioManager: 音效管理器实例
func NewAudioManager(ctx *audio.Context) *AudioManager {
	am := &AudioManager{
		context: ctx,
		pcm:     make(map[Cue][]byte),
		players: make(map[Cue]*audio.Player),
		volume:  cueVolume,
	}

	if ctx == nil {
		am.muted = true
		log.Printf("[AudioManager] No audio context, cues are muted")
		return am
	}
	if ctx.SampleRate() != CueSampleRate {
		log.Printf("[AudioManager] Warning: audio context sample rate %d != %d, cues will be pitched", ctx.SampleRate(), CueSampleRate)
	}

	am.pcm[CueCompanionLine] = synthRobotChirp()
	return am
}

// PlayCue 播放音效提示
func (am *AudioManager) PlayCue(c Cue) {
	if am.muted {
		return
	}

	player := am.getPlayer(c)
	if player == nil {
		return
	}

	player.SetVolume(am.volume)
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind cue %s: %v", c, err)
	}
	player.Play()
}

// SetVolume 设置音量（0.0 - 1.0）
func (am *AudioManager) SetVolume(volume float64) {
	am.volume = math.Max(0, math.Min(1, volume))
}

// SetMuted 开关静音（没有音频上下文时始终静音）
func (am *AudioManager) SetMuted(muted bool) {
	if am.context == nil {
		return
	}
	am.muted = muted
}

// Muted 是否静音
func (am *AudioManager) Muted() bool {
	return am.muted
}

func (am *AudioManager) getPlayer(c Cue) *audio.Player {
	if player, ok := am.players[c]; ok {
		return player
	}

	data, ok := am.pcm[c]
	if !ok {
		log.Printf("[AudioManager] Warning: no samples for cue %s", c)
		return nil
	}

	player := am.context.NewPlayerFromBytes(data)
	am.players[c] = player
	return player
}

// synthRobotChirp 合成机器人说话音效：几段快速切换音高的方波
func synthRobotChirp() []byte {
	notes := []struct {
		freq     float64
		duration float64
	}{
		{660, 0.06},
		{880, 0.05},
		{520, 0.07},
		{990, 0.05},
		{740, 0.08},
	}

	var samples []float64
	for _, n := range notes {
		count := int(n.duration * CueSampleRate)
		for i := 0; i < count; i++ {
			t := float64(i) / CueSampleRate
			v := 1.0
			if math.Sin(2*math.Pi*n.freq*t) < 0 {
				v = -1.0
			}
			// 每段首尾做短淡入淡出，避免爆音
			env := math.Min(1, math.Min(float64(i), float64(count-i))/(0.004*CueSampleRate))
			samples = append(samples, v*env*0.5)
		}
	}

	return encodePCM16Stereo(samples)
}

// encodePCM16Stereo 把 [-1,1] 单声道样本编码为 16 位小端立体声
func encodePCM16Stereo(samples []float64) []byte {
	buf := make([]byte, len(samples)*4)
	for i, s := range samples {
		v := int16(math.Max(-1, math.Min(1, s)) * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}
	return buf
}
