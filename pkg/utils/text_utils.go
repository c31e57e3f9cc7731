// Package utils 提供与具体玩法无关的绘制辅助函数
package utils

import (
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// WrapText 将文本按指定宽度自动换行
// 参数:
//   - textStr: 要换行的文本，可包含 '\n'
//   - face: 字体
//   - maxWidth: 最大宽度（像素）
//
// 返回:
//   - []string: 换行后的文本数组（每个元素为一行）
//
// 换行规则:
//   - 原有的换行保留，空行保留为空字符串
//   - 优先在空格处断行
//   - 单个单词超过最大宽度时按字符强制断行
func WrapText(textStr string, face text.Face, maxWidth float64) []string {
	if face == nil || maxWidth <= 0 {
		return strings.Split(textStr, "\n")
	}

	var lines []string
	for _, para := range strings.Split(textStr, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		current := ""
		for _, word := range words {
			candidate := word
			if current != "" {
				candidate = current + " " + word
			}
			if measureTextWidth(candidate, face) <= maxWidth {
				current = candidate
				continue
			}
			if current != "" {
				lines = append(lines, current)
			}
			// 单词本身就超宽
			current = ""
			for _, piece := range breakWord(word, face, maxWidth) {
				if current != "" {
					lines = append(lines, current)
				}
				current = piece
			}
		}
		lines = append(lines, current)
	}
	return lines
}

// breakWord 按字符把过长的单词拆成不超过 maxWidth 的几段
func breakWord(word string, face text.Face, maxWidth float64) []string {
	if measureTextWidth(word, face) <= maxWidth {
		return []string{word}
	}

	var pieces []string
	current := ""
	for len(word) > 0 {
		r, size := utf8.DecodeRuneInString(word)
		word = word[size:]
		test := current + string(r)
		// 单个字符就超宽时也要放进去，避免死循环
		if current != "" && measureTextWidth(test, face) > maxWidth {
			pieces = append(pieces, current)
			current = string(r)
			continue
		}
		current = test
	}
	if current != "" {
		pieces = append(pieces, current)
	}
	return pieces
}

// MaxLineWidth 返回多行文本中最宽一行的宽度
func MaxLineWidth(lines []string, face text.Face) float64 {
	w := 0.0
	for _, l := range lines {
		if lw := measureTextWidth(l, face); lw > w {
			w = lw
		}
	}
	return w
}

// measureTextWidth 测量文本宽度
func measureTextWidth(textStr string, face text.Face) float64 {
	if textStr == "" || face == nil {
		return 0
	}
	width, _ := text.Measure(textStr, face, 0)
	return width
}
