package utils

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

func testFace(t *testing.T) *text.GoTextFace {
	t.Helper()
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		t.Fatalf("failed to load font: %v", err)
	}
	return &text.GoTextFace{Source: src, Size: 18}
}

// TestWrapText 测试文本换行功能
func TestWrapText(t *testing.T) {
	face := testFace(t)

	tests := []struct {
		name      string
		input     string
		maxWidth  float64
		wantLines int // 0 表示只检查最少行数
		expectMin int
	}{
		{name: "短文本不换行", input: "Hello", maxWidth: 1000, wantLines: 1},
		{name: "空文本", input: "", maxWidth: 100, wantLines: 1},
		{name: "保留换行", input: "Question 1/10\nWhat is it?", maxWidth: 1000, wantLines: 2},
		{name: "保留空行", input: "a\n\nb", maxWidth: 1000, wantLines: 3},
		{name: "长文本自动换行", input: strings.Repeat("flower ", 30), maxWidth: 200, expectMin: 3},
		{name: "超长单词强制断行", input: strings.Repeat("x", 200), maxWidth: 100, expectMin: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := WrapText(tt.input, face, tt.maxWidth)
			if tt.wantLines > 0 && len(lines) != tt.wantLines {
				t.Fatalf("got %d lines %q, want %d", len(lines), lines, tt.wantLines)
			}
			if len(lines) < tt.expectMin {
				t.Fatalf("got %d lines, want at least %d", len(lines), tt.expectMin)
			}
			for i, l := range lines {
				if w := measureTextWidth(l, face); w > tt.maxWidth && len([]rune(l)) > 1 {
					t.Errorf("line %d %q width %.1f exceeds %.1f", i, l, w, tt.maxWidth)
				}
			}
		})
	}
}

// TestWrapText_KeepsAllWords 换行后拼接回去与原文单词一致
func TestWrapText_KeepsAllWords(t *testing.T) {
	face := testFace(t)
	input := "We will work together now on getting you to your birthday gift"

	lines := WrapText(input, face, 150)
	joined := strings.Join(lines, " ")
	if joined != input {
		t.Errorf("joined = %q, want %q", joined, input)
	}
}

func TestMaxLineWidth(t *testing.T) {
	face := testFace(t)
	short := measureTextWidth("ab", face)
	long := measureTextWidth("abcdef", face)

	if got := MaxLineWidth([]string{"ab", "abcdef", ""}, face); got != long {
		t.Errorf("MaxLineWidth() = %.1f, want %.1f", got, long)
	}
	if short >= long {
		t.Fatal("font metrics look wrong")
	}
	if got := MaxLineWidth(nil, face); got != 0 {
		t.Errorf("MaxLineWidth(nil) = %.1f, want 0", got)
	}
}
