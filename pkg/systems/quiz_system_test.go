package systems

import (
	"testing"

	"github.com/decker502/flowerfield/pkg/components"
	"github.com/decker502/flowerfield/pkg/entities"
)

// TestQuizSystem_FullRun 测试完整答题流程与计分
func TestQuizSystem_FullRun(t *testing.T) {
	cfg := loadTestConfig(t)
	sys := NewQuizSystem()
	q := entities.NewQuiz(cfg.Quiz)

	if _, ok := sys.Answer(q, 0); ok {
		t.Fatal("answer accepted before the quiz opened")
	}
	if !sys.Open(q) {
		t.Fatal("Open failed from Hidden")
	}
	if sys.Open(q) {
		t.Error("Open must only work from Hidden")
	}

	// 前一半答对，后一半答错
	total := len(cfg.Quiz.Questions)
	wantScore := 0
	for i, question := range cfg.Quiz.Questions {
		choice := question.Correct
		if i >= total/2 {
			choice = (question.Correct + 1) % len(question.Answers)
		} else {
			wantScore++
		}

		res, ok := sys.Answer(q, choice)
		if !ok {
			t.Fatalf("question %d: answer rejected", i+1)
		}
		if res.Correct != (i < total/2) {
			t.Errorf("question %d: Correct=%v", i+1, res.Correct)
		}
		if res.Completed != (i == total-1) {
			t.Errorf("question %d: Completed=%v", i+1, res.Completed)
		}
	}

	if q.Phase != components.QuizComplete || q.Score != wantScore {
		t.Errorf("phase=%v score=%d, want Complete %d", q.Phase, q.Score, wantScore)
	}
	if _, ok := sys.Answer(q, 0); ok {
		t.Error("answer accepted after completion")
	}

	if !sys.Close(q) {
		t.Fatal("Close failed from Complete")
	}
	if q.Phase != components.QuizClosed || q.Score != 0 || q.Index != 0 {
		t.Errorf("after close: phase=%v score=%d index=%d", q.Phase, q.Score, q.Index)
	}
	if sys.Close(q) {
		t.Error("Close must only work once")
	}
}

func TestQuizSystem_InvalidChoice(t *testing.T) {
	cfg := loadTestConfig(t)
	sys := NewQuizSystem()
	q := entities.NewQuiz(cfg.Quiz)
	sys.Open(q)

	for _, choice := range []int{-1, 3, 99} {
		if _, ok := sys.Answer(q, choice); ok {
			t.Errorf("choice %d accepted", choice)
		}
	}
	if q.Index != 0 || q.Score != 0 {
		t.Errorf("invalid choices changed state: index=%d score=%d", q.Index, q.Score)
	}
}
