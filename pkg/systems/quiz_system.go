package systems

import (
	"log"

	"github.com/decker502/flowerfield/pkg/components"
	"github.com/decker502/flowerfield/pkg/config"
)

// QuizSystem 问答状态机
//
//	Hidden --捡起纸条--> Asking(0) --答题--> Asking(i+1) ... --最后一题--> Complete --开始投篮--> Closed
//
// 每题只计一次答案，答对加一分，答错不扣分。
type QuizSystem struct{}

// AnswerResult 答题结果
type AnswerResult struct {
	Correct bool

	// Completed 这是最后一题，问答进入 Complete
	Completed bool
}

// NewQuizSystem 创建问答系统
func NewQuizSystem() *QuizSystem {
	return &QuizSystem{}
}

// Open 显示第一题
func (s *QuizSystem) Open(q *components.QuizComponent) bool {
	if q.Phase != components.QuizHidden || len(q.Questions) == 0 {
		return false
	}
	q.Phase = components.QuizAsking
	q.Index = 0
	q.Score = 0
	log.Printf("[QuizSystem] Quiz opened (%d questions)", len(q.Questions))
	return true
}

// Current 当前题目
func (s *QuizSystem) Current(q *components.QuizComponent) (config.QuizQuestion, bool) {
	if q.Phase != components.QuizAsking || q.Index >= len(q.Questions) {
		return config.QuizQuestion{}, false
	}
	return q.Questions[q.Index], true
}

// Answer 回答当前题目
// 不在答题阶段或选项越界时返回 false
func (s *QuizSystem) Answer(q *components.QuizComponent, choice int) (AnswerResult, bool) {
	question, ok := s.Current(q)
	if !ok || choice < 0 || choice >= len(question.Answers) {
		return AnswerResult{}, false
	}

	res := AnswerResult{Correct: choice == question.Correct}
	if res.Correct {
		q.Score++
	}
	q.Index++

	if q.Index >= len(q.Questions) {
		q.Phase = components.QuizComplete
		res.Completed = true
		log.Printf("[QuizSystem] Quiz complete, score %d/%d", q.Score, len(q.Questions))
	}
	return res, true
}

// Close 关闭结果面板（开始投篮挑战），并清空进度
func (s *QuizSystem) Close(q *components.QuizComponent) bool {
	if q.Phase != components.QuizComplete {
		return false
	}
	q.Phase = components.QuizClosed
	q.Index = 0
	q.Score = 0
	return true
}
