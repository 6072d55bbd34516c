package model

import (
	"time"
)

// AnswerRecord is one graded answer of a submitted session. Records are
// written once at submission and never updated.
type AnswerRecord struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	ExamSessionID uint      `json:"exam_session_id" gorm:"not null;index"`
	QuestionID    uint      `json:"question_id" gorm:"not null;index"`
	UserAnswer    string    `json:"user_answer" gorm:"type:text"`
	IsCorrect     bool      `json:"is_correct" gorm:"not null"`
	AnswerTime    time.Time `json:"answer_time"`
}
