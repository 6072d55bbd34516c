package model

import (
	"time"
)

type WrongQuestionEntry struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	UserID        uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_wrong_questions_user_question"`
	QuestionID    uint      `json:"question_id" gorm:"not null;uniqueIndex:idx_wrong_questions_user_question;index"`
	Question      Question  `json:"question,omitempty" gorm:"foreignKey:QuestionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	WrongCount    int       `json:"wrong_count" gorm:"not null;default:1"`
	LastWrongTime time.Time `json:"last_wrong_time" gorm:"index"`
	IsMastered    bool      `json:"is_mastered" gorm:"not null;default:false"`
	CreatedAt     time.Time `json:"created_at"`
}

func (WrongQuestionEntry) TableName() string {
	return "wrong_questions"
}
