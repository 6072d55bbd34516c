package model

import (
	"time"
)

const (
	SessionStatusInProgress = "in_progress"
	SessionStatusCompleted  = "completed"

	// DefaultTotalQuestions is the placeholder stored at start; selection
	// overwrites it with the real count.
	DefaultTotalQuestions = 140
)

type ExamSession struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	UserID         uint           `json:"user_id" gorm:"not null;index;uniqueIndex:idx_exam_sessions_active_user,where:status = 'in_progress'"`
	Status         string         `json:"status" gorm:"size:20;not null;default:'in_progress'"` // "in_progress", "completed"
	StartTime      time.Time      `json:"start_time"`
	EndTime        *time.Time     `json:"end_time,omitempty"`
	TotalQuestions int            `json:"total_questions" gorm:"not null;default:140"`
	CorrectCount   int            `json:"correct_count" gorm:"not null;default:0"`
	Score          float64        `json:"score" gorm:"not null;default:0"`
	Answers        []AnswerRecord `json:"answers,omitempty" gorm:"foreignKey:ExamSessionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

func (s *ExamSession) IsCompleted() bool {
	return s.Status == SessionStatusCompleted
}
