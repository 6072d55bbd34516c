package model

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"gorm.io/gorm"
)

const (
	QuestionTypeSingle   = "single"
	QuestionTypeMultiple = "multiple"
	QuestionTypeJudge    = "judge"

	MaxQuestionTextLength = 5000
	MinDifficulty         = 1
	MaxDifficulty         = 5
)

// OptionLabels are the option slots a question can carry, in display order.
var OptionLabels = []string{"A", "B", "C", "D", "E", "F"}

var ErrInvalidQuestion = errors.New("invalid question")

type Question struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	QuestionText  string    `json:"question_text" gorm:"type:text;not null"`
	TextHash      string    `json:"-" gorm:"size:64;not null;uniqueIndex"`
	QuestionType  string    `json:"question_type" gorm:"size:20;not null;index"` // "single", "multiple", "judge"
	OptionA       *string   `json:"option_a,omitempty" gorm:"type:text"`
	OptionB       *string   `json:"option_b,omitempty" gorm:"type:text"`
	OptionC       *string   `json:"option_c,omitempty" gorm:"type:text"`
	OptionD       *string   `json:"option_d,omitempty" gorm:"type:text"`
	OptionE       *string   `json:"option_e,omitempty" gorm:"type:text"`
	OptionF       *string   `json:"option_f,omitempty" gorm:"type:text"`
	CorrectAnswer string    `json:"correct_answer" gorm:"size:100;not null"`
	Explanation   *string   `json:"explanation,omitempty" gorm:"type:text"`
	Difficulty    int       `json:"difficulty" gorm:"not null;default:1"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// HashText is the dedup key of a question: the hex sha256 of its text.
func HashText(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

func IsValidQuestionType(t string) bool {
	switch t {
	case QuestionTypeSingle, QuestionTypeMultiple, QuestionTypeJudge:
		return true
	}
	return false
}

func (q *Question) BeforeSave(tx *gorm.DB) error {
	q.TextHash = HashText(q.QuestionText)
	return nil
}

func (q *Question) Validate() error {
	if strings.TrimSpace(q.QuestionText) == "" {
		return fmt.Errorf("%w: question text is empty", ErrInvalidQuestion)
	}
	if utf8.RuneCountInString(q.QuestionText) > MaxQuestionTextLength {
		return fmt.Errorf("%w: question text longer than %d characters", ErrInvalidQuestion, MaxQuestionTextLength)
	}
	if !IsValidQuestionType(q.QuestionType) {
		return fmt.Errorf("%w: unknown question type %q", ErrInvalidQuestion, q.QuestionType)
	}
	if strings.TrimSpace(q.CorrectAnswer) == "" {
		return fmt.Errorf("%w: correct answer is empty", ErrInvalidQuestion)
	}
	if q.Difficulty < MinDifficulty || q.Difficulty > MaxDifficulty {
		return fmt.Errorf("%w: difficulty %d outside %d..%d", ErrInvalidQuestion, q.Difficulty, MinDifficulty, MaxDifficulty)
	}
	return nil
}

func (q *Question) optionSlots() []**string {
	return []**string{&q.OptionA, &q.OptionB, &q.OptionC, &q.OptionD, &q.OptionE, &q.OptionF}
}

// SetOption stores text under label A..F. Unknown labels are ignored.
func (q *Question) SetOption(label string, text string) {
	slots := q.optionSlots()
	for i, l := range OptionLabels {
		if l == label {
			t := text
			*slots[i] = &t
			return
		}
	}
}

// Options returns the present options keyed by label.
func (q *Question) Options() map[string]string {
	out := make(map[string]string)
	for i, slot := range q.optionSlots() {
		if *slot != nil {
			out[OptionLabels[i]] = **slot
		}
	}
	return out
}
