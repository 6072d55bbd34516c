package dto

import "time"

// QuestionResponse is the full view of a question, answer included.
type QuestionResponse struct {
	ID            uint      `json:"id"`
	QuestionText  string    `json:"question_text"`
	QuestionType  string    `json:"question_type"`
	OptionA       *string   `json:"option_a,omitempty"`
	OptionB       *string   `json:"option_b,omitempty"`
	OptionC       *string   `json:"option_c,omitempty"`
	OptionD       *string   `json:"option_d,omitempty"`
	OptionE       *string   `json:"option_e,omitempty"`
	OptionF       *string   `json:"option_f,omitempty"`
	CorrectAnswer string    `json:"correct_answer"`
	Explanation   *string   `json:"explanation,omitempty"`
	Difficulty    int       `json:"difficulty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type PageMeta struct {
	Total       int64 `json:"total"`
	Pages       int   `json:"pages"`
	CurrentPage int   `json:"current_page"`
}

type QuestionListResponse struct {
	Questions []QuestionResponse `json:"questions"`
	PageMeta
}

type PracticeResponse struct {
	Questions []QuestionResponse `json:"questions"`
	Total     int                `json:"total"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

// ActiveSessionErrorResponse points the caller at the session that blocks a
// new one.
type ActiveSessionErrorResponse struct {
	Error  string `json:"error"`
	ExamID uint   `json:"exam_id"`
}
