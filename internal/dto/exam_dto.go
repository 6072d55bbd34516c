package dto

import "time"

// ExamSessionResponse is the public view of an exam session.
type ExamSessionResponse struct {
	ID             uint       `json:"id"`
	UserID         uint       `json:"user_id"`
	Status         string     `json:"status"`
	StartTime      time.Time  `json:"start_time"`
	EndTime        *time.Time `json:"end_time,omitempty"`
	TotalQuestions int        `json:"total_questions"`
	CorrectCount   int        `json:"correct_count"`
	Score          float64    `json:"score"`
}

// ExamQuestionResponse is a question as shown during an exam, without its
// answer.
type ExamQuestionResponse struct {
	ID           uint    `json:"id"`
	QuestionText string  `json:"question_text"`
	QuestionType string  `json:"question_type"`
	OptionA      *string `json:"option_a,omitempty"`
	OptionB      *string `json:"option_b,omitempty"`
	OptionC      *string `json:"option_c,omitempty"`
	OptionD      *string `json:"option_d,omitempty"`
	OptionE      *string `json:"option_e,omitempty"`
	OptionF      *string `json:"option_f,omitempty"`
	Difficulty   int     `json:"difficulty"`
}

type StartExamResponse struct {
	Message string              `json:"message"`
	ExamID  uint                `json:"exam_id"`
	Exam    ExamSessionResponse `json:"exam"`
}

type ExamQuestionsResponse struct {
	Exam      ExamSessionResponse    `json:"exam"`
	Questions []ExamQuestionResponse `json:"questions"`
}

// UserAnswerDTO is one submitted answer. An empty answer is allowed and
// counts as wrong.
type UserAnswerDTO struct {
	QuestionID uint   `json:"question_id" binding:"required"`
	Answer     string `json:"answer"`
}

type SubmitExamRequest struct {
	Answers []UserAnswerDTO `json:"answers" binding:"omitempty,dive"`
}

type SubmitExamResponse struct {
	Message        string              `json:"message"`
	Exam           ExamSessionResponse `json:"exam"`
	Score          float64             `json:"score"`
	CorrectCount   int                 `json:"correct_count"`
	TotalQuestions int                 `json:"total_questions"`
}

type AnswerRecordResponse struct {
	ID         uint              `json:"id"`
	ExamID     uint              `json:"exam_id"`
	QuestionID uint              `json:"question_id"`
	UserAnswer string            `json:"user_answer"`
	IsCorrect  bool              `json:"is_correct"`
	AnswerTime time.Time         `json:"answer_time"`
	Question   *QuestionResponse `json:"question,omitempty"`
}

type ExamResultResponse struct {
	Exam    ExamSessionResponse    `json:"exam"`
	Answers []AnswerRecordResponse `json:"answers"`
}

type ExamListResponse struct {
	Exams []ExamSessionResponse `json:"exams"`
	PageMeta
}

type WrongQuestionResponse struct {
	ID            uint             `json:"id"`
	UserID        uint             `json:"user_id"`
	QuestionID    uint             `json:"question_id"`
	WrongCount    int              `json:"wrong_count"`
	LastWrongTime time.Time        `json:"last_wrong_time"`
	IsMastered    bool             `json:"is_mastered"`
	Question      QuestionResponse `json:"question"`
}

type WrongQuestionListResponse struct {
	WrongQuestions []WrongQuestionResponse `json:"wrong_questions"`
	PageMeta
}
