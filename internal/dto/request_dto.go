package dto

// CreateQuestionRequest adds a single question to the bank by hand.
type CreateQuestionRequest struct {
	QuestionText  string  `json:"question_text" binding:"required"`
	QuestionType  string  `json:"question_type" binding:"required,oneof=single multiple judge"`
	OptionA       *string `json:"option_a"`
	OptionB       *string `json:"option_b"`
	OptionC       *string `json:"option_c"`
	OptionD       *string `json:"option_d"`
	OptionE       *string `json:"option_e"`
	OptionF       *string `json:"option_f"`
	CorrectAnswer string  `json:"correct_answer" binding:"required"`
	Explanation   *string `json:"explanation"`
	Difficulty    int     `json:"difficulty" binding:"omitempty,min=1,max=5"`
}

// UpdateQuestionRequest changes only the fields that are present.
type UpdateQuestionRequest struct {
	QuestionText  *string `json:"question_text"`
	QuestionType  *string `json:"question_type" binding:"omitempty,oneof=single multiple judge"`
	OptionA       *string `json:"option_a"`
	OptionB       *string `json:"option_b"`
	OptionC       *string `json:"option_c"`
	OptionD       *string `json:"option_d"`
	OptionE       *string `json:"option_e"`
	OptionF       *string `json:"option_f"`
	CorrectAnswer *string `json:"correct_answer"`
	Explanation   *string `json:"explanation"`
	Difficulty    *int    `json:"difficulty" binding:"omitempty,min=1,max=5"`
}

type QuestionListQuery struct {
	Type    string `form:"type" binding:"omitempty,oneof=single multiple judge"`
	Search  string `form:"search"`
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
}

type PageQuery struct {
	Page    int `form:"page"`
	PerPage int `form:"per_page"`
}

type WrongQuestionQuery struct {
	ShowMastered bool `form:"show_mastered"`
	Page         int  `form:"page"`
	PerPage      int  `form:"per_page"`
}
