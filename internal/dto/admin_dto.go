package dto

// SheetSummary reports how many questions one worksheet contributed.
type SheetSummary struct {
	Sheet    string `json:"sheet"`
	Imported int    `json:"imported"`
}

// ImportResponse is returned after a spreadsheet upload.
type ImportResponse struct {
	Message       string         `json:"message"`
	ImportedCount int            `json:"imported_count"`
	ErrorCount    int            `json:"error_count"`
	Sheets        []SheetSummary `json:"sheets"`
}

type QuestionStatsResponse struct {
	Total    int64 `json:"total"`
	Single   int64 `json:"single"`
	Multiple int64 `json:"multiple"`
	Judge    int64 `json:"judge"`
}

type ClearQuestionsResponse struct {
	Message string `json:"message"`
	Deleted int64  `json:"deleted"`
}

type ExplanationResponse struct {
	QuestionID  uint   `json:"question_id"`
	Explanation string `json:"explanation"`
}
