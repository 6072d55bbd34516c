package ingest

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/lshigami/Tiku/internal/model"
	"github.com/rs/zerolog/log"
)

const (
	headerScanRows   = 50
	minQuestionRunes = 10
	maxAnswerRunes   = 10
	defaultAnswer    = "A"
	judgeCorrect     = "正确"
	judgeWrong       = "错误"
)

var (
	headerKeywords   = []string{"题目", "试题", "第1题", "1.", "1、"}
	judgeKeywords    = []string{"判断", "对错", "正确", "错误", "是否", "√", "×", "true", "false", "（判断）", "(判断)"}
	multipleKeywords = []string{"多选", "选择", "（多选）", "(多选)", "以下哪些", "包括哪些"}
	correctMarkers   = []string{"正确", "对", "√"}
	wrongMarkers     = []string{"错误", "错", "×"}
)

// SheetResult holds the questions staged from one worksheet and the number
// of rows that were admitted but failed validation.
type SheetResult struct {
	Name      string
	Questions []model.Question
	Errors    int
}

type Result struct {
	Sheets []SheetResult
}

// Parse reads every worksheet of a spreadsheet file. A worksheet that
// cannot be read is logged and skipped.
func Parse(data []byte, filename string) (*Result, error) {
	wb, err := OpenWorkbook(data, filename)
	if err != nil {
		return nil, err
	}
	defer wb.Close()
	return ParseWorkbook(wb, filename), nil
}

// ParseWorkbook parses every worksheet of an opened workbook, skipping the
// ones that fail to read.
func ParseWorkbook(wb Workbook, filename string) *Result {
	result := &Result{}
	for _, name := range wb.SheetNames() {
		sheet, err := parseSheetSafe(wb, name)
		if err != nil {
			log.Error().Err(err).Str("file", filename).Str("sheet", name).Msg("Skipping unreadable worksheet")
			continue
		}
		result.Sheets = append(result.Sheets, sheet)
	}
	return result
}

func parseSheetSafe(wb Workbook, name string) (sheet SheetResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic while reading sheet: %v", r)
		}
	}()
	rows, err := wb.Rows(name)
	if err != nil {
		return SheetResult{}, fmt.Errorf("failed to read rows: %w", err)
	}
	return ParseSheet(name, rows), nil
}

// ParseSheet turns raw worksheet cells into question drafts.
func ParseSheet(name string, cells [][]string) SheetResult {
	width := 0
	for _, c := range cells {
		width = max(width, len(c))
	}
	rows := make([]Row, len(cells))
	for i, c := range cells {
		rows[i] = newRow(c, width)
	}

	result := SheetResult{Name: name}
	for _, row := range rows[dataStartRow(rows):] {
		text := row.FirstColumn()
		if text == "" || utf8.RuneCountInString(text) < minQuestionRunes {
			continue
		}

		q := model.Question{
			QuestionText:  text,
			TextHash:      model.HashText(text),
			QuestionType:  DetectType(text),
			CorrectAnswer: detectAnswer(row),
			Difficulty:    model.MinDifficulty,
		}
		for label, option := range row.OptionWindow() {
			q.SetOption(label, option)
		}
		if err := q.Validate(); err != nil {
			log.Debug().Err(err).Str("sheet", name).Msg("Rejected row")
			result.Errors++
			continue
		}
		result.Questions = append(result.Questions, q)
	}
	return result
}

// dataStartRow finds the header row among the first rows of a sheet. The
// header row itself is treated as data. No match means row 0.
func dataStartRow(rows []Row) int {
	for i := 0; i < len(rows) && i < headerScanRows; i++ {
		joined := rows[i].JoinedText()
		for _, kw := range headerKeywords {
			if strings.Contains(joined, kw) {
				return i
			}
		}
	}
	return 0
}

// DetectType classifies a question by keywords in its text. Judge keywords
// win over multiple-choice keywords; anything else is single choice.
func DetectType(text string) string {
	lower := strings.ToLower(text)
	if containsAny(lower, judgeKeywords) {
		return model.QuestionTypeJudge
	}
	if containsAny(lower, multipleKeywords) {
		return model.QuestionTypeMultiple
	}
	return model.QuestionTypeSingle
}

func detectAnswer(row Row) string {
	for _, cell := range row.AnswerWindow() {
		if cell != "" && utf8.RuneCountInString(cell) <= maxAnswerRunes {
			return NormalizeAnswer(cell)
		}
	}
	return defaultAnswer
}

// NormalizeAnswer canonicalizes an answer cell: comma sets become
// "A,B,...", single letters stay, judge markers become 正确 or 错误.
func NormalizeAnswer(raw string) string {
	s := strings.ToUpper(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, "，", ",")

	if strings.Contains(s, ",") {
		var labels []string
		for _, part := range strings.Split(s, ",") {
			if p := strings.TrimSpace(part); p != "" {
				labels = append(labels, p)
			}
		}
		return strings.Join(labels, ",")
	}
	if len(s) == 1 && s[0] >= 'A' && s[0] <= 'F' {
		return s
	}
	if containsAny(s, correctMarkers) {
		return judgeCorrect
	}
	if containsAny(s, wrongMarkers) {
		return judgeWrong
	}
	return s
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
