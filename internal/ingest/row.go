package ingest

import (
	"strings"
)

const (
	firstOptionColumn = 1
	lastOptionColumn  = 4
	answerWindowSize  = 4
)

// Row is one worksheet row. A nil cell is absent; rows are padded with nil
// up to the sheet width.
type Row []*string

func newRow(cells []string, width int) Row {
	row := make(Row, width)
	for i, c := range cells {
		if i >= width {
			break
		}
		v := c
		row[i] = &v
	}
	return row
}

func (r Row) cell(i int) string {
	if i < 0 || i >= len(r) || r[i] == nil {
		return ""
	}
	return *r[i]
}

// FirstColumn is the cleaned question text candidate.
func (r Row) FirstColumn() string {
	return CleanText(r.cell(0))
}

// OptionWindow returns the cleaned cells of columns 1..4, keyed by their
// label A..D. Empty cells are omitted.
func (r Row) OptionWindow() map[string]string {
	options := make(map[string]string)
	for c := firstOptionColumn; c <= lastOptionColumn && c < len(r); c++ {
		text := CleanText(r.cell(c))
		if text == "" {
			continue
		}
		options[string(rune('A'+c-firstOptionColumn))] = text
	}
	return options
}

// AnswerWindow returns the cleaned cells that may hold the answer, last
// column first. The window never reaches back into the option columns.
func (r Row) AnswerWindow() []string {
	width := len(r)
	floor := max(lastOptionColumn, width-1-answerWindowSize)
	var cells []string
	for c := width - 1; c > floor; c-- {
		cells = append(cells, CleanText(r.cell(c)))
	}
	return cells
}

// JoinedText joins the non-empty raw cells with single spaces.
func (r Row) JoinedText() string {
	var parts []string
	for _, c := range r {
		if c == nil || strings.TrimSpace(*c) == "" {
			continue
		}
		parts = append(parts, *c)
	}
	return strings.Join(parts, " ")
}

// CleanText trims the cell and collapses whitespace runs to one space.
func CleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
