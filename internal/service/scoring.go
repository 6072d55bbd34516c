package service

import (
	"strings"

	"github.com/lshigami/Tiku/internal/model"
)

// IsAnswerCorrect grades one answer. Multiple-choice answers compare as
// label sets, so "B,A" matches "A,B". Everything else must match exactly.
func IsAnswerCorrect(q *model.Question, answer string) bool {
	if q.QuestionType == model.QuestionTypeMultiple {
		return sameLabelSet(labelSet(q.CorrectAnswer), labelSet(answer))
	}
	return answer == q.CorrectAnswer
}

// CalculateScore returns the percentage of correct answers out of all
// submitted answers, 0 when nothing was submitted.
func CalculateScore(correct, submitted int) float64 {
	if submitted == 0 {
		return 0
	}
	return float64(correct) / float64(submitted) * 100
}

func labelSet(answer string) map[string]struct{} {
	set := make(map[string]struct{})
	if answer == "" {
		return set
	}
	for _, label := range strings.Split(answer, ",") {
		set[strings.TrimSpace(label)] = struct{}{}
	}
	return set
}

func sameLabelSet(a, b map[string]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for label := range a {
		if _, ok := b[label]; !ok {
			return false
		}
	}
	return true
}
