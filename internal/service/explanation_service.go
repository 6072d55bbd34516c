package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/lshigami/Tiku/internal/dto"
	"github.com/lshigami/Tiku/internal/model"
	"github.com/lshigami/Tiku/internal/repository"
	"github.com/rs/zerolog/log"
)

// ExplanationService writes an AI explanation onto a stored question.
type ExplanationService interface {
	Explain(ctx context.Context, questionID uint) (*dto.ExplanationResponse, error)
}

type explanationService struct {
	repo      repository.QuestionRepository
	generator ExplanationGenerator
}

func NewExplanationService(repo repository.QuestionRepository, generator ExplanationGenerator) ExplanationService {
	return &explanationService{repo: repo, generator: generator}
}

func (s *explanationService) Explain(ctx context.Context, questionID uint) (*dto.ExplanationResponse, error) {
	question, err := findQuestion(ctx, s.repo, questionID)
	if err != nil {
		return nil, err
	}

	text, err := s.generator.Generate(ctx, buildExplanationPrompt(question))
	if err != nil {
		log.Error().Err(err).Uint("questionID", questionID).Msg("Explain: generator failed")
		return nil, err
	}

	question.Explanation = &text
	if err := s.repo.Update(ctx, question); err != nil {
		return nil, fmt.Errorf("failed to save explanation: %w", err)
	}
	log.Info().Uint("questionID", questionID).Int("length", len(text)).Msg("Explanation generated")
	return &dto.ExplanationResponse{QuestionID: questionID, Explanation: text}, nil
}

func buildExplanationPrompt(q *model.Question) string {
	var sb strings.Builder
	sb.WriteString("你是一名考试辅导老师。请用简洁的中文解释下面这道题为什么答案是正确的，不超过200字。\n\n")
	fmt.Fprintf(&sb, "题型: %s\n", q.QuestionType)
	fmt.Fprintf(&sb, "题目: %s\n", q.QuestionText)
	options := q.Options()
	for _, label := range model.OptionLabels {
		if text, ok := options[label]; ok {
			fmt.Fprintf(&sb, "%s. %s\n", label, text)
		}
	}
	fmt.Fprintf(&sb, "正确答案: %s\n", q.CorrectAnswer)
	return sb.String()
}
