package service

import (
	"context"
	"fmt"

	"github.com/lshigami/Tiku/internal/model"
	"github.com/lshigami/Tiku/internal/repository"
)

type typeQuota struct {
	QuestionType string
	Limit        int
}

// examQuotas are ceilings: a type with fewer questions contributes all of
// them.
var examQuotas = []typeQuota{
	{QuestionType: model.QuestionTypeMultiple, Limit: 60},
	{QuestionType: model.QuestionTypeJudge, Limit: 20},
	{QuestionType: model.QuestionTypeSingle, Limit: 60},
}

// QuestionSelector draws a stratified random question set from the bank.
type QuestionSelector struct {
	questionRepo repository.QuestionRepository
	rnd          RandomSource
}

func NewQuestionSelector(questionRepo repository.QuestionRepository, rnd RandomSource) *QuestionSelector {
	return &QuestionSelector{questionRepo: questionRepo, rnd: rnd}
}

// Draw samples each type up to its quota, then shuffles the combined set.
func (s *QuestionSelector) Draw(ctx context.Context) ([]model.Question, error) {
	var ids []uint
	for _, quota := range examQuotas {
		pool, err := s.questionRepo.ListIDsByType(ctx, quota.QuestionType)
		if err != nil {
			return nil, fmt.Errorf("failed to list %s questions: %w", quota.QuestionType, err)
		}
		ids = append(ids, sampleIDs(s.rnd, pool, quota.Limit)...)
	}
	shuffleIDs(s.rnd, ids)

	found, err := s.questionRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load selected questions: %w", err)
	}
	byID := make(map[uint]model.Question, len(found))
	for _, q := range found {
		byID[q.ID] = q
	}

	questions := make([]model.Question, 0, len(ids))
	for _, id := range ids {
		// A question deleted between listing and loading is dropped.
		if q, ok := byID[id]; ok {
			questions = append(questions, q)
		}
	}
	return questions, nil
}
