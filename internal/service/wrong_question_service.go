package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lshigami/Tiku/internal/dto"
	"github.com/lshigami/Tiku/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// WrongQuestionService maintains the per-user ledger of missed questions.
type WrongQuestionService interface {
	RecordWrong(ctx context.Context, tx *gorm.DB, userID, questionID uint) error
	List(ctx context.Context, userID uint, includeMastered bool, page, pageSize int) (*dto.WrongQuestionListResponse, error)
	MarkMastered(ctx context.Context, entryID, callerID uint) error
}

type wrongQuestionService struct {
	wrongRepo repository.WrongQuestionRepository
}

func NewWrongQuestionService(wrongRepo repository.WrongQuestionRepository) WrongQuestionService {
	return &wrongQuestionService{wrongRepo: wrongRepo}
}

// RecordWrong counts one more miss of questionID by userID inside tx and
// puts the entry back in the unmastered list.
func (s *wrongQuestionService) RecordWrong(ctx context.Context, tx *gorm.DB, userID, questionID uint) error {
	if err := s.wrongRepo.WithTx(tx).Upsert(ctx, userID, questionID, time.Now()); err != nil {
		return fmt.Errorf("failed to record wrong answer for question %d: %w", questionID, err)
	}
	return nil
}

func (s *wrongQuestionService) List(ctx context.Context, userID uint, includeMastered bool, page, pageSize int) (*dto.WrongQuestionListResponse, error) {
	p := newPageRequest(page, pageSize, defaultLedgerPageSize)
	entries, total, err := s.wrongRepo.ListByUser(ctx, userID, includeMastered, p.Offset(), p.PageSize)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("List wrong questions: repository error")
		return nil, fmt.Errorf("failed to list wrong questions: %w", err)
	}

	resp := &dto.WrongQuestionListResponse{
		WrongQuestions: make([]dto.WrongQuestionResponse, 0, len(entries)),
		PageMeta:       dto.PageMeta{Total: total, Pages: p.Pages(total), CurrentPage: p.Page},
	}
	for i := range entries {
		resp.WrongQuestions = append(resp.WrongQuestions, toWrongQuestionResponse(&entries[i]))
	}
	return resp, nil
}

func (s *wrongQuestionService) MarkMastered(ctx context.Context, entryID, callerID uint) error {
	entry, err := s.wrongRepo.FindByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("wrong question %d: %w", entryID, ErrNotFound)
		}
		return fmt.Errorf("failed to load wrong question %d: %w", entryID, err)
	}
	if entry.UserID != callerID {
		return fmt.Errorf("wrong question %d: %w", entryID, ErrForbidden)
	}
	if err := s.wrongRepo.SetMastered(ctx, entryID); err != nil {
		return fmt.Errorf("failed to mark wrong question %d as mastered: %w", entryID, err)
	}
	log.Info().Uint("entryID", entryID).Uint("userID", callerID).Msg("Wrong question marked as mastered")
	return nil
}
