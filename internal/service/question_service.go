package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Tiku/internal/dto"
	"github.com/lshigami/Tiku/internal/ingest"
	"github.com/lshigami/Tiku/internal/model"
	"github.com/lshigami/Tiku/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type QuestionService interface {
	CreateQuestion(ctx context.Context, req dto.CreateQuestionRequest) (*dto.QuestionResponse, error)
	GetQuestion(ctx context.Context, id uint) (*dto.QuestionResponse, error)
	ListQuestions(ctx context.Context, query dto.QuestionListQuery) (*dto.QuestionListResponse, error)
	UpdateQuestion(ctx context.Context, id uint, req dto.UpdateQuestionRequest) (*dto.QuestionResponse, error)
	DeleteQuestion(ctx context.Context, id uint) error
	ClearQuestions(ctx context.Context) (int64, error)
	Stats(ctx context.Context) (*dto.QuestionStatsResponse, error)
	RandomPractice(ctx context.Context) (*dto.PracticeResponse, error)
}

type questionService struct {
	repo      repository.QuestionRepository
	wrongRepo repository.WrongQuestionRepository
	selector  *QuestionSelector
	db        *gorm.DB
}

func NewQuestionService(
	repo repository.QuestionRepository,
	wrongRepo repository.WrongQuestionRepository,
	selector *QuestionSelector,
	db *gorm.DB,
) QuestionService {
	return &questionService{repo: repo, wrongRepo: wrongRepo, selector: selector, db: db}
}

func (s *questionService) CreateQuestion(ctx context.Context, req dto.CreateQuestionRequest) (*dto.QuestionResponse, error) {
	question := model.Question{}
	if err := copier.Copy(&question, &req); err != nil {
		return nil, fmt.Errorf("error mapping question request: %w", err)
	}
	if question.Difficulty == 0 {
		question.Difficulty = model.MinDifficulty
	}
	normalizeQuestion(&question)
	if err := question.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByText(ctx, question.QuestionText)
	if err != nil {
		return nil, fmt.Errorf("failed to check duplicate question: %w", err)
	}
	if exists {
		return nil, ErrDuplicateQuestion
	}

	if err := s.repo.Create(ctx, &question); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateQuestion
		}
		log.Error().Err(err).Msg("Failed to create question in service")
		return nil, err
	}
	resp := toQuestionResponse(&question)
	return &resp, nil
}

func (s *questionService) GetQuestion(ctx context.Context, id uint) (*dto.QuestionResponse, error) {
	question, err := findQuestion(ctx, s.repo, id)
	if err != nil {
		return nil, err
	}
	resp := toQuestionResponse(question)
	return &resp, nil
}

func (s *questionService) ListQuestions(ctx context.Context, query dto.QuestionListQuery) (*dto.QuestionListResponse, error) {
	p := newPageRequest(query.Page, query.PerPage, defaultQuestionPageSize)
	questions, total, err := s.repo.List(ctx, repository.QuestionFilter{
		Type:   query.Type,
		Search: query.Search,
		Offset: p.Offset(),
		Limit:  p.PageSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	return &dto.QuestionListResponse{
		Questions: toQuestionResponses(questions),
		PageMeta:  dto.PageMeta{Total: total, Pages: p.Pages(total), CurrentPage: p.Page},
	}, nil
}

func (s *questionService) UpdateQuestion(ctx context.Context, id uint, req dto.UpdateQuestionRequest) (*dto.QuestionResponse, error) {
	question, err := findQuestion(ctx, s.repo, id)
	if err != nil {
		return nil, err
	}
	originalText := question.QuestionText

	if err := copier.CopyWithOption(question, &req, copier.Option{IgnoreEmpty: true}); err != nil {
		return nil, fmt.Errorf("error mapping question update: %w", err)
	}
	normalizeQuestion(question)
	if err := question.Validate(); err != nil {
		return nil, err
	}

	if question.QuestionText != originalText {
		exists, err := s.repo.ExistsByText(ctx, question.QuestionText)
		if err != nil {
			return nil, fmt.Errorf("failed to check duplicate question: %w", err)
		}
		if exists {
			return nil, ErrDuplicateQuestion
		}
	}

	if err := s.repo.Update(ctx, question); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateQuestion
		}
		log.Error().Err(err).Uint("questionID", id).Msg("Failed to update question")
		return nil, err
	}
	resp := toQuestionResponse(question)
	return &resp, nil
}

// DeleteQuestion removes a question together with its wrong-question
// entries. Answer records of past exams keep the dangling id.
func (s *questionService) DeleteQuestion(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.wrongRepo.WithTx(tx).DeleteByQuestion(ctx, id); err != nil {
			return fmt.Errorf("failed to delete wrong-question entries: %w", err)
		}
		deleted, err := s.repo.WithTx(tx).Delete(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to delete question %d: %w", id, err)
		}
		if deleted == 0 {
			return fmt.Errorf("question %d: %w", id, ErrNotFound)
		}
		return nil
	})
}

func (s *questionService) ClearQuestions(ctx context.Context) (int64, error) {
	var deleted int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.wrongRepo.WithTx(tx).DeleteAll(ctx); err != nil {
			return fmt.Errorf("failed to clear wrong-question entries: %w", err)
		}
		n, err := s.repo.WithTx(tx).DeleteAll(ctx)
		if err != nil {
			return fmt.Errorf("failed to clear questions: %w", err)
		}
		deleted = n
		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("ClearQuestions: transaction rolled back")
		return 0, err
	}
	log.Warn().Int64("deleted", deleted).Msg("Question bank cleared")
	return deleted, nil
}

func (s *questionService) Stats(ctx context.Context) (*dto.QuestionStatsResponse, error) {
	counts, err := s.repo.CountByType(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count questions: %w", err)
	}
	resp := &dto.QuestionStatsResponse{
		Single:   counts[model.QuestionTypeSingle],
		Multiple: counts[model.QuestionTypeMultiple],
		Judge:    counts[model.QuestionTypeJudge],
	}
	for _, n := range counts {
		resp.Total += n
	}
	return resp, nil
}

// RandomPractice draws a practice set with the same stratification as an
// exam. No session is created and answers are included.
func (s *questionService) RandomPractice(ctx context.Context) (*dto.PracticeResponse, error) {
	questions, err := s.selector.Draw(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.PracticeResponse{
		Questions: toQuestionResponses(questions),
		Total:     len(questions),
	}, nil
}

func findQuestion(ctx context.Context, repo repository.QuestionRepository, id uint) (*model.Question, error) {
	question, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("question %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load question %d: %w", id, err)
	}
	return question, nil
}

// normalizeQuestion applies the same text and answer canonicalization as
// spreadsheet import, so hand-entered questions dedup and grade alike.
func normalizeQuestion(q *model.Question) {
	q.QuestionText = ingest.CleanText(q.QuestionText)
	q.CorrectAnswer = ingest.NormalizeAnswer(q.CorrectAnswer)
	q.TextHash = model.HashText(q.QuestionText)
}
