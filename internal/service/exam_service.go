package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lshigami/Tiku/internal/dto"
	"github.com/lshigami/Tiku/internal/model"
	"github.com/lshigami/Tiku/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ExamService drives an exam session from start to submission.
type ExamService interface {
	Start(ctx context.Context, userID uint) (*dto.StartExamResponse, error)
	SelectQuestions(ctx context.Context, sessionID, callerID uint) (*dto.ExamQuestionsResponse, error)
	Submit(ctx context.Context, sessionID, callerID uint, answers []dto.UserAnswerDTO) (*dto.SubmitExamResponse, error)
	GetResult(ctx context.Context, sessionID, callerID uint) (*dto.ExamResultResponse, error)
	ListSessions(ctx context.Context, userID uint, page, pageSize int) (*dto.ExamListResponse, error)
}

type examService struct {
	sessionRepo  repository.ExamSessionRepository
	answerRepo   repository.AnswerRecordRepository
	questionRepo repository.QuestionRepository
	wrongService WrongQuestionService
	selector     *QuestionSelector
	db           *gorm.DB
}

func NewExamService(
	sessionRepo repository.ExamSessionRepository,
	answerRepo repository.AnswerRecordRepository,
	questionRepo repository.QuestionRepository,
	wrongService WrongQuestionService,
	selector *QuestionSelector,
	db *gorm.DB,
) ExamService {
	return &examService{
		sessionRepo:  sessionRepo,
		answerRepo:   answerRepo,
		questionRepo: questionRepo,
		wrongService: wrongService,
		selector:     selector,
		db:           db,
	}
}

// Start opens a new session for userID. A user may only hold one
// in-progress session; the partial unique index on exam_sessions catches
// two starts racing past the check.
func (s *examService) Start(ctx context.Context, userID uint) (*dto.StartExamResponse, error) {
	var session model.ExamSession
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sessions := s.sessionRepo.WithTx(tx)
		active, err := sessions.FindActiveByUser(ctx, userID)
		if err == nil {
			return &ActiveSessionError{SessionID: active.ID}
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check active session: %w", err)
		}

		session = model.ExamSession{
			UserID:         userID,
			Status:         model.SessionStatusInProgress,
			StartTime:      time.Now(),
			TotalQuestions: model.DefaultTotalQuestions,
		}
		return sessions.Create(ctx, &session)
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		active, findErr := s.sessionRepo.FindActiveByUser(ctx, userID)
		if findErr != nil {
			return nil, ErrSessionAlreadyActive
		}
		return nil, &ActiveSessionError{SessionID: active.ID}
	}
	if err != nil {
		if !errors.Is(err, ErrSessionAlreadyActive) {
			log.Error().Err(err).Uint("userID", userID).Msg("Start exam: transaction failed")
		}
		return nil, err
	}

	log.Info().Uint("sessionID", session.ID).Uint("userID", userID).Msg("Exam session started")
	return &dto.StartExamResponse{
		Message: "exam started",
		ExamID:  session.ID,
		Exam:    toSessionResponse(&session),
	}, nil
}

// SelectQuestions draws a fresh question set for an in-progress session
// and records its size. Every call re-draws.
func (s *examService) SelectQuestions(ctx context.Context, sessionID, callerID uint) (*dto.ExamQuestionsResponse, error) {
	session, err := s.ownedSession(ctx, s.sessionRepo, sessionID, callerID)
	if err != nil {
		return nil, err
	}
	if session.IsCompleted() {
		return nil, fmt.Errorf("exam session %d: %w", sessionID, ErrAlreadyCompleted)
	}

	questions, err := s.selector.Draw(ctx)
	if err != nil {
		log.Error().Err(err).Uint("sessionID", sessionID).Msg("SelectQuestions: draw failed")
		return nil, err
	}
	updated, err := s.sessionRepo.UpdateTotalQuestions(ctx, sessionID, len(questions))
	if err != nil {
		return nil, fmt.Errorf("failed to update total questions: %w", err)
	}
	if updated == 0 {
		return nil, fmt.Errorf("exam session %d: %w", sessionID, ErrAlreadyCompleted)
	}
	session.TotalQuestions = len(questions)

	return &dto.ExamQuestionsResponse{
		Exam:      toSessionResponse(session),
		Questions: toExamQuestionResponses(questions),
	}, nil
}

// Submit grades the answers and closes the session in one transaction.
// Answers to questions that no longer exist are skipped but still count in
// the denominator.
func (s *examService) Submit(ctx context.Context, sessionID, callerID uint, answers []dto.UserAnswerDTO) (*dto.SubmitExamResponse, error) {
	var session *model.ExamSession
	var correct int
	var score float64

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sessions := s.sessionRepo.WithTx(tx)
		var err error
		session, err = s.ownedSession(ctx, sessions, sessionID, callerID)
		if err != nil {
			return err
		}
		if session.IsCompleted() {
			return fmt.Errorf("exam session %d: %w", sessionID, ErrAlreadyCompleted)
		}

		ids := make([]uint, 0, len(answers))
		for _, a := range answers {
			ids = append(ids, a.QuestionID)
		}
		found, err := s.questionRepo.WithTx(tx).FindByIDs(ctx, ids)
		if err != nil {
			return fmt.Errorf("failed to load answered questions: %w", err)
		}
		questions := make(map[uint]*model.Question, len(found))
		for i := range found {
			questions[found[i].ID] = &found[i]
		}

		now := time.Now()
		records := make([]model.AnswerRecord, 0, len(answers))
		for _, a := range answers {
			q, ok := questions[a.QuestionID]
			if !ok {
				log.Warn().Uint("sessionID", sessionID).Uint("questionID", a.QuestionID).Msg("Submit: answer for unknown question skipped")
				continue
			}
			isCorrect := IsAnswerCorrect(q, a.Answer)
			if isCorrect {
				correct++
			} else if err := s.wrongService.RecordWrong(ctx, tx, callerID, q.ID); err != nil {
				return err
			}
			records = append(records, model.AnswerRecord{
				ExamSessionID: sessionID,
				QuestionID:    q.ID,
				UserAnswer:    a.Answer,
				IsCorrect:     isCorrect,
				AnswerTime:    now,
			})
		}
		if err := s.answerRepo.WithTx(tx).CreateBatch(ctx, records); err != nil {
			return fmt.Errorf("failed to save answer records: %w", err)
		}

		score = CalculateScore(correct, len(answers))
		affected, err := sessions.Complete(ctx, sessionID, correct, score, now)
		if err != nil {
			return fmt.Errorf("failed to complete exam session: %w", err)
		}
		if affected == 0 {
			return fmt.Errorf("exam session %d: %w", sessionID, ErrAlreadyCompleted)
		}

		session.Status = model.SessionStatusCompleted
		session.CorrectCount = correct
		session.Score = score
		session.EndTime = &now
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrNotFound) && !errors.Is(err, ErrForbidden) && !errors.Is(err, ErrAlreadyCompleted) {
			log.Error().Err(err).Uint("sessionID", sessionID).Msg("Submit: transaction rolled back")
		}
		return nil, err
	}

	log.Info().
		Uint("sessionID", sessionID).
		Uint("userID", callerID).
		Int("correct", correct).
		Int("submitted", len(answers)).
		Float64("score", score).
		Msg("Exam submitted")
	return &dto.SubmitExamResponse{
		Message:        "exam submitted",
		Exam:           toSessionResponse(session),
		Score:          score,
		CorrectCount:   correct,
		TotalQuestions: len(answers),
	}, nil
}

func (s *examService) GetResult(ctx context.Context, sessionID, callerID uint) (*dto.ExamResultResponse, error) {
	session, err := s.ownedSession(ctx, s.sessionRepo, sessionID, callerID)
	if err != nil {
		return nil, err
	}

	records, err := s.answerRepo.FindBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load answer records: %w", err)
	}
	ids := make([]uint, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.QuestionID)
	}
	found, err := s.questionRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load answered questions: %w", err)
	}
	questions := make(map[uint]*model.Question, len(found))
	for i := range found {
		questions[found[i].ID] = &found[i]
	}

	resp := &dto.ExamResultResponse{
		Exam:    toSessionResponse(session),
		Answers: make([]dto.AnswerRecordResponse, 0, len(records)),
	}
	for i := range records {
		item := toAnswerRecordResponse(&records[i])
		if q, ok := questions[records[i].QuestionID]; ok {
			qr := toQuestionResponse(q)
			item.Question = &qr
		}
		resp.Answers = append(resp.Answers, item)
	}
	return resp, nil
}

func (s *examService) ListSessions(ctx context.Context, userID uint, page, pageSize int) (*dto.ExamListResponse, error) {
	p := newPageRequest(page, pageSize, defaultSessionPageSize)
	sessions, total, err := s.sessionRepo.ListByUser(ctx, userID, p.Offset(), p.PageSize)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("ListSessions: repository error")
		return nil, fmt.Errorf("failed to list exam sessions: %w", err)
	}

	resp := &dto.ExamListResponse{
		Exams:    make([]dto.ExamSessionResponse, 0, len(sessions)),
		PageMeta: dto.PageMeta{Total: total, Pages: p.Pages(total), CurrentPage: p.Page},
	}
	for i := range sessions {
		resp.Exams = append(resp.Exams, toSessionResponse(&sessions[i]))
	}
	return resp, nil
}

func (s *examService) ownedSession(ctx context.Context, sessions repository.ExamSessionRepository, sessionID, callerID uint) (*model.ExamSession, error) {
	session, err := sessions.FindByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("exam session %d: %w", sessionID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load exam session %d: %w", sessionID, err)
	}
	if session.UserID != callerID {
		return nil, fmt.Errorf("exam session %d: %w", sessionID, ErrForbidden)
	}
	return session, nil
}
