package repository

import (
	"context"
	"time"

	"github.com/lshigami/Tiku/internal/model"
	"gorm.io/gorm"
)

type ExamSessionRepository interface {
	WithTx(tx *gorm.DB) ExamSessionRepository
	Create(ctx context.Context, session *model.ExamSession) error
	FindByID(ctx context.Context, id uint) (*model.ExamSession, error)
	FindActiveByUser(ctx context.Context, userID uint) (*model.ExamSession, error)
	UpdateTotalQuestions(ctx context.Context, id uint, total int) (int64, error)
	Complete(ctx context.Context, id uint, correctCount int, score float64, endTime time.Time) (int64, error)
	ListByUser(ctx context.Context, userID uint, offset, limit int) ([]model.ExamSession, int64, error)
}

type examSessionRepository struct {
	db *gorm.DB
}

func NewExamSessionRepository(db *gorm.DB) ExamSessionRepository {
	return &examSessionRepository{db: db}
}

func (r *examSessionRepository) WithTx(tx *gorm.DB) ExamSessionRepository {
	return &examSessionRepository{db: tx}
}

func (r *examSessionRepository) Create(ctx context.Context, session *model.ExamSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *examSessionRepository) FindByID(ctx context.Context, id uint) (*model.ExamSession, error) {
	var session model.ExamSession
	if err := r.db.WithContext(ctx).First(&session, id).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *examSessionRepository) FindActiveByUser(ctx context.Context, userID uint) (*model.ExamSession, error) {
	var session model.ExamSession
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, model.SessionStatusInProgress).
		First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// UpdateTotalQuestions records the drawn question count. Completed sessions
// are left alone and report zero rows affected.
func (r *examSessionRepository) UpdateTotalQuestions(ctx context.Context, id uint, total int) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.ExamSession{}).
		Where("id = ? AND status = ?", id, model.SessionStatusInProgress).
		Update("total_questions", total)
	return res.RowsAffected, res.Error
}

// Complete closes an in-progress session. Zero rows affected means the
// session was already completed by someone else.
func (r *examSessionRepository) Complete(ctx context.Context, id uint, correctCount int, score float64, endTime time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.ExamSession{}).
		Where("id = ? AND status = ?", id, model.SessionStatusInProgress).
		Updates(map[string]interface{}{
			"status":        model.SessionStatusCompleted,
			"correct_count": correctCount,
			"score":         score,
			"end_time":      endTime,
		})
	return res.RowsAffected, res.Error
}

func (r *examSessionRepository) ListByUser(ctx context.Context, userID uint, offset, limit int) ([]model.ExamSession, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.ExamSession{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var sessions []model.ExamSession
	err := query.Order("start_time DESC").Order("id DESC").Offset(offset).Limit(limit).Find(&sessions).Error
	if err != nil {
		return nil, 0, err
	}
	return sessions, total, nil
}
