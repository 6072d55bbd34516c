package repository

import (
	"context"

	"github.com/lshigami/Tiku/internal/model"
	"gorm.io/gorm"
)

type AnswerRecordRepository interface {
	WithTx(tx *gorm.DB) AnswerRecordRepository
	CreateBatch(ctx context.Context, records []model.AnswerRecord) error
	FindBySession(ctx context.Context, sessionID uint) ([]model.AnswerRecord, error)
}

type answerRecordRepository struct {
	db *gorm.DB
}

func NewAnswerRecordRepository(db *gorm.DB) AnswerRecordRepository {
	return &answerRecordRepository{db: db}
}

func (r *answerRecordRepository) WithTx(tx *gorm.DB) AnswerRecordRepository {
	return &answerRecordRepository{db: tx}
}

func (r *answerRecordRepository) CreateBatch(ctx context.Context, records []model.AnswerRecord) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(records, 100).Error
}

func (r *answerRecordRepository) FindBySession(ctx context.Context, sessionID uint) ([]model.AnswerRecord, error) {
	var records []model.AnswerRecord
	err := r.db.WithContext(ctx).
		Where("exam_session_id = ?", sessionID).
		Order("id ASC").
		Find(&records).Error
	return records, err
}
