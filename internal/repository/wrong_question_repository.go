package repository

import (
	"context"
	"time"

	"github.com/lshigami/Tiku/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WrongQuestionRepository interface {
	WithTx(tx *gorm.DB) WrongQuestionRepository
	Upsert(ctx context.Context, userID, questionID uint, at time.Time) error
	FindByID(ctx context.Context, id uint) (*model.WrongQuestionEntry, error)
	FindByUserAndQuestion(ctx context.Context, userID, questionID uint) (*model.WrongQuestionEntry, error)
	SetMastered(ctx context.Context, id uint) error
	ListByUser(ctx context.Context, userID uint, includeMastered bool, offset, limit int) ([]model.WrongQuestionEntry, int64, error)
	DeleteByQuestion(ctx context.Context, questionID uint) error
	DeleteAll(ctx context.Context) error
}

type wrongQuestionRepository struct {
	db *gorm.DB
}

func NewWrongQuestionRepository(db *gorm.DB) WrongQuestionRepository {
	return &wrongQuestionRepository{db: db}
}

func (r *wrongQuestionRepository) WithTx(tx *gorm.DB) WrongQuestionRepository {
	return &wrongQuestionRepository{db: tx}
}

// Upsert creates the (user, question) entry with a count of one, or bumps
// the count of the existing entry and clears its mastered flag.
func (r *wrongQuestionRepository) Upsert(ctx context.Context, userID, questionID uint, at time.Time) error {
	entry := model.WrongQuestionEntry{
		UserID:        userID,
		QuestionID:    questionID,
		WrongCount:    1,
		LastWrongTime: at,
		IsMastered:    false,
	}
	return r.db.WithContext(ctx).
		Omit("Question").
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "question_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"wrong_count":     gorm.Expr("wrong_questions.wrong_count + 1"),
				"last_wrong_time": at,
				"is_mastered":     false,
			}),
		}).
		Create(&entry).Error
}

func (r *wrongQuestionRepository) FindByID(ctx context.Context, id uint) (*model.WrongQuestionEntry, error) {
	var entry model.WrongQuestionEntry
	if err := r.db.WithContext(ctx).First(&entry, id).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *wrongQuestionRepository) FindByUserAndQuestion(ctx context.Context, userID, questionID uint) (*model.WrongQuestionEntry, error) {
	var entry model.WrongQuestionEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND question_id = ?", userID, questionID).
		First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *wrongQuestionRepository) SetMastered(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&model.WrongQuestionEntry{}).
		Where("id = ?", id).
		Update("is_mastered", true).Error
}

// ListByUser returns the user's entries, newest mistake first, each with its
// question loaded. Entries whose question no longer exists are left out.
func (r *wrongQuestionRepository) ListByUser(ctx context.Context, userID uint, includeMastered bool, offset, limit int) ([]model.WrongQuestionEntry, int64, error) {
	scope := func(db *gorm.DB) *gorm.DB {
		db = db.Where("wrong_questions.user_id = ?", userID)
		if !includeMastered {
			db = db.Where("wrong_questions.is_mastered = ?", false)
		}
		return db
	}

	var total int64
	err := r.db.WithContext(ctx).Model(&model.WrongQuestionEntry{}).
		Joins("JOIN questions ON questions.id = wrong_questions.question_id").
		Scopes(scope).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var entries []model.WrongQuestionEntry
	err = r.db.WithContext(ctx).
		InnerJoins("Question").
		Scopes(scope).
		Order("wrong_questions.last_wrong_time DESC").
		Order("wrong_questions.id DESC").
		Offset(offset).Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

func (r *wrongQuestionRepository) DeleteByQuestion(ctx context.Context, questionID uint) error {
	return r.db.WithContext(ctx).Where("question_id = ?", questionID).Delete(&model.WrongQuestionEntry{}).Error
}

func (r *wrongQuestionRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.WrongQuestionEntry{}).Error
}
