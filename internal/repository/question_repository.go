package repository

import (
	"context"

	"github.com/lshigami/Tiku/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const hashLookupChunk = 500

type QuestionFilter struct {
	Type   string
	Search string
	Offset int
	Limit  int
}

type QuestionRepository interface {
	WithTx(tx *gorm.DB) QuestionRepository
	Create(ctx context.Context, question *model.Question) error
	CreateIgnoringDuplicates(ctx context.Context, questions []*model.Question) (int64, error)
	FindByID(ctx context.Context, id uint) (*model.Question, error)
	FindByIDs(ctx context.Context, ids []uint) ([]model.Question, error)
	ExistsByText(ctx context.Context, text string) (bool, error)
	ExistingHashes(ctx context.Context, hashes []string) (map[string]bool, error)
	ListIDsByType(ctx context.Context, questionType string) ([]uint, error)
	CountByType(ctx context.Context) (map[string]int64, error)
	List(ctx context.Context, filter QuestionFilter) ([]model.Question, int64, error)
	Update(ctx context.Context, question *model.Question) error
	Delete(ctx context.Context, id uint) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) WithTx(tx *gorm.DB) QuestionRepository {
	return &questionRepository{db: tx}
}

func (r *questionRepository) Create(ctx context.Context, question *model.Question) error {
	return r.db.WithContext(ctx).Create(question).Error
}

// CreateIgnoringDuplicates inserts questions, silently skipping any whose
// text hash is already stored. It returns the number of rows inserted.
func (r *questionRepository) CreateIgnoringDuplicates(ctx context.Context, questions []*model.Question) (int64, error) {
	if len(questions) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "text_hash"}}, DoNothing: true}).
		CreateInBatches(questions, 100)
	return res.RowsAffected, res.Error
}

func (r *questionRepository) FindByID(ctx context.Context, id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.WithContext(ctx).First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

// FindByIDs loads the given questions. Missing ids are skipped; order is
// not guaranteed.
func (r *questionRepository) FindByIDs(ctx context.Context, ids []uint) ([]model.Question, error) {
	var questions []model.Question
	if len(ids) == 0 {
		return questions, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) ExistsByText(ctx context.Context, text string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Question{}).
		Where("text_hash = ? AND question_text = ?", model.HashText(text), text).
		Count(&count).Error
	return count > 0, err
}

func (r *questionRepository) ExistingHashes(ctx context.Context, hashes []string) (map[string]bool, error) {
	found := make(map[string]bool)
	for start := 0; start < len(hashes); start += hashLookupChunk {
		end := min(start+hashLookupChunk, len(hashes))
		var rows []string
		err := r.db.WithContext(ctx).Model(&model.Question{}).
			Where("text_hash IN ?", hashes[start:end]).
			Pluck("text_hash", &rows).Error
		if err != nil {
			return nil, err
		}
		for _, h := range rows {
			found[h] = true
		}
	}
	return found, nil
}

func (r *questionRepository) ListIDsByType(ctx context.Context, questionType string) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).Model(&model.Question{}).
		Where("question_type = ?", questionType).
		Order("id ASC").
		Pluck("id", &ids).Error
	return ids, err
}

func (r *questionRepository) CountByType(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		QuestionType string
		Count        int64
	}
	err := r.db.WithContext(ctx).Model(&model.Question{}).
		Select("question_type, COUNT(*) AS count").
		Group("question_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.QuestionType] = row.Count
	}
	return counts, nil
}

func (r *questionRepository) List(ctx context.Context, filter QuestionFilter) ([]model.Question, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Question{})
	if filter.Type != "" {
		query = query.Where("question_type = ?", filter.Type)
	}
	if filter.Search != "" {
		query = query.Where("question_text LIKE ?", "%"+filter.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var questions []model.Question
	err := query.Order("id DESC").Offset(filter.Offset).Limit(filter.Limit).Find(&questions).Error
	if err != nil {
		return nil, 0, err
	}
	return questions, total, nil
}

func (r *questionRepository) Update(ctx context.Context, question *model.Question) error {
	return r.db.WithContext(ctx).Save(question).Error
}

func (r *questionRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Question{}, id)
	return res.RowsAffected, res.Error
}

func (r *questionRepository) DeleteAll(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.Question{})
	return res.RowsAffected, res.Error
}
