package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"workwithme/internal/models/db_models"
)

type QuestionRepositoryInterface interface {
	Create(ctx context.Context, question *db_models.Question) error
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.Question, error)
	List(ctx context.Context, categoryID *uuid.UUID, includeInactive bool) ([]db_models.Question, error)
	ListPublic(ctx context.Context) ([]db_models.Question, error)
	CountActiveInCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)
	ExistsInCategory(ctx context.Context, categoryID uuid.UUID, questionKey string) (bool, error)
	Save(ctx context.Context, question *db_models.Question) error
}

func NewQuestionRepository(db *gorm.DB) QuestionRepositoryInterface {
	return &QuestionRepository{db: db}
}

type QuestionRepository struct {
	db *gorm.DB
}

func (r *QuestionRepository) Create(ctx context.Context, question *db_models.Question) error {
	return r.db.WithContext(ctx).Create(question).Error
}

func (r *QuestionRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Question, error) {
	var question db_models.Question
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&question).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &question, nil
}

func (r *QuestionRepository) List(ctx context.Context, categoryID *uuid.UUID, includeInactive bool) ([]db_models.Question, error) {
	var questions []db_models.Question
	query := r.db.WithContext(ctx)
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}
	if !includeInactive {
		query = query.Where("active = ?", true)
	}
	err := query.Order("category_id ASC, display_order ASC, created_at ASC").Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// ListPublic returns active questions belonging to active categories only;
// soft-deleting a category hides its questions even when they were not
// cascaded individually.
func (r *QuestionRepository) ListPublic(ctx context.Context) ([]db_models.Question, error) {
	var questions []db_models.Question
	err := r.db.WithContext(ctx).
		Joins("JOIN categories ON categories.id = questions.category_id AND categories.active = ?", true).
		Where("questions.active = ?", true).
		Order("questions.category_id ASC, questions.display_order ASC, questions.created_at ASC").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *QuestionRepository) CountActiveInCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.Question{}).
		Where("category_id = ? AND active = ?", categoryID, true).
		Count(&count).Error
	return count, err
}

func (r *QuestionRepository) ExistsInCategory(ctx context.Context, categoryID uuid.UUID, questionKey string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.Question{}).
		Where("category_id = ? AND question_key = ?", categoryID, questionKey).
		Count(&count).Error
	return count > 0, err
}

func (r *QuestionRepository) Save(ctx context.Context, question *db_models.Question) error {
	return r.db.WithContext(ctx).Save(question).Error
}
