package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"workwithme/internal/models/db_models"
)

type CategoryRepositoryInterface interface {
	Create(ctx context.Context, category *db_models.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.Category, error)
	FindActiveByName(ctx context.Context, name string, excludeID uuid.UUID) (*db_models.Category, error)
	List(ctx context.Context, includeInactive bool) ([]db_models.Category, error)
	Save(ctx context.Context, category *db_models.Category) error
	SoftDeleteWithQuestions(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

func NewCategoryRepository(db *gorm.DB) CategoryRepositoryInterface {
	return &CategoryRepository{db: db}
}

type CategoryRepository struct {
	db *gorm.DB
}

func (r *CategoryRepository) Create(ctx context.Context, category *db_models.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *CategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Category, error) {
	var category db_models.Category
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

// FindActiveByName looks up an active category by name, skipping excludeID
// so updates can re-check uniqueness against everything but themselves.
func (r *CategoryRepository) FindActiveByName(ctx context.Context, name string, excludeID uuid.UUID) (*db_models.Category, error) {
	var category db_models.Category
	query := r.db.WithContext(ctx).Where("name = ? AND active = ?", name, true)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) List(ctx context.Context, includeInactive bool) ([]db_models.Category, error) {
	var categories []db_models.Category
	query := r.db.WithContext(ctx)
	if !includeInactive {
		query = query.Where("active = ?", true)
	}
	err := query.Order("display_order ASC, created_at ASC").Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoryRepository) Save(ctx context.Context, category *db_models.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

// SoftDeleteWithQuestions flips the category and all of its still-active
// questions inactive in one transaction.
func (r *CategoryRepository) SoftDeleteWithQuestions(ctx context.Context, id uuid.UUID) error {
	now := time.Now()
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&db_models.Question{}).
			Where("category_id = ? AND active = ?", id, true).
			Updates(map[string]interface{}{"active": false, "updated_at": now}).Error; err != nil {
			return err
		}
		return tx.Model(&db_models.Category{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{"active": false, "updated_at": now}).Error
	})
}

func (r *CategoryRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.Category{}).Count(&count).Error
	return count, err
}
