package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"workwithme/internal/models/db_models"
)

type ProfileRepositoryInterface interface {
	Create(ctx context.Context, profile *db_models.Profile) error
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.Profile, error)
	GetByShareableID(ctx context.Context, shareableID string) (*db_models.Profile, error)
	Save(ctx context.Context, profile *db_models.Profile) error
}

func NewProfileRepository(db *gorm.DB) ProfileRepositoryInterface {
	return &ProfileRepository{db: db}
}

type ProfileRepository struct {
	db *gorm.DB
}

func (r *ProfileRepository) Create(ctx context.Context, profile *db_models.Profile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *ProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Profile, error) {
	var profile db_models.Profile
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepository) GetByShareableID(ctx context.Context, shareableID string) (*db_models.Profile, error) {
	var profile db_models.Profile
	err := r.db.WithContext(ctx).Where("shareable_id = ?", shareableID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepository) Save(ctx context.Context, profile *db_models.Profile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}
