package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"workwithme/internal/models/db_models"
	"workwithme/internal/repositories"
	"workwithme/pkg/utils"
)

type ProfileServiceInterface interface {
	Create(ctx context.Context, name string) (*db_models.Profile, error)
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.Profile, error)
	GetByShareableID(ctx context.Context, shareableID string) (*db_models.Profile, error)
	Update(ctx context.Context, id uuid.UUID, responses db_models.ResponseMap) (*db_models.Profile, error)
}

type ProfileService struct {
	profileRepo     repositories.ProfileRepositoryInterface
	questionService QuestionServiceInterface
}

func NewProfileService(
	profileRepo repositories.ProfileRepositoryInterface,
	questionService QuestionServiceInterface,
) ProfileServiceInterface {
	return &ProfileService{
		profileRepo:     profileRepo,
		questionService: questionService,
	}
}

func (s *ProfileService) Create(ctx context.Context, name string) (*db_models.Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", utils.ErrValidation)
	}

	profile := &db_models.Profile{
		Name:        name,
		ShareableID: uuid.NewString(),
		Responses:   datatypes.NewJSONType(db_models.ResponseMap{}),
	}
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return profile, nil
}

func (s *ProfileService) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Profile, error) {
	profile, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return profile, nil
}

func (s *ProfileService) GetByShareableID(ctx context.Context, shareableID string) (*db_models.Profile, error) {
	profile, err := s.profileRepo.GetByShareableID(ctx, shareableID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return profile, nil
}

// Update replaces the entire responses document. Every submitted
// (category, question) pair must name a question that exists in that
// category; existence rather than activeness is checked so answers
// recorded against since-deleted questions remain submittable.
func (s *ProfileService) Update(ctx context.Context, id uuid.UUID, responses db_models.ResponseMap) (*db_models.Profile, error) {
	profile, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if profile == nil {
		return nil, utils.ErrProfileNotFound
	}

	if responses == nil {
		responses = db_models.ResponseMap{}
	}
	for categoryKey, answers := range responses {
		categoryID, err := uuid.Parse(categoryKey)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a valid category id", utils.ErrValidation, categoryKey)
		}
		for questionKey := range answers {
			exists, err := s.questionService.ExistsInCategory(ctx, categoryID, questionKey)
			if err != nil {
				return nil, err
			}
			if !exists {
				return nil, fmt.Errorf("%w: question %q not found in category %q",
					utils.ErrValidation, questionKey, categoryKey)
			}
		}
	}

	profile.Responses = datatypes.NewJSONType(responses)
	if err := s.profileRepo.Save(ctx, profile); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return profile, nil
}
