package services

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"workwithme/internal/models/db_models"
	"workwithme/internal/repositories"
	"workwithme/pkg/utils"
)

type CategoryServiceInterface interface {
	Create(ctx context.Context, name string, order int) (*db_models.Category, error)
	List(ctx context.Context, includeInactive bool) ([]db_models.Category, error)
	Update(ctx context.Context, id uuid.UUID, name *string, order *int) (*db_models.Category, error)
	SoftDelete(ctx context.Context, id uuid.UUID, cascade bool) error
}

type CategoryService struct {
	categoryRepo repositories.CategoryRepositoryInterface
	questionRepo repositories.QuestionRepositoryInterface
}

func NewCategoryService(
	categoryRepo repositories.CategoryRepositoryInterface,
	questionRepo repositories.QuestionRepositoryInterface,
) CategoryServiceInterface {
	return &CategoryService{
		categoryRepo: categoryRepo,
		questionRepo: questionRepo,
	}
}

func validateCategoryName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: category name cannot be empty", utils.ErrValidation)
	}
	if utf8.RuneCountInString(name) > 100 {
		return fmt.Errorf("%w: category name cannot exceed 100 characters", utils.ErrValidation)
	}
	return nil
}

func (s *CategoryService) Create(ctx context.Context, name string, order int) (*db_models.Category, error) {
	if err := validateCategoryName(name); err != nil {
		return nil, err
	}
	if order < 0 {
		return nil, fmt.Errorf("%w: category order must be non-negative", utils.ErrValidation)
	}

	existing, err := s.categoryRepo.FindActiveByName(ctx, name, uuid.Nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if existing != nil {
		return nil, fmt.Errorf("category with name %q already exists: %w", name, utils.ErrDuplicateCategory)
	}

	category := &db_models.Category{
		Name:         name,
		DisplayOrder: order,
		Active:       true,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return category, nil
}

func (s *CategoryService) List(ctx context.Context, includeInactive bool) ([]db_models.Category, error) {
	categories, err := s.categoryRepo.List(ctx, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return categories, nil
}

// Update applies the supplied fields only. A no-op update (nothing supplied
// or nothing changed) returns the entity as is without bumping updatedAt.
func (s *CategoryService) Update(ctx context.Context, id uuid.UUID, name *string, order *int) (*db_models.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if category == nil {
		return nil, utils.ErrCategoryNotFound
	}

	changed := false

	if name != nil && *name != category.Name {
		if err := validateCategoryName(*name); err != nil {
			return nil, err
		}
		existing, err := s.categoryRepo.FindActiveByName(ctx, *name, id)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
		}
		if existing != nil {
			return nil, fmt.Errorf("category with name %q already exists: %w", *name, utils.ErrDuplicateCategory)
		}
		category.Name = *name
		changed = true
	}

	if order != nil && *order != category.DisplayOrder {
		if *order < 0 {
			return nil, fmt.Errorf("%w: category order must be non-negative", utils.ErrValidation)
		}
		category.DisplayOrder = *order
		changed = true
	}

	if !changed {
		return category, nil
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return category, nil
}

// SoftDelete deactivates a category. When the category still owns active
// questions the caller must pass cascade, in which case the questions are
// deactivated with the category in one transaction.
func (s *CategoryService) SoftDelete(ctx context.Context, id uuid.UUID, cascade bool) error {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if category == nil {
		return utils.ErrCategoryNotFound
	}

	count, err := s.questionRepo.CountActiveInCategory(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if count > 0 && !cascade {
		return fmt.Errorf("cannot delete category with %d active questions, use cascade=true to soft delete questions as well: %w",
			count, utils.ErrCategoryNotEmpty)
	}

	if err := s.categoryRepo.SoftDeleteWithQuestions(ctx, id); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return nil
}
