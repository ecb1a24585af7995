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

type CreateQuestionInput struct {
	Text        string
	CategoryID  uuid.UUID
	Order       int
	QuestionKey string
	Type        db_models.QuestionType
	Choices     []string
	Placeholder string
}

type UpdateQuestionInput struct {
	Text       *string
	CategoryID *uuid.UUID
	Order      *int
}

type QuestionServiceInterface interface {
	Create(ctx context.Context, input CreateQuestionInput) (*db_models.Question, error)
	List(ctx context.Context, categoryID *uuid.UUID, includeInactive bool) ([]db_models.Question, error)
	ListPublic(ctx context.Context) ([]db_models.Question, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateQuestionInput) (*db_models.Question, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
	ExistsInCategory(ctx context.Context, categoryID uuid.UUID, questionKey string) (bool, error)
}

type QuestionService struct {
	questionRepo repositories.QuestionRepositoryInterface
	categoryRepo repositories.CategoryRepositoryInterface
}

func NewQuestionService(
	questionRepo repositories.QuestionRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
) QuestionServiceInterface {
	return &QuestionService{
		questionRepo: questionRepo,
		categoryRepo: categoryRepo,
	}
}

func validateQuestionText(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("%w: question text cannot be empty", utils.ErrValidation)
	}
	if utf8.RuneCountInString(text) > 500 {
		return fmt.Errorf("%w: question text cannot exceed 500 characters", utils.ErrValidation)
	}
	return nil
}

func (s *QuestionService) ensureCategoryExists(ctx context.Context, categoryID uuid.UUID) error {
	category, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if category == nil {
		return fmt.Errorf("category with id %q does not exist: %w", categoryID, utils.ErrInvalidCategory)
	}
	return nil
}

func (s *QuestionService) Create(ctx context.Context, input CreateQuestionInput) (*db_models.Question, error) {
	if err := validateQuestionText(input.Text); err != nil {
		return nil, err
	}
	if input.Order < 0 {
		return nil, fmt.Errorf("%w: question order must be non-negative", utils.ErrValidation)
	}
	if err := s.ensureCategoryExists(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	qType := input.Type
	if qType == "" {
		qType = db_models.TypeText
	}
	if !qType.Valid() {
		return nil, fmt.Errorf("%w: question type must be TEXT, CHOICE or MULTICHOICE", utils.ErrValidation)
	}
	switch qType {
	case db_models.TypeChoice, db_models.TypeMultiChoice:
		if len(input.Choices) == 0 {
			return nil, fmt.Errorf("%w: %s questions require a non-empty choice list", utils.ErrValidation, qType)
		}
	default:
		if len(input.Choices) > 0 {
			return nil, fmt.Errorf("%w: TEXT questions cannot carry choices", utils.ErrValidation)
		}
	}

	question := &db_models.Question{
		CategoryID:   input.CategoryID,
		Text:         input.Text,
		Type:         qType,
		Choices:      input.Choices,
		Placeholder:  input.Placeholder,
		DisplayOrder: input.Order,
		Active:       true,
	}
	// The question key defaults to the generated id so it is always
	// referenceable from profile responses.
	question.ID = uuid.New()
	question.QuestionKey = input.QuestionKey
	if question.QuestionKey == "" {
		question.QuestionKey = question.ID.String()
	}

	if err := s.questionRepo.Create(ctx, question); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return question, nil
}

func (s *QuestionService) List(ctx context.Context, categoryID *uuid.UUID, includeInactive bool) ([]db_models.Question, error) {
	questions, err := s.questionRepo.List(ctx, categoryID, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return questions, nil
}

func (s *QuestionService) ListPublic(ctx context.Context) ([]db_models.Question, error) {
	questions, err := s.questionRepo.ListPublic(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return questions, nil
}

func (s *QuestionService) Update(ctx context.Context, id uuid.UUID, input UpdateQuestionInput) (*db_models.Question, error) {
	question, err := s.questionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if question == nil {
		return nil, utils.ErrQuestionNotFound
	}

	changed := false

	if input.Text != nil && *input.Text != question.Text {
		if err := validateQuestionText(*input.Text); err != nil {
			return nil, err
		}
		question.Text = *input.Text
		changed = true
	}

	if input.CategoryID != nil && *input.CategoryID != question.CategoryID {
		if err := s.ensureCategoryExists(ctx, *input.CategoryID); err != nil {
			return nil, err
		}
		question.CategoryID = *input.CategoryID
		changed = true
	}

	if input.Order != nil && *input.Order != question.DisplayOrder {
		if *input.Order < 0 {
			return nil, fmt.Errorf("%w: question order must be non-negative", utils.ErrValidation)
		}
		question.DisplayOrder = *input.Order
		changed = true
	}

	if !changed {
		return question, nil
	}

	if err := s.questionRepo.Save(ctx, question); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return question, nil
}

// SoftDelete marks the question inactive. Profile responses referencing it
// are left untouched.
func (s *QuestionService) SoftDelete(ctx context.Context, id uuid.UUID) error {
	question, err := s.questionRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if question == nil {
		return utils.ErrQuestionNotFound
	}

	question.Active = false
	if err := s.questionRepo.Save(ctx, question); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return nil
}

func (s *QuestionService) ExistsInCategory(ctx context.Context, categoryID uuid.UUID, questionKey string) (bool, error) {
	exists, err := s.questionRepo.ExistsInCategory(ctx, categoryID, questionKey)
	if err != nil {
		return false, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return exists, nil
}
