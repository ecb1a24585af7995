package services

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"workwithme/internal/models/db_models"
	"workwithme/pkg/utils"
)

func TestCreateQuestionValidation(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	category, err := env.categories.Create(ctx, "Work Style", 0)
	require.NoError(t, err)

	_, err = env.questions.Create(ctx, CreateQuestionInput{Text: "Valid?", CategoryID: uuid.New()})
	assert.ErrorIs(t, err, utils.ErrInvalidCategory)

	_, err = env.questions.Create(ctx, CreateQuestionInput{Text: "  ", CategoryID: category.ID})
	assert.ErrorIs(t, err, utils.ErrValidation)

	_, err = env.questions.Create(ctx, CreateQuestionInput{
		Text:       strings.Repeat("x", 501),
		CategoryID: category.ID,
	})
	assert.ErrorIs(t, err, utils.ErrValidation)

	// The bound counts characters, not bytes.
	_, err = env.questions.Create(ctx, CreateQuestionInput{
		Text:       strings.Repeat("ü", 500),
		CategoryID: category.ID,
	})
	require.NoError(t, err)
	_, err = env.questions.Create(ctx, CreateQuestionInput{
		Text:       strings.Repeat("ü", 501),
		CategoryID: category.ID,
	})
	assert.ErrorIs(t, err, utils.ErrValidation)

	_, err = env.questions.Create(ctx, CreateQuestionInput{
		Text:       "Pick one",
		CategoryID: category.ID,
		Type:       db_models.TypeChoice,
	})
	assert.ErrorIs(t, err, utils.ErrValidation, "CHOICE without choices")

	_, err = env.questions.Create(ctx, CreateQuestionInput{
		Text:       "Free text",
		CategoryID: category.ID,
		Type:       db_models.TypeText,
		Choices:    []string{"stray"},
	})
	assert.ErrorIs(t, err, utils.ErrValidation, "TEXT with choices")

	_, err = env.questions.Create(ctx, CreateQuestionInput{
		Text:       "Bad type",
		CategoryID: category.ID,
		Type:       "RANGE",
	})
	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestCreateQuestionDefaults(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	category, err := env.categories.Create(ctx, "Feedback", 0)
	require.NoError(t, err)

	question, err := env.questions.Create(ctx, CreateQuestionInput{
		Text:       "How do you prefer feedback?",
		CategoryID: category.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, db_models.TypeText, question.Type)
	assert.Equal(t, question.ID.String(), question.QuestionKey)
	assert.True(t, question.Active)

	choice, err := env.questions.Create(ctx, CreateQuestionInput{
		Text:        "Preferred channel?",
		CategoryID:  category.ID,
		QuestionKey: "preferred-channel",
		Type:        db_models.TypeChoice,
		Choices:     []string{"Slack", "Email"},
	})
	require.NoError(t, err)
	assert.Equal(t, "preferred-channel", choice.QuestionKey)
	assert.Equal(t, []string{"Slack", "Email"}, []string(choice.Choices))
}

func TestListPublicQuestions(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	active, err := env.categories.Create(ctx, "Active", 0)
	require.NoError(t, err)
	doomed, err := env.categories.Create(ctx, "Doomed", 1)
	require.NoError(t, err)

	visible, err := env.questions.Create(ctx, CreateQuestionInput{Text: "Visible?", CategoryID: active.ID})
	require.NoError(t, err)

	hidden, err := env.questions.Create(ctx, CreateQuestionInput{Text: "Hidden?", CategoryID: active.ID})
	require.NoError(t, err)
	require.NoError(t, env.questions.SoftDelete(ctx, hidden.ID))

	_, err = env.questions.Create(ctx, CreateQuestionInput{Text: "Orphaned?", CategoryID: doomed.ID})
	require.NoError(t, err)
	require.NoError(t, env.categories.SoftDelete(ctx, doomed.ID, true))

	public, err := env.questions.ListPublic(ctx)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, visible.ID, public[0].ID)
}

func TestUpdateQuestion(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	_, err := env.questions.Update(ctx, uuid.New(), UpdateQuestionInput{})
	assert.ErrorIs(t, err, utils.ErrQuestionNotFound)

	category, err := env.categories.Create(ctx, "Personal", 0)
	require.NoError(t, err)
	other, err := env.categories.Create(ctx, "Other", 1)
	require.NoError(t, err)

	question, err := env.questions.Create(ctx, CreateQuestionInput{Text: "Hobbies?", CategoryID: category.ID})
	require.NoError(t, err)

	badCategory := uuid.New()
	_, err = env.questions.Update(ctx, question.ID, UpdateQuestionInput{CategoryID: &badCategory})
	assert.ErrorIs(t, err, utils.ErrInvalidCategory)

	text := "Hobbies or interests?"
	order := 3
	updated, err := env.questions.Update(ctx, question.ID, UpdateQuestionInput{
		Text:       &text,
		CategoryID: &other.ID,
		Order:      &order,
	})
	require.NoError(t, err)
	assert.Equal(t, text, updated.Text)
	assert.Equal(t, other.ID, updated.CategoryID)
	assert.Equal(t, 3, updated.DisplayOrder)
}

func TestSoftDeleteQuestion(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	assert.ErrorIs(t, env.questions.SoftDelete(ctx, uuid.New()), utils.ErrQuestionNotFound)

	category, err := env.categories.Create(ctx, "Pet Peeves", 0)
	require.NoError(t, err)
	question, err := env.questions.Create(ctx, CreateQuestionInput{Text: "Peeves?", CategoryID: category.ID})
	require.NoError(t, err)

	require.NoError(t, env.questions.SoftDelete(ctx, question.ID))

	all, err := env.questions.List(ctx, &category.ID, true)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.False(t, all[0].Active)
}

func TestExistsInCategory(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	category, err := env.categories.Create(ctx, "Strengths", 0)
	require.NoError(t, err)
	question, err := env.questions.Create(ctx, CreateQuestionInput{
		Text:        "Key strengths?",
		CategoryID:  category.ID,
		QuestionKey: "strengths",
	})
	require.NoError(t, err)

	exists, err := env.questions.ExistsInCategory(ctx, category.ID, "strengths")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = env.questions.ExistsInCategory(ctx, category.ID, "unknown")
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = env.questions.ExistsInCategory(ctx, uuid.New(), "strengths")
	require.NoError(t, err)
	assert.False(t, exists)

	// Pairing survives soft delete so historical responses stay valid.
	require.NoError(t, env.questions.SoftDelete(ctx, question.ID))
	exists, err = env.questions.ExistsInCategory(ctx, category.ID, "strengths")
	require.NoError(t, err)
	assert.True(t, exists)
}
