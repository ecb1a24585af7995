package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"workwithme/internal/models/db_models"
	"workwithme/pkg/utils"
)

func TestCreateCategoryValidation(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	_, err := env.categories.Create(ctx, "", 0)
	assert.ErrorIs(t, err, utils.ErrValidation)

	_, err = env.categories.Create(ctx, "   ", 0)
	assert.ErrorIs(t, err, utils.ErrValidation)

	_, err = env.categories.Create(ctx, strings.Repeat("x", 101), 0)
	assert.ErrorIs(t, err, utils.ErrValidation)

	_, err = env.categories.Create(ctx, "Communication", -1)
	assert.ErrorIs(t, err, utils.ErrValidation)

	var count int64
	require.NoError(t, env.db.Model(&db_models.Category{}).Count(&count).Error)
	assert.Zero(t, count, "rejected categories must never persist")
}

func TestCategoryNameLengthCountsRunes(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	// 100 multi-byte characters is within bounds even though the byte
	// length is 200.
	name := strings.Repeat("é", 100)
	category, err := env.categories.Create(ctx, name, 0)
	require.NoError(t, err)
	assert.Equal(t, name, category.Name)

	_, err = env.categories.Create(ctx, strings.Repeat("é", 101), 1)
	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestCreateCategoryDuplicateName(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	first, err := env.categories.Create(ctx, "Work Style", 0)
	require.NoError(t, err)

	_, err = env.categories.Create(ctx, "Work Style", 1)
	assert.ErrorIs(t, err, utils.ErrDuplicateCategory)

	// After soft delete the name becomes available again.
	require.NoError(t, env.categories.SoftDelete(ctx, first.ID, false))

	again, err := env.categories.Create(ctx, "Work Style", 1)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, again.ID)
}

func TestListCategoriesFiltersAndSorts(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	b, err := env.categories.Create(ctx, "B", 2)
	require.NoError(t, err)
	a, err := env.categories.Create(ctx, "A", 1)
	require.NoError(t, err)
	_ = a

	require.NoError(t, env.categories.SoftDelete(ctx, b.ID, false))

	public, err := env.categories.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, "A", public[0].Name)

	all, err := env.categories.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "A", all[0].Name)
	assert.Equal(t, "B", all[1].Name)
}

func TestUpdateCategory(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	_, err := env.categories.Update(ctx, uuid.New(), nil, nil)
	assert.ErrorIs(t, err, utils.ErrCategoryNotFound)

	category, err := env.categories.Create(ctx, "Feedback", 0)
	require.NoError(t, err)
	_, err = env.categories.Create(ctx, "Strengths", 1)
	require.NoError(t, err)

	// Renaming onto another active category's name conflicts.
	name := "Strengths"
	_, err = env.categories.Update(ctx, category.ID, &name, nil)
	assert.ErrorIs(t, err, utils.ErrDuplicateCategory)

	// A no-op update leaves updatedAt untouched.
	before := category.UpdatedAt
	time.Sleep(10 * time.Millisecond)
	unchanged, err := env.categories.Update(ctx, category.ID, nil, nil)
	require.NoError(t, err)
	assert.True(t, unchanged.UpdatedAt.Equal(before))

	sameName := "Feedback"
	unchanged, err = env.categories.Update(ctx, category.ID, &sameName, nil)
	require.NoError(t, err)
	assert.True(t, unchanged.UpdatedAt.Equal(before))

	order := 5
	updated, err := env.categories.Update(ctx, category.ID, nil, &order)
	require.NoError(t, err)
	assert.Equal(t, 5, updated.DisplayOrder)
	assert.True(t, updated.UpdatedAt.After(before))
}

func TestSoftDeleteCategoryCascade(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	category, err := env.categories.Create(ctx, "Communication", 0)
	require.NoError(t, err)

	for _, text := range []string{"Preferred channel?", "Response time?"} {
		_, err = env.questions.Create(ctx, CreateQuestionInput{
			Text:       text,
			CategoryID: category.ID,
		})
		require.NoError(t, err)
	}

	// Without cascade the delete is refused and nothing changes.
	err = env.categories.SoftDelete(ctx, category.ID, false)
	assert.ErrorIs(t, err, utils.ErrCategoryNotEmpty)
	assert.Contains(t, err.Error(), "2 active questions")

	all, err := env.questions.List(ctx, &category.ID, true)
	require.NoError(t, err)
	for _, q := range all {
		assert.True(t, q.Active)
	}

	// With cascade the category and its questions flip inactive together.
	require.NoError(t, env.categories.SoftDelete(ctx, category.ID, true))

	categories, err := env.categories.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.False(t, categories[0].Active)

	all, err = env.questions.List(ctx, &category.ID, true)
	require.NoError(t, err)
	require.Len(t, all, 2)
	for _, q := range all {
		assert.False(t, q.Active)
	}
}

func TestSoftDeleteCategoryNotFound(t *testing.T) {
	env := setupServices(t)

	err := env.categories.SoftDelete(context.Background(), uuid.New(), true)
	assert.ErrorIs(t, err, utils.ErrCategoryNotFound)
}
