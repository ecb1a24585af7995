package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"workwithme/internal/models/db_models"
)

func TestSeedIdempotent(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	require.NoError(t, env.seeder.Seed(ctx))
	require.NoError(t, env.seeder.Seed(ctx))

	var categoryCount, questionCount int64
	require.NoError(t, env.db.Model(&db_models.Category{}).Count(&categoryCount).Error)
	require.NoError(t, env.db.Model(&db_models.Question{}).Count(&questionCount).Error)
	assert.EqualValues(t, 6, categoryCount)
	assert.EqualValues(t, 14, questionCount)

	// Choice questions carry their choice lists.
	var preferred db_models.Question
	require.NoError(t, env.db.Where("question_key = ?", "preferred-channel").First(&preferred).Error)
	assert.Equal(t, db_models.TypeChoice, preferred.Type)
	assert.NotEmpty(t, preferred.Choices)
}

func TestSeedSkipsNonEmptyCatalog(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	_, err := env.categories.Create(ctx, "Custom", 0)
	require.NoError(t, err)

	require.NoError(t, env.seeder.Seed(ctx))

	var categoryCount int64
	require.NoError(t, env.db.Model(&db_models.Category{}).Count(&categoryCount).Error)
	assert.EqualValues(t, 1, categoryCount, "seeding must not run over an existing catalog")
}
