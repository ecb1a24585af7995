package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"workwithme/internal/infra"
	"workwithme/internal/repositories"
)

// setupTestDB opens a unique in-memory database per test to avoid
// cross-test collisions.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, infra.AutoMigrate(db))
	return db
}

type testEnv struct {
	db         *gorm.DB
	categories CategoryServiceInterface
	questions  QuestionServiceInterface
	profiles   ProfileServiceInterface
	seeder     SeedServiceInterface
}

func setupServices(t *testing.T) testEnv {
	t.Helper()
	db := setupTestDB(t)
	categoryRepo := repositories.NewCategoryRepository(db)
	questionRepo := repositories.NewQuestionRepository(db)
	profileRepo := repositories.NewProfileRepository(db)

	questionService := NewQuestionService(questionRepo, categoryRepo)
	return testEnv{
		db:         db,
		categories: NewCategoryService(categoryRepo, questionRepo),
		questions:  questionService,
		profiles:   NewProfileService(profileRepo, questionService),
		seeder:     NewSeedService(categoryRepo, questionRepo),
	}
}
