package catalogfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"workwithme/internal/repositories"
	"workwithme/internal/services"
)

var Module = fx.Provide(
	provideCategoryRepo, provideQuestionRepo,
	provideCategoryService, provideQuestionService, provideSeedService)

func provideCategoryRepo(db *gorm.DB) repositories.CategoryRepositoryInterface {
	return repositories.NewCategoryRepository(db)
}

func provideQuestionRepo(db *gorm.DB) repositories.QuestionRepositoryInterface {
	return repositories.NewQuestionRepository(db)
}

func provideCategoryService(
	categoryRepo repositories.CategoryRepositoryInterface,
	questionRepo repositories.QuestionRepositoryInterface,
) services.CategoryServiceInterface {
	return services.NewCategoryService(categoryRepo, questionRepo)
}

func provideQuestionService(
	questionRepo repositories.QuestionRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
) services.QuestionServiceInterface {
	return services.NewQuestionService(questionRepo, categoryRepo)
}

func provideSeedService(
	categoryRepo repositories.CategoryRepositoryInterface,
	questionRepo repositories.QuestionRepositoryInterface,
) services.SeedServiceInterface {
	return services.NewSeedService(categoryRepo, questionRepo)
}
