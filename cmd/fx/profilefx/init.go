package profilefx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"workwithme/internal/repositories"
	"workwithme/internal/services"
)

var Module = fx.Provide(
	provideProfileRepo, provideProfileService)

func provideProfileRepo(db *gorm.DB) repositories.ProfileRepositoryInterface {
	return repositories.NewProfileRepository(db)
}

func provideProfileService(
	profileRepo repositories.ProfileRepositoryInterface,
	questionService services.QuestionServiceInterface,
) services.ProfileServiceInterface {
	return services.NewProfileService(profileRepo, questionService)
}
