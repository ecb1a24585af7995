package controllersfx

import (
	"go.uber.org/fx"
	"workwithme/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewCategoryController),
	fx.Provide(controllers.NewQuestionController),
	fx.Provide(controllers.NewProfileController),
	fx.Provide(controllers.NewAuthController))
