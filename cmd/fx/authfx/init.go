package authfx

import (
	"go.uber.org/fx"
	"workwithme/internal/services"
	"workwithme/pkg/config"
)

var Module = fx.Provide(
	provideAuthService)

func provideAuthService(cfg config.Config) services.AuthServiceInterface {
	return services.NewAuthService(cfg)
}
