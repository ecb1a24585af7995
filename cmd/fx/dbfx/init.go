package dbfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"workwithme/internal/infra"
	"workwithme/pkg/config"
)

var Module = fx.Provide(
	provideDB)

func provideDB(cfg config.Config) *gorm.DB {
	return infra.InitPostgresql(cfg)
}
