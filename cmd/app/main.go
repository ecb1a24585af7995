package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"workwithme/cmd/fx/authfx"
	"workwithme/cmd/fx/catalogfx"
	"workwithme/cmd/fx/controllersfx"
	"workwithme/cmd/fx/dbfx"
	"workwithme/cmd/fx/profilefx"
	"workwithme/internal/api"
	"workwithme/internal/api/controllers"
	"workwithme/internal/services"
	"workwithme/pkg/config"
)

func main() {
	app := fx.New(
		fx.Provide(LoadConfig),
		dbfx.Module,
		catalogfx.Module,
		profilefx.Module,
		authfx.Module,
		controllersfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(SeedCatalog),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func LoadConfig() config.Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}
	return config.Load()
}

func ProvideRouter(
	categoryController *controllers.CategoryController,
	questionController *controllers.QuestionController,
	profileController *controllers.ProfileController,
	authController *controllers.AuthController,
	authService services.AuthServiceInterface,
) *gin.Engine {
	return api.NewRouter(
		categoryController,
		questionController,
		profileController,
		authController,
		authService,
	)
}

func SeedCatalog(cfg config.Config, seeder services.SeedServiceInterface) error {
	if !cfg.SeedOnStart {
		return nil
	}
	return seeder.Seed(context.Background())
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}
