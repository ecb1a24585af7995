package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"workwithme/internal/api/controllers"
	"workwithme/internal/services"
	"workwithme/pkg/middleware"
)

// NewRouter assembles the gin engine: public questionnaire routes, the
// admin catalog API behind the credential check, and the health probes.
func NewRouter(
	categoryController *controllers.CategoryController,
	questionController *controllers.QuestionController,
	profileController *controllers.ProfileController,
	authController *controllers.AuthController,
	authService services.AuthServiceInterface,
) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "How to Work With Me API - Server is running")
	})
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	apiGroup := r.Group("/api")
	apiGroup.GET("/categories", categoryController.ListActive)
	apiGroup.GET("/questions", questionController.ListActive)
	apiGroup.POST("/profiles", profileController.Create)
	apiGroup.GET("/profiles/:id", profileController.GetByID)
	apiGroup.PUT("/profiles/:id", profileController.Update)
	apiGroup.GET("/profiles/share/:shareableId", profileController.GetByShareableID)

	adminGroup := apiGroup.Group("/admin")
	adminGroup.POST("/auth", authController.Login)

	protected := adminGroup.Group("")
	protected.Use(middleware.AdminAuthMiddleware(authService))
	protected.GET("/categories", categoryController.ListAll)
	protected.POST("/categories", categoryController.Create)
	protected.PUT("/categories/:id", categoryController.Update)
	protected.DELETE("/categories/:id", categoryController.Delete)
	protected.GET("/questions", questionController.ListAll)
	protected.POST("/questions", questionController.Create)
	protected.PUT("/questions/:id", questionController.Update)
	protected.DELETE("/questions/:id", questionController.Delete)

	return r
}
