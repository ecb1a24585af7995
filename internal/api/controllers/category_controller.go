package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"workwithme/internal/models/request_models"
	"workwithme/internal/models/response_models"
	"workwithme/internal/services"
	"workwithme/pkg/utils"
)

type CategoryController struct {
	categoryService services.CategoryServiceInterface
}

func NewCategoryController(categoryService services.CategoryServiceInterface) *CategoryController {
	return &CategoryController{
		categoryService: categoryService,
	}
}

// ListActive godoc
// @Summary List active categories
// @Description Active categories in display order, for the public questionnaire
// @Tags Categories
// @Produce json
// @Success 200 {array} response_models.CategoryResponse
// @Router /api/categories [get]
func (cc *CategoryController) ListActive(c *gin.Context) {
	categories, err := cc.categoryService.List(c.Request.Context(), false)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response_models.NewCategoryResponses(categories))
}

// ListAll godoc
// @Summary List all categories
// @Description Admin view including soft-deleted categories
// @Tags Admin
// @Produce json
// @Success 200 {array} response_models.CategoryResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/admin/categories [get]
func (cc *CategoryController) ListAll(c *gin.Context) {
	categories, err := cc.categoryService.List(c.Request.Context(), true)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response_models.NewCategoryResponses(categories))
}

// Create godoc
// @Summary Create a category
// @Tags Admin
// @Accept json
// @Produce json
// @Success 201 {object} response_models.CategoryResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/admin/categories [post]
func (cc *CategoryController) Create(c *gin.Context) {
	var req request_models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	category, err := cc.categoryService.Create(c.Request.Context(), req.Name, req.Order)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response_models.NewCategoryResponse(*category))
}

// Update godoc
// @Summary Update a category
// @Tags Admin
// @Accept json
// @Produce json
// @Success 200 {object} response_models.CategoryResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/admin/categories/{id} [put]
func (cc *CategoryController) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid category ID format")
		return
	}

	var req request_models.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	category, err := cc.categoryService.Update(c.Request.Context(), id, req.Name, req.Order)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response_models.NewCategoryResponse(*category))
}

// Delete godoc
// @Summary Soft delete a category
// @Description Requires cascade=true when the category still has active questions
// @Tags Admin
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/admin/categories/{id} [delete]
func (cc *CategoryController) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid category ID format")
		return
	}

	cascade, err := strconv.ParseBool(c.DefaultQuery("cascade", "false"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid cascade parameter")
		return
	}

	if err := cc.categoryService.SoftDelete(c.Request.Context(), id, cascade); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
