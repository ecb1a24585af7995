package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"workwithme/internal/models/db_models"
	"workwithme/internal/models/request_models"
	"workwithme/internal/models/response_models"
	"workwithme/internal/services"
	"workwithme/pkg/utils"
)

type QuestionController struct {
	questionService services.QuestionServiceInterface
}

func NewQuestionController(questionService services.QuestionServiceInterface) *QuestionController {
	return &QuestionController{
		questionService: questionService,
	}
}

// ListActive godoc
// @Summary List active questions
// @Description Active questions from active categories, driving the questionnaire
// @Tags Questions
// @Produce json
// @Success 200 {array} response_models.QuestionResponse
// @Router /api/questions [get]
func (qc *QuestionController) ListActive(c *gin.Context) {
	questions, err := qc.questionService.ListPublic(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response_models.NewQuestionResponses(questions))
}

// ListAll godoc
// @Summary List all questions
// @Description Admin view including soft-deleted questions, optionally filtered by category
// @Tags Admin
// @Produce json
// @Param categoryId query string false "Category ID filter"
// @Success 200 {array} response_models.QuestionResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/admin/questions [get]
func (qc *QuestionController) ListAll(c *gin.Context) {
	var categoryID *uuid.UUID
	if raw := c.Query("categoryId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid category ID format")
			return
		}
		categoryID = &id
	}

	questions, err := qc.questionService.List(c.Request.Context(), categoryID, true)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response_models.NewQuestionResponses(questions))
}

// Create godoc
// @Summary Create a question
// @Tags Admin
// @Accept json
// @Produce json
// @Success 201 {object} response_models.QuestionResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/admin/questions [post]
func (qc *QuestionController) Create(c *gin.Context) {
	var req request_models.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid category ID format")
		return
	}

	question, err := qc.questionService.Create(c.Request.Context(), services.CreateQuestionInput{
		Text:        req.Text,
		CategoryID:  categoryID,
		Order:       req.Order,
		QuestionKey: req.QuestionID,
		Type:        db_models.QuestionType(req.Type),
		Choices:     req.Choices,
		Placeholder: req.Placeholder,
	})
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response_models.NewQuestionResponse(*question))
}

// Update godoc
// @Summary Update a question
// @Tags Admin
// @Accept json
// @Produce json
// @Success 200 {object} response_models.QuestionResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/admin/questions/{id} [put]
func (qc *QuestionController) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid question ID format")
		return
	}

	var req request_models.UpdateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	input := services.UpdateQuestionInput{
		Text:  req.Text,
		Order: req.Order,
	}
	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid category ID format")
			return
		}
		input.CategoryID = &categoryID
	}

	question, err := qc.questionService.Update(c.Request.Context(), id, input)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response_models.NewQuestionResponse(*question))
}

// Delete godoc
// @Summary Soft delete a question
// @Description Existing profile responses to the question are preserved
// @Tags Admin
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/admin/questions/{id} [delete]
func (qc *QuestionController) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid question ID format")
		return
	}

	if err := qc.questionService.SoftDelete(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
