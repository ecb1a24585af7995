package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"workwithme/internal/models/request_models"
	"workwithme/internal/models/response_models"
	"workwithme/internal/services"
	"workwithme/pkg/utils"
)

type ProfileController struct {
	profileService services.ProfileServiceInterface
}

func NewProfileController(profileService services.ProfileServiceInterface) *ProfileController {
	return &ProfileController{
		profileService: profileService,
	}
}

// Create godoc
// @Summary Create a profile
// @Tags Profiles
// @Accept json
// @Produce json
// @Success 201 {object} response_models.ProfileResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/profiles [post]
func (pc *ProfileController) Create(c *gin.Context) {
	var req request_models.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	profile, err := pc.profileService.Create(c.Request.Context(), req.Name)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response_models.NewProfileResponse(*profile))
}

// GetByID godoc
// @Summary Fetch a profile by id
// @Tags Profiles
// @Produce json
// @Success 200 {object} response_models.ProfileResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/profiles/{id} [get]
func (pc *ProfileController) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid profile ID format")
		return
	}

	profile, err := pc.profileService.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	if profile == nil {
		utils.RespondError(c, http.StatusNotFound, "Profile not found")
		return
	}
	c.JSON(http.StatusOK, response_models.NewProfileResponse(*profile))
}

// Update godoc
// @Summary Replace a profile's responses
// @Description Full replacement of the responses map, no merge
// @Tags Profiles
// @Accept json
// @Produce json
// @Success 200 {object} response_models.ProfileResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/profiles/{id} [put]
func (pc *ProfileController) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid profile ID format")
		return
	}

	var req request_models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	profile, err := pc.profileService.Update(c.Request.Context(), id, req.Responses)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response_models.NewProfileResponse(*profile))
}

// GetByShareableID godoc
// @Summary Fetch a shared profile by its shareable token
// @Tags Profiles
// @Produce json
// @Success 200 {object} response_models.ProfileResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/profiles/share/{shareableId} [get]
func (pc *ProfileController) GetByShareableID(c *gin.Context) {
	shareableID := c.Param("shareableId")

	profile, err := pc.profileService.GetByShareableID(c.Request.Context(), shareableID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	if profile == nil {
		utils.RespondError(c, http.StatusNotFound, "Shared profile not found")
		return
	}
	c.JSON(http.StatusOK, response_models.NewProfileResponse(*profile))
}
