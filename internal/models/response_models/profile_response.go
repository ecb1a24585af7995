package response_models

import (
	"time"

	"workwithme/internal/models/db_models"
)

type ProfileResponse struct {
	ID          string                `json:"id"`
	Name        string                `json:"name"`
	ShareableID string                `json:"shareableId"`
	CreatedAt   time.Time             `json:"createdAt"`
	UpdatedAt   time.Time             `json:"updatedAt"`
	Responses   db_models.ResponseMap `json:"responses"`
}

func NewProfileResponse(p db_models.Profile) ProfileResponse {
	responses := p.Responses.Data()
	if responses == nil {
		responses = db_models.ResponseMap{}
	}
	return ProfileResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		ShareableID: p.ShareableID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		Responses:   responses,
	}
}

type AuthResponse struct {
	Authenticated bool   `json:"authenticated"`
	Message       string `json:"message"`
	Token         string `json:"token,omitempty"`
}
