package request_models

import "workwithme/internal/models/db_models"

type CreateProfileRequest struct {
	Name string `json:"name"`
}

type UpdateProfileRequest struct {
	Responses db_models.ResponseMap `json:"responses"`
}

type AuthRequest struct {
	Password string `json:"password"`
}
