package db_models

import (
	"gorm.io/datatypes"
)

// Profile is a user's completed (or in-progress) questionnaire.
// ShareableID is the opaque token granting read-only public access.
type Profile struct {
	BaseModel
	Name        string                          `gorm:"not null"`
	ShareableID string                          `gorm:"column:shareable_id;size:64;uniqueIndex;not null"`
	Responses   datatypes.JSONType[ResponseMap] `gorm:"column:responses"`
}
