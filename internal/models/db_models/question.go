package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type QuestionType string

const (
	TypeText        QuestionType = "TEXT"
	TypeChoice      QuestionType = "CHOICE"
	TypeMultiChoice QuestionType = "MULTICHOICE"
)

func (t QuestionType) Valid() bool {
	switch t {
	case TypeText, TypeChoice, TypeMultiChoice:
		return true
	}
	return false
}

// Question belongs to a category. QuestionKey is the stable key profiles
// reference in their responses map; it survives soft deletes so historical
// answers keep resolving.
type Question struct {
	BaseModel
	CategoryID   uuid.UUID                   `gorm:"type:uuid;not null;index:idx_questions_category_order"`
	QuestionKey  string                      `gorm:"column:question_key;size:100;not null"`
	Text         string                      `gorm:"size:500;not null"`
	Type         QuestionType                `gorm:"size:20;not null"`
	Choices      datatypes.JSONSlice[string] `gorm:"column:choices"`
	Placeholder  string
	DisplayOrder int  `gorm:"column:display_order;not null;index:idx_questions_category_order"`
	Active       bool `gorm:"not null;default:true"`
}
