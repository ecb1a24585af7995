package utils

import "errors"

var (
	ErrValidation         = errors.New("invalid input")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrQuestionNotFound   = errors.New("question not found")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrDuplicateCategory  = errors.New("category name already exists")
	ErrCategoryNotEmpty   = errors.New("category has active questions")
	ErrInvalidCategory    = errors.New("category does not exist")
	ErrInvalidCredentials = errors.New("invalid admin password")
	ErrDatabaseError      = errors.New("database error")
)
