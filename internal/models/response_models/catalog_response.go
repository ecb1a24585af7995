package response_models

import (
	"time"

	"workwithme/internal/models/db_models"
)

type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Order     int       `json:"order"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewCategoryResponse(c db_models.Category) CategoryResponse {
	return CategoryResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		Order:     c.DisplayOrder,
		Active:    c.Active,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func NewCategoryResponses(categories []db_models.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, NewCategoryResponse(c))
	}
	return out
}

type QuestionResponse struct {
	ID          string    `json:"id"`
	CategoryID  string    `json:"categoryId"`
	QuestionID  string    `json:"questionId"`
	Text        string    `json:"text"`
	Type        string    `json:"type"`
	Choices     []string  `json:"choices,omitempty"`
	Placeholder string    `json:"placeholder,omitempty"`
	Order       int       `json:"order"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func NewQuestionResponse(q db_models.Question) QuestionResponse {
	return QuestionResponse{
		ID:          q.ID.String(),
		CategoryID:  q.CategoryID.String(),
		QuestionID:  q.QuestionKey,
		Text:        q.Text,
		Type:        string(q.Type),
		Choices:     q.Choices,
		Placeholder: q.Placeholder,
		Order:       q.DisplayOrder,
		Active:      q.Active,
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
	}
}

func NewQuestionResponses(questions []db_models.Question) []QuestionResponse {
	out := make([]QuestionResponse, 0, len(questions))
	for _, q := range questions {
		out = append(out, NewQuestionResponse(q))
	}
	return out
}
