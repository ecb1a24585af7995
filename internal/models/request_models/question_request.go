package request_models

type CreateQuestionRequest struct {
	Text        string   `json:"text"`
	CategoryID  string   `json:"categoryId"`
	Order       int      `json:"order"`
	QuestionID  string   `json:"questionId,omitempty"`
	Type        string   `json:"type,omitempty"`
	Choices     []string `json:"choices,omitempty"`
	Placeholder string   `json:"placeholder,omitempty"`
}

type UpdateQuestionRequest struct {
	Text       *string `json:"text,omitempty"`
	CategoryID *string `json:"categoryId,omitempty"`
	Order      *int    `json:"order,omitempty"`
}
