package request_models

type CreateCategoryRequest struct {
	Name  string `json:"name"`
	Order int    `json:"order"`
}

type UpdateCategoryRequest struct {
	Name  *string `json:"name,omitempty"`
	Order *int    `json:"order,omitempty"`
}
