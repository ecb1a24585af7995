// Package client is the HTTP client for the questionnaire API, used by
// the terminal wizard and admin commands.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"workwithme/internal/models/db_models"
	"workwithme/internal/models/request_models"
	"workwithme/internal/models/response_models"
)

type Client struct {
	baseURL       string
	httpClient    *http.Client
	adminPassword string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// WithAdminPassword returns a copy of the client that authenticates admin
// requests with the shared admin credential.
func (c *Client) WithAdminPassword(password string) *Client {
	clone := *c
	clone.adminPassword = password
	return &clone
}

func (c *Client) do(method, path string, body interface{}, out interface{}, admin bool) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if admin {
		req.SetBasicAuth("admin", c.adminPassword)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("server returned %d: %s", resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("server returned %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) ActiveCategories() ([]response_models.CategoryResponse, error) {
	var categories []response_models.CategoryResponse
	err := c.do(http.MethodGet, "/api/categories", nil, &categories, false)
	return categories, err
}

func (c *Client) ActiveQuestions() ([]response_models.QuestionResponse, error) {
	var questions []response_models.QuestionResponse
	err := c.do(http.MethodGet, "/api/questions", nil, &questions, false)
	return questions, err
}

func (c *Client) CreateProfile(name string) (*response_models.ProfileResponse, error) {
	var profile response_models.ProfileResponse
	err := c.do(http.MethodPost, "/api/profiles", request_models.CreateProfileRequest{Name: name}, &profile, false)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) GetProfile(id string) (*response_models.ProfileResponse, error) {
	var profile response_models.ProfileResponse
	err := c.do(http.MethodGet, "/api/profiles/"+id, nil, &profile, false)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) GetSharedProfile(shareableID string) (*response_models.ProfileResponse, error) {
	var profile response_models.ProfileResponse
	err := c.do(http.MethodGet, "/api/profiles/share/"+shareableID, nil, &profile, false)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) UpdateProfile(id string, responses db_models.ResponseMap) (*response_models.ProfileResponse, error) {
	var profile response_models.ProfileResponse
	err := c.do(http.MethodPut, "/api/profiles/"+id, request_models.UpdateProfileRequest{Responses: responses}, &profile, false)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) Authenticate(password string) (*response_models.AuthResponse, error) {
	var auth response_models.AuthResponse
	err := c.do(http.MethodPost, "/api/admin/auth", request_models.AuthRequest{Password: password}, &auth, false)
	if err != nil {
		return nil, err
	}
	return &auth, nil
}

func (c *Client) AdminListCategories() ([]response_models.CategoryResponse, error) {
	var categories []response_models.CategoryResponse
	err := c.do(http.MethodGet, "/api/admin/categories", nil, &categories, true)
	return categories, err
}

func (c *Client) AdminCreateCategory(name string, order int) (*response_models.CategoryResponse, error) {
	var category response_models.CategoryResponse
	err := c.do(http.MethodPost, "/api/admin/categories",
		request_models.CreateCategoryRequest{Name: name, Order: order}, &category, true)
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (c *Client) AdminDeleteCategory(id string, cascade bool) error {
	return c.do(http.MethodDelete, "/api/admin/categories/"+id+"?cascade="+strconv.FormatBool(cascade), nil, nil, true)
}

func (c *Client) AdminListQuestions(categoryID string) ([]response_models.QuestionResponse, error) {
	path := "/api/admin/questions"
	if categoryID != "" {
		path += "?categoryId=" + categoryID
	}
	var questions []response_models.QuestionResponse
	err := c.do(http.MethodGet, path, nil, &questions, true)
	return questions, err
}
