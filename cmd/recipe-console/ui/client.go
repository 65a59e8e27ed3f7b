package ui

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"recipe-book/backend/app/dto"
)

// Client talks to the recipe-book REST API and carries the session token
// between calls.
type Client struct {
	BaseURL string
	Header  string
	Token   string
	HTTP    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Header:  "sessionid",
		HTTP:    &http.Client{Timeout: 15 * time.Second},
	}
}

// APIError is the server's error envelope.
type APIError struct {
	Status int    `json:"status"`
	Reason string `json:"error"`
}

func (e *APIError) Error() string { return fmt.Sprintf("%d: %s", e.Status, e.Reason) }

func (c *Client) Login(ctx context.Context, userName, password string) (*dto.LoginResponse, error) {
	var out dto.LoginResponse
	err := c.do(ctx, http.MethodPost, "/api/v1/login", dto.LoginRequest{UserName: userName, UserPassword: password}, &out)
	if err != nil {
		return nil, err
	}
	c.Token = out.SessionID
	return &out, nil
}

func (c *Client) Logout(ctx context.Context) error {
	var ok bool
	err := c.do(ctx, http.MethodGet, "/api/v1/logout", nil, &ok)
	c.Token = ""
	return err
}

// Recipes lists recipes; keywords is a comma separated filter, empty for all.
func (c *Client) Recipes(ctx context.Context, keywords string) ([]dto.RecipeResponse, error) {
	path := "/api/v1/recipes"
	if keywords = strings.TrimSpace(keywords); keywords != "" {
		path += "?keywords=" + url.QueryEscape(keywords)
	}
	var out []dto.RecipeResponse
	return out, c.do(ctx, http.MethodGet, path, nil, &out)
}

func (c *Client) Recipe(ctx context.Context, id uint) (*dto.RecipeResponse, error) {
	var out dto.RecipeResponse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/recipe/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Comment(ctx context.Context, recipeID uint, text string) (*dto.CommentResponse, error) {
	var out dto.CommentResponse
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/v1/recipe/%d/comment", recipeID), dto.CommentRequest{Comment: text}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		r = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, r)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.Token != "" {
		req.Header.Set(c.Header, c.Token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{Status: resp.StatusCode}
		if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil || apiErr.Reason == "" {
			apiErr.Reason = http.StatusText(resp.StatusCode)
		}
		return apiErr
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
