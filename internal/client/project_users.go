package client

import (
	"context"
	"fmt"
	"net/http"

	"nucleav-frontend/internal/models"
)

// CreateProjectUserRequest is the body of POST /project-users
type CreateProjectUserRequest struct {
	ProjectID int64 `json:"project_id" validate:"required,gt=0"`
	UserID    int64 `json:"user_id" validate:"required,gt=0"`
}

func (r *CreateProjectUserRequest) ParentID() int64 { return r.ProjectID }
func (r *CreateProjectUserRequest) EntityID() int64 { return r.UserID }

// ListProjectUsers returns every project-user record the server knows
func (c *Client) ListProjectUsers(ctx context.Context) ([]models.ProjectUser, error) {
	var out []models.ProjectUser
	if err := c.do(ctx, http.MethodGet, "/project-users", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateProjectUser adds a user to a project team
func (c *Client) CreateProjectUser(ctx context.Context, req *CreateProjectUserRequest) (*models.ProjectUser, error) {
	var out models.ProjectUser
	if err := c.do(ctx, http.MethodPost, "/project-users", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteProjectUser removes a user from a project team
func (c *Client) DeleteProjectUser(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/project-users/%d", id), nil, nil)
}

// GetUser fetches one user by id
func (c *Client) GetUser(ctx context.Context, id int64) (*models.User, error) {
	var out models.User
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/users/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListUsers fetches all platform users
func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	var out []models.User
	if err := c.do(ctx, http.MethodGet, "/users", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
