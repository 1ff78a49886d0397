package client

import (
	"context"
	"fmt"
	"net/http"

	"nucleav-frontend/internal/models"
)

// CreateProjectMaterialRequest is the body of POST /project-materials
type CreateProjectMaterialRequest struct {
	ProjectID        int64 `json:"project_id" validate:"required,gt=0"`
	MaterialID       int64 `json:"material_id" validate:"required,gt=0"`
	QuantityAssigned int   `json:"quantity_assigned" validate:"required,min=1"`
}

// ParentID returns the project the association belongs to
func (r *CreateProjectMaterialRequest) ParentID() int64 { return r.ProjectID }

// EntityID returns the material being assigned
func (r *CreateProjectMaterialRequest) EntityID() int64 { return r.MaterialID }

// ListProjectMaterials returns every project-material record the server knows.
// The endpoint has no project filter; callers filter by project id.
func (c *Client) ListProjectMaterials(ctx context.Context) ([]models.ProjectMaterial, error) {
	var out []models.ProjectMaterial
	if err := c.do(ctx, http.MethodGet, "/project-materials", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateProjectMaterial assigns a material to a project. The response may omit the nested material.
func (c *Client) CreateProjectMaterial(ctx context.Context, req *CreateProjectMaterialRequest) (*models.ProjectMaterial, error) {
	var out models.ProjectMaterial
	if err := c.do(ctx, http.MethodPost, "/project-materials", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteProjectMaterial removes a project-material record
func (c *Client) DeleteProjectMaterial(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/project-materials/%d", id), nil, nil)
}

// GetMaterial fetches one material by id
func (c *Client) GetMaterial(ctx context.Context, id int64) (*models.Material, error) {
	var out models.Material
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/materials/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListMaterials fetches the full material inventory
func (c *Client) ListMaterials(ctx context.Context) ([]models.Material, error) {
	var out []models.Material
	if err := c.do(ctx, http.MethodGet, "/materials", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
