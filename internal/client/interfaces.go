package client

import (
	"context"

	"nucleav-frontend/internal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/client_mocks.go -package=mocks

// ProjectMaterialAPI defines the project-material join endpoints
type ProjectMaterialAPI interface {
	ListProjectMaterials(ctx context.Context) ([]models.ProjectMaterial, error)
	CreateProjectMaterial(ctx context.Context, req *CreateProjectMaterialRequest) (*models.ProjectMaterial, error)
	DeleteProjectMaterial(ctx context.Context, id int64) error
}

// ProjectUserAPI defines the project-user join endpoints
type ProjectUserAPI interface {
	ListProjectUsers(ctx context.Context) ([]models.ProjectUser, error)
	CreateProjectUser(ctx context.Context, req *CreateProjectUserRequest) (*models.ProjectUser, error)
	DeleteProjectUser(ctx context.Context, id int64) error
}

// MaterialAPI defines the material endpoints used for hydration and pickers
type MaterialAPI interface {
	GetMaterial(ctx context.Context, id int64) (*models.Material, error)
	ListMaterials(ctx context.Context) ([]models.Material, error)
}

// UserAPI defines the user endpoints used for hydration and pickers
type UserAPI interface {
	GetUser(ctx context.Context, id int64) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}

var (
	_ ProjectMaterialAPI = (*Client)(nil)
	_ ProjectUserAPI     = (*Client)(nil)
	_ MaterialAPI        = (*Client)(nil)
	_ UserAPI            = (*Client)(nil)
)
