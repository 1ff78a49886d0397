package testutils

import (
	"fmt"
	"time"

	"nucleav-frontend/internal/models"
)

// MaterialFactory provides methods to create test Material data
type MaterialFactory struct{}

// NewMaterialFactory creates a new MaterialFactory
func NewMaterialFactory() *MaterialFactory {
	return &MaterialFactory{}
}

// Create creates a test Material with default values
func (f *MaterialFactory) Create(id int64) *models.Material {
	category := "Vídeo"
	return &models.Material{
		ID:           id,
		Name:         fmt.Sprintf("Material %d", id),
		Category:     &category,
		IsConsumable: false,
		Quantity:     5,
	}
}

// WithStock sets the available quantity
func (f *MaterialFactory) WithStock(id int64, quantity int) *models.Material {
	m := f.Create(id)
	m.Quantity = quantity
	return m
}

// WithCategory sets a custom category
func (f *MaterialFactory) WithCategory(id int64, category string) *models.Material {
	m := f.Create(id)
	m.Category = &category
	return m
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates an active test User
func (f *UserFactory) Create(id int64) *models.User {
	return &models.User{
		ID:       id,
		Name:     fmt.Sprintf("User%d", id),
		Lastname: "Test",
		Username: fmt.Sprintf("user%d", id),
		Email:    fmt.Sprintf("user%d@nucleav.test", id),
		IsActive: true,
	}
}

// Inactive creates a deactivated test User
func (f *UserFactory) Inactive(id int64) *models.User {
	u := f.Create(id)
	u.IsActive = false
	return u
}

// ProjectMaterialFactory provides methods to create test ProjectMaterial data
type ProjectMaterialFactory struct{}

// NewProjectMaterialFactory creates a new ProjectMaterialFactory
func NewProjectMaterialFactory() *ProjectMaterialFactory {
	return &ProjectMaterialFactory{}
}

// Create creates a hydrated project-material record
func (f *ProjectMaterialFactory) Create(id, projectID, materialID int64, quantity int) models.ProjectMaterial {
	rec := f.Bare(id, projectID, materialID, quantity)
	rec.Material = NewMaterialFactory().Create(materialID)
	return rec
}

// Bare creates a record without its nested material, as a create response may return it
func (f *ProjectMaterialFactory) Bare(id, projectID, materialID int64, quantity int) models.ProjectMaterial {
	return models.ProjectMaterial{
		ID:               id,
		ProjectID:        projectID,
		MaterialID:       materialID,
		QuantityAssigned: quantity,
		CreatedAt:        time.Now(),
	}
}

// ProjectUserFactory provides methods to create test ProjectUser data
type ProjectUserFactory struct{}

// NewProjectUserFactory creates a new ProjectUserFactory
func NewProjectUserFactory() *ProjectUserFactory {
	return &ProjectUserFactory{}
}

// Create creates a hydrated project-user record
func (f *ProjectUserFactory) Create(id, projectID, userID int64) models.ProjectUser {
	rec := f.Bare(id, projectID, userID)
	rec.User = NewUserFactory().Create(userID)
	return rec
}

// Bare creates a record without its nested user
func (f *ProjectUserFactory) Bare(id, projectID, userID int64) models.ProjectUser {
	return models.ProjectUser{
		ID:        id,
		ProjectID: projectID,
		UserID:    userID,
		CreatedAt: time.Now(),
	}
}
