package service

import (
	"context"

	"nucleav-frontend/internal/client"
	apperrors "nucleav-frontend/internal/errors"
	"nucleav-frontend/internal/models"
)

// ProjectMaterialService manages the materials assigned to one project
type ProjectMaterialService struct {
	*Coordinator[models.ProjectMaterial, models.Material, *client.CreateProjectMaterialRequest]
	materials client.MaterialAPI
}

// NewProjectMaterialService creates the material coordinator of a project view
func NewProjectMaterialService(viewCtx context.Context, projectID int64, api client.ProjectMaterialAPI, materials client.MaterialAPI, deps Dependencies) *ProjectMaterialService {
	ep := endpoints[models.ProjectMaterial, *client.CreateProjectMaterialRequest]{
		list:   api.ListProjectMaterials,
		create: api.CreateProjectMaterial,
		remove: api.DeleteProjectMaterial,
		complete: func(rec models.ProjectMaterial, req *client.CreateProjectMaterialRequest) models.ProjectMaterial {
			if rec.ProjectID == 0 {
				rec.ProjectID = req.ProjectID
			}
			if rec.MaterialID == 0 {
				rec.MaterialID = req.MaterialID
			}
			if rec.QuantityAssigned == 0 {
				rec.QuantityAssigned = req.QuantityAssigned
			}
			return rec
		},
	}
	lbl := labels{
		added:      "Material asignado al proyecto.",
		removed:    "Material retirado del proyecto.",
		unresolved: "No se pudieron cargar %d asociaciones.",
		duplicate:  apperrors.ErrProjectMaterialExists,
	}
	return &ProjectMaterialService{
		Coordinator: newCoordinator[models.ProjectMaterial, models.Material, *client.CreateProjectMaterialRequest](
			viewCtx, projectID, ep, materials.GetMaterial, lbl, deps),
		materials: materials,
	}
}

// AddMaterial assigns quantity units of a material to the project. The
// quantity is clamped to the material's stock; a material without stock is rejected.
func (s *ProjectMaterialService) AddMaterial(ctx context.Context, materialID int64, quantity int) (models.ProjectMaterial, error) {
	projectID := s.store.ParentID()
	return s.add(ctx, materialID, func(ctx context.Context) (*client.CreateProjectMaterialRequest, *models.Material, error) {
		material, err := s.materials.GetMaterial(ctx, materialID)
		if err != nil {
			return nil, nil, err
		}
		qty := ClampQuantity(*material, quantity)
		if qty == 0 {
			return nil, nil, apperrors.ErrNoStock
		}
		return &client.CreateProjectMaterialRequest{
			ProjectID:        projectID,
			MaterialID:       materialID,
			QuantityAssigned: qty,
		}, material, nil
	})
}

// Candidates lists the materials that can still be assigned to the project
func (s *ProjectMaterialService) Candidates(ctx context.Context, filter MaterialFilter) ([]models.Material, error) {
	all, err := s.listMaterials(ctx)
	if err != nil {
		return nil, err
	}
	return MaterialCandidates(all, s.store.EntityIDs(), filter), nil
}

// Categories lists the material categories offered by the picker
func (s *ProjectMaterialService) Categories(ctx context.Context) ([]string, error) {
	all, err := s.listMaterials(ctx)
	if err != nil {
		return nil, err
	}
	return MaterialCategories(all), nil
}

func (s *ProjectMaterialService) listMaterials(ctx context.Context) ([]models.Material, error) {
	ctx, stop := s.bind(ctx)
	defer stop()

	all, err := s.materials.ListMaterials(ctx)
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return all, nil
}
