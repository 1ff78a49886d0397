package service

import (
	"context"

	"nucleav-frontend/internal/client"
	apperrors "nucleav-frontend/internal/errors"
	"nucleav-frontend/internal/models"
)

// ProjectUserService manages the team members of one project
type ProjectUserService struct {
	*Coordinator[models.ProjectUser, models.User, *client.CreateProjectUserRequest]
	users client.UserAPI
}

// NewProjectUserService creates the team coordinator of a project view
func NewProjectUserService(viewCtx context.Context, projectID int64, api client.ProjectUserAPI, users client.UserAPI, deps Dependencies) *ProjectUserService {
	ep := endpoints[models.ProjectUser, *client.CreateProjectUserRequest]{
		list:   api.ListProjectUsers,
		create: api.CreateProjectUser,
		remove: api.DeleteProjectUser,
		complete: func(rec models.ProjectUser, req *client.CreateProjectUserRequest) models.ProjectUser {
			if rec.ProjectID == 0 {
				rec.ProjectID = req.ProjectID
			}
			if rec.UserID == 0 {
				rec.UserID = req.UserID
			}
			return rec
		},
	}
	lbl := labels{
		added:      "Usuario añadido al equipo del proyecto.",
		removed:    "Usuario eliminado del equipo del proyecto.",
		unresolved: "No se pudieron cargar %d asociaciones.",
		duplicate:  apperrors.ErrProjectUserExists,
	}
	return &ProjectUserService{
		Coordinator: newCoordinator[models.ProjectUser, models.User, *client.CreateProjectUserRequest](
			viewCtx, projectID, ep, users.GetUser, lbl, deps),
		users: users,
	}
}

// AddUser adds a user to the project team
func (s *ProjectUserService) AddUser(ctx context.Context, userID int64) (models.ProjectUser, error) {
	return s.Add(ctx, &client.CreateProjectUserRequest{ProjectID: s.store.ParentID(), UserID: userID})
}

// Candidates lists the active users that are not yet on the team
func (s *ProjectUserService) Candidates(ctx context.Context, filter UserFilter) ([]models.User, error) {
	ctx, stop := s.bind(ctx)
	defer stop()

	all, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return UserCandidates(all, s.store.EntityIDs(), filter), nil
}
