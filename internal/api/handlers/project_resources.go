package handlers

import (
	"net/http"
	"strconv"

	apperrors "nucleav-frontend/internal/errors"
	"nucleav-frontend/internal/models"
	"nucleav-frontend/internal/service"

	"github.com/gin-gonic/gin"
)

// ProjectResourceHandler serves the material and team sections of a project detail screen
type ProjectResourceHandler struct {
	registry   *service.ViewRegistry
	classifier *apperrors.Classifier
}

// NewProjectResourceHandler creates a new project resource handler.
// A nil classifier uses the default messages.
func NewProjectResourceHandler(registry *service.ViewRegistry, classifier *apperrors.Classifier) *ProjectResourceHandler {
	if classifier == nil {
		classifier = apperrors.NewClassifier(nil)
	}
	return &ProjectResourceHandler{
		registry:   registry,
		classifier: classifier,
	}
}

// AddMaterialRequest is the body of POST /projects/:id/materials
type AddMaterialRequest struct {
	MaterialID       int64 `json:"material_id" binding:"required,gt=0" example:"3"`
	QuantityAssigned int   `json:"quantity_assigned" binding:"required,min=1" example:"2"`
}

// AddUserRequest is the body of POST /projects/:id/users
type AddUserRequest struct {
	UserID int64 `json:"user_id" binding:"required,gt=0" example:"2"`
}

// AssociationList is a renderable association list plus the number of records left out
type AssociationList[A any] struct {
	Items      []A `json:"items"`
	Unresolved int `json:"unresolved"`
}

// ProjectViewResponse is returned when a project view is opened
type ProjectViewResponse struct {
	ProjectID int64                                   `json:"project_id"`
	Materials AssociationList[models.ProjectMaterial] `json:"materials"`
	Users     AssociationList[models.ProjectUser]     `json:"users"`
}

// OpenView handles POST /projects/:id/view
// @Summary Open a project view
// @Description Open (or refresh) the project detail view and load its materials and team
// @Tags project-views
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} ProjectViewResponse "Project view loaded"
// @Failure 400 {object} ErrorResponse "Invalid project ID"
// @Failure 401 {object} ErrorResponse "Missing or expired session"
// @Failure 502 {object} ErrorResponse "Platform API failure"
// @Security BearerAuth
// @Router /projects/{id}/view [post]
func (h *ProjectResourceHandler) OpenView(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}

	view, _, err := h.registry.Open(c.Request.Context(), projectID)
	if err != nil {
		respondError(c, h.classifier, err)
		return
	}
	if err := view.Load(c.Request.Context()); err != nil {
		respondError(c, h.classifier, err)
		return
	}

	c.JSON(http.StatusOK, ProjectViewResponse{
		ProjectID: projectID,
		Materials: listOf(view.Materials.Store()),
		Users:     listOf(view.Users.Store()),
	})
}

// CloseView handles DELETE /projects/:id/view
// @Summary Close a project view
// @Description Tear the caller's project view down; its pending requests are cancelled and their results discarded
// @Tags project-views
// @Param id path int true "Project ID"
// @Success 204 "Project view closed"
// @Failure 404 {object} ErrorResponse "Project view not open"
// @Security BearerAuth
// @Router /projects/{id}/view [delete]
func (h *ProjectResourceHandler) CloseView(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}
	if err := h.registry.Close(c.Request.Context(), projectID); err != nil {
		respondError(c, h.classifier, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListMaterials handles GET /projects/:id/materials
// @Summary List project materials
// @Tags project-materials
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} AssociationList[models.ProjectMaterial]
// @Failure 404 {object} ErrorResponse "Project view not open"
// @Security BearerAuth
// @Router /projects/{id}/materials [get]
func (h *ProjectResourceHandler) ListMaterials(c *gin.Context) {
	view, ok := h.view(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, listOf(view.Materials.Store()))
}

// AddMaterial handles POST /projects/:id/materials
// @Summary Assign a material to a project
// @Description The quantity is clamped to the material's available stock
// @Tags project-materials
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param body body AddMaterialRequest true "Material and quantity"
// @Success 201 {object} models.ProjectMaterial
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 409 {object} ErrorResponse "Material already assigned or request in flight"
// @Security BearerAuth
// @Router /projects/{id}/materials [post]
func (h *ProjectResourceHandler) AddMaterial(c *gin.Context) {
	view, ok := h.view(c)
	if !ok {
		return
	}

	var req AddMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Kind: string(apperrors.KindValidation)})
		return
	}

	record, err := view.Materials.AddMaterial(c.Request.Context(), req.MaterialID, req.QuantityAssigned)
	if err != nil {
		respondError(c, h.classifier, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

// RemoveMaterial handles DELETE /projects/:id/materials/:associationId
// @Summary Remove a material from a project
// @Tags project-materials
// @Param id path int true "Project ID"
// @Param associationId path int true "Project-material association ID"
// @Success 204 "Material removed"
// @Failure 404 {object} ErrorResponse "Association not found"
// @Security BearerAuth
// @Router /projects/{id}/materials/{associationId} [delete]
func (h *ProjectResourceHandler) RemoveMaterial(c *gin.Context) {
	view, ok := h.view(c)
	if !ok {
		return
	}
	associationID, ok := int64Param(c, "associationId")
	if !ok {
		return
	}
	if err := view.Materials.Remove(c.Request.Context(), associationID); err != nil {
		respondError(c, h.classifier, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// MaterialCandidates handles GET /projects/:id/materials/candidates
// @Summary Materials that can still be assigned
// @Tags project-materials
// @Produce json
// @Param id path int true "Project ID"
// @Param search query string false "Case-insensitive text filter"
// @Param category query string false "Category, or 'all'"
// @Success 200 {array} models.Material
// @Security BearerAuth
// @Router /projects/{id}/materials/candidates [get]
func (h *ProjectResourceHandler) MaterialCandidates(c *gin.Context) {
	view, ok := h.view(c)
	if !ok {
		return
	}

	var filter service.MaterialFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Kind: string(apperrors.KindValidation)})
		return
	}

	candidates, err := view.Materials.Candidates(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.classifier, err)
		return
	}
	c.JSON(http.StatusOK, candidates)
}

// MaterialCategories handles GET /projects/:id/materials/categories
// @Summary Material categories for the picker
// @Tags project-materials
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {array} string
// @Security BearerAuth
// @Router /projects/{id}/materials/categories [get]
func (h *ProjectResourceHandler) MaterialCategories(c *gin.Context) {
	view, ok := h.view(c)
	if !ok {
		return
	}
	categories, err := view.Materials.Categories(c.Request.Context())
	if err != nil {
		respondError(c, h.classifier, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// ListUsers handles GET /projects/:id/users
// @Summary List project team members
// @Tags project-users
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} AssociationList[models.ProjectUser]
// @Failure 404 {object} ErrorResponse "Project view not open"
// @Security BearerAuth
// @Router /projects/{id}/users [get]
func (h *ProjectResourceHandler) ListUsers(c *gin.Context) {
	view, ok := h.view(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, listOf(view.Users.Store()))
}

// AddUser handles POST /projects/:id/users
// @Summary Add a user to the project team
// @Tags project-users
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param body body AddUserRequest true "User"
// @Success 201 {object} models.ProjectUser
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 409 {object} ErrorResponse "User already on the team or request in flight"
// @Security BearerAuth
// @Router /projects/{id}/users [post]
func (h *ProjectResourceHandler) AddUser(c *gin.Context) {
	view, ok := h.view(c)
	if !ok {
		return
	}

	var req AddUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Kind: string(apperrors.KindValidation)})
		return
	}

	record, err := view.Users.AddUser(c.Request.Context(), req.UserID)
	if err != nil {
		respondError(c, h.classifier, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

// RemoveUser handles DELETE /projects/:id/users/:associationId
// @Summary Remove a user from the project team
// @Tags project-users
// @Param id path int true "Project ID"
// @Param associationId path int true "Project-user association ID"
// @Success 204 "User removed"
// @Failure 404 {object} ErrorResponse "Association not found"
// @Security BearerAuth
// @Router /projects/{id}/users/{associationId} [delete]
func (h *ProjectResourceHandler) RemoveUser(c *gin.Context) {
	view, ok := h.view(c)
	if !ok {
		return
	}
	associationID, ok := int64Param(c, "associationId")
	if !ok {
		return
	}
	if err := view.Users.Remove(c.Request.Context(), associationID); err != nil {
		respondError(c, h.classifier, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UserCandidates handles GET /projects/:id/users/candidates
// @Summary Active users not yet on the team
// @Tags project-users
// @Produce json
// @Param id path int true "Project ID"
// @Param search query string false "Case-insensitive text filter"
// @Success 200 {array} models.User
// @Security BearerAuth
// @Router /projects/{id}/users/candidates [get]
func (h *ProjectResourceHandler) UserCandidates(c *gin.Context) {
	view, ok := h.view(c)
	if !ok {
		return
	}

	var filter service.UserFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Kind: string(apperrors.KindValidation)})
		return
	}

	candidates, err := view.Users.Candidates(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.classifier, err)
		return
	}
	c.JSON(http.StatusOK, candidates)
}

func (h *ProjectResourceHandler) view(c *gin.Context) (*service.ProjectView, bool) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return nil, false
	}
	view, err := h.registry.Get(c.Request.Context(), projectID)
	if err != nil {
		respondError(c, h.classifier, err)
		return nil, false
	}
	return view, true
}

func projectIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid project ID", Kind: string(apperrors.KindValidation)})
		return 0, false
	}
	return id, true
}

func int64Param(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + name, Kind: string(apperrors.KindValidation)})
		return 0, false
	}
	return id, true
}

func listOf[A service.Record](store *service.Store[A]) AssociationList[A] {
	items := store.Renderable()
	return AssociationList[A]{Items: items, Unresolved: store.Len() - len(items)}
}
