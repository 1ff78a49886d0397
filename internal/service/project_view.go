package service

import (
	"context"
	"sort"
	"sync"

	"nucleav-frontend/internal/client"
	apperrors "nucleav-frontend/internal/errors"
	"nucleav-frontend/internal/logger"
	"nucleav-frontend/internal/session"

	"golang.org/x/sync/errgroup"
)

// PlatformAPIs groups the remote endpoints a project view talks to
type PlatformAPIs struct {
	ProjectMaterials client.ProjectMaterialAPI
	ProjectUsers     client.ProjectUserAPI
	Materials        client.MaterialAPI
	Users            client.UserAPI
}

// ProjectView is the state behind one open project detail screen
type ProjectView struct {
	ProjectID int64
	Materials *ProjectMaterialService
	Users     *ProjectUserService

	ctx    context.Context
	cancel context.CancelFunc
}

// Load runs the initial load of both relations concurrently. A failure of one
// relation does not stop the other; the first error is returned.
func (v *ProjectView) Load(ctx context.Context) error {
	var g errgroup.Group
	g.Go(func() error { return v.Materials.Load(ctx) })
	g.Go(func() error { return v.Users.Load(ctx) })
	return g.Wait()
}

// Closed reports whether the view was torn down
func (v *ProjectView) Closed() bool {
	return v.ctx.Err() != nil
}

func (v *ProjectView) close() {
	v.cancel()
	v.Materials.store.close()
	v.Users.store.close()
}

type viewKey struct {
	session   string
	projectID int64
}

// ViewRegistry holds the open project views. Each caller session owns its own
// view of a project; closing it never touches another session's view.
type ViewRegistry struct {
	mu    sync.Mutex
	views map[viewKey]*ProjectView
	apis  PlatformAPIs
	deps  Dependencies
}

// NewViewRegistry creates an empty registry
func NewViewRegistry(apis PlatformAPIs, deps Dependencies) *ViewRegistry {
	return &ViewRegistry{
		views: make(map[viewKey]*ProjectView),
		apis:  apis,
		deps:  deps.withDefaults(),
	}
}

// Open returns the caller's view of projectID, creating it when needed.
// created is true when a new view was built and still needs loading.
func (r *ViewRegistry) Open(ctx context.Context, projectID int64) (view *ProjectView, created bool, err error) {
	if projectID <= 0 {
		return nil, false, apperrors.NewValidationError("project_id", "must be a positive integer")
	}
	key := viewKey{session: session.Key(ctx), projectID: projectID}

	r.mu.Lock()
	defer r.mu.Unlock()

	if v, ok := r.views[key]; ok {
		return v, false, nil
	}

	viewCtx, cancel := context.WithCancel(context.Background())
	v := &ProjectView{
		ProjectID: projectID,
		Materials: NewProjectMaterialService(viewCtx, projectID, r.apis.ProjectMaterials, r.apis.Materials, r.deps),
		Users:     NewProjectUserService(viewCtx, projectID, r.apis.ProjectUsers, r.apis.Users, r.deps),
		ctx:       viewCtx,
		cancel:    cancel,
	}
	r.views[key] = v

	logger.WithContext(ctx).WithField("project_id", projectID).Info("Opened project view")
	return v, true, nil
}

// Get returns the caller's open view of projectID
func (r *ViewRegistry) Get(ctx context.Context, projectID int64) (*ProjectView, error) {
	key := viewKey{session: session.Key(ctx), projectID: projectID}

	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.views[key]
	if !ok {
		return nil, apperrors.ErrProjectViewNotFound
	}
	return v, nil
}

// Close tears the caller's view down. Requests still in flight for it are
// cancelled and their completions are discarded.
func (r *ViewRegistry) Close(ctx context.Context, projectID int64) error {
	key := viewKey{session: session.Key(ctx), projectID: projectID}

	r.mu.Lock()
	v, ok := r.views[key]
	delete(r.views, key)
	r.mu.Unlock()

	if !ok {
		return apperrors.ErrProjectViewNotFound
	}
	v.close()

	logger.WithContext(ctx).WithField("project_id", projectID).Info("Closed project view")
	return nil
}

// CloseAll tears down every open view
func (r *ViewRegistry) CloseAll() {
	r.mu.Lock()
	views := r.views
	r.views = make(map[viewKey]*ProjectView)
	r.mu.Unlock()

	for _, v := range views {
		v.close()
	}
}

// ProjectIDs lists the projects with at least one open view, sorted
func (r *ViewRegistry) ProjectIDs() []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[int64]struct{}, len(r.views))
	ids := make([]int64, 0, len(r.views))
	for key := range r.views {
		if _, dup := seen[key.projectID]; dup {
			continue
		}
		seen[key.projectID] = struct{}{}
		ids = append(ids, key.projectID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
