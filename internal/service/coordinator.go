package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	apperrors "nucleav-frontend/internal/errors"
	"nucleav-frontend/internal/logger"
	"nucleav-frontend/internal/models"
	"nucleav-frontend/internal/notify"

	"github.com/go-playground/validator/v10"
)

// AssociationRequest is a create request for one (project, entity) pair
type AssociationRequest interface {
	ParentID() int64
	EntityID() int64
}

// Dependencies are shared by every coordinator of every project view
type Dependencies struct {
	Validator            *validator.Validate
	Classifier           *apperrors.Classifier
	Sink                 notify.Sink
	HydrationConcurrency int
}

func (d Dependencies) withDefaults() Dependencies {
	if d.Validator == nil {
		d.Validator = NewValidator()
	}
	if d.Classifier == nil {
		d.Classifier = apperrors.NewClassifier(nil)
	}
	if d.Sink == nil {
		d.Sink = notify.LogSink{}
	}
	if d.HydrationConcurrency <= 0 {
		d.HydrationConcurrency = DefaultHydrationConcurrency
	}
	return d
}

// NewValidator returns a validator reporting json field names
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// endpoints are the remote operations for one association kind
type endpoints[A any, R any] struct {
	list   func(ctx context.Context) ([]A, error)
	create func(ctx context.Context, req R) (*A, error)
	remove func(ctx context.Context, id int64) error
	// complete fills ids the create response left out.
	complete func(record A, req R) A
}

// labels are the user-facing texts of one association kind
type labels struct {
	added      string
	removed    string
	unresolved string // takes the number of records
	duplicate  error
}

// Coordinator performs add/remove against the platform API and is the only
// writer of its Store. The store changes only after the server acknowledged
// the mutation; failures leave it untouched.
type Coordinator[A models.Association[A, E], E any, R AssociationRequest] struct {
	viewCtx    context.Context
	store      *Store[A]
	hydrator   *HydrationResolver[A, E]
	api        endpoints[A, R]
	labels     labels
	validator  *validator.Validate
	classifier *apperrors.Classifier
	sink       notify.Sink

	mu      sync.Mutex
	pending map[string]struct{}
}

func newCoordinator[A models.Association[A, E], E any, R AssociationRequest](
	viewCtx context.Context,
	projectID int64,
	api endpoints[A, R],
	fetch EntityFetcher[E],
	lbl labels,
	deps Dependencies,
) *Coordinator[A, E, R] {
	deps = deps.withDefaults()
	return &Coordinator[A, E, R]{
		viewCtx:    viewCtx,
		store:      NewStore[A](projectID),
		hydrator:   NewHydrationResolver[A, E](fetch, deps.HydrationConcurrency),
		api:        api,
		labels:     lbl,
		validator:  deps.Validator,
		classifier: deps.Classifier,
		sink:       deps.Sink,
		pending:    make(map[string]struct{}),
	}
}

// Store returns the read side of the coordinator's store
func (c *Coordinator[A, E, R]) Store() *Store[A] {
	return c.store
}

// Pending returns the keys of mutations currently in flight, e.g. "add:3" or "remove:101"
func (c *Coordinator[A, E, R]) Pending() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]string, 0, len(c.pending))
	for k := range c.pending {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Load fetches the project's associations, hydrates them and replaces the store.
// Records that cannot be hydrated are kept out of rendering and reported once.
// Adds and removes confirmed while the list was in flight survive the replace.
func (c *Coordinator[A, E, R]) Load(ctx context.Context) error {
	ctx, stop := c.bind(ctx)
	defer stop()

	log := c.log(ctx)
	since := c.store.beginLoad()
	defer c.store.endLoad()

	all, err := c.api.list(ctx)
	if err != nil {
		return c.fail(ctx, err)
	}

	projectID := c.store.ParentID()
	mine := make([]A, 0)
	for _, r := range all {
		if r.ParentID() == projectID {
			mine = append(mine, r)
		}
	}

	res := c.hydrator.Hydrate(ctx, mine)
	if c.viewCtx.Err() != nil || !c.store.replace(res.Records, since) {
		log.Debug("Discarding association list for closed project view")
		return apperrors.ErrStaleCompletion
	}

	log.WithFields(map[string]interface{}{
		"total":      len(all),
		"loaded":     len(res.Records),
		"unresolved": res.Unresolved,
	}).Info("Loaded project associations")

	if res.Unresolved > 0 {
		c.sink.Notify(ctx, fmt.Sprintf(c.labels.unresolved, res.Unresolved), notify.SeverityWarning)
	}
	return nil
}

// Add creates the association described by req
func (c *Coordinator[A, E, R]) Add(ctx context.Context, req R) (A, error) {
	return c.add(ctx, req.EntityID(), func(context.Context) (R, *E, error) {
		return req, nil, nil
	})
}

// add runs the create flow. prepare builds the request inside the in-flight
// guard and may return the entity when the caller already fetched it.
func (c *Coordinator[A, E, R]) add(ctx context.Context, entityID int64, prepare func(ctx context.Context) (R, *E, error)) (A, error) {
	var zero A

	// Duplicates are rejected before touching the network.
	if c.store.ContainsEntity(entityID) {
		return zero, c.fail(ctx, c.labels.duplicate)
	}
	key := fmt.Sprintf("add:%d", entityID)
	if !c.begin(key) {
		return zero, c.fail(ctx, apperrors.ErrMutationInFlight)
	}
	defer c.end(key)

	ctx, stop := c.bind(ctx)
	defer stop()

	req, known, err := prepare(ctx)
	if err != nil {
		return zero, c.fail(ctx, err)
	}
	if err := c.validate(req); err != nil {
		return zero, c.fail(ctx, err)
	}
	if req.EntityID() != entityID {
		return zero, c.fail(ctx, apperrors.NewValidationError("entity_id", "does not match the selected entity"))
	}

	created, err := c.api.create(ctx, req)
	if err != nil {
		return zero, c.fail(ctx, err)
	}
	if created == nil {
		return zero, c.fail(ctx, errors.New("platform API returned an empty association"))
	}

	record := *created
	if c.api.complete != nil {
		record = c.api.complete(record, req)
	}
	if record.Entity() == nil && known != nil {
		record = record.WithEntity(known)
	}
	renderable := true
	if record.Entity() == nil {
		record, renderable = c.hydrator.HydrateOne(ctx, record)
	}

	log := c.log(ctx).WithFields(map[string]interface{}{
		"association_id": record.AssociationID(),
		"entity_id":      entityID,
	})
	if c.viewCtx.Err() != nil || !c.store.add(record) {
		log.Debug("Discarding created association for closed project view")
		return zero, apperrors.ErrStaleCompletion
	}
	log.Info("Association created")

	c.sink.Notify(ctx, c.labels.added, notify.SeveritySuccess)
	if !renderable {
		c.sink.Notify(ctx, fmt.Sprintf(c.labels.unresolved, 1), notify.SeverityWarning)
	}
	return record, nil
}

// Remove deletes an association. The store only drops the record once the
// server confirmed the delete.
func (c *Coordinator[A, E, R]) Remove(ctx context.Context, associationID int64) error {
	key := fmt.Sprintf("remove:%d", associationID)
	if !c.begin(key) {
		return c.fail(ctx, apperrors.ErrMutationInFlight)
	}
	defer c.end(key)

	ctx, stop := c.bind(ctx)
	defer stop()

	if err := c.api.remove(ctx, associationID); err != nil {
		return c.fail(ctx, err)
	}

	log := c.log(ctx).WithField("association_id", associationID)
	if c.viewCtx.Err() != nil || c.store.Closed() {
		log.Debug("Discarding delete confirmation for closed project view")
		return apperrors.ErrStaleCompletion
	}
	if !c.store.remove(associationID) {
		log.Warn("Deleted association was not in the local store")
	}
	log.Info("Association removed")

	c.sink.Notify(ctx, c.labels.removed, notify.SeveritySuccess)
	return nil
}

// bind derives a context cancelled by either the caller or the project view
func (c *Coordinator[A, E, R]) bind(ctx context.Context) (context.Context, func()) {
	ctx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(c.viewCtx, cancel)
	return ctx, func() {
		stop()
		cancel()
	}
}

// fail classifies err and reports it to the user, unless the view is gone
func (c *Coordinator[A, E, R]) fail(ctx context.Context, err error) error {
	if c.viewCtx.Err() != nil {
		return apperrors.ErrStaleCompletion
	}
	ce := c.classifier.Classify(err)
	c.log(ctx).WithFields(map[string]interface{}{
		"kind":   string(ce.Kind),
		"status": ce.StatusCode,
	}).WithError(err).Warn("Association request failed")
	c.sink.Notify(ctx, ce.Message, notify.SeverityError)
	return ce
}

func (c *Coordinator[A, E, R]) validate(req R) error {
	if err := c.validator.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return apperrors.NewValidationError(verrs[0].Field(), fmt.Sprintf("failed on the '%s' rule", verrs[0].Tag()))
		}
		return apperrors.NewValidationError("", err.Error())
	}
	if req.ParentID() != c.store.ParentID() {
		return apperrors.NewValidationError("project_id", "does not match the open project")
	}
	return nil
}

func (c *Coordinator[A, E, R]) begin(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, busy := c.pending[key]; busy {
		return false
	}
	c.pending[key] = struct{}{}
	return true
}

func (c *Coordinator[A, E, R]) end(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.pending, key)
}

func (c *Coordinator[A, E, R]) log(ctx context.Context) *logger.Logger {
	var zero A
	return logger.WithContext(ctx).WithFields(map[string]interface{}{
		"project_id": c.store.ParentID(),
		"kind":       string(zero.Kind()),
	})
}
