package service

import (
	"context"
	"sync"

	apperrors "nucleav-frontend/internal/errors"
	"nucleav-frontend/internal/logger"
	"nucleav-frontend/internal/models"

	"golang.org/x/sync/errgroup"
)

// DefaultHydrationConcurrency bounds parallel entity fetches in one batch
const DefaultHydrationConcurrency = 8

// EntityFetcher loads one entity by id
type EntityFetcher[E any] func(ctx context.Context, id int64) (*E, error)

// HydrationResult is the outcome of one hydration batch
type HydrationResult[A any] struct {
	Records []A
	// Unresolved counts records whose entity could not be fetched.
	Unresolved int
}

// HydrationResolver attaches missing nested entities to association records
type HydrationResolver[A models.Association[A, E], E any] struct {
	fetch       EntityFetcher[E]
	concurrency int
}

// NewHydrationResolver creates a resolver that fetches at most concurrency entities at once
func NewHydrationResolver[A models.Association[A, E], E any](fetch EntityFetcher[E], concurrency int) *HydrationResolver[A, E] {
	if concurrency <= 0 {
		concurrency = DefaultHydrationConcurrency
	}
	return &HydrationResolver[A, E]{fetch: fetch, concurrency: concurrency}
}

// Hydrate returns records with nested entities attached. Records that already
// carry their entity, or were already marked unresolved, are passed through
// without a fetch. Each entity id is fetched once per batch and a failed fetch
// only affects the records pointing at that id.
func (h *HydrationResolver[A, E]) Hydrate(ctx context.Context, records []A) HydrationResult[A] {
	out := make([]A, len(records))
	copy(out, records)

	var missing []int64
	seen := make(map[int64]bool)
	for _, r := range out {
		if r.Entity() != nil || r.Unresolved() {
			continue
		}
		if id := r.EntityID(); !seen[id] {
			seen[id] = true
			missing = append(missing, id)
		}
	}
	if len(missing) == 0 {
		return HydrationResult[A]{Records: out}
	}

	log := logger.WithContext(ctx)
	fetched := make(map[int64]*E, len(missing))
	var mu sync.Mutex

	// Goroutines never return an error so one failure cannot cancel its siblings.
	var g errgroup.Group
	g.SetLimit(h.concurrency)
	for _, id := range missing {
		id := id
		g.Go(func() error {
			entity, err := h.fetch(ctx, id)
			if err != nil || entity == nil {
				ce := apperrors.Classify(err)
				if ce != nil {
					log.WithField("entity_id", id).WithField("kind", string(ce.Kind)).Debugf("Hydration fetch failed: %v", err)
				}
				return nil
			}
			mu.Lock()
			fetched[id] = entity
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	unresolved := 0
	for i, r := range out {
		if r.Entity() != nil || r.Unresolved() {
			continue
		}
		if entity, ok := fetched[r.EntityID()]; ok {
			out[i] = r.WithEntity(entity)
			continue
		}
		out[i] = r.MarkUnresolved()
		unresolved++
	}

	if unresolved > 0 {
		log.WithField("unresolved", unresolved).Warn("Some associations could not be hydrated")
	}
	return HydrationResult[A]{Records: out, Unresolved: unresolved}
}

// HydrateOne hydrates a single record, reporting whether it ended up renderable
func (h *HydrationResolver[A, E]) HydrateOne(ctx context.Context, record A) (A, bool) {
	res := h.Hydrate(ctx, []A{record})
	return res.Records[0], res.Records[0].Renderable()
}
