package service_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	apperrors "nucleav-frontend/internal/errors"
	"nucleav-frontend/internal/models"
	"nucleav-frontend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fetchCounter struct {
	mu    sync.Mutex
	calls map[int64]int
}

func (f *fetchCounter) hit(id int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = make(map[int64]int)
	}
	f.calls[id]++
}

func (f *fetchCounter) count(id int64) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[id]
}

func materialFetcher(counter *fetchCounter, failing ...int64) service.EntityFetcher[models.Material] {
	fail := make(map[int64]bool)
	for _, id := range failing {
		fail[id] = true
	}
	return func(ctx context.Context, id int64) (*models.Material, error) {
		counter.hit(id)
		if fail[id] {
			return nil, &apperrors.APIError{Method: "GET", Path: "/materials", StatusCode: 404}
		}
		return &models.Material{ID: id, Name: "material", Quantity: 10}, nil
	}
}

func TestHydrate_AttachesMissingEntities(t *testing.T) {
	counter := &fetchCounter{}
	resolver := service.NewHydrationResolver[models.ProjectMaterial, models.Material](materialFetcher(counter), 4)

	nested := &models.Material{ID: 1, Name: "Trípode"}
	records := []models.ProjectMaterial{
		{ID: 10, ProjectID: 7, MaterialID: 1, QuantityAssigned: 1, Material: nested},
		{ID: 11, ProjectID: 7, MaterialID: 2, QuantityAssigned: 1},
	}

	res := resolver.Hydrate(context.Background(), records)

	require.Len(t, res.Records, 2)
	assert.Zero(t, res.Unresolved)
	assert.Same(t, nested, res.Records[0].Material)
	require.NotNil(t, res.Records[1].Material)
	assert.Equal(t, int64(2), res.Records[1].Material.ID)
	assert.Zero(t, counter.count(1), "records with nested data must not be fetched")
	assert.Nil(t, records[1].Material, "input must not be mutated")
}

func TestHydrate_DeduplicatesEntityIDs(t *testing.T) {
	counter := &fetchCounter{}
	resolver := service.NewHydrationResolver[models.ProjectMaterial, models.Material](materialFetcher(counter), 4)

	records := []models.ProjectMaterial{
		{ID: 1, ProjectID: 7, MaterialID: 5},
		{ID: 2, ProjectID: 8, MaterialID: 5},
		{ID: 3, ProjectID: 9, MaterialID: 5},
	}

	res := resolver.Hydrate(context.Background(), records)

	assert.Zero(t, res.Unresolved)
	assert.Equal(t, 1, counter.count(5))
	for _, r := range res.Records {
		assert.True(t, r.Renderable())
	}
}

// One failed fetch among three must not affect the other two.
func TestHydrate_FailureIsIsolated(t *testing.T) {
	counter := &fetchCounter{}
	resolver := service.NewHydrationResolver[models.ProjectMaterial, models.Material](materialFetcher(counter, 21), 2)

	records := []models.ProjectMaterial{
		{ID: 1, ProjectID: 7, MaterialID: 20},
		{ID: 2, ProjectID: 7, MaterialID: 21},
		{ID: 3, ProjectID: 7, MaterialID: 22},
	}

	res := resolver.Hydrate(context.Background(), records)

	require.Len(t, res.Records, 3)
	assert.Equal(t, 1, res.Unresolved)
	assert.True(t, res.Records[0].Renderable())
	assert.False(t, res.Records[1].Renderable())
	assert.True(t, res.Records[1].Unresolved())
	assert.True(t, res.Records[2].Renderable())
}

func TestHydrate_Idempotent(t *testing.T) {
	counter := &fetchCounter{}
	resolver := service.NewHydrationResolver[models.ProjectMaterial, models.Material](materialFetcher(counter, 31), 4)

	records := []models.ProjectMaterial{
		{ID: 1, ProjectID: 7, MaterialID: 30},
		{ID: 2, ProjectID: 7, MaterialID: 31},
	}

	first := resolver.Hydrate(context.Background(), records)
	second := resolver.Hydrate(context.Background(), first.Records)

	assert.Equal(t, first.Records, second.Records)
	assert.Zero(t, second.Unresolved)
	assert.Equal(t, 1, counter.count(30))
	assert.Equal(t, 1, counter.count(31), "unresolved records are not retried")
}

func TestHydrate_RespectsConcurrencyLimit(t *testing.T) {
	var current, peak int32
	fetch := func(ctx context.Context, id int64) (*models.User, error) {
		n := atomic.AddInt32(&current, 1)
		for {
			p := atomic.LoadInt32(&peak)
			if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		atomic.AddInt32(&current, -1)
		return &models.User{ID: id, Name: "u", IsActive: true}, nil
	}
	resolver := service.NewHydrationResolver[models.ProjectUser, models.User](fetch, 2)

	records := make([]models.ProjectUser, 0, 10)
	for i := int64(1); i <= 10; i++ {
		records = append(records, models.ProjectUser{ID: i, ProjectID: 7, UserID: i})
	}

	res := resolver.Hydrate(context.Background(), records)

	assert.Zero(t, res.Unresolved)
	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(2))
}

func TestHydrate_NilEntityCountsAsFailure(t *testing.T) {
	fetch := func(ctx context.Context, id int64) (*models.User, error) {
		if id == 2 {
			return nil, errors.New("connection reset")
		}
		return nil, nil
	}
	resolver := service.NewHydrationResolver[models.ProjectUser, models.User](fetch, 0)

	res := resolver.Hydrate(context.Background(), []models.ProjectUser{
		{ID: 1, ProjectID: 7, UserID: 1},
		{ID: 2, ProjectID: 7, UserID: 2},
	})

	assert.Equal(t, 2, res.Unresolved)
}

func TestHydrateOne(t *testing.T) {
	counter := &fetchCounter{}
	resolver := service.NewHydrationResolver[models.ProjectMaterial, models.Material](materialFetcher(counter, 9), 1)

	rec, ok := resolver.HydrateOne(context.Background(), models.ProjectMaterial{ID: 1, ProjectID: 7, MaterialID: 3})
	assert.True(t, ok)
	require.NotNil(t, rec.Material)

	rec, ok = resolver.HydrateOne(context.Background(), models.ProjectMaterial{ID: 2, ProjectID: 7, MaterialID: 9})
	assert.False(t, ok)
	assert.True(t, rec.Unresolved())

	_, ok = resolver.HydrateOne(context.Background(), rec)
	assert.False(t, ok, "an unresolved record stays unrenderable")
}
