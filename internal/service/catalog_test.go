package service_test

import (
	"testing"

	"nucleav-frontend/internal/models"
	"nucleav-frontend/internal/service"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func inventory() []models.Material {
	return []models.Material{
		{ID: 1, Name: "Cámara Sony", Category: strPtr("Vídeo"), Quantity: 2},
		{ID: 2, Name: "Trípode", Description: strPtr("Soporte para cámara"), Category: strPtr("Soportes"), Quantity: 4},
		{ID: 3, Name: "Micrófono", Category: strPtr("Audio"), Quantity: 0},
		{ID: 4, Name: "Cable XLR", Category: strPtr("Audio"), IsConsumable: true, Quantity: 20},
	}
}

func ids(materials []models.Material) []int64 {
	out := make([]int64, 0, len(materials))
	for _, m := range materials {
		out = append(out, m.ID)
	}
	return out
}

func TestMaterialCandidates(t *testing.T) {
	tests := []struct {
		name       string
		associated map[int64]struct{}
		filter     service.MaterialFilter
		want       []int64
	}{
		{
			name: "no filter returns all in order",
			want: []int64{1, 2, 3, 4},
		},
		{
			name:       "associated materials are excluded",
			associated: map[int64]struct{}{1: {}, 4: {}},
			want:       []int64{2, 3},
		},
		{
			name:   "search is case-insensitive over name and description",
			filter: service.MaterialFilter{Search: "CÁMARA"},
			want:   []int64{1, 2},
		},
		{
			name:   "category is an exact match",
			filter: service.MaterialFilter{Category: "Audio"},
			want:   []int64{3, 4},
		},
		{
			name:   "all disables the category filter",
			filter: service.MaterialFilter{Category: "all"},
			want:   []int64{1, 2, 3, 4},
		},
		{
			name:       "search, category and exclusion combine",
			associated: map[int64]struct{}{3: {}},
			filter:     service.MaterialFilter{Search: "xlr", Category: "Audio"},
			want:       []int64{4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := service.MaterialCandidates(inventory(), tt.associated, tt.filter)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestMaterialCandidates_NeverReturnsAssociated(t *testing.T) {
	all := inventory()
	associated := map[int64]struct{}{}
	for _, m := range all {
		associated[m.ID] = struct{}{}
	}
	assert.Empty(t, service.MaterialCandidates(all, associated, service.MaterialFilter{}))
}

// A user search for "ana" among {Ana (active), Anabel (inactive), Juan} with Ana
// already on the team yields nothing.
func TestUserCandidates_ExcludesMembersAndInactive(t *testing.T) {
	users := []models.User{
		{ID: 1, Name: "Ana", Lastname: "Ruiz", Username: "aruiz", Email: "ana@nucleav.es", IsActive: true},
		{ID: 2, Name: "Anabel", Lastname: "Gómez", Username: "agomez", Email: "anabel@nucleav.es", IsActive: false},
		{ID: 3, Name: "Juan", Lastname: "Pérez", Username: "jperez", Email: "juan@nucleav.es", IsActive: true},
	}

	got := service.UserCandidates(users, map[int64]struct{}{1: {}}, service.UserFilter{Search: "ana"})
	assert.Empty(t, got)

	got = service.UserCandidates(users, nil, service.UserFilter{Search: "PÉREZ"})
	if assert.Len(t, got, 1) {
		assert.Equal(t, int64(3), got[0].ID)
	}

	got = service.UserCandidates(users, nil, service.UserFilter{Search: "nucleav.es"})
	assert.Len(t, got, 2)
}

func TestClampQuantity(t *testing.T) {
	m := models.Material{ID: 1, Quantity: 5}

	assert.Equal(t, 1, service.ClampQuantity(m, 0))
	assert.Equal(t, 1, service.ClampQuantity(m, -3))
	assert.Equal(t, 3, service.ClampQuantity(m, 3))
	assert.Equal(t, 5, service.ClampQuantity(m, 9))
	assert.Equal(t, 0, service.ClampQuantity(models.Material{ID: 2}, 1))
}

func TestMaterialCategories(t *testing.T) {
	all := append(inventory(), models.Material{ID: 5, Name: "Sin categoría"})
	assert.Equal(t, []string{"Audio", "Soportes", "Vídeo"}, service.MaterialCategories(all))
	assert.Equal(t, []string{}, service.MaterialCategories(nil))
}
