package service

import (
	"sort"
	"strings"

	"nucleav-frontend/internal/models"

	"golang.org/x/text/cases"
)

// AllCategories disables the category filter
const AllCategories = "all"

// MaterialFilter narrows the material picker
type MaterialFilter struct {
	Search   string `form:"search"`
	Category string `form:"category"`
}

// UserFilter narrows the team member picker
type UserFilter struct {
	Search string `form:"search"`
}

// MaterialCandidates returns the materials that can still be assigned, in input order
func MaterialCandidates(all []models.Material, associated map[int64]struct{}, filter MaterialFilter) []models.Material {
	match := newMatcher(filter.Search)
	category := strings.TrimSpace(filter.Category)
	filterCategory := category != "" && !strings.EqualFold(category, AllCategories)

	out := make([]models.Material, 0, len(all))
	for _, m := range all {
		if _, ok := associated[m.ID]; ok {
			continue
		}
		if filterCategory && m.CategoryName() != category {
			continue
		}
		if !match(m.Name, deref(m.Description), deref(m.Category)) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// UserCandidates returns the active users not yet on the team, in input order
func UserCandidates(all []models.User, associated map[int64]struct{}, filter UserFilter) []models.User {
	match := newMatcher(filter.Search)

	out := make([]models.User, 0, len(all))
	for _, u := range all {
		if _, ok := associated[u.ID]; ok || !u.IsActive {
			continue
		}
		if !match(u.Name, u.Lastname, u.Username, u.Email) {
			continue
		}
		out = append(out, u)
	}
	return out
}

// ClampQuantity bounds a requested quantity to [1, material.Quantity].
// It returns 0 when the material has nothing available.
func ClampQuantity(material models.Material, requested int) int {
	if material.Quantity < 1 {
		return 0
	}
	if requested < 1 {
		return 1
	}
	if requested > material.Quantity {
		return material.Quantity
	}
	return requested
}

// MaterialCategories lists the distinct non-empty categories, sorted
func MaterialCategories(all []models.Material) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, m := range all {
		c := m.CategoryName()
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// newMatcher builds a case-insensitive substring matcher over any of the given fields
func newMatcher(search string) func(fields ...string) bool {
	search = strings.TrimSpace(search)
	if search == "" {
		return func(...string) bool { return true }
	}
	// A Caser keeps state, so each matcher owns one.
	folder := cases.Fold()
	needle := folder.String(search)
	return func(fields ...string) bool {
		for _, f := range fields {
			if f != "" && strings.Contains(folder.String(f), needle) {
				return true
			}
		}
		return false
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
