package models

import "time"

// AssociationKind identifies which many-to-many relation a record belongs to
type AssociationKind string

const (
	AssociationKindMaterial AssociationKind = "material"
	AssociationKindUser     AssociationKind = "user"
)

// Association is implemented by every project join record. A is the concrete
// record type and E the entity it points at, so WithEntity can return A.
type Association[A any, E any] interface {
	AssociationID() int64
	ParentID() int64
	EntityID() int64
	Kind() AssociationKind
	// Entity returns the nested entity, nil until hydrated.
	Entity() *E
	WithEntity(entity *E) A
	// Unresolved is true once hydration has permanently failed.
	Unresolved() bool
	MarkUnresolved() A
	Renderable() bool
}

// ProjectMaterial assigns a quantity of a material to a project
type ProjectMaterial struct {
	ID               int64     `json:"id"`
	ProjectID        int64     `json:"project_id"`
	MaterialID       int64     `json:"material_id"`
	QuantityAssigned int       `json:"quantity_assigned"`
	Material         *Material `json:"material,omitempty"`
	CreatedAt        time.Time `json:"created_at"`

	unresolved bool
}

func (pm ProjectMaterial) AssociationID() int64  { return pm.ID }
func (pm ProjectMaterial) ParentID() int64       { return pm.ProjectID }
func (pm ProjectMaterial) EntityID() int64       { return pm.MaterialID }
func (pm ProjectMaterial) Kind() AssociationKind { return AssociationKindMaterial }
func (pm ProjectMaterial) Entity() *Material     { return pm.Material }
func (pm ProjectMaterial) Unresolved() bool      { return pm.unresolved }

func (pm ProjectMaterial) WithEntity(m *Material) ProjectMaterial {
	pm.Material = m
	pm.unresolved = false
	return pm
}

func (pm ProjectMaterial) MarkUnresolved() ProjectMaterial {
	pm.unresolved = true
	return pm
}

func (pm ProjectMaterial) Renderable() bool {
	return pm.Material != nil && !pm.unresolved
}

// ProjectUser records a user's membership in a project team
type ProjectUser struct {
	ID        int64     `json:"id"`
	ProjectID int64     `json:"project_id"`
	UserID    int64     `json:"user_id"`
	User      *User     `json:"user,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	unresolved bool
}

func (pu ProjectUser) AssociationID() int64  { return pu.ID }
func (pu ProjectUser) ParentID() int64       { return pu.ProjectID }
func (pu ProjectUser) EntityID() int64       { return pu.UserID }
func (pu ProjectUser) Kind() AssociationKind { return AssociationKindUser }
func (pu ProjectUser) Entity() *User         { return pu.User }
func (pu ProjectUser) Unresolved() bool      { return pu.unresolved }

func (pu ProjectUser) WithEntity(u *User) ProjectUser {
	pu.User = u
	pu.unresolved = false
	return pu
}

func (pu ProjectUser) MarkUnresolved() ProjectUser {
	pu.unresolved = true
	return pu
}

func (pu ProjectUser) Renderable() bool {
	return pu.User != nil && !pu.unresolved
}

var (
	_ Association[ProjectMaterial, Material] = ProjectMaterial{}
	_ Association[ProjectUser, User]         = ProjectUser{}
)
