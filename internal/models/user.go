package models

// User is a platform account that can join project teams
type User struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Lastname string  `json:"lastname"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Image    *string `json:"image,omitempty"`
	IsActive bool    `json:"is_active"`
}

// FullName joins name and lastname
func (u User) FullName() string {
	if u.Lastname == "" {
		return u.Name
	}
	return u.Name + " " + u.Lastname
}
