package models

// Material is an inventory item that can be assigned to projects
type Material struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Description  *string `json:"description,omitempty"`
	Category     *string `json:"category,omitempty"`
	Location     *string `json:"location,omitempty"`
	SerialNumber *string `json:"serial_number,omitempty"`
	ImageURL     *string `json:"image_url,omitempty"`
	IsConsumable bool    `json:"is_consumable"`
	Quantity     int     `json:"quantity"` // total available
}

// CategoryName returns the category or an empty string
func (m Material) CategoryName() string {
	if m.Category == nil {
		return ""
	}
	return *m.Category
}
