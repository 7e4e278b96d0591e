package domain

import "time"

// Event is a calendar entry (open house, resident event, tour) for a property.
type Event struct {
	ID          string    `json:"id"`
	Property    string    `json:"property"`
	Title       string    `json:"title"`
	Date        string    `json:"date"`
	Location    string    `json:"location,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt,omitzero"`
}
