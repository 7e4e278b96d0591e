package domain

import "time"

// ContactType partitions a property's contacts.
type ContactType string

const (
	ContactGeneral     ContactType = "general"
	ContactPartnership ContactType = "partnership"
	ContactDepartment  ContactType = "department"
)

func (t ContactType) Valid() bool {
	switch t {
	case ContactGeneral, ContactPartnership, ContactDepartment:
		return true
	}
	return false
}

// Visit is an outreach log entry appended to a contact.
type Visit struct {
	Date  string `json:"date" bson:"date"`
	Notes string `json:"notes,omitempty" bson:"notes,omitempty"`
	By    string `json:"by,omitempty" bson:"by,omitempty"`
}

type Contact struct {
	ID           string      `json:"id"`
	Property     string      `json:"property"`
	Type         ContactType `json:"type"`
	Name         string      `json:"name"`
	Organization string      `json:"organization,omitempty"`
	Email        string      `json:"email,omitempty"`
	Phone        string      `json:"phone,omitempty"`
	Notes        string      `json:"notes,omitempty"`
	Visits       []Visit     `json:"visits"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt,omitzero"`
}

// ContactGroups is the listing shape returned when no type filter is given.
type ContactGroups struct {
	General      []Contact `json:"general"`
	Partnerships []Contact `json:"partnerships"`
	Departments  []Contact `json:"departments"`
}
