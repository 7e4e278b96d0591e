package domain

import "time"

// StoredFile is an opaque blob owned by a property.
type StoredFile struct {
	ID          string
	Property    string
	Filename    string
	ContentType string
	Size        int64
	Data        []byte
	Uploader    string
	CreatedAt   time.Time
}
