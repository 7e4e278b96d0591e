package domain

import "time"

// SocialPost is a curated social media post shown on a property's feed.
type SocialPost struct {
	ID        string    `json:"id"`
	Property  string    `json:"property"`
	Platform  string    `json:"platform"`
	ImageURL  string    `json:"imageUrl"`
	Timestamp time.Time `json:"timestamp"`
	Permalink string    `json:"permalink"`
	Caption   string    `json:"caption"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
}
