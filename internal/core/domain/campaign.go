package domain

import "time"

type Campaign struct {
	ID      string `json:"id" bson:"id"`
	Label   string `json:"label" bson:"label"`
	Visible bool   `json:"visible" bson:"visible"`
	Color   string `json:"color" bson:"color"`
}

// CampaignSet is the per-property list of marketing campaigns.
type CampaignSet struct {
	Property  string     `json:"property"`
	Campaigns []Campaign `json:"campaigns"`
	UpdatedAt time.Time  `json:"updatedAt,omitzero"`
	UpdatedBy string     `json:"updatedBy,omitempty"`
}

// Cadence is how often a target is measured.
type Cadence string

const (
	CadenceWeekly  Cadence = "weekly"
	CadenceMonthly Cadence = "monthly"
)

type TargetItem struct {
	ID      string  `json:"id" bson:"id"`
	Label   string  `json:"label" bson:"label"`
	Cadence Cadence `json:"cadence" bson:"cadence"`
	Visible bool    `json:"visible" bson:"visible"`
	Min     float64 `json:"min" bson:"min"`
	Max     float64 `json:"max" bson:"max"`
}

type TargetConfig struct {
	Weekly  []TargetItem `json:"weekly" bson:"weekly"`
	Monthly []TargetItem `json:"monthly" bson:"monthly"`
}

// TargetSet holds the leasing/marketing targets for one property.
type TargetSet struct {
	Property  string       `json:"property"`
	Config    TargetConfig `json:"config"`
	UpdatedAt time.Time    `json:"updatedAt,omitzero"`
	UpdatedBy string       `json:"updatedBy,omitempty"`
}
