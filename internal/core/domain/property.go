package domain

// Property is a tenant: a managed building or business unit that scopes
// resource visibility.
type Property struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Budget holds per-month amounts for one property, keyed by "YYYY-MM".
type Budget struct {
	Property string             `json:"property"`
	Months   map[string]float64 `json:"months"`
}
