package handler

import "github.com/mmp/property-portal/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type statusResponse struct {
	Status string `json:"status"`
}

var okResponse = statusResponse{Status: "ok"}

type idResponse struct {
	ID string `json:"id"`
}

// --- Auth ---

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	User  domain.Summary `json:"user"`
	Token string         `json:"token,omitempty"`
}

// --- Users ---

type createUserRequest struct {
	Username   string               `json:"username"   validate:"required,max=64"`
	Password   string               `json:"password"   validate:"required"`
	Role       string               `json:"role"       validate:"omitempty,oneof=admin user"`
	Properties domain.PropertyGrant `json:"properties"`
}

type updateUserRequest struct {
	Password   *string               `json:"password,omitempty"`
	Role       *string               `json:"role,omitempty" validate:"omitempty,oneof=admin user"`
	Properties *domain.PropertyGrant `json:"properties,omitempty"`
}

// --- Properties & budgets ---

type createPropertyRequest struct {
	Name string `json:"name" validate:"required"`
}

type budgetRequest struct {
	Property string             `json:"property" validate:"required"`
	Months   map[string]float64 `json:"months"   validate:"required"`
}

// --- Contacts ---

type contactRequest struct {
	Property     string `json:"property" validate:"required"`
	Type         string `json:"type"     validate:"required,oneof=general partnership department"`
	Name         string `json:"name"`
	Organization string `json:"organization"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Notes        string `json:"notes"`
}

type visitRequest struct {
	Date  string `json:"date" validate:"required"`
	Notes string `json:"notes"`
	By    string `json:"by"`
}

type updateContactRequest struct {
	Property     string        `json:"property" validate:"required"`
	Name         *string       `json:"name"`
	Organization *string       `json:"organization"`
	Email        *string       `json:"email"`
	Phone        *string       `json:"phone"`
	Notes        *string       `json:"notes"`
	PushVisit    *visitRequest `json:"pushVisit"`
}

// --- Events ---

type eventRequest struct {
	Property    string `json:"property" validate:"required"`
	Title       string `json:"title"    validate:"required"`
	Date        string `json:"date"     validate:"required"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

type updateEventRequest struct {
	Property    string  `json:"property" validate:"required"`
	Title       *string `json:"title"`
	Date        *string `json:"date"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
}

// --- Orders ---

type orderRequest struct {
	Property string  `json:"property" validate:"required"`
	Title    string  `json:"title"`
	Items    string  `json:"items"`
	NeededBy string  `json:"neededBy"`
	Vendor   string  `json:"vendor"`
	Cost     float64 `json:"cost"`
	Notes    string  `json:"notes"`
}

type updateOrderRequest struct {
	Property       string   `json:"property" validate:"required"`
	Title          *string  `json:"title"`
	Items          *string  `json:"items"`
	NeededBy       *string  `json:"neededBy"`
	Vendor         *string  `json:"vendor"`
	Cost           *float64 `json:"cost"`
	Notes          *string  `json:"notes"`
	TrackingNumber *string  `json:"trackingNumber"`
	Status         *string  `json:"status"`
}

// --- Campaigns & targets ---

type campaignItem struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Visible *bool  `json:"visible"`
	Color   string `json:"color"`
}

type campaignsRequest struct {
	Property  string         `json:"property"`
	Campaigns []campaignItem `json:"campaigns"`
}

type targetsRequest struct {
	Property string               `json:"property"`
	Config   *domain.TargetConfig `json:"config"`
}

// --- Social feed ---

type socialPostRequest struct {
	Property  string `json:"property"  validate:"required"`
	Platform  string `json:"platform"  validate:"required"`
	ImageURL  string `json:"imageUrl"  validate:"required"`
	Timestamp string `json:"timestamp" validate:"required"`
	Permalink string `json:"permalink"`
	Caption   string `json:"caption"`
}

// --- Files ---

type uploadResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}
