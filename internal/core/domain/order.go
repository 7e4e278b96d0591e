package domain

import "time"

// OrderStatus is the purchasing workflow state of an order.
type OrderStatus string

const (
	OrderSubmitted OrderStatus = "Submitted"
	OrderApproved  OrderStatus = "Approved"
	OrderOrdered   OrderStatus = "Ordered"
	OrderShipped   OrderStatus = "Shipped"
	OrderDelivered OrderStatus = "Delivered"
	OrderRejected  OrderStatus = "Rejected"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderSubmitted, OrderApproved, OrderOrdered, OrderShipped, OrderDelivered, OrderRejected:
		return true
	}
	return false
}

type Order struct {
	ID             string      `json:"id"`
	Property       string      `json:"property"`
	Title          string      `json:"title"`
	Items          string      `json:"items"`
	NeededBy       string      `json:"neededBy"`
	Vendor         string      `json:"vendor"`
	Cost           float64     `json:"cost"`
	Notes          string      `json:"notes"`
	Status         OrderStatus `json:"status"`
	SubmittedAt    time.Time   `json:"submittedAt"`
	ApprovalAt     *time.Time  `json:"approvalAt"`
	TrackingNumber string      `json:"trackingNumber"`
	CreatedBy      string      `json:"createdBy"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}
