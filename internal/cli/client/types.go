package client

import "github.com/rafaathzanar/playera-admin-portal/internal/cli/auth"

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse represents the login response
type LoginResponse struct {
	Token string            `json:"token"`
	User  auth.AdminProfile `json:"user"`
}

// StatusUpdate activates or deactivates a user, venue or venue owner
type StatusUpdate struct {
	IsActive bool   `json:"isActive"`
	Reason   string `json:"reason,omitempty"`
}

// Approval approves or rejects a venue or venue owner
type Approval struct {
	Approved bool   `json:"approved"`
	Reason   string `json:"reason,omitempty"`
}

// Cancellation cancels a booking
type Cancellation struct {
	Reason string `json:"reason"`
}

// Refund requests a refund for a payment
type Refund struct {
	Amount float64 `json:"amount"`
	Reason string  `json:"reason"`
}

// ModerationAction is the decision taken on a review
type ModerationAction string

const (
	ModerationApprove ModerationAction = "APPROVE"
	ModerationReject  ModerationAction = "REJECT"
	ModerationHide    ModerationAction = "HIDE"
)

// Moderation is the review moderation request body
type Moderation struct {
	Action ModerationAction `json:"action"`
	Reason string           `json:"reason,omitempty"`
}

// DateRange selects the revenue analytics window
type DateRange string

const (
	RangeWeek    DateRange = "week"
	RangeMonth   DateRange = "month"
	RangeQuarter DateRange = "quarter"
	RangeYear    DateRange = "year"
)

// RoleVenueOwner is the role every venue owner listing is restricted to
const RoleVenueOwner = "VENUE_OWNER"

// UserFilters narrows the user listing. nil fields are left out of the query.
type UserFilters struct {
	Page     *int
	Size     *int
	Search   *string
	Role     *string
	IsActive *bool
}

// Query returns the filters as query parameters
func (f UserFilters) Query() *Query {
	return NewQuery().
		Add("page", f.Page).
		Add("size", f.Size).
		Add("search", f.Search).
		Add("role", f.Role).
		Add("isActive", f.IsActive)
}

// VenueFilters narrows the venue listing
type VenueFilters struct {
	Page       *int
	Size       *int
	Search     *string
	VenueType  *string
	IsActive   *bool
	IsApproved *bool
}

// Query returns the filters as query parameters
func (f VenueFilters) Query() *Query {
	return NewQuery().
		Add("page", f.Page).
		Add("size", f.Size).
		Add("search", f.Search).
		Add("venueType", f.VenueType).
		Add("isActive", f.IsActive).
		Add("isApproved", f.IsApproved)
}

// VenueOwnerFilters narrows the venue owner listing
type VenueOwnerFilters struct {
	Page     *int
	Size     *int
	Search   *string
	IsActive *bool
}

// Query returns the filters as query parameters with the role pinned
func (f VenueOwnerFilters) Query() *Query {
	return NewQuery().
		Add("page", f.Page).
		Add("size", f.Size).
		Add("role", RoleVenueOwner).
		Add("search", f.Search).
		Add("isActive", f.IsActive)
}

// BookingFilters narrows the booking listing
type BookingFilters struct {
	Page       *int
	Size       *int
	Status     *string
	DateFrom   *string
	DateTo     *string
	CustomerID *int64
	VenueID    *int64
}

// Query returns the filters as query parameters
func (f BookingFilters) Query() *Query {
	return NewQuery().
		Add("page", f.Page).
		Add("size", f.Size).
		Add("status", f.Status).
		Add("dateFrom", f.DateFrom).
		Add("dateTo", f.DateTo).
		Add("customerId", f.CustomerID).
		Add("venueId", f.VenueID)
}
