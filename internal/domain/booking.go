package domain

import (
	"strings"
	"time"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusApproved  BookingStatus = "approved"
	BookingStatusDeclined  BookingStatus = "declined"
	BookingStatusCancelled BookingStatus = "cancelled"
)

const (
	DefaultDurationMinutes = 120
	MaxDurationMinutes     = 24 * 60
	MinPartySize           = 1
	MaxPartySize           = 20
)

// ActiveStatuses are the statuses that keep a table occupied for the booking window.
var ActiveStatuses = []BookingStatus{BookingStatusPending, BookingStatusApproved}

// Allowed source statuses per target status.
var (
	ApprovableStatuses  = []BookingStatus{BookingStatusPending}
	DeclinableStatuses  = []BookingStatus{BookingStatusPending}
	CancellableStatuses = []BookingStatus{BookingStatusPending, BookingStatusApproved}
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusApproved, BookingStatusDeclined, BookingStatusCancelled:
		return true
	}
	return false
}

func (s BookingStatus) Active() bool {
	return s == BookingStatusPending || s == BookingStatusApproved
}

func (s BookingStatus) Terminal() bool {
	return s == BookingStatusDeclined || s == BookingStatusCancelled
}

// CanTransition reports whether a booking in status s may move to next.
func (s BookingStatus) CanTransition(next BookingStatus) bool {
	switch next {
	case BookingStatusApproved:
		return s == BookingStatusPending
	case BookingStatusDeclined:
		return s == BookingStatusPending
	case BookingStatusCancelled:
		return s == BookingStatusPending || s == BookingStatusApproved
	}
	return false
}

type Booking struct {
	ID              string        `json:"id"`
	TableID         *int64        `json:"table_id"`
	StoreID         string        `json:"store_id"`
	UserID          *string       `json:"user_id"`
	CustomerName    string        `json:"customer_name"`
	CustomerEmail   string        `json:"customer_email"`
	CustomerPhone   string        `json:"customer_phone"`
	PartySize       int           `json:"party_size"`
	BookedAt        time.Time     `json:"booked_at"`
	DurationMinutes int           `json:"duration_minutes"`
	Status          BookingStatus `json:"status"`
	SpecialRequests string        `json:"special_requests"`
	AcceptCode      string        `json:"accept_code"`
	DeclineReason   string        `json:"decline_reason"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

func (b *Booking) Window() Window {
	return NewWindow(b.BookedAt, b.DurationMinutes)
}

func (b *Booking) EndsAt() time.Time {
	return b.Window().End
}

// RequestedBy reports whether the actor is the user who submitted the booking.
func (b *Booking) RequestedBy(actor Actor) bool {
	return b.UserID != nil && actor.UserID != "" && *b.UserID == actor.UserID
}

// Window is the half-open interval [Start, End).
type Window struct {
	Start time.Time
	End   time.Time
}

func NewWindow(start time.Time, durationMinutes int) Window {
	if durationMinutes <= 0 {
		durationMinutes = DefaultDurationMinutes
	}
	return Window{
		Start: start,
		End:   start.Add(time.Duration(durationMinutes) * time.Minute),
	}
}

// Overlaps reports whether two windows intersect. Touching endpoints do not overlap.
func (w Window) Overlaps(o Window) bool {
	return w.Start.Before(o.End) && o.Start.Before(w.End)
}

// BookingDraft is a booking request before it is persisted.
type BookingDraft struct {
	TableID         *int64
	StoreID         string
	UserID          *string
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	PartySize       int
	BookedAt        time.Time
	DurationMinutes int
	SpecialRequests string
	AcceptCode      string
}

// Validate checks every rule and reports all violations at once.
func (d BookingDraft) Validate(now time.Time) error {
	var v ValidationError

	if d.TableID == nil && strings.TrimSpace(d.StoreID) == "" {
		v.Add("table_id", "either table_id or store_id is required")
	}
	if strings.TrimSpace(d.CustomerName) == "" {
		v.Add("customer_name", "customer name is required")
	}
	if d.PartySize < MinPartySize {
		v.Add("party_size", "party size must be at least 1")
	} else if d.PartySize > MaxPartySize {
		v.Add("party_size", "party size cannot exceed 20")
	}
	if d.BookedAt.IsZero() {
		v.Add("booked_at", "booking date/time is required")
	} else if !d.BookedAt.After(now) {
		v.Add("booked_at", "booking must be in the future")
	}
	if d.DurationMinutes < 0 {
		v.Add("duration_minutes", "duration must be positive")
	} else if d.DurationMinutes > MaxDurationMinutes {
		v.Add("duration_minutes", "duration cannot exceed 24 hours")
	}
	if d.CustomerEmail != "" && !strings.Contains(d.CustomerEmail, "@") {
		v.Add("customer_email", "customer email must contain @")
	}

	return v.OrNil()
}

// Scope selects bookings of a whole store or of a single table.
type Scope struct {
	StoreID string
	TableID *int64
}

func StoreScope(storeID string) Scope {
	return Scope{StoreID: storeID}
}

func TableScope(tableID int64) Scope {
	return Scope{TableID: &tableID}
}

// StatusChange is a conditional status update: it applies only while the
// booking is in one of From.
type StatusChange struct {
	BookingID string
	From      []BookingStatus
	To        BookingStatus
	Reason    string
}
