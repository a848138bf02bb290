package domain

import "time"

type BookingEventType string

const (
	EventBookingCreated   BookingEventType = "booking.created"
	EventBookingApproved  BookingEventType = "booking.approved"
	EventBookingDeclined  BookingEventType = "booking.declined"
	EventBookingCancelled BookingEventType = "booking.cancelled"
	EventBookingAssigned  BookingEventType = "booking.assigned"
)

// BookingEvent is pushed to store subscribers whenever a booking changes.
type BookingEvent struct {
	Type       BookingEventType `json:"type"`
	StoreID    string           `json:"store_id"`
	Booking    *Booking         `json:"booking"`
	OccurredAt time.Time        `json:"occurred_at"`
}

func NewBookingEvent(t BookingEventType, b *Booking) BookingEvent {
	return BookingEvent{
		Type:       t,
		StoreID:    b.StoreID,
		Booking:    b,
		OccurredAt: time.Now().UTC(),
	}
}
