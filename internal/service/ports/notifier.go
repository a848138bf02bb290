package ports

import (
	"context"

	"github.com/stpnv0/TableBooker/internal/domain"
)

// BookingNotifier delivers owner-facing notifications.
type BookingNotifier interface {
	NotifyBookingRequested(ctx context.Context, store *domain.Store, booking *domain.Booking)
	NotifyBookingCancelled(ctx context.Context, store *domain.Store, booking *domain.Booking)
	NotifyPendingReminder(ctx context.Context, store *domain.Store, pending int)
}

// EventPublisher pushes booking changes to live subscribers.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.BookingEvent)
}
