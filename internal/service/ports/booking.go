package ports

import (
	"context"

	"github.com/stpnv0/TableBooker/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByTable(ctx context.Context, tableID int64) ([]*domain.Booking, error)
	ListByStore(ctx context.Context, storeID string) ([]*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
	ListPending(ctx context.Context, scope domain.Scope) ([]*domain.Booking, error)
	HasOverlap(ctx context.Context, tableID int64, w domain.Window) (bool, error)
	UpdateStatus(ctx context.Context, change domain.StatusChange) (*domain.Booking, error)
	ApprovePending(ctx context.Context, scope domain.Scope) ([]*domain.Booking, error)
	AssignTable(ctx context.Context, bookingID string, tableID int64) (*domain.Booking, error)
	CountPendingByTable(ctx context.Context, storeID string) (map[int64]int, error)
	CountPendingByStore(ctx context.Context) (map[string]int, error)
	Delete(ctx context.Context, id string) error
	DeleteByTable(ctx context.Context, tableID int64) (int64, error)
}
