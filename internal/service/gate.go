package service

import (
	"context"
	"fmt"

	"github.com/stpnv0/TableBooker/internal/domain"
	"github.com/stpnv0/TableBooker/internal/service/ports"
)

// OwnershipGate decides who may manage a store and serves the owner's
// pending-booking views.
type OwnershipGate struct {
	stores   ports.StoreRepo
	tables   ports.TableRepo
	bookings ports.BookingRepo
}

func NewOwnershipGate(stores ports.StoreRepo, tables ports.TableRepo, bookings ports.BookingRepo) *OwnershipGate {
	return &OwnershipGate{
		stores:   stores,
		tables:   tables,
		bookings: bookings,
	}
}

func (g *OwnershipGate) CanManage(ctx context.Context, actor domain.Actor, storeID string) (bool, error) {
	if actor.Anonymous() {
		return false, nil
	}
	if actor.Admin {
		return true, nil
	}

	store, err := g.stores.GetByID(ctx, storeID)
	if err != nil {
		return false, fmt.Errorf("get store: %w", err)
	}

	return actor.Owns(store.OwnerID), nil
}

func (g *OwnershipGate) CanManageTable(ctx context.Context, actor domain.Actor, tableID int64) (bool, error) {
	table, err := g.tables.GetByID(ctx, tableID)
	if err != nil {
		return false, fmt.Errorf("get table: %w", err)
	}
	return g.CanManage(ctx, actor, table.StoreID)
}

// ListPending returns pending bookings of the scope, most recent first.
func (g *OwnershipGate) ListPending(ctx context.Context, actor domain.Actor, scope domain.Scope) ([]*domain.Booking, error) {
	if _, err := g.authorizeScope(ctx, actor, scope); err != nil {
		return nil, err
	}

	bookings, err := g.bookings.ListPending(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("list pending: %w", err)
	}

	return bookings, nil
}

// PendingCounts returns the number of pending bookings per table of the store.
func (g *OwnershipGate) PendingCounts(ctx context.Context, actor domain.Actor, storeID string) (map[int64]int, error) {
	if err := g.authorize(ctx, actor, storeID); err != nil {
		return nil, err
	}

	counts, err := g.bookings.CountPendingByTable(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("count pending: %w", err)
	}

	return counts, nil
}

func (g *OwnershipGate) authorize(ctx context.Context, actor domain.Actor, storeID string) error {
	ok, err := g.CanManage(ctx, actor, storeID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrForbidden
	}
	return nil
}

// authorizeScope checks management rights over the scope and returns the
// store it belongs to.
func (g *OwnershipGate) authorizeScope(ctx context.Context, actor domain.Actor, scope domain.Scope) (string, error) {
	storeID := scope.StoreID
	if scope.TableID != nil {
		table, err := g.tables.GetByID(ctx, *scope.TableID)
		if err != nil {
			return "", fmt.Errorf("get table: %w", err)
		}
		storeID = table.StoreID
	}

	if err := g.authorize(ctx, actor, storeID); err != nil {
		return "", err
	}

	return storeID, nil
}
