package ports

import (
	"context"

	"github.com/stpnv0/TableBooker/internal/domain"
)

type TableRepo interface {
	Create(ctx context.Context, t *domain.Table) error
	GetByID(ctx context.Context, id int64) (*domain.Table, error)
	ListByStore(ctx context.Context, storeID string) ([]*domain.Table, error)
	ListAvailable(ctx context.Context, storeID string, w domain.Window) ([]*domain.Table, error)
	Update(ctx context.Context, t *domain.Table) error
	SetStatus(ctx context.Context, id int64, status domain.TableStatus) error
	Deactivate(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}
