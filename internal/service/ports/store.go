package ports

import (
	"context"

	"github.com/stpnv0/TableBooker/internal/domain"
)

type StoreRepo interface {
	Create(ctx context.Context, s *domain.Store) error
	GetByID(ctx context.Context, id string) (*domain.Store, error)
	List(ctx context.Context) ([]*domain.Store, error)
}
