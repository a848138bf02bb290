package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/stpnv0/TableBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type StoreRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewStoreRepo(db *dbpg.DB) *StoreRepository {
	return &StoreRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

const storeColumns = `id, owner_id, name, description, address, city, phone,
		is_active, telegram_chat_id, created_at, updated_at`

func (r *StoreRepository) Create(ctx context.Context, s *domain.Store) error {
	query := `INSERT INTO stores (id, owner_id, name, description, address, city, phone,
                    is_active, telegram_chat_id, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		s.ID, s.OwnerID, s.Name, s.Description, s.Address, s.City, s.Phone,
		s.IsActive, s.TelegramChatID, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert store: %w", err)
	}

	return nil
}

func (r *StoreRepository) GetByID(ctx context.Context, id string) (*domain.Store, error) {
	query := `SELECT ` + storeColumns + `
			  FROM stores
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get store: %w", err)
	}

	s, err := scanStore(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrStoreNotFound
		}
		return nil, fmt.Errorf("scan store: %w", err)
	}

	return s, nil
}

func (r *StoreRepository) List(ctx context.Context) ([]*domain.Store, error) {
	query := `SELECT ` + storeColumns + `
			  FROM stores
			  WHERE is_active = TRUE
			  ORDER BY name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	defer rows.Close()

	var res []*domain.Store
	for rows.Next() {
		s, err := scanStore(rows)
		if err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}
		res = append(res, s)
	}

	return res, rows.Err()
}

func scanStore(row scanner) (*domain.Store, error) {
	var s domain.Store
	err := row.Scan(
		&s.ID, &s.OwnerID, &s.Name, &s.Description, &s.Address, &s.City, &s.Phone,
		&s.IsActive, &s.TelegramChatID, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func defaultStrategy() retry.Strategy {
	return retry.Strategy{
		Attempts: 3,
		Delay:    500 * time.Millisecond,
		Backoff:  2,
	}
}
