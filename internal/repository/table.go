package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/stpnv0/TableBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type TableRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewTableRepo(db *dbpg.DB) *TableRepository {
	return &TableRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

const tableColumns = `t.id, t.store_id, t.name, t.capacity, t.indoor, t.smoking_allowed,
		t.status, t.description, t.is_active, t.created_at, t.updated_at`

func (r *TableRepository) Create(ctx context.Context, t *domain.Table) error {
	query := `INSERT INTO tables (store_id, name, capacity, indoor, smoking_allowed, status, description, is_active)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING id, created_at, updated_at`

	err := r.db.Master.QueryRowContext(
		ctx, query,
		t.StoreID, t.Name, t.Capacity, t.Indoor, t.SmokingAllowed,
		t.Status, t.Description, t.IsActive,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if pgCode(err) == pgForeignKeyViolation {
			return domain.ErrStoreNotFound
		}
		return fmt.Errorf("insert table: %w", err)
	}

	return nil
}

func (r *TableRepository) GetByID(ctx context.Context, id int64) (*domain.Table, error) {
	query := `SELECT ` + tableColumns + `
			  FROM tables t
			  WHERE t.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get table: %w", err)
	}

	t, err := scanTable(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTableNotFound
		}
		return nil, fmt.Errorf("scan table: %w", err)
	}

	return t, nil
}

func (r *TableRepository) ListByStore(ctx context.Context, storeID string) ([]*domain.Table, error) {
	query := `SELECT ` + tableColumns + `
			  FROM tables t
			  WHERE t.store_id = $1 AND t.is_active = TRUE
			  ORDER BY t.name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, storeID)
	if err != nil {
		return nil, fmt.Errorf("list tables by store: %w", err)
	}
	defer rows.Close()

	return collectTables(rows)
}

// ListAvailable returns active tables of the store that have no active
// booking overlapping w.
func (r *TableRepository) ListAvailable(ctx context.Context, storeID string, w domain.Window) ([]*domain.Table, error) {
	query := `SELECT ` + tableColumns + `
			  FROM tables t
			  WHERE t.store_id = $1
			    AND t.is_active = TRUE
			    AND NOT EXISTS (
			        SELECT 1 FROM bookings b
			        WHERE b.table_id = t.id
			          AND b.status = ANY($2)
			          AND b.booked_at < $4
			          AND $3 < b.ends_at
			    )
			  ORDER BY t.name`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		storeID, pq.Array(domain.ActiveStatuses), w.Start, w.End,
	)
	if err != nil {
		return nil, fmt.Errorf("list available tables: %w", err)
	}
	defer rows.Close()

	return collectTables(rows)
}

func (r *TableRepository) Update(ctx context.Context, t *domain.Table) error {
	query := `UPDATE tables
			  SET name = $2, capacity = $3, indoor = $4, smoking_allowed = $5,
			      description = $6, is_active = $7, updated_at = now()
			  WHERE id = $1
			  RETURNING updated_at`

	err := r.db.Master.QueryRowContext(
		ctx, query,
		t.ID, t.Name, t.Capacity, t.Indoor, t.SmokingAllowed, t.Description, t.IsActive,
	).Scan(&t.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrTableNotFound
		}
		return fmt.Errorf("update table: %w", err)
	}

	return nil
}

func (r *TableRepository) SetStatus(ctx context.Context, id int64, status domain.TableStatus) error {
	query := `UPDATE tables SET status = $2, updated_at = now() WHERE id = $1`
	return r.execOne(ctx, "set table status", query, id, status)
}

func (r *TableRepository) Deactivate(ctx context.Context, id int64) error {
	query := `UPDATE tables SET is_active = FALSE, updated_at = now() WHERE id = $1`
	return r.execOne(ctx, "deactivate table", query, id)
}

func (r *TableRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM tables WHERE id = $1`
	return r.execOne(ctx, "delete table", query, id)
}

// execOne runs a single-row mutation and reports ErrTableNotFound when
// nothing matched.
func (r *TableRepository) execOne(ctx context.Context, op, query string, args ...any) error {
	res, err := r.db.Master.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s rows affected: %w", op, err)
	}
	if n == 0 {
		return domain.ErrTableNotFound
	}

	return nil
}

func collectTables(rows *sql.Rows) ([]*domain.Table, error) {
	var res []*domain.Table
	for rows.Next() {
		t, err := scanTable(rows)
		if err != nil {
			return nil, fmt.Errorf("scan table: %w", err)
		}
		res = append(res, t)
	}

	return res, rows.Err()
}

func scanTable(row scanner) (*domain.Table, error) {
	var t domain.Table
	err := row.Scan(
		&t.ID, &t.StoreID, &t.Name, &t.Capacity, &t.Indoor, &t.SmokingAllowed,
		&t.Status, &t.Description, &t.IsActive, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
