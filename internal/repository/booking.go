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

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

const bookingColumns = `id, table_id, store_id, user_id, customer_name, customer_email, customer_phone,
		party_size, booked_at, duration_minutes, status, special_requests, accept_code,
		decline_reason, created_at, updated_at`

// Create inserts a booking. When the booking targets a table, the table row
// is locked and the window re-checked inside the same transaction; the
// bookings_no_overlap exclusion constraint is the final arbiter.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if b.TableID != nil {
		if err = lockTable(ctx, tx, *b.TableID, b.StoreID); err != nil {
			return err
		}

		overlap, err := hasOverlap(ctx, tx, *b.TableID, b.Window())
		if err != nil {
			return err
		}
		if overlap {
			return domain.ErrConflict
		}
	}

	query := `INSERT INTO bookings (id, table_id, store_id, user_id, customer_name, customer_email,
                      customer_phone, party_size, booked_at, duration_minutes, ends_at, status,
                      special_requests, accept_code, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err = tx.ExecContext(
		ctx, query,
		b.ID, b.TableID, b.StoreID, b.UserID, b.CustomerName, b.CustomerEmail,
		b.CustomerPhone, b.PartySize, b.BookedAt, b.DurationMinutes, b.EndsAt(), b.Status,
		b.SpecialRequests, b.AcceptCode, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		switch pgCode(err) {
		case pgExclusionViolation:
			return domain.ErrConflict
		case pgForeignKeyViolation:
			return domain.ErrStoreNotFound
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) ListByTable(ctx context.Context, tableID int64) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
              FROM bookings
              WHERE table_id = $1
              ORDER BY booked_at`
	return r.list(ctx, "list bookings by table", query, tableID)
}

func (r *BookingRepository) ListByStore(ctx context.Context, storeID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
              FROM bookings
              WHERE store_id = $1
              ORDER BY booked_at`
	return r.list(ctx, "list bookings by store", query, storeID)
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
              FROM bookings
              WHERE user_id = $1
              ORDER BY booked_at`
	return r.list(ctx, "list bookings by user", query, userID)
}

// ListPending returns pending bookings of the scope, most recent first.
func (r *BookingRepository) ListPending(ctx context.Context, scope domain.Scope) ([]*domain.Booking, error) {
	column, arg := scopeFilter(scope)
	query := `SELECT ` + bookingColumns + `
              FROM bookings
              WHERE status = $1 AND ` + column + ` = $2
              ORDER BY created_at DESC`
	return r.list(ctx, "list pending bookings", query, domain.BookingStatusPending, arg)
}

func (r *BookingRepository) HasOverlap(ctx context.Context, tableID int64, w domain.Window) (bool, error) {
	return hasOverlap(ctx, r.db.Master, tableID, w)
}

// UpdateStatus applies the change only while the booking is still in one of
// change.From, so concurrent transitions cannot both win.
func (r *BookingRepository) UpdateStatus(ctx context.Context, change domain.StatusChange) (*domain.Booking, error) {
	query := `UPDATE bookings
			  SET status = $2,
			      decline_reason = COALESCE(NULLIF($4::text, ''), decline_reason),
			      updated_at = now()
			  WHERE id = $1 AND status = ANY($3)
			  RETURNING ` + bookingColumns

	row := r.db.Master.QueryRowContext(
		ctx, query,
		change.BookingID, change.To, pq.Array(change.From), change.Reason,
	)
	b, err := scanBooking(row)
	if err == nil {
		return b, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("update booking status: %w", err)
	}

	// Nothing matched: either the booking is gone or it already left From.
	if _, err = r.GetByID(ctx, change.BookingID); err != nil {
		return nil, err
	}
	return nil, domain.ErrInvalidTransition
}

// ApprovePending approves every pending booking of the scope in one
// conditional update and returns the bookings that actually transitioned.
func (r *BookingRepository) ApprovePending(ctx context.Context, scope domain.Scope) ([]*domain.Booking, error) {
	column, arg := scopeFilter(scope)
	query := `UPDATE bookings
			  SET status = $1, updated_at = now()
			  WHERE status = $2 AND ` + column + ` = $3
			  RETURNING ` + bookingColumns

	rows, err := r.db.Master.QueryContext(
		ctx, query,
		domain.BookingStatusApproved, domain.BookingStatusPending, arg,
	)
	if err != nil {
		return nil, fmt.Errorf("approve pending: %w", err)
	}
	defer rows.Close()

	approved := make([]*domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan approved booking: %w", err)
		}
		approved = append(approved, b)
	}

	return approved, rows.Err()
}

// AssignTable binds an unassigned pending booking to a table under the same
// guard as Create.
func (r *BookingRepository) AssignTable(ctx context.Context, bookingID string, tableID int64) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	lockQuery := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1 FOR UPDATE`
	current, err := scanBooking(tx.QueryRowContext(ctx, lockQuery, bookingID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("lock booking: %w", err)
	}
	if current.TableID != nil {
		return nil, domain.ErrAlreadyAssigned
	}
	if current.Status != domain.BookingStatusPending {
		return nil, domain.ErrInvalidTransition
	}

	if err = lockTable(ctx, tx, tableID, current.StoreID); err != nil {
		return nil, err
	}

	overlap, err := hasOverlap(ctx, tx, tableID, current.Window())
	if err != nil {
		return nil, err
	}
	if overlap {
		return nil, domain.ErrConflict
	}

	query := `UPDATE bookings SET table_id = $2, updated_at = now()
			  WHERE id = $1
			  RETURNING ` + bookingColumns
	b, err := scanBooking(tx.QueryRowContext(ctx, query, bookingID, tableID))
	if err != nil {
		if pgCode(err) == pgExclusionViolation {
			return nil, domain.ErrConflict
		}
		return nil, fmt.Errorf("assign table: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) CountPendingByTable(ctx context.Context, storeID string) (map[int64]int, error) {
	query := `SELECT table_id, COUNT(*)
              FROM bookings
              WHERE store_id = $1 AND status = $2 AND table_id IS NOT NULL
              GROUP BY table_id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, storeID, domain.BookingStatusPending)
	if err != nil {
		return nil, fmt.Errorf("count pending by table: %w", err)
	}
	defer rows.Close()

	res := make(map[int64]int)
	for rows.Next() {
		var (
			tableID int64
			count   int
		)
		if err = rows.Scan(&tableID, &count); err != nil {
			return nil, fmt.Errorf("scan pending count: %w", err)
		}
		res[tableID] = count
	}

	return res, rows.Err()
}

func (r *BookingRepository) CountPendingByStore(ctx context.Context) (map[string]int, error) {
	query := `SELECT store_id, COUNT(*)
              FROM bookings
              WHERE status = $1
              GROUP BY store_id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, domain.BookingStatusPending)
	if err != nil {
		return nil, fmt.Errorf("count pending by store: %w", err)
	}
	defer rows.Close()

	res := make(map[string]int)
	for rows.Next() {
		var (
			storeID string
			count   int
		)
		if err = rows.Scan(&storeID, &count); err != nil {
			return nil, fmt.Errorf("scan pending count: %w", err)
		}
		res[storeID] = count
	}

	return res, rows.Err()
}

func (r *BookingRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.Master.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrBookingNotFound
	}

	return nil
}

func (r *BookingRepository) DeleteByTable(ctx context.Context, tableID int64) (int64, error) {
	res, err := r.db.Master.ExecContext(ctx, `DELETE FROM bookings WHERE table_id = $1`, tableID)
	if err != nil {
		return 0, fmt.Errorf("delete bookings by table: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("booking rows affected: %w", err)
	}

	return n, nil
}

func (r *BookingRepository) list(ctx context.Context, op, query string, args ...any) ([]*domain.Booking, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

// queryRower is satisfied by *sql.DB and *sql.Tx.
type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// lockTable takes a row lock on the table, serializing concurrent bookings
// of the same table, and checks that it is active and belongs to storeID.
func lockTable(ctx context.Context, q queryRower, tableID int64, storeID string) error {
	query := `SELECT store_id, is_active FROM tables WHERE id = $1 FOR UPDATE`

	var (
		tableStore string
		active     bool
	)
	if err := q.QueryRowContext(ctx, query, tableID).Scan(&tableStore, &active); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrTableNotFound
		}
		return fmt.Errorf("lock table: %w", err)
	}
	if !active {
		return domain.ErrTableNotFound
	}
	if tableStore != storeID {
		return domain.ErrTableMismatch
	}

	return nil
}

func hasOverlap(ctx context.Context, q queryRower, tableID int64, w domain.Window) (bool, error) {
	query := `SELECT EXISTS (
                  SELECT 1 FROM bookings
                  WHERE table_id = $1
                    AND status = ANY($2)
                    AND booked_at < $4
                    AND $3 < ends_at
              )`

	var exists bool
	err := q.QueryRowContext(
		ctx, query,
		tableID, pq.Array(domain.ActiveStatuses), w.Start, w.End,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check overlap: %w", err)
	}

	return exists, nil
}

func scopeFilter(scope domain.Scope) (string, any) {
	if scope.TableID != nil {
		return "table_id", *scope.TableID
	}
	return "store_id", scope.StoreID
}

func scanBooking(row scanner) (*domain.Booking, error) {
	var b domain.Booking
	err := row.Scan(
		&b.ID, &b.TableID, &b.StoreID, &b.UserID, &b.CustomerName, &b.CustomerEmail,
		&b.CustomerPhone, &b.PartySize, &b.BookedAt, &b.DurationMinutes, &b.Status,
		&b.SpecialRequests, &b.AcceptCode, &b.DeclineReason, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
