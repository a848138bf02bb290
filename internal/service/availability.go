package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/stpnv0/TableBooker/internal/domain"
	"github.com/stpnv0/TableBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// AvailabilityService answers whether a table is free for a time window.
// It fails closed: any lookup error or timeout is reported as "not available".
type AvailabilityService struct {
	bookings        ports.BookingRepo
	tables          ports.TableRepo
	timeout         time.Duration
	defaultDuration int
	logger          logger.Logger
}

func NewAvailabilityService(
	bookings ports.BookingRepo,
	tables ports.TableRepo,
	timeout time.Duration,
	defaultDuration int,
	logger logger.Logger,
) *AvailabilityService {
	if defaultDuration <= 0 {
		defaultDuration = domain.DefaultDurationMinutes
	}
	return &AvailabilityService{
		bookings:        bookings,
		tables:          tables,
		timeout:         timeout,
		defaultDuration: defaultDuration,
		logger:          logger,
	}
}

func (s *AvailabilityService) IsAvailable(ctx context.Context, tableID int64, bookedAt time.Time, durationMinutes int) bool {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	table, err := s.tables.GetByID(ctx, tableID)
	if err != nil {
		if !errors.Is(err, domain.ErrTableNotFound) {
			s.logger.Warn("availability lookup failed",
				logger.Int64("table_id", tableID),
				logger.String("error", err.Error()),
			)
		}
		return false
	}
	if !table.IsActive {
		return false
	}

	free, err := s.check(ctx, tableID, s.window(bookedAt, durationMinutes))
	if err != nil {
		s.logger.Warn("availability check failed, treating table as taken",
			logger.Int64("table_id", tableID),
			logger.String("error", err.Error()),
		)
		return false
	}

	return free
}

// ListAvailable returns active tables of the store with no conflicting
// booking for the window. Errors are returned, never a partial list.
func (s *AvailabilityService) ListAvailable(ctx context.Context, storeID string, at time.Time, durationMinutes int) ([]*domain.Table, error) {
	if at.IsZero() {
		var v domain.ValidationError
		v.Add("at", "at is required")
		return nil, v.OrNil()
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	tables, err := s.tables.ListAvailable(ctx, storeID, s.window(at, durationMinutes))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrAvailabilityUnknown, err)
	}

	return tables, nil
}

// check distinguishes "taken" (false, nil) from "could not tell" (false, err).
func (s *AvailabilityService) check(ctx context.Context, tableID int64, w domain.Window) (bool, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	overlap, err := s.bookings.HasOverlap(ctx, tableID, w)
	if err != nil {
		return false, fmt.Errorf("%w: %v", domain.ErrAvailabilityUnknown, err)
	}

	return !overlap, nil
}

func (s *AvailabilityService) window(start time.Time, durationMinutes int) domain.Window {
	return domain.NewWindow(start, s.duration(durationMinutes))
}

func (s *AvailabilityService) duration(minutes int) int {
	if minutes <= 0 {
		return s.defaultDuration
	}
	return minutes
}

func (s *AvailabilityService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}
