package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/TableBooker/internal/domain"
	"github.com/stpnv0/TableBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// refreshWindow is the slice of "now" checked before a table is marked available again.
const refreshWindow = time.Minute

type BookingService struct {
	bookingRepo ports.BookingRepo
	tableRepo   ports.TableRepo
	storeRepo   ports.StoreRepo
	oracle      *AvailabilityService
	gate        *OwnershipGate
	notifier    ports.BookingNotifier
	events      ports.EventPublisher
	logger      logger.Logger
	now         func() time.Time
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	tableRepo ports.TableRepo,
	storeRepo ports.StoreRepo,
	oracle *AvailabilityService,
	gate *OwnershipGate,
	notifier ports.BookingNotifier,
	events ports.EventPublisher,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		tableRepo:   tableRepo,
		storeRepo:   storeRepo,
		oracle:      oracle,
		gate:        gate,
		notifier:    notifier,
		events:      events,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Request creates a pending booking. A draft with a table is checked for
// overlap and inserted under the table lock; a draft with only a store is
// accepted unassigned.
func (s *BookingService) Request(ctx context.Context, actor domain.Actor, draft domain.BookingDraft) (*domain.Booking, error) {
	now := s.now()

	if actor.UserID != "" {
		uid := actor.UserID
		draft.UserID = &uid
	}
	if err := draft.Validate(now); err != nil {
		return nil, err
	}
	draft.DurationMinutes = s.oracle.duration(draft.DurationMinutes)

	storeID := draft.StoreID
	if draft.TableID != nil {
		table, err := s.tableRepo.GetByID(ctx, *draft.TableID)
		if err != nil {
			return nil, fmt.Errorf("get table: %w", err)
		}
		if !table.IsActive {
			return nil, domain.ErrTableNotFound
		}
		if storeID != "" && storeID != table.StoreID {
			return nil, domain.ErrTableMismatch
		}
		storeID = table.StoreID

		free, err := s.oracle.check(ctx, table.ID, domain.NewWindow(draft.BookedAt, draft.DurationMinutes))
		if err != nil {
			return nil, err
		}
		if !free {
			return nil, domain.ErrConflict
		}
	} else {
		if _, err := s.storeRepo.GetByID(ctx, storeID); err != nil {
			return nil, fmt.Errorf("get store: %w", err)
		}
	}

	booking := &domain.Booking{
		ID:              uuid.New().String(),
		TableID:         draft.TableID,
		StoreID:         storeID,
		UserID:          draft.UserID,
		CustomerName:    draft.CustomerName,
		CustomerEmail:   draft.CustomerEmail,
		CustomerPhone:   draft.CustomerPhone,
		PartySize:       draft.PartySize,
		BookedAt:        draft.BookedAt.UTC(),
		DurationMinutes: draft.DurationMinutes,
		Status:          domain.BookingStatusPending,
		SpecialRequests: draft.SpecialRequests,
		AcceptCode:      draft.AcceptCode,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking requested",
		logger.String("booking_id", booking.ID),
		logger.String("store_id", booking.StoreID),
		logger.Int("party_size", booking.PartySize),
	)

	if booking.TableID != nil {
		s.markTable(ctx, *booking.TableID, domain.TableStatusReserved)
	}

	s.events.Publish(ctx, domain.NewBookingEvent(domain.EventBookingCreated, booking))
	go s.notifyOwner(context.WithoutCancel(ctx), booking, s.notifier.NotifyBookingRequested)

	return booking, nil
}

func (s *BookingService) Approve(ctx context.Context, actor domain.Actor, id string) (*domain.Booking, error) {
	booking, err := s.getManaged(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	updated, err := s.transition(ctx, booking, domain.ApprovableStatuses, domain.BookingStatusApproved, "")
	if err != nil {
		return nil, err
	}

	if updated.TableID != nil {
		s.markTable(ctx, *updated.TableID, domain.TableStatusReserved)
	}
	s.events.Publish(ctx, domain.NewBookingEvent(domain.EventBookingApproved, updated))

	return updated, nil
}

func (s *BookingService) Decline(ctx context.Context, actor domain.Actor, id, reason string) (*domain.Booking, error) {
	booking, err := s.getManaged(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	updated, err := s.transition(ctx, booking, domain.DeclinableStatuses, domain.BookingStatusDeclined, reason)
	if err != nil {
		return nil, err
	}

	s.refreshTable(ctx, updated)
	s.events.Publish(ctx, domain.NewBookingEvent(domain.EventBookingDeclined, updated))

	return updated, nil
}

// Cancel is allowed to the requester and to anyone who manages the store.
func (s *BookingService) Cancel(ctx context.Context, actor domain.Actor, id string) (*domain.Booking, error) {
	booking, err := s.getVisible(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	updated, err := s.transition(ctx, booking, domain.CancellableStatuses, domain.BookingStatusCancelled, "")
	if err != nil {
		return nil, err
	}

	s.refreshTable(ctx, updated)
	s.events.Publish(ctx, domain.NewBookingEvent(domain.EventBookingCancelled, updated))
	go s.notifyOwner(context.WithoutCancel(ctx), updated, s.notifier.NotifyBookingCancelled)

	return updated, nil
}

// BulkApprove approves every pending booking of the scope and returns the
// ids that actually transitioned.
func (s *BookingService) BulkApprove(ctx context.Context, actor domain.Actor, scope domain.Scope) ([]string, error) {
	storeID, err := s.gate.authorizeScope(ctx, actor, scope)
	if err != nil {
		return nil, err
	}

	approved, err := s.bookingRepo.ApprovePending(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("approve pending: %w", err)
	}

	s.logger.Info("bookings bulk approved",
		logger.String("store_id", storeID),
		logger.Int("count", len(approved)),
	)

	ids := make([]string, 0, len(approved))
	reserved := make(map[int64]struct{})
	for _, b := range approved {
		ids = append(ids, b.ID)
		if b.TableID != nil {
			if _, done := reserved[*b.TableID]; !done {
				reserved[*b.TableID] = struct{}{}
				s.markTable(ctx, *b.TableID, domain.TableStatusReserved)
			}
		}
		s.events.Publish(ctx, domain.NewBookingEvent(domain.EventBookingApproved, b))
	}

	return ids, nil
}

// AssignTable binds an unassigned pending booking to a table of its store.
func (s *BookingService) AssignTable(ctx context.Context, actor domain.Actor, bookingID string, tableID int64) (*domain.Booking, error) {
	booking, err := s.getManaged(ctx, actor, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.TableID != nil {
		return nil, domain.ErrAlreadyAssigned
	}
	if booking.Status != domain.BookingStatusPending {
		return nil, domain.ErrInvalidTransition
	}

	table, err := s.tableRepo.GetByID(ctx, tableID)
	if err != nil {
		return nil, fmt.Errorf("get table: %w", err)
	}
	if !table.IsActive {
		return nil, domain.ErrTableNotFound
	}
	if table.StoreID != booking.StoreID {
		return nil, domain.ErrTableMismatch
	}

	free, err := s.oracle.check(ctx, tableID, booking.Window())
	if err != nil {
		return nil, err
	}
	if !free {
		return nil, domain.ErrConflict
	}

	updated, err := s.bookingRepo.AssignTable(ctx, bookingID, tableID)
	if err != nil {
		return nil, fmt.Errorf("assign table: %w", err)
	}

	s.logger.Info("table assigned",
		logger.String("booking_id", bookingID),
		logger.Int64("table_id", tableID),
	)

	s.markTable(ctx, tableID, domain.TableStatusReserved)
	s.events.Publish(ctx, domain.NewBookingEvent(domain.EventBookingAssigned, updated))

	return updated, nil
}

func (s *BookingService) Get(ctx context.Context, actor domain.Actor, id string) (*domain.Booking, error) {
	return s.getVisible(ctx, actor, id)
}

func (s *BookingService) ListMine(ctx context.Context, actor domain.Actor) ([]*domain.Booking, error) {
	if actor.UserID == "" {
		return nil, domain.ErrForbidden
	}
	return s.bookingRepo.ListByUser(ctx, actor.UserID)
}

func (s *BookingService) ListByStore(ctx context.Context, actor domain.Actor, storeID string) ([]*domain.Booking, error) {
	if err := s.gate.authorize(ctx, actor, storeID); err != nil {
		return nil, err
	}
	return s.bookingRepo.ListByStore(ctx, storeID)
}

func (s *BookingService) ListByTable(ctx context.Context, actor domain.Actor, tableID int64) ([]*domain.Booking, error) {
	if _, err := s.gate.authorizeScope(ctx, actor, domain.TableScope(tableID)); err != nil {
		return nil, err
	}
	return s.bookingRepo.ListByTable(ctx, tableID)
}

// Purge hard-deletes a declined or cancelled booking. Admin only.
func (s *BookingService) Purge(ctx context.Context, actor domain.Actor, id string) error {
	if !actor.Admin {
		return domain.ErrForbidden
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get booking: %w", err)
	}
	if !booking.Status.Terminal() {
		return domain.ErrInvalidTransition
	}

	if err = s.bookingRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}

	s.logger.Info("booking purged", logger.String("booking_id", id))
	return nil
}

// RemindPending sends every store owner with pending bookings a reminder
// and returns how many stores were reminded.
func (s *BookingService) RemindPending(ctx context.Context) (int, error) {
	counts, err := s.bookingRepo.CountPendingByStore(ctx)
	if err != nil {
		return 0, fmt.Errorf("count pending: %w", err)
	}

	reminded := 0
	for storeID, pending := range counts {
		if pending == 0 {
			continue
		}

		store, err := s.storeRepo.GetByID(ctx, storeID)
		if err != nil {
			s.logger.Error("failed to get store for reminder",
				logger.String("store_id", storeID),
				logger.String("error", err.Error()),
			)
			continue
		}

		s.notifier.NotifyPendingReminder(ctx, store, pending)
		reminded++
	}

	return reminded, nil
}

func (s *BookingService) transition(
	ctx context.Context,
	booking *domain.Booking,
	from []domain.BookingStatus,
	to domain.BookingStatus,
	reason string,
) (*domain.Booking, error) {
	if !booking.Status.CanTransition(to) {
		return nil, domain.ErrInvalidTransition
	}

	updated, err := s.bookingRepo.UpdateStatus(ctx, domain.StatusChange{
		BookingID: booking.ID,
		From:      from,
		To:        to,
		Reason:    reason,
	})
	if err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}

	s.logger.Info("booking status changed",
		logger.String("booking_id", booking.ID),
		logger.String("from", string(booking.Status)),
		logger.String("to", string(to)),
	)

	return updated, nil
}

func (s *BookingService) getManaged(ctx context.Context, actor domain.Actor, id string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if err = s.gate.authorize(ctx, actor, booking.StoreID); err != nil {
		return nil, err
	}

	return booking, nil
}

// getVisible loads a booking the actor either requested or manages.
func (s *BookingService) getVisible(ctx context.Context, actor domain.Actor, id string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking.RequestedBy(actor) {
		return booking, nil
	}

	if err = s.gate.authorize(ctx, actor, booking.StoreID); err != nil {
		return nil, err
	}

	return booking, nil
}

// refreshTable marks the booking's table available again when nothing
// active covers the current moment. Failures are logged only.
func (s *BookingService) refreshTable(ctx context.Context, booking *domain.Booking) {
	if booking.TableID == nil {
		return
	}

	now := s.now()
	free, err := s.oracle.check(ctx, *booking.TableID, domain.Window{Start: now, End: now.Add(refreshWindow)})
	if err != nil {
		s.logger.Warn("table status refresh skipped",
			logger.Int64("table_id", *booking.TableID),
			logger.String("error", err.Error()),
		)
		return
	}
	if free {
		s.markTable(ctx, *booking.TableID, domain.TableStatusAvailable)
	}
}

func (s *BookingService) markTable(ctx context.Context, tableID int64, status domain.TableStatus) {
	if err := s.tableRepo.SetStatus(ctx, tableID, status); err != nil {
		s.logger.Warn("failed to update table status",
			logger.Int64("table_id", tableID),
			logger.String("status", string(status)),
			logger.String("error", err.Error()),
		)
	}
}

func (s *BookingService) notifyOwner(
	ctx context.Context,
	booking *domain.Booking,
	notify func(context.Context, *domain.Store, *domain.Booking),
) {
	store, err := s.storeRepo.GetByID(ctx, booking.StoreID)
	if err != nil {
		s.logger.Error("failed to get store for notification",
			logger.String("store_id", booking.StoreID),
			logger.String("error", err.Error()),
		)
		return
	}

	notify(ctx, store, booking)
}
