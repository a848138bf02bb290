package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/TableBooker/internal/domain"
	"github.com/stpnv0/TableBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

var (
	testNow = time.Date(2023, 12, 31, 12, 0, 0, 0, time.UTC)

	// trustedTestPrincipal stands in for an authenticated admin in tests.
	trustedTestPrincipal = domain.Actor{UserID: "test-admin", Admin: true}

	ownerActor    = domain.Actor{UserID: "owner-1"}
	customerActor = domain.Actor{UserID: "customer-1"}
	strangerActor = domain.Actor{UserID: "stranger"}
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type bookingFixture struct {
	bookingRepo *mocks.MockBookingRepo
	tableRepo   *mocks.MockTableRepo
	storeRepo   *mocks.MockStoreRepo
	notifier    *mocks.MockBookingNotifier
	events      *mocks.MockEventPublisher
	svc         *BookingService
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()
	f := &bookingFixture{
		bookingRepo: mocks.NewMockBookingRepo(t),
		tableRepo:   mocks.NewMockTableRepo(t),
		storeRepo:   mocks.NewMockStoreRepo(t),
		notifier:    mocks.NewMockBookingNotifier(t),
		events:      mocks.NewMockEventPublisher(t),
	}
	log := newTestLogger(t)

	oracle := NewAvailabilityService(f.bookingRepo, f.tableRepo, time.Second, 120, log)
	gate := NewOwnershipGate(f.storeRepo, f.tableRepo, f.bookingRepo)
	f.svc = NewBookingService(f.bookingRepo, f.tableRepo, f.storeRepo, oracle, gate, f.notifier, f.events, log)
	f.svc.now = func() time.Time { return testNow }

	return f
}

func testStore() *domain.Store {
	return &domain.Store{ID: "store-1", OwnerID: "owner-1", Name: "Bistro", IsActive: true}
}

func testTable() *domain.Table {
	return &domain.Table{ID: 7, StoreID: "store-1", Name: "T1", Capacity: 4, IsActive: true, Status: domain.TableStatusAvailable}
}

func pendingBooking() *domain.Booking {
	tableID := int64(7)
	uid := "customer-1"
	return &domain.Booking{
		ID:              "b1",
		TableID:         &tableID,
		StoreID:         "store-1",
		UserID:          &uid,
		CustomerName:    "Alice",
		PartySize:       2,
		BookedAt:        time.Date(2024, 1, 1, 19, 0, 0, 0, time.UTC),
		DurationMinutes: 120,
		Status:          domain.BookingStatusPending,
	}
}

func eventOfType(t domain.BookingEventType) interface{} {
	return mock.MatchedBy(func(e domain.BookingEvent) bool { return e.Type == t })
}

func validDraft() domain.BookingDraft {
	tableID := int64(7)
	return domain.BookingDraft{
		TableID:         &tableID,
		CustomerName:    "Alice",
		CustomerEmail:   "alice@example.com",
		PartySize:       2,
		BookedAt:        time.Date(2024, 1, 1, 19, 0, 0, 0, time.UTC),
		DurationMinutes: 120,
	}
}

func TestBookingService_Request_Success(t *testing.T) {
	f := newBookingFixture(t)
	store := testStore()
	draft := validDraft()

	f.tableRepo.EXPECT().GetByID(mock.Anything, int64(7)).Return(testTable(), nil)
	f.bookingRepo.EXPECT().HasOverlap(mock.Anything, int64(7), domain.NewWindow(draft.BookedAt, 120)).Return(false, nil)
	f.bookingRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Booking")).Return(nil)
	f.tableRepo.EXPECT().SetStatus(mock.Anything, int64(7), domain.TableStatusReserved).Return(nil)
	f.events.EXPECT().Publish(mock.Anything, eventOfType(domain.EventBookingCreated)).Return()
	f.storeRepo.EXPECT().GetByID(mock.Anything, "store-1").Return(store, nil)
	f.notifier.EXPECT().NotifyBookingRequested(mock.Anything, store, mock.Anything).Return()

	booking, err := f.svc.Request(context.Background(), customerActor, draft)

	require.NoError(t, err)
	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, domain.BookingStatusPending, booking.Status)
	assert.Equal(t, "store-1", booking.StoreID)
	require.NotNil(t, booking.UserID)
	assert.Equal(t, "customer-1", *booking.UserID)
	assert.Equal(t, testNow, booking.CreatedAt)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Request_DefaultDuration(t *testing.T) {
	f := newBookingFixture(t)
	draft := validDraft()
	draft.DurationMinutes = 0

	f.tableRepo.EXPECT().GetByID(mock.Anything, int64(7)).Return(testTable(), nil)
	f.bookingRepo.EXPECT().HasOverlap(mock.Anything, int64(7), domain.NewWindow(draft.BookedAt, 120)).Return(false, nil)
	f.bookingRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.DurationMinutes == 120
	})).Return(nil)
	f.tableRepo.EXPECT().SetStatus(mock.Anything, int64(7), domain.TableStatusReserved).Return(nil)
	f.events.EXPECT().Publish(mock.Anything, mock.Anything).Return()
	f.storeRepo.EXPECT().GetByID(mock.Anything, "store-1").Return(testStore(), nil)
	f.notifier.EXPECT().NotifyBookingRequested(mock.Anything, mock.Anything, mock.Anything).Return()

	booking, err := f.svc.Request(context.Background(), domain.Actor{}, draft)

	require.NoError(t, err)
	assert.Equal(t, 120, booking.DurationMinutes)
	assert.Nil(t, booking.UserID)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Request_Conflict(t *testing.T) {
	f := newBookingFixture(t)

	f.tableRepo.EXPECT().GetByID(mock.Anything, int64(7)).Return(testTable(), nil)
	f.bookingRepo.EXPECT().HasOverlap(mock.Anything, int64(7), mock.Anything).Return(true, nil)

	_, err := f.svc.Request(context.Background(), customerActor, validDraft())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestBookingService_Request_ConflictAtInsert(t *testing.T) {
	f := newBookingFixture(t)

	f.tableRepo.EXPECT().GetByID(mock.Anything, int64(7)).Return(testTable(), nil)
	f.bookingRepo.EXPECT().HasOverlap(mock.Anything, int64(7), mock.Anything).Return(false, nil)
	f.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrConflict)

	_, err := f.svc.Request(context.Background(), customerActor, validDraft())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestBookingService_Request_AvailabilityUnknown(t *testing.T) {
	f := newBookingFixture(t)

	f.tableRepo.EXPECT().GetByID(mock.Anything, int64(7)).Return(testTable(), nil)
	f.bookingRepo.EXPECT().HasOverlap(mock.Anything, int64(7), mock.Anything).Return(false, errors.New("db down"))

	_, err := f.svc.Request(context.Background(), customerActor, validDraft())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAvailabilityUnknown)
	assert.NotErrorIs(t, err, domain.ErrConflict)
}

func TestBookingService_Request_ValidationReportsAll(t *testing.T) {
	f := newBookingFixture(t)
	draft := validDraft()
	draft.PartySize = 25
	draft.CustomerName = ""

	_, err := f.svc.Request(context.Background(), customerActor, draft)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)

	fields := make([]string, 0)
	for _, v := range domain.Violations(err) {
		fields = append(fields, v.Field)
	}
	assert.ElementsMatch(t, []string{"party_size", "customer_name"}, fields)
}

func TestBookingService_Request_OverlongDurationRejectedBeforeWrite(t *testing.T) {
	f := newBookingFixture(t)
	draft := validDraft()
	draft.DurationMinutes = 200_000_000

	_, err := f.svc.Request(context.Background(), customerActor, draft)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	require.Len(t, domain.Violations(err), 1)
	assert.Equal(t, "duration_minutes", domain.Violations(err)[0].Field)
}

func TestBookingService_Request_PastTime(t *testing.T) {
	f := newBookingFixture(t)
	draft := validDraft()
	draft.BookedAt = testNow.Add(-time.Hour)

	_, err := f.svc.Request(context.Background(), customerActor, draft)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Request_InactiveTable(t *testing.T) {
	f := newBookingFixture(t)
	table := testTable()
	table.IsActive = false

	f.tableRepo.EXPECT().GetByID(mock.Anything, int64(7)).Return(table, nil)

	_, err := f.svc.Request(context.Background(), customerActor, validDraft())

	assert.ErrorIs(t, err, domain.ErrTableNotFound)
}

func TestBookingService_Request_TableOfOtherStore(t *testing.T) {
	f := newBookingFixture(t)
	draft := validDraft()
	draft.StoreID = "store-2"

	f.tableRepo.EXPECT().GetByID(mock.Anything, int64(7)).Return(testTable(), nil)

	_, err := f.svc.Request(context.Background(), customerActor, draft)

	assert.ErrorIs(t, err, domain.ErrTableMismatch)
}

func TestBookingService_Request_Unassigned(t *testing.T) {
	f := newBookingFixture(t)
	store := testStore()
	draft := validDraft()
	draft.TableID = nil
	draft.StoreID = "store-1"

	f.storeRepo.EXPECT().GetByID(mock.Anything, "store-1").Return(store, nil)
	f.bookingRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.TableID == nil && b.StoreID == "store-1"
	})).Return(nil)
	f.events.EXPECT().Publish(mock.Anything, eventOfType(domain.EventBookingCreated)).Return()
	f.notifier.EXPECT().NotifyBookingRequested(mock.Anything, store, mock.Anything).Return()

	booking, err := f.svc.Request(context.Background(), customerActor, draft)

	require.NoError(t, err)
	assert.Nil(t, booking.TableID)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Approve_Success(t *testing.T) {
	f := newBookingFixture(t)
	booking := pendingBooking()
	approved := pendingBooking()
	approved.Status = domain.BookingStatusApproved

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	f.storeRepo.EXPECT().GetByID(mock.Anything, "store-1").Return(testStore(), nil)
	f.bookingRepo.EXPECT().UpdateStatus(mock.Anything, domain.StatusChange{
		BookingID: "b1",
		From:      domain.ApprovableStatuses,
		To:        domain.BookingStatusApproved,
	}).Return(approved, nil)
	f.tableRepo.EXPECT().SetStatus(mock.Anything, int64(7), domain.TableStatusReserved).Return(nil)
	f.events.EXPECT().Publish(mock.Anything, eventOfType(domain.EventBookingApproved)).Return()

	res, err := f.svc.Approve(context.Background(), ownerActor, "b1")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusApproved, res.Status)
}

func TestBookingService_Approve_MarkFailureIsNotFatal(t *testing.T) {
	f := newBookingFixture(t)
	approved := pendingBooking()
	approved.Status = domain.BookingStatusApproved

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(pendingBooking(), nil)
	f.bookingRepo.EXPECT().UpdateStatus(mock.Anything, mock.Anything).Return(approved, nil)
	f.tableRepo.EXPECT().SetStatus(mock.Anything, int64(7), domain.TableStatusReserved).Return(errors.New("db down"))
	f.events.EXPECT().Publish(mock.Anything, eventOfType(domain.EventBookingApproved)).Return()

	res, err := f.svc.Approve(context.Background(), trustedTestPrincipal, "b1")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusApproved, res.Status)
}

func TestBookingService_Approve_UnassignedLeavesTables(t *testing.T) {
	f := newBookingFixture(t)
	booking := pendingBooking()
	booking.TableID = nil
	approved := pendingBooking()
	approved.TableID = nil
	approved.Status = domain.BookingStatusApproved

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	f.bookingRepo.EXPECT().UpdateStatus(mock.Anything, mock.Anything).Return(approved, nil)
	f.events.EXPECT().Publish(mock.Anything, eventOfType(domain.EventBookingApproved)).Return()

	_, err := f.svc.Approve(context.Background(), trustedTestPrincipal, "b1")

	require.NoError(t, err)
}

func TestBookingService_Approve_Forbidden(t *testing.T) {
	f := newBookingFixture(t)

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(pendingBooking(), nil)
	f.storeRepo.EXPECT().GetByID(mock.Anything, "store-1").Return(testStore(), nil)

	_, err := f.svc.Approve(context.Background(), strangerActor, "b1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestBookingService_Approve_AnonymousForbidden(t *testing.T) {
	f := newBookingFixture(t)

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(pendingBooking(), nil)

	_, err := f.svc.Approve(context.Background(), domain.Actor{}, "b1")

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestBookingService_Approve_DoesNotResurrect(t *testing.T) {
	for _, status := range []domain.BookingStatus{domain.BookingStatusDeclined, domain.BookingStatusCancelled, domain.BookingStatusApproved} {
		t.Run(string(status), func(t *testing.T) {
			f := newBookingFixture(t)
			booking := pendingBooking()
			booking.Status = status

			f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)

			_, err := f.svc.Approve(context.Background(), trustedTestPrincipal, "b1")

			assert.ErrorIs(t, err, domain.ErrInvalidTransition)
		})
	}
}

func TestBookingService_Approve_LostRace(t *testing.T) {
	f := newBookingFixture(t)

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(pendingBooking(), nil)
	f.bookingRepo.EXPECT().UpdateStatus(mock.Anything, mock.Anything).Return(nil, domain.ErrInvalidTransition)

	_, err := f.svc.Approve(context.Background(), trustedTestPrincipal, "b1")

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestBookingService_Decline_RefreshesTable(t *testing.T) {
	f := newBookingFixture(t)
	declined := pendingBooking()
	declined.Status = domain.BookingStatusDeclined
	declined.DeclineReason = "kitchen closed"

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(pendingBooking(), nil)
	f.storeRepo.EXPECT().GetByID(mock.Anything, "store-1").Return(testStore(), nil)
	f.bookingRepo.EXPECT().UpdateStatus(mock.Anything, domain.StatusChange{
		BookingID: "b1",
		From:      domain.DeclinableStatuses,
		To:        domain.BookingStatusDeclined,
		Reason:    "kitchen closed",
	}).Return(declined, nil)
	f.bookingRepo.EXPECT().HasOverlap(mock.Anything, int64(7), domain.Window{Start: testNow, End: testNow.Add(time.Minute)}).Return(false, nil)
	f.tableRepo.EXPECT().SetStatus(mock.Anything, int64(7), domain.TableStatusAvailable).Return(nil)
	f.events.EXPECT().Publish(mock.Anything, eventOfType(domain.EventBookingDeclined)).Return()

	res, err := f.svc.Decline(context.Background(), ownerActor, "b1", "kitchen closed")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusDeclined, res.Status)
	assert.Equal(t, "kitchen closed", res.DeclineReason)
}

func TestBookingService_Decline_KeepsTableWhenOccupiedNow(t *testing.T) {
	f := newBookingFixture(t)
	declined := pendingBooking()
	declined.Status = domain.BookingStatusDeclined

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(pendingBooking(), nil)
	f.bookingRepo.EXPECT().UpdateStatus(mock.Anything, mock.Anything).Return(declined, nil)
	f.bookingRepo.EXPECT().HasOverlap(mock.Anything, int64(7), mock.Anything).Return(true, nil)
	f.events.EXPECT().Publish(mock.Anything, mock.Anything).Return()

	_, err := f.svc.Decline(context.Background(), trustedTestPrincipal, "b1", "")

	require.NoError(t, err)
}

func TestBookingService_Decline_RefreshFailureIsNotFatal(t *testing.T) {
	f := newBookingFixture(t)
	declined := pendingBooking()
	declined.Status = domain.BookingStatusDeclined

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(pendingBooking(), nil)
	f.bookingRepo.EXPECT().UpdateStatus(mock.Anything, mock.Anything).Return(declined, nil)
	f.bookingRepo.EXPECT().HasOverlap(mock.Anything, int64(7), mock.Anything).Return(false, nil)
	f.tableRepo.EXPECT().SetStatus(mock.Anything, int64(7), domain.TableStatusAvailable).Return(errors.New("db down"))
	f.events.EXPECT().Publish(mock.Anything, mock.Anything).Return()

	res, err := f.svc.Decline(context.Background(), trustedTestPrincipal, "b1", "")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusDeclined, res.Status)
}

func TestBookingService_Decline_Repeated(t *testing.T) {
	f := newBookingFixture(t)
	booking := pendingBooking()
	booking.Status = domain.BookingStatusDeclined

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)

	_, err := f.svc.Decline(context.Background(), trustedTestPrincipal, "b1", "")

	// no UpdateStatus, SetStatus or Publish expected
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestBookingService_Cancel_ByRequester(t *testing.T) {
	f := newBookingFixture(t)
	store := testStore()
	cancelled := pendingBooking()
	cancelled.Status = domain.BookingStatusCancelled

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(pendingBooking(), nil)
	f.bookingRepo.EXPECT().UpdateStatus(mock.Anything, domain.StatusChange{
		BookingID: "b1",
		From:      domain.CancellableStatuses,
		To:        domain.BookingStatusCancelled,
	}).Return(cancelled, nil)
	f.bookingRepo.EXPECT().HasOverlap(mock.Anything, int64(7), mock.Anything).Return(false, nil)
	f.tableRepo.EXPECT().SetStatus(mock.Anything, int64(7), domain.TableStatusAvailable).Return(nil)
	f.events.EXPECT().Publish(mock.Anything, eventOfType(domain.EventBookingCancelled)).Return()
	f.storeRepo.EXPECT().GetByID(mock.Anything, "store-1").Return(store, nil)
	f.notifier.EXPECT().NotifyBookingCancelled(mock.Anything, store, cancelled).Return()

	res, err := f.svc.Cancel(context.Background(), customerActor, "b1")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, res.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Cancel_Stranger(t *testing.T) {
	f := newBookingFixture(t)

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(pendingBooking(), nil)
	f.storeRepo.EXPECT().GetByID(mock.Anything, "store-1").Return(testStore(), nil)

	_, err := f.svc.Cancel(context.Background(), strangerActor, "b1")

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestBookingService_Cancel_AlreadyCancelled(t *testing.T) {
	f := newBookingFixture(t)
	booking := pendingBooking()
	booking.Status = domain.BookingStatusCancelled

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)

	_, err := f.svc.Cancel(context.Background(), customerActor, "b1")

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestBookingService_Cancel_NotFound(t *testing.T) {
	f := newBookingFixture(t)

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrBookingNotFound)

	_, err := f.svc.Cancel(context.Background(), customerActor, "missing")

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_BulkApprove_Store(t *testing.T) {
	f := newBookingFixture(t)
	scope := domain.StoreScope("store-1")

	approvedBooking := func(id string, tableID *int64) *domain.Booking {
		b := pendingBooking()
		b.ID = id
		b.TableID = tableID
		b.Status = domain.BookingStatusApproved
		return b
	}
	seven, nine := int64(7), int64(9)

	f.storeRepo.EXPECT().GetByID(mock.Anything, "store-1").Return(testStore(), nil)
	f.bookingRepo.EXPECT().ApprovePending(mock.Anything, scope).Return([]*domain.Booking{
		approvedBooking("b1", &seven),
		approvedBooking("b2", &seven),
		approvedBooking("b3", &nine),
		approvedBooking("b4", nil),
	}, nil)
	f.tableRepo.EXPECT().SetStatus(mock.Anything, int64(7), domain.TableStatusReserved).Return(nil).Once()
	f.tableRepo.EXPECT().SetStatus(mock.Anything, int64(9), domain.TableStatusReserved).Return(nil).Once()
	f.events.EXPECT().Publish(mock.Anything, eventOfType(domain.EventBookingApproved)).Return().Times(4)

	ids, err := f.svc.BulkApprove(context.Background(), ownerActor, scope)

	require.NoError(t, err)
	assert.Equal(t, []string{"b1", "b2", "b3", "b4"}, ids)
}

func TestBookingService_BulkApprove_TableScopeResolvesStore(t *testing.T) {
	f := newBookingFixture(t)
	scope := domain.TableScope(7)

	f.tableRepo.EXPECT().GetByID(mock.Anything, int64(7)).Return(testTable(), nil)
	f.storeRepo.EXPECT().GetByID(mock.Anything, "store-1").Return(testStore(), nil)

	_, err := f.svc.BulkApprove(context.Background(), strangerActor, scope)

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestBookingService_AssignTable_Success(t *testing.T) {
	f := newBookingFixture(t)
	booking := pendingBooking()
	booking.TableID = nil
	assigned := pendingBooking()

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	f.tableRepo.EXPECT().GetByID(mock.Anything, int64(7)).Return(testTable(), nil)
	f.bookingRepo.EXPECT().HasOverlap(mock.Anything, int64(7), booking.Window()).Return(false, nil)
	f.bookingRepo.EXPECT().AssignTable(mock.Anything, "b1", int64(7)).Return(assigned, nil)
	f.tableRepo.EXPECT().SetStatus(mock.Anything, int64(7), domain.TableStatusReserved).Return(nil)
	f.events.EXPECT().Publish(mock.Anything, eventOfType(domain.EventBookingAssigned)).Return()

	res, err := f.svc.AssignTable(context.Background(), trustedTestPrincipal, "b1", 7)

	require.NoError(t, err)
	require.NotNil(t, res.TableID)
	assert.Equal(t, int64(7), *res.TableID)
}

func TestBookingService_AssignTable_AlreadyAssigned(t *testing.T) {
	f := newBookingFixture(t)

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(pendingBooking(), nil)

	_, err := f.svc.AssignTable(context.Background(), trustedTestPrincipal, "b1", 9)

	assert.ErrorIs(t, err, domain.ErrAlreadyAssigned)
}

func TestBookingService_AssignTable_OtherStore(t *testing.T) {
	f := newBookingFixture(t)
	booking := pendingBooking()
	booking.TableID = nil
	table := testTable()
	table.StoreID = "store-2"

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	f.tableRepo.EXPECT().GetByID(mock.Anything, int64(7)).Return(table, nil)

	_, err := f.svc.AssignTable(context.Background(), trustedTestPrincipal, "b1", 7)

	assert.ErrorIs(t, err, domain.ErrTableMismatch)
}

func TestBookingService_AssignTable_Conflict(t *testing.T) {
	f := newBookingFixture(t)
	booking := pendingBooking()
	booking.TableID = nil

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	f.tableRepo.EXPECT().GetByID(mock.Anything, int64(7)).Return(testTable(), nil)
	f.bookingRepo.EXPECT().HasOverlap(mock.Anything, int64(7), mock.Anything).Return(true, nil)

	_, err := f.svc.AssignTable(context.Background(), trustedTestPrincipal, "b1", 7)

	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestBookingService_Get_Visibility(t *testing.T) {
	f := newBookingFixture(t)

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(pendingBooking(), nil)

	res, err := f.svc.Get(context.Background(), customerActor, "b1")

	require.NoError(t, err)
	assert.Equal(t, "b1", res.ID)
}

func TestBookingService_ListMine_RequiresUser(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.svc.ListMine(context.Background(), domain.Actor{})

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestBookingService_Purge(t *testing.T) {
	t.Run("non admin", func(t *testing.T) {
		f := newBookingFixture(t)

		err := f.svc.Purge(context.Background(), ownerActor, "b1")

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("active booking", func(t *testing.T) {
		f := newBookingFixture(t)
		f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(pendingBooking(), nil)

		err := f.svc.Purge(context.Background(), trustedTestPrincipal, "b1")

		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})

	t.Run("declined booking", func(t *testing.T) {
		f := newBookingFixture(t)
		booking := pendingBooking()
		booking.Status = domain.BookingStatusDeclined
		f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
		f.bookingRepo.EXPECT().Delete(mock.Anything, "b1").Return(nil)

		err := f.svc.Purge(context.Background(), trustedTestPrincipal, "b1")

		assert.NoError(t, err)
	})
}

func TestBookingService_RemindPending(t *testing.T) {
	f := newBookingFixture(t)
	store := testStore()

	f.bookingRepo.EXPECT().CountPendingByStore(mock.Anything).Return(map[string]int{"store-1": 2, "gone": 1}, nil)
	f.storeRepo.EXPECT().GetByID(mock.Anything, "store-1").Return(store, nil)
	f.storeRepo.EXPECT().GetByID(mock.Anything, "gone").Return(nil, domain.ErrStoreNotFound)
	f.notifier.EXPECT().NotifyPendingReminder(mock.Anything, store, 2).Return()

	n, err := f.svc.RemindPending(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestBookingService_RemindPending_Error(t *testing.T) {
	f := newBookingFixture(t)

	f.bookingRepo.EXPECT().CountPendingByStore(mock.Anything).Return(nil, errors.New("db down"))

	_, err := f.svc.RemindPending(context.Background())

	assert.Error(t, err)
}
