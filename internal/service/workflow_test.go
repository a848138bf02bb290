package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stpnv0/TableBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type workflow struct {
	db      *memoryDB
	events  *recordingPublisher
	booking *BookingService
	tables  *TableService
	gate    *OwnershipGate
	tableID int64
}

// newWorkflow wires real services over the in-memory store with one store
// owned by ownerActor and one free table "T1".
func newWorkflow(t *testing.T) *workflow {
	t.Helper()
	log := newTestLogger(t)

	db := newMemoryDB()
	bookings, tables, stores := memBookings{db}, memTables{db}, memStores{db}

	require.NoError(t, stores.Create(context.Background(), testStore()))
	table := &domain.Table{StoreID: "store-1", Name: "T1", Capacity: 4, IsActive: true, Status: domain.TableStatusAvailable}
	require.NoError(t, tables.Create(context.Background(), table))

	events := &recordingPublisher{}
	oracle := NewAvailabilityService(bookings, tables, time.Second, 120, log)
	gate := NewOwnershipGate(stores, tables, bookings)

	w := &workflow{
		db:      db,
		events:  events,
		booking: NewBookingService(bookings, tables, stores, oracle, gate, nopNotifier{}, events, log),
		tables:  NewTableService(tables, bookings, gate, log),
		gate:    gate,
		tableID: table.ID,
	}
	w.booking.now = func() time.Time { return testNow }

	return w
}

func (w *workflow) request(actor domain.Actor, at time.Time, minutes int) (*domain.Booking, error) {
	tableID := w.tableID
	return w.booking.Request(context.Background(), actor, domain.BookingDraft{
		TableID:         &tableID,
		CustomerName:    "Guest",
		PartySize:       2,
		BookedAt:        at,
		DurationMinutes: minutes,
	})
}

func (w *workflow) tableStatus(t *testing.T) domain.TableStatus {
	t.Helper()
	table, err := memTables{w.db}.GetByID(context.Background(), w.tableID)
	require.NoError(t, err)
	return table.Status
}

func slot(hour, minute int) time.Time {
	return time.Date(2024, 1, 1, hour, minute, 0, 0, time.UTC)
}

func TestWorkflow_TouchingAndOverlappingRequests(t *testing.T) {
	w := newWorkflow(t)

	first, err := w.request(customerActor, slot(19, 0), 120)
	require.NoError(t, err)
	assert.Equal(t, domain.TableStatusReserved, w.tableStatus(t))

	_, err = w.request(customerActor, slot(20, 0), 120)
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = w.request(customerActor, slot(21, 0), 60)
	require.NoError(t, err)

	_, err = w.request(customerActor, slot(17, 0), 120)
	require.NoError(t, err, "booking ending at 19:00 touches the 19:00 booking")

	assert.Equal(t, domain.BookingStatusPending, first.Status)
}

func TestWorkflow_ApproveRestoresReservedStatus(t *testing.T) {
	w := newWorkflow(t)
	ctx := context.Background()

	b, err := w.request(customerActor, slot(19, 0), 120)
	require.NoError(t, err)
	_, err = w.tables.SetStatus(ctx, ownerActor, w.tableID, domain.TableStatusAvailable)
	require.NoError(t, err)

	_, err = w.booking.Approve(ctx, ownerActor, b.ID)
	require.NoError(t, err)

	assert.Equal(t, domain.TableStatusReserved, w.tableStatus(t))
}

func TestWorkflow_BulkApproveRestoresReservedStatus(t *testing.T) {
	w := newWorkflow(t)
	ctx := context.Background()

	_, err := w.request(customerActor, slot(19, 0), 120)
	require.NoError(t, err)
	_, err = w.tables.SetStatus(ctx, ownerActor, w.tableID, domain.TableStatusAvailable)
	require.NoError(t, err)

	ids, err := w.booking.BulkApprove(ctx, ownerActor, domain.TableScope(w.tableID))
	require.NoError(t, err)
	require.Len(t, ids, 1)

	assert.Equal(t, domain.TableStatusReserved, w.tableStatus(t))
}

func TestWorkflow_ApproveThenCancelFreesSlot(t *testing.T) {
	w := newWorkflow(t)
	ctx := context.Background()

	first, err := w.request(customerActor, slot(19, 0), 120)
	require.NoError(t, err)

	approved, err := w.booking.Approve(ctx, ownerActor, first.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusApproved, approved.Status)

	cancelled, err := w.booking.Cancel(ctx, customerActor, first.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, cancelled.Status)
	assert.Equal(t, domain.TableStatusAvailable, w.tableStatus(t))

	_, err = w.request(customerActor, slot(19, 0), 120)
	require.NoError(t, err)
}

func TestWorkflow_NonOwnerCannotApprove(t *testing.T) {
	w := newWorkflow(t)

	b, err := w.request(customerActor, slot(19, 0), 120)
	require.NoError(t, err)

	_, err = w.booking.Approve(context.Background(), strangerActor, b.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = w.booking.Approve(context.Background(), customerActor, b.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestWorkflow_BulkApproveSkipsApproved(t *testing.T) {
	w := newWorkflow(t)
	ctx := context.Background()

	var ids []string
	for _, h := range []int{10, 12, 14, 16} {
		b, err := w.request(customerActor, slot(h, 0), 120)
		require.NoError(t, err)
		ids = append(ids, b.ID)
	}
	_, err := w.booking.Approve(ctx, ownerActor, ids[0])
	require.NoError(t, err)

	approved, err := w.booking.BulkApprove(ctx, ownerActor, domain.StoreScope("store-1"))

	require.NoError(t, err)
	assert.Len(t, approved, 3)
	assert.NotContains(t, approved, ids[0])

	again, err := w.booking.BulkApprove(ctx, ownerActor, domain.StoreScope("store-1"))
	require.NoError(t, err)
	assert.Empty(t, again)
}

func TestWorkflow_PartySizeValidation(t *testing.T) {
	w := newWorkflow(t)
	tableID := w.tableID

	_, err := w.booking.Request(context.Background(), customerActor, domain.BookingDraft{
		TableID:      &tableID,
		CustomerName: " ",
		PartySize:    25,
		BookedAt:     slot(19, 0),
	})

	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Len(t, domain.Violations(err), 2)
}

func TestWorkflow_DeclineTwiceHasNoSecondEffect(t *testing.T) {
	w := newWorkflow(t)
	ctx := context.Background()

	b, err := w.request(customerActor, slot(19, 0), 120)
	require.NoError(t, err)

	_, err = w.booking.Decline(ctx, ownerActor, b.ID, "full")
	require.NoError(t, err)

	require.NoError(t, memTables{w.db}.SetStatus(ctx, w.tableID, domain.TableStatusOccupied))

	_, err = w.booking.Decline(ctx, ownerActor, b.ID, "full")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Equal(t, domain.TableStatusOccupied, w.tableStatus(t), "table status must not toggle again")
	assert.Equal(t, 1, w.events.count(domain.EventBookingDeclined))

	_, err = w.booking.Approve(ctx, ownerActor, b.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestWorkflow_ListPendingMostRecentFirst(t *testing.T) {
	w := newWorkflow(t)
	ctx := context.Background()

	first, err := w.request(customerActor, slot(10, 0), 60)
	require.NoError(t, err)
	w.booking.now = func() time.Time { return testNow.Add(time.Minute) }
	second, err := w.request(customerActor, slot(12, 0), 60)
	require.NoError(t, err)

	pending, err := w.gate.ListPending(ctx, ownerActor, domain.TableScope(w.tableID))

	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, second.ID, pending[0].ID)
	assert.Equal(t, first.ID, pending[1].ID)

	counts, err := w.gate.PendingCounts(ctx, ownerActor, "store-1")
	require.NoError(t, err)
	assert.Equal(t, map[int64]int{w.tableID: 2}, counts)
}

func TestWorkflow_DeleteTableRemovesBookings(t *testing.T) {
	w := newWorkflow(t)
	ctx := context.Background()

	_, err := w.request(customerActor, slot(19, 0), 120)
	require.NoError(t, err)

	require.NoError(t, w.tables.Delete(ctx, ownerActor, w.tableID))

	left, err := memBookings{w.db}.ListByStore(ctx, "store-1")
	require.NoError(t, err)
	assert.Empty(t, left)

	_, err = w.request(customerActor, slot(19, 0), 120)
	assert.ErrorIs(t, err, domain.ErrTableNotFound)
}

// Concurrent requests for windows that all share one instant: exactly one may win.
func TestWorkflow_NoDoubleBookingUnderConcurrency(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 20; round++ {
		t.Run(fmt.Sprintf("round_%d", round), func(t *testing.T) {
			w := newWorkflow(t)
			pivot := slot(19, 0)

			const attempts = 16
			var (
				wg        sync.WaitGroup
				mu        sync.Mutex
				successes int
				conflicts int
			)
			for i := 0; i < attempts; i++ {
				start := pivot.Add(-time.Duration(rng.Intn(90)) * time.Minute)
				minutes := int(pivot.Sub(start).Minutes()) + 1 + rng.Intn(120)

				wg.Add(1)
				go func(start time.Time, minutes int) {
					defer wg.Done()
					_, err := w.request(customerActor, start, minutes)

					mu.Lock()
					defer mu.Unlock()
					switch {
					case err == nil:
						successes++
					case errors.Is(err, domain.ErrConflict):
						conflicts++
					default:
						t.Errorf("unexpected error: %v", err)
					}
				}(start, minutes)
			}
			wg.Wait()

			assert.Equal(t, 1, successes)
			assert.Equal(t, attempts-1, conflicts)
		})
	}
}

// Random windows, concurrent: whatever succeeds must be pairwise disjoint.
func TestWorkflow_ActiveBookingsNeverOverlap(t *testing.T) {
	w := newWorkflow(t)
	rng := rand.New(rand.NewSource(7))

	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		start := slot(8, 0).Add(time.Duration(rng.Intn(14*60)) * time.Minute)
		minutes := 15 + rng.Intn(180)

		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = w.request(customerActor, start, minutes)
		}()
	}
	wg.Wait()

	booked, err := memBookings{w.db}.ListByTable(context.Background(), w.tableID)
	require.NoError(t, err)
	require.NotEmpty(t, booked)

	for i := range booked {
		for j := i + 1; j < len(booked); j++ {
			assert.False(t, booked[i].Window().Overlaps(booked[j].Window()),
				"bookings %s and %s overlap", booked[i].ID, booked[j].ID)
		}
	}
}
