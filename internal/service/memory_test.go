package service

import (
	"context"
	"sort"
	"sync"

	"github.com/stpnv0/TableBooker/internal/domain"
)

// memoryDB is an in-process stand-in for Postgres. Booking inserts hold the
// mutex across the overlap check, mirroring the table lock plus exclusion
// constraint of the real repository.
type memoryDB struct {
	mu       sync.Mutex
	stores   map[string]*domain.Store
	tables   map[int64]*domain.Table
	bookings map[string]*domain.Booking
	nextID   int64
}

func newMemoryDB() *memoryDB {
	return &memoryDB{
		stores:   make(map[string]*domain.Store),
		tables:   make(map[int64]*domain.Table),
		bookings: make(map[string]*domain.Booking),
	}
}

func (db *memoryDB) overlapLocked(tableID int64, w domain.Window, skipID string) bool {
	for _, b := range db.bookings {
		if b.ID == skipID || b.TableID == nil || *b.TableID != tableID || !b.Status.Active() {
			continue
		}
		if b.Window().Overlaps(w) {
			return true
		}
	}
	return false
}

func cloneBooking(b *domain.Booking) *domain.Booking {
	c := *b
	return &c
}

type memBookings struct{ db *memoryDB }

func (r memBookings) Create(_ context.Context, b *domain.Booking) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if b.TableID != nil {
		t, ok := r.db.tables[*b.TableID]
		if !ok || !t.IsActive {
			return domain.ErrTableNotFound
		}
		if t.StoreID != b.StoreID {
			return domain.ErrTableMismatch
		}
		if r.db.overlapLocked(*b.TableID, b.Window(), "") {
			return domain.ErrConflict
		}
	}
	r.db.bookings[b.ID] = cloneBooking(b)
	return nil
}

func (r memBookings) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	b, ok := r.db.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	return cloneBooking(b), nil
}

func (r memBookings) filter(keep func(*domain.Booking) bool) []*domain.Booking {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	var res []*domain.Booking
	for _, b := range r.db.bookings {
		if keep(b) {
			res = append(res, cloneBooking(b))
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].BookedAt.Before(res[j].BookedAt) })
	return res
}

func (r memBookings) ListByTable(_ context.Context, tableID int64) ([]*domain.Booking, error) {
	return r.filter(func(b *domain.Booking) bool { return b.TableID != nil && *b.TableID == tableID }), nil
}

func (r memBookings) ListByStore(_ context.Context, storeID string) ([]*domain.Booking, error) {
	return r.filter(func(b *domain.Booking) bool { return b.StoreID == storeID }), nil
}

func (r memBookings) ListByUser(_ context.Context, userID string) ([]*domain.Booking, error) {
	return r.filter(func(b *domain.Booking) bool { return b.UserID != nil && *b.UserID == userID }), nil
}

func (r memBookings) ListPending(_ context.Context, scope domain.Scope) ([]*domain.Booking, error) {
	res := r.filter(func(b *domain.Booking) bool {
		return b.Status == domain.BookingStatusPending && inScope(b, scope)
	})
	sort.Slice(res, func(i, j int) bool { return res[i].CreatedAt.After(res[j].CreatedAt) })
	return res, nil
}

func (r memBookings) HasOverlap(_ context.Context, tableID int64, w domain.Window) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return r.db.overlapLocked(tableID, w, ""), nil
}

func (r memBookings) UpdateStatus(_ context.Context, change domain.StatusChange) (*domain.Booking, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	b, ok := r.db.bookings[change.BookingID]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	allowed := false
	for _, s := range change.From {
		if b.Status == s {
			allowed = true
		}
	}
	if !allowed {
		return nil, domain.ErrInvalidTransition
	}

	b.Status = change.To
	if change.Reason != "" {
		b.DeclineReason = change.Reason
	}
	return cloneBooking(b), nil
}

func (r memBookings) ApprovePending(_ context.Context, scope domain.Scope) ([]*domain.Booking, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	approved := make([]*domain.Booking, 0)
	for _, b := range r.db.bookings {
		if b.Status == domain.BookingStatusPending && inScope(b, scope) {
			b.Status = domain.BookingStatusApproved
			approved = append(approved, cloneBooking(b))
		}
	}
	sort.Slice(approved, func(i, j int) bool { return approved[i].ID < approved[j].ID })
	return approved, nil
}

func (r memBookings) AssignTable(_ context.Context, bookingID string, tableID int64) (*domain.Booking, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	b, ok := r.db.bookings[bookingID]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	if b.TableID != nil {
		return nil, domain.ErrAlreadyAssigned
	}
	if r.db.overlapLocked(tableID, b.Window(), b.ID) {
		return nil, domain.ErrConflict
	}
	b.TableID = &tableID
	return cloneBooking(b), nil
}

func (r memBookings) CountPendingByTable(_ context.Context, storeID string) (map[int64]int, error) {
	res := make(map[int64]int)
	for _, b := range r.filter(func(b *domain.Booking) bool {
		return b.StoreID == storeID && b.TableID != nil && b.Status == domain.BookingStatusPending
	}) {
		res[*b.TableID]++
	}
	return res, nil
}

func (r memBookings) CountPendingByStore(_ context.Context) (map[string]int, error) {
	res := make(map[string]int)
	for _, b := range r.filter(func(b *domain.Booking) bool { return b.Status == domain.BookingStatusPending }) {
		res[b.StoreID]++
	}
	return res, nil
}

func (r memBookings) Delete(_ context.Context, id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.bookings[id]; !ok {
		return domain.ErrBookingNotFound
	}
	delete(r.db.bookings, id)
	return nil
}

func (r memBookings) DeleteByTable(_ context.Context, tableID int64) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	var n int64
	for id, b := range r.db.bookings {
		if b.TableID != nil && *b.TableID == tableID {
			delete(r.db.bookings, id)
			n++
		}
	}
	return n, nil
}

func inScope(b *domain.Booking, scope domain.Scope) bool {
	if scope.TableID != nil {
		return b.TableID != nil && *b.TableID == *scope.TableID
	}
	return b.StoreID == scope.StoreID
}

type memTables struct{ db *memoryDB }

func (r memTables) Create(_ context.Context, t *domain.Table) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.stores[t.StoreID]; !ok {
		return domain.ErrStoreNotFound
	}
	r.db.nextID++
	t.ID = r.db.nextID
	c := *t
	r.db.tables[t.ID] = &c
	return nil
}

func (r memTables) GetByID(_ context.Context, id int64) (*domain.Table, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	t, ok := r.db.tables[id]
	if !ok {
		return nil, domain.ErrTableNotFound
	}
	c := *t
	return &c, nil
}

func (r memTables) ListByStore(_ context.Context, storeID string) ([]*domain.Table, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	var res []*domain.Table
	for _, t := range r.db.tables {
		if t.StoreID == storeID && t.IsActive {
			c := *t
			res = append(res, &c)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Name < res[j].Name })
	return res, nil
}

func (r memTables) ListAvailable(ctx context.Context, storeID string, w domain.Window) ([]*domain.Table, error) {
	all, _ := r.ListByStore(ctx, storeID)

	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	var res []*domain.Table
	for _, t := range all {
		if !r.db.overlapLocked(t.ID, w, "") {
			res = append(res, t)
		}
	}
	return res, nil
}

func (r memTables) Update(_ context.Context, t *domain.Table) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.tables[t.ID]; !ok {
		return domain.ErrTableNotFound
	}
	c := *t
	r.db.tables[t.ID] = &c
	return nil
}

func (r memTables) SetStatus(_ context.Context, id int64, status domain.TableStatus) error {
	return r.mutate(id, func(t *domain.Table) { t.Status = status })
}

func (r memTables) Deactivate(_ context.Context, id int64) error {
	return r.mutate(id, func(t *domain.Table) { t.IsActive = false })
}

func (r memTables) Delete(_ context.Context, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.tables[id]; !ok {
		return domain.ErrTableNotFound
	}
	delete(r.db.tables, id)
	return nil
}

func (r memTables) mutate(id int64, fn func(*domain.Table)) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	t, ok := r.db.tables[id]
	if !ok {
		return domain.ErrTableNotFound
	}
	fn(t)
	return nil
}

type memStores struct{ db *memoryDB }

func (r memStores) Create(_ context.Context, s *domain.Store) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	c := *s
	r.db.stores[s.ID] = &c
	return nil
}

func (r memStores) GetByID(_ context.Context, id string) (*domain.Store, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	s, ok := r.db.stores[id]
	if !ok {
		return nil, domain.ErrStoreNotFound
	}
	c := *s
	return &c, nil
}

func (r memStores) List(_ context.Context) ([]*domain.Store, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	var res []*domain.Store
	for _, s := range r.db.stores {
		c := *s
		res = append(res, &c)
	}
	return res, nil
}

type nopNotifier struct{}

func (nopNotifier) NotifyBookingRequested(context.Context, *domain.Store, *domain.Booking) {}
func (nopNotifier) NotifyBookingCancelled(context.Context, *domain.Store, *domain.Booking) {}
func (nopNotifier) NotifyPendingReminder(context.Context, *domain.Store, int)             {}

type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.BookingEvent
}

func (p *recordingPublisher) Publish(_ context.Context, e domain.BookingEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
}

func (p *recordingPublisher) count(t domain.BookingEventType) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := 0
	for _, e := range p.events {
		if e.Type == t {
			n++
		}
	}
	return n
}
