package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/stpnv0/TableBooker/internal/domain"
	"github.com/stpnv0/TableBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type StoreSvc interface {
	Create(ctx context.Context, actor domain.Actor, input domain.CreateStoreInput) (*domain.Store, error)
	Get(ctx context.Context, id string) (*domain.Store, error)
	List(ctx context.Context) ([]*domain.Store, error)
}

type TableSvc interface {
	Create(ctx context.Context, actor domain.Actor, input domain.CreateTableInput) (*domain.Table, error)
	Get(ctx context.Context, id int64) (*domain.Table, error)
	ListByStore(ctx context.Context, storeID string) ([]*domain.Table, error)
	Update(ctx context.Context, actor domain.Actor, id int64, input domain.UpdateTableInput) (*domain.Table, error)
	SetStatus(ctx context.Context, actor domain.Actor, id int64, status domain.TableStatus) (*domain.Table, error)
	Delete(ctx context.Context, actor domain.Actor, id int64) error
}

type BookingSvc interface {
	Request(ctx context.Context, actor domain.Actor, draft domain.BookingDraft) (*domain.Booking, error)
	Approve(ctx context.Context, actor domain.Actor, id string) (*domain.Booking, error)
	Decline(ctx context.Context, actor domain.Actor, id, reason string) (*domain.Booking, error)
	Cancel(ctx context.Context, actor domain.Actor, id string) (*domain.Booking, error)
	BulkApprove(ctx context.Context, actor domain.Actor, scope domain.Scope) ([]string, error)
	AssignTable(ctx context.Context, actor domain.Actor, bookingID string, tableID int64) (*domain.Booking, error)
	Get(ctx context.Context, actor domain.Actor, id string) (*domain.Booking, error)
	ListMine(ctx context.Context, actor domain.Actor) ([]*domain.Booking, error)
	ListByStore(ctx context.Context, actor domain.Actor, storeID string) ([]*domain.Booking, error)
	ListByTable(ctx context.Context, actor domain.Actor, tableID int64) ([]*domain.Booking, error)
	Purge(ctx context.Context, actor domain.Actor, id string) error
}

type AvailabilitySvc interface {
	ListAvailable(ctx context.Context, storeID string, at time.Time, durationMinutes int) ([]*domain.Table, error)
}

type PendingSvc interface {
	CanManage(ctx context.Context, actor domain.Actor, storeID string) (bool, error)
	ListPending(ctx context.Context, actor domain.Actor, scope domain.Scope) ([]*domain.Booking, error)
	PendingCounts(ctx context.Context, actor domain.Actor, storeID string) (map[int64]int, error)
}

// Subscriber delivers booking events of a single store.
type Subscriber interface {
	Subscribe(storeID string) (<-chan domain.BookingEvent, func())
}

type Handler struct {
	storeService        StoreSvc
	tableService        TableSvc
	bookingService      BookingSvc
	availabilityService AvailabilitySvc
	pendingService      PendingSvc
	events              Subscriber
}

func NewHandler(
	storeService StoreSvc,
	tableService TableSvc,
	bookingService BookingSvc,
	availabilityService AvailabilitySvc,
	pendingService PendingSvc,
	events Subscriber,
) *Handler {
	return &Handler{
		storeService:        storeService,
		tableService:        tableService,
		bookingService:      bookingService,
		availabilityService: availabilityService,
		pendingService:      pendingService,
		events:              events,
	}
}

func (h *Handler) Health(c *ginext.Context) {
	c.JSON(http.StatusOK, ginext.H{"status": "ok"})
}

func tableIDParam(c *ginext.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		badRequest(c, "invalid table id")
		return 0, false
	}
	return id, true
}

func badRequest(c *ginext.Context, msg string) {
	c.Set("error", msg)
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msg, Code: codeBadRequest})
}
