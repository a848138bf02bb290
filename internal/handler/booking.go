package handler

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/stpnv0/TableBooker/internal/domain"
	"github.com/stpnv0/TableBooker/internal/handler/dto"
	"github.com/stpnv0/TableBooker/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) RequestBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	var bookedAt time.Time
	if req.BookedAt != "" {
		parsed, err := time.Parse(time.RFC3339, req.BookedAt)
		if err != nil {
			var v domain.ValidationError
			v.Add("booked_at", "booked_at must be RFC3339")
			h.handleError(c, v.OrNil())
			return
		}
		bookedAt = parsed
	}

	actor := middleware.Actor(c)
	draft := domain.BookingDraft{
		TableID:         req.TableID,
		StoreID:         req.StoreID,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		PartySize:       req.PartySize,
		BookedAt:        bookedAt,
		DurationMinutes: req.DurationMinutes,
		SpecialRequests: req.SpecialRequests,
		AcceptCode:      req.AcceptCode,
	}
	if actor.UserID != "" {
		userID := actor.UserID
		draft.UserID = &userID
	}

	booking, err := h.bookingService.Request(c.Request.Context(), actor, draft)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) GetBooking(c *ginext.Context) {
	booking, err := h.bookingService.Get(c.Request.Context(), middleware.Actor(c), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) ApproveBooking(c *ginext.Context) {
	booking, err := h.bookingService.Approve(c.Request.Context(), middleware.Actor(c), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) DeclineBooking(c *ginext.Context) {
	// The reason is optional, so is the body.
	var req dto.DeclineRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		badRequest(c, err.Error())
		return
	}

	booking, err := h.bookingService.Decline(c.Request.Context(), middleware.Actor(c), c.Param("id"), req.Reason)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	booking, err := h.bookingService.Cancel(c.Request.Context(), middleware.Actor(c), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) AssignTable(c *ginext.Context) {
	var req dto.AssignTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	booking, err := h.bookingService.AssignTable(c.Request.Context(), middleware.Actor(c), c.Param("id"), req.TableID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) PurgeBooking(c *ginext.Context) {
	if err := h.bookingService.Purge(c.Request.Context(), middleware.Actor(c), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) ListMyBookings(c *ginext.Context) {
	bookings, err := h.bookingService.ListMine(c.Request.Context(), middleware.Actor(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponses(bookings))
}

func (h *Handler) ListStoreBookings(c *ginext.Context) {
	bookings, err := h.bookingService.ListByStore(c.Request.Context(), middleware.Actor(c), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponses(bookings))
}

func (h *Handler) ListTableBookings(c *ginext.Context) {
	id, ok := tableIDParam(c)
	if !ok {
		return
	}

	bookings, err := h.bookingService.ListByTable(c.Request.Context(), middleware.Actor(c), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponses(bookings))
}

// Pending queue

func (h *Handler) ListStorePending(c *ginext.Context) {
	h.listPending(c, domain.StoreScope(c.Param("id")))
}

func (h *Handler) ListTablePending(c *ginext.Context) {
	id, ok := tableIDParam(c)
	if !ok {
		return
	}
	h.listPending(c, domain.TableScope(id))
}

func (h *Handler) listPending(c *ginext.Context, scope domain.Scope) {
	bookings, err := h.pendingService.ListPending(c.Request.Context(), middleware.Actor(c), scope)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponses(bookings))
}

func (h *Handler) StorePendingCounts(c *ginext.Context) {
	counts, err := h.pendingService.PendingCounts(c.Request.Context(), middleware.Actor(c), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPendingCounts(counts))
}

func (h *Handler) BulkApproveStore(c *ginext.Context) {
	h.bulkApprove(c, domain.StoreScope(c.Param("id")))
}

func (h *Handler) BulkApproveTable(c *ginext.Context) {
	id, ok := tableIDParam(c)
	if !ok {
		return
	}
	h.bulkApprove(c, domain.TableScope(id))
}

func (h *Handler) bulkApprove(c *ginext.Context, scope domain.Scope) {
	ids, err := h.bookingService.BulkApprove(c.Request.Context(), middleware.Actor(c), scope)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}

	c.JSON(http.StatusOK, dto.BulkApproveResponse{ApprovedCount: len(ids), ApprovedIDs: ids})
}
