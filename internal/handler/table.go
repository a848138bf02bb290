package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/stpnv0/TableBooker/internal/domain"
	"github.com/stpnv0/TableBooker/internal/handler/dto"
	"github.com/stpnv0/TableBooker/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateTable(c *ginext.Context) {
	var req dto.CreateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	input := domain.CreateTableInput{
		StoreID:        req.StoreID,
		Name:           req.Name,
		Capacity:       req.Capacity,
		Indoor:         req.Indoor,
		SmokingAllowed: req.SmokingAllowed,
		Description:    req.Description,
	}

	table, err := h.tableService.Create(c.Request.Context(), middleware.Actor(c), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTableResponse(table))
}

func (h *Handler) GetTable(c *ginext.Context) {
	id, ok := tableIDParam(c)
	if !ok {
		return
	}

	table, err := h.tableService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTableResponse(table))
}

func (h *Handler) UpdateTable(c *ginext.Context) {
	id, ok := tableIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	input := domain.UpdateTableInput{
		Name:           req.Name,
		Capacity:       req.Capacity,
		Indoor:         req.Indoor,
		SmokingAllowed: req.SmokingAllowed,
		Description:    req.Description,
		IsActive:       req.IsActive == nil || *req.IsActive,
	}

	table, err := h.tableService.Update(c.Request.Context(), middleware.Actor(c), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTableResponse(table))
}

func (h *Handler) SetTableStatus(c *ginext.Context) {
	id, ok := tableIDParam(c)
	if !ok {
		return
	}

	var req dto.SetTableStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	table, err := h.tableService.SetStatus(c.Request.Context(), middleware.Actor(c), id, domain.TableStatus(req.Status))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTableResponse(table))
}

func (h *Handler) DeleteTable(c *ginext.Context) {
	id, ok := tableIDParam(c)
	if !ok {
		return
	}

	if err := h.tableService.Delete(c.Request.Context(), middleware.Actor(c), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListAvailableTables answers "which tables are free at ?at for ?duration_minutes".
func (h *Handler) ListAvailableTables(c *ginext.Context) {
	at, err := time.Parse(time.RFC3339, c.Query("at"))
	if err != nil {
		badRequest(c, "invalid at format, expected RFC3339")
		return
	}

	duration := 0
	if raw := c.Query("duration_minutes"); raw != "" {
		duration, err = strconv.Atoi(raw)
		if err != nil || duration <= 0 || duration > domain.MaxDurationMinutes {
			badRequest(c, "duration_minutes must be between 1 and 1440")
			return
		}
	}

	tables, err := h.availabilityService.ListAvailable(c.Request.Context(), c.Param("id"), at, duration)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTableResponses(tables))
}
