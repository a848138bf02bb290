package handler

import (
	"net/http"

	"github.com/stpnv0/TableBooker/internal/domain"
	"github.com/stpnv0/TableBooker/internal/handler/dto"
	"github.com/stpnv0/TableBooker/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateStore(c *ginext.Context) {
	var req dto.CreateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	input := domain.CreateStoreInput{
		OwnerID:        req.OwnerID,
		Name:           req.Name,
		Description:    req.Description,
		Address:        req.Address,
		City:           req.City,
		Phone:          req.Phone,
		TelegramChatID: req.TelegramChatID,
	}

	store, err := h.storeService.Create(c.Request.Context(), middleware.Actor(c), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToStoreResponse(store))
}

func (h *Handler) GetStore(c *ginext.Context) {
	store, err := h.storeService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStoreResponse(store))
}

func (h *Handler) ListStores(c *ginext.Context) {
	stores, err := h.storeService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStoreResponses(stores))
}

func (h *Handler) ListStoreTables(c *ginext.Context) {
	tables, err := h.tableService.ListByStore(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTableResponses(tables))
}
