package handler

import (
	"errors"
	"net/http"

	"github.com/stpnv0/TableBooker/internal/domain"
	"github.com/stpnv0/TableBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

const (
	codeBadRequest          = "bad_request"
	codeValidation          = "validation_failed"
	codeNotFound            = "not_found"
	codeSlotTaken           = "slot_taken"
	codeInvalidTransition   = "invalid_transition"
	codeAlreadyAssigned     = "already_assigned"
	codeTableMismatch       = "table_mismatch"
	codeForbidden           = "forbidden"
	codeAvailabilityUnknown = "availability_unknown"
	codePartialDelete       = "partial_delete"
	codeInternal            = "internal"
)

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:      err.Error(),
			Code:       codeValidation,
			Violations: domain.Violations(err),
		})

	case errors.Is(err, domain.ErrTableMismatch):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: codeTableMismatch})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error(), Code: codeForbidden})

	case errors.Is(err, domain.ErrStoreNotFound),
		errors.Is(err, domain.ErrTableNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error(), Code: codeNotFound})

	case errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error(), Code: codeSlotTaken})

	case errors.Is(err, domain.ErrInvalidTransition):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error(), Code: codeInvalidTransition})

	case errors.Is(err, domain.ErrAlreadyAssigned):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error(), Code: codeAlreadyAssigned})

	case errors.Is(err, domain.ErrAvailabilityUnknown):
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Error: domain.ErrAvailabilityUnknown.Error(),
			Code:  codeAvailabilityUnknown,
		})

	case errors.Is(err, domain.ErrTableDeletePartial):
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error(), Code: codePartialDelete})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error", Code: codeInternal})
	}
}
