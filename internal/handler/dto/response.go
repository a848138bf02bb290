package dto

import (
	"sort"
	"time"

	"github.com/stpnv0/TableBooker/internal/domain"
)

type StoreResponse struct {
	ID             string `json:"id"`
	OwnerID        string `json:"owner_id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Address        string `json:"address"`
	City           string `json:"city"`
	Phone          string `json:"phone"`
	IsActive       bool   `json:"is_active"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type TableResponse struct {
	ID             int64  `json:"id"`
	StoreID        string `json:"store_id"`
	Name           string `json:"name"`
	Capacity       int    `json:"capacity"`
	Indoor         bool   `json:"indoor"`
	SmokingAllowed bool   `json:"smoking_allowed"`
	Status         string `json:"status"`
	Description    string `json:"description"`
	IsActive       bool   `json:"is_active"`
}

// BookingResponse exposes the legacy approved flag derived from Status.
type BookingResponse struct {
	ID              string  `json:"id"`
	TableID         *int64  `json:"table_id"`
	StoreID         string  `json:"store_id"`
	UserID          *string `json:"user_id,omitempty"`
	CustomerName    string  `json:"customer_name"`
	CustomerEmail   string  `json:"customer_email,omitempty"`
	CustomerPhone   string  `json:"customer_phone,omitempty"`
	PartySize       int     `json:"party_size"`
	BookedAt        string  `json:"booked_at"`
	EndsAt          string  `json:"ends_at"`
	DurationMinutes int     `json:"duration_minutes"`
	Status          string  `json:"status"`
	Approved        bool    `json:"approved"`
	SpecialRequests string  `json:"special_requests,omitempty"`
	DeclineReason   string  `json:"decline_reason,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

type BulkApproveResponse struct {
	ApprovedCount int      `json:"approved_count"`
	ApprovedIDs   []string `json:"approved_ids"`
}

type PendingCountResponse struct {
	TableID int64 `json:"table_id"`
	Pending int   `json:"pending"`
}

type ErrorResponse struct {
	Error      string             `json:"error"`
	Code       string             `json:"code"`
	Violations []domain.Violation `json:"violations,omitempty"`
}

func ToStoreResponse(s *domain.Store) StoreResponse {
	return StoreResponse{
		ID:             s.ID,
		OwnerID:        s.OwnerID,
		Name:           s.Name,
		Description:    s.Description,
		Address:        s.Address,
		City:           s.City,
		Phone:          s.Phone,
		IsActive:       s.IsActive,
		TelegramChatID: s.TelegramChatID,
		CreatedAt:      s.CreatedAt.Format(time.RFC3339),
	}
}

func ToStoreResponses(stores []*domain.Store) []StoreResponse {
	resp := make([]StoreResponse, 0, len(stores))
	for _, s := range stores {
		resp = append(resp, ToStoreResponse(s))
	}
	return resp
}

func ToTableResponse(t *domain.Table) TableResponse {
	return TableResponse{
		ID:             t.ID,
		StoreID:        t.StoreID,
		Name:           t.Name,
		Capacity:       t.Capacity,
		Indoor:         t.Indoor,
		SmokingAllowed: t.SmokingAllowed,
		Status:         string(t.Status),
		Description:    t.Description,
		IsActive:       t.IsActive,
	}
}

func ToTableResponses(tables []*domain.Table) []TableResponse {
	resp := make([]TableResponse, 0, len(tables))
	for _, t := range tables {
		resp = append(resp, ToTableResponse(t))
	}
	return resp
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:              b.ID,
		TableID:         b.TableID,
		StoreID:         b.StoreID,
		UserID:          b.UserID,
		CustomerName:    b.CustomerName,
		CustomerEmail:   b.CustomerEmail,
		CustomerPhone:   b.CustomerPhone,
		PartySize:       b.PartySize,
		BookedAt:        b.BookedAt.UTC().Format(time.RFC3339),
		EndsAt:          b.EndsAt().UTC().Format(time.RFC3339),
		DurationMinutes: b.DurationMinutes,
		Status:          string(b.Status),
		Approved:        b.Status == domain.BookingStatusApproved,
		SpecialRequests: b.SpecialRequests,
		DeclineReason:   b.DeclineReason,
		CreatedAt:       b.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func ToBookingResponses(bookings []*domain.Booking) []BookingResponse {
	resp := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, ToBookingResponse(b))
	}
	return resp
}

// ToPendingCounts returns the counts ordered by table id.
func ToPendingCounts(counts map[int64]int) []PendingCountResponse {
	resp := make([]PendingCountResponse, 0, len(counts))
	for id, n := range counts {
		resp = append(resp, PendingCountResponse{TableID: id, Pending: n})
	}
	sort.Slice(resp, func(i, j int) bool { return resp[i].TableID < resp[j].TableID })
	return resp
}
