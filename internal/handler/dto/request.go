package dto

type CreateStoreRequest struct {
	OwnerID        string `json:"owner_id"`
	Name           string `json:"name" binding:"required"`
	Description    string `json:"description"`
	Address        string `json:"address"`
	City           string `json:"city"`
	Phone          string `json:"phone"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type CreateTableRequest struct {
	StoreID        string `json:"store_id" binding:"required"`
	Name           string `json:"name" binding:"required"`
	Capacity       int    `json:"capacity" binding:"required,gt=0"`
	Indoor         bool   `json:"indoor"`
	SmokingAllowed bool   `json:"smoking_allowed"`
	Description    string `json:"description"`
}

type UpdateTableRequest struct {
	Name           string `json:"name" binding:"required"`
	Capacity       int    `json:"capacity" binding:"required,gt=0"`
	Indoor         bool   `json:"indoor"`
	SmokingAllowed bool   `json:"smoking_allowed"`
	Description    string `json:"description"`
	IsActive       *bool  `json:"is_active"`
}

type SetTableStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// CreateBookingRequest is validated by the domain draft so that every
// violation is reported in one response.
type CreateBookingRequest struct {
	TableID         *int64 `json:"table_id"`
	StoreID         string `json:"store_id"`
	CustomerName    string `json:"customer_name"`
	CustomerEmail   string `json:"customer_email"`
	CustomerPhone   string `json:"customer_phone"`
	PartySize       int    `json:"party_size"`
	BookedAt        string `json:"booked_at"`
	DurationMinutes int    `json:"duration_minutes"`
	SpecialRequests string `json:"special_requests"`
	AcceptCode      string `json:"accept_code"`
}

type DeclineRequest struct {
	Reason string `json:"reason"`
}

type AssignTableRequest struct {
	TableID int64 `json:"table_id" binding:"required,gt=0"`
}
