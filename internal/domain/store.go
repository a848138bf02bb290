package domain

import (
	"strings"
	"time"
)

type Store struct {
	ID             string    `json:"id"`
	OwnerID        string    `json:"owner_id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Address        string    `json:"address"`
	City           string    `json:"city"`
	Phone          string    `json:"phone"`
	IsActive       bool      `json:"is_active"`
	TelegramChatID *int64    `json:"telegram_chat_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type CreateStoreInput struct {
	OwnerID        string
	Name           string
	Description    string
	Address        string
	City           string
	Phone          string
	TelegramChatID *int64
}

func (in CreateStoreInput) Validate() error {
	var v ValidationError
	if strings.TrimSpace(in.OwnerID) == "" {
		v.Add("owner_id", "owner is required")
	}
	if strings.TrimSpace(in.Name) == "" {
		v.Add("name", "name is required")
	}
	return v.OrNil()
}
