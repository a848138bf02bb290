package domain

import (
	"strings"
	"time"
)

type TableStatus string

const (
	TableStatusAvailable TableStatus = "available"
	TableStatusReserved  TableStatus = "reserved"
	TableStatusOccupied  TableStatus = "occupied"
)

func (s TableStatus) Valid() bool {
	switch s {
	case TableStatusAvailable, TableStatusReserved, TableStatusOccupied:
		return true
	}
	return false
}

// Table is a physical seating unit. Status is an advisory hint only;
// availability for a time window is decided from bookings.
type Table struct {
	ID             int64       `json:"id"`
	StoreID        string      `json:"store_id"`
	Name           string      `json:"name"`
	Capacity       int         `json:"capacity"`
	Indoor         bool        `json:"indoor"`
	SmokingAllowed bool        `json:"smoking_allowed"`
	Status         TableStatus `json:"status"`
	Description    string      `json:"description"`
	IsActive       bool        `json:"is_active"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

type CreateTableInput struct {
	StoreID        string
	Name           string
	Capacity       int
	Indoor         bool
	SmokingAllowed bool
	Description    string
}

func (in CreateTableInput) Validate() error {
	var v ValidationError
	if strings.TrimSpace(in.StoreID) == "" {
		v.Add("store_id", "store_id is required")
	}
	validateTableFields(&v, in.Name, in.Capacity)
	return v.OrNil()
}

type UpdateTableInput struct {
	Name           string
	Capacity       int
	Indoor         bool
	SmokingAllowed bool
	Description    string
	IsActive       bool
}

func (in UpdateTableInput) Validate() error {
	var v ValidationError
	validateTableFields(&v, in.Name, in.Capacity)
	return v.OrNil()
}

func validateTableFields(v *ValidationError, name string, capacity int) {
	if strings.TrimSpace(name) == "" {
		v.Add("name", "name is required")
	}
	if capacity <= 0 {
		v.Add("capacity", "capacity must be positive")
	}
}
