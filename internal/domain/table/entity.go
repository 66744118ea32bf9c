// Package table is the registry of physical tables. Order creation flips an
// available table to occupied; everything else here is independent CRUD.
package table

import (
	"errors"
	"slices"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusAvailable   Status = "available"
	StatusOccupied    Status = "occupied"
	StatusReserved    Status = "reserved"
	StatusMaintenance Status = "maintenance"
)

var AvailableStatuses = []Status{StatusAvailable, StatusOccupied, StatusReserved, StatusMaintenance}

func NewStatus(raw string) (Status, error) {
	if slices.Contains(AvailableStatuses, Status(raw)) {
		return Status(raw), nil
	}
	return "", errors.New("invalid table status")
}

type Table struct {
	ID        uuid.UUID `json:"id"`
	Number    int       `json:"table_number"`
	Capacity  int       `json:"capacity"`
	Status    Status    `json:"status"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateRequest struct {
	Number   int `json:"table_number" binding:"required,min=1"`
	Capacity int `json:"capacity" binding:"required,min=1"`
}

type UpdateRequest struct {
	Number   *int    `json:"table_number,omitempty" binding:"omitempty,min=1"`
	Capacity *int    `json:"capacity,omitempty" binding:"omitempty,min=1"`
	Status   *Status `json:"status,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

type Query struct {
	Statuses   []Status
	ActiveOnly bool
	PageSize   int
	PageNumber int
}
