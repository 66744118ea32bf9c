package order_repo

import (
	"time"

	"restopos/internal/domain/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// orderRow mirrors the orders table plus the optional table/user projections
// joined in by GetOrderByID.
type orderRow struct {
	ID          uuid.UUID
	OrderNumber string
	Status      string
	Subtotal    decimal.Decimal
	Tax         decimal.Decimal
	Total       decimal.Decimal
	Notes       *string
	TableID     *uuid.UUID
	UserID      uuid.UUID
	ClosedAt    *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	TableNumber *int
	UserName    *string
}

func (r orderRow) toDomain() (order.Order, error) {
	status, err := order.NewStatus(r.Status)
	if err != nil {
		return order.Order{}, err
	}

	o := order.Order{
		ID:          r.ID,
		OrderNumber: r.OrderNumber,
		Status:      status,
		Subtotal:    r.Subtotal,
		Tax:         r.Tax,
		Total:       r.Total,
		Notes:       r.Notes,
		TableID:     r.TableID,
		UserID:      r.UserID,
		ClosedAt:    r.ClosedAt,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}

	if r.TableID != nil && r.TableNumber != nil {
		o.Table = &order.TableRef{ID: *r.TableID, Number: *r.TableNumber}
	}
	if r.UserName != nil {
		o.User = &order.UserRef{ID: r.UserID, Name: *r.UserName}
	}
	return o, nil
}

type itemRow struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	ProductID uuid.UUID
	Quantity  int
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
	Notes     *string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (r itemRow) toDomain() (order.Item, error) {
	status, err := order.NewItemStatus(r.Status)
	if err != nil {
		return order.Item{}, err
	}

	return order.Item{
		ID:        r.ID,
		OrderID:   r.OrderID,
		ProductID: r.ProductID,
		Quantity:  r.Quantity,
		UnitPrice: r.UnitPrice,
		Subtotal:  r.Subtotal,
		Notes:     r.Notes,
		Status:    status,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}, nil
}
