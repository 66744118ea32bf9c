package order

import (
	"fmt"
	"time"

	"restopos/internal/controller/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is one dine-in tab. Subtotal, Tax and Total are always derived from
// the current item set and written together, never individually.
type Order struct {
	ID          uuid.UUID       `json:"id"`
	OrderNumber string          `json:"order_number"`
	Status      Status          `json:"status"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Tax         decimal.Decimal `json:"tax"`
	Total       decimal.Decimal `json:"total"`
	Notes       *string         `json:"notes,omitempty"`
	TableID     *uuid.UUID      `json:"table_id,omitempty"`
	UserID      uuid.UUID       `json:"user_id"`
	ClosedAt    *time.Time      `json:"closed_at,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	Items []Item `json:"items,omitempty"`

	// Table and User are hydrated on single-order reads only.
	Table *TableRef `json:"table,omitempty"`
	User  *UserRef  `json:"user,omitempty"`
}

// TableRef is the denormalized table projection attached to a hydrated order.
type TableRef struct {
	ID     uuid.UUID `json:"id"`
	Number int       `json:"table_number"`
}

// UserRef is the denormalized staff projection attached to a hydrated order.
type UserRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Closed reports whether the order no longer accepts item mutations.
func (o Order) Closed() bool {
	return o.ClosedAt != nil
}

// Item is one product line within an order. UnitPrice is a snapshot taken at
// insertion time and is never recomputed from the live catalog.
type Item struct {
	ID        uuid.UUID       `json:"id"`
	OrderID   uuid.UUID       `json:"order_id"`
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Notes     *string         `json:"notes,omitempty"`
	Status    ItemStatus      `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ItemInput is one requested line in a create or add-items call.
type ItemInput struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
	Notes     *string   `json:"notes,omitempty"`
}

// CreateRequest carries everything needed to open a tab.
type CreateRequest struct {
	TableID *uuid.UUID  `json:"table_id,omitempty"`
	Notes   *string     `json:"notes,omitempty"`
	Items   []ItemInput `json:"items" binding:"required,min=1,dive"`
}

func (r CreateRequest) Validate() error {
	if len(r.Items) == 0 {
		return apperror.ErrEmptyOrder
	}
	for _, item := range r.Items {
		if item.Quantity < 1 {
			return fmt.Errorf("%w: quantity must be >= 1 for product %s",
				apperror.ErrInvalidQuery, item.ProductID)
		}
	}
	return nil
}

// UpdateItemRequest patches a single line. Only quantity changes ripple into
// the owning order's totals.
type UpdateItemRequest struct {
	Quantity *int        `json:"quantity,omitempty" binding:"omitempty,min=1"`
	Notes    *string     `json:"notes,omitempty"`
	Status   *ItemStatus `json:"status,omitempty"`
}

// CreateResponse is the minimal acknowledgment returned by Create; callers
// re-fetch by id for the hydrated order.
type CreateResponse struct {
	ID          uuid.UUID `json:"id"`
	OrderNumber string    `json:"order_number"`
}

// Product is the catalog projection the engine needs for validation and
// price snapshots.
type Product struct {
	ID          uuid.UUID
	Name        string
	Price       decimal.Decimal
	IsAvailable bool
}

type Pagination struct {
	PageSize   int
	PageNumber int
}

// Query filters and pages the order list.
type Query struct {
	IDs        []uuid.UUID
	TableIDs   []uuid.UUID
	UserIDs    []uuid.UUID
	Statuses   []Status
	Pagination *Pagination
	SortBy     *string
	SortOrder  *string
}

func (q *Query) Validate() error {
	if q.SortBy != nil && *q.SortBy != "created_at" && *q.SortBy != "updated_at" && *q.SortBy != "order_number" {
		return fmt.Errorf("invalid sort by: %s", *q.SortBy)
	}
	if q.SortOrder != nil && *q.SortOrder != "asc" && *q.SortOrder != "desc" {
		return fmt.Errorf("invalid sort order: %s", *q.SortOrder)
	}
	return nil
}

type QueryBuilder struct {
	query *Query
}

func NewQueryBuilder() *QueryBuilder {
	return &QueryBuilder{query: &Query{}}
}

func (b *QueryBuilder) Build() (*Query, error) {
	if err := b.query.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", apperror.ErrInvalidQuery, err.Error())
	}
	return b.query, nil
}

func (b *QueryBuilder) WithIDs(ids ...uuid.UUID) *QueryBuilder {
	b.query.IDs = ids
	return b
}

func (b *QueryBuilder) WithTableIDs(tableIDs ...uuid.UUID) *QueryBuilder {
	b.query.TableIDs = tableIDs
	return b
}

func (b *QueryBuilder) WithUserIDs(userIDs ...uuid.UUID) *QueryBuilder {
	b.query.UserIDs = userIDs
	return b
}

func (b *QueryBuilder) WithStatuses(statuses ...Status) *QueryBuilder {
	b.query.Statuses = statuses
	return b
}

func (b *QueryBuilder) WithSort(sortBy, sortOrder string) *QueryBuilder {
	b.query.SortBy = &sortBy
	b.query.SortOrder = &sortOrder
	return b
}

func (b *QueryBuilder) WithPagination(pagination Pagination) *QueryBuilder {
	b.query.Pagination = &pagination
	return b
}
