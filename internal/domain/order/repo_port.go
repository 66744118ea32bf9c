package order

import (
	"context"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=repo_port.go -destination=mock_repo.go -package=order

// TxRepo is the storage surface available both inside and outside a
// transaction. Implementations return apperror sentinels for missing rows.
type TxRepo interface {
	GetOrders(ctx context.Context, query *Query) ([]Order, error)
	// GetOrderByID hydrates the table and user references.
	GetOrderByID(ctx context.Context, id uuid.UUID) (Order, error)
	// GetOrderForUpdate locks the order row for the rest of the transaction,
	// serializing totals recalculation against concurrent item mutations.
	GetOrderForUpdate(ctx context.Context, id uuid.UUID) (Order, error)
	GetItems(ctx context.Context, orderID uuid.UUID) ([]Item, error)
	GetItem(ctx context.Context, id uuid.UUID) (Item, error)

	// AcquireNumberLock serializes same-day order-number minting.
	AcquireNumberLock(ctx context.Context, prefix string) error
	// LastOrderNumber returns the highest number with the given prefix,
	// or "" when the day has no orders yet.
	LastOrderNumber(ctx context.Context, prefix string) (string, error)

	CreateOrder(ctx context.Context, o Order) error
	CreateItems(ctx context.Context, items []Item) error
	UpdateOrderNotes(ctx context.Context, id uuid.UUID, notes *string) error
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status Status, closedAt *time.Time) error
	// UpdateOrderTotals writes the money triple as one statement.
	UpdateOrderTotals(ctx context.Context, id uuid.UUID, totals Totals) error
	UpdateItem(ctx context.Context, item Item) error
	DeleteItem(ctx context.Context, id uuid.UUID) error
	DeleteOrder(ctx context.Context, id uuid.UUID) error

	// OccupyTable flips the table to occupied only if it is currently
	// available, as a single conditional update.
	OccupyTable(ctx context.Context, tableID uuid.UUID) error
}

type Repo interface {
	TxRepo
	InTransaction(ctx context.Context, fn func(repo TxRepo) error) error
}

// Catalog is the product-validation port. FetchForOrder resolves all distinct
// ids in one batch and fails with apperror.ErrProductsNotFound (listing the
// missing ids) or apperror.ErrProductsUnavailable (listing product names).
type Catalog interface {
	FetchForOrder(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]Product, error)
}
