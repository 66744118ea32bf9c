package order

import (
	"context"
	"fmt"
	"time"

	"restopos/internal/controller/apperror"
	"restopos/pkg/metrics"

	"github.com/google/uuid"
)

// Service is the order lifecycle engine: the only component that mutates
// orders and their items. Every read-validate-write sequence for a single
// order runs inside one transaction with the order row locked.
type Service struct {
	repo        Repo
	catalog     Catalog
	pricer      Pricer
	transitions Transitions

	now func() time.Time
}

func NewService(repo Repo, catalog Catalog, pricer Pricer, transitions Transitions) *Service {
	return &Service{
		repo:        repo,
		catalog:     catalog,
		pricer:      pricer,
		transitions: transitions,
		now:         time.Now,
	}
}

// Create opens a tab: mints the day's next order number, snapshots product
// prices into items, computes totals and, when a table is given, occupies it.
// All writes happen in one transaction; any failure leaves no partial order
// behind and the table untouched.
func (s *Service) Create(ctx context.Context, req CreateRequest, userID uuid.UUID) (CreateResponse, error) {
	if err := req.Validate(); err != nil {
		return CreateResponse{}, err
	}

	products, err := s.catalog.FetchForOrder(ctx, productIDs(req.Items))
	if err != nil {
		return CreateResponse{}, fmt.Errorf("validate products: %w", err)
	}

	var resp CreateResponse
	err = s.repo.InTransaction(ctx, func(tx TxRepo) error {
		if req.TableID != nil {
			if err := tx.OccupyTable(ctx, *req.TableID); err != nil {
				return fmt.Errorf("occupy table: %w", err)
			}
		}

		number, err := s.mintOrderNumber(ctx, tx)
		if err != nil {
			return err
		}

		orderID := uuid.New()
		items := s.buildItems(orderID, req.Items, products)
		totals := s.pricer.TotalsFor(items)

		o := Order{
			ID:          orderID,
			OrderNumber: number,
			Status:      StatusOpen,
			Subtotal:    totals.Subtotal,
			Tax:         totals.Tax,
			Total:       totals.Total,
			Notes:       req.Notes,
			TableID:     req.TableID,
			UserID:      userID,
		}

		if err := tx.CreateOrder(ctx, o); err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		if err := tx.CreateItems(ctx, items); err != nil {
			return fmt.Errorf("create order items: %w", err)
		}

		resp = CreateResponse{ID: orderID, OrderNumber: number}
		return nil
	})
	if err != nil {
		return CreateResponse{}, err
	}

	metrics.OrdersCreatedTotal.Inc()
	return resp, nil
}

// GetByID returns the order hydrated with its items and table/user references.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (Order, error) {
	o, err := s.repo.GetOrderByID(ctx, id)
	if err != nil {
		return Order{}, fmt.Errorf("get order: %w", err)
	}

	items, err := s.repo.GetItems(ctx, id)
	if err != nil {
		return Order{}, fmt.Errorf("get order items: %w", err)
	}
	o.Items = items

	return o, nil
}

func (s *Service) List(ctx context.Context, query Query) ([]Order, error) {
	orders, err := s.repo.GetOrders(ctx, &query)
	if err != nil {
		return nil, fmt.Errorf("filter orders: %w", err)
	}
	return orders, nil
}

// UpdateNotes rewrites the order's free-text notes; no other field is touched.
func (s *Service) UpdateNotes(ctx context.Context, id uuid.UUID, notes *string) (Order, error) {
	if err := s.repo.UpdateOrderNotes(ctx, id, notes); err != nil {
		return Order{}, fmt.Errorf("update order notes: %w", err)
	}
	return s.GetByID(ctx, id)
}

// UpdateStatus moves the order along the configured transition graph.
// Entering paid or cancelled stamps closed_at; once set it is never cleared.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, newStatus Status) (Order, error) {
	err := s.repo.InTransaction(ctx, func(tx TxRepo) error {
		o, err := tx.GetOrderForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("load order: %w", err)
		}

		if !s.transitions.CanTransition(o.Status, newStatus) {
			return fmt.Errorf("%w: %s -> %s", apperror.ErrInvalidTransition, o.Status, newStatus)
		}

		closedAt := o.ClosedAt
		if newStatus.Closing() && closedAt == nil {
			now := s.now()
			closedAt = &now
		}

		if err := tx.UpdateOrderStatus(ctx, id, newStatus, closedAt); err != nil {
			return fmt.Errorf("update order status: %w", err)
		}
		return nil
	})
	if err != nil {
		return Order{}, err
	}

	if newStatus.Closing() {
		metrics.OrdersClosedTotal.WithLabelValues(string(newStatus)).Inc()
	}
	return s.GetByID(ctx, id)
}

// AddItems appends lines with fresh price snapshots and recomputes the order
// totals over the full item set.
func (s *Service) AddItems(ctx context.Context, id uuid.UUID, inputs []ItemInput) (Order, error) {
	if len(inputs) == 0 {
		return Order{}, apperror.ErrEmptyOrder
	}

	products, err := s.catalog.FetchForOrder(ctx, productIDs(inputs))
	if err != nil {
		return Order{}, fmt.Errorf("validate products: %w", err)
	}

	err = s.repo.InTransaction(ctx, func(tx TxRepo) error {
		o, err := tx.GetOrderForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("load order: %w", err)
		}
		if o.Status.Closing() {
			return fmt.Errorf("cannot add items: %w", apperror.ErrOrderClosed)
		}

		if err := tx.CreateItems(ctx, s.buildItems(id, inputs, products)); err != nil {
			return fmt.Errorf("create order items: %w", err)
		}

		return s.recalculateTotals(ctx, tx, id)
	})
	if err != nil {
		return Order{}, err
	}

	return s.GetByID(ctx, id)
}

// GetItem returns a single order line.
func (s *Service) GetItem(ctx context.Context, itemID uuid.UUID) (Item, error) {
	item, err := s.repo.GetItem(ctx, itemID)
	if err != nil {
		return Item{}, fmt.Errorf("get order item: %w", err)
	}
	return item, nil
}

// UpdateItem patches one line. A quantity change recomputes the line subtotal
// and the owning order's totals; notes and status are independent writes.
func (s *Service) UpdateItem(ctx context.Context, itemID uuid.UUID, req UpdateItemRequest) (Item, error) {
	var updated Item
	err := s.repo.InTransaction(ctx, func(tx TxRepo) error {
		item, err := tx.GetItem(ctx, itemID)
		if err != nil {
			return fmt.Errorf("load order item: %w", err)
		}

		o, err := tx.GetOrderForUpdate(ctx, item.OrderID)
		if err != nil {
			return fmt.Errorf("load order: %w", err)
		}
		if o.Closed() {
			return fmt.Errorf("cannot update item: %w", apperror.ErrOrderClosed)
		}

		if req.Status != nil && *req.Status != item.Status {
			if !item.Status.CanBeUpdatedTo(*req.Status) {
				return fmt.Errorf("%w: %s -> %s", apperror.ErrInvalidTransition, item.Status, *req.Status)
			}
			item.Status = *req.Status
		}
		if req.Notes != nil {
			item.Notes = req.Notes
		}

		quantityChanged := req.Quantity != nil && *req.Quantity != item.Quantity
		if quantityChanged {
			item.Quantity = *req.Quantity
			item.Subtotal = s.pricer.LineSubtotal(item.UnitPrice, item.Quantity)
		}

		if err := tx.UpdateItem(ctx, item); err != nil {
			return fmt.Errorf("update order item: %w", err)
		}

		if quantityChanged {
			if err := s.recalculateTotals(ctx, tx, item.OrderID); err != nil {
				return err
			}
		}

		updated = item
		return nil
	})
	if err != nil {
		return Item{}, err
	}
	return updated, nil
}

// RemoveItem deletes a line that is not locked by kitchen progress and
// recomputes the order totals over the remaining lines.
func (s *Service) RemoveItem(ctx context.Context, itemID uuid.UUID) error {
	return s.repo.InTransaction(ctx, func(tx TxRepo) error {
		item, err := tx.GetItem(ctx, itemID)
		if err != nil {
			return fmt.Errorf("load order item: %w", err)
		}

		o, err := tx.GetOrderForUpdate(ctx, item.OrderID)
		if err != nil {
			return fmt.Errorf("load order: %w", err)
		}
		if o.Closed() {
			return fmt.Errorf("cannot remove item: %w", apperror.ErrOrderClosed)
		}
		if !item.Status.Removable() {
			return fmt.Errorf("cannot remove item: %w", apperror.ErrItemInProgress)
		}

		if err := tx.DeleteItem(ctx, itemID); err != nil {
			return fmt.Errorf("delete order item: %w", err)
		}

		return s.recalculateTotals(ctx, tx, item.OrderID)
	})
}

// Delete hard-deletes the order; items cascade with it. Deleting a paid order
// is deliberately still allowed, matching the reference behavior.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteOrder(ctx, id); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

func (s *Service) mintOrderNumber(ctx context.Context, tx TxRepo) (string, error) {
	today := s.now()
	prefix := NumberPrefix(today)

	if err := tx.AcquireNumberLock(ctx, prefix); err != nil {
		return "", fmt.Errorf("acquire number lock: %w", err)
	}

	last, err := tx.LastOrderNumber(ctx, prefix)
	if err != nil {
		return "", fmt.Errorf("last order number: %w", err)
	}

	number, err := NextNumber(today, last)
	if err != nil {
		return "", fmt.Errorf("mint order number: %w", err)
	}
	return number, nil
}

func (s *Service) buildItems(orderID uuid.UUID, inputs []ItemInput, products map[uuid.UUID]Product) []Item {
	items := make([]Item, 0, len(inputs))
	for _, input := range inputs {
		product := products[input.ProductID]
		items = append(items, Item{
			ID:        uuid.New(),
			OrderID:   orderID,
			ProductID: input.ProductID,
			Quantity:  input.Quantity,
			UnitPrice: product.Price,
			Subtotal:  s.pricer.LineSubtotal(product.Price, input.Quantity),
			Notes:     input.Notes,
			Status:    ItemStatusPending,
		})
	}
	return items
}

// recalculateTotals rewrites the money triple from the live item set. Callers
// must hold the order row lock.
func (s *Service) recalculateTotals(ctx context.Context, tx TxRepo, orderID uuid.UUID) error {
	items, err := tx.GetItems(ctx, orderID)
	if err != nil {
		return fmt.Errorf("get order items: %w", err)
	}
	if err := tx.UpdateOrderTotals(ctx, orderID, s.pricer.TotalsFor(items)); err != nil {
		return fmt.Errorf("update order totals: %w", err)
	}
	return nil
}

func productIDs(inputs []ItemInput) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(inputs))
	ids := make([]uuid.UUID, 0, len(inputs))
	for _, input := range inputs {
		if _, ok := seen[input.ProductID]; ok {
			continue
		}
		seen[input.ProductID] = struct{}{}
		ids = append(ids, input.ProductID)
	}
	return ids
}
