package order

import (
	"context"
	"errors"
	"testing"
	"time"

	"restopos/internal/controller/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var testDay = time.Date(2024, 1, 15, 12, 30, 0, 0, time.UTC)

func orderService(t *testing.T) (*Service, *MockRepo, *MockCatalog) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := NewMockRepo(ctrl)
	mockCatalog := NewMockCatalog(ctrl)

	service := NewService(mockRepo, mockCatalog, NewPricer(decimal.RequireFromString("0.12")), DefaultTransitions())
	service.now = func() time.Time { return testDay }

	return service, mockRepo, mockCatalog
}

func expectTx(ctx context.Context, mockRepo *MockRepo, mockTxRepo *MockTxRepo) {
	mockRepo.EXPECT().InTransaction(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(repo TxRepo) error) error {
			return fn(mockTxRepo)
		})
}

func TestService_Create(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	userID := uuid.New()
	burgerID := uuid.New()
	colaID := uuid.New()

	products := map[uuid.UUID]Product{
		burgerID: {ID: burgerID, Name: "Burger", Price: decimal.RequireFromString("9.99"), IsAvailable: true},
		colaID:   {ID: colaID, Name: "Cola", Price: decimal.RequireFromString("5.00"), IsAvailable: true},
	}

	t.Run("should create order with snapshot prices and minted number", func(t *testing.T) {
		// given
		service, mockRepo, mockCatalog := orderService(t)
		mockTxRepo := NewMockTxRepo(gomock.NewController(t))

		tableID := uuid.New()
		req := CreateRequest{
			TableID: &tableID,
			Items: []ItemInput{
				{ProductID: burgerID, Quantity: 2},
				{ProductID: colaID, Quantity: 1},
			},
		}

		mockCatalog.EXPECT().FetchForOrder(ctx, []uuid.UUID{burgerID, colaID}).Return(products, nil)
		expectTx(ctx, mockRepo, mockTxRepo)
		mockTxRepo.EXPECT().OccupyTable(ctx, tableID).Return(nil)
		mockTxRepo.EXPECT().AcquireNumberLock(ctx, "ORD-20240115-").Return(nil)
		mockTxRepo.EXPECT().LastOrderNumber(ctx, "ORD-20240115-").Return("ORD-20240115-002", nil)

		var createdOrder Order
		mockTxRepo.EXPECT().CreateOrder(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, o Order) error {
			createdOrder = o
			return nil
		})

		var createdItems []Item
		mockTxRepo.EXPECT().CreateItems(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, items []Item) error {
			createdItems = items
			return nil
		})

		// when
		res, err := service.Create(ctx, req, userID)

		// then
		assert.NoError(t, err)
		assert.Equal(t, "ORD-20240115-003", res.OrderNumber)
		assert.Equal(t, createdOrder.ID, res.ID)

		assert.Equal(t, StatusOpen, createdOrder.Status)
		assert.Equal(t, userID, createdOrder.UserID)
		assert.Equal(t, &tableID, createdOrder.TableID)
		assert.True(t, decimal.RequireFromString("24.98").Equal(createdOrder.Subtotal), "subtotal: %s", createdOrder.Subtotal)
		assert.True(t, decimal.RequireFromString("3.00").Equal(createdOrder.Tax), "tax: %s", createdOrder.Tax)
		assert.True(t, decimal.RequireFromString("27.98").Equal(createdOrder.Total), "total: %s", createdOrder.Total)

		assert.Len(t, createdItems, 2)
		assert.Equal(t, ItemStatusPending, createdItems[0].Status)
		assert.True(t, decimal.RequireFromString("9.99").Equal(createdItems[0].UnitPrice))
		assert.True(t, decimal.RequireFromString("19.98").Equal(createdItems[0].Subtotal))
	})

	t.Run("should reject empty item list", func(t *testing.T) {
		service, _, _ := orderService(t)

		_, err := service.Create(ctx, CreateRequest{}, userID)

		assert.ErrorIs(t, err, apperror.ErrEmptyOrder)
	})

	t.Run("should fail when a product is missing", func(t *testing.T) {
		// given
		service, _, mockCatalog := orderService(t)
		req := CreateRequest{Items: []ItemInput{{ProductID: burgerID, Quantity: 1}}}

		mockCatalog.EXPECT().FetchForOrder(ctx, []uuid.UUID{burgerID}).
			Return(nil, apperror.ErrProductsNotFound)

		// when
		_, err := service.Create(ctx, req, userID)

		// then
		assert.ErrorIs(t, err, apperror.ErrProductsNotFound)
	})

	t.Run("should fail when the table is not available", func(t *testing.T) {
		// given
		service, mockRepo, mockCatalog := orderService(t)
		mockTxRepo := NewMockTxRepo(gomock.NewController(t))

		tableID := uuid.New()
		req := CreateRequest{
			TableID: &tableID,
			Items:   []ItemInput{{ProductID: burgerID, Quantity: 1}},
		}

		mockCatalog.EXPECT().FetchForOrder(ctx, []uuid.UUID{burgerID}).Return(products, nil)
		expectTx(ctx, mockRepo, mockTxRepo)
		mockTxRepo.EXPECT().OccupyTable(ctx, tableID).Return(apperror.ErrTableUnavailable)

		// when
		_, err := service.Create(ctx, req, userID)

		// then
		assert.ErrorIs(t, err, apperror.ErrTableUnavailable)
	})
}

func TestService_UpdateStatus(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	orderID := uuid.New()

	t.Run("should move open order to in_progress without closing it", func(t *testing.T) {
		// given
		service, mockRepo, _ := orderService(t)
		mockTxRepo := NewMockTxRepo(gomock.NewController(t))

		expectTx(ctx, mockRepo, mockTxRepo)
		mockTxRepo.EXPECT().GetOrderForUpdate(ctx, orderID).Return(Order{ID: orderID, Status: StatusOpen}, nil)
		mockTxRepo.EXPECT().UpdateOrderStatus(ctx, orderID, StatusInProgress, nil).Return(nil)

		mockRepo.EXPECT().GetOrderByID(ctx, orderID).Return(Order{ID: orderID, Status: StatusInProgress}, nil)
		mockRepo.EXPECT().GetItems(ctx, orderID).Return(nil, nil)

		// when
		o, err := service.UpdateStatus(ctx, orderID, StatusInProgress)

		// then
		assert.NoError(t, err)
		assert.Equal(t, StatusInProgress, o.Status)
	})

	t.Run("should stamp closed_at when the order is paid", func(t *testing.T) {
		// given
		service, mockRepo, _ := orderService(t)
		mockTxRepo := NewMockTxRepo(gomock.NewController(t))

		expectTx(ctx, mockRepo, mockTxRepo)
		mockTxRepo.EXPECT().GetOrderForUpdate(ctx, orderID).Return(Order{ID: orderID, Status: StatusDelivered}, nil)
		mockTxRepo.EXPECT().UpdateOrderStatus(ctx, orderID, StatusPaid, &testDay).Return(nil)

		mockRepo.EXPECT().GetOrderByID(ctx, orderID).Return(Order{ID: orderID, Status: StatusPaid, ClosedAt: &testDay}, nil)
		mockRepo.EXPECT().GetItems(ctx, orderID).Return(nil, nil)

		// when
		o, err := service.UpdateStatus(ctx, orderID, StatusPaid)

		// then
		assert.NoError(t, err)
		assert.Equal(t, &testDay, o.ClosedAt)
	})

	t.Run("should keep the original closed_at on cancel after close", func(t *testing.T) {
		// given
		service, mockRepo, _ := orderService(t)
		mockTxRepo := NewMockTxRepo(gomock.NewController(t))

		earlier := testDay.Add(-time.Hour)
		expectTx(ctx, mockRepo, mockTxRepo)
		mockTxRepo.EXPECT().GetOrderForUpdate(ctx, orderID).
			Return(Order{ID: orderID, Status: StatusDelivered, ClosedAt: &earlier}, nil)
		mockTxRepo.EXPECT().UpdateOrderStatus(ctx, orderID, StatusCancelled, &earlier).Return(nil)

		mockRepo.EXPECT().GetOrderByID(ctx, orderID).
			Return(Order{ID: orderID, Status: StatusCancelled, ClosedAt: &earlier}, nil)
		mockRepo.EXPECT().GetItems(ctx, orderID).Return(nil, nil)

		// when
		_, err := service.UpdateStatus(ctx, orderID, StatusCancelled)

		// then
		assert.NoError(t, err)
	})

	t.Run("should reject a transition outside the graph", func(t *testing.T) {
		// given
		service, mockRepo, _ := orderService(t)
		mockTxRepo := NewMockTxRepo(gomock.NewController(t))

		expectTx(ctx, mockRepo, mockTxRepo)
		mockTxRepo.EXPECT().GetOrderForUpdate(ctx, orderID).Return(Order{ID: orderID, Status: StatusOpen}, nil)

		// when
		_, err := service.UpdateStatus(ctx, orderID, StatusReady)

		// then
		assert.ErrorIs(t, err, apperror.ErrInvalidTransition)
		assert.EqualError(t, err, "status transition not allowed: open -> ready")
	})

	t.Run("should reject transitions out of terminal states", func(t *testing.T) {
		// given
		service, mockRepo, _ := orderService(t)
		mockTxRepo := NewMockTxRepo(gomock.NewController(t))

		expectTx(ctx, mockRepo, mockTxRepo)
		mockTxRepo.EXPECT().GetOrderForUpdate(ctx, orderID).Return(Order{ID: orderID, Status: StatusPaid}, nil)

		// when
		_, err := service.UpdateStatus(ctx, orderID, StatusCancelled)

		// then
		assert.ErrorIs(t, err, apperror.ErrInvalidTransition)
	})
}

func TestService_AddItems(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	orderID := uuid.New()
	burgerID := uuid.New()

	products := map[uuid.UUID]Product{
		burgerID: {ID: burgerID, Name: "Burger", Price: decimal.RequireFromString("9.99"), IsAvailable: true},
	}

	t.Run("should append items and recalculate totals", func(t *testing.T) {
		// given
		service, mockRepo, mockCatalog := orderService(t)
		mockTxRepo := NewMockTxRepo(gomock.NewController(t))

		inputs := []ItemInput{{ProductID: burgerID, Quantity: 2}}
		existing := Item{ID: uuid.New(), OrderID: orderID, Quantity: 1,
			UnitPrice: decimal.RequireFromString("5.00"), Subtotal: decimal.RequireFromString("5.00")}

		mockCatalog.EXPECT().FetchForOrder(ctx, []uuid.UUID{burgerID}).Return(products, nil)
		expectTx(ctx, mockRepo, mockTxRepo)
		mockTxRepo.EXPECT().GetOrderForUpdate(ctx, orderID).Return(Order{ID: orderID, Status: StatusOpen}, nil)
		mockTxRepo.EXPECT().CreateItems(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, items []Item) error {
			assert.Len(t, items, 1)
			assert.True(t, decimal.RequireFromString("19.98").Equal(items[0].Subtotal))
			return nil
		})
		mockTxRepo.EXPECT().GetItems(ctx, orderID).Return([]Item{
			existing,
			{OrderID: orderID, Quantity: 2, UnitPrice: decimal.RequireFromString("9.99"), Subtotal: decimal.RequireFromString("19.98")},
		}, nil)
		mockTxRepo.EXPECT().UpdateOrderTotals(ctx, orderID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ uuid.UUID, totals Totals) error {
				assert.True(t, decimal.RequireFromString("24.98").Equal(totals.Subtotal))
				assert.True(t, decimal.RequireFromString("3.00").Equal(totals.Tax))
				assert.True(t, decimal.RequireFromString("27.98").Equal(totals.Total))
				return nil
			})

		mockRepo.EXPECT().GetOrderByID(ctx, orderID).Return(Order{ID: orderID}, nil)
		mockRepo.EXPECT().GetItems(ctx, orderID).Return(nil, nil)

		// when
		_, err := service.AddItems(ctx, orderID, inputs)

		// then
		assert.NoError(t, err)
	})

	t.Run("should reject additions to a closed order", func(t *testing.T) {
		// given
		service, mockRepo, mockCatalog := orderService(t)
		mockTxRepo := NewMockTxRepo(gomock.NewController(t))

		mockCatalog.EXPECT().FetchForOrder(ctx, []uuid.UUID{burgerID}).Return(products, nil)
		expectTx(ctx, mockRepo, mockTxRepo)
		mockTxRepo.EXPECT().GetOrderForUpdate(ctx, orderID).Return(Order{ID: orderID, Status: StatusPaid}, nil)

		// when
		_, err := service.AddItems(ctx, orderID, []ItemInput{{ProductID: burgerID, Quantity: 1}})

		// then
		assert.ErrorIs(t, err, apperror.ErrOrderClosed)
	})

	t.Run("should reject an empty input", func(t *testing.T) {
		service, _, _ := orderService(t)

		_, err := service.AddItems(ctx, orderID, nil)

		assert.ErrorIs(t, err, apperror.ErrEmptyOrder)
	})
}

func TestService_UpdateItem(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	orderID := uuid.New()
	itemID := uuid.New()

	baseItem := Item{
		ID:        itemID,
		OrderID:   orderID,
		Quantity:  2,
		UnitPrice: decimal.RequireFromString("9.99"),
		Subtotal:  decimal.RequireFromString("19.98"),
		Status:    ItemStatusPending,
	}

	t.Run("should recompute totals on quantity change", func(t *testing.T) {
		// given
		service, mockRepo, _ := orderService(t)
		mockTxRepo := NewMockTxRepo(gomock.NewController(t))

		newQuantity := 3

		expectTx(ctx, mockRepo, mockTxRepo)
		mockTxRepo.EXPECT().GetItem(ctx, itemID).Return(baseItem, nil)
		mockTxRepo.EXPECT().GetOrderForUpdate(ctx, orderID).Return(Order{ID: orderID, Status: StatusOpen}, nil)
		mockTxRepo.EXPECT().UpdateItem(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, item Item) error {
			assert.Equal(t, 3, item.Quantity)
			assert.True(t, decimal.RequireFromString("29.97").Equal(item.Subtotal))
			return nil
		})
		mockTxRepo.EXPECT().GetItems(ctx, orderID).Return([]Item{
			{OrderID: orderID, Quantity: 3, UnitPrice: decimal.RequireFromString("9.99"), Subtotal: decimal.RequireFromString("29.97")},
		}, nil)
		mockTxRepo.EXPECT().UpdateOrderTotals(ctx, orderID, gomock.Any()).Return(nil)

		// when
		updated, err := service.UpdateItem(ctx, itemID, UpdateItemRequest{Quantity: &newQuantity})

		// then
		assert.NoError(t, err)
		assert.Equal(t, 3, updated.Quantity)
	})

	t.Run("should update notes without touching totals", func(t *testing.T) {
		// given
		service, mockRepo, _ := orderService(t)
		mockTxRepo := NewMockTxRepo(gomock.NewController(t))

		notes := "no onions"

		expectTx(ctx, mockRepo, mockTxRepo)
		mockTxRepo.EXPECT().GetItem(ctx, itemID).Return(baseItem, nil)
		mockTxRepo.EXPECT().GetOrderForUpdate(ctx, orderID).Return(Order{ID: orderID, Status: StatusOpen}, nil)
		mockTxRepo.EXPECT().UpdateItem(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, item Item) error {
			assert.Equal(t, &notes, item.Notes)
			return nil
		})

		// when
		updated, err := service.UpdateItem(ctx, itemID, UpdateItemRequest{Notes: &notes})

		// then
		assert.NoError(t, err)
		assert.Equal(t, &notes, updated.Notes)
	})

	t.Run("should reject an invalid item status transition", func(t *testing.T) {
		// given
		service, mockRepo, _ := orderService(t)
		mockTxRepo := NewMockTxRepo(gomock.NewController(t))

		served := baseItem
		served.Status = ItemStatusServed
		target := ItemStatusPending

		expectTx(ctx, mockRepo, mockTxRepo)
		mockTxRepo.EXPECT().GetItem(ctx, itemID).Return(served, nil)
		mockTxRepo.EXPECT().GetOrderForUpdate(ctx, orderID).Return(Order{ID: orderID, Status: StatusOpen}, nil)

		// when
		_, err := service.UpdateItem(ctx, itemID, UpdateItemRequest{Status: &target})

		// then
		assert.ErrorIs(t, err, apperror.ErrInvalidTransition)
	})

	t.Run("should reject updates on a closed order", func(t *testing.T) {
		// given
		service, mockRepo, _ := orderService(t)
		mockTxRepo := NewMockTxRepo(gomock.NewController(t))

		quantity := 5

		expectTx(ctx, mockRepo, mockTxRepo)
		mockTxRepo.EXPECT().GetItem(ctx, itemID).Return(baseItem, nil)
		mockTxRepo.EXPECT().GetOrderForUpdate(ctx, orderID).
			Return(Order{ID: orderID, Status: StatusPaid, ClosedAt: &testDay}, nil)

		// when
		_, err := service.UpdateItem(ctx, itemID, UpdateItemRequest{Quantity: &quantity})

		// then
		assert.ErrorIs(t, err, apperror.ErrOrderClosed)
	})
}

func TestService_RemoveItem(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	orderID := uuid.New()
	itemID := uuid.New()

	t.Run("should delete a pending item and recalculate", func(t *testing.T) {
		// given
		service, mockRepo, _ := orderService(t)
		mockTxRepo := NewMockTxRepo(gomock.NewController(t))

		expectTx(ctx, mockRepo, mockTxRepo)
		mockTxRepo.EXPECT().GetItem(ctx, itemID).
			Return(Item{ID: itemID, OrderID: orderID, Status: ItemStatusPending}, nil)
		mockTxRepo.EXPECT().GetOrderForUpdate(ctx, orderID).Return(Order{ID: orderID, Status: StatusOpen}, nil)
		mockTxRepo.EXPECT().DeleteItem(ctx, itemID).Return(nil)
		mockTxRepo.EXPECT().GetItems(ctx, orderID).Return(nil, nil)
		mockTxRepo.EXPECT().UpdateOrderTotals(ctx, orderID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ uuid.UUID, totals Totals) error {
				assert.True(t, totals.Total.IsZero())
				return nil
			})

		// when
		err := service.RemoveItem(ctx, itemID)

		// then
		assert.NoError(t, err)
	})

	t.Run("should refuse to remove an item in preparation", func(t *testing.T) {
		// given
		service, mockRepo, _ := orderService(t)
		mockTxRepo := NewMockTxRepo(gomock.NewController(t))

		expectTx(ctx, mockRepo, mockTxRepo)
		mockTxRepo.EXPECT().GetItem(ctx, itemID).
			Return(Item{ID: itemID, OrderID: orderID, Status: ItemStatusPreparing}, nil)
		mockTxRepo.EXPECT().GetOrderForUpdate(ctx, orderID).Return(Order{ID: orderID, Status: StatusInProgress}, nil)

		// when
		err := service.RemoveItem(ctx, itemID)

		// then
		assert.ErrorIs(t, err, apperror.ErrItemInProgress)
	})

	t.Run("should refuse to touch a closed order", func(t *testing.T) {
		// given
		service, mockRepo, _ := orderService(t)
		mockTxRepo := NewMockTxRepo(gomock.NewController(t))

		expectTx(ctx, mockRepo, mockTxRepo)
		mockTxRepo.EXPECT().GetItem(ctx, itemID).
			Return(Item{ID: itemID, OrderID: orderID, Status: ItemStatusPending}, nil)
		mockTxRepo.EXPECT().GetOrderForUpdate(ctx, orderID).
			Return(Order{ID: orderID, Status: StatusCancelled, ClosedAt: &testDay}, nil)

		// when
		err := service.RemoveItem(ctx, itemID)

		// then
		assert.ErrorIs(t, err, apperror.ErrOrderClosed)
	})
}

func TestService_GetByID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	orderID := uuid.New()

	t.Run("should hydrate items", func(t *testing.T) {
		// given
		service, mockRepo, _ := orderService(t)
		items := []Item{{ID: uuid.New(), OrderID: orderID}}

		mockRepo.EXPECT().GetOrderByID(ctx, orderID).Return(Order{ID: orderID}, nil)
		mockRepo.EXPECT().GetItems(ctx, orderID).Return(items, nil)

		// when
		o, err := service.GetByID(ctx, orderID)

		// then
		assert.NoError(t, err)
		assert.Equal(t, items, o.Items)
	})

	t.Run("should pass through not found", func(t *testing.T) {
		// given
		service, mockRepo, _ := orderService(t)

		mockRepo.EXPECT().GetOrderByID(ctx, orderID).Return(Order{}, apperror.ErrOrderNotFound)

		// when
		_, err := service.GetByID(ctx, orderID)

		// then
		assert.ErrorIs(t, err, apperror.ErrOrderNotFound)
	})
}

func TestService_List(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("should pass the query through", func(t *testing.T) {
		// given
		service, mockRepo, _ := orderService(t)
		query := Query{Statuses: []Status{StatusOpen}}
		orders := []Order{{ID: uuid.New(), Status: StatusOpen}}

		mockRepo.EXPECT().GetOrders(ctx, &query).Return(orders, nil)

		// when
		result, err := service.List(ctx, query)

		// then
		assert.NoError(t, err)
		assert.Equal(t, orders, result)
	})

	t.Run("should wrap repository errors", func(t *testing.T) {
		// given
		service, mockRepo, _ := orderService(t)
		query := Query{}

		mockRepo.EXPECT().GetOrders(ctx, &query).Return(nil, errors.New("database error"))

		// when
		_, err := service.List(ctx, query)

		// then
		assert.EqualError(t, err, "filter orders: database error")
	})
}
