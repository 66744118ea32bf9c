package order_repo

import (
	"context"
	"fmt"
	"testing"
	"time"

	"restopos/internal/controller/apperror"
	"restopos/internal/domain/order"
	"restopos/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testPgOrderRepo wraps the mock pool to exercise the transaction path.
type testPgOrderRepo struct {
	repo
	pool pgxmock.PgxPoolIface
	pg   *postgres.Postgres
}

func (r *testPgOrderRepo) InTransaction(ctx context.Context, fn func(repo order.TxRepo) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	txRepo := &repo{db: tx, builder: r.pg.Builder}

	if err := fn(txRepo); err != nil {
		tx.Rollback(ctx)
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

func newTestRepo(t *testing.T) (*repo, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return &repo{db: mock, builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)}, mock
}

func TestGetOrders(t *testing.T) {
	repo, mock := newTestRepo(t)
	ctx := context.Background()

	t.Run("should return orders filtered by status", func(t *testing.T) {
		orderID := uuid.New()
		userID := uuid.New()
		now := time.Now()

		query := &order.Query{Statuses: []order.Status{order.StatusOpen}}

		rows := mock.NewRows([]string{
			"id", "order_number", "status", "subtotal", "tax", "total",
			"notes", "table_id", "user_id", "closed_at", "created_at", "updated_at",
		}).AddRow(
			orderID, "ORD-20240115-001", "open",
			decimal.RequireFromString("24.98"), decimal.RequireFromString("3.00"), decimal.RequireFromString("27.98"),
			nil, nil, userID, nil, now, now,
		)

		mock.ExpectQuery(`SELECT id, order_number, status, subtotal, tax, total, notes, table_id, user_id, closed_at, created_at, updated_at FROM orders WHERE status IN \(\$1\) ORDER BY created_at DESC`).
			WithArgs(order.StatusOpen).
			WillReturnRows(rows)

		result, err := repo.GetOrders(ctx, query)

		require.NoError(t, err)
		assert.Len(t, result, 1)
		assert.Equal(t, orderID, result[0].ID)
		assert.Equal(t, "ORD-20240115-001", result[0].OrderNumber)
		assert.Equal(t, order.StatusOpen, result[0].Status)
		assert.True(t, decimal.RequireFromString("27.98").Equal(result[0].Total))
	})

	t.Run("should reject rows with unknown status", func(t *testing.T) {
		rows := mock.NewRows([]string{
			"id", "order_number", "status", "subtotal", "tax", "total",
			"notes", "table_id", "user_id", "closed_at", "created_at", "updated_at",
		}).AddRow(
			uuid.New(), "ORD-20240115-001", "shipped",
			decimal.Zero, decimal.Zero, decimal.Zero,
			nil, nil, uuid.New(), nil, time.Now(), time.Now(),
		)

		mock.ExpectQuery(`SELECT .+ FROM orders ORDER BY created_at DESC`).
			WillReturnRows(rows)

		_, err := repo.GetOrders(ctx, &order.Query{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid order row")
	})
}

func TestGetOrderForUpdate(t *testing.T) {
	repo, mock := newTestRepo(t)
	ctx := context.Background()

	t.Run("should lock the order row", func(t *testing.T) {
		orderID := uuid.New()
		userID := uuid.New()
		now := time.Now()

		rows := mock.NewRows([]string{
			"id", "order_number", "status", "subtotal", "tax", "total",
			"notes", "table_id", "user_id", "closed_at", "created_at", "updated_at",
		}).AddRow(
			orderID, "ORD-20240115-001", "open",
			decimal.Zero, decimal.Zero, decimal.Zero,
			nil, nil, userID, nil, now, now,
		)

		// squirrel passes uuid WHERE args through driver.Valuer, so the
		// statement sees the string form
		mock.ExpectQuery(`SELECT .+ FROM orders WHERE id = \$1 FOR UPDATE`).
			WithArgs(orderID.String()).
			WillReturnRows(rows)

		result, err := repo.GetOrderForUpdate(ctx, orderID)

		require.NoError(t, err)
		assert.Equal(t, orderID, result.ID)
	})

	t.Run("should map missing order to ErrOrderNotFound", func(t *testing.T) {
		orderID := uuid.New()

		mock.ExpectQuery(`SELECT .+ FROM orders WHERE id = \$1 FOR UPDATE`).
			WithArgs(orderID.String()).
			WillReturnRows(mock.NewRows([]string{"id"}))

		_, err := repo.GetOrderForUpdate(ctx, orderID)

		assert.ErrorIs(t, err, apperror.ErrOrderNotFound)
	})
}

func TestNumberMinting(t *testing.T) {
	repo, mock := newTestRepo(t)
	ctx := context.Background()

	t.Run("should take the advisory lock keyed by prefix", func(t *testing.T) {
		mock.ExpectExec(`SELECT pg_advisory_xact_lock\(hashtext\(\$1\)\)`).
			WithArgs("ORD-20240115-").
			WillReturnResult(pgxmock.NewResult("SELECT", 1))

		err := repo.AcquireNumberLock(ctx, "ORD-20240115-")

		require.NoError(t, err)
	})

	lastNumberSQL := `SELECT order_number FROM orders WHERE order_number LIKE \$1 ORDER BY length\(order_number\) DESC, order_number DESC LIMIT 1`

	t.Run("should return the highest number for the day", func(t *testing.T) {
		rows := mock.NewRows([]string{"order_number"}).AddRow("ORD-20240115-007")

		mock.ExpectQuery(lastNumberSQL).
			WithArgs("ORD-20240115-%").
			WillReturnRows(rows)

		number, err := repo.LastOrderNumber(ctx, "ORD-20240115-")

		require.NoError(t, err)
		assert.Equal(t, "ORD-20240115-007", number)
	})

	t.Run("should rank four-digit sequences above three-digit ones", func(t *testing.T) {
		// plain order_number DESC would put -999 back on top here
		rows := mock.NewRows([]string{"order_number"}).AddRow("ORD-20240115-1000")

		mock.ExpectQuery(lastNumberSQL).
			WithArgs("ORD-20240115-%").
			WillReturnRows(rows)

		number, err := repo.LastOrderNumber(ctx, "ORD-20240115-")

		require.NoError(t, err)
		assert.Equal(t, "ORD-20240115-1000", number)
	})

	t.Run("should return empty string when the day has no orders", func(t *testing.T) {
		mock.ExpectQuery(lastNumberSQL).
			WithArgs("ORD-20240115-%").
			WillReturnRows(mock.NewRows([]string{"order_number"}))

		number, err := repo.LastOrderNumber(ctx, "ORD-20240115-")

		require.NoError(t, err)
		assert.Equal(t, "", number)
	})
}

func TestCreateOrder(t *testing.T) {
	repo, mock := newTestRepo(t)
	ctx := context.Background()

	t.Run("should insert the order", func(t *testing.T) {
		o := order.Order{
			ID:          uuid.New(),
			OrderNumber: "ORD-20240115-001",
			Status:      order.StatusOpen,
			Subtotal:    decimal.RequireFromString("24.98"),
			Tax:         decimal.RequireFromString("3.00"),
			Total:       decimal.RequireFromString("27.98"),
			UserID:      uuid.New(),
		}

		mock.ExpectExec(`INSERT INTO orders \(id,order_number,status,subtotal,tax,total,notes,table_id,user_id\) VALUES \(\$1,\$2,\$3,\$4,\$5,\$6,\$7,\$8,\$9\)`).
			WithArgs(o.ID, o.OrderNumber, o.Status, o.Subtotal, o.Tax, o.Total, o.Notes, o.TableID, o.UserID).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := repo.CreateOrder(ctx, o)

		require.NoError(t, err)
	})
}

func TestUpdateOrderStatus(t *testing.T) {
	repo, mock := newTestRepo(t)
	ctx := context.Background()

	t.Run("should update status and closed_at together", func(t *testing.T) {
		orderID := uuid.New()
		closedAt := time.Now()

		mock.ExpectExec(`UPDATE orders SET status = \$1, closed_at = \$2, updated_at = now\(\) WHERE id = \$3`).
			WithArgs(order.StatusPaid, &closedAt, orderID.String()).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.UpdateOrderStatus(ctx, orderID, order.StatusPaid, &closedAt)

		require.NoError(t, err)
	})

	t.Run("should map zero affected rows to ErrOrderNotFound", func(t *testing.T) {
		orderID := uuid.New()

		mock.ExpectExec(`UPDATE orders SET status = \$1, closed_at = \$2, updated_at = now\(\) WHERE id = \$3`).
			WithArgs(order.StatusPaid, (*time.Time)(nil), orderID.String()).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := repo.UpdateOrderStatus(ctx, orderID, order.StatusPaid, nil)

		assert.ErrorIs(t, err, apperror.ErrOrderNotFound)
	})
}

func TestUpdateOrderTotals(t *testing.T) {
	repo, mock := newTestRepo(t)
	ctx := context.Background()

	t.Run("should write the money triple in one statement", func(t *testing.T) {
		orderID := uuid.New()
		totals := order.Totals{
			Subtotal: decimal.RequireFromString("31.98"),
			Tax:      decimal.RequireFromString("3.84"),
			Total:    decimal.RequireFromString("35.82"),
		}

		mock.ExpectExec(`UPDATE orders SET subtotal = \$1, tax = \$2, total = \$3, updated_at = now\(\) WHERE id = \$4`).
			WithArgs(totals.Subtotal, totals.Tax, totals.Total, orderID.String()).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.UpdateOrderTotals(ctx, orderID, totals)

		require.NoError(t, err)
	})
}

func TestOccupyTable(t *testing.T) {
	repo, mock := newTestRepo(t)
	ctx := context.Background()

	occupySQL := `UPDATE tables SET status = \$1, updated_at = now\(\) WHERE id = \$2 AND status = \$3`

	t.Run("should occupy an available table", func(t *testing.T) {
		tableID := uuid.New()

		mock.ExpectExec(occupySQL).
			WithArgs("occupied", tableID.String(), "available").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.OccupyTable(ctx, tableID)

		require.NoError(t, err)
	})

	t.Run("should report a busy table", func(t *testing.T) {
		tableID := uuid.New()

		mock.ExpectExec(occupySQL).
			WithArgs("occupied", tableID.String(), "available").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		mock.ExpectQuery(`SELECT status FROM tables WHERE id = \$1`).
			WithArgs(tableID).
			WillReturnRows(mock.NewRows([]string{"status"}).AddRow("occupied"))

		err := repo.OccupyTable(ctx, tableID)

		assert.ErrorIs(t, err, apperror.ErrTableUnavailable)
	})

	t.Run("should report a missing table", func(t *testing.T) {
		tableID := uuid.New()

		mock.ExpectExec(occupySQL).
			WithArgs("occupied", tableID.String(), "available").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		mock.ExpectQuery(`SELECT status FROM tables WHERE id = \$1`).
			WithArgs(tableID).
			WillReturnRows(mock.NewRows([]string{"status"}))

		err := repo.OccupyTable(ctx, tableID)

		assert.ErrorIs(t, err, apperror.ErrTableNotFound)
	})
}

func TestInTransaction(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	pg := &postgres.Postgres{
		Builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
	pgRepo := &testPgOrderRepo{
		repo: repo{db: mock, builder: pg.Builder},
		pool: mock,
		pg:   pg,
	}
	ctx := context.Background()

	t.Run("should commit when the function succeeds", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectCommit()

		executed := false
		err := pgRepo.InTransaction(ctx, func(repo order.TxRepo) error {
			executed = true
			assert.NotNil(t, repo)
			return nil
		})

		require.NoError(t, err)
		assert.True(t, executed)
	})

	t.Run("should rollback when the function fails", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectRollback()

		err := pgRepo.InTransaction(ctx, func(repo order.TxRepo) error {
			return assert.AnError
		})

		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("should surface begin errors", func(t *testing.T) {
		mock.ExpectBegin().WillReturnError(assert.AnError)

		err := pgRepo.InTransaction(ctx, func(repo order.TxRepo) error {
			return nil
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "begin transaction")
	})
}
