package order_repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"restopos/internal/controller/apperror"
	"restopos/internal/domain/order"
	"restopos/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const orderColumns = "id, order_number, status, subtotal, tax, total, notes, table_id, user_id, closed_at, created_at, updated_at"

const itemColumns = "id, order_id, product_id, quantity, unit_price, subtotal, notes, status, created_at, updated_at"

// PgOrderRepo is the Postgres implementation of the order engine's storage port.
type PgOrderRepo struct {
	pg *postgres.Postgres
	repo
}

func NewPgOrderRepo(pg *postgres.Postgres) order.Repo {
	return &PgOrderRepo{
		pg:   pg,
		repo: repo{db: pg.Pool, builder: pg.Builder},
	}
}

func (r *PgOrderRepo) InTransaction(ctx context.Context, fn func(repo order.TxRepo) error) error {
	return r.pg.InTransaction(ctx, func(tx postgres.Executor) error {
		txRepo := &repo{db: tx, builder: r.pg.Builder}
		return fn(txRepo)
	})
}

type repo struct {
	db      postgres.Executor
	builder squirrel.StatementBuilderType
}

func (r *repo) GetOrders(ctx context.Context, query *order.Query) ([]order.Order, error) {
	sql, args := r.buildOrdersQuery(query)
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}

	return parseOrderRows(rows)
}

func (r *repo) GetOrderByID(ctx context.Context, id uuid.UUID) (order.Order, error) {
	query, args, err := r.builder.
		Select(
			"o.id", "o.order_number", "o.status", "o.subtotal", "o.tax", "o.total",
			"o.notes", "o.table_id", "o.user_id", "o.closed_at", "o.created_at", "o.updated_at",
			"t.table_number", "u.name",
		).
		From("orders o").
		LeftJoin("tables t ON t.id = o.table_id").
		LeftJoin("users u ON u.id = o.user_id").
		Where(squirrel.Eq{"o.id": id}).
		ToSql()
	if err != nil {
		return order.Order{}, fmt.Errorf("build order query: %w", err)
	}

	o, err := scanOrderRow(r.db.QueryRow(ctx, query, args...), true)
	if errors.Is(err, pgx.ErrNoRows) {
		return order.Order{}, apperror.ErrOrderNotFound
	}
	return o, err
}

func (r *repo) GetOrderForUpdate(ctx context.Context, id uuid.UUID) (order.Order, error) {
	query, args, err := r.builder.
		Select(orderColumns).
		From("orders").
		Where(squirrel.Eq{"id": id}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return order.Order{}, fmt.Errorf("build order lock query: %w", err)
	}

	o, err := scanOrderRow(r.db.QueryRow(ctx, query, args...), false)
	if errors.Is(err, pgx.ErrNoRows) {
		return order.Order{}, apperror.ErrOrderNotFound
	}
	return o, err
}

func (r *repo) GetItems(ctx context.Context, orderID uuid.UUID) ([]order.Item, error) {
	query, args, err := r.builder.
		Select(itemColumns).
		From("order_items").
		Where(squirrel.Eq{"order_id": orderID}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build items query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query order items: %w", err)
	}

	return parseItemRows(rows)
}

func (r *repo) GetItem(ctx context.Context, id uuid.UUID) (order.Item, error) {
	query, args, err := r.builder.
		Select(itemColumns).
		From("order_items").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return order.Item{}, fmt.Errorf("build item query: %w", err)
	}

	item, err := scanItemRow(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return order.Item{}, apperror.ErrOrderItemNotFound
	}
	return item, err
}

// AcquireNumberLock takes a transaction-scoped advisory lock keyed by the
// day prefix, so same-day creations mint numbers one at a time.
func (r *repo) AcquireNumberLock(ctx context.Context, prefix string) error {
	if _, err := r.db.Exec(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", prefix); err != nil {
		return fmt.Errorf("advisory lock: %w", err)
	}
	return nil
}

func (r *repo) LastOrderNumber(ctx context.Context, prefix string) (string, error) {
	query, args, err := r.builder.
		Select("order_number").
		From("orders").
		Where(squirrel.Like{"order_number": prefix + "%"}).
		// length first, so ORD-...-1000 outranks ORD-...-999
		OrderBy("length(order_number) DESC", "order_number DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("build last number query: %w", err)
	}

	var number string
	err = r.db.QueryRow(ctx, query, args...).Scan(&number)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("query last order number: %w", err)
	}
	return number, nil
}

func (r *repo) CreateOrder(ctx context.Context, o order.Order) error {
	query, args, err := r.builder.
		Insert("orders").
		Columns("id", "order_number", "status", "subtotal", "tax", "total", "notes", "table_id", "user_id").
		Values(o.ID, o.OrderNumber, o.Status, o.Subtotal, o.Tax, o.Total, o.Notes, o.TableID, o.UserID).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert order query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return translateError(err)
	}
	return nil
}

func (r *repo) CreateItems(ctx context.Context, items []order.Item) error {
	if len(items) == 0 {
		return nil
	}

	builder := r.builder.
		Insert("order_items").
		Columns("id", "order_id", "product_id", "quantity", "unit_price", "subtotal", "notes", "status")
	for _, item := range items {
		builder = builder.Values(item.ID, item.OrderID, item.ProductID, item.Quantity,
			item.UnitPrice, item.Subtotal, item.Notes, item.Status)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("build insert items query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return translateError(err)
	}
	return nil
}

func (r *repo) UpdateOrderNotes(ctx context.Context, id uuid.UUID, notes *string) error {
	query, args, err := r.builder.
		Update("orders").
		Set("notes", notes).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update notes query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.ErrOrderNotFound
	}
	return nil
}

func (r *repo) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status order.Status, closedAt *time.Time) error {
	query, args, err := r.builder.
		Update("orders").
		Set("status", status).
		Set("closed_at", closedAt).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update status query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.ErrOrderNotFound
	}
	return nil
}

// UpdateOrderTotals writes the money triple in one statement; the three
// fields are never updated individually.
func (r *repo) UpdateOrderTotals(ctx context.Context, id uuid.UUID, totals order.Totals) error {
	query, args, err := r.builder.
		Update("orders").
		Set("subtotal", totals.Subtotal).
		Set("tax", totals.Tax).
		Set("total", totals.Total).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update totals query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.ErrOrderNotFound
	}
	return nil
}

func (r *repo) UpdateItem(ctx context.Context, item order.Item) error {
	query, args, err := r.builder.
		Update("order_items").
		Set("quantity", item.Quantity).
		Set("subtotal", item.Subtotal).
		Set("notes", item.Notes).
		Set("status", item.Status).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": item.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update item query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.ErrOrderItemNotFound
	}
	return nil
}

func (r *repo) DeleteItem(ctx context.Context, id uuid.UUID) error {
	query, args, err := r.builder.
		Delete("order_items").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete item query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete order item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.ErrOrderItemNotFound
	}
	return nil
}

// DeleteOrder hard-deletes; items cascade via FK.
func (r *repo) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	query, args, err := r.builder.
		Delete("orders").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete order query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.ErrOrderNotFound
	}
	return nil
}

// OccupyTable is a conditional update: it succeeds only while the table is
// available, so availability check and transition are one atomic step.
func (r *repo) OccupyTable(ctx context.Context, tableID uuid.UUID) error {
	query, args, err := r.builder.
		Update("tables").
		Set("status", "occupied").
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": tableID, "status": "available"}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build occupy table query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("occupy table: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	// Zero rows: distinguish a missing table from a busy one.
	var status string
	err = r.db.QueryRow(ctx, "SELECT status FROM tables WHERE id = $1", tableID).Scan(&status)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperror.ErrTableNotFound
	}
	if err != nil {
		return fmt.Errorf("check table status: %w", err)
	}
	return apperror.ErrTableUnavailable
}

func (r *repo) buildOrdersQuery(q *order.Query) (string, []any) {
	query := r.builder.
		Select(orderColumns).
		From("orders")

	if len(q.IDs) > 0 {
		query = query.Where(squirrel.Eq{"id": q.IDs})
	}
	if len(q.TableIDs) > 0 {
		query = query.Where(squirrel.Eq{"table_id": q.TableIDs})
	}
	if len(q.UserIDs) > 0 {
		query = query.Where(squirrel.Eq{"user_id": q.UserIDs})
	}
	if len(q.Statuses) > 0 {
		query = query.Where(squirrel.Eq{"status": q.Statuses})
	}

	if q.SortBy != nil && q.SortOrder != nil {
		query = query.OrderBy(fmt.Sprintf("%s %s", *q.SortBy, *q.SortOrder))
	} else {
		query = query.OrderBy("created_at DESC")
	}

	if q.Pagination != nil {
		page := q.Pagination.PageNumber
		if page < 1 {
			page = 1
		}
		offset := (page - 1) * q.Pagination.PageSize
		query = query.Limit(uint64(q.Pagination.PageSize)).Offset(uint64(offset))
	}

	sql, args, _ := query.ToSql()
	return sql, args
}

// translateError maps storage constraint failures onto the business taxonomy
// so handlers surface them as bad requests instead of opaque 500s.
func translateError(err error) error {
	switch {
	case postgres.IsUniqueViolation(err):
		return fmt.Errorf("%w: %s", apperror.ErrDuplicate, err.Error())
	case postgres.IsForeignKeyViolation(err):
		return fmt.Errorf("%w: %s", apperror.ErrInvalidReference, err.Error())
	default:
		return err
	}
}
