package order_repo

import (
	"fmt"

	"restopos/internal/domain/order"

	"github.com/jackc/pgx/v5"
)

func scanOrderRow(row pgx.Row, withRefs bool) (order.Order, error) {
	var r orderRow

	dest := []any{
		&r.ID, &r.OrderNumber, &r.Status, &r.Subtotal, &r.Tax, &r.Total,
		&r.Notes, &r.TableID, &r.UserID, &r.ClosedAt, &r.CreatedAt, &r.UpdatedAt,
	}
	if withRefs {
		dest = append(dest, &r.TableNumber, &r.UserName)
	}

	if err := row.Scan(dest...); err != nil {
		return order.Order{}, err
	}

	o, err := r.toDomain()
	if err != nil {
		return order.Order{}, fmt.Errorf("invalid order row: %w", err)
	}
	return o, nil
}

func parseOrderRows(rows pgx.Rows) ([]order.Order, error) {
	defer rows.Close()

	var orders []order.Order
	for rows.Next() {
		o, err := scanOrderRow(rows, false)
		if err != nil {
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}
	return orders, nil
}

func scanItemRow(row pgx.Row) (order.Item, error) {
	var r itemRow

	err := row.Scan(&r.ID, &r.OrderID, &r.ProductID, &r.Quantity,
		&r.UnitPrice, &r.Subtotal, &r.Notes, &r.Status, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return order.Item{}, err
	}

	item, err := r.toDomain()
	if err != nil {
		return order.Item{}, fmt.Errorf("invalid order item row: %w", err)
	}
	return item, nil
}

func parseItemRows(rows pgx.Rows) ([]order.Item, error) {
	defer rows.Close()

	var items []order.Item
	for rows.Next() {
		item, err := scanItemRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order item row: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order item rows: %w", err)
	}
	return items, nil
}
