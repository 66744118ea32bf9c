package table_repo

import (
	"context"
	"errors"
	"fmt"

	"restopos/internal/controller/apperror"
	"restopos/internal/domain/table"
	"restopos/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const tableColumns = "id, table_number, capacity, status, is_active, created_at, updated_at"

type PgTableRepo struct {
	pg *postgres.Postgres
}

func NewPgTableRepo(pg *postgres.Postgres) table.Repo {
	return &PgTableRepo{pg: pg}
}

func (r *PgTableRepo) Create(ctx context.Context, t table.Table) error {
	query, args, err := r.pg.Builder.
		Insert("tables").
		Columns("id", "table_number", "capacity", "status", "is_active").
		Values(t.ID, t.Number, t.Capacity, t.Status, t.IsActive).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert table query: %w", err)
	}

	if _, err := r.pg.Pool.Exec(ctx, query, args...); err != nil {
		if postgres.IsUniqueViolation(err) {
			return fmt.Errorf("%w: table number taken", apperror.ErrDuplicate)
		}
		return fmt.Errorf("create table: %w", err)
	}
	return nil
}

func (r *PgTableRepo) Get(ctx context.Context, id uuid.UUID) (table.Table, error) {
	query, args, err := r.pg.Builder.
		Select(tableColumns).
		From("tables").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return table.Table{}, fmt.Errorf("build table query: %w", err)
	}

	t, err := scanTable(r.pg.Pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return table.Table{}, apperror.ErrTableNotFound
	}
	return t, err
}

func (r *PgTableRepo) List(ctx context.Context, q *table.Query) ([]table.Table, error) {
	query := r.pg.Builder.
		Select(tableColumns).
		From("tables").
		OrderBy("table_number ASC")

	if len(q.Statuses) > 0 {
		query = query.Where(squirrel.Eq{"status": q.Statuses})
	}
	if q.ActiveOnly {
		query = query.Where(squirrel.Eq{"is_active": true})
	}
	if q.PageSize > 0 {
		page := q.PageNumber
		if page < 1 {
			page = 1
		}
		query = query.Limit(uint64(q.PageSize)).Offset(uint64((page - 1) * q.PageSize))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build tables query: %w", err)
	}

	rows, err := r.pg.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query tables: %w", err)
	}
	defer rows.Close()

	var tables []table.Table
	for rows.Next() {
		t, err := scanTable(rows)
		if err != nil {
			return nil, fmt.Errorf("scan table row: %w", err)
		}
		tables = append(tables, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate table rows: %w", err)
	}
	return tables, nil
}

func (r *PgTableRepo) Update(ctx context.Context, t table.Table) error {
	query, args, err := r.pg.Builder.
		Update("tables").
		Set("table_number", t.Number).
		Set("capacity", t.Capacity).
		Set("status", t.Status).
		Set("is_active", t.IsActive).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": t.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update table query: %w", err)
	}

	tag, err := r.pg.Pool.Exec(ctx, query, args...)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return fmt.Errorf("%w: table number taken", apperror.ErrDuplicate)
		}
		return fmt.Errorf("update table: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.ErrTableNotFound
	}
	return nil
}

func (r *PgTableRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := r.pg.Builder.
		Delete("tables").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete table query: %w", err)
	}

	tag, err := r.pg.Pool.Exec(ctx, query, args...)
	if err != nil {
		if postgres.IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: table has orders", apperror.ErrInvalidReference)
		}
		return fmt.Errorf("delete table: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.ErrTableNotFound
	}
	return nil
}

func scanTable(row pgx.Row) (table.Table, error) {
	var (
		t         table.Table
		rawStatus string
	)
	err := row.Scan(&t.ID, &t.Number, &t.Capacity, &rawStatus, &t.IsActive, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return table.Table{}, err
	}

	status, err := table.NewStatus(rawStatus)
	if err != nil {
		return table.Table{}, fmt.Errorf("invalid status in database: %w", err)
	}
	t.Status = status
	return t, nil
}
