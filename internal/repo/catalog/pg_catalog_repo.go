package catalog_repo

import (
	"context"
	"errors"
	"fmt"

	"restopos/internal/controller/apperror"
	"restopos/internal/domain/catalog"
	"restopos/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const categoryColumns = "id, name, description, is_active, created_at, updated_at"

const productColumns = "id, name, description, price, image_url, is_available, category_id, created_at, updated_at"

type PgCatalogRepo struct {
	pg *postgres.Postgres
}

func NewPgCatalogRepo(pg *postgres.Postgres) catalog.Repo {
	return &PgCatalogRepo{pg: pg}
}

func (r *PgCatalogRepo) CreateCategory(ctx context.Context, c catalog.Category) error {
	query, args, err := r.pg.Builder.
		Insert("categories").
		Columns("id", "name", "description", "is_active").
		Values(c.ID, c.Name, c.Description, c.IsActive).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert category query: %w", err)
	}

	if _, err := r.pg.Pool.Exec(ctx, query, args...); err != nil {
		return translateError(err)
	}
	return nil
}

func (r *PgCatalogRepo) GetCategory(ctx context.Context, id uuid.UUID) (catalog.Category, error) {
	query, args, err := r.pg.Builder.
		Select(categoryColumns).
		From("categories").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return catalog.Category{}, fmt.Errorf("build category query: %w", err)
	}

	c, err := scanCategory(r.pg.Pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return catalog.Category{}, apperror.ErrCategoryNotFound
	}
	return c, err
}

func (r *PgCatalogRepo) GetCategories(ctx context.Context, q *catalog.CategoryQuery) ([]catalog.Category, error) {
	query := r.pg.Builder.
		Select(categoryColumns).
		From("categories").
		OrderBy("name ASC")

	if q.ActiveOnly {
		query = query.Where(squirrel.Eq{"is_active": true})
	}
	query = paginate(query, q.PageSize, q.PageNumber)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build categories query: %w", err)
	}

	rows, err := r.pg.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	var categories []catalog.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category row: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate category rows: %w", err)
	}
	return categories, nil
}

func (r *PgCatalogRepo) UpdateCategory(ctx context.Context, c catalog.Category) error {
	query, args, err := r.pg.Builder.
		Update("categories").
		Set("name", c.Name).
		Set("description", c.Description).
		Set("is_active", c.IsActive).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": c.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update category query: %w", err)
	}

	tag, err := r.pg.Pool.Exec(ctx, query, args...)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.ErrCategoryNotFound
	}
	return nil
}

func (r *PgCatalogRepo) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	query, args, err := r.pg.Builder.
		Delete("categories").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete category query: %w", err)
	}

	tag, err := r.pg.Pool.Exec(ctx, query, args...)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.ErrCategoryNotFound
	}
	return nil
}

func (r *PgCatalogRepo) CreateProduct(ctx context.Context, p catalog.Product) error {
	query, args, err := r.pg.Builder.
		Insert("products").
		Columns("id", "name", "description", "price", "image_url", "is_available", "category_id").
		Values(p.ID, p.Name, p.Description, p.Price, p.ImageURL, p.IsAvailable, p.CategoryID).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert product query: %w", err)
	}

	if _, err := r.pg.Pool.Exec(ctx, query, args...); err != nil {
		return translateError(err)
	}
	return nil
}

func (r *PgCatalogRepo) GetProduct(ctx context.Context, id uuid.UUID) (catalog.Product, error) {
	query, args, err := r.pg.Builder.
		Select(productColumns).
		From("products").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return catalog.Product{}, fmt.Errorf("build product query: %w", err)
	}

	p, err := scanProduct(r.pg.Pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return catalog.Product{}, apperror.ErrProductNotFound
	}
	return p, err
}

func (r *PgCatalogRepo) GetProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Product, error) {
	query, args, err := r.pg.Builder.
		Select(productColumns).
		From("products").
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build products batch query: %w", err)
	}

	rows, err := r.pg.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query products batch: %w", err)
	}
	return parseProductRows(rows)
}

func (r *PgCatalogRepo) GetProducts(ctx context.Context, q *catalog.ProductQuery) ([]catalog.Product, error) {
	query := r.pg.Builder.
		Select(productColumns).
		From("products").
		OrderBy("name ASC")

	if len(q.CategoryIDs) > 0 {
		query = query.Where(squirrel.Eq{"category_id": q.CategoryIDs})
	}
	if q.Available != nil {
		query = query.Where(squirrel.Eq{"is_available": *q.Available})
	}
	if q.Search != "" {
		query = query.Where(squirrel.ILike{"name": "%" + q.Search + "%"})
	}
	query = paginate(query, q.PageSize, q.PageNumber)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build products query: %w", err)
	}

	rows, err := r.pg.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	return parseProductRows(rows)
}

func (r *PgCatalogRepo) UpdateProduct(ctx context.Context, p catalog.Product) error {
	query, args, err := r.pg.Builder.
		Update("products").
		Set("name", p.Name).
		Set("description", p.Description).
		Set("price", p.Price).
		Set("image_url", p.ImageURL).
		Set("is_available", p.IsAvailable).
		Set("category_id", p.CategoryID).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": p.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update product query: %w", err)
	}

	tag, err := r.pg.Pool.Exec(ctx, query, args...)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.ErrProductNotFound
	}
	return nil
}

func (r *PgCatalogRepo) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	query, args, err := r.pg.Builder.
		Delete("products").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete product query: %w", err)
	}

	tag, err := r.pg.Pool.Exec(ctx, query, args...)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.ErrProductNotFound
	}
	return nil
}

func scanCategory(row pgx.Row) (catalog.Category, error) {
	var c catalog.Category
	err := row.Scan(&c.ID, &c.Name, &c.Description, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func scanProduct(row pgx.Row) (catalog.Product, error) {
	var (
		p     catalog.Product
		price decimal.Decimal
	)
	err := row.Scan(&p.ID, &p.Name, &p.Description, &price, &p.ImageURL,
		&p.IsAvailable, &p.CategoryID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return catalog.Product{}, err
	}
	p.Price = price
	return p, nil
}

func parseProductRows(rows pgx.Rows) ([]catalog.Product, error) {
	defer rows.Close()

	var products []catalog.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate product rows: %w", err)
	}
	return products, nil
}

func paginate(query squirrel.SelectBuilder, pageSize, pageNumber int) squirrel.SelectBuilder {
	if pageSize <= 0 {
		return query
	}
	if pageNumber < 1 {
		pageNumber = 1
	}
	return query.Limit(uint64(pageSize)).Offset(uint64((pageNumber - 1) * pageSize))
}

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
