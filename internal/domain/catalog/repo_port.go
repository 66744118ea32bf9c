package catalog

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=repo_port.go -destination=mock_repo.go -package=catalog

type Repo interface {
	CreateCategory(ctx context.Context, c Category) error
	GetCategory(ctx context.Context, id uuid.UUID) (Category, error)
	GetCategories(ctx context.Context, query *CategoryQuery) ([]Category, error)
	UpdateCategory(ctx context.Context, c Category) error
	DeleteCategory(ctx context.Context, id uuid.UUID) error

	CreateProduct(ctx context.Context, p Product) error
	GetProduct(ctx context.Context, id uuid.UUID) (Product, error)
	// GetProductsByIDs resolves an id batch; missing ids are simply absent
	// from the result.
	GetProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]Product, error)
	GetProducts(ctx context.Context, query *ProductQuery) ([]Product, error)
	UpdateProduct(ctx context.Context, p Product) error
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}
