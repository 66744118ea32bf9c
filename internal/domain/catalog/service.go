package catalog

import (
	"context"
	"fmt"
	"strings"

	"restopos/internal/controller/apperror"
	"restopos/internal/domain/order"

	"github.com/google/uuid"
)

type Service struct {
	repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{repo: repo}
}

// FetchForOrder implements the order engine's validation port: resolve all
// ids in one batch, reject missing ids by id and unavailable products by name.
func (s *Service) FetchForOrder(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]order.Product, error) {
	products, err := s.repo.GetProductsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}

	found := make(map[uuid.UUID]order.Product, len(products))
	for _, p := range products {
		found[p.ID] = order.Product{
			ID:          p.ID,
			Name:        p.Name,
			Price:       p.Price,
			IsAvailable: p.IsAvailable,
		}
	}

	var missing []string
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			missing = append(missing, id.String())
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", apperror.ErrProductsNotFound, strings.Join(missing, ", "))
	}

	var unavailable []string
	for _, p := range products {
		if !p.IsAvailable {
			unavailable = append(unavailable, p.Name)
		}
	}
	if len(unavailable) > 0 {
		return nil, fmt.Errorf("%w: %s", apperror.ErrProductsUnavailable, strings.Join(unavailable, ", "))
	}

	return found, nil
}

func (s *Service) CreateCategory(ctx context.Context, req CreateCategoryRequest) (Category, error) {
	c := Category{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
	}
	if err := s.repo.CreateCategory(ctx, c); err != nil {
		return Category{}, fmt.Errorf("create category: %w", err)
	}
	return s.repo.GetCategory(ctx, c.ID)
}

func (s *Service) GetCategory(ctx context.Context, id uuid.UUID) (Category, error) {
	return s.repo.GetCategory(ctx, id)
}

func (s *Service) ListCategories(ctx context.Context, query CategoryQuery) ([]Category, error) {
	categories, err := s.repo.GetCategories(ctx, &query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (s *Service) UpdateCategory(ctx context.Context, id uuid.UUID, req UpdateCategoryRequest) (Category, error) {
	c, err := s.repo.GetCategory(ctx, id)
	if err != nil {
		return Category{}, fmt.Errorf("load category: %w", err)
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Description != nil {
		c.Description = req.Description
	}
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}

	if err := s.repo.UpdateCategory(ctx, c); err != nil {
		return Category{}, fmt.Errorf("update category: %w", err)
	}
	return s.repo.GetCategory(ctx, id)
}

func (s *Service) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteCategory(ctx, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

func (s *Service) CreateProduct(ctx context.Context, req CreateProductRequest) (Product, error) {
	if _, err := s.repo.GetCategory(ctx, req.CategoryID); err != nil {
		return Product{}, fmt.Errorf("load category: %w", err)
	}

	p := Product{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		IsAvailable: true,
		CategoryID:  req.CategoryID,
	}
	if err := s.repo.CreateProduct(ctx, p); err != nil {
		return Product{}, fmt.Errorf("create product: %w", err)
	}
	return s.repo.GetProduct(ctx, p.ID)
}

func (s *Service) GetProduct(ctx context.Context, id uuid.UUID) (Product, error) {
	return s.repo.GetProduct(ctx, id)
}

func (s *Service) ListProducts(ctx context.Context, query ProductQuery) ([]Product, error) {
	products, err := s.repo.GetProducts(ctx, &query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (s *Service) UpdateProduct(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (Product, error) {
	p, err := s.repo.GetProduct(ctx, id)
	if err != nil {
		return Product{}, fmt.Errorf("load product: %w", err)
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = req.Description
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.ImageURL != nil {
		p.ImageURL = req.ImageURL
	}
	if req.IsAvailable != nil {
		p.IsAvailable = *req.IsAvailable
	}
	if req.CategoryID != nil {
		if _, err := s.repo.GetCategory(ctx, *req.CategoryID); err != nil {
			return Product{}, fmt.Errorf("load category: %w", err)
		}
		p.CategoryID = *req.CategoryID
	}

	if err := s.repo.UpdateProduct(ctx, p); err != nil {
		return Product{}, fmt.Errorf("update product: %w", err)
	}
	return s.repo.GetProduct(ctx, id)
}

func (s *Service) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteProduct(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
