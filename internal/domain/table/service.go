package table

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Service struct {
	repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (Table, error) {
	t := Table{
		ID:       uuid.New(),
		Number:   req.Number,
		Capacity: req.Capacity,
		Status:   StatusAvailable,
		IsActive: true,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return Table{}, fmt.Errorf("create table: %w", err)
	}
	return s.repo.Get(ctx, t.ID)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (Table, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, query Query) ([]Table, error) {
	tables, err := s.repo.List(ctx, &query)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	return tables, nil
}

// Update patches the table record. Status here is a direct write: the
// registry does not coordinate with open orders, only order creation does
// (via its own conditional occupy).
func (s *Service) Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (Table, error) {
	t, err := s.repo.Get(ctx, id)
	if err != nil {
		return Table{}, fmt.Errorf("load table: %w", err)
	}

	if req.Number != nil {
		t.Number = *req.Number
	}
	if req.Capacity != nil {
		t.Capacity = *req.Capacity
	}
	if req.Status != nil {
		t.Status = *req.Status
	}
	if req.IsActive != nil {
		t.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, t); err != nil {
		return Table{}, fmt.Errorf("update table: %w", err)
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete table: %w", err)
	}
	return nil
}
