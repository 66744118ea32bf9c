package table

import (
	"context"

	"github.com/google/uuid"
)

type Repo interface {
	Create(ctx context.Context, t Table) error
	Get(ctx context.Context, id uuid.UUID) (Table, error)
	List(ctx context.Context, query *Query) ([]Table, error)
	Update(ctx context.Context, t Table) error
	Delete(ctx context.Context, id uuid.UUID) error
}
