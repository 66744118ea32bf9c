package user

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=repo_port.go -destination=mock_repo.go -package=user

type Repo interface {
	Create(ctx context.Context, u User) error
	Get(ctx context.Context, id uuid.UUID) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context, query *Query) ([]User, error)
	Update(ctx context.Context, u User) error
	Delete(ctx context.Context, id uuid.UUID) error
}
