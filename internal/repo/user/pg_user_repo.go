package user_repo

import (
	"context"
	"errors"
	"fmt"

	"restopos/internal/controller/apperror"
	"restopos/internal/domain/user"
	"restopos/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const userColumns = "id, name, email, password_hash, roles, token_version, is_active, created_at, updated_at"

type PgUserRepo struct {
	pg *postgres.Postgres
}

func NewPgUserRepo(pg *postgres.Postgres) user.Repo {
	return &PgUserRepo{pg: pg}
}

func (r *PgUserRepo) Create(ctx context.Context, u user.User) error {
	query, args, err := r.pg.Builder.
		Insert("users").
		Columns("id", "name", "email", "password_hash", "roles", "is_active").
		Values(u.ID, u.Name, u.Email, u.PasswordHash, rolesToStrings(u.Roles), u.IsActive).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert user query: %w", err)
	}

	if _, err := r.pg.Pool.Exec(ctx, query, args...); err != nil {
		if postgres.IsUniqueViolation(err) {
			return fmt.Errorf("%w: email taken", apperror.ErrDuplicate)
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *PgUserRepo) Get(ctx context.Context, id uuid.UUID) (user.User, error) {
	return r.getBy(ctx, squirrel.Eq{"id": id})
}

func (r *PgUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return r.getBy(ctx, squirrel.Eq{"email": email})
}

func (r *PgUserRepo) getBy(ctx context.Context, cond squirrel.Eq) (user.User, error) {
	query, args, err := r.pg.Builder.
		Select(userColumns).
		From("users").
		Where(cond).
		ToSql()
	if err != nil {
		return user.User{}, fmt.Errorf("build user query: %w", err)
	}

	u, err := scanUser(r.pg.Pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return user.User{}, apperror.ErrUserNotFound
	}
	return u, err
}

func (r *PgUserRepo) List(ctx context.Context, q *user.Query) ([]user.User, error) {
	query := r.pg.Builder.
		Select(userColumns).
		From("users").
		OrderBy("name ASC")

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
		return nil, fmt.Errorf("build users query: %w", err)
	}

	rows, err := r.pg.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate user rows: %w", err)
	}
	return users, nil
}

func (r *PgUserRepo) Update(ctx context.Context, u user.User) error {
	query, args, err := r.pg.Builder.
		Update("users").
		Set("name", u.Name).
		Set("roles", rolesToStrings(u.Roles)).
		Set("token_version", u.TokenVersion).
		Set("is_active", u.IsActive).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": u.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update user query: %w", err)
	}

	tag, err := r.pg.Pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.ErrUserNotFound
	}
	return nil
}

func (r *PgUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := r.pg.Builder.
		Delete("users").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete user query: %w", err)
	}

	tag, err := r.pg.Pool.Exec(ctx, query, args...)
	if err != nil {
		if postgres.IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: user has orders", apperror.ErrInvalidReference)
		}
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.ErrUserNotFound
	}
	return nil
}

func scanUser(row pgx.Row) (user.User, error) {
	var (
		u        user.User
		rawRoles []string
	)
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &rawRoles,
		&u.TokenVersion, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return user.User{}, err
	}

	u.Roles = make([]user.Role, 0, len(rawRoles))
	for _, raw := range rawRoles {
		role, err := user.NewRole(raw)
		if err != nil {
			return user.User{}, fmt.Errorf("invalid role in database: %w", err)
		}
		u.Roles = append(u.Roles, role)
	}
	return u, nil
}

func rolesToStrings(roles []user.Role) []string {
	out := make([]string, len(roles))
	for i, role := range roles {
		out[i] = string(role)
	}
	return out
}
