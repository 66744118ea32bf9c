package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"restopos/internal/controller/apperror"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

type Service struct {
	repo      Repo
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewService(repo Repo, jwtSecret string, tokenTTL time.Duration) *Service {
	return &Service{
		repo:      repo,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
	}
}

type tokenClaims struct {
	TokenVersion int `json:"token_version"`
	jwt.RegisteredClaims
}

// Register creates a staff account and returns it with a fresh token.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (AuthResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return AuthResponse{}, fmt.Errorf("hash password: %w", err)
	}

	roles := req.Roles
	if len(roles) == 0 {
		roles = []Role{RoleWaiter}
	}

	u := User{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		Roles:        roles,
		IsActive:     true,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return AuthResponse{}, fmt.Errorf("create user: %w", err)
	}

	created, err := s.repo.Get(ctx, u.ID)
	if err != nil {
		return AuthResponse{}, fmt.Errorf("load user: %w", err)
	}
	return s.withToken(created)
}

// Login verifies credentials and issues a token.
func (s *Service) Login(ctx context.Context, req LoginRequest) (AuthResponse, error) {
	u, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, apperror.ErrUserNotFound) {
			return AuthResponse{}, apperror.ErrInvalidCredentials
		}
		return AuthResponse{}, fmt.Errorf("load user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return AuthResponse{}, apperror.ErrInvalidCredentials
	}
	if !u.IsActive {
		return AuthResponse{}, apperror.ErrUserInactive
	}

	return s.withToken(u)
}

// Logout bumps the token version, invalidating every outstanding token.
func (s *Service) Logout(ctx context.Context, id uuid.UUID) error {
	u, err := s.repo.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("load user: %w", err)
	}
	u.TokenVersion++
	if err := s.repo.Update(ctx, u); err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// Authenticate resolves a bearer token to an active user.
func (s *Service) Authenticate(ctx context.Context, tokenString string) (User, error) {
	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return User{}, apperror.ErrInvalidToken
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return User{}, apperror.ErrInvalidToken
	}

	u, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, apperror.ErrUserNotFound) {
			return User{}, apperror.ErrInvalidToken
		}
		return User{}, fmt.Errorf("load user: %w", err)
	}

	if u.TokenVersion != claims.TokenVersion {
		return User{}, apperror.ErrInvalidToken
	}
	if !u.IsActive {
		return User{}, apperror.ErrUserInactive
	}
	return u, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (User, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, query Query) ([]User, error) {
	users, err := s.repo.List(ctx, &query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (User, error) {
	u, err := s.repo.Get(ctx, id)
	if err != nil {
		return User{}, fmt.Errorf("load user: %w", err)
	}

	if req.Name != nil {
		u.Name = *req.Name
	}
	if len(req.Roles) > 0 {
		u.Roles = req.Roles
	}
	if req.IsActive != nil {
		u.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, u); err != nil {
		return User{}, fmt.Errorf("update user: %w", err)
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func (s *Service) withToken(u User) (AuthResponse, error) {
	now := time.Now()
	claims := tokenClaims{
		TokenVersion: u.TokenVersion,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return AuthResponse{}, fmt.Errorf("sign token: %w", err)
	}
	return AuthResponse{User: u, Token: signed}, nil
}
