// Package catalog holds the menu: categories and products. The order engine
// only reads it, through the FetchForOrder port.
package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Category struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Product struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    *string         `json:"image_url,omitempty"`
	IsAvailable bool            `json:"is_available"`
	CategoryID  uuid.UUID       `json:"category_id"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type CreateCategoryRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=100"`
	Description *string `json:"description,omitempty"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

type CreateProductRequest struct {
	Name        string          `json:"name" binding:"required,min=1,max=150"`
	Description *string         `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	ImageURL    *string         `json:"image_url,omitempty"`
	CategoryID  uuid.UUID       `json:"category_id" binding:"required"`
}

type UpdateProductRequest struct {
	Name        *string          `json:"name,omitempty" binding:"omitempty,min=1,max=150"`
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	ImageURL    *string          `json:"image_url,omitempty"`
	IsAvailable *bool            `json:"is_available,omitempty"`
	CategoryID  *uuid.UUID       `json:"category_id,omitempty"`
}

// ProductQuery filters the product list.
type ProductQuery struct {
	CategoryIDs []uuid.UUID
	Available   *bool
	Search      string
	PageSize    int
	PageNumber  int
}

// CategoryQuery filters the category list.
type CategoryQuery struct {
	ActiveOnly bool
	PageSize   int
	PageNumber int
}
