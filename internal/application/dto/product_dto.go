package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name       string          `json:"name" validate:"required,min=2"`
	CategoryID string          `json:"categoryId" validate:"required"`
	Quantity   int             `json:"quantity" validate:"min=0"`
	Price      decimal.Decimal `json:"price" validate:"min=0"`
}

// UpdateProductRequest actualización parcial; nil = sin cambio. CreatedBy no es modificable.
type UpdateProductRequest struct {
	Name       *string          `json:"name,omitempty" validate:"omitnil,min=2"`
	CategoryID *string          `json:"categoryId,omitempty" validate:"omitnil,min=1"`
	Quantity   *int             `json:"quantity,omitempty" validate:"omitnil,min=0"`
	Price      *decimal.Decimal `json:"price,omitempty" validate:"omitnil,min=0"`
}

// ProductView producto con el nombre de su categoría y su estado de stock (listados y dashboard).
type ProductView struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	CategoryID   string          `json:"categoryId"`
	CategoryName string          `json:"category"`
	Quantity     int             `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
	StockStatus  string          `json:"stockStatus"`
	CreatedAt    time.Time       `json:"createdAt"`
	CreatedBy    string          `json:"createdBy"`
}
