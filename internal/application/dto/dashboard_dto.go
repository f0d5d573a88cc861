package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatsDTO métricas del dashboard. TotalCategories y TotalUsers son siempre globales;
// el resto se calcula sobre los productos del dueño cuando se filtra por email.
type StatsDTO struct {
	TotalProducts      int             `json:"totalProducts"`
	TotalCategories    int             `json:"totalCategories"`
	TotalUsers         int             `json:"totalUsers"`
	LowStockProducts   int             `json:"lowStockProducts"`   // quantity <= 10 (incluye agotados)
	OutOfStockProducts int             `json:"outOfStockProducts"` // quantity <= 0
	TotalValue         decimal.Decimal `json:"totalValue"`         // Σ price × quantity
}

// ActivityFeedItem entrada del widget de actividad reciente.
type ActivityFeedItem struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Label     string    `json:"label"`   // ej: "Product added"
	Details   string    `json:"details"` // nombre del item o "Unknown product"
	DoneBy    string    `json:"doneBy"`
	CreatedAt time.Time `json:"createdAt"`
}
