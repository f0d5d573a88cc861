package usecase

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ihuza-inventory/internal/application/dto"
	"github.com/jhoicas/ihuza-inventory/internal/domain/entity"
	"github.com/jhoicas/ihuza-inventory/internal/domain/inventory"
)

// DefaultRecentProducts tamaño del widget "Recently Added Products".
const DefaultRecentProducts = 6

// Stats calcula las métricas del dashboard. Con ownerEmail != "" las métricas de
// producto se restringen a los productos creados por ese email; categorías y usuarios son globales.
func (uc *DataUseCase) Stats(ownerEmail string) dto.StatsDTO {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	stats := dto.StatsDTO{
		TotalCategories: len(uc.categories),
		TotalUsers:      len(uc.users),
		TotalValue:      decimal.Zero,
	}
	for i := range uc.products {
		p := &uc.products[i]
		if ownerEmail != "" && p.CreatedBy != ownerEmail {
			continue
		}
		stats.TotalProducts++
		if inventory.IsLowStock(p.Quantity) {
			stats.LowStockProducts++
		}
		if inventory.IsOutOfStock(p.Quantity) {
			stats.OutOfStockProducts++
		}
		stats.TotalValue = stats.TotalValue.Add(p.Value())
	}
	return stats
}

// DashboardStats métricas según el rol: un Admin ve el inventario completo, el resto solo sus productos.
func (uc *DataUseCase) DashboardStats(actor *entity.Session) (dto.StatsDTO, error) {
	if err := requireActor(actor); err != nil {
		return dto.StatsDTO{}, err
	}
	if actor.IsAdmin() {
		return uc.Stats(""), nil
	}
	return uc.Stats(actor.Email), nil
}

// RecentProducts productos más recientes visibles para actor (Admin: todos; resto: propios).
// limit <= 0 usa DefaultRecentProducts.
func (uc *DataUseCase) RecentProducts(actor *entity.Session, limit int) ([]dto.ProductView, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultRecentProducts
	}
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	visible := make([]*entity.Product, 0, len(uc.products))
	for i := range uc.products {
		if actor.IsAdmin() || uc.products[i].CreatedBy == actor.Email {
			visible = append(visible, &uc.products[i])
		}
	}
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].CreatedAt.After(visible[j].CreatedAt)
	})
	if len(visible) > limit {
		visible = visible[:limit]
	}
	out := make([]dto.ProductView, 0, len(visible))
	for _, p := range visible {
		out = append(out, uc.productViewLocked(p))
	}
	return out, nil
}
