package usecase

import (
	"github.com/jhoicas/ihuza-inventory/internal/application/dto"
	"github.com/jhoicas/ihuza-inventory/internal/domain/entity"
)

// DefaultRecentActivities tamaño del widget "Recent Activities".
const DefaultRecentActivities = 4

var activityLabels = map[entity.ActivityType]string{
	entity.ActivityProductAdd:     "Product added",
	entity.ActivityProductUpdate:  "Product updated",
	entity.ActivityProductDelete:  "Product deleted",
	entity.ActivityCategoryAdd:    "Category added",
	entity.ActivityCategoryUpdate: "Category updated",
	entity.ActivityCategoryDelete: "Category deleted",
	entity.ActivityUserAdd:        "User added",
	entity.ActivityUserUpdate:     "User updated",
	entity.ActivityUserDelete:     "User deleted",
}

// ActivityLabel texto visible de un tipo de actividad.
func ActivityLabel(t entity.ActivityType) string {
	if l, ok := activityLabels[t]; ok {
		return l
	}
	return "Unknown activity"
}

// Activities devuelve una copia del registro (más reciente primero).
func (uc *DataUseCase) Activities() []entity.Activity {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return append([]entity.Activity(nil), uc.activities...)
}

// RecentActivity feed de actividad: un Admin ve todo, el resto solo lo que hizo.
// limit <= 0 usa DefaultRecentActivities.
func (uc *DataUseCase) RecentActivity(actor *entity.Session, limit int) ([]dto.ActivityFeedItem, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultRecentActivities
	}
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	out := make([]dto.ActivityFeedItem, 0, limit)
	for _, a := range uc.activities {
		if len(out) == limit {
			break
		}
		if !actor.IsAdmin() && a.DoneBy != actor.Email {
			continue
		}
		out = append(out, dto.ActivityFeedItem{
			ID:        a.ID,
			Type:      string(a.Type),
			Label:     ActivityLabel(a.Type),
			Details:   uc.itemNameLocked(a),
			DoneBy:    a.DoneBy,
			CreatedAt: a.CreatedAt,
		})
	}
	return out, nil
}

// itemNameLocked resuelve el nombre del registro afectado; puede haber sido eliminado.
func (uc *DataUseCase) itemNameLocked(a entity.Activity) string {
	switch a.Type.Entity() {
	case "product":
		if i := uc.productIndexLocked(a.ItemID); i >= 0 {
			return uc.products[i].Name
		}
		return "Unknown product"
	case "category":
		if i := uc.categoryIndexLocked(a.ItemID); i >= 0 {
			return uc.categories[i].Name
		}
		return "Unknown category"
	case "user":
		if i := uc.userIndexLocked(a.ItemID); i >= 0 {
			return uc.users[i].Name
		}
		return "Unknown user"
	}
	return "Unknown item"
}
