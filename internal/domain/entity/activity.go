package entity

import (
	"strings"
	"time"
)

// ActivityType es "<entidad>-<acción>".
type ActivityType string

// Tipos de actividad (producto, categoría, usuario × alta, cambio, baja).
const (
	ActivityProductAdd     ActivityType = "product-add"
	ActivityProductUpdate  ActivityType = "product-update"
	ActivityProductDelete  ActivityType = "product-delete"
	ActivityCategoryAdd    ActivityType = "category-add"
	ActivityCategoryUpdate ActivityType = "category-update"
	ActivityCategoryDelete ActivityType = "category-delete"
	ActivityUserAdd        ActivityType = "user-add"
	ActivityUserUpdate     ActivityType = "user-update"
	ActivityUserDelete     ActivityType = "user-delete"
)

// Entity devuelve la parte de entidad del tipo ("product", "category", "user").
func (t ActivityType) Entity() string {
	s := string(t)
	if i := strings.IndexByte(s, '-'); i > 0 {
		return s[:i]
	}
	return ""
}

// Activity es una entrada inmutable del registro de actividad.
// ItemID puede referirse a un registro que ya no existe.
type Activity struct {
	ID        string       `json:"id"`
	Type      ActivityType `json:"type"`
	ItemID    string       `json:"itemId"`
	DoneBy    string       `json:"doneBy"`
	CreatedAt time.Time    `json:"createdAt"`
}
