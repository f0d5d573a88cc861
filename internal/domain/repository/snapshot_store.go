package repository

import "context"

// Claves de los snapshots persistidos.
const (
	KeyUsers      = "ihuza-users"
	KeyProducts   = "ihuza-products"
	KeyCategories = "ihuza-categories"
	KeyActivities = "ihuza-activities"
	KeySession    = "ihuza-auth"
	KeyTheme      = "ihuza-theme"
)

// SnapshotStore define el puerto de persistencia clave-valor (DIP).
// Los valores son snapshots serializados opacos; el adaptador no los interpreta.
type SnapshotStore interface {
	// Get devuelve found=false si la clave no existe.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	// Remove no falla si la clave no existe.
	Remove(ctx context.Context, key string) error
}
