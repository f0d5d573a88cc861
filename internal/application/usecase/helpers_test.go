package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/ihuza-inventory/internal/application/seed"
	"github.com/jhoicas/ihuza-inventory/internal/application/usecase"
	"github.com/jhoicas/ihuza-inventory/internal/domain/entity"
	"github.com/jhoicas/ihuza-inventory/internal/infrastructure/memory"
	"github.com/jhoicas/ihuza-inventory/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var testStart = time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

var (
	adminActor = &entity.Session{ID: "u1", Name: "Ada Admin", Email: "admin@x.com", Role: entity.RoleAdmin}
	aliceActor = &entity.Session{ID: "u2", Name: "Alice Staff", Email: "alice@x.com", Role: entity.RoleStaff}
	bobActor   = &entity.Session{ID: "u3", Name: "Bob Manager", Email: "bob@x.com", Role: entity.RoleManager}
)

// testSeed estado inicial mínimo: tres usuarios y una categoría, sin productos.
func testSeed(now time.Time) seed.Data {
	return seed.Data{
		Users: []entity.User{
			{ID: "u1", Name: "Ada Admin", Email: "admin@x.com", Password: "admin123", Role: entity.RoleAdmin, Status: entity.StatusActive, CreatedAt: now},
			{ID: "u2", Name: "Alice Staff", Email: "alice@x.com", Password: "alice123", Role: entity.RoleStaff, Status: entity.StatusActive, CreatedAt: now},
			{ID: "u3", Name: "Bob Manager", Email: "bob@x.com", Password: "bob12345", Role: entity.RoleManager, Status: entity.StatusActive, CreatedAt: now},
		},
		Categories: []entity.Category{
			{ID: "c1", Name: "Tools", Description: "Hand tools", CreatedAt: now},
		},
	}
}

// tickingClock avanza un minuto por llamada para que createdAt sea estrictamente creciente.
func tickingClock() func() time.Time {
	var mu sync.Mutex
	now := testStart
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now = now.Add(time.Minute)
		return now
	}
}

func counterIDs() func() string {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func newData(t *testing.T, store *memory.SnapshotStore) *usecase.DataUseCase {
	t.Helper()
	uc := usecase.NewDataUseCase(store, logger.Nop(), usecase.DataOptions{
		BcryptCost: bcrypt.MinCost,
		Seed:       testSeed,
		Clock:      tickingClock(),
		NewID:      counterIDs(),
	})
	require.NoError(t, uc.Load(context.Background()))
	return uc
}

// failingStore falla en Set cuando failSets está activo.
type failingStore struct {
	*memory.SnapshotStore
	failSets bool
}

var errDiskFull = errors.New("disk full")

func (s *failingStore) Set(ctx context.Context, key string, value []byte) error {
	if s.failSets {
		return errDiskFull
	}
	return s.SnapshotStore.Set(ctx, key, value)
}
