package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/cases"

	"github.com/jhoicas/ihuza-inventory/internal/application/seed"
	"github.com/jhoicas/ihuza-inventory/internal/domain"
	"github.com/jhoicas/ihuza-inventory/internal/domain/entity"
	"github.com/jhoicas/ihuza-inventory/internal/domain/repository"
	"github.com/jhoicas/ihuza-inventory/pkg/logger"
)

// DataOptions parámetros opcionales de DataUseCase.
type DataOptions struct {
	BcryptCost int                       // 0 = bcrypt.DefaultCost
	Seed       func(time.Time) seed.Data // nil = seed.Default
	Clock      func() time.Time          // nil = time.Now en UTC
	NewID      func() string             // nil = UUID v4
}

// DataUseCase es el dueño exclusivo de las colecciones Products, Categories, Users y Activities.
// Cada operación de escritura valida, muta la memoria, registra una actividad y
// guarda explícitamente los snapshots afectados.
type DataUseCase struct {
	store repository.SnapshotStore
	log   *logger.Logger
	opts  DataOptions

	mu         sync.RWMutex
	products   []entity.Product
	categories []entity.Category
	users      []entity.User
	activities []entity.Activity
}

// NewDataUseCase construye el caso de uso con el puerto de persistencia. Llamar Load antes de usarlo.
func NewDataUseCase(store repository.SnapshotStore, log *logger.Logger, opts DataOptions) *DataUseCase {
	if opts.BcryptCost == 0 {
		opts.BcryptCost = bcrypt.DefaultCost
	}
	if opts.Seed == nil {
		opts.Seed = seed.Default
	}
	if opts.Clock == nil {
		opts.Clock = func() time.Time { return time.Now().UTC() }
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	if log == nil {
		log = logger.Nop()
	}
	return &DataUseCase{store: store, log: log.Component("data"), opts: opts}
}

// Load hidrata las cuatro colecciones desde el store. Las colecciones ausentes se
// siembran y se guardan de inmediato. Un snapshot ilegible es un error inesperado.
func (uc *DataUseCase) Load(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	initial := uc.opts.Seed(uc.opts.Clock())
	var seeded []string

	users, fromSeed, err := loadCollection(ctx, uc.store, repository.KeyUsers, initial.Users)
	if err != nil {
		return err
	}
	if fromSeed {
		if err := uc.hashSeedPasswords(users); err != nil {
			return err
		}
		seeded = append(seeded, repository.KeyUsers)
	}

	products, fromSeed, err := loadCollection(ctx, uc.store, repository.KeyProducts, initial.Products)
	if err != nil {
		return err
	}
	if fromSeed {
		seeded = append(seeded, repository.KeyProducts)
	}

	categories, fromSeed, err := loadCollection(ctx, uc.store, repository.KeyCategories, initial.Categories)
	if err != nil {
		return err
	}
	if fromSeed {
		seeded = append(seeded, repository.KeyCategories)
	}

	activities, fromSeed, err := loadCollection(ctx, uc.store, repository.KeyActivities, initial.Activities)
	if err != nil {
		return err
	}
	if fromSeed {
		seeded = append(seeded, repository.KeyActivities)
	}

	uc.users, uc.products, uc.categories, uc.activities = users, products, categories, activities
	if len(seeded) > 0 {
		uc.log.Info().Strs("keys", seeded).Msg("colecciones sembradas")
		if err := uc.saveLocked(ctx, seeded...); err != nil {
			return err
		}
	}
	uc.log.Debug().
		Int("products", len(products)).
		Int("categories", len(categories)).
		Int("users", len(users)).
		Int("activities", len(activities)).
		Msg("colecciones cargadas")
	return nil
}

// Reset reemplaza todas las colecciones por los datos semilla (comando seed --reset).
// La memoria se reconstruye primero y luego se sobrescribe cada snapshot.
func (uc *DataUseCase) Reset(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	initial := uc.opts.Seed(uc.opts.Clock())
	users := append([]entity.User{}, initial.Users...)
	if err := uc.hashSeedPasswords(users); err != nil {
		return err
	}
	uc.users = users
	uc.products = append([]entity.Product{}, initial.Products...)
	uc.categories = append([]entity.Category{}, initial.Categories...)
	uc.activities = append([]entity.Activity{}, initial.Activities...)

	if err := uc.saveLocked(ctx, repository.KeyUsers, repository.KeyProducts, repository.KeyCategories, repository.KeyActivities); err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	uc.log.Info().Msg("colecciones restauradas desde la semilla")
	return nil
}

func (uc *DataUseCase) hashSeedPasswords(users []entity.User) error {
	for i := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(users[i].Password), uc.opts.BcryptCost)
		if err != nil {
			return fmt.Errorf("hashear password semilla: %w", err)
		}
		users[i].Password = string(hash)
	}
	return nil
}

func loadCollection[T any](ctx context.Context, store repository.SnapshotStore, key string, fallback []T) ([]T, bool, error) {
	raw, found, err := store.Get(ctx, key)
	if err != nil {
		return nil, false, fmt.Errorf("leer snapshot %s: %w", key, err)
	}
	if !found {
		items := make([]T, len(fallback))
		copy(items, fallback)
		return items, true, nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false, fmt.Errorf("snapshot %s corrupto: %w", key, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, false, nil
}

// saveLocked serializa y guarda las colecciones indicadas. Requiere uc.mu tomado.
// Una colección vacía también se guarda ("[]") para que un borrado del último elemento persista.
func (uc *DataUseCase) saveLocked(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		var v interface{}
		switch key {
		case repository.KeyUsers:
			v = uc.users
		case repository.KeyProducts:
			v = uc.products
		case repository.KeyCategories:
			v = uc.categories
		case repository.KeyActivities:
			v = uc.activities
		default:
			return fmt.Errorf("clave de colección desconocida: %s", key)
		}
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("serializar %s: %w", key, err)
		}
		if err := uc.store.Set(ctx, key, raw); err != nil {
			uc.log.Error().Err(err).Str("key", key).Msg("guardar snapshot")
			return fmt.Errorf("guardar %s: %w", key, err)
		}
	}
	return nil
}

// commitLocked registra la actividad de una mutación ya aplicada en memoria y guarda
// la colección afectada junto con el registro de actividad.
func (uc *DataUseCase) commitLocked(ctx context.Context, actor *entity.Session, typ entity.ActivityType, itemID, key string) error {
	uc.activities = append([]entity.Activity{{
		ID:        uc.opts.NewID(),
		Type:      typ,
		ItemID:    itemID,
		DoneBy:    actor.Email,
		CreatedAt: uc.opts.Clock(),
	}}, uc.activities...)

	uc.log.Debug().
		Str("type", string(typ)).
		Str("item_id", itemID).
		Str("done_by", actor.Email).
		Msg("actividad registrada")
	return uc.saveLocked(ctx, key, repository.KeyActivities)
}

// requireActor devuelve ErrUnauthorized si no hay identidad.
func requireActor(actor *entity.Session) error {
	if actor == nil || actor.Email == "" {
		return domain.ErrUnauthorized
	}
	return nil
}

// fold normaliza para comparación sin distinguir mayúsculas (case folding Unicode).
// cases.Caser no es seguro entre goroutines: se crea uno por llamada.
func fold(s string) string {
	return cases.Fold().String(s)
}

func sameFold(a, b string) bool {
	return fold(a) == fold(b)
}

func (uc *DataUseCase) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), uc.opts.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("hashear password: %w", err)
	}
	return string(hash), nil
}
