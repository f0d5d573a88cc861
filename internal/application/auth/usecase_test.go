package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/ihuza-inventory/internal/application/auth"
	"github.com/jhoicas/ihuza-inventory/internal/application/dto"
	"github.com/jhoicas/ihuza-inventory/internal/application/seed"
	"github.com/jhoicas/ihuza-inventory/internal/application/usecase"
	"github.com/jhoicas/ihuza-inventory/internal/domain"
	"github.com/jhoicas/ihuza-inventory/internal/domain/entity"
	"github.com/jhoicas/ihuza-inventory/internal/domain/repository"
	"github.com/jhoicas/ihuza-inventory/internal/infrastructure/memory"
	"github.com/jhoicas/ihuza-inventory/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "ihuza-inventory-test"
)

var testNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

type fixture struct {
	store *memory.SnapshotStore
	data  *usecase.DataUseCase
	auth  *auth.AuthUseCase
}

// newFixture levanta datos semilla + auth sobre un store en memoria compartido.
func newFixture(t *testing.T, store *memory.SnapshotStore) *fixture {
	t.Helper()
	ctx := context.Background()
	clock := func() time.Time { return testNow }

	data := usecase.NewDataUseCase(store, logger.Nop(), usecase.DataOptions{
		BcryptCost: bcrypt.MinCost,
		Clock:      clock,
	})
	require.NoError(t, data.Load(ctx))

	a := auth.NewAuthUseCase(data, store, auth.SessionConfig{
		Secret:     testSecret,
		Issuer:     testIssuer,
		BcryptCost: bcrypt.MinCost,
		Clock:      clock,
	}, logger.Nop())
	require.NoError(t, a.Load(ctx))
	return &fixture{store: store, data: data, auth: a}
}

// ──────────────────────────────────────────────────────────────────────────────
// Load
// ──────────────────────────────────────────────────────────────────────────────

func TestLoad_SinSnapshot_QuedaUnauthenticated(t *testing.T) {
	f := newFixture(t, memory.NewSnapshotStore())

	assert.Equal(t, auth.StateUnauthenticated, f.auth.State())
	assert.False(t, f.auth.IsAuthenticated())
	assert.False(t, f.auth.IsLoading())
	assert.Nil(t, f.auth.Current())
}

func TestLoad_RestauraSesionPersistida(t *testing.T) {
	store := memory.NewSnapshotStore()
	f := newFixture(t, store)
	_, err := f.auth.Login(context.Background(), seed.AdminEmail, seed.AdminPassword)
	require.NoError(t, err)

	// Un nuevo proceso sobre el mismo store.
	g := newFixture(t, store)
	require.True(t, g.auth.IsAuthenticated())
	assert.Equal(t, seed.AdminEmail, g.auth.Current().Email)
	assert.True(t, g.auth.IsAdmin())
	assert.Equal(t, auth.StateAuthenticated, g.auth.State())
}

func TestLoad_SnapshotCorrupto_SeElimina(t *testing.T) {
	store := memory.NewSnapshotStore()
	require.NoError(t, store.Set(context.Background(), repository.KeySession, []byte(`{"email":"admin@ihuza.com","role":"Admin"}`)))

	f := newFixture(t, store)

	assert.False(t, f.auth.IsAuthenticated())
	_, found, err := store.Get(context.Background(), repository.KeySession)
	require.NoError(t, err)
	assert.False(t, found, "el snapshot inválido debe eliminarse")
}

func TestLoad_SnapshotFirmadoConOtraClave_SeDescarta(t *testing.T) {
	store := memory.NewSnapshotStore()
	f := newFixture(t, store)
	_, err := f.auth.Login(context.Background(), seed.AdminEmail, seed.AdminPassword)
	require.NoError(t, err)

	other := auth.NewAuthUseCase(f.data, store, auth.SessionConfig{Secret: "otra-clave", Issuer: testIssuer}, logger.Nop())
	require.NoError(t, other.Load(context.Background()))
	assert.False(t, other.IsAuthenticated())
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_Exitoso(t *testing.T) {
	f := newFixture(t, memory.NewSnapshotStore())

	s, err := f.auth.Login(context.Background(), seed.AdminEmail, seed.AdminPassword)
	require.NoError(t, err)
	assert.Equal(t, "1", s.ID)
	assert.Equal(t, entity.RoleAdmin, s.Role)
	assert.True(t, f.auth.IsAuthenticated())
	assert.True(t, f.auth.IsAdmin())

	_, found, err := f.store.Get(context.Background(), repository.KeySession)
	require.NoError(t, err)
	assert.True(t, found, "la sesión debe persistirse")

	u, err := f.data.GetUserByID("1")
	require.NoError(t, err)
	require.NotNil(t, u.LastLogin)
	assert.Equal(t, testNow, *u.LastLogin)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	f := newFixture(t, memory.NewSnapshotStore())

	s, err := f.auth.Login(context.Background(), seed.AdminEmail, "wrong")
	require.Error(t, err)
	assert.Nil(t, s)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Equal(t, "Invalid email or password", err.Error())
	assert.False(t, f.auth.IsAuthenticated())
}

func TestLogin_EmailDesconocido(t *testing.T) {
	f := newFixture(t, memory.NewSnapshotStore())

	_, err := f.auth.Login(context.Background(), "nobody@ihuza.com", seed.AdminPassword)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_EmailDistingueMayusculas(t *testing.T) {
	f := newFixture(t, memory.NewSnapshotStore())

	_, err := f.auth.Login(context.Background(), "ADMIN@ihuza.com", seed.AdminPassword)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_CuentaInactiva(t *testing.T) {
	f := newFixture(t, memory.NewSnapshotStore())

	_, err := f.auth.Login(context.Background(), "inactive@ihuza.com", seed.DemoPassword)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAccountInactive)
	assert.Equal(t, domain.KindAccountState, domain.KindOf(err))
	assert.False(t, f.auth.IsAuthenticated())
}

func TestLogin_ManagerNoEsAdmin(t *testing.T) {
	f := newFixture(t, memory.NewSnapshotStore())

	_, err := f.auth.Login(context.Background(), seed.ManagerEmail, seed.DemoPassword)
	require.NoError(t, err)
	assert.True(t, f.auth.IsAuthenticated())
	assert.False(t, f.auth.IsAdmin())
}

// ──────────────────────────────────────────────────────────────────────────────
// Register / Logout / Refresh
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_CreaStaffYAbreSesion(t *testing.T) {
	f := newFixture(t, memory.NewSnapshotStore())
	before := len(f.data.Users())

	s, err := f.auth.Register(context.Background(), dto.RegisterRequest{
		Name: "Bob Builder", Email: "bob@x.com", Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleStaff, s.Role)
	assert.True(t, f.auth.IsAuthenticated())
	assert.False(t, f.auth.IsAdmin())

	users := f.data.Users()
	require.Len(t, users, before+1)
	last := users[len(users)-1]
	assert.Equal(t, "bob@x.com", last.Email)
	assert.Equal(t, entity.StatusActive, last.Status)
	assert.Equal(t, testNow, last.CreatedAt)
	require.NotNil(t, last.LastLogin)
	assert.Equal(t, testNow, *last.LastLogin)
	assert.NotEqual(t, "secret1", last.Password, "el password se guarda hasheado")

	require.NoError(t, f.auth.Logout(context.Background()))
	_, err = f.auth.Login(context.Background(), "bob@x.com", "secret1")
	assert.NoError(t, err)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	f := newFixture(t, memory.NewSnapshotStore())
	before := len(f.data.Users())

	_, err := f.auth.Register(context.Background(), dto.RegisterRequest{
		Name: "Another Admin", Email: "Admin@IHUZA.com", Password: "secret1",
	})
	assert.ErrorIs(t, err, domain.ErrEmailRegistered)
	assert.Len(t, f.data.Users(), before)
	assert.False(t, f.auth.IsAuthenticated())
}

func TestRegister_ValidacionDeEntrada(t *testing.T) {
	f := newFixture(t, memory.NewSnapshotStore())

	_, err := f.auth.Register(context.Background(), dto.RegisterRequest{
		Name: "Bo", Email: "bo@x.com", Password: "secret1",
	})
	require.Error(t, err)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
	assert.Equal(t, "Name must be at least 3 characters", err.Error())

	_, err = f.auth.Register(context.Background(), dto.RegisterRequest{
		Name: "Bobby", Email: "bo@x.com", Password: "123",
	})
	require.Error(t, err)
	assert.Equal(t, "Password must be at least 6 characters", err.Error())
}

func TestLogout_EliminaSesion(t *testing.T) {
	f := newFixture(t, memory.NewSnapshotStore())
	_, err := f.auth.Login(context.Background(), seed.AdminEmail, seed.AdminPassword)
	require.NoError(t, err)

	require.NoError(t, f.auth.Logout(context.Background()))

	assert.False(t, f.auth.IsAuthenticated())
	assert.Equal(t, auth.StateUnauthenticated, f.auth.State())
	_, found, err := f.store.Get(context.Background(), repository.KeySession)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRefresh_SincronizaCambiosDelUsuario(t *testing.T) {
	f := newFixture(t, memory.NewSnapshotStore())
	ctx := context.Background()
	admin, err := f.auth.Login(ctx, seed.AdminEmail, seed.AdminPassword)
	require.NoError(t, err)

	name := "Root Admin"
	_, err = f.data.UpdateUser(ctx, admin, "1", dto.UpdateUserRequest{Name: &name})
	require.NoError(t, err)

	require.NoError(t, f.auth.Refresh(ctx))
	assert.Equal(t, name, f.auth.Current().Name)
}

func TestRefresh_UsuarioEliminado_CierraSesion(t *testing.T) {
	f := newFixture(t, memory.NewSnapshotStore())
	ctx := context.Background()
	staff, err := f.auth.Login(ctx, seed.StaffEmail, seed.DemoPassword)
	require.NoError(t, err)

	admin := &entity.Session{ID: "1", Name: "Admin User", Email: seed.AdminEmail, Role: entity.RoleAdmin}
	require.NoError(t, f.data.DeleteUser(ctx, admin, staff.ID))

	require.NoError(t, f.auth.Refresh(ctx))
	assert.False(t, f.auth.IsAuthenticated())
}
