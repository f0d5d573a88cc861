package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/ihuza-inventory/internal/application/dto"
	"github.com/jhoicas/ihuza-inventory/internal/domain"
	"github.com/jhoicas/ihuza-inventory/internal/domain/entity"
	"github.com/jhoicas/ihuza-inventory/internal/infrastructure/memory"
)

func TestAddUser_Defaults(t *testing.T) {
	ctx := context.Background()
	uc := newData(t, memory.NewSnapshotStore())

	u, err := uc.AddUser(ctx, adminActor, dto.CreateUserRequest{Name: "Carol", Email: "carol@x.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleStaff, u.Role)
	assert.Equal(t, entity.StatusActive, u.Status)
	assert.Nil(t, u.LastLogin)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret1")))

	users := uc.Users()
	require.Len(t, users, 4)
	assert.Equal(t, u.ID, users[0].ID, "los usuarios creados se anteponen")

	activities := uc.Activities()
	require.Len(t, activities, 1)
	assert.Equal(t, entity.ActivityUserAdd, activities[0].Type)
	assert.Equal(t, u.ID, activities[0].ItemID)
}

func TestAddUser_EmailDuplicado(t *testing.T) {
	uc := newData(t, memory.NewSnapshotStore())

	_, err := uc.AddUser(context.Background(), adminActor, dto.CreateUserRequest{Name: "Alice Two", Email: "ALICE@x.com", Password: "secret1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	assert.Equal(t, "Email already exists", err.Error())
	assert.Len(t, uc.Users(), 3)
}

func TestAddUser_Validacion(t *testing.T) {
	uc := newData(t, memory.NewSnapshotStore())

	_, err := uc.AddUser(context.Background(), adminActor, dto.CreateUserRequest{Name: "Carol", Email: "not-an-email", Password: "secret1"})
	require.Error(t, err)
	assert.Equal(t, "Invalid email address", err.Error())

	_, err = uc.AddUser(context.Background(), adminActor, dto.CreateUserRequest{Name: "Carol", Email: "carol@x.com", Password: "secret1", Role: "Root"})
	require.Error(t, err)
	assert.Equal(t, "Role must be one of: Admin, Manager, Staff", err.Error())
}

func TestUpdateUser_PropioUsuario(t *testing.T) {
	ctx := context.Background()
	uc := newData(t, memory.NewSnapshotStore())

	name := "Alice Cooper"
	u, err := uc.UpdateUser(ctx, aliceActor, "u2", dto.UpdateUserRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, name, u.Name)
	assert.Equal(t, entity.ActivityUserUpdate, uc.Activities()[0].Type)
	assert.Equal(t, "alice@x.com", uc.Activities()[0].DoneBy)

	// Mismo email con otras mayúsculas: no choca consigo mismo.
	email := "alice@x.com"
	_, err = uc.UpdateUser(ctx, aliceActor, "u2", dto.UpdateUserRequest{Email: &email})
	require.NoError(t, err)
}

func TestUpdateUser_NoAdminNoCambiaRol(t *testing.T) {
	ctx := context.Background()
	uc := newData(t, memory.NewSnapshotStore())

	role := entity.RoleAdmin
	_, err := uc.UpdateUser(ctx, aliceActor, "u2", dto.UpdateUserRequest{Role: &role})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	got, err := uc.GetUserByID("u2")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleStaff, got.Role)

	status := entity.StatusInactive
	u, err := uc.UpdateUser(ctx, adminActor, "u2", dto.UpdateUserRequest{Status: &status})
	require.NoError(t, err)
	assert.False(t, u.IsActive())
}

func TestUpdateUser_NoAdminConMismoRolYEstado(t *testing.T) {
	ctx := context.Background()
	uc := newData(t, memory.NewSnapshotStore())

	role, status, name := entity.RoleStaff, entity.StatusActive, "Alice Cooper"
	u, err := uc.UpdateUser(ctx, aliceActor, "u2", dto.UpdateUserRequest{Name: &name, Role: &role, Status: &status})
	require.NoError(t, err)
	assert.Equal(t, "Alice Cooper", u.Name)
	assert.Equal(t, entity.RoleStaff, u.Role)

	inactive := entity.StatusInactive
	_, err = uc.UpdateUser(ctx, aliceActor, "u2", dto.UpdateUserRequest{Status: &inactive})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestUpdateUser_OtroUsuario(t *testing.T) {
	ctx := context.Background()
	uc := newData(t, memory.NewSnapshotStore())
	name := "Hacked"

	_, err := uc.UpdateUser(ctx, aliceActor, "u3", dto.UpdateUserRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = uc.UpdateUser(ctx, adminActor, "missing", dto.UpdateUserRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	email := "BOB@x.com"
	_, err = uc.UpdateUser(ctx, adminActor, "u2", dto.UpdateUserRequest{Email: &email})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	assert.Empty(t, uc.Activities())
}

func TestUpdateUser_CambiaPassword(t *testing.T) {
	ctx := context.Background()
	uc := newData(t, memory.NewSnapshotStore())

	pw := "newpass1"
	_, err := uc.UpdateUser(ctx, aliceActor, "u2", dto.UpdateUserRequest{Password: &pw})
	require.NoError(t, err)

	u, ok := uc.FindUserByEmail("alice@x.com")
	require.True(t, ok)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(pw)))
}

func TestDeleteUser(t *testing.T) {
	ctx := context.Background()
	uc := newData(t, memory.NewSnapshotStore())

	assert.ErrorIs(t, uc.DeleteUser(ctx, aliceActor, "u3"), domain.ErrUnauthorized)
	assert.ErrorIs(t, uc.DeleteUser(ctx, adminActor, "missing"), domain.ErrUserNotFound)

	require.NoError(t, uc.DeleteUser(ctx, adminActor, "u3"))
	assert.Len(t, uc.Users(), 2)
	_, err := uc.GetUserByID("u3")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.Equal(t, entity.ActivityUserDelete, uc.Activities()[0].Type)
}

func TestSearchUsers(t *testing.T) {
	uc := newData(t, memory.NewSnapshotStore())

	assert.Len(t, uc.SearchUsers(""), 3)
	assert.Len(t, uc.SearchUsers("MANAGER"), 1)
	assert.Len(t, uc.SearchUsers("@x.com"), 3)
	assert.Empty(t, uc.SearchUsers("zzz"))
}

func TestFindUserByEmail_Exacto(t *testing.T) {
	uc := newData(t, memory.NewSnapshotStore())

	_, ok := uc.FindUserByEmail("alice@x.com")
	assert.True(t, ok)
	_, ok = uc.FindUserByEmail("Alice@x.com")
	assert.False(t, ok)
	assert.True(t, uc.EmailRegistered("Alice@X.com"))
}
