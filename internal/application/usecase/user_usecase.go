package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/ihuza-inventory/internal/application/dto"
	"github.com/jhoicas/ihuza-inventory/internal/domain"
	"github.com/jhoicas/ihuza-inventory/internal/domain/entity"
	"github.com/jhoicas/ihuza-inventory/internal/domain/repository"
)

// AddUser crea un usuario. No hay restricción de rol en esta capa, pero sí se requiere identidad.
// El email es único sin distinguir mayúsculas.
func (uc *DataUseCase) AddUser(ctx context.Context, actor *entity.Session, in dto.CreateUserRequest) (*entity.User, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if err := dto.Validate(in); err != nil {
		return nil, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.emailTakenLocked(in.Email, "") {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := uc.hashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = entity.RoleStaff
	}
	status := in.Status
	if status == "" {
		status = entity.StatusActive
	}
	user := entity.User{
		ID:        uc.opts.NewID(),
		Name:      in.Name,
		Email:     in.Email,
		Password:  hash,
		Role:      role,
		Status:    status,
		CreatedAt: uc.opts.Clock(),
	}
	uc.users = append([]entity.User{user}, uc.users...)
	if err := uc.commitLocked(ctx, actor, entity.ActivityUserAdd, user.ID, repository.KeyUsers); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser actualiza un usuario. Solo el propio usuario (por email) o un Admin;
// rol y estado solo los cambia un Admin.
func (uc *DataUseCase) UpdateUser(ctx context.Context, actor *entity.Session, id string, in dto.UpdateUserRequest) (*entity.User, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	idx := uc.userIndexLocked(id)
	if idx < 0 {
		return nil, domain.ErrUserNotFound
	}
	if !canManageUser(actor, &uc.users[idx]) {
		return nil, domain.ErrUnauthorized
	}
	if !actor.IsAdmin() && changesAccess(&uc.users[idx], in) {
		return nil, domain.ErrUnauthorized
	}
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if in.Email != nil && uc.emailTakenLocked(*in.Email, id) {
		return nil, domain.ErrEmailAlreadyExists
	}

	u := uc.users[idx]
	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Email != nil {
		u.Email = *in.Email
	}
	if in.Password != nil {
		hash, err := uc.hashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		u.Password = hash
	}
	if in.Role != nil {
		u.Role = *in.Role
	}
	if in.Status != nil {
		u.Status = *in.Status
	}
	uc.users[idx] = u
	if err := uc.commitLocked(ctx, actor, entity.ActivityUserUpdate, id, repository.KeyUsers); err != nil {
		return nil, err
	}
	return &u, nil
}

// DeleteUser elimina un usuario. Solo el propio usuario o un Admin.
// La prohibición de auto-borrado vive en la capa de presentación.
func (uc *DataUseCase) DeleteUser(ctx context.Context, actor *entity.Session, id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	idx := uc.userIndexLocked(id)
	if idx < 0 {
		return domain.ErrUserNotFound
	}
	if !canManageUser(actor, &uc.users[idx]) {
		return domain.ErrUnauthorized
	}
	uc.users = append(uc.users[:idx:idx], uc.users[idx+1:]...)
	return uc.commitLocked(ctx, actor, entity.ActivityUserDelete, id, repository.KeyUsers)
}

// GetUserByID obtiene un usuario por ID.
func (uc *DataUseCase) GetUserByID(id string) (*entity.User, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	idx := uc.userIndexLocked(id)
	if idx < 0 {
		return nil, domain.ErrUserNotFound
	}
	u := uc.users[idx]
	return &u, nil
}

// Users devuelve una copia de la colección.
func (uc *DataUseCase) Users() []entity.User {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return append([]entity.User(nil), uc.users...)
}

// SearchUsers filtra por nombre, email o rol (sin distinguir mayúsculas).
func (uc *DataUseCase) SearchUsers(query string) []entity.User {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	q := fold(query)
	out := make([]entity.User, 0, len(uc.users))
	for _, u := range uc.users {
		if q == "" || strings.Contains(fold(u.Name), q) || strings.Contains(fold(u.Email), q) || strings.Contains(fold(u.Role), q) {
			out = append(out, u)
		}
	}
	return out
}

// FindUserByEmail busca por email exacto (login).
func (uc *DataUseCase) FindUserByEmail(email string) (*entity.User, bool) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	for _, u := range uc.users {
		if u.Email == email {
			return &u, true
		}
	}
	return nil, false
}

// EmailRegistered indica si el email ya existe, sin distinguir mayúsculas.
func (uc *DataUseCase) EmailRegistered(email string) bool {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.emailTakenLocked(email, "")
}

// AppendUser agrega un usuario ya construido al final de la colección (auto-registro).
// No registra actividad: no hay identidad actuante antes del registro.
func (uc *DataUseCase) AppendUser(ctx context.Context, u entity.User) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.emailTakenLocked(u.Email, "") {
		return domain.ErrEmailRegistered
	}
	uc.users = append(uc.users, u)
	return uc.saveLocked(ctx, repository.KeyUsers)
}

// TouchLastLogin marca el último acceso del usuario.
func (uc *DataUseCase) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	idx := uc.userIndexLocked(id)
	if idx < 0 {
		return fmt.Errorf("touch last login: %w", domain.ErrUserNotFound)
	}
	uc.users[idx].LastLogin = &at
	return uc.saveLocked(ctx, repository.KeyUsers)
}

// changesAccess indica si in modifica el rol o el estado actuales de u.
func changesAccess(u *entity.User, in dto.UpdateUserRequest) bool {
	return (in.Role != nil && *in.Role != u.Role) || (in.Status != nil && *in.Status != u.Status)
}

func canManageUser(actor *entity.Session, u *entity.User) bool {
	if actor == nil {
		return false
	}
	return actor.IsAdmin() || actor.Email == u.Email
}

func (uc *DataUseCase) userIndexLocked(id string) int {
	for i := range uc.users {
		if uc.users[i].ID == id {
			return i
		}
	}
	return -1
}

func (uc *DataUseCase) emailTakenLocked(email, exceptID string) bool {
	for i := range uc.users {
		if uc.users[i].ID != exceptID && sameFold(uc.users[i].Email, email) {
			return true
		}
	}
	return false
}
