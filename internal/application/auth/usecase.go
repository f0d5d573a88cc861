package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/ihuza-inventory/internal/application/dto"
	"github.com/jhoicas/ihuza-inventory/internal/domain"
	"github.com/jhoicas/ihuza-inventory/internal/domain/entity"
	"github.com/jhoicas/ihuza-inventory/internal/domain/repository"
	"github.com/jhoicas/ihuza-inventory/pkg/jwt"
	"github.com/jhoicas/ihuza-inventory/pkg/logger"
)

// State ciclo de vida de la sesión.
type State int

const (
	StateUnloaded State = iota
	StateLoading
	StateUnauthenticated
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unloaded"
	}
}

// SessionConfig configuración de firma del snapshot de sesión y hashing.
type SessionConfig struct {
	Secret     string
	Issuer     string
	BcryptCost int // 0 = bcrypt.DefaultCost
	Clock      func() time.Time
}

// userDirectory es el contrato mínimo sobre la colección de usuarios.
// Lo implementa *usecase.DataUseCase, único dueño de la colección.
type userDirectory interface {
	FindUserByEmail(email string) (*entity.User, bool)
	EmailRegistered(email string) bool
	AppendUser(ctx context.Context, u entity.User) error
	TouchLastLogin(ctx context.Context, id string, at time.Time) error
	GetUserByID(id string) (*entity.User, error)
}

// AuthUseCase casos de uso de autenticación: login, registro, logout y la identidad actual.
type AuthUseCase struct {
	users userDirectory
	store repository.SnapshotStore
	cfg   SessionConfig
	log   *logger.Logger

	mu      sync.RWMutex
	state   State
	session *entity.Session
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users userDirectory, store repository.SnapshotStore, cfg SessionConfig, log *logger.Logger) *AuthUseCase {
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	if cfg.Clock == nil {
		cfg.Clock = func() time.Time { return time.Now().UTC() }
	}
	if log == nil {
		log = logger.Nop()
	}
	return &AuthUseCase{users: users, store: store, cfg: cfg, log: log.Component("auth")}
}

// Load hidrata la sesión persistida. Un snapshot que no verifica (alterado, otra clave) se elimina.
func (uc *AuthUseCase) Load(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.state = StateLoading
	uc.session = nil

	raw, found, err := uc.store.Get(ctx, repository.KeySession)
	if err != nil {
		uc.state = StateUnauthenticated
		return fmt.Errorf("leer sesión: %w", err)
	}
	if found {
		id, err := jwt.Parse(uc.cfg.Secret, uc.cfg.Issuer, string(raw))
		if err != nil {
			uc.log.Warn().Err(err).Msg("snapshot de sesión inválido, se descarta")
			if rmErr := uc.store.Remove(ctx, repository.KeySession); rmErr != nil {
				uc.state = StateUnauthenticated
				return fmt.Errorf("eliminar sesión inválida: %w", rmErr)
			}
		} else {
			uc.session = &entity.Session{ID: id.UserID, Name: id.Name, Email: id.Email, Role: id.Role}
		}
	}
	uc.settleLocked()
	return nil
}

// Login verifica email (exacto) y password. Una cuenta inactiva falla con un error distinto.
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*entity.Session, error) {
	user, ok := uc.users.FindUserByEmail(email)
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.IsActive() {
		return nil, domain.ErrAccountInactive
	}

	session := entity.SessionFromUser(user)
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if err := uc.establishLocked(ctx, session); err != nil {
		return nil, err
	}
	if err := uc.users.TouchLastLogin(ctx, user.ID, uc.cfg.Clock()); err != nil {
		uc.log.Warn().Err(err).Str("user_id", user.ID).Msg("no se pudo actualizar lastLogin")
	}
	uc.log.Info().Str("email", user.Email).Str("role", user.Role).Msg("login")
	out := *session
	return &out, nil
}

// Register crea un usuario Staff activo y abre sesión con él.
// El email se considera duplicado sin distinguir mayúsculas.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*entity.Session, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if uc.users.EmailRegistered(in.Email) {
		return nil, domain.ErrEmailRegistered
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hashear password: %w", err)
	}
	now := uc.cfg.Clock()
	user := entity.User{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		Password:  string(hash),
		Role:      entity.RoleStaff,
		Status:    entity.StatusActive,
		CreatedAt: now,
		LastLogin: &now,
	}
	if err := uc.users.AppendUser(ctx, user); err != nil {
		return nil, err
	}

	session := entity.SessionFromUser(&user)
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if err := uc.establishLocked(ctx, session); err != nil {
		return nil, err
	}
	uc.log.Info().Str("email", user.Email).Msg("registro")
	out := *session
	return &out, nil
}

// Logout limpia la sesión en memoria y en el store.
func (uc *AuthUseCase) Logout(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.clearLocked(ctx)
}

// Refresh sincroniza la sesión con el registro del usuario (nombre, email, rol).
// Si el usuario fue eliminado o desactivado, cierra la sesión.
func (uc *AuthUseCase) Refresh(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.session == nil {
		return nil
	}
	user, err := uc.users.GetUserByID(uc.session.ID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			uc.log.Info().Str("user_id", uc.session.ID).Msg("usuario de la sesión eliminado, logout")
			return uc.clearLocked(ctx)
		}
		return err
	}
	if !user.IsActive() {
		return uc.clearLocked(ctx)
	}
	next := entity.SessionFromUser(user)
	if *next == *uc.session {
		return nil
	}
	return uc.establishLocked(ctx, next)
}

// Current devuelve una copia de la identidad actual o nil.
func (uc *AuthUseCase) Current() *entity.Session {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	if uc.session == nil {
		return nil
	}
	s := *uc.session
	return &s
}

// IsAuthenticated hay sesión.
func (uc *AuthUseCase) IsAuthenticated() bool {
	return uc.Current() != nil
}

// IsAdmin la sesión tiene rol Admin.
func (uc *AuthUseCase) IsAdmin() bool {
	return uc.Current().IsAdmin()
}

// IsLoading true solo durante Load.
func (uc *AuthUseCase) IsLoading() bool {
	return uc.State() == StateLoading
}

// State estado actual del ciclo de vida.
func (uc *AuthUseCase) State() State {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.state
}

func (uc *AuthUseCase) establishLocked(ctx context.Context, s *entity.Session) error {
	token, err := jwt.Generate(uc.cfg.Secret, uc.cfg.Issuer, jwt.Identity{
		UserID: s.ID,
		Name:   s.Name,
		Email:  s.Email,
		Role:   s.Role,
	})
	if err != nil {
		return fmt.Errorf("firmar sesión: %w", err)
	}
	if err := uc.store.Set(ctx, repository.KeySession, []byte(token)); err != nil {
		return fmt.Errorf("guardar sesión: %w", err)
	}
	uc.session = s
	uc.settleLocked()
	return nil
}

func (uc *AuthUseCase) clearLocked(ctx context.Context) error {
	uc.session = nil
	uc.settleLocked()
	if err := uc.store.Remove(ctx, repository.KeySession); err != nil {
		return fmt.Errorf("eliminar sesión: %w", err)
	}
	return nil
}

func (uc *AuthUseCase) settleLocked() {
	if uc.session != nil {
		uc.state = StateAuthenticated
	} else {
		uc.state = StateUnauthenticated
	}
}
