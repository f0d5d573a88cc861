package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/ihuza-inventory/internal/domain"
	"github.com/jhoicas/ihuza-inventory/internal/domain/repository"
	"github.com/jhoicas/ihuza-inventory/pkg/logger"
)

// Temas soportados.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// ThemeUseCase preferencia de tema persistida como escalar.
type ThemeUseCase struct {
	store repository.SnapshotStore
	log   *logger.Logger
}

// NewThemeUseCase construye el caso de uso.
func NewThemeUseCase(store repository.SnapshotStore, log *logger.Logger) *ThemeUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ThemeUseCase{store: store, log: log.Component("theme")}
}

// Get devuelve el tema guardado o "light". Un valor ilegible también vuelve a "light".
func (uc *ThemeUseCase) Get(ctx context.Context) (string, error) {
	raw, found, err := uc.store.Get(ctx, repository.KeyTheme)
	if err != nil {
		return "", fmt.Errorf("leer tema: %w", err)
	}
	if !found {
		return ThemeLight, nil
	}
	var theme string
	if err := json.Unmarshal(raw, &theme); err != nil || (theme != ThemeLight && theme != ThemeDark) {
		uc.log.Warn().Str("value", string(raw)).Msg("tema guardado inválido, usando light")
		return ThemeLight, nil
	}
	return theme, nil
}

// Set guarda el tema (light o dark).
func (uc *ThemeUseCase) Set(ctx context.Context, theme string) error {
	if theme != ThemeLight && theme != ThemeDark {
		return domain.ErrInvalidTheme
	}
	raw, _ := json.Marshal(theme)
	if err := uc.store.Set(ctx, repository.KeyTheme, raw); err != nil {
		return fmt.Errorf("guardar tema: %w", err)
	}
	return nil
}

// Toggle alterna entre light y dark y devuelve el nuevo tema.
func (uc *ThemeUseCase) Toggle(ctx context.Context) (string, error) {
	current, err := uc.Get(ctx)
	if err != nil {
		return "", err
	}
	next := ThemeDark
	if current == ThemeDark {
		next = ThemeLight
	}
	if err := uc.Set(ctx, next); err != nil {
		return "", err
	}
	return next, nil
}
