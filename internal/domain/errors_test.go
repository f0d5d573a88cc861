package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/ihuza-inventory/internal/domain"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, domain.KindNotFound, domain.KindOf(domain.ErrProductNotFound))
	assert.Equal(t, domain.KindUnauthorized, domain.KindOf(domain.ErrUnauthorized))
	assert.Equal(t, domain.KindAccountState, domain.KindOf(domain.ErrAccountInactive))
	assert.Equal(t, domain.KindValidation, domain.KindOf(domain.NewValidationError("x")))

	wrapped := fmt.Errorf("add product: %w", domain.ErrProductNameExists)
	assert.Equal(t, domain.KindValidation, domain.KindOf(wrapped))
	assert.True(t, errors.Is(wrapped, domain.ErrProductNameExists))

	assert.Equal(t, domain.KindUnknown, domain.KindOf(errors.New("disk full")))
	assert.False(t, domain.IsExpected(errors.New("disk full")))
	assert.True(t, domain.IsExpected(domain.ErrInvalidCredentials))
}

func TestError_MensajesVisibles(t *testing.T) {
	assert.Equal(t, "Invalid email or password", domain.ErrInvalidCredentials.Error())
	assert.Equal(t, "Account is inactive. Contact admin.", domain.ErrAccountInactive.Error())
	assert.NotEqual(t, domain.ErrInvalidCredentials, domain.ErrAccountInactive)
}
