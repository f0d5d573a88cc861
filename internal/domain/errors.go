package domain

import "errors"

// Kind clasifica los errores esperados de dominio.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindNotFound
	KindUnauthorized
	KindAccountState
)

// String devuelve el nombre corto del tipo de error (útil en logs).
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindUnauthorized:
		return "unauthorized"
	case KindAccountState:
		return "account_state"
	default:
		return "unknown"
	}
}

// Error es un fallo esperado de una operación: se devuelve como valor, nunca como panic.
// Message es el texto que ve el usuario final.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// NewValidationError construye un error de validación con un mensaje propio.
func NewValidationError(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

// Errores de dominio (sin dependencias externas).
var (
	ErrUnauthorized = &Error{Kind: KindUnauthorized, Message: "Unauthorized"}

	ErrProductNotFound  = &Error{Kind: KindNotFound, Message: "Product not found"}
	ErrCategoryNotFound = &Error{Kind: KindNotFound, Message: "Category not found"}
	ErrUserNotFound     = &Error{Kind: KindNotFound, Message: "User not found"}

	ErrProductNameExists  = &Error{Kind: KindValidation, Message: "Product name already exists"}
	ErrCategoryNameExists = &Error{Kind: KindValidation, Message: "Category name already exists"}
	ErrEmailAlreadyExists = &Error{Kind: KindValidation, Message: "Email already exists"}
	ErrEmailRegistered    = &Error{Kind: KindValidation, Message: "Email already registered"}
	ErrInvalidTheme       = &Error{Kind: KindValidation, Message: "Theme must be light or dark"}

	ErrInvalidCredentials = &Error{Kind: KindUnauthorized, Message: "Invalid email or password"}
	ErrAccountInactive    = &Error{Kind: KindAccountState, Message: "Account is inactive. Contact admin."}
)

// KindOf devuelve el Kind de err si es un *Error; KindUnknown en otro caso
// (errores de infraestructura, snapshots corruptos, etc.).
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindUnknown
}

// IsExpected indica si err es un fallo esperado (validación, no encontrado, autorización, estado de cuenta).
func IsExpected(err error) bool {
	return KindOf(err) != KindUnknown
}
