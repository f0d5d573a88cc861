package cli

import (
	"errors"
	"fmt"

	"github.com/jhoicas/ihuza-inventory/internal/application/dto"
	"github.com/jhoicas/ihuza-inventory/internal/domain"
)

// Códigos de salida.
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitUsage    = 2
	reloadNotice = "Something went wrong. Please reload and try again."
)

var (
	errNotLoggedIn = &domain.Error{Kind: domain.KindUnauthorized, Message: "You are not logged in. Run 'ihuza login' first."}
	errSelfDelete  = &domain.Error{Kind: domain.KindValidation, Message: "You cannot delete your own account"}
)

// usageError entrada de línea de comandos mal formada (flags, argumentos).
type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func usagef(format string, args ...interface{}) error {
	return usageError{err: fmt.Errorf(format, args...)}
}

// report imprime el error según su clase y devuelve el código de salida.
// Los fallos esperados muestran su mensaje; los inesperados se registran y muestran un aviso genérico.
func (a *app) report(err error) int {
	if err == nil {
		return ExitOK
	}
	var ue usageError
	if errors.As(err, &ue) || !a.ran {
		// Errores de cobra (comando desconocido, argumentos) ocurren antes de ejecutar el comando.
		fmt.Fprintf(a.deps.Stderr, "Error: %s\nRun 'ihuza --help' for usage.\n", err)
		return ExitUsage
	}
	if domain.IsExpected(err) {
		a.printError(domain.KindOf(err).String(), err.Error())
		return ExitFailure
	}
	a.deps.Log.Error().Err(err).Msg("comando falló")
	a.printError("unexpected", reloadNotice)
	return ExitFailure
}

func (a *app) printError(code, msg string) {
	if a.jsonOut {
		_ = newPrinter(a.deps.Stderr, true).json(dto.ErrorResponse{Code: code, Message: msg})
		return
	}
	fmt.Fprintf(a.deps.Stderr, "Error: %s\n", msg)
}
