// Package cli es la capa de presentación local: un árbol de comandos cobra sobre los casos de uso.
package cli

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/ihuza-inventory/internal/application/auth"
	"github.com/jhoicas/ihuza-inventory/internal/application/usecase"
	"github.com/jhoicas/ihuza-inventory/internal/domain"
	"github.com/jhoicas/ihuza-inventory/internal/domain/entity"
	"github.com/jhoicas/ihuza-inventory/pkg/logger"
)

// Deps dependencias del árbol de comandos.
type Deps struct {
	Data  *usecase.DataUseCase
	Auth  *auth.AuthUseCase
	Theme *usecase.ThemeUseCase
	Log   *logger.Logger

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Now    func() time.Time
}

// app estado de una ejecución: flags globales y si algún comando llegó a ejecutarse.
type app struct {
	deps    Deps
	jsonOut bool
	ran     bool
}

func newApp(deps Deps) *app {
	if deps.Stdin == nil {
		deps.Stdin = os.Stdin
	}
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Now == nil {
		deps.Now = func() time.Time { return time.Now().UTC() }
	}
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	deps.Log = deps.Log.Component("cli")
	return &app{deps: deps}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "ihuza",
		Short:         "iHUZA inventory: products, categories, users and activity",
		SilenceUsage:  true,
		SilenceErrors: true,
		// La sesión se sincroniza con el registro del usuario antes de cada comando.
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			a.ran = true
			return a.deps.Auth.Refresh(cmd.Context())
		},
	}
	root.SetIn(a.deps.Stdin)
	root.SetOut(a.deps.Stdout)
	root.SetErr(a.deps.Stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err: err}
	})
	root.PersistentFlags().BoolVar(&a.jsonOut, "json", false, "print machine-readable JSON")

	root.AddCommand(
		a.loginCmd(),
		a.logoutCmd(),
		a.registerCmd(),
		a.whoamiCmd(),
		a.statsCmd(),
		a.activityCmd(),
		a.productsCmd(),
		a.categoriesCmd(),
		a.usersCmd(),
		a.themeCmd(),
		a.seedCmd(),
	)
	return root
}

// Execute ejecuta el CLI con args y devuelve el código de salida.
func Execute(ctx context.Context, deps Deps, args []string) int {
	a := newApp(deps)
	root := a.rootCmd()
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	return a.report(err)
}

// run marca que la ejecución llegó al comando: a partir de aquí los errores ya no son de uso.
func (a *app) run(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a.ran = true
		return fn(cmd, args)
	}
}

// session devuelve la identidad actual o errNotLoggedIn.
func (a *app) session() (*entity.Session, error) {
	s := a.deps.Auth.Current()
	if s == nil {
		return nil, errNotLoggedIn
	}
	return s, nil
}

// adminSession exige una sesión con rol Admin (pantallas de administración).
func (a *app) adminSession() (*entity.Session, error) {
	s, err := a.session()
	if err != nil {
		return nil, err
	}
	if !s.IsAdmin() {
		return nil, domain.ErrUnauthorized
	}
	return s, nil
}

func (a *app) printer(cmd *cobra.Command) *printer {
	return newPrinter(cmd.OutOrStdout(), a.jsonOut)
}
