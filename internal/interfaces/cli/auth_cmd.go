package cli

import (
	"bufio"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jhoicas/ihuza-inventory/internal/application/dto"
	"github.com/jhoicas/ihuza-inventory/internal/domain/entity"
)

func (a *app) loginCmd() *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in with email and password (password is read from stdin when omitted)",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, _ []string) error {
			if email == "" {
				return usagef("--email is required")
			}
			if password == "" {
				p, err := readLine(cmd)
				if err != nil {
					return err
				}
				password = p
			}
			s, err := a.deps.Auth.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			return a.printSession(cmd, s, "Welcome back, %s")
		}),
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	return cmd
}

func (a *app) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, _ []string) error {
			if err := a.deps.Auth.Logout(cmd.Context()); err != nil {
				return err
			}
			p := a.printer(cmd)
			if p.asJSON {
				return p.json(map[string]bool{"authenticated": false})
			}
			p.success("Logged out")
			return nil
		}),
	}
}

func (a *app) registerCmd() *cobra.Command {
	var in dto.RegisterRequest
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a Staff account and log in",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, _ []string) error {
			if in.Password == "" {
				p, err := readLine(cmd)
				if err != nil {
					return err
				}
				in.Password = p
			}
			s, err := a.deps.Auth.Register(cmd.Context(), in)
			if err != nil {
				return err
			}
			return a.printSession(cmd, s, "Account created. Welcome, %s")
		}),
	}
	cmd.Flags().StringVar(&in.Name, "name", "", "full name (at least 3 characters)")
	cmd.Flags().StringVar(&in.Email, "email", "", "email address")
	cmd.Flags().StringVar(&in.Password, "password", "", "password (at least 6 characters)")
	return cmd
}

func (a *app) whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current identity",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, _ []string) error {
			s := a.deps.Auth.Current()
			p := a.printer(cmd)
			if p.asJSON {
				return p.json(map[string]interface{}{"authenticated": s != nil, "user": s})
			}
			if s == nil {
				p.line("Not logged in")
				return nil
			}
			p.line("%s <%s> (%s)", s.Name, s.Email, s.Role)
			return nil
		}),
	}
}

func (a *app) printSession(cmd *cobra.Command, s *entity.Session, greeting string) error {
	p := a.printer(cmd)
	if p.asJSON {
		return p.json(s)
	}
	p.success(greeting, s.Name)
	p.line("Role: %s", s.Role)
	return nil
}

// readLine lee una línea de la entrada estándar del comando (password sin pasar por argv).
func readLine(cmd *cobra.Command) (string, error) {
	sc := bufio.NewScanner(cmd.InOrStdin())
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", err
		}
		return "", usagef("--password is required")
	}
	return strings.TrimRight(sc.Text(), "\r\n"), nil
}
