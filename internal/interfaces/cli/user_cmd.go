package cli

import (
	"github.com/spf13/cobra"

	"github.com/jhoicas/ihuza-inventory/internal/application/dto"
	"github.com/jhoicas/ihuza-inventory/internal/domain"
	"github.com/jhoicas/ihuza-inventory/pkg/timefmt"
)

func (a *app) usersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"user", "u"},
		Short:   "Manage users (Admin; others may only update themselves)",
	}
	cmd.AddCommand(a.usersListCmd(), a.usersAddCmd(), a.usersUpdateCmd(), a.usersDeleteCmd())
	return cmd
}

// userRow usuario sin password, con el último acceso en formato relativo.
type userRow struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Status    string `json:"status"`
	LastLogin string `json:"lastLogin"`
}

func (a *app) usersListCmd() *cobra.Command {
	var query string
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "search"},
		Short:   "List users, filtered by name, email or role",
		Args:    cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, _ []string) error {
			if _, err := a.adminSession(); err != nil {
				return err
			}
			now := a.deps.Now()
			users := a.deps.Data.SearchUsers(query)
			out := make([]userRow, 0, len(users))
			for _, u := range users {
				out = append(out, userRow{
					ID:        u.ID,
					Name:      u.Name,
					Email:     u.Email,
					Role:      u.Role,
					Status:    u.Status,
					LastLogin: timefmt.Relative(u.LastLogin, now),
				})
			}
			p := a.printer(cmd)
			if p.asJSON {
				return p.json(out)
			}
			rows := make([][]string, 0, len(out))
			for _, u := range out {
				rows = append(rows, []string{u.ID, u.Name, u.Email, u.Role, u.Status, u.LastLogin})
			}
			p.table([]string{"ID", "Name", "Email", "Role", "Status", "Last login"}, rows)
			return nil
		}),
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "search text")
	return cmd
}

func (a *app) usersAddCmd() *cobra.Command {
	var in dto.CreateUserRequest
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a user",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, _ []string) error {
			s, err := a.adminSession()
			if err != nil {
				return err
			}
			u, err := a.deps.Data.AddUser(cmd.Context(), s, in)
			if err != nil {
				return err
			}
			p := a.printer(cmd)
			if p.asJSON {
				return p.json(userRow{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role, Status: u.Status, LastLogin: timefmt.Relative(u.LastLogin, a.deps.Now())})
			}
			p.success("User added: %s <%s> (%s)", u.Name, u.Email, u.ID)
			return nil
		}),
	}
	cmd.Flags().StringVar(&in.Name, "name", "", "full name")
	cmd.Flags().StringVar(&in.Email, "email", "", "email address")
	cmd.Flags().StringVar(&in.Password, "password", "", "initial password")
	cmd.Flags().StringVar(&in.Role, "role", "", "Admin, Manager or Staff (default Staff)")
	cmd.Flags().StringVar(&in.Status, "status", "", "Active or Inactive (default Active)")
	return cmd
}

func (a *app) usersUpdateCmd() *cobra.Command {
	var name, email, password, role, status string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a user (self or Admin; role and status need Admin)",
		Args:  exactArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			s, err := a.session()
			if err != nil {
				return err
			}
			if !s.IsAdmin() && args[0] != s.ID {
				return domain.ErrUnauthorized
			}
			var in dto.UpdateUserRequest
			flags := cmd.Flags()
			for flag, dst := range map[string]**string{
				"name":     &in.Name,
				"email":    &in.Email,
				"password": &in.Password,
				"role":     &in.Role,
				"status":   &in.Status,
			} {
				if flags.Changed(flag) {
					v, _ := flags.GetString(flag)
					*dst = &v
				}
			}
			u, err := a.deps.Data.UpdateUser(cmd.Context(), s, args[0], in)
			if err != nil {
				return err
			}
			// El nombre, email o rol de la sesión pueden haber cambiado.
			if err := a.deps.Auth.Refresh(cmd.Context()); err != nil {
				return err
			}
			p := a.printer(cmd)
			if p.asJSON {
				return p.json(userRow{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role, Status: u.Status, LastLogin: timefmt.Relative(u.LastLogin, a.deps.Now())})
			}
			p.success("User updated: %s", u.Name)
			return nil
		}),
	}
	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&email, "email", "", "new email")
	cmd.Flags().StringVar(&password, "password", "", "new password")
	cmd.Flags().StringVar(&role, "role", "", "new role")
	cmd.Flags().StringVar(&status, "status", "", "new status")
	return cmd
}

func (a *app) usersDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a user (self-deletion is refused)",
		Args:    exactArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			s, err := a.adminSession()
			if err != nil {
				return err
			}
			if args[0] == s.ID {
				return errSelfDelete
			}
			if err := a.deps.Data.DeleteUser(cmd.Context(), s, args[0]); err != nil {
				return err
			}
			a.printer(cmd).success("User deleted")
			return nil
		}),
	}
}
