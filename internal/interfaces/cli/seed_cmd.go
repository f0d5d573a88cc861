package cli

import (
	"github.com/spf13/cobra"
)

func (a *app) seedCmd() *cobra.Command {
	var reset bool
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Show collection sizes; --reset restores the demo data (Admin)",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, _ []string) error {
			p := a.printer(cmd)
			if reset {
				if _, err := a.adminSession(); err != nil {
					return err
				}
				if err := a.deps.Data.Reset(cmd.Context()); err != nil {
					return err
				}
				// El usuario de la sesión puede no existir en los datos semilla.
				if err := a.deps.Auth.Refresh(cmd.Context()); err != nil {
					return err
				}
				a.deps.Log.Info().Msg("datos semilla restaurados")
			}
			counts := map[string]int{
				"products":   len(a.deps.Data.Products()),
				"categories": len(a.deps.Data.Categories()),
				"users":      len(a.deps.Data.Users()),
				"activities": len(a.deps.Data.Activities()),
			}
			if p.asJSON {
				return p.json(counts)
			}
			if reset {
				p.success("Demo data restored")
			}
			p.line("%d products, %d categories, %d users, %d activities",
				counts["products"], counts["categories"], counts["users"], counts["activities"])
			return nil
		}),
	}
	cmd.Flags().BoolVar(&reset, "reset", false, "replace all collections with the demo data")
	return cmd
}
