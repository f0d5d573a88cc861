package cli

import (
	"github.com/spf13/cobra"
)

func (a *app) themeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the display theme",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "get",
			Short: "Print the current theme",
			Args:  cobra.NoArgs,
			RunE: a.run(func(cmd *cobra.Command, _ []string) error {
				theme, err := a.deps.Theme.Get(cmd.Context())
				if err != nil {
					return err
				}
				return a.printTheme(cmd, theme)
			}),
		},
		&cobra.Command{
			Use:   "toggle",
			Short: "Switch between light and dark",
			Args:  cobra.NoArgs,
			RunE: a.run(func(cmd *cobra.Command, _ []string) error {
				theme, err := a.deps.Theme.Toggle(cmd.Context())
				if err != nil {
					return err
				}
				return a.printTheme(cmd, theme)
			}),
		},
		&cobra.Command{
			Use:       "set <light|dark>",
			Short:     "Set the theme",
			Args:      exactArgs(1),
			ValidArgs: []string{"light", "dark"},
			RunE: a.run(func(cmd *cobra.Command, args []string) error {
				if err := a.deps.Theme.Set(cmd.Context(), args[0]); err != nil {
					return err
				}
				return a.printTheme(cmd, args[0])
			}),
		},
	)
	return cmd
}

func (a *app) printTheme(cmd *cobra.Command, theme string) error {
	p := a.printer(cmd)
	if p.asJSON {
		return p.json(map[string]string{"theme": theme})
	}
	p.line("Theme: %s", theme)
	return nil
}
