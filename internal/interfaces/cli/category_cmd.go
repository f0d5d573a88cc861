package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jhoicas/ihuza-inventory/internal/application/dto"
)

func (a *app) categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "categories",
		Aliases: []string{"category", "c"},
		Short:   "Manage categories (changes require Admin)",
	}
	cmd.AddCommand(a.categoriesListCmd(), a.categoriesAddCmd(), a.categoriesUpdateCmd(), a.categoriesDeleteCmd())
	return cmd
}

// categoryRow categoría con su conteo de productos (listado).
type categoryRow struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	ProductCount int    `json:"productCount"`
}

func (a *app) categoriesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List categories with their product counts",
		Args:    cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, _ []string) error {
			if _, err := a.session(); err != nil {
				return err
			}
			categories := a.deps.Data.Categories()
			out := make([]categoryRow, 0, len(categories))
			for _, c := range categories {
				n, err := a.deps.Data.GetProductCountByCategory(c.ID)
				if err != nil {
					return err
				}
				out = append(out, categoryRow{ID: c.ID, Name: c.Name, Description: c.Description, ProductCount: n})
			}
			p := a.printer(cmd)
			if p.asJSON {
				return p.json(out)
			}
			rows := make([][]string, 0, len(out))
			for _, c := range out {
				rows = append(rows, []string{c.ID, c.Name, c.Description, strconv.Itoa(c.ProductCount)})
			}
			p.table([]string{"ID", "Name", "Description", "Products"}, rows)
			return nil
		}),
	}
}

func (a *app) categoriesAddCmd() *cobra.Command {
	var in dto.CreateCategoryRequest
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a category",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, _ []string) error {
			s, err := a.session()
			if err != nil {
				return err
			}
			c, err := a.deps.Data.AddCategory(cmd.Context(), s, in)
			if err != nil {
				return err
			}
			p := a.printer(cmd)
			if p.asJSON {
				return p.json(c)
			}
			p.success("Category added: %s (%s)", c.Name, c.ID)
			return nil
		}),
	}
	cmd.Flags().StringVar(&in.Name, "name", "", "category name")
	cmd.Flags().StringVar(&in.Description, "description", "", "optional description")
	return cmd
}

func (a *app) categoriesUpdateCmd() *cobra.Command {
	var name, description string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a category",
		Args:  exactArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			s, err := a.session()
			if err != nil {
				return err
			}
			var in dto.UpdateCategoryRequest
			if cmd.Flags().Changed("name") {
				in.Name = &name
			}
			if cmd.Flags().Changed("description") {
				in.Description = &description
			}
			c, err := a.deps.Data.UpdateCategory(cmd.Context(), s, args[0], in)
			if err != nil {
				return err
			}
			p := a.printer(cmd)
			if p.asJSON {
				return p.json(c)
			}
			p.success("Category updated: %s", c.Name)
			return nil
		}),
	}
	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&description, "description", "", "new description")
	return cmd
}

func (a *app) categoriesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a category (its products are kept)",
		Args:    exactArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			s, err := a.session()
			if err != nil {
				return err
			}
			if err := a.deps.Data.DeleteCategory(cmd.Context(), s, args[0]); err != nil {
				return err
			}
			a.printer(cmd).success("Category deleted")
			return nil
		}),
	}
}
