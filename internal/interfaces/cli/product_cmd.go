package cli

import (
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/jhoicas/ihuza-inventory/internal/application/dto"
)

func (a *app) productsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "products",
		Aliases: []string{"product", "p"},
		Short:   "Manage products",
	}
	cmd.AddCommand(a.productsListCmd(), a.productsAddCmd(), a.productsUpdateCmd(), a.productsDeleteCmd())
	return cmd
}

func (a *app) productsListCmd() *cobra.Command {
	var query string
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "search"},
		Short:   "List products (Admin: all; others: own), filtered by name or category",
		Args:    cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, _ []string) error {
			s, err := a.session()
			if err != nil {
				return err
			}
			views, err := a.deps.Data.SearchProducts(s, query)
			if err != nil {
				return err
			}
			return a.printProducts(cmd, views)
		}),
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "search text")
	return cmd
}

func (a *app) productsAddCmd() *cobra.Command {
	var (
		in    dto.CreateProductRequest
		price string
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a product owned by the current user",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, _ []string) error {
			s, err := a.session()
			if err != nil {
				return err
			}
			if in.Price, err = parsePrice(price); err != nil {
				return err
			}
			p, err := a.deps.Data.AddProduct(cmd.Context(), s, in)
			if err != nil {
				return err
			}
			out := a.printer(cmd)
			if out.asJSON {
				return out.json(p)
			}
			out.success("Product added: %s (%s)", p.Name, p.ID)
			return nil
		}),
	}
	cmd.Flags().StringVar(&in.Name, "name", "", "product name")
	cmd.Flags().StringVar(&in.CategoryID, "category", "", "category ID")
	cmd.Flags().IntVar(&in.Quantity, "quantity", 0, "units in stock")
	cmd.Flags().StringVar(&price, "price", "0", "unit price")
	return cmd
}

func (a *app) productsUpdateCmd() *cobra.Command {
	var (
		name, category, price string
		quantity              int
	)
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a product (owner or Admin)",
		Args:  exactArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			s, err := a.session()
			if err != nil {
				return err
			}
			var in dto.UpdateProductRequest
			flags := cmd.Flags()
			if flags.Changed("name") {
				in.Name = &name
			}
			if flags.Changed("category") {
				in.CategoryID = &category
			}
			if flags.Changed("quantity") {
				in.Quantity = &quantity
			}
			if flags.Changed("price") {
				d, err := parsePrice(price)
				if err != nil {
					return err
				}
				in.Price = &d
			}
			p, err := a.deps.Data.UpdateProduct(cmd.Context(), s, args[0], in)
			if err != nil {
				return err
			}
			out := a.printer(cmd)
			if out.asJSON {
				return out.json(p)
			}
			out.success("Product updated: %s", p.Name)
			return nil
		}),
	}
	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&category, "category", "", "new category ID")
	cmd.Flags().IntVar(&quantity, "quantity", 0, "new quantity")
	cmd.Flags().StringVar(&price, "price", "", "new unit price")
	return cmd
}

func (a *app) productsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a product (owner or Admin)",
		Args:    exactArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			s, err := a.session()
			if err != nil {
				return err
			}
			if err := a.deps.Data.DeleteProduct(cmd.Context(), s, args[0]); err != nil {
				return err
			}
			a.printer(cmd).success("Product deleted")
			return nil
		}),
	}
}

func (a *app) printProducts(cmd *cobra.Command, views []dto.ProductView) error {
	p := a.printer(cmd)
	if p.asJSON {
		return p.json(views)
	}
	rows := make([][]string, 0, len(views))
	for _, v := range views {
		rows = append(rows, []string{
			v.ID,
			v.Name,
			v.CategoryName,
			strconv.Itoa(v.Quantity),
			money(v.Price),
			p.stockBadge(v.StockStatus),
			v.CreatedBy,
		})
	}
	p.table([]string{"ID", "Name", "Category", "Qty", "Price", "Status", "Owner"}, rows)
	return nil
}

func parsePrice(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, usagef("invalid price %q", s)
	}
	return d, nil
}

// exactArgs como cobra.ExactArgs, pero clasificado como error de uso.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return usageError{err: err}
		}
		return nil
	}
}
