package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jhoicas/ihuza-inventory/internal/application/dto"
	"github.com/jhoicas/ihuza-inventory/internal/application/usecase"
	"github.com/jhoicas/ihuza-inventory/pkg/timefmt"
)

// dashboardView salida de "stats": métricas + productos recientes.
type dashboardView struct {
	Stats          dto.StatsDTO      `json:"stats"`
	RecentProducts []dto.ProductView `json:"recentProducts"`
}

func (a *app) statsCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:     "stats",
		Aliases: []string{"dashboard"},
		Short:   "Show dashboard metrics (Admin: whole inventory; others: own products)",
		Args:    cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, _ []string) error {
			s, err := a.session()
			if err != nil {
				return err
			}
			stats, err := a.deps.Data.DashboardStats(s)
			if err != nil {
				return err
			}
			recent, err := a.deps.Data.RecentProducts(s, limit)
			if err != nil {
				return err
			}
			p := a.printer(cmd)
			if p.asJSON {
				return p.json(dashboardView{Stats: stats, RecentProducts: recent})
			}
			p.title("Dashboard")
			p.table([]string{"Metric", "Value"}, [][]string{
				{"Total products", strconv.Itoa(stats.TotalProducts)},
				{"Categories", strconv.Itoa(stats.TotalCategories)},
				{"Users", strconv.Itoa(stats.TotalUsers)},
				{"Low stock", strconv.Itoa(stats.LowStockProducts)},
				{"Out of stock", strconv.Itoa(stats.OutOfStockProducts)},
				{"Total value", money(stats.TotalValue)},
			})
			p.title("Recently added products")
			return a.printProducts(cmd, recent)
		}),
	}
	cmd.Flags().IntVar(&limit, "recent", usecase.DefaultRecentProducts, "number of recent products")
	return cmd
}

func (a *app) activityCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Show recent activity (Admin: everyone; others: own actions)",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, _ []string) error {
			s, err := a.session()
			if err != nil {
				return err
			}
			feed, err := a.deps.Data.RecentActivity(s, limit)
			if err != nil {
				return err
			}
			p := a.printer(cmd)
			if p.asJSON {
				return p.json(feed)
			}
			now := a.deps.Now()
			rows := make([][]string, 0, len(feed))
			for _, item := range feed {
				at := item.CreatedAt
				rows = append(rows, []string{item.Label, item.Details, item.DoneBy, timefmt.Relative(&at, now)})
			}
			p.table([]string{"Activity", "Item", "By", "When"}, rows)
			return nil
		}),
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", usecase.DefaultRecentActivities, "number of entries")
	return cmd
}
