package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ihuza-inventory/internal/domain/inventory"
)

// printer salida de los comandos: tablas con lipgloss o JSON con --json.
// El renderer se ata al writer, así un buffer o una tubería no recibe secuencias de color.
type printer struct {
	out    io.Writer
	asJSON bool
	r      *lipgloss.Renderer
}

func newPrinter(out io.Writer, asJSON bool) *printer {
	return &printer{out: out, asJSON: asJSON, r: lipgloss.NewRenderer(out)}
}

func (p *printer) json(v interface{}) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (p *printer) title(s string) {
	fmt.Fprintln(p.out, p.r.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).Render(s))
}

func (p *printer) line(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

func (p *printer) success(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(p.out, p.r.NewStyle().Foreground(lipgloss.Color("42")).Render(msg))
}

func (p *printer) table(headers []string, rows [][]string) {
	if len(rows) == 0 {
		fmt.Fprintln(p.out, p.r.NewStyle().Faint(true).Render("No results"))
		return
	}
	cell := p.r.NewStyle().Padding(0, 1)
	header := cell.Bold(true)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(p.r.NewStyle().Foreground(lipgloss.Color("241"))).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
	fmt.Fprintln(p.out, t.Render())
}

// stockBadge colorea el estado de stock como lo hace el dashboard.
func (p *printer) stockBadge(status string) string {
	color := lipgloss.Color("42")
	switch status {
	case inventory.StatusOutOfStock:
		color = lipgloss.Color("196")
	case inventory.StatusLowStock:
		color = lipgloss.Color("214")
	}
	return p.r.NewStyle().Foreground(color).Render(status)
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
