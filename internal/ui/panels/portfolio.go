package panels

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hwanchang/stocksim/internal/investor"
	"github.com/hwanchang/stocksim/internal/market"
	"github.com/hwanchang/stocksim/internal/ui/styles"
)

// holdingRow is a resolved portfolio line.
type holdingRow struct {
	name     string
	quantity int
	avgPrice float64
	price    float64
	bankrupt bool
}

// PortfolioPanel shows the player's cash, positions and goal progress.
type PortfolioPanel struct {
	cash       float64
	totalValue float64
	goalAmount float64
	goalDays   int
	day        int
	rows       []holdingRow

	focused bool
	width   int
	height  int
}

// NewPortfolioPanel creates the portfolio panel.
func NewPortfolioPanel(goalAmount float64, goalDays int) *PortfolioPanel {
	return &PortfolioPanel{goalAmount: goalAmount, goalDays: goalDays}
}

// Init initializes the panel.
func (p *PortfolioPanel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the panel.
func (p *PortfolioPanel) Update(msg tea.Msg) (*PortfolioPanel, tea.Cmd) {
	return p, nil
}

// View renders the panel.
func (p *PortfolioPanel) View() string {
	var content strings.Builder

	content.WriteString(styles.LabelStyle.Render("Cash:  "))
	content.WriteString(styles.RowStyle.Render(styles.FormatMoney(p.cash)))
	content.WriteString("\n")
	content.WriteString(styles.LabelStyle.Render("Total: "))
	content.WriteString(styles.RowStyle.Render(styles.FormatMoney(p.totalValue)))
	content.WriteString("\n")

	progress := 0.0
	if p.goalAmount > 0 {
		progress = p.totalValue / p.goalAmount * 100
	}
	content.WriteString(styles.LabelStyle.Render("Goal:  "))
	content.WriteString(styles.RowStyle.Render(fmt.Sprintf("%s (%.1f%%) by day %d",
		styles.FormatMoney(p.goalAmount), progress, p.goalDays)))
	content.WriteString("\n\n")

	if len(p.rows) == 0 {
		content.WriteString(styles.MutedStyle.Render("No positions"))
	} else {
		header := fmt.Sprintf("%-8s %6s %12s %12s", "Name", "Qty", "Avg", "Price")
		content.WriteString(styles.HeaderStyle.Render(header))
		content.WriteString("\n")

		maxRows := p.height - 9
		if maxRows < 1 {
			maxRows = 1
		}
		shown := p.rows
		if len(shown) > maxRows {
			shown = shown[:maxRows]
		}
		for i, row := range shown {
			priceStr := styles.FormatMoney(row.price)
			if row.bankrupt {
				priceStr = "BANKRUPT"
			}
			line := fmt.Sprintf("%-8s %6d %12s %12s",
				row.name, row.quantity, styles.FormatMoney(row.avgPrice), priceStr)

			style := styles.RowStyle
			if row.bankrupt {
				style = styles.PriceDownStyle
			} else if row.price > row.avgPrice {
				style = styles.PriceUpStyle
			} else if row.price < row.avgPrice {
				style = styles.PriceDownStyle
			}
			content.WriteString(style.Render(line))
			if i < len(shown)-1 {
				content.WriteString("\n")
			}
		}
	}

	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}

	title := styles.RenderTitle("Portfolio", p.focused)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, content.String())

	return panelStyle.Width(p.width - 2).Height(p.height - 2).Render(panel)
}

// SetFocus sets the focus state of the panel.
func (p *PortfolioPanel) SetFocus(focused bool) {
	p.focused = focused
}

// SetSize sets the panel dimensions.
func (p *PortfolioPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// Refresh recomputes the panel from the player's account and the market.
// Positions in companies that disappeared entirely are shown by ID.
func (p *PortfolioPanel) Refresh(player *investor.Investor, m *market.Market, day int) {
	p.cash = player.Cash
	p.totalValue = player.PortfolioValue(m)
	p.day = day

	holdings := player.Holdings()
	rows := make([]holdingRow, 0, len(holdings))
	for id, h := range holdings {
		row := holdingRow{name: id, quantity: h.Quantity, avgPrice: h.AvgPrice}
		if c := m.FindCompany(id); c != nil {
			row.name = c.Name
			row.price = c.CurrentPrice()
			row.bankrupt = c.Bankrupt
		} else {
			row.bankrupt = true
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].name < rows[j].name })
	p.rows = rows
}
