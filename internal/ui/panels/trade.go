package panels

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hwanchang/stocksim/internal/market"
	"github.com/hwanchang/stocksim/internal/ui/styles"
)

// TradeSide is the direction of a trade order.
type TradeSide int

const (
	SideBuy TradeSide = iota
	SideSell
)

// TradeSubmitMsg is emitted when the user confirms a trade.
type TradeSubmitMsg struct {
	Company  *market.Company
	Side     TradeSide
	Quantity int
}

// TradePanel lets the player buy or sell the selected company.
type TradePanel struct {
	company       *market.Company
	side          TradeSide
	quantityInput textinput.Model

	focused bool
	width   int
	height  int
}

// NewTradePanel creates the trade entry panel.
func NewTradePanel() *TradePanel {
	qty := textinput.New()
	qty.Placeholder = "Quantity"
	qty.Width = 10
	qty.CharLimit = 9

	return &TradePanel{quantityInput: qty}
}

// Init initializes the panel.
func (p *TradePanel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the panel.
func (p *TradePanel) Update(msg tea.Msg) (*TradePanel, tea.Cmd) {
	if !p.focused {
		return p, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("left", "right"))):
			if p.side == SideBuy {
				p.side = SideSell
			} else {
				p.side = SideBuy
			}
			return p, nil

		case key.Matches(msg, key.NewBinding(key.WithKeys("enter"))):
			return p, p.submit()
		}
	}

	var cmd tea.Cmd
	p.quantityInput, cmd = p.quantityInput.Update(msg)
	return p, cmd
}

func (p *TradePanel) submit() tea.Cmd {
	company := p.company
	side := p.side
	qty, err := strconv.Atoi(strings.TrimSpace(p.quantityInput.Value()))
	if err != nil || qty <= 0 || company == nil {
		return nil
	}
	p.quantityInput.SetValue("")
	return func() tea.Msg {
		return TradeSubmitMsg{Company: company, Side: side, Quantity: qty}
	}
}

// View renders the panel.
func (p *TradePanel) View() string {
	var content strings.Builder

	name := "-"
	price := "-"
	if p.company != nil {
		name = fmt.Sprintf("%s (%s)", p.company.Name, p.company.Sector)
		price = styles.FormatMoney(p.company.CurrentPrice())
	}
	content.WriteString(styles.LabelStyle.Render("Company: "))
	content.WriteString(styles.RowStyle.Render(name))
	content.WriteString("\n")
	content.WriteString(styles.LabelStyle.Render("Price:   "))
	content.WriteString(styles.RowStyle.Render(price))
	content.WriteString("\n\n")

	buy := "  BUY  "
	sell := "  SELL  "
	if p.side == SideBuy {
		buy = styles.SelectedRowStyle.Foreground(styles.UpColor).Render(buy)
		sell = styles.MutedStyle.Render(sell)
	} else {
		buy = styles.MutedStyle.Render(buy)
		sell = styles.SelectedRowStyle.Foreground(styles.DownColor).Render(sell)
	}
	content.WriteString(buy + " " + sell)
	content.WriteString("\n\n")

	content.WriteString(styles.LabelStyle.Render("Qty: "))
	content.WriteString(p.quantityInput.View())
	content.WriteString("\n")
	content.WriteString(styles.MutedStyle.Render("←/→ side · enter submit"))

	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}

	title := styles.RenderTitle("Trade", p.focused)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, content.String())

	return panelStyle.Width(p.width - 2).Height(p.height - 2).Render(panel)
}

// SetFocus sets the focus state of the panel and the input cursor.
func (p *TradePanel) SetFocus(focused bool) {
	p.focused = focused
	if focused {
		p.quantityInput.Focus()
	} else {
		p.quantityInput.Blur()
	}
}

// SetSize sets the panel dimensions.
func (p *TradePanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetCompany points the trade form at a company.
func (p *TradePanel) SetCompany(c *market.Company) {
	p.company = c
}
