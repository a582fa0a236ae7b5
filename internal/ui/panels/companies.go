package panels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hwanchang/stocksim/internal/market"
	"github.com/hwanchang/stocksim/internal/ui/styles"
)

// CompanyPanel lists every listed company with its price and daily move.
type CompanyPanel struct {
	companies     []*market.Company
	selectedIndex int
	scrollOffset  int
	focused       bool
	width         int
	height        int
}

// NewCompanyPanel creates the company list panel.
func NewCompanyPanel() *CompanyPanel {
	return &CompanyPanel{}
}

// Init initializes the panel.
func (p *CompanyPanel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the panel.
func (p *CompanyPanel) Update(msg tea.Msg) (*CompanyPanel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !p.focused {
			return p, nil
		}
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("up", "k"))):
			if p.selectedIndex > 0 {
				p.selectedIndex--
				if p.selectedIndex < p.scrollOffset {
					p.scrollOffset = p.selectedIndex
				}
			}
		case key.Matches(msg, key.NewBinding(key.WithKeys("down", "j"))):
			if p.selectedIndex < len(p.companies)-1 {
				p.selectedIndex++
				visible := p.visibleRows()
				if p.selectedIndex >= p.scrollOffset+visible {
					p.scrollOffset = p.selectedIndex - visible + 1
				}
			}
		}
	}
	return p, nil
}

// View renders the panel.
func (p *CompanyPanel) View() string {
	var content strings.Builder

	header := fmt.Sprintf("%-8s %-10s %12s %9s", "Name", "Sector", "Price", "Change")
	content.WriteString(styles.HeaderStyle.Render(header))
	content.WriteString("\n")

	if len(p.companies) == 0 {
		content.WriteString(styles.MutedStyle.Render("No listed companies"))
	} else {
		visible := p.visibleRows()
		start := p.scrollOffset
		end := start + visible
		if end > len(p.companies) {
			end = len(p.companies)
		}

		for i := start; i < end; i++ {
			c := p.companies[i]
			row := fmt.Sprintf("%-8s %-10s %12s ",
				c.Name, c.Sector, styles.FormatMoney(c.CurrentPrice()))

			line := styles.RowStyle.Render(row) + styles.FormatDiff(c.LastDiffPct())
			if i == p.selectedIndex && p.focused {
				line = styles.SelectedRowStyle.Render(row) + styles.FormatDiff(c.LastDiffPct())
			}
			content.WriteString(line)
			if i < end-1 {
				content.WriteString("\n")
			}
		}

		if len(p.companies) > visible {
			content.WriteString("\n")
			content.WriteString(styles.MutedStyle.Render(
				fmt.Sprintf(" (%d/%d)", p.selectedIndex+1, len(p.companies))))
		}
	}

	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}

	title := styles.RenderTitle("Companies", p.focused)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, content.String())

	return panelStyle.Width(p.width - 2).Height(p.height - 2).Render(panel)
}

func (p *CompanyPanel) visibleRows() int {
	v := p.height - 5
	if v < 1 {
		v = 1
	}
	return v
}

// SetFocus sets the focus state of the panel.
func (p *CompanyPanel) SetFocus(focused bool) {
	p.focused = focused
}

// SetSize sets the panel dimensions.
func (p *CompanyPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetCompanies refreshes the roster, keeping the selection on the same
// company when it survives the refresh.
func (p *CompanyPanel) SetCompanies(companies []*market.Company) {
	var selectedID string
	if sel := p.Selected(); sel != nil {
		selectedID = sel.ID
	}

	p.companies = companies
	if selectedID != "" {
		for i, c := range companies {
			if c.ID == selectedID {
				p.selectedIndex = i
				return
			}
		}
	}
	if p.selectedIndex >= len(companies) {
		p.selectedIndex = len(companies) - 1
		if p.selectedIndex < 0 {
			p.selectedIndex = 0
		}
	}
	if p.scrollOffset > p.selectedIndex {
		p.scrollOffset = p.selectedIndex
	}
}

// Selected returns the highlighted company, or nil when the list is empty.
func (p *CompanyPanel) Selected() *market.Company {
	if p.selectedIndex >= 0 && p.selectedIndex < len(p.companies) {
		return p.companies[p.selectedIndex]
	}
	return nil
}
