package panels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hwanchang/stocksim/internal/news"
	"github.com/hwanchang/stocksim/internal/ui/styles"
)

// NewsPanel displays the market news tape.
type NewsPanel struct {
	items         []news.Event
	selectedIndex int
	scrollOffset  int
	focused       bool
	width         int
	height        int
}

// NewNewsPanel creates the news panel.
func NewNewsPanel() *NewsPanel {
	return &NewsPanel{}
}

// Init initializes the panel.
func (p *NewsPanel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the panel.
func (p *NewsPanel) Update(msg tea.Msg) (*NewsPanel, tea.Cmd) {
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
			if p.selectedIndex < len(p.items)-1 {
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

// alertKinds get the highlighted style on the tape.
func isAlert(kind news.Kind) bool {
	switch kind {
	case news.KindBankruptcy, news.KindNaturalDisaster, news.KindPolitical, news.KindSurge:
		return true
	}
	return false
}

// View renders the panel.
func (p *NewsPanel) View() string {
	var content strings.Builder

	if len(p.items) == 0 {
		content.WriteString(styles.MutedStyle.Render("No news yet"))
	} else {
		visible := p.visibleRows()
		start := p.scrollOffset
		end := start + visible
		if end > len(p.items) {
			end = len(p.items)
		}

		for i := start; i < end; i++ {
			item := p.items[i]

			text := item.Text
			maxLen := p.width - 14
			if maxLen > 3 && len(text) > maxLen {
				text = text[:maxLen-3] + "..."
			}

			headlineStyle := styles.NewsNormalStyle
			if isAlert(item.Kind) {
				headlineStyle = styles.NewsAlertStyle
			}

			line := fmt.Sprintf("%s %s",
				styles.MutedStyle.Render(fmt.Sprintf("D%03d", item.Day)),
				headlineStyle.Render(text))
			if i == p.selectedIndex && p.focused {
				line = styles.SelectedRowStyle.Render(line)
			}
			content.WriteString(line)
			if i < end-1 {
				content.WriteString("\n")
			}
		}

		if len(p.items) > visible {
			content.WriteString("\n")
			content.WriteString(styles.MutedStyle.Render(
				fmt.Sprintf(" (%d/%d)", p.selectedIndex+1, len(p.items))))
		}
	}

	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}

	title := styles.RenderTitle("News", p.focused)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, content.String())

	return panelStyle.Width(p.width - 2).Height(p.height - 2).Render(panel)
}

func (p *NewsPanel) visibleRows() int {
	v := p.height - 4
	if v < 1 {
		v = 1
	}
	return v
}

// SetFocus sets the focus state of the panel.
func (p *NewsPanel) SetFocus(focused bool) {
	p.focused = focused
}

// SetSize sets the panel dimensions.
func (p *NewsPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetItems replaces the tape contents, pinning the view to the newest item
// unless the user has scrolled.
func (p *NewsPanel) SetItems(items []news.Event) {
	follow := p.selectedIndex >= len(p.items)-1
	p.items = items
	if follow && len(items) > 0 {
		p.selectedIndex = len(items) - 1
		visible := p.visibleRows()
		p.scrollOffset = len(items) - visible
		if p.scrollOffset < 0 {
			p.scrollOffset = 0
		}
	} else if p.selectedIndex >= len(items) {
		p.selectedIndex = len(items) - 1
		if p.selectedIndex < 0 {
			p.selectedIndex = 0
		}
	}
}
