// Package ui is the terminal front end. It owns one game session and
// drives it forward on a timer, one simulated day per tick.
package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hwanchang/stocksim/internal/game"
	"github.com/hwanchang/stocksim/internal/ui/panels"
	"github.com/hwanchang/stocksim/internal/ui/styles"
)

// PanelFocus represents which panel is currently focused.
type PanelFocus int

const (
	FocusCompanies PanelFocus = 0
	FocusChart     PanelFocus = 1
	FocusNews      PanelFocus = 2
	FocusPortfolio PanelFocus = 3
	FocusTrade     PanelFocus = 4

	panelCount = 5
)

// Model is the main TUI application model.
type Model struct {
	session *game.Session

	companyPanel   *panels.CompanyPanel
	chartPanel     *panels.ChartPanel
	newsPanel      *panels.NewsPanel
	portfolioPanel *panels.PortfolioPanel
	tradePanel     *panels.TradePanel

	focusedPanel PanelFocus

	dayInterval time.Duration
	paused      bool
	gameOver    bool

	width  int
	height int

	statusMsg string
	ready     bool
}

// NewModel creates the TUI model around an existing session.
func NewModel(session *game.Session, dayInterval time.Duration) *Model {
	m := &Model{
		session:        session,
		companyPanel:   panels.NewCompanyPanel(),
		chartPanel:     panels.NewChartPanel(),
		newsPanel:      panels.NewNewsPanel(),
		portfolioPanel: panels.NewPortfolioPanel(session.GoalAmount(), session.GoalDays()),
		tradePanel:     panels.NewTradePanel(),
		focusedPanel:   FocusCompanies,
		dayInterval:    dayInterval,
	}
	m.refreshPanels()
	return m
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.companyPanel.Init(),
		m.chartPanel.Init(),
		m.newsPanel.Init(),
		m.portfolioPanel.Init(),
		m.tradePanel.Init(),
		m.tickDay(),
	)
}

// dayTickMsg advances the simulation by one day.
type dayTickMsg struct{}

func (m *Model) tickDay() tea.Cmd {
	return tea.Tick(m.dayInterval, func(time.Time) tea.Msg {
		return dayTickMsg{}
	})
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "tab":
			m.focusedPanel = (m.focusedPanel + 1) % panelCount

		case "shift+tab":
			m.focusedPanel--
			if m.focusedPanel < 0 {
				m.focusedPanel = panelCount - 1
			}

		case "f1":
			m.focusedPanel = FocusCompanies
		case "f2":
			m.focusedPanel = FocusChart
		case "f3":
			m.focusedPanel = FocusNews
		case "f4":
			m.focusedPanel = FocusPortfolio
		case "f5":
			m.focusedPanel = FocusTrade

		case " ":
			if m.focusedPanel != FocusTrade && !m.gameOver {
				m.paused = !m.paused
			}

		case "n":
			// Manual single-step while paused.
			if m.paused && !m.gameOver && m.focusedPanel != FocusTrade {
				m.advanceDay()
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case dayTickMsg:
		if !m.paused && !m.gameOver {
			m.advanceDay()
		}
		cmds = append(cmds, m.tickDay())

	case panels.TradeSubmitMsg:
		m.handleTrade(msg)
	}

	m.updateFocusedPanel(msg, &cmds)
	m.syncSelection()

	return m, tea.Batch(cmds...)
}

func (m *Model) updateFocusedPanel(msg tea.Msg, cmds *[]tea.Cmd) {
	var cmd tea.Cmd

	switch m.focusedPanel {
	case FocusCompanies:
		m.companyPanel, cmd = m.companyPanel.Update(msg)
	case FocusChart:
		m.chartPanel, cmd = m.chartPanel.Update(msg)
	case FocusNews:
		m.newsPanel, cmd = m.newsPanel.Update(msg)
	case FocusPortfolio:
		m.portfolioPanel, cmd = m.portfolioPanel.Update(msg)
	case FocusTrade:
		m.tradePanel, cmd = m.tradePanel.Update(msg)
	}

	if cmd != nil {
		*cmds = append(*cmds, cmd)
	}
}

// syncSelection keeps the chart and trade form on the highlighted company.
func (m *Model) syncSelection() {
	sel := m.companyPanel.Selected()
	m.chartPanel.SetCompany(sel)
	m.tradePanel.SetCompany(sel)
}

func (m *Model) advanceDay() {
	report := m.session.AdvanceDay()

	for _, c := range report.PrimaryHolderBankruptcies {
		m.statusMsg = fmt.Sprintf("%s went bankrupt; your shares are worthless", c.Name)
	}

	if m.session.GoalReached() {
		m.gameOver = true
		m.statusMsg = "Goal reached!"
	} else if m.session.GoalFailed() {
		m.gameOver = true
		m.statusMsg = "Out of time"
	}

	m.refreshPanels()
}

func (m *Model) handleTrade(msg panels.TradeSubmitMsg) {
	if msg.Company == nil || msg.Company.Bankrupt {
		m.statusMsg = "Cannot trade a bankrupt company"
		return
	}

	player := m.session.Player
	switch msg.Side {
	case panels.SideBuy:
		if player.Buy(msg.Company, msg.Quantity) {
			m.statusMsg = fmt.Sprintf("Bought %d %s", msg.Quantity, msg.Company.Name)
		} else {
			m.statusMsg = "Buy failed: insufficient cash"
		}
	case panels.SideSell:
		if player.Sell(msg.Company, msg.Quantity) {
			m.statusMsg = fmt.Sprintf("Sold %d %s", msg.Quantity, msg.Company.Name)
		} else {
			m.statusMsg = "Sell failed: not enough shares"
		}
	}
	m.refreshPanels()
}

func (m *Model) refreshPanels() {
	mkt := m.session.Market
	m.companyPanel.SetCompanies(mkt.Companies())
	m.newsPanel.SetItems(mkt.RecentMessages())
	m.portfolioPanel.Refresh(m.session.Player, mkt, m.session.Day())
	m.syncSelection()
}

// View renders the UI.
func (m *Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	m.companyPanel.SetFocus(m.focusedPanel == FocusCompanies)
	m.chartPanel.SetFocus(m.focusedPanel == FocusChart)
	m.newsPanel.SetFocus(m.focusedPanel == FocusNews)
	m.portfolioPanel.SetFocus(m.focusedPanel == FocusPortfolio)
	m.tradePanel.SetFocus(m.focusedPanel == FocusTrade)

	// Layout:
	// ┌───────────────┬──────────────────────┐
	// │  Companies    │        Chart         │
	// │               │                      │
	// ├───────────────┼───────────┬──────────┤
	// │     News      │ Portfolio │  Trade   │
	// └───────────────┴───────────┴──────────┘

	leftWidth := m.width * 2 / 5
	rightWidth := m.width - leftWidth

	topHeight := (m.height - 3) * 3 / 5
	bottomHeight := m.height - topHeight - 3

	m.companyPanel.SetSize(leftWidth, topHeight)
	m.chartPanel.SetSize(rightWidth, topHeight)

	topRow := lipgloss.JoinHorizontal(lipgloss.Top,
		m.companyPanel.View(),
		m.chartPanel.View(),
	)

	portfolioWidth := rightWidth * 3 / 5
	tradeWidth := rightWidth - portfolioWidth

	m.newsPanel.SetSize(leftWidth, bottomHeight)
	m.portfolioPanel.SetSize(portfolioWidth, bottomHeight)
	m.tradePanel.SetSize(tradeWidth, bottomHeight)

	bottomRow := lipgloss.JoinHorizontal(lipgloss.Top,
		m.newsPanel.View(),
		m.portfolioPanel.View(),
		m.tradePanel.View(),
	)

	statusBar := m.renderStatusBar()

	return lipgloss.JoinVertical(lipgloss.Left, topRow, bottomRow, statusBar)
}

func (m *Model) renderStatusBar() string {
	econ := m.session.Market.Economy()
	day := fmt.Sprintf("Day %d/%d", m.session.Day(), m.session.GoalDays())
	condition := econ.Condition().String()
	value := "Value " + styles.FormatMoney(m.session.PlayerValue())

	state := ""
	switch {
	case m.gameOver && m.session.GoalReached():
		state = " │ " + styles.GoalReachedStyle.Render("GOAL REACHED")
	case m.gameOver:
		state = " │ " + styles.GoalFailedStyle.Render("GAME OVER")
	case m.paused:
		state = " │ PAUSED (n: step)"
	}

	help := styles.StatusBarKeyStyle.Render("tab") + styles.StatusBarDescStyle.Render(" panels") +
		" │ " + styles.StatusBarKeyStyle.Render("space") + styles.StatusBarDescStyle.Render(" pause") +
		" │ " + styles.StatusBarKeyStyle.Render("q") + styles.StatusBarDescStyle.Render(" quit")

	status := ""
	if m.statusMsg != "" {
		status = " │ " + m.statusMsg
	}

	line := fmt.Sprintf("%s │ %s │ %s%s │ %s%s", day, condition, value, state, help, status)
	return styles.StatusBarStyle.Width(m.width).Render(line)
}
