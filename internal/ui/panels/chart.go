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

// timeframes maps chart modes to the number of days per candle.
var timeframes = []struct {
	label string
	days  int
}{
	{"1D", 1},
	{"1W", 7},
	{"1M", 30},
	{"1Y", 360},
}

// ChartPanel draws a candlestick chart for one company.
type ChartPanel struct {
	company        *market.Company
	timeframeIndex int

	focused bool
	width   int
	height  int
}

// NewChartPanel creates the candlestick chart panel.
func NewChartPanel() *ChartPanel {
	return &ChartPanel{}
}

// Init initializes the panel.
func (p *ChartPanel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the panel.
func (p *ChartPanel) Update(msg tea.Msg) (*ChartPanel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !p.focused {
			return p, nil
		}
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("left", "h"))):
			if p.timeframeIndex > 0 {
				p.timeframeIndex--
			}
		case key.Matches(msg, key.NewBinding(key.WithKeys("right", "l"))):
			if p.timeframeIndex < len(timeframes)-1 {
				p.timeframeIndex++
			}
		}
	}
	return p, nil
}

// View renders the panel.
func (p *ChartPanel) View() string {
	name := "no company"
	var candles []market.Candle
	if p.company != nil {
		name = p.company.Name
		tf := timeframes[p.timeframeIndex]
		candles = market.AggregateCandles(p.company.Candles, tf.days)
	}

	var content strings.Builder
	if len(candles) == 0 {
		content.WriteString(styles.MutedStyle.Render("No price history yet"))
	} else {
		content.WriteString(p.renderChart(p.width-6, p.height-6, candles))
	}

	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}

	tf := timeframes[p.timeframeIndex]
	title := styles.RenderTitle(fmt.Sprintf("Chart - %s [%s]", name, tf.label), p.focused)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, content.String())

	return panelStyle.Width(p.width - 2).Height(p.height - 2).Render(panel)
}

func (p *ChartPanel) renderChart(width, height int, candles []market.Candle) string {
	// 11 columns for the price axis, 2 per candle.
	chartWidth := width - 12
	if chartWidth < 10 {
		chartWidth = 10
	}
	candlesToShow := chartWidth / 2
	if candlesToShow < 1 {
		candlesToShow = 1
	}
	if candlesToShow > len(candles) {
		candlesToShow = len(candles)
	}
	display := candles[len(candles)-candlesToShow:]

	minPrice := display[0].Low
	maxPrice := display[0].High
	for _, c := range display {
		if c.Low < minPrice {
			minPrice = c.Low
		}
		if c.High > maxPrice {
			maxPrice = c.High
		}
	}
	priceRange := maxPrice - minPrice
	if priceRange == 0 {
		priceRange = 1
	}
	padding := priceRange * 0.1
	minPrice -= padding
	maxPrice += padding

	chartHeight := height - 1
	if chartHeight < 5 {
		chartHeight = 5
	}

	var result strings.Builder
	for row := 0; row < chartHeight; row++ {
		price := yToPrice(row, minPrice, maxPrice, chartHeight)
		result.WriteString(styles.ChartAxisStyle.Render(fmt.Sprintf("%10s │", styles.FormatMoney(price))))

		for _, candle := range display {
			char := candleChar(candle, row, minPrice, maxPrice, chartHeight)
			style := styles.CandleUpStyle
			if candle.Close < candle.Open {
				style = styles.CandleDownStyle
			}
			result.WriteString(style.Render(string(char)))
			result.WriteString(" ")
		}
		result.WriteString("\n")
	}

	result.WriteString(styles.ChartAxisStyle.Render("───────────┴"))
	for range display {
		result.WriteString(styles.ChartAxisStyle.Render("──"))
	}

	return result.String()
}

func candleChar(candle market.Candle, row int, minPrice, maxPrice float64, height int) rune {
	rowPrice := yToPrice(row, minPrice, maxPrice, height)

	bodyTop := candle.Open
	bodyBottom := candle.Close
	if candle.Close > candle.Open {
		bodyTop = candle.Close
		bodyBottom = candle.Open
	}

	tolerance := (maxPrice - minPrice) / float64(height*2)
	switch {
	case rowPrice <= bodyTop+tolerance && rowPrice >= bodyBottom-tolerance:
		return '┃'
	case rowPrice <= candle.High+tolerance && rowPrice > bodyTop:
		return '│'
	case rowPrice >= candle.Low-tolerance && rowPrice < bodyBottom:
		return '│'
	}
	return ' '
}

func yToPrice(y int, minPrice, maxPrice float64, height int) float64 {
	if height <= 1 {
		return minPrice
	}
	ratio := float64(y) / float64(height-1)
	return maxPrice - ratio*(maxPrice-minPrice)
}

// SetFocus sets the focus state of the panel.
func (p *ChartPanel) SetFocus(focused bool) {
	p.focused = focused
}

// SetSize sets the panel dimensions.
func (p *ChartPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetCompany points the chart at a company.
func (p *ChartPanel) SetCompany(c *market.Company) {
	p.company = c
}
