// Package cli wires the simulation into a command line interface.
package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/hwanchang/stocksim/internal/config"
	"github.com/hwanchang/stocksim/internal/game"
	"github.com/hwanchang/stocksim/internal/ui"
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "stocksim",
		Short: "stocksim - a stock market trading simulation",
		Long: `stocksim simulates a daily stock market: listed companies with candlestick
price history, a macro economy cycling through boom and crisis, sector and
policy news, corporate actions, and bot traders competing with the player.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd)
		},
	}

	rootCmd.AddCommand(newTUICmd())
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newVersionCmd())

	rootCmd.PersistentFlags().String("config", "", "configuration file path (TOML)")
	rootCmd.PersistentFlags().Int64("seed", 0, "random seed (0 picks one from the clock)")

	return rootCmd
}

func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Play the simulation in the terminal UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd)
		},
	}
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the simulation headless and print a summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			days, _ := cmd.Flags().GetInt("days")
			return runHeadless(cmd, days)
		},
	}
	cmd.Flags().Int("days", 90, "number of days to simulate")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("stocksim v1.0.0")
		},
	}
}

// loadSession builds a session from the config file and flags.
func loadSession(cmd *cobra.Command) (*game.Session, *config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}

	if seed, _ := cmd.Flags().GetInt64("seed"); seed != 0 {
		cfg.Simulation.Seed = seed
	}

	logger := config.NewLogger(cfg.Logging)
	session, err := game.NewSession(cfg.GameConfig(), logger)
	if err != nil {
		return nil, nil, err
	}
	return session, cfg, nil
}

func runTUI(cmd *cobra.Command) error {
	session, cfg, err := loadSession(cmd)
	if err != nil {
		return err
	}

	interval := time.Duration(cfg.UI.DayIntervalMS) * time.Millisecond
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}

	model := ui.NewModel(session, interval)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

func runHeadless(cmd *cobra.Command, days int) error {
	session, _, err := loadSession(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i := 0; i < days; i++ {
		report := session.AdvanceDay()
		for _, c := range report.NewlyBankrupt {
			fmt.Fprintf(out, "day %d: %s went bankrupt\n", report.Day, c.Name)
		}
		if session.GoalReached() {
			fmt.Fprintf(out, "day %d: goal reached\n", session.Day())
			break
		}
	}

	m := session.Market
	econ := m.Economy()
	fmt.Fprintf(out, "\n=== day %d ===\n", session.Day())
	fmt.Fprintf(out, "economy: %s (sentiment %.1f)\n", econ.Condition(), econ.SentimentScore)
	fmt.Fprintf(out, "listed companies: %d, bankruptcies: %d\n",
		len(m.Companies()), len(m.BankruptCompanies()))
	fmt.Fprintf(out, "player value: %.0f (goal %.0f)\n", session.PlayerValue(), session.GoalAmount())
	for _, bot := range session.Bots {
		fmt.Fprintf(out, "bot %s [%s]: %.0f\n",
			bot.Name, bot.StrategyName(), bot.PortfolioValue(m))
	}
	return nil
}
