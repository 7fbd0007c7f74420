package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"searchbar/internal/config"
	"searchbar/internal/domain"
	"searchbar/internal/logging"
	"searchbar/internal/session"
	"searchbar/internal/store"
)

func newCountsCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "counts",
		Short: "Print result counts per tab",
		Long: `Load the result document and print how many results fall under each tab,
along with whether the tab is currently enabled.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configSvc := config.NewConfigService(opts.configPath)
			cfg, loadErr := configSvc.Load()
			if loadErr != nil {
				cfg = config.DefaultConfig()
			}
			opts.apply(cfg)

			if err := initLogging(cfg); err != nil {
				return fmt.Errorf("failed to initialize logging: %w", err)
			}
			defer func() { _ = logging.Sync() }()
			if loadErr != nil {
				logging.Warn("failed to load config, using defaults", zap.String("path", configSvc.Path()), zap.Error(loadErr))
			}

			results, err := store.Open(cmd.Context(), cfg.DataSource, logging.L())
			if err != nil {
				return fmt.Errorf("failed to load results: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderCounts(session.CalculateCounts(results.Records()), cfg.EnabledTabs()))
			return nil
		},
	}
}

// renderCounts renders the per-tab counts as a table
func renderCounts(counts domain.CategoryCounts, enabled domain.EnabledTabs) string {
	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Tab", "Results", "Enabled").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, c := range domain.Categories {
		state := "yes"
		if !enabled.IsVisible(c) {
			state = "no"
		}
		t.Row(c.Info().Label, strconv.Itoa(counts[c]), state)
	}

	return t.String()
}
