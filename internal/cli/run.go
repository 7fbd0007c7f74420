package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"searchbar/internal/config"
	"searchbar/internal/eventbus"
	"searchbar/internal/logging"
	"searchbar/internal/session"
	"searchbar/internal/ui"
)

func runTUI(cmd *cobra.Command, opts *rootOptions) error {
	bus := eventbus.New()
	defer bus.Close()

	configSvc := config.NewConfigServiceWithBus(opts.configPath, bus)
	cfg, created, loadErr := config.LoadOrCreate(configSvc)
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	opts.apply(cfg)

	if err := initLogging(cfg); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer func() { _ = logging.Sync() }()

	switch {
	case loadErr != nil:
		logging.Warn("failed to load config, using defaults", zap.String("path", configSvc.Path()), zap.Error(loadErr))
	case created:
		logging.Info("created config", zap.String("path", configSvc.Path()))
	default:
		logging.Info("loaded config", zap.String("path", configSvc.Path()))
	}

	bus.Subscribe(eventbus.EventTabsChanged, saveTabs(configSvc))
	bus.Subscribe(eventbus.EventLinkCopied, logEvent)
	bus.Subscribe(eventbus.EventResultsLoadFailed, logEvent)

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, os.Interrupt)
	defer cancel()

	model := ui.NewModel(ctx, bus, ui.Options{
		Source: cfg.DataSource,
		Timing: session.Timing{
			LookupDelay:    cfg.Timing.LookupDelay(),
			CopyResetDelay: cfg.Timing.CopyResetDelay(),
			CountTick:      cfg.Timing.CountTick(),
		},
		EnabledTabs:    cfg.EnabledTabs(),
		ShowHelp:       cfg.UISettings.ShowHelp,
		AutosaveOnExit: cfg.UISettings.AutosaveOnExit,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	model.SetProgram(p)

	logging.Info("starting UI", zap.String("data", cfg.DataSource))
	_, err := p.Run()

	// Drain pending events so a tab change published on quit is saved.
	bus.Close()

	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		logging.Error("error running program", zap.Error(err))
		return fmt.Errorf("error running program: %w", err)
	}
	logging.Info("UI exited normally")

	return nil
}

// saveTabs writes the enabled tab set back to the config file. The file is
// re-read first so flag overrides never end up persisted.
func saveTabs(configSvc config.ConfigService) eventbus.EventHandler {
	return func(e eventbus.DomainEvent) {
		event, ok := e.(eventbus.TabsChangedEvent)
		if !ok {
			return
		}

		cfg, err := configSvc.Load()
		if err != nil {
			logging.Warn("config unreadable, saving tabs over defaults", zap.String("path", configSvc.Path()), zap.Error(err))
			cfg = config.DefaultConfig()
		}
		cfg.SetEnabledTabs(event.Tabs)

		if err := configSvc.Save(cfg); err != nil {
			logging.Error("failed to save config", zap.String("path", configSvc.Path()), zap.Error(err))
			return
		}
		logging.Info("config saved", zap.String("path", configSvc.Path()))
	}
}

// logEvent records user-facing events that have no other consumer
func logEvent(e eventbus.DomainEvent) {
	switch event := e.(type) {
	case eventbus.LinkCopiedEvent:
		logging.Info("link copied", zap.Int("index", event.Index), zap.String("title", event.Title))
	case eventbus.ResultsLoadFailedEvent:
		logging.Warn("running with no results", zap.String("source", event.Source), zap.Error(event.Err))
	}
}

func initLogging(cfg *config.Config) error {
	return logging.Init(logging.Config{
		Level:      cfg.Log.Level,
		Format:     "console",
		OutputPath: cfg.Log.File,
	})
}
