package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"searchbar/internal/config"
)

type rootOptions struct {
	configPath string
	dataSource string
	logFile    string
	logLevel   string
	noAutosave bool
}

// NewRootCommand creates the root command
func NewRootCommand(version, commit, date string) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "searchbar",
		Short: "Animated terminal search bar",
		Long: `searchbar is a terminal search widget. Type a query and, after a short
simulated lookup, results from a static data document appear grouped into
category tabs with animated counters. Tabs can be shown or hidden from the
settings panel (ctrl+t).`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", config.DefaultFileName, "config file path")
	flags.StringVarP(&opts.dataSource, "data", "d", "", "result document (file path or http(s) URL, .json or .yaml)")
	flags.StringVar(&opts.logFile, "log-file", "", "log file path")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.Flags().BoolVar(&opts.noAutosave, "no-autosave", false, "do not write tab changes back to the config file on exit")

	rootCmd.AddCommand(newCountsCommand(opts))
	rootCmd.AddCommand(newVersionCommand(version, commit, date))

	return rootCmd
}

func newVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display version number, build commit, date, and runtime information",
		Run: func(cmd *cobra.Command, args []string) {
			displayVersion := version
			displayCommit := commit
			displayDate := date

			if version == "dev" || version == "" {
				displayVersion = "development"
			}
			if commit == "none" || commit == "" {
				displayCommit = "local-build"
			}
			if date == "unknown" || date == "" {
				displayDate = "local-build"
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "searchbar %s (%s) built on %s\n", displayVersion, displayCommit, displayDate)
			fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}

// apply copies explicitly set flags over the file configuration
func (o *rootOptions) apply(cfg *config.Config) {
	if o.dataSource != "" {
		cfg.DataSource = o.dataSource
	}
	if o.logFile != "" {
		cfg.Log.File = o.logFile
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if o.noAutosave {
		cfg.UISettings.AutosaveOnExit = false
	}
}
