package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/bufjump/bufjump/config"
)

var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

var (
	flagConfig  string
	flagLogFile string
	flagNoTmux  bool
)

func main() {
	root := &cobra.Command{
		Use:          "bufjump",
		Short:        "Jump to a file open in any of your editor sessions",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return runPicker(cfg)
		},
	}

	root.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "Path to config file")
	root.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write debug logs to this file")
	root.PersistentFlags().BoolVar(&flagNoTmux, "no-tmux", false, "Skip scanning tmux panes")

	root.AddCommand(newListCmd())
	root.AddCommand(newLabelCmd())
	root.AddCommand(newVersionCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	path := flagConfig
	explicit := path != ""
	if !explicit {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path, explicit)
	if err != nil {
		return nil, err
	}
	if flagNoTmux {
		off := false
		cfg.Tmux = &off
	}
	if flagLogFile != "" {
		cfg.LogFile = flagLogFile
	}
	setupLogging(cfg.LogFile)
	return cfg, nil
}

// setupLogging sends logs to the configured file, or nowhere. Logging to
// stderr would bleed into the alt-screen TUI.
func setupLogging(path string) {
	if path == "" {
		log.SetOutput(io.Discard)
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return
	}
	log.SetOutput(f)
	log.SetLevel(log.DebugLevel)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "version=%s commit=%s buildDate=%s\n", version, commit, buildDate)
		},
	}
}
