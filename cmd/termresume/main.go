package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/termresume/internal/app"
	"github.com/san-kum/termresume/internal/config"
	"github.com/san-kum/termresume/internal/logging"
	"github.com/san-kum/termresume/internal/platform"
	"github.com/san-kum/termresume/internal/tui"
)

var (
	configFile    string
	preset        string
	theme         string
	reducedMotion bool
	logPath       string
	verbose       bool
	dataDir       string

	width int

	logger = zap.NewNop()
)

// main registers the commands and runs the interactive resume when no
// subcommand is given.
func main() {
	rootCmd := &cobra.Command{
		Use:   "termresume",
		Short: "a resume that types itself into your terminal",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log, err := logging.New(logPath, verbose)
			if err != nil {
				return err
			}
			logger = log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
		RunE:         runInteractive,
		SilenceUsage: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "apply a named preset")
	pf.StringVar(&theme, "theme", "", "colour theme")
	pf.BoolVar(&reducedMotion, "reduced-motion", false, "skip typing and keep the graph still")
	pf.StringVar(&logPath, "log", os.Getenv("TERMRESUME_LOG"), "log file (logging is off when empty)")
	pf.BoolVar(&verbose, "verbose", false, "debug logging")
	pf.StringVar(&dataDir, "data", ".termresume", "run archive directory")

	printCmd := &cobra.Command{
		Use:   "print",
		Short: "type the resume to stdout and exit",
		RunE:  runPrint,
	}
	printCmd.Flags().IntVar(&width, "width", 100, "output width in columns")

	rootCmd.AddCommand(printCmd, newSimulateCmd(), newSnapshotCmd(), newRunsCmd(), newPlotCmd(),
		newThemesCmd(), newPresetsCmd(), newConfigCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig layers defaults, the config file, a preset, the environment
// (including a .env file) and finally explicit flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn("failed to read .env", zap.Error(err))
	}

	cfg := config.DefaultConfig()
	if configFile != "" {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}
	if preset != "" && !cfg.ApplyPreset(preset) {
		return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
	}
	cfg.ApplyEnv()

	flags := cmd.Flags()
	if flags.Changed("reduced-motion") {
		cfg.ReducedMotion = reducedMotion
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger.Debug("config loaded",
		zap.String("file", configFile),
		zap.String("preset", preset),
		zap.String("theme", cfg.Theme),
		zap.Bool("reduced_motion", cfg.ReducedMotion),
	)
	return cfg, nil
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	m := app.New(cfg, logger,
		app.WithOpener(platform.NewBrowser(logger)),
		app.WithFullscreen(true),
	)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		logger.Error("program failed", zap.Error(err))
		return err
	}
	return nil
}

func runPrint(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = tui.NewPrinter(os.Stdout, cfg, width, logger).Print(ctx)
	if ctx.Err() != nil {
		fmt.Println()
		return nil
	}
	return err
}
