package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"plandash/internal/config"
	"plandash/internal/dashboard"
	"plandash/internal/layout"
	appLog "plandash/internal/log"
	"plandash/internal/record"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// rootFlags holds CLI flag values; CLI flags override config file values.
type rootFlags struct {
	configPath string
	date       string
	width      int
	stack      bool
}

func newRootCmd() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:   "plandash",
		Short: "Render planner output as a terminal dashboard",
		Long: `plandash reads one planner record batch as JSON on stdin and prints a
dashboard grid built from the batch's named views. View keys may carry a
position suffix ("cal__r:1;c:1"); views without one fall back to the
positions map in the config file, and if any view still resolves no
position the whole output is printed as a vertical stack instead.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := run(flags); err != nil {
				appLog.Error("dashboard rendering failed", err)
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.configPath, "config", "", "Path to config file (built-in defaults when empty)")
	cmd.Flags().StringVar(&flags.date, "date", "", "Reference date as YYYY-MM-DD (default: today)")
	cmd.Flags().IntVar(&flags.width, "width", 0, "Panel width override")
	cmd.Flags().BoolVar(&flags.stack, "stack", false, "Print panels stacked vertically, ignoring positions")

	return cmd
}

func run(flags rootFlags) error {
	conf, err := loadConfig(flags.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	switch conf.LogLevel {
	case "debug":
		appLog.SetLevel(appLog.LevelDebug)
	case "error":
		appLog.SetLevel(appLog.LevelError)
	default:
		appLog.SetLevel(appLog.LevelInfo)
	}

	// CLI --width overrides config width if provided.
	if flags.width > 0 {
		conf.Width = flags.width
	}

	// The reference date is fixed here and threaded down explicitly;
	// nothing below this point reads the clock.
	current := time.Now()
	if flags.date != "" {
		current, err = record.ParseDate(flags.date)
		if err != nil {
			return err
		}
	}

	appLog.Debug("effective config",
		"width", conf.Width,
		"theme", conf.Theme,
		"date", current.Format(record.DateLayout),
		"positions", len(conf.Positions),
		"stack", flags.stack,
	)

	views, err := record.DecodeBatch(os.Stdin)
	if err != nil {
		return err
	}
	if len(views) == 0 {
		appLog.Info("empty batch, nothing to render")
		return nil
	}

	builder, err := dashboard.NewBuilder(current, conf.Theme, conf.Width, conf.Positions)
	if err != nil {
		return err
	}
	sections, err := builder.Sections(views)
	if err != nil {
		return err
	}

	var out string
	if flags.stack || !dashboard.AllPositioned(sections) {
		if !flags.stack {
			appLog.Info("one or more views have no position; using stacked output")
		}
		out = dashboard.Stack(sections)
	} else {
		panels, err := dashboard.Panels(sections)
		if err != nil {
			return err
		}
		grid, err := layout.BuildGrid(panels)
		if err != nil {
			return err
		}
		out = grid.Render()
	}

	fmt.Fprintln(os.Stdout, out)
	appLog.Debug("dashboard rendered", "views", len(views))
	return nil
}

// loadConfig loads the YAML config, or returns built-in defaults when no
// path was given.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.DefaultConfig(), nil
	}
	return config.Load(path)
}
