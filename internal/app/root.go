package app

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/wisdomwellbeing/resourcectl/internal/config"
	"github.com/wisdomwellbeing/resourcectl/internal/tui"
	"github.com/wisdomwellbeing/resourcectl/internal/util"
	"go.uber.org/zap"
)

var (
	cfg    *config.Config
	logger = zap.NewNop()

	flagNoColor       bool
	flagNoInteractive bool
	flagConfig        string
	flagCatalogs      []string
	flagLatency       time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "resourcectl",
	Short: "Browse the Wisdom Wellbeing resource catalog",
	Long: `resourcectl browses a catalog of wellbeing resources: podcasts, articles,
newsletters, recipes, fitness sessions and meditations.

Search by title or tag, narrow by category, sort by date, category or
duration. Use the terminal browser, plain text output, a static HTML page
or the built-in web server.

Run 'resourcectl' with no arguments to launch the interactive browser.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if tui.ShouldUseTUI(cmd) {
			return runBrowser(cmd, cfg.DefaultView())
		}
		return cmd.Help()
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	pf.BoolVar(&flagNoInteractive, "no-interactive", false, "Disable interactive TUI mode")
	pf.StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/resourcectl/config.yml)")
	pf.StringArrayVar(&flagCatalogs, "catalog", nil, "YAML catalog to read instead of the built-in one (repeatable)")
	pf.DurationVar(&flagLatency, "latency", 0, "Simulated fetch latency for the browser and server (default from config)")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		util.InitColor(flagNoColor)

		var err error
		cfg, err = config.LoadFile(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if len(flagCatalogs) > 0 {
			cfg.Source.Catalogs = make([]string, len(flagCatalogs))
			for i, c := range flagCatalogs {
				cfg.Source.Catalogs[i] = util.ExpandHome(c)
			}
		}
		if cmd.Flags().Changed("latency") {
			cfg.Source.Latency = flagLatency
		}

		logger, err = newLogger(cfg.Log)
		if err != nil {
			return err
		}
		logger.Debug("config loaded",
			zap.Strings("catalogs", cfg.Source.Catalogs),
			zap.Duration("latency", cfg.Source.Latency),
		)
		return nil
	}

	rootCmd.AddCommand(
		newInitCmd(),
		newBrowseCmd(),
		newSearchCmd(),
		newCategoriesCmd(),
		newTagsCmd(),
		newInfoCmd(),
		newIndexCmd(),
		newExportCmd(),
		newServeCmd(),
		newVersionCmd(),
		newCompletionCmd(),
	)
}

// ok prints a green success line.
func ok(format string, a ...interface{}) {
	fmt.Println(color.GreenString("✓"), fmt.Sprintf(format, a...))
}

// warn prints a yellow warning line.
func warn(format string, a ...interface{}) {
	fmt.Fprintln(os.Stderr, color.YellowString("!"), fmt.Sprintf(format, a...))
}

// header prints a cyan section heading.
func header(format string, a ...interface{}) {
	fmt.Println(color.CyanString(fmt.Sprintf(format, a...)))
}

func printField(label, value string) {
	fmt.Printf("  %-14s %s\n", color.CyanString(label+":"), value)
}
