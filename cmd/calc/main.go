// cmd/calc runs the calculator headless: config defaults, optional flag
// overrides, one comparison printed to stdout.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zacharyhyde/listprofit/internal/config"
	"github.com/zacharyhyde/listprofit/internal/export"
	"github.com/zacharyhyde/listprofit/internal/format"
	"github.com/zacharyhyde/listprofit/internal/funnel"
	"github.com/zacharyhyde/listprofit/internal/logger"
)

type calcFlags struct {
	configPath string
	exportOut  bool

	listSize      int
	avgOrderValue float64
	grossMargin   float64

	currentSends   float64
	currentOpen    float64
	currentClick   float64
	currentConvert float64

	newSends   float64
	newOpen    float64
	newClick   float64
	newConvert float64
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	flags := &calcFlags{}

	rootCmd := &cobra.Command{
		Use:   "calc",
		Short: "Project the yearly impact of changing email send frequency",
		Long: "calc multiplies list size, send frequency, and funnel rates through\n" +
			"a sends → opens → clicks → buyers → revenue → profit model for two\n" +
			"strategies and prints the yearly comparison.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, flags)
		},
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVar(&flags.configPath, "config", "configs/config.json", "path to config file")
	rootCmd.Flags().BoolVar(&flags.exportOut, "export", false, "write CSV and JSON exports")

	rootCmd.Flags().IntVar(&flags.listSize, "list-size", 0, "subscriber count (overrides config)")
	rootCmd.Flags().Float64Var(&flags.avgOrderValue, "aov", 0, "average order value in dollars (overrides config)")
	rootCmd.Flags().Float64Var(&flags.grossMargin, "margin", 0, "gross margin percent (overrides config)")

	rootCmd.Flags().Float64Var(&flags.currentSends, "current-sends", 0, "current sends per week (overrides config)")
	rootCmd.Flags().Float64Var(&flags.currentOpen, "current-open", 0, "current open rate percent (overrides config)")
	rootCmd.Flags().Float64Var(&flags.currentClick, "current-click", 0, "current click rate percent (overrides config)")
	rootCmd.Flags().Float64Var(&flags.currentConvert, "current-convert", 0, "current conversion rate percent (overrides config)")

	rootCmd.Flags().Float64Var(&flags.newSends, "new-sends", 0, "new sends per week (overrides config)")
	rootCmd.Flags().Float64Var(&flags.newOpen, "new-open", 0, "new open rate percent (overrides config)")
	rootCmd.Flags().Float64Var(&flags.newClick, "new-click", 0, "new click rate percent (overrides config)")
	rootCmd.Flags().Float64Var(&flags.newConvert, "new-convert", 0, "new conversion rate percent (overrides config)")

	return rootCmd
}

func run(cmd *cobra.Command, flags *calcFlags) error {
	cfg, err := config.LoadConfig(flags.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	applyOverrides(cmd, flags, cfg)

	// Overridden values bypass LoadConfig's validation, so re-check the
	// bounds before any of them reach a scenario.
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}

	current := cfg.CurrentScenario()
	proposed := cfg.NewScenario()
	comparison := funnel.Compare(current, proposed)

	printComparison(cmd, comparison)

	if flags.exportOut {
		appLogger, err := logger.CreatePrettyLogger(cfg.DebugLogging)
		if err != nil {
			return fmt.Errorf("failed to init logger: %w", err)
		}
		defer func() {
			_ = appLogger.Sync()
		}()

		exporter := export.NewComparisonExporter(cfg.ExportDir, appLogger)
		paths, err := exporter.ExportAll(current, proposed)
		if err != nil {
			appLogger.Error("Export failed", zap.Error(err))
			return err
		}
		for _, path := range paths {
			cmd.Printf("Exported %s\n", path)
		}
	}

	return nil
}

// applyOverrides copies any flag the user actually set over the config
// defaults. Unset flags leave the config untouched.
func applyOverrides(cmd *cobra.Command, flags *calcFlags, cfg *config.Config) {
	set := cmd.Flags().Changed

	if set("list-size") {
		cfg.ListSize = flags.listSize
	}
	if set("aov") {
		cfg.AvgOrderValue = flags.avgOrderValue
	}
	if set("margin") {
		cfg.GrossMarginPct = flags.grossMargin
	}

	if set("current-sends") {
		cfg.Current.SendsPerWeek = flags.currentSends
	}
	if set("current-open") {
		cfg.Current.OpenPercent = flags.currentOpen
	}
	if set("current-click") {
		cfg.Current.ClickPercent = flags.currentClick
	}
	if set("current-convert") {
		cfg.Current.ConvertPercent = flags.currentConvert
	}

	if set("new-sends") {
		cfg.New.SendsPerWeek = flags.newSends
	}
	if set("new-open") {
		cfg.New.OpenPercent = flags.newOpen
	}
	if set("new-click") {
		cfg.New.ClickPercent = flags.newClick
	}
	if set("new-convert") {
		cfg.New.ConvertPercent = flags.newConvert
	}
}

func printComparison(cmd *cobra.Command, c funnel.Comparison) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintln(w, "Metric\tCurrent\tNew\tUplift\t")
	row := func(label, cur, next, delta string) {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n", label, cur, next, delta)
	}

	row("Sends / year", format.Count(c.Current.SendsPerYear), format.Count(c.New.SendsPerYear), format.Count(c.New.SendsPerYear-c.Current.SendsPerYear))
	row("Total sends", format.Count(c.Current.TotalSends), format.Count(c.New.TotalSends), format.Count(c.New.TotalSends-c.Current.TotalSends))
	row("Opens / year", format.Count(c.Current.TotalOpens), format.Count(c.New.TotalOpens), format.Count(c.New.TotalOpens-c.Current.TotalOpens))
	row("Clicks / year", format.Count(c.Current.TotalClicks), format.Count(c.New.TotalClicks), format.Count(c.New.TotalClicks-c.Current.TotalClicks))
	row("Buyers / year", format.Count(c.Current.TotalBuyers), format.Count(c.New.TotalBuyers), format.Count(c.New.TotalBuyers-c.Current.TotalBuyers))
	row("Revenue / year", format.USD(c.Current.Revenue), format.USD(c.New.Revenue), format.SignedUSD(c.RevenueDelta))
	row("Profit / year", format.USD(c.Current.Profit), format.USD(c.New.Profit), format.SignedUSD(c.ProfitDelta))
	_ = w.Flush()

	cmd.Println()
	if c.Verdict() == funnel.VerdictPositive {
		cmd.Println("Even with conservative assumptions, you're adding serious top-line.")
	} else {
		cmd.Println("With these assumptions, the new strategy doesn't beat the current one.")
	}
}
