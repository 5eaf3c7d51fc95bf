package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath   string
	seedFlag     uint32
	latencyScale float64
	logLevel     string
)

var rootCmd = &cobra.Command{
	Use:   "mockbench",
	Short: "Deterministic mock backend for table benchmarks",
	Long: `mockbench serves seeded inventory, exception, tree and picking data with
simulated latency and reproducible failures.

Every call is journaled; use "report" to summarise a journal directory.`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configPath, "config", "c", "", "YAML config file (defaults apply when empty)")
	pf.Uint32Var(&seedFlag, "seed", 0, "override the configured seed")
	pf.Float64Var(&latencyScale, "latency-scale", 1, "override the configured latency scale (0 disables delays)")
	pf.StringVar(&logLevel, "log-level", "", "override the configured log level")

	rootCmd.AddCommand(serveCmd, tuiCmd, genCmd, reportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
