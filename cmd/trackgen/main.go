// trackgen generates single-track motorcycle levels: a corridor between two
// walls whose floor is either a row of spikes or a random walk.
//
// Usage:
//
//	trackgen generate            - Generate a level and write it to a YAML file
//	trackgen list                - List track templates
//	trackgen render              - Print an ASCII rendering of a level
//	trackgen preview             - Browse levels interactively
//	trackgen check <file>        - Check the topology of a level file
//	trackgen history             - Show previously generated levels
//	trackgen serve               - Serve the preview over SSH
//
// Global flags:
//
//	--seed <hex>      - 64 hex digit seed (default: $TRACKGEN_SEED or random)
//	--config <path>   - Track config YAML
//	--preset <name>   - Roughness preset: easy, normal, hard
//	--db <path>       - History database (default: ~/.trackgen/history.db)
//	--verbose         - Debug logging
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/trackgen/internal/storage"
	// Import templates to register them
	_ "github.com/vovakirdan/trackgen/internal/templates"
)

var (
	// Global flags
	flagSeed    string
	flagConfig  string
	flagPreset  string
	flagDBPath  string
	flagVerbose bool

	logger = newLogger()
)

func newLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "trackgen",
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "trackgen",
	Short: "trackgen - procedural single-track level generator",
	Long: `trackgen builds the boundary polygon of a motorcycle track level:
a corridor between a left and a right wall whose floor is filled with
spikes or an irregular random walk, plus a start and an exit object.

The same seed always produces the same level. Every run prints its seed;
pass it back with --seed (or $TRACKGEN_SEED) to reproduce a level.

Examples:
  trackgen generate -o level.yaml
  trackgen generate --template canyon --preset hard
  trackgen render --seed <64 hex digits>
  trackgen preview --template bumpy
  trackgen serve --ssh :2222`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagSeed, "seed", "", "Seed as 64 hex digits (default: $TRACKGEN_SEED or random)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to track config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Roughness preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to history database")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}
