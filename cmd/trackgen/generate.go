package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/trackgen/internal/level/formats"
	"github.com/vovakirdan/trackgen/internal/storage"
)

var (
	flagOutput    string
	flagTemplate  string
	flagStrategy  string
	flagNoHistory bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a level and write it to a file",
	Long: `Generate a level, check its topology and write it as YAML.

The config comes from --template, --config or the config search path
(~/.trackgen/configs/track.yaml, ./configs/track.yaml, built-in default).
The seed is printed so the level can be reproduced. A level that fails
the topology check is not written and the command exits with status 1.

Examples:
  trackgen generate
  trackgen generate -o tracks/spiky.yaml --template spiky
  trackgen generate --strategy walk --preset easy
  TRACKGEN_SEED=<64 hex digits> trackgen generate`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Output file (default: <level name>.yaml)")
	generateCmd.Flags().StringVarP(&flagTemplate, "template", "t", "", "Track template (see 'trackgen list')")
	generateCmd.Flags().StringVar(&flagStrategy, "strategy", "", "Override the floor strategy: segments or walk")
	generateCmd.Flags().BoolVar(&flagNoHistory, "no-history", false, "Do not record the level in the history database")
}

func runGenerate(_ *cobra.Command, _ []string) error {
	req, err := buildRequest(flagTemplate, flagStrategy)
	if err != nil {
		return err
	}

	// Print the seed before anything can fail so every run is reproducible.
	fmt.Printf("seed: %s\n", req.Seed)

	out, err := build(req)
	if err != nil {
		return err
	}

	path := flagOutput
	if path == "" {
		path = out.Level.Name + ".yaml"
	}
	if err := formats.Save(path, out.Level); err != nil {
		return err
	}

	st := out.Result.Stats
	logger.Info("level generated",
		"file", path,
		"strategy", st.Strategy,
		"vertices", st.Vertices,
		"merged", st.RawVertices-st.Vertices,
		"spikes", st.Spikes,
	)

	if !flagNoHistory {
		recordHistory(out.Generation(absPath(path)))
	}
	return nil
}

// recordHistory stores g, logging instead of failing: the level file is the
// result that matters.
func recordHistory(g storage.Generation) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open history database", "error", err)
		return
	}
	defer store.Close()

	if _, err := store.Record(g); err != nil {
		logger.Warn("could not record generation", "error", err)
		return
	}
	logger.Debug("generation recorded", "db", flagDBPath)
}

func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
