package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/trackgen/internal/platform/tui"
	"github.com/vovakirdan/trackgen/internal/rng"
	"github.com/vovakirdan/trackgen/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistorySeed  string
	flagHistoryStats bool
	flagHistoryClear bool
	flagHistoryPlain bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show previously generated levels",
	Long: `Display the generation history stored in the history database.

On a terminal the history opens as an interactive table (Tab filters by
template). Use --plain for a text listing.

Examples:
  trackgen history
  trackgen history --limit 50 --plain
  trackgen history --seed <64 hex digits>
  trackgen history --stats
  trackgen history --clear`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 20, "Number of generations to show")
	historyCmd.Flags().StringVar(&flagHistorySeed, "seed", "", "Only show generations made from this seed")
	historyCmd.Flags().BoolVar(&flagHistoryStats, "stats", false, "Show per-template statistics")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete the whole history")
	historyCmd.Flags().BoolVar(&flagHistoryPlain, "plain", false, "Print a text listing instead of the table")
}

func runHistory(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	switch {
	case flagHistoryClear:
		if err := store.Clear(); err != nil {
			return err
		}
		logger.Info("history cleared", "db", flagDBPath)
		return nil

	case flagHistoryStats:
		return printStats(store)
	}

	var gens []storage.Generation
	if flagHistorySeed != "" {
		seed, perr := historySeed(flagHistorySeed)
		if perr != nil {
			return perr
		}
		gens, err = store.BySeed(seed)
	} else {
		gens, err = store.Recent(flagHistoryLimit)
	}
	if err != nil {
		return err
	}

	w, h, termErr := term.GetSize(int(os.Stdout.Fd()))
	if flagHistoryPlain || termErr != nil {
		printHistory(gens)
		return nil
	}
	return tui.RunHistory(gens, w, h)
}

// historySeed normalises a --seed filter to the stored form.
func historySeed(s string) (string, error) {
	seed, err := rng.ParseSeed(s)
	if err != nil {
		return "", fmt.Errorf("invalid --seed: %w", err)
	}
	return seed.String(), nil
}

func printHistory(gens []storage.Generation) {
	if len(gens) == 0 {
		fmt.Println("No generations recorded yet.")
		return
	}

	fmt.Printf("  %-16s  %-10s  %-8s  %-7s  %5s  %6s  %s\n", "Date", "Template", "Strategy", "Size", "Verts", "Spikes", "Seed")
	for _, g := range gens {
		template := g.Template
		if template == "" {
			template = "-"
		}
		fmt.Printf("  %-16s  %-10s  %-8s  %-7s  %5d  %6d  %s\n",
			g.CreatedAt.Format("2006-01-02 15:04"),
			template,
			g.Strategy,
			fmt.Sprintf("%gx%g", g.Width, g.Height),
			g.VertexCount,
			g.SpikeCount,
			g.Seed,
		)
	}
}

func printStats(store *storage.Store) error {
	stats, err := store.Stats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Println("No generations recorded yet.")
		return nil
	}

	names := make([]string, 0, len(stats))
	for name := range stats {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Printf("  %-10s  %5s  %9s  %10s  %s\n", "Template", "Count", "Avg verts", "Max spikes", "Last")
	for _, name := range names {
		st := stats[name]
		label := name
		if label == "" {
			label = "-"
		}
		fmt.Printf("  %-10s  %5d  %9.1f  %10d  %s\n",
			label, st.Count, st.AvgVertices, st.MaxSpikes, st.LastGenerated.Format("2006-01-02 15:04"))
	}
	return nil
}
