package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/trackgen/internal/level"
	"github.com/vovakirdan/trackgen/internal/level/formats"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Check the topology of level files",
	Long: `Load level files and run the topology check on each: closed polygons
with at least three vertices, no zero-length edges, no self-intersections,
exactly one player and at least one exit.

Examples:
  trackgen check level.yaml
  trackgen check tracks/*.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func runCheck(_ *cobra.Command, args []string) error {
	failed := 0
	for _, path := range args {
		lvl, err := formats.Load(path)
		if err == nil {
			err = level.CheckTopology(lvl)
		}

		if err != nil {
			failed++
			var topo level.TopologyError
			if errors.As(err, &topo) {
				logger.Error("topology check failed", "file", path, "code", topo.Code, "message", topo.Message)
			} else {
				logger.Error("cannot check level", "file", path, "error", err)
			}
			continue
		}

		fmt.Printf("%s: ok (%d polygons, %d vertices, %d objects)\n",
			path, len(lvl.Polygons), lvl.VertexCount(), len(lvl.Objects))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d levels failed", failed, len(args))
	}
	return nil
}
