package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/trackgen/internal/core"
	"github.com/vovakirdan/trackgen/internal/level/formats"
	"github.com/vovakirdan/trackgen/internal/platform/tui"
)

var (
	flagRenderTemplate string
	flagRenderStrategy string
	flagRenderWidth    int
	flagRenderHeight   int
	flagRenderColor    bool
	flagRenderFile     string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print an ASCII rendering of a level",
	Long: `Generate a level (or load one with --file) and print it scaled to the
terminal. P marks the player start, E the exit.

Examples:
  trackgen render
  trackgen render --template canyon --width 120 --height 20
  trackgen render --file level.yaml --color`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&flagRenderTemplate, "template", "t", "", "Track template")
	renderCmd.Flags().StringVar(&flagRenderStrategy, "strategy", "", "Override the floor strategy: segments or walk")
	renderCmd.Flags().IntVar(&flagRenderWidth, "width", 0, "Columns (default: terminal width)")
	renderCmd.Flags().IntVar(&flagRenderHeight, "height", 0, "Rows (default: terminal height - 2)")
	renderCmd.Flags().BoolVar(&flagRenderColor, "color", false, "Colorize the output")
	renderCmd.Flags().StringVarP(&flagRenderFile, "file", "f", "", "Render an existing level file instead of generating")
}

func runRender(_ *cobra.Command, _ []string) error {
	width, height := terminalSize()
	if flagRenderWidth > 0 {
		width = flagRenderWidth
	}
	if flagRenderHeight > 0 {
		height = flagRenderHeight
	}

	screen := core.NewScreen(width, height)

	if flagRenderFile != "" {
		lvl, err := formats.Load(flagRenderFile)
		if err != nil {
			return err
		}
		tui.DrawLevel(screen, lvl)
		printScreen(screen)
		return nil
	}

	req, err := buildRequest(flagRenderTemplate, flagRenderStrategy)
	if err != nil {
		return err
	}

	out, err := build(req)
	if out != nil {
		tui.DrawLevel(screen, out.Level)
		printScreen(screen)
	}
	fmt.Printf("seed: %s\n", req.Seed)
	return err
}

func printScreen(s *core.Screen) {
	if flagRenderColor {
		fmt.Println(tui.RenderScreen(s))
		return
	}
	fmt.Println(s.String())
}

// terminalSize returns the size of the terminal on stdout, leaving two rows
// for the prompt and the seed line.
func terminalSize() (width, height int) {
	def := core.DefaultConfig()
	width, height = def.ScreenW, def.ScreenH
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, max(height-2, 3)
}
