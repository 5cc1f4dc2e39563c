package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/trackgen/internal/config"
	"github.com/vovakirdan/trackgen/internal/platform/tui"
	"github.com/vovakirdan/trackgen/internal/storage"
	"github.com/vovakirdan/trackgen/internal/templates"
)

var (
	flagPreviewTemplate string
	flagPreviewSaveDir  string
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Browse generated levels interactively",
	Long: `Open an interactive viewer that renders levels in the terminal.

Controls:
  R/Space    - New seed
  Tab        - Next template (keeps the seed)
  Shift+Tab  - Previous template
  S          - Save the level as YAML
  ?          - Toggle help
  Q/Esc      - Quit

Examples:
  trackgen preview
  trackgen preview --template canyon --preset hard
  trackgen preview --config ./my-track.yaml --save-dir ./tracks`,
	Args: cobra.NoArgs,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().StringVarP(&flagPreviewTemplate, "template", "t", "", "Initial template (default: "+templates.DefaultID+")")
	previewCmd.Flags().StringVar(&flagPreviewSaveDir, "save-dir", ".", "Directory saved levels are written to")
}

func runPreview(_ *cobra.Command, _ []string) error {
	req, err := buildRequest(flagPreviewTemplate, "")
	if err != nil {
		return err
	}

	// Already validated by buildRequest.
	preset, _ := config.ParsePreset(flagPreset)

	opts := tui.PreviewOptions{
		Template: flagPreviewTemplate,
		Preset:   preset,
		Seed:     req.Seed,
		SaveDir:  flagPreviewSaveDir,
	}
	// Only an explicit --config replaces the template.
	if flagConfig != "" {
		opts.File = &req.File
	} else if opts.Template == "" {
		opts.Template = templates.DefaultID
	}

	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		opts.Width, opts.Height = w, h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open history database", "error", err)
	} else {
		defer store.Close()
		opts.Store = store
	}

	if abs, absErr := filepath.Abs(opts.SaveDir); absErr == nil {
		opts.SaveDir = abs
	}

	logger.Debug("starting preview", "template", opts.Template, "seed", req.Seed.String())
	return tui.Run(opts)
}
