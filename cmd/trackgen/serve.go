package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/trackgen/internal/config"
	"github.com/vovakirdan/trackgen/internal/platform/tui"
	"github.com/vovakirdan/trackgen/internal/registry"
	"github.com/vovakirdan/trackgen/internal/templates"
)

var (
	flagSSHAddr       string
	flagHostKey       string
	flagServeTemplate string
	flagServeSaveDir  string
	flagIdleTimeout   int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the level preview over SSH",
	Long: `Start an SSH server that shows the level preview to every client.

Each SSH connection gets its own preview with a fresh seed. Saving is
disabled unless --save-dir is given; saved levels are recorded in the
server's history database.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.trackgen/host_key

Examples:
  trackgen serve                         # Listen on :23235
  trackgen serve --ssh :2222 --template canyon
  trackgen serve --save-dir /srv/tracks

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	def := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", def.Address, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVarP(&flagServeTemplate, "template", "t", templates.DefaultID, "Template new sessions start with")
	serveCmd.Flags().StringVar(&flagServeSaveDir, "save-dir", "", "Directory sessions may save levels to (disabled if empty)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	if !registry.Exists(flagServeTemplate) {
		return fmt.Errorf("unknown template %q, run 'trackgen list'", flagServeTemplate)
	}
	preset, err := config.ParsePreset(flagPreset)
	if err != nil {
		return err
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		SaveDir:     flagServeSaveDir,
		Template:    flagServeTemplate,
		Preset:      preset,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting trackgen SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
