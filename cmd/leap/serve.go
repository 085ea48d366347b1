package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/vanara-leap/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagMetrics     string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Vanara Leap SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own campaign. The high score is stored
per-server, so all players chase the same record.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.arcade/host_key

Examples:
  leap serve                           # Listen on :23234 with auto-generated key
  leap serve --ssh :2222               # Listen on port 2222
  leap serve --metrics :9464           # Also expose Prometheus metrics
  leap serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagMetrics, "metrics", "", "Prometheus metrics address (e.g. :9464); disabled when empty")
}

func runServe(_ *cobra.Command, _ []string) {
	questCfg, err := loadQuest()
	exitOnError("loading config", err)

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "leap",
	})
	narrator, timeout := newNarrator(questCfg, logger)

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.MetricsAddress = flagMetrics
	cfg.TickRate = flagFPS
	cfg.HoldTicks = questCfg.Input.HoldTicks
	cfg.Narrator = narrator
	cfg.NarrationTimeout = timeout

	server, err := tui.NewSSHServer(cfg)
	exitOnError("creating server", err)

	fmt.Printf("Starting Vanara Leap SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	exitOnError("serving", server.ListenAndServe())
}
