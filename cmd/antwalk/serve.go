package main

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/antwalk/internal/driver"
	"github.com/vovakirdan/antwalk/internal/metrics"
	"github.com/vovakirdan/antwalk/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagMetricsAddr string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the antwalk SSH server",
	Long: `Start an SSH server that shows every visitor a walk.

Each SSH connection gets its own ant on the configured grid; the walk
runs to completion and the final grid opens in the viewer. Finished walks
are recorded in the run history unless --no-store is given.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.antwalk/host_key

Examples:
  antwalk serve                           # Listen on :23234 with auto-generated key
  antwalk serve --ssh :2222               # Listen on port 2222
  antwalk serve --height 256 --width 256  # Smaller grid per session
  antwalk serve --metrics-addr :9100      # Expose Prometheus metrics

Users can connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	addGridFlags(serveCmd)
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagMetricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9100)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	antCfg, err := gridConfig(cmd)
	if err != nil {
		return err
	}

	store := openHistory()
	if store != nil {
		defer store.Close()
	}

	var observers []driver.Observer
	var m *metrics.Metrics
	if flagMetricsAddr != "" {
		m = metrics.New()
		observers = append(observers, m)
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Grid:        antCfg,
	}

	server, err := tui.NewSSHServer(cfg, store, logger.WithPrefix("antwalk-ssh"), observers...)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting antwalk SSH server on %s\n", server.Addr())
	fmt.Printf("Connect with: %s\n", connectCommand(server.Addr()))
	fmt.Println("Press Ctrl+C to stop")

	g, ctx := errgroup.WithContext(cmd.Context())
	g.Go(func() error {
		return server.ListenAndServe(ctx)
	})

	if m != nil {
		httpServer := &http.Server{
			Addr:              flagMetricsAddr,
			Handler:           metricsMux(m),
			ReadHeaderTimeout: 5 * time.Second,
		}
		g.Go(func() error {
			logger.Info("serving metrics", "address", flagMetricsAddr)
			if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("metrics server: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			return httpServer.Close()
		})
	}

	return g.Wait()
}

// connectCommand returns the ssh invocation for a listen address.
func connectCommand(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "ssh " + addr
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	if port == "22" {
		return "ssh " + host
	}
	return fmt.Sprintf("ssh %s -p %s", host, port)
}

func metricsMux(m *metrics.Metrics) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	return mux
}
