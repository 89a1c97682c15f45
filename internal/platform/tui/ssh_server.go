// Package tui provides the terminal front ends: the final-grid viewer, the
// run history browser, and an SSH server that serves the viewer via Wish.
package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/antwalk/internal/ant"
	"github.com/vovakirdan/antwalk/internal/core"
	"github.com/vovakirdan/antwalk/internal/driver"
	"github.com/vovakirdan/antwalk/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.antwalk/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Grid is the walk every session runs.
	Grid ant.Config
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
		Grid:        ant.DefaultConfig(),
	}
}

// SSHServer wraps a Wish SSH server that shows each visitor a freshly
// computed walk.
type SSHServer struct {
	config    SSHServerConfig
	server    *ssh.Server
	store     *storage.Store
	observers []driver.Observer
	logger    *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
// store may be nil; when set, every finished session walk is recorded.
// observers are attached to every session's walk and must be safe for
// concurrent use.
func NewSSHServer(cfg SSHServerConfig, store *storage.Store, logger *log.Logger, observers ...driver.Observer) (*SSHServer, error) {
	if err := cfg.Grid.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "antwalk-ssh",
		})
	}

	srv := &SSHServer{
		config:    cfg,
		store:     store,
		observers: observers,
		logger:    logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", err)
		}
		hostKeyPath = filepath.Join(home, ".antwalk", "host_key")
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if err := os.MkdirAll(hostKeyDir, 0o700); err != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", err)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a viewer with its own ant for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		wish.Fatalln(sshSession, "antwalk needs an interactive terminal, try ssh -t")
		return nil, nil
	}

	a, err := ant.New(s.config.Grid)
	if err != nil {
		// Validated in NewSSHServer
		s.logger.Error("cannot create ant", "error", err)
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW: pty.Window.Width,
		ScreenH: pty.Window.Height,
	}

	observers := append([]driver.Observer{s.sessionObserver(sshSession.User())}, s.observers...)
	model := NewViewerModel(sshSession.Context(), a, cfg, observers...)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// sessionObserver logs and records the walk of one session.
func (s *SSHServer) sessionObserver(user string) driver.Observer {
	return driver.FinishedFunc(func(res driver.Result) {
		s.logger.Info("walk finished",
			"user", user,
			"steps", res.Steps,
			"dark", res.DarkCells,
			"elapsed", res.Elapsed,
		)
		if s.store == nil || !res.Done {
			return
		}
		if _, err := s.store.SaveRun(storage.RecordFromResult(res, "")); err != nil {
			s.logger.Warn("could not record walk", "user", user, "error", err)
		}
	})
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe serves SSH sessions until ctx is cancelled, then shuts
// the server down gracefully.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	s.logger.Info("starting SSH server", "address", s.config.Address, "grid",
		fmt.Sprintf("%dx%d", s.config.Grid.Height, s.config.Grid.Width))

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("ssh server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
