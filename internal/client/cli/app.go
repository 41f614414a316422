package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"qrstudio/internal/client/api"
	"qrstudio/internal/client/auth"
	"qrstudio/internal/client/config"
	"qrstudio/internal/client/preview"
	"qrstudio/internal/client/session"
	"qrstudio/internal/logging"
)

// App wires the API client, the auth service, the preview orchestrator and
// the terminal together. One App serves one interactive session.
type App struct {
	config    *config.Config
	auth      auth.Service
	api       api.Client
	orch      *preview.Orchestrator
	log       logging.Logger
	reader    *bufio.Reader
	out       io.Writer
	userEmail string
}

func NewApp(c *config.Config) (*App, error) {
	log := logging.NewDefault(slog.LevelWarn)

	apiClient := api.NewHTTPClient(c.APIBaseURL, log)

	store, err := session.NewStore(c.SessionFile)
	if err != nil {
		return nil, err
	}

	out := os.Stdout
	notifier := NewTermNotifier(out)

	policy := api.RetryPolicy{
		MaxRetries:     c.DownloadMaxRetries,
		Backoff:        c.DownloadBackoff,
		AttemptTimeout: c.DownloadAttemptTimeout,
	}

	return &App{
		config: c,
		auth:   auth.NewService(apiClient, store),
		api:    apiClient,
		orch:   preview.New(apiClient, notifier, log, c.DebounceWindow, policy),
		log:    log,
		reader: bufio.NewReader(os.Stdin),
		out:    out,
	}, nil
}

// Run restores a cached session, if any, and enters the REPL.
func (a *App) Run(ctx context.Context) {
	defer a.orch.Close()

	if sess, err := a.auth.CurrentUser(ctx); err == nil {
		a.userEmail = sess.User.Email
	} else if !errors.Is(err, session.ErrNoSession) {
		a.log.Warn(ctx, "could not restore session", "error", err)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.userEmail != ""
}

func (a *App) getStatus() string {
	s := ""
	if a.userEmail != "" {
		s = a.userEmail + " "
	}
	state, _ := a.orch.Status()
	return s + state.String()
}
