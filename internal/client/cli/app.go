package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gamelog/internal/client/client"
	"gamelog/internal/client/config"
	"gamelog/internal/client/services"
	"gamelog/internal/common"
	"gamelog/internal/logging"
	"gamelog/internal/netx"

	_ "modernc.org/sqlite"
)

// App wires the journal services behind the REPL. The userName field doubles
// as the logged-in marker: empty means no active session.
type App struct {
	config    *config.Config
	repos     *client.Repositories
	api       client.Client
	monitor   *netx.Monitor
	auth      *services.AuthService
	entries   *services.EntryService
	syncSvc   *services.SyncService
	fetch     *services.FetchService
	search    *services.SearchService
	status    *services.StatusService
	lifecycle *services.LifecycleController
	log       logging.Logger
	reader    *bufio.Reader

	userName string

	// pagination state for the "more" and "pull" commands
	lastSearch  services.SearchParams
	nextCursor  string
	hasSearched bool
	pullCursor  string
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()
	log := logging.NewSlogLogger(slog.Default())

	repos, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("initializing database: %w", err)
	}

	api := client.NewHTTPClient(c.ServerBaseURL, c.RequestTimeout)

	monitor := netx.NewMonitor(api, c.ProbeInterval, c.ProbeTimeout, log)
	syncSvc := services.NewSyncService(api, repos.Entries, monitor, log)

	return &App{
		config:    c,
		repos:     repos,
		api:       api,
		monitor:   monitor,
		auth:      services.NewAuthService(api, repos.Metadata, syncSvc, log),
		entries:   services.NewEntryService(repos.Entries, syncSvc, log),
		syncSvc:   syncSvc,
		fetch:     services.NewFetchService(api, repos, c.PageLimit, log),
		search:    services.NewSearchService(api, repos.Entries, log),
		status:    services.NewStatusService(api, repos.Entries, monitor, syncSvc, c.ProbeTimeout, log),
		lifecycle: services.NewLifecycleController(syncSvc, monitor, log),
		log:       log,
		reader:    bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores any stored session, starts the connectivity monitor and blocks
// in the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	a.monitor.Start(ctx)
	defer a.monitor.Stop()
	defer a.lifecycle.Disable()
	defer a.api.Close()
	defer a.repos.DB.Close()

	if username, err := a.auth.RestoreSession(ctx); err == nil {
		a.userName = username
		a.lifecycle.Enable(ctx)
		printlnFn("Welcome back,", username)
	} else if !errors.Is(err, common.ErrUnauthorized) {
		a.log.Warn(ctx, "session restore failed", "error", err)
	}

	printlnFn("Game journal CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}

// getStatus builds the prompt segment: username plus the derived sync state.
func (a *App) getStatus() string {
	s := ""
	if a.userName != "" {
		s = a.userName + " "
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.config.ProbeTimeout+a.config.RequestTimeout)
	defer cancel()
	if st, err := a.status.Evaluate(ctx); err == nil {
		s += string(st)
	}

	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}
