package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/ntndev/skinscan/internal/analyzer"
	"github.com/ntndev/skinscan/internal/config"
	"github.com/ntndev/skinscan/internal/logging"
	"github.com/ntndev/skinscan/internal/repositories"
	"github.com/ntndev/skinscan/internal/repositories/users"
	"github.com/ntndev/skinscan/internal/store"

	_ "modernc.org/sqlite"
)

// App wires the stores, the analyzer, and the terminal together.
type App struct {
	config   *config.Config
	log      logging.Logger
	session  *store.SessionStore
	history  *store.HistoryStore
	analyzer analyzer.Analyzer
	db       *sql.DB
	reader   *bufio.Reader
	out      io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()
	log := logging.NewDefault(c.LogLevel)

	repos, db, err := repositories.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	if err := users.SeedDemo(ctx, repos.Users); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("seeding demo accounts: %w", err)
	}

	session := store.NewSessionStore(repos.Users, repos.Snapshots, c.AuthDelay, log)
	history := store.NewHistoryStore(repos.Snapshots, log)

	if err := session.Load(ctx); err != nil {
		log.Warn(ctx, "session snapshot unreadable, starting anonymous", "error", err)
	}
	if err := history.Load(ctx); err != nil {
		log.Warn(ctx, "history snapshot unreadable, starting empty", "error", err)
	}

	return &App{
		config:   c,
		log:      log,
		session:  session,
		history:  history,
		analyzer: analyzer.NewMock(c.ScanDelay),
		db:       db,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	fmt.Fprintln(a.out, "DermaScan CLI (type 'help' for commands)")
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.session.State().IsAuthenticated
}

// status renders the prompt segment reflecting the current session.
func (a *App) status() string {
	st := a.session.State()
	if st.User == nil {
		return "anonymous"
	}
	return st.User.Email
}
