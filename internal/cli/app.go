// Package cli implements the interactive RentalConnect shell. It is a thin
// view layer: every command calls the exported core operations with
// primitive inputs and renders the result.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/rentalconnect/internal/config"
	"github.com/dmitrijs2005/rentalconnect/internal/dashboard"
	"github.com/dmitrijs2005/rentalconnect/internal/logging"
	"github.com/dmitrijs2005/rentalconnect/internal/messages"
	"github.com/dmitrijs2005/rentalconnect/internal/properties"
	"github.com/dmitrijs2005/rentalconnect/internal/session"
	"github.com/dmitrijs2005/rentalconnect/internal/store"
	"github.com/dmitrijs2005/rentalconnect/internal/users"

	_ "modernc.org/sqlite"
)

type App struct {
	cfg *config.Config
	log logging.Logger
	db  *sql.DB

	users      *users.Repository
	properties *properties.Repository
	messages   *messages.Repository
	sessions   *session.Manager
	dashboard  *dashboard.Aggregator

	reader *bufio.Reader
	out    io.Writer
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := store.Open(ctx, cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	durable := store.NewSQLiteStore(db)
	sessionScope := store.NewMemoryStore()

	userRepo := users.NewRepository(durable, log)
	propRepo := properties.NewRepository(durable)
	msgRepo := messages.NewRepository(durable)
	sessions := session.NewManager(durable, sessionScope, userRepo, log)
	agg := dashboard.NewAggregator(sessions, userRepo, propRepo, msgRepo, durable, log)

	return &App{
		cfg:        cfg,
		log:        log,
		db:         db,
		users:      userRepo,
		properties: propRepo,
		messages:   msgRepo,
		sessions:   sessions,
		dashboard:  agg,
		reader:     bufio.NewReader(os.Stdin),
		out:        os.Stdout,
	}, nil
}

func (a *App) Close() error {
	return a.db.Close()
}

// Run starts the interactive shell and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to RentalConnect (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, func() string { return a.status(ctx) }, scanner, a.out)
}

func (a *App) status(ctx context.Context) string {
	red, err := a.sessions.Current(ctx)
	if err != nil || red == nil {
		return ""
	}
	return fmt.Sprintf("(%s %s)", red.FirstName, red.UserType)
}

// LoggedIn reports whether a session is active.
func (a *App) LoggedIn(ctx context.Context) bool {
	red, err := a.sessions.Current(ctx)
	return err == nil && red != nil
}
