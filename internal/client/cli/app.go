package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/blogclient/internal/client/api"
	"github.com/dmitrijs2005/blogclient/internal/client/config"
	"github.com/dmitrijs2005/blogclient/internal/client/credentials"
	"github.com/dmitrijs2005/blogclient/internal/client/router"
	"github.com/dmitrijs2005/blogclient/internal/client/services"
	"github.com/dmitrijs2005/blogclient/internal/client/session"
	"github.com/dmitrijs2005/blogclient/internal/client/storage"
	"github.com/dmitrijs2005/blogclient/internal/logging"
	"github.com/spf13/afero"
)

type App struct {
	config *config.Config
	logger logging.Logger
	out    io.Writer
	reader *bufio.Reader
	closer func() error

	store   credentials.Store
	session *session.Session
	guard   *router.Guard
	blog    services.BlogService
	users   services.UserService
	auth    services.AuthService

	// location is the path of the view currently shown.
	location string
}

// NewApp builds the client from cfg. The caller must call Close.
func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {
	store, closer, err := openStore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	apiClient, err := api.NewClient(cfg.BaseURL, store, logger,
		api.WithTimeout(cfg.RequestTimeout),
		api.WithHeaderName(cfg.AuthHeaderName),
	)
	if err != nil {
		_ = closer()
		return nil, err
	}

	users := services.NewUserService(apiClient)
	sess := session.New(ctx, store, users, logger, session.WithFailurePolicy(cfg.FailurePolicy()))
	apiClient.SetInvalidator(sess)

	table, err := router.NewTable(router.DefaultRoutes())
	if err != nil {
		_ = closer()
		return nil, err
	}

	return &App{
		config:   cfg,
		logger:   logger,
		out:      os.Stdout,
		reader:   bufio.NewReader(os.Stdin),
		closer:   closer,
		store:    store,
		session:  sess,
		guard:    router.NewGuard(table, sess, router.LoginPath),
		blog:     services.NewBlogService(apiClient),
		users:    users,
		auth:     services.NewAuthService(users, sess, logger),
		location: "/",
	}, nil
}

func openStore(ctx context.Context, cfg *config.Config, logger logging.Logger) (credentials.Store, func() error, error) {
	noop := func() error { return nil }

	switch cfg.CredentialStore {
	case config.StoreSQLite:
		db, err := storage.Open(ctx, cfg.DatabasePath)
		if err != nil {
			return nil, nil, fmt.Errorf("error initializing database: %w", err)
		}
		return credentials.NewSQLiteStore(db, logger), db.Close, nil
	case config.StoreFile:
		s, err := credentials.NewFileStore(afero.NewOsFs(), cfg.CredentialsFile, logger)
		if err != nil {
			return nil, nil, err
		}
		return s, noop, nil
	case config.StoreMemory:
		return credentials.NewMemoryStore(), noop, nil
	default:
		return nil, nil, fmt.Errorf("unknown credential store %q", cfg.CredentialStore)
	}
}

func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer()
}

// Run loads the session once and serves the REPL until exit or EOF.
func (a *App) Run(ctx context.Context) {
	a.println("Welcome to the blog CLI (type 'help' for commands)")

	if u := a.session.LazyLoad(ctx); u != nil {
		a.println("Signed in as", u.Name)
	}

	runREPL(ctx, a, a.status, a.reader)
}

func (a *App) isAuthenticated() bool {
	return a.session.IsAuthenticated()
}

// status renders the prompt prefix: who is signed in and where.
func (a *App) status() string {
	st := a.session.State()
	who := "guest"
	switch {
	case st.User != nil:
		who = st.User.Name
	case st.Authenticated:
		who = "signed in"
	}
	return fmt.Sprintf("(%s) %s", who, a.location)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
