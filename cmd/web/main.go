package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/joho/godotenv"
	"github.com/marleybr/Treningsapp-sub000/internal/ai"
	"github.com/marleybr/Treningsapp-sub000/internal/envstruct"
	"github.com/marleybr/Treningsapp-sub000/internal/errors"
	"github.com/marleybr/Treningsapp-sub000/internal/gamification"
	"github.com/marleybr/Treningsapp-sub000/internal/logging"
	"github.com/marleybr/Treningsapp-sub000/internal/nutrition"
	"github.com/marleybr/Treningsapp-sub000/internal/plan"
	"github.com/marleybr/Treningsapp-sub000/internal/sqlite"
)

type application struct {
	logger              *slog.Logger
	db                  *sqlite.Database
	sessionManager      *scs.SessionManager
	aiClient            ai.Client
	planService         *plan.Service
	gamificationService *gamification.Service
	nutritionService    *nutrition.Service
}

type config struct {
	// Addr is the address to listen on. It's possible to choose the address dynamically with localhost:0.
	Addr string `env:"TRENINGSAPP_ADDR" envDefault:"localhost:8080"`
	// SqliteURL is the URL to the SQLite database. You can use ":memory:" for an ethereal in-memory database.
	SqliteURL string `env:"TRENINGSAPP_SQLITE_URL" envDefault:"./treningsapp.sqlite3"`
	// OpenAIAPIKey enables the AI meal content generator. Empty means demo content.
	OpenAIAPIKey string `env:"OPENAI_API_KEY" envDefault:""`
}

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	var (
		cancel context.CancelFunc
		err    error
	)

	ctx, cancel = signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	var cfg config
	if err = envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "populate config")
	}

	db, err := sqlite.NewDatabase(ctx, cfg.SqliteURL, logger)
	if err != nil {
		return errors.Wrap(err, "open db", slog.String("url", cfg.SqliteURL))
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "connected to db")

	app := application{
		logger:              logger,
		db:                  db,
		sessionManager:      initializeSessionManager(db),
		aiClient:            ai.NewClient(cfg.OpenAIAPIKey, logger),
		planService:         plan.NewService(db, logger),
		gamificationService: gamification.NewService(db, logger),
		nutritionService:    nutrition.NewService(db, logger),
	}

	if err = app.configureAndStartServer(ctx, cfg.Addr, app.routes()); err != nil {
		return errors.Wrap(err, "start server")
	}
	return nil
}

func initializeSessionManager(db *sqlite.Database) *scs.SessionManager {
	sessionManager := scs.New()
	sessionManager.Store = sqlite3store.NewWithCleanupInterval(db.ReadWrite, 24*time.Hour) //nolint:mnd // day
	sessionManager.Lifetime = 30 * 24 * time.Hour                                         //nolint:mnd // month
	sessionManager.Cookie.Persist = true
	sessionManager.Cookie.Secure = true
	sessionManager.Cookie.HttpOnly = true
	sessionManager.Cookie.SameSite = http.SameSiteStrictMode
	return sessionManager
}

func main() {
	ctx := context.Background()
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource:   false,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	}))
	logger := slog.New(loggerHandler)

	// Missing .env is fine, the environment may be configured externally.
	if err := godotenv.Load(); err != nil {
		logger.LogAttrs(ctx, slog.LevelDebug, "no .env file loaded")
	}

	if err := run(ctx, logger, os.LookupEnv); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "failure starting application", errors.SlogError(err))
		os.Exit(1)
	}
}
