package app

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/thenoetrevino/taskboard/internal/cache"
	"github.com/thenoetrevino/taskboard/internal/config"
	"github.com/thenoetrevino/taskboard/internal/database"
	"github.com/thenoetrevino/taskboard/internal/logging"
	"github.com/thenoetrevino/taskboard/internal/metrics"
	"github.com/thenoetrevino/taskboard/internal/models"
	boardservice "github.com/thenoetrevino/taskboard/internal/services/board"
	cardservice "github.com/thenoetrevino/taskboard/internal/services/card"
	queryservice "github.com/thenoetrevino/taskboard/internal/services/query"
	"github.com/thenoetrevino/taskboard/internal/tracing"
)

// App holds all application services and provides dependency injection.
type App struct {
	db      *sql.DB
	tracing *tracing.Provider

	Config     *config.Config
	Logger     *slog.Logger
	Metrics    *metrics.Metrics
	Layouts    *cache.LayoutCache
	Transactor *database.Transactor

	// Service layer (business logic)
	BoardService boardservice.Service
	CardService  cardservice.Service
	QueryService queryservice.Service
}

// New creates a new App with all services initialized.
// The caller keeps ownership of db.
func New(db *sql.DB, opts ...Option) *App {
	cfg := &appConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = logging.Discard()
	}
	if cfg.tracing == nil {
		cfg.tracing = tracing.Noop()
	}
	if cfg.config == nil {
		cfg.config = config.Default()
	}

	m := metrics.New()
	layouts := cache.NewLayoutCache(cfg.config.Cache.LayoutTTL)
	tx := database.NewTransactor(db,
		database.WithTxLogger(cfg.logger),
		database.WithTracer(cfg.tracing.Tracer()),
		database.WithMetrics(m),
	)

	return &App{
		db:           db,
		tracing:      cfg.tracing,
		Config:       cfg.config,
		Logger:       cfg.logger,
		Metrics:      m,
		Layouts:      layouts,
		Transactor:   tx,
		BoardService: boardservice.NewService(tx, boardservice.WithLayoutEvictor(layouts)),
		CardService:  cardservice.NewService(tx),
		QueryService: queryservice.NewService(database.NewQueryRepo(db), layouts),
	}
}

// DB returns the underlying database handle
func (a *App) DB() *sql.DB {
	return a.db
}

// NewBoard builds an unsaved board with the configured column names.
// pending overrides the configured PENDING columns when non-empty.
func (a *App) NewBoard(name string, pending []string, withCancel bool) *models.Board {
	names := boardservice.ColumnNames{
		Initial: a.Config.Board.InitialColumn,
		Pending: a.Config.Board.PendingColumns,
		Final:   a.Config.Board.FinalColumn,
		Cancel:  a.Config.Board.CancelColumn,
	}
	if len(pending) > 0 {
		names.Pending = pending
	}
	return boardservice.BuildLayout(name, names, withCancel)
}

// Close flushes pending spans. The database is closed by its owner.
func (a *App) Close() error {
	return a.tracing.Shutdown(context.Background())
}
