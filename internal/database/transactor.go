package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/thenoetrevino/taskboard/internal/metrics"
	"github.com/thenoetrevino/taskboard/internal/models"
)

// TxFunc is one lifecycle operation running against the scope's gateway.
type TxFunc func(ctx context.Context, gw Gateway) error

// TxRunner opens a transaction scope named op and runs fn inside it.
type TxRunner interface {
	WithinTx(ctx context.Context, op string, fn TxFunc) error
}

var _ TxRunner = (*Transactor)(nil)

// Transactor runs operations inside an all-or-nothing transaction.
type Transactor struct {
	db      *sql.DB
	logger  *slog.Logger
	tracer  trace.Tracer
	metrics *metrics.Metrics
}

// TransactorOption configures a Transactor.
type TransactorOption func(*Transactor)

// WithTxLogger sets the logger for scope begin/commit/rollback records.
func WithTxLogger(logger *slog.Logger) TransactorOption {
	return func(t *Transactor) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithTracer records one span per scope.
func WithTracer(tracer trace.Tracer) TransactorOption {
	return func(t *Transactor) {
		if tracer != nil {
			t.tracer = tracer
		}
	}
}

// WithMetrics counts scope outcomes.
func WithMetrics(m *metrics.Metrics) TransactorOption {
	return func(t *Transactor) {
		if m != nil {
			t.metrics = m
		}
	}
}

// NewTransactor creates a Transactor over db.
func NewTransactor(db *sql.DB, opts ...TransactorOption) *Transactor {
	t := &Transactor{
		db:      db,
		logger:  slog.New(slog.DiscardHandler),
		tracer:  noop.NewTracerProvider().Tracer(""),
		metrics: metrics.New(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Metrics returns the counters this Transactor updates.
func (t *Transactor) Metrics() *metrics.Metrics {
	return t.metrics
}

// WithinTx begins a transaction, runs fn against a gateway bound to it and
// commits only if fn succeeds. On any error the transaction is rolled back
// before WithinTx returns. Errors that already carry a lifecycle kind are
// returned as is; anything else surfaces as models.ErrStorageFailure with the
// cause preserved.
func (t *Transactor) WithinTx(ctx context.Context, op string, fn TxFunc) (err error) {
	opID := uuid.NewString()
	logger := t.logger.With("op", op, "op_id", opID)

	ctx, span := t.tracer.Start(ctx, op, trace.WithAttributes(attribute.String("op_id", opID)))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		t.metrics.IncStorageFailures()
		logger.Error("failed to begin transaction", "error", err)
		return &models.OperationError{Op: op, Kind: models.ErrStorageFailure, Msg: "failed to begin transaction", Err: err}
	}
	logger.Debug("transaction started")

	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			logger.Error("failed to rollback transaction", "error", rbErr)
		}
		t.metrics.IncRolledBack()
		logger.Debug("transaction rolled back", "error", err)
	}()

	if fnErr := fn(ctx, NewRepository(tx)); fnErr != nil {
		return t.classify(logger, op, fnErr)
	}

	if commitErr := tx.Commit(); commitErr != nil {
		return t.classify(logger, op, fmt.Errorf("failed to commit transaction: %w", commitErr))
	}
	committed = true
	t.metrics.IncCommitted()
	logger.Debug("transaction committed")

	return nil
}

func (t *Transactor) classify(logger *slog.Logger, op string, err error) error {
	kind := models.KindOf(err)
	switch {
	case kind == nil:
		t.metrics.IncStorageFailures()
		logger.Error("storage failure", "error", err)
		return &models.OperationError{Op: op, Kind: models.ErrStorageFailure, Err: err}
	case errors.Is(kind, models.ErrStorageFailure):
		t.metrics.IncStorageFailures()
		logger.Error("storage failure", "error", err)
	case errors.Is(kind, models.ErrStaleCard):
		t.metrics.IncStaleCards()
		t.metrics.IncRejected()
	default:
		t.metrics.IncRejected()
	}

	if models.IsOperationError(err) {
		return err
	}
	// a gateway sentinel such as ErrStaleCard: lift it to an OperationError
	return &models.OperationError{Op: op, Kind: kind, Msg: err.Error()}
}
