// Package sqlite provides the SQLite-backed todo store with circuit breaker,
// OpenTelemetry tracing, and metrics around every storage operation.
//
// Operations apply middleware-like processing in this order:
//
//	Circuit Breaker → OTEL Span → SQL
//
// Construction:
//
//	store, err := sqlite.Open(&cfg.Storage, metrics, logger)
//	defer store.Close()
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/todo-api/internal/domain"
	"github.com/jsamuelsen11/todo-api/internal/platform/config"
	"github.com/jsamuelsen11/todo-api/internal/platform/telemetry"
)

//go:embed schema.sql
var schemaSQL string

// storeName identifies the store in breaker logs, spans, and health reports.
const storeName = "sqlite"

// Operation names recorded on spans and metrics.
const (
	opList   = "list"
	opGet    = "get"
	opCreate = "create"
	opUpdate = "update"
	opDelete = "delete"
)

// Store is a SQLite-backed implementation of the todo store port.
// It owns the database handle; callers must Close it on shutdown.
type Store struct {
	db      *sql.DB
	breaker *gobreaker.CircuitBreaker[struct{}]
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// Open creates or opens the SQLite database at cfg.Path, creating the file
// and applying the embedded schema when needed.
//
// The database is configured with:
//   - WAL mode for concurrent reads during writes
//   - NORMAL synchronous mode
//   - busy timeout from cfg.BusyTimeout for lock contention
//   - foreign key enforcement
//
// The connection pool is capped at a single connection; SQLite allows one
// writer at a time and a second connection would only trade SQLITE_BUSY
// errors for queueing. If metrics is nil, metric recording is skipped.
func Open(cfg *config.StorageConfig, metrics *telemetry.Metrics, logger *slog.Logger) (*Store, error) {
	db, err := sql.Open("sqlite3", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("opening database %q: %w", cfg.Path, err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to database %q: %w", cfg.Path, err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db, cfg.BusyTimeout); err != nil {
		db.Close()
		return nil, fmt.Errorf("applying pragmas: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("applying schema: %w", err)
	}

	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        storeName,
		MaxRequests: toUint32(cfg.CircuitBreaker.HalfOpenLimit),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.CircuitBreaker.MaxFailures
		},
		IsSuccessful: func(err error) bool {
			// A missing row is a domain outcome, not a storage fault.
			return err == nil || errors.Is(err, domain.ErrNotFound)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return &Store{
		db:      db,
		breaker: cb,
		metrics: metrics,
		logger:  logger,
	}, nil
}

// Close closes the database handle. Safe to call on a nil-initialized store.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Name returns the store identifier used in health reports.
func (s *Store) Name() string {
	return storeName
}

// HealthCheck reports storage availability. The circuit breaker state is
// consulted first: an open or half-open breaker reports without touching
// the database. Otherwise a ping and a one-row probe query verify the handle.
func (s *Store) HealthCheck(ctx context.Context) error {
	switch s.breaker.State() {
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", storeName)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", storeName)
	}

	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%s: ping: %w", storeName, err)
	}

	var probe int
	if err := s.db.QueryRowContext(ctx, "SELECT 1").Scan(&probe); err != nil {
		return fmt.Errorf("%s: probe query: %w", storeName, err)
	}

	return nil
}

// execute runs op through the circuit breaker with an OTEL span around it
// and records operation metrics. The span context is handed to op so query
// execution is traced and cancellable.
func (s *Store) execute(ctx context.Context, operation string, op func(ctx context.Context) error) error {
	start := time.Now()

	_, err := s.breaker.Execute(func() (struct{}, error) {
		spanCtx, span := s.startSpan(ctx, operation)
		defer span.End()

		opErr := op(spanCtx)
		s.finishSpan(span, opErr)

		return struct{}{}, opErr
	})

	s.recordMetrics(ctx, operation, start, err)

	return err
}

// withTx runs fn inside a transaction, committing on success and rolling
// back on any error path. Each mutation gets exactly one transaction;
// nothing spans calls.
func (s *Store) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %v: %w", err, domain.ErrStorage)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %v: %w", err, domain.ErrStorage)
	}

	return nil
}

// startSpan creates an internal span for the storage operation.
func (s *Store) startSpan(ctx context.Context, operation string) (context.Context, trace.Span) {
	tracer := otel.GetTracerProvider().Tracer(storeName)

	spanName := fmt.Sprintf("DB %s todos", operation)
	return tracer.Start(ctx, spanName,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("db.system", storeName),
			telemetry.AttrDBOperation.String(operation),
		),
	)
}

// finishSpan records the operation outcome on the span. Not-found results
// are successful lookups of absent rows, not errors.
func (s *Store) finishSpan(span trace.Span, err error) {
	if err == nil || errors.Is(err, domain.ErrNotFound) {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// recordMetrics records storage operation duration and count metrics.
// Metrics are recorded outside the circuit breaker so that circuit-open
// rejections are captured. Safe to call with nil metrics.
func (s *Store) recordMetrics(ctx context.Context, operation string, start time.Time, err error) {
	if s.metrics == nil {
		return
	}

	duration := time.Since(start).Seconds()

	result := "success"
	switch {
	case errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests):
		result = "circuit_open"
	case errors.Is(err, domain.ErrNotFound):
		result = "not_found"
	case err != nil:
		result = "error"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrDBOperation.String(operation),
		telemetry.AttrResult.String(result),
	)

	s.metrics.DBOperationDuration.Record(ctx, duration, attrs)
	s.metrics.DBOperationTotal.Add(ctx, 1, attrs)
}

// applyPragmas sets the required SQLite configuration on the handle.
func applyPragmas(db *sql.DB, busyTimeout time.Duration) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		fmt.Sprintf("PRAGMA busy_timeout = %d", busyTimeout.Milliseconds()),
		"PRAGMA foreign_keys = ON",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("executing %q: %w", pragma, err)
		}
	}

	return nil
}

// toUint32 safely converts a non-negative int to uint32, clamping at the
// uint32 maximum. Negative values are treated as zero.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
