package ports

import "context"

// HealthChecker is implemented by any component that can report its own
// health, such as the SQLite store backing the todo collection.
type HealthChecker interface {
	// Name returns the identifier the component is reported under
	// (e.g., "sqlite").
	Name() string

	// HealthCheck returns nil when the component is healthy, or an error
	// describing the failure.
	// Implementations should respect context cancellation and deadlines.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects HealthCheckers and runs them on demand.
// Used by the readiness endpoint handler to determine service readiness.
type HealthRegistry interface {
	// Register adds a HealthChecker to the registry.
	Register(checker HealthChecker)

	// CheckAll runs every registered check and returns results keyed by
	// checker name. A nil value means the component is healthy.
	CheckAll(ctx context.Context) map[string]error
}
