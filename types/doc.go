// Package types defines the core types and interfaces shared across the
// intelligent-routing library.
//
// It contains the Accelerator capacity ledger, the Request value type, the
// SelectionStrategy interface implemented by the strategy package, and the
// Logger and MetricsCollector interfaces used for observability. Keeping these
// in a leaf package lets internal packages depend on them without importing
// the root routing package, avoiding import cycles.
//
// All sentinel errors live in errors.go and support errors.Is / errors.As.
package types
