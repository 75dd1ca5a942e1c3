// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"time"

	"github.com/adizioli/covid19-vis/schema"
)

// StoreManager defines the interface for managing persistence stores.
// This allows the storage layer to be mocked for testing.
type StoreManager interface {
	GetDatasetStore() DatasetStore
	GetRunStore() RunStore
}

// DatasetStore defines the interface for the parsed-dataset cache.
// This allows mocking the store for testing.
type DatasetStore interface {
	Get(key string) ([]byte, int, int64, error)
	Set(key string, value []byte, version int, timestamp int64) error
	GetStatus() (schema.CacheStatus, error)
	Close() error
}

// RunStore defines the interface for tracking pipeline runs and persisting
// the chart rows they produce.
type RunStore interface {
	// BeginRun creates a new run and returns its unique ID
	BeginRun(startTime time.Time, configParams map[string]any) (int64, error)

	// EndRun updates the run with completion data
	EndRun(runID int64, endTime time.Time, totalRows, totalGroups int) error

	// RecordChartRows stores the final chart rows for a run
	RecordChartRows(runID int64, rows []schema.ChartRow) error

	// GetAllRuns retrieves every recorded run
	GetAllRuns() ([]schema.RunRecord, error)

	// GetAllChartRows retrieves every persisted chart row
	GetAllChartRows() ([]schema.ChartRowRecord, error)

	// GetStatus returns status information about the run store
	GetStatus() (schema.RunStatus, error)

	// Close closes the underlying connection
	Close() error
}
