package datastore

import (
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/adizioli/covid19-vis/internal/contract"
	"github.com/adizioli/covid19-vis/schema"
)

// MockStoreManager is a mock implementation of StoreManager for testing.
type MockStoreManager struct {
	mock.Mock
}

var _ contract.StoreManager = &MockStoreManager{} // Compile-time check

// GetDatasetStore implements the StoreManager interface.
func (m *MockStoreManager) GetDatasetStore() contract.DatasetStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.DatasetStore)
	return store
}

// GetRunStore implements the StoreManager interface.
func (m *MockStoreManager) GetRunStore() contract.RunStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.RunStore)
	return store
}

// MockDatasetStore is a mock implementation of DatasetStore for testing.
type MockDatasetStore struct {
	mock.Mock
}

var _ contract.DatasetStore = &MockDatasetStore{} // Compile-time check

// Get implements the DatasetStore interface.
func (m *MockDatasetStore) Get(key string) ([]byte, int, int64, error) {
	args := m.Called(key)
	return args.Get(0).([]byte), args.Int(1), args.Get(2).(int64), args.Error(3)
}

// Set implements the DatasetStore interface.
func (m *MockDatasetStore) Set(key string, data []byte, version int, ts int64) error {
	args := m.Called(key, data, version, ts)
	return args.Error(0)
}

// GetStatus implements the DatasetStore interface.
func (m *MockDatasetStore) GetStatus() (schema.CacheStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.CacheStatus), args.Error(1)
}

// Close implements the DatasetStore interface.
func (m *MockDatasetStore) Close() error {
	args := m.Called()
	return args.Error(0)
}

// MockRunStore is a mock implementation of RunStore for testing.
type MockRunStore struct {
	mock.Mock
}

var _ contract.RunStore = &MockRunStore{} // Compile-time check

// BeginRun implements the RunStore interface.
func (m *MockRunStore) BeginRun(startTime time.Time, configParams map[string]any) (int64, error) {
	args := m.Called(startTime, configParams)
	return args.Get(0).(int64), args.Error(1)
}

// EndRun implements the RunStore interface.
func (m *MockRunStore) EndRun(runID int64, endTime time.Time, totalRows, totalGroups int) error {
	args := m.Called(runID, endTime, totalRows, totalGroups)
	return args.Error(0)
}

// RecordChartRows implements the RunStore interface.
func (m *MockRunStore) RecordChartRows(runID int64, rows []schema.ChartRow) error {
	args := m.Called(runID, rows)
	return args.Error(0)
}

// GetAllRuns implements the RunStore interface.
func (m *MockRunStore) GetAllRuns() ([]schema.RunRecord, error) {
	args := m.Called()
	runs, _ := args.Get(0).([]schema.RunRecord)
	return runs, args.Error(1)
}

// GetAllChartRows implements the RunStore interface.
func (m *MockRunStore) GetAllChartRows() ([]schema.ChartRowRecord, error) {
	args := m.Called()
	rows, _ := args.Get(0).([]schema.ChartRowRecord)
	return rows, args.Error(1)
}

// GetStatus implements the RunStore interface.
func (m *MockRunStore) GetStatus() (schema.RunStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.RunStatus), args.Error(1)
}

// Close implements the RunStore interface.
func (m *MockRunStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
