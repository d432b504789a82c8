package runstore

import (
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/sw360/sw360-dashboard/internal/contract"
	"github.com/sw360/sw360-dashboard/schema"
)

// MockRunManager is a mock implementation of RunManager for testing.
type MockRunManager struct {
	mock.Mock
}

var _ contract.RunManager = &MockRunManager{} // Compile-time check

// GetRunStore implements the RunManager interface.
func (m *MockRunManager) GetRunStore() contract.RunStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.RunStore)
	return store
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
func (m *MockRunStore) EndRun(runID int64, endTime time.Time, agg *schema.AggregateResult, pushed bool) error {
	args := m.Called(runID, endTime, agg, pushed)
	return args.Error(0)
}

// RecordRankings implements the RunStore interface.
func (m *MockRunStore) RecordRankings(runID int64, agg *schema.AggregateResult) error {
	args := m.Called(runID, agg)
	return args.Error(0)
}

// GetStatus implements the RunStore interface.
func (m *MockRunStore) GetStatus() (schema.RunStoreStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.RunStoreStatus), args.Error(1)
}

// GetAllRuns implements the RunStore interface.
func (m *MockRunStore) GetAllRuns() ([]schema.CollectionRunRecord, error) {
	args := m.Called()
	runs, _ := args.Get(0).([]schema.CollectionRunRecord)
	return runs, args.Error(1)
}

// GetAllRankings implements the RunStore interface.
func (m *MockRunStore) GetAllRankings() ([]schema.RankingRecord, error) {
	args := m.Called()
	rankings, _ := args.Get(0).([]schema.RankingRecord)
	return rankings, args.Error(1)
}

// Clear implements the RunStore interface.
func (m *MockRunStore) Clear() error {
	args := m.Called()
	return args.Error(0)
}

// Close implements the RunStore interface.
func (m *MockRunStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
