package contract

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/sw360/sw360-dashboard/schema"
)

// MockDocumentSource is a mock implementation of DocumentSource for testing.
type MockDocumentSource struct {
	mock.Mock
}

var _ DocumentSource = &MockDocumentSource{} // Compile-time check

// FetchComponents implements the DocumentSource interface.
func (m *MockDocumentSource) FetchComponents(ctx context.Context) ([]schema.ComponentDoc, error) {
	args := m.Called(ctx)
	docs, _ := args.Get(0).([]schema.ComponentDoc)
	return docs, args.Error(1)
}

// FetchReleases implements the DocumentSource interface.
func (m *MockDocumentSource) FetchReleases(ctx context.Context) ([]schema.ReleaseDoc, error) {
	args := m.Called(ctx)
	docs, _ := args.Get(0).([]schema.ReleaseDoc)
	return docs, args.Error(1)
}

// FetchProjects implements the DocumentSource interface.
func (m *MockDocumentSource) FetchProjects(ctx context.Context) ([]schema.ProjectDoc, error) {
	args := m.Called(ctx)
	docs, _ := args.Get(0).([]schema.ProjectDoc)
	return docs, args.Error(1)
}

// MockMetricEmitter is a mock implementation of MetricEmitter for testing.
type MockMetricEmitter struct {
	mock.Mock
}

var _ MetricEmitter = &MockMetricEmitter{} // Compile-time check

// Push implements the MetricEmitter interface.
func (m *MockMetricEmitter) Push(ctx context.Context, agg *schema.AggregateResult) error {
	args := m.Called(ctx, agg)
	return args.Error(0)
}

// Render implements the MetricEmitter interface.
func (m *MockMetricEmitter) Render(agg *schema.AggregateResult) (string, error) {
	args := m.Called(agg)
	return args.String(0), args.Error(1)
}
