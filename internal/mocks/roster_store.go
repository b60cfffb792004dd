package mocks

import (
	"context"

	"github.com/phrazzld/gradebook/internal/store"
	"github.com/stretchr/testify/mock"
)

// MockRosterStore is a mock of store.RosterStore for use with testify/mock.
type MockRosterStore struct {
	mock.Mock
}

var _ store.RosterStore = (*MockRosterStore)(nil)

// Load is a mock implementation of store.RosterStore.Load
func (m *MockRosterStore) Load(ctx context.Context) (*store.Document, error) {
	args := m.Called(ctx)
	if doc, ok := args.Get(0).(*store.Document); ok {
		return doc, args.Error(1)
	}
	return nil, args.Error(1)
}

// Save is a mock implementation of store.RosterStore.Save
func (m *MockRosterStore) Save(ctx context.Context, doc *store.Document) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

// Remove is a mock implementation of store.RosterStore.Remove
func (m *MockRosterStore) Remove(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Path returns a fixed placeholder path; it is only used for logging.
func (m *MockRosterStore) Path() string {
	return "mock://gradebook_data.json"
}
