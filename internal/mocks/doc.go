// Package mocks provides shared test doubles.
//
// Mocks are built on testify/mock so tests can set expectations and assert
// that a call did or did not happen:
//
//	rs := &mocks.MockRosterStore{}
//	rs.On("Save", mock.Anything, mock.Anything).Return(nil).Once()
//	defer rs.AssertExpectations(t)
package mocks
