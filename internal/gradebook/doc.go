// Package gradebook implements the record store: the roster of students and
// the assignment count they are scored against.
//
// A GradeBook enforces the roster rules on every mutation:
//   - the assignment count is at least 2 and, once set, stays fixed until Reset
//   - every student has exactly one score per assignment
//   - every score lies in [1, 5]
//   - no student exists before the assignment count is configured
//
// Each successful mutation rewrites the whole persisted document before the
// call returns. If the write fails the mutation is rolled back, so callers
// never observe a roster that differs from what is on disk.
//
// GradeBook is not safe for concurrent use; it is owned by one caller.
package gradebook
