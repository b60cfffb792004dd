// Package store persists the roster as a single canonical JSON document.
// The RosterStore interface keeps the gradebook independent of where and how
// the document is written; FileStore is the afero-backed implementation.
package store
