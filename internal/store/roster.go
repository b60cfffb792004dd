package store

import "context"

// RosterStore defines the interface for roster document persistence.
type RosterStore interface {
	// Load reads and validates the document.
	// Returns ErrDocumentNotFound if nothing has been saved yet and
	// ErrMalformedDocument if the content cannot be trusted.
	Load(ctx context.Context) (*Document, error)

	// Save replaces the whole document with doc.
	Save(ctx context.Context, doc *Document) error

	// Remove deletes the document. Removing a missing document is not an error.
	Remove(ctx context.Context) error

	// Path returns where the document lives, for logging.
	Path() string
}
