package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/spf13/afero"
)

const documentPerm = 0o644

// FileStore implements RosterStore on top of an afero filesystem.
// Saves write a temporary file next to the document and rename it into place,
// so a crash mid-save never leaves a half-written document behind.
type FileStore struct {
	fs     afero.Fs
	path   string
	logger *slog.Logger
}

var _ RosterStore = (*FileStore)(nil)

// NewFileStore creates a FileStore for the document at path.
// A nil logger discards output.
func NewFileStore(fsys afero.Fs, path string, logger *slog.Logger) *FileStore {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &FileStore{
		fs:     fsys,
		path:   path,
		logger: logger.With("component", "file_store", "path", path),
	}
}

// Path returns the document path.
func (s *FileStore) Path() string {
	return s.path
}

// Load implements RosterStore.
func (s *FileStore) Load(ctx context.Context) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrDocumentNotFound
		}
		return nil, NewStoreError("load", s.path, "cannot read document",
			fmt.Errorf("%w: %w", ErrReadFailed, err))
	}

	doc, err := DecodeDocument(data)
	if err != nil {
		return nil, NewStoreError("load", s.path, "cannot decode document", err)
	}

	if err := doc.Validate(); err != nil {
		return nil, NewStoreError("load", s.path, "document rejected", err)
	}

	s.logger.Debug("document loaded",
		"assignment_count", doc.AssignmentCount,
		"student_count", len(doc.Students))
	return doc, nil
}

// Save implements RosterStore.
func (s *FileStore) Save(ctx context.Context, doc *Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return NewStoreError("save", s.path, "cannot encode document", err)
	}
	data = append(data, '\n')

	if err := s.writeAtomic(data); err != nil {
		return NewStoreError("save", s.path, "cannot write document",
			fmt.Errorf("%w: %w", ErrWriteFailed, err))
	}

	s.logger.Debug("document saved",
		"assignment_count", doc.AssignmentCount,
		"student_count", len(doc.Students),
		"bytes", len(data))
	return nil
}

func (s *FileStore) writeAtomic(data []byte) (err error) {
	dir := filepath.Dir(s.path)
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := afero.TempFile(s.fs, dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			if rmErr := s.fs.Remove(tmpName); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
				s.logger.Warn("failed to remove temporary file", "tmp", tmpName, "error", rmErr)
			}
		}
	}()

	if _, err = bytes.NewReader(data).WriteTo(tmp); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = s.fs.Chmod(tmpName, documentPerm); err != nil {
		return err
	}

	return s.fs.Rename(tmpName, s.path)
}

// Remove implements RosterStore.
func (s *FileStore) Remove(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.fs.Remove(s.path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("no document to remove")
			return nil
		}
		return NewStoreError("remove", s.path, "cannot delete document",
			fmt.Errorf("%w: %w", ErrDeleteFailed, err))
	}

	s.logger.Debug("document removed")
	return nil
}
