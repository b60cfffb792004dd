package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/phrazzld/gradebook/internal/domain"
)

// Document is the canonical persisted form of a roster.
type Document struct {
	AssignmentCount int              `json:"assignmentCount"`
	Students        []domain.Student `json:"students"`
}

// documentJSON is the decoding shape of Document; a nil count means the key
// was absent or the document was null.
type documentJSON struct {
	AssignmentCount *int             `json:"assignmentCount"`
	Students        []domain.Student `json:"students"`
}

// DecodeDocument parses a persisted document. It does not validate roster
// rules; call Validate for that.
func DecodeDocument(data []byte) (*Document, error) {
	var raw documentJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}
	if raw.AssignmentCount == nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, errMissingAssignmentCount)
	}
	return &Document{AssignmentCount: *raw.AssignmentCount, Students: raw.Students}, nil
}

var errMissingAssignmentCount = errors.New("assignmentCount is missing")

// NewDocument snapshots a roster into a Document. Students are copied.
func NewDocument(assignmentCount int, students []domain.Student) *Document {
	doc := &Document{
		AssignmentCount: assignmentCount,
		Students:        make([]domain.Student, len(students)),
	}
	for i, s := range students {
		doc.Students[i] = s.Clone()
	}
	return doc
}

// Validate checks that the document describes a roster the gradebook could
// have produced. It returns ErrMalformedDocument wrapping the first violation.
func (d *Document) Validate() error {
	switch {
	case d.AssignmentCount < 0:
		return fmt.Errorf("%w: negative assignment count %d", ErrMalformedDocument, d.AssignmentCount)
	case d.AssignmentCount == 0:
		if len(d.Students) > 0 {
			return fmt.Errorf("%w: %d students without an assignment count",
				ErrMalformedDocument, len(d.Students))
		}
		return nil
	}

	if err := domain.ValidateAssignmentCount(d.AssignmentCount); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}

	for i, s := range d.Students {
		if err := s.Validate(d.AssignmentCount); err != nil {
			return fmt.Errorf("%w: student %d: %w", ErrMalformedDocument, i, err)
		}
	}

	return nil
}
