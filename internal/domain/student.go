package domain

import (
	"errors"
	"fmt"
	"slices"

	"github.com/go-playground/validator/v10"
)

// Limits shared by the gradebook and the persisted document.
const (
	// MinAssignmentCount is the smallest accepted assignment count.
	MinAssignmentCount = 2

	// MinScore and MaxScore bound every score, inclusive.
	MinScore = 1
	MaxScore = 5
)

var validate = validator.New()

// Student is a value record: two name fields and one score per assignment.
// Position i of Scores holds the score for assignment i+1.
type Student struct {
	GivenName  string `json:"n"`
	FamilyName string `json:"f"`
	Scores     []int  `json:"studBall" validate:"dive,min=1,max=5"`
}

// NewStudent builds a Student that owns its own copy of scores.
func NewStudent(givenName, familyName string, scores []int) Student {
	return Student{
		GivenName:  givenName,
		FamilyName: familyName,
		Scores:     slices.Clone(scores),
	}
}

// Average returns the arithmetic mean of the scores, or 0 when there are none.
func (s Student) Average() float64 {
	if len(s.Scores) == 0 {
		return 0
	}

	sum := 0
	for _, score := range s.Scores {
		sum += score
	}
	return float64(sum) / float64(len(s.Scores))
}

// Clone returns a copy of s that shares no memory with it.
func (s Student) Clone() Student {
	return NewStudent(s.GivenName, s.FamilyName, s.Scores)
}

// Equal reports whether two students hold the same names and scores.
func (s Student) Equal(other Student) bool {
	return s.GivenName == other.GivenName &&
		s.FamilyName == other.FamilyName &&
		slices.Equal(s.Scores, other.Scores)
}

// FullName returns "Family Given".
func (s Student) FullName() string {
	return s.FamilyName + " " + s.GivenName
}

// Validate checks the student against an assignment count.
// It returns ErrScoreCountMismatch when the score count differs and
// ErrScoreOutOfRange when any score is outside [MinScore, MaxScore].
func (s Student) Validate(assignmentCount int) error {
	if len(s.Scores) != assignmentCount {
		return fmt.Errorf("%w: got %d scores, want %d",
			ErrScoreCountMismatch, len(s.Scores), assignmentCount)
	}

	if err := validate.Struct(s); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return fmt.Errorf("%w: %s is %v, want %d..%d",
				ErrScoreOutOfRange, fieldErrs[0].Field(), fieldErrs[0].Value(), MinScore, MaxScore)
		}
		return fmt.Errorf("%w: %v", ErrScoreOutOfRange, err)
	}

	return nil
}

// ValidateAssignmentCount returns ErrBelowMinimum when n is too small.
func ValidateAssignmentCount(n int) error {
	if n < MinAssignmentCount {
		return fmt.Errorf("%w: got %d, want at least %d", ErrBelowMinimum, n, MinAssignmentCount)
	}
	return nil
}
