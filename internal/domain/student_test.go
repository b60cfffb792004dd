package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudentAverage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		scores []int
		want   float64
	}{
		{name: "all fives", scores: []int{5, 5, 5}, want: 5.0},
		{name: "one to four", scores: []int{1, 2, 3, 4}, want: 2.5},
		{name: "no scores", scores: []int{}, want: 0.0},
		{name: "nil scores", scores: nil, want: 0.0},
		{name: "repeating fraction", scores: []int{5, 4, 5}, want: 14.0 / 3.0},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			s := NewStudent("Ann", "Lee", tc.scores)
			assert.InDelta(t, tc.want, s.Average(), 1e-9)
		})
	}
}

func TestNewStudentCopiesScores(t *testing.T) {
	t.Parallel()

	scores := []int{3, 4}
	s := NewStudent("Ann", "Lee", scores)
	scores[0] = 1

	assert.Equal(t, []int{3, 4}, s.Scores, "student must not alias the caller's slice")

	clone := s.Clone()
	clone.Scores[1] = 5
	assert.Equal(t, []int{3, 4}, s.Scores, "clone must not alias the original")
	assert.False(t, s.Equal(clone))
}

func TestStudentValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		scores          []int
		assignmentCount int
		wantErr         error
	}{
		{name: "valid", scores: []int{1, 3, 5}, assignmentCount: 3},
		{name: "too few scores", scores: []int{4, 4}, assignmentCount: 3, wantErr: ErrScoreCountMismatch},
		{name: "too many scores", scores: []int{4, 4, 4}, assignmentCount: 2, wantErr: ErrScoreCountMismatch},
		{name: "score zero", scores: []int{0, 4}, assignmentCount: 2, wantErr: ErrScoreOutOfRange},
		{name: "score six", scores: []int{4, 6}, assignmentCount: 2, wantErr: ErrScoreOutOfRange},
		{name: "negative score", scores: []int{-1, 4}, assignmentCount: 2, wantErr: ErrScoreOutOfRange},
		{name: "count checked first", scores: []int{9}, assignmentCount: 2, wantErr: ErrScoreCountMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := NewStudent("Ann", "Lee", tc.scores).Validate(tc.assignmentCount)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.wantErr), "got %v, want %v", err, tc.wantErr)
			assert.True(t, IsValidationError(err))
		})
	}
}

func TestValidateAssignmentCount(t *testing.T) {
	t.Parallel()

	for _, n := range []int{-1, 0, 1} {
		err := ValidateAssignmentCount(n)
		assert.ErrorIs(t, err, ErrBelowMinimum, "n=%d", n)
		assert.ErrorIs(t, err, ErrConfig, "n=%d", n)
		assert.False(t, IsValidationError(err))
	}

	for _, n := range []int{2, 3, 10} {
		assert.NoError(t, ValidateAssignmentCount(n), "n=%d", n)
	}
}

func TestStudentFullName(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Lee Ann", NewStudent("Ann", "Lee", nil).FullName())
}
