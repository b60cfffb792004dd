// Package domain contains the student record, its validation rules and the
// roster-level aggregates. It has no knowledge of persistence or rendering.
package domain
