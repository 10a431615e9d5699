package surveydoc

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates a required input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrNoIdentifierColumn indicates no column matched the identifier keywords.
var ErrNoIdentifierColumn = errors.New("no identifier column found")

// ErrInvalidConfig indicates a configuration value no stage can work with.
var ErrInvalidConfig = errors.New("invalid configuration")

// StageError represents a failure while a stage processed one item.
type StageError struct {
	Stage string // "intake", "match", "generate"
	Item  string // archive name or row label
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s error for %s: %v", e.Stage, e.Item, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// NewStageError creates a new StageError.
func NewStageError(stage, item string, err error) *StageError {
	return &StageError{
		Stage: stage,
		Item:  item,
		Err:   err,
	}
}
