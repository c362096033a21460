package seeder

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	ConnectionError ErrorKind = iota + 1
	ResetError
	GenerationError
	VerificationError
)

func (k ErrorKind) String() string {
	switch k {
	case ConnectionError:
		return "connection error"
	case ResetError:
		return "reset error"
	case GenerationError:
		return "generation error"
	case VerificationError:
		return "verification error"
	default:
		return "error"
	}
}

// StageError is returned for every failed run. Stage is the state the run
// was in when it failed.
type StageError struct {
	Stage State
	Kind  ErrorKind
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s while %s: %v", e.Kind, e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

func stageError(stage State, kind ErrorKind, err error) error {
	var existing *StageError
	if errors.As(err, &existing) {
		return err
	}
	return &StageError{Stage: stage, Kind: kind, Err: err}
}

// KindOf returns the kind of a seeding error, or 0 when err did not come from
// a seeding run.
func KindOf(err error) ErrorKind {
	var se *StageError
	if errors.As(err, &se) {
		return se.Kind
	}
	return 0
}
