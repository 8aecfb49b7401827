package service

import (
	"errors"
	"fmt"
)

var (
	// ErrURLNotFound is returned when no mapping exists for an identifier.
	ErrURLNotFound = errors.New("URL not found")
	// ErrIDTaken is reported by a store when the candidate identifier was
	// inserted by someone else between the existence check and the upsert.
	ErrIDTaken = errors.New("short identifier already taken")
	// ErrIDSpaceExhausted ends the collision loop after MaxAttempts candidates.
	ErrIDSpaceExhausted = errors.New("no free short identifier found")
)

// PersistenceError wraps any failure talking to the backing store.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// NewPersistenceError wraps err unless it already is a PersistenceError.
func NewPersistenceError(op string, err error) error {
	var pe *PersistenceError
	if errors.As(err, &pe) {
		return err
	}
	return &PersistenceError{Op: op, Err: err}
}

// IsPersistence reports whether err is (or wraps) a PersistenceError.
func IsPersistence(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}
