package common

import (
	"errors"
	"fmt"
)

// Sentinel kinds for the two failures the entity services classify.
// Everything else a service returns is an unclassified store fault.
var (
	ErrResourceExists = errors.New("resource exists")
	ErrNotFound       = errors.New("not found")
)

// DomainError carries a human-readable description of the conflicting key or missing record.
type DomainError struct {
	Kind    error
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Kind
}

// ResourceExists reports a uniqueness key collision.
func ResourceExists(format string, args ...any) error {
	return &DomainError{Kind: ErrResourceExists, Message: fmt.Sprintf(format, args...)}
}

// NotFound reports a missing record of the given entity kind.
func NotFound(entity string, id uint) error {
	return &DomainError{Kind: ErrNotFound, Message: fmt.Sprintf("%s %d not found", entity, id)}
}

// NotFoundBy reports that no record of the entity kind matches a lookup key.
func NotFoundBy(entity, key string, value any) error {
	return &DomainError{Kind: ErrNotFound, Message: fmt.Sprintf("%s with %s %v not found", entity, key, value)}
}

func IsResourceExists(err error) bool {
	return errors.Is(err, ErrResourceExists)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
