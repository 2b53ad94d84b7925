package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies catalog failures
type ErrorKind string

const (
	// KindRetrieval marks a failed listing
	KindRetrieval ErrorKind = "RETRIEVAL"

	// KindCreation marks a failed upload
	KindCreation ErrorKind = "CREATION"
)

var (
	// ErrRetrieval matches any CatalogError of kind RETRIEVAL via errors.Is
	ErrRetrieval = errors.New("artwork retrieval failed")

	// ErrCreation matches any CatalogError of kind CREATION via errors.Is
	ErrCreation = errors.New("artwork creation failed")

	// ErrInvalidDraft is wrapped by draft validation failures
	ErrInvalidDraft = errors.New("invalid artwork draft")
)

// CatalogError is returned by every ArtworkStore operation that fails
type CatalogError struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *CatalogError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s failed", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *CatalogError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match on the kind sentinels
func (e *CatalogError) Is(target error) bool {
	switch target {
	case ErrRetrieval:
		return e.Kind == KindRetrieval
	case ErrCreation:
		return e.Kind == KindCreation
	}
	return false
}

// NewRetrievalError wraps err as a RETRIEVAL failure
func NewRetrievalError(op string, err error) *CatalogError {
	return &CatalogError{Kind: KindRetrieval, Op: op, Err: err}
}

// NewCreationError wraps err as a CREATION failure
func NewCreationError(op string, err error) *CatalogError {
	return &CatalogError{Kind: KindCreation, Op: op, Err: err}
}

// NoticeKind is the severity of a user-facing notification
type NoticeKind int

const (
	NoticeInfo NoticeKind = iota
	NoticeSuccess
	NoticeWarning
	NoticeError
)

func (k NoticeKind) String() string {
	switch k {
	case NoticeSuccess:
		return "success"
	case NoticeWarning:
		return "warning"
	case NoticeError:
		return "error"
	default:
		return "info"
	}
}
