package grammar

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors matched by errors.Is against a *LoadError.
var (
	ErrNotFound  = errors.New("grammar unavailable")
	ErrMalformed = errors.New("malformed grammar")
)

// ErrorKind classifies a LoadError.
type ErrorKind int

const (
	// KindNotFound means the grammar source does not exist.
	KindNotFound ErrorKind = iota + 1

	// KindMalformed means the source exists but cannot be decoded or breaks CNF.
	KindMalformed
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// LoadError is returned by Load when a grammar source cannot be turned into
// a Grammar.
type LoadError struct {
	Kind   ErrorKind
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("load grammar %s: %s", e.Source, e.Kind)
	}
	return fmt.Sprintf("load grammar %s: %s: %v", e.Source, e.Kind, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrNotFound) and errors.Is(err, ErrMalformed)
// match on Kind.
func (e *LoadError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrMalformed:
		return e.Kind == KindMalformed
	}
	return false
}

// MalformedProductionError reports a production that violates CNF.
type MalformedProductionError struct {
	LHS        string
	Index      int // position in the LHS production list; -1 for LHS errors
	Production Production
	Reason     string
}

func (e *MalformedProductionError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("malformed production: %s", e.Reason)
	}
	return fmt.Sprintf("malformed production %s -> [%s] (#%d): %s",
		e.LHS, strings.Join(e.Production, " "), e.Index, e.Reason)
}

func (e *MalformedProductionError) Is(target error) bool {
	return target == ErrMalformed
}
