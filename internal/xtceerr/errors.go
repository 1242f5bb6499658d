// Package xtceerr defines the error taxonomy shared by the reference
// resolution and inheritance packages.
//
// Resolution queries prefer silent fallbacks (an empty string, a range that is
// not applied) for anything that is merely absent from a document. A
// ResolutionError is only returned for conditions that make a reference
// structurally impossible to follow.
package xtceerr

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a ResolutionError.
type Kind string

const (
	// EscapesRoot indicates a ".." segment tried to climb above the root
	// Space System.
	EscapesRoot Kind = "escapes-root"
	// MalformedReference indicates a reference or context path that cannot be
	// split into valid segments.
	MalformedReference Kind = "malformed-reference"
	// CyclicInheritance indicates a base-container chain that revisits a
	// container.
	CyclicInheritance Kind = "cyclic-inheritance"
	// UnresolvedReference indicates a well-formed reference that names nothing
	// in the tree.
	UnresolvedReference Kind = "unresolved-reference"
)

// Sentinels usable with errors.Is. A *ResolutionError matches the sentinel of
// its own Kind.
var (
	ErrEscapesRoot         = errors.New(string(EscapesRoot))
	ErrMalformedReference  = errors.New(string(MalformedReference))
	ErrCyclicInheritance   = errors.New(string(CyclicInheritance))
	ErrUnresolvedReference = errors.New(string(UnresolvedReference))
)

// ResolutionError describes why a reference could not be followed.
type ResolutionError struct {
	Kind      Kind
	Context   string
	Reference string
	Detail    string
}

// New builds a ResolutionError.
func New(kind Kind, context, reference, detail string) *ResolutionError {
	return &ResolutionError{Kind: kind, Context: context, Reference: reference, Detail: detail}
}

// Newf builds a ResolutionError with a formatted detail message.
func Newf(kind Kind, context, reference, format string, args ...any) *ResolutionError {
	return New(kind, context, reference, fmt.Sprintf(format, args...))
}

// Error formats the error as "[kind] detail (reference "r" in "ctx")".
func (e *ResolutionError) Error() string {
	if e == nil {
		return "resolution error <nil>"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%s]", e.Kind))
	if e.Detail != "" {
		b.WriteString(" ")
		b.WriteString(e.Detail)
	}
	if e.Reference != "" {
		b.WriteString(fmt.Sprintf(" (reference %q", e.Reference))
		if e.Context != "" {
			b.WriteString(fmt.Sprintf(" in %q", e.Context))
		}
		b.WriteString(")")
	}
	return b.String()
}

// Is reports whether target is the sentinel for e's Kind.
func (e *ResolutionError) Is(target error) bool {
	if e == nil {
		return false
	}
	return target == sentinel(e.Kind)
}

// KindOf returns the Kind of the first ResolutionError in err's chain.
func KindOf(err error) (Kind, bool) {
	var re *ResolutionError
	if errors.As(err, &re) && re != nil {
		return re.Kind, true
	}
	return "", false
}

func sentinel(kind Kind) error {
	switch kind {
	case EscapesRoot:
		return ErrEscapesRoot
	case MalformedReference:
		return ErrMalformedReference
	case CyclicInheritance:
		return ErrCyclicInheritance
	case UnresolvedReference:
		return ErrUnresolvedReference
	default:
		return nil
	}
}
