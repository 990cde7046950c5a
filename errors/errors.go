package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseParse   Phase = "parse"   // descriptor tokenization
	PhaseResolve Phase = "resolve" // class name resolution
	PhaseQuery   Phase = "query"   // signature query surface
	PhaseIntern  Phase = "intern"  // symbol/type interning
)

// Kind categorizes the error
type Kind string

const (
	KindMalformedDescriptor Kind = "malformed_descriptor"
	KindUnexpectedEnd       Kind = "unexpected_end"
	KindInvalidTag          Kind = "invalid_tag"
	KindClassNotFound       Kind = "class_not_found"
	KindOutOfBounds         Kind = "out_of_bounds"
	KindNilPointer          Kind = "nil_pointer"
	KindInvalidShape        Kind = "invalid_shape"
	KindInvalidInput        Kind = "invalid_input"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value      any
	Cause      error
	Phase      Phase
	Kind       Kind
	Descriptor string
	ClassName  string
	Detail     string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Descriptor != "" || e.ClassName != "" {
		b.WriteString(": ")
		if e.Descriptor != "" && e.ClassName != "" {
			b.WriteString("descriptor ")
			b.WriteString(fmt.Sprintf("%q", e.Descriptor))
			b.WriteString(", class ")
			b.WriteString(e.ClassName)
		} else if e.Descriptor != "" {
			b.WriteString("descriptor ")
			b.WriteString(fmt.Sprintf("%q", e.Descriptor))
		} else {
			b.WriteString("class ")
			b.WriteString(e.ClassName)
		}
	}

	if e.Detail != "" {
		if e.Descriptor != "" || e.ClassName != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Descriptor sets the descriptor text the error occurred in
func (b *Builder) Descriptor(d string) *Builder {
	b.err.Descriptor = d
	return b
}

// ClassName sets the class name involved
func (b *Builder) ClassName(n string) *Builder {
	b.err.ClassName = n
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// MalformedDescriptor creates a descriptor grammar violation error
func MalformedDescriptor(desc string, pos int, detail string) *Error {
	return &Error{
		Phase:      PhaseParse,
		Kind:       KindMalformedDescriptor,
		Descriptor: desc,
		Detail:     fmt.Sprintf("%s at offset %d", detail, pos),
		Value:      pos,
	}
}

// UnexpectedEnd creates an error for a descriptor that ends before its
// return type marker
func UnexpectedEnd(desc string, pos int) *Error {
	return &Error{
		Phase:      PhaseParse,
		Kind:       KindUnexpectedEnd,
		Descriptor: desc,
		Detail:     fmt.Sprintf("descriptor ends at offset %d before return type", pos),
		Value:      pos,
	}
}

// InvalidTag creates an error for an unrecognized type tag
func InvalidTag(desc string, pos int, tag byte) *Error {
	return &Error{
		Phase:      PhaseParse,
		Kind:       KindInvalidTag,
		Descriptor: desc,
		Detail:     fmt.Sprintf("unknown type tag %q at offset %d", string(tag), pos),
		Value:      tag,
	}
}

// ClassNotFound creates a hard resolution failure error
func ClassNotFound(name, accessing string) *Error {
	return &Error{
		Phase:     PhaseResolve,
		Kind:      KindClassNotFound,
		ClassName: name,
		Detail:    fmt.Sprintf("not found from accessing class %s", accessing),
	}
}

// OutOfBounds creates an out of bounds error
func OutOfBounds(phase Phase, index, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Detail: fmt.Sprintf("index %d out of bounds (length %d)", index, length),
		Value:  index,
	}
}

// NilPointer creates a nil pointer error
func NilPointer(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNilPointer,
		Detail: fmt.Sprintf("%s is nil", what),
	}
}

// InvalidShape creates an error for a structured descriptor that breaks
// its own contract
func InvalidShape(detail string) *Error {
	return &Error{
		Phase:  PhaseResolve,
		Kind:   KindInvalidShape,
		Detail: detail,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
