package errors

import (
	"fmt"
	"strings"
)

// Phase indicates which operation produced the error
type Phase string

const (
	PhaseInit    Phase = "init"    // catalog and table construction
	PhaseLookup  Phase = "lookup"  // type or tag to kind resolution
	PhaseWrap    Phase = "wrap"    // boxing into a kind
	PhaseUnwrap  Phase = "unwrap"  // raw bit extraction
	PhaseConvert Phase = "convert" // cast/convert to a target type
	PhaseSlots   Phase = "slots"   // wazero stack slot bridge
	PhaseWIT     Phase = "wit"     // WIT type mapping
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidArgument       Kind = "invalid_argument"
	KindIncompatibleType      Kind = "incompatible_type"
	KindUnsupportedConversion Kind = "unsupported_conversion"
	KindInvariantViolation    Kind = "invariant_violation"
	KindNotFound              Kind = "not_found"
	KindClosed                Kind = "closed"
)

// Sentinels for errors.Is. A target without a Phase matches every phase.
var (
	ErrInvalidArgument       = &Error{Kind: KindInvalidArgument}
	ErrIncompatibleType      = &Error{Kind: KindIncompatibleType}
	ErrUnsupportedConversion = &Error{Kind: KindUnsupportedConversion}
	ErrInvariantViolation    = &Error{Kind: KindInvariantViolation}
	ErrNotFound              = &Error{Kind: KindNotFound}
	ErrClosed                = &Error{Kind: KindClosed}
)

// Error is the structured error type used throughout the module
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	GoType string
	Target string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	if e.Phase != "" {
		b.WriteByte('[')
		b.WriteString(string(e.Phase))
		b.WriteString("] ")
	}
	b.WriteString(string(e.Kind))

	if e.GoType != "" || e.Target != "" {
		b.WriteString(": ")
		switch {
		case e.GoType != "" && e.Target != "":
			b.WriteString(e.GoType)
			b.WriteString(" is not compatible with ")
			b.WriteString(e.Target)
		case e.GoType != "":
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
		default:
			b.WriteString("target ")
			b.WriteString(e.Target)
		}
	}

	if e.Detail != "" {
		if e.GoType != "" || e.Target != "" {
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

// Is reports whether target matches this error.
// Kinds must match; phases must match unless the target leaves Phase empty.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Phase != "" && e.Phase != t.Phase {
		return false
	}
	return e.Kind == t.Kind
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

// GoType sets the Go type name of the offending value
func (b *Builder) GoType(t string) *Builder {
	b.err.GoType = t
	return b
}

// Target sets the target kind or type name
func (b *Builder) Target(t string) *Builder {
	b.err.Target = t
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

// Detail sets the human-readable detail message verbatim
func (b *Builder) Detail(msg string) *Builder {
	b.err.Detail = msg
	return b
}

// Detailf sets the detail message from a format string
func (b *Builder) Detailf(format string, args ...any) *Builder {
	b.err.Detail = fmt.Sprintf(format, args...)
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// InvalidArgument creates an error for a type or tag outside the catalog
func InvalidArgument(phase Phase, detail string, value any) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidArgument,
		Detail: detail,
		Value:  value,
	}
}

// IncompatibleType creates a cast failure between a source and a target type
func IncompatibleType(phase Phase, goType, target string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindIncompatibleType,
		GoType: goType,
		Target: target,
	}
}

// UnsupportedConversion creates an error for a value that has no numeric view
func UnsupportedConversion(phase Phase, goType, target, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupportedConversion,
		GoType: goType,
		Target: target,
		Detail: detail,
	}
}

// InvariantViolation creates an error for a broken catalog.
// It is only raised during initialization and is not recoverable.
func InvariantViolation(detail string, args ...any) *Error {
	return &Error{
		Phase:  PhaseInit,
		Kind:   KindInvariantViolation,
		Detail: fmt.Sprintf(detail, args...),
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what string, id any) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %v not found", what, id),
		Value:  id,
	}
}

// Closed creates an error for an operation on a closed component
func Closed(phase Phase, component string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindClosed,
		Detail: fmt.Sprintf("%s closed", component),
	}
}
