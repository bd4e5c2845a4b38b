package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseInit        Phase = "init"        // layer construction
	PhaseConfig      Phase = "config"      // configuration and profiles
	PhaseInstantiate Phase = "instantiate" // runtime and module setup
	PhaseHost        Phase = "host"        // raw host calls
)

// Kind categorizes the error
type Kind string

const (
	KindCatalogue     Kind = "catalogue"
	KindContract      Kind = "contract"
	KindInvalidInput  Kind = "invalid_input"
	KindInstantiation Kind = "instantiation"
	KindNotFound      Kind = "not_found"
	KindUnsupported   Kind = "unsupported"
)

// Error is the structured error type for failures that are not host status
// codes.
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Call   string // raw entry point, e.g. fd_read
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Call != "" {
		b.WriteString(" in ")
		b.WriteString(e.Call)
	}

	if e.Detail != "" {
		b.WriteString(": ")
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

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Call sets the raw entry point name
func (b *Builder) Call(name string) *Builder {
	b.err.Call = name
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

// Catalogue reports a constant catalogue whose success status is not zero.
func Catalogue(module string, success uint16) *Error {
	return &Error{
		Phase:  PhaseInit,
		Kind:   KindCatalogue,
		Detail: fmt.Sprintf("catalogue %q declares success status %d, want 0", module, success),
		Value:  success,
	}
}

// Contract reports a host that broke the calling convention of call, e.g. by
// reporting more bytes than the caller offered.
func Contract(call string, reported, capacity int) *Error {
	return &Error{
		Phase:  PhaseHost,
		Kind:   KindContract,
		Call:   call,
		Detail: fmt.Sprintf("host reported %d, capacity is %d", reported, capacity),
		Value:  reported,
	}
}

// Unreachable reports a host that returned from a call documented not to.
func Unreachable(call string) *Error {
	return &Error{
		Phase:  PhaseHost,
		Kind:   KindContract,
		Call:   call,
		Detail: "host returned control",
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
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

// NotFound creates a not-found error for the named value at path
func NotFound(phase Phase, path []string, name string, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Path:   path,
		Value:  name,
		Detail: fmt.Sprintf("%q not found", name),
		Cause:  cause,
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

// InvalidConfig creates an invalid input error for a configuration field.
func InvalidConfig(path []string, value any, detail string) *Error {
	return &Error{
		Phase:  PhaseConfig,
		Kind:   KindInvalidInput,
		Path:   path,
		Value:  value,
		Detail: detail,
	}
}

// Instantiation creates an instantiation error
func Instantiation(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseInstantiate,
		Kind:   KindInstantiation,
		Detail: detail,
		Cause:  cause,
	}
}

// MissingExportsError is returned when an instantiated module lacks exports
// the host needs to forward calls.
type MissingExportsError struct {
	Module string
	Names  []string
}

func (e *MissingExportsError) Error() string {
	if len(e.Names) == 0 {
		return "[instantiate] not_found: no exports specified"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "module %q is missing %d export(s):", e.Module, len(e.Names))
	for _, name := range e.Names {
		b.WriteString("\n  - ")
		b.WriteString(name)
	}
	return b.String()
}

// Is reports whether target matches this error type
func (e *MissingExportsError) Is(target error) bool {
	_, ok := target.(*MissingExportsError)
	return ok
}
