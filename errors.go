package weave

import "fmt"

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates an invalid or unreadable configuration.
	KindConfig
	// KindTerminal indicates a failure acquiring or restoring the terminal.
	KindTerminal
	// KindBackend indicates a failure inside a render backend.
	KindBackend
	// KindPanic indicates a panic recovered while a session was active.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindTerminal:
		return "terminal"
	case KindBackend:
		return "backend"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Error is a structured error returned by the toolkit.
type Error struct {
	// Op is the operation that failed (e.g., "weave.LoadConfig").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// LayoutError is the panic value raised when a node reports a size
// outside the limits it was given.
type LayoutError struct {
	// Node is the name of the offending node.
	Node string
	// Limits are the limits passed to Layout.
	Limits Limits
	// Size is the size Layout returned.
	Size Size
	// Site is where the node was constructed, as file:line.
	Site string
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("%s (created at %s) returned size %v outside limits %v", e.Node, e.Site, e.Size, e.Limits)
}

// ShrinkError is the panic value raised when a sub-region does not fit
// inside the current drawing region.
type ShrinkError struct {
	TopLeft   XY
	Size      Size
	Available Size
}

func (e *ShrinkError) Error() string {
	return fmt.Sprintf("region %v at (%d,%d) does not fit in %v", e.Size, e.TopLeft.X, e.TopLeft.Y, e.Available)
}
