package scene

import "fmt"

// Status reports the outcome of a scene action.
type Status struct {
	// Message is a human readable description of the outcome.
	Message string

	// OK is false if the action was refused because a precondition was
	// not met. In this case the scene is unchanged.
	OK bool

	// Accepted counts the inputs which were used by the action, or the
	// number of output shapes for clip operations.
	Accepted int

	// Ignored counts the inputs which were not used, or the number of
	// segments rejected by a line clipper.
	Ignored int
}

func (s Status) String() string {
	return s.Message
}

func done(accepted, ignored int, format string, args ...any) Status {
	return Status{
		Message:  fmt.Sprintf(format, args...),
		OK:       true,
		Accepted: accepted,
		Ignored:  ignored,
	}
}

func refused(msg string) Status {
	Logger().Info("scene: action refused", "reason", msg)
	return Status{Message: msg}
}
