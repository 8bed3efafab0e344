package render

import "errors"

var (
	// ErrAborted reports that the user cancelled the run with an interrupt
	// keystroke. The terminal is restored before it surfaces; what dying
	// means is the host's call.
	ErrAborted = errors.New("render: aborted")

	// ErrUnknownRenderer is wrapped by Registry.Get for missing names.
	ErrUnknownRenderer = errors.New("render: unknown renderer")

	// ErrNilForm is returned when Render receives no form.
	ErrNilForm = errors.New("render: nil form")
)
