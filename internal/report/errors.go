package report

import "errors"

var (
	// ErrUnknownFormat is returned when no writer exists for a format name.
	ErrUnknownFormat = errors.New("unknown report format")

	// ErrNilExport is returned when a nil history export is written.
	ErrNilExport = errors.New("history export is nil")
)
