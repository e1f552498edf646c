package config

import "errors"

// Configuration validation errors returned by Config.Validate.
// Callers match them with errors.Is.
var (
	// ErrInvalidLength is returned when the password length is not positive.
	ErrInvalidLength = errors.New("invalid length: must be positive")

	// ErrInvalidCount is returned when the password count is not positive.
	ErrInvalidCount = errors.New("invalid count: must be positive")

	// ErrInvalidBatchSize is returned when the batch size is not positive.
	ErrInvalidBatchSize = errors.New("invalid batch size: must be positive")

	// ErrInvalidMinEntropy is returned when the minimum entropy is negative.
	ErrInvalidMinEntropy = errors.New("invalid minimum entropy: must be non-negative")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrInvalidExportFormat is returned for an unsupported export format.
	ErrInvalidExportFormat = errors.New("invalid export format: must be one of csv, tsv, json, markdown, text")
)
