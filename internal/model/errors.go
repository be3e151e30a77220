package model

import "errors"

var (
	// ErrInvalidPattern is returned when a FileType pattern starts with the path root marker.
	ErrInvalidPattern = errors.New("invalid file pattern")

	// ErrUnknownPreprocessing is returned when an identifier matches no preprocessing tag.
	ErrUnknownPreprocessing = errors.New("unknown preprocessing")

	// ErrNotImplemented is returned when a layout extraction is not supported for a pipeline.
	ErrNotImplemented = errors.New("not implemented")

	// ErrInvalidConfig is returned when a preprocessing configuration holds an unknown value.
	ErrInvalidConfig = errors.New("invalid preprocessing configuration")

	// ErrCAPSStructure is returned when a root directory is not a CAPS directory.
	ErrCAPSStructure = errors.New("invalid CAPS directory")

	// ErrBIDSStructure is returned when a root directory is not a BIDS directory.
	ErrBIDSStructure = errors.New("invalid BIDS directory")

	// ErrTSV is returned when a subject/session TSV file cannot be used.
	ErrTSV = errors.New("invalid subject/session TSV file")

	// ErrNoContainer is returned when a file name carries no subject/session entities.
	ErrNoContainer = errors.New("no subject/session container in file name")

	// ErrMissingFiles is returned by strict file resolution when some sessions
	// have no unambiguous match.
	ErrMissingFiles = errors.New("missing input files")
)
