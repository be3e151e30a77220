// Package domain holds the dataset readers: they locate subject, session and
// pipeline folders in a BIDS or CAPS directory and resolve the input files of a
// preprocessing configuration.
package domain

import m "clinicaio.dev/pkg/clinicaio/internal/model"

// Reader exposes the path rules of a dataset rooted at Root.
type Reader interface {
	Root() m.Path
	SubjectPath(subject string) m.Path
	SessionPath(subject, session string) m.Path
}

// InputOption tunes an input file lookup.
type InputOption func(*inputOptions)

type inputOptions struct {
	subjectSessionFile m.Path
	reconstruction     string
}

// WithSubjectSessionFile restricts the lookup to the participant_id/session_id
// pairs listed in a TSV file.
func WithSubjectSessionFile(tsv m.Path) InputOption {
	return func(o *inputOptions) {
		o.subjectSessionFile = tsv
	}
}

// WithReconstruction sets the PET reconstruction method of raw BIDS patterns.
func WithReconstruction(reconstruction string) InputOption {
	return func(o *inputOptions) {
		o.reconstruction = reconstruction
	}
}

func collectInputOptions(options []InputOption) inputOptions {
	var o inputOptions
	for _, option := range options {
		option(&o)
	}

	return o
}
