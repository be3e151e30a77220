package domain

import (
	"context"

	"clinicaio.dev/pkg/clinicaio/internal/adapter"
	"clinicaio.dev/pkg/clinicaio/internal/domain/preprocessing"
	m "clinicaio.dev/pkg/clinicaio/internal/model"
)

// BidsReader reads a BIDS directory, where subjects sit directly under root.
type BidsReader struct {
	root     m.Path
	sessions adapter.SessionAdapter
	files    adapter.FileReaderAdapter
}

var _ Reader = (*BidsReader)(nil)

// NewBidsReader checks that root follows the BIDS layout and returns a reader
// for it. Unlike NewCapsReader it runs CheckBIDSFolder, not the CAPS check.
func NewBidsReader(ctx context.Context, root m.Path, layout adapter.LayoutAdapter, sessions adapter.SessionAdapter, files adapter.FileReaderAdapter) (*BidsReader, error) {
	if err := layout.CheckBIDSFolder(ctx, root); err != nil {
		return nil, err
	}

	return &BidsReader{root: root, sessions: sessions, files: files}, nil
}

func (r *BidsReader) Root() m.Path { return r.root }

func (r *BidsReader) SubjectPath(subject string) m.Path {
	return r.root.Join(subject)
}

func (r *BidsReader) SessionPath(subject, session string) m.Path {
	return r.SubjectPath(subject).Join(session)
}

// InputFiles returns the raw file selected for every subject/session.
func (r *BidsReader) InputFiles(ctx context.Context, cfg preprocessing.Config, options ...InputOption) ([]m.Path, error) {
	resolution, err := r.Resolve(ctx, cfg, options...)
	if err != nil {
		return nil, err
	}

	return resolution.Files, nil
}

// Resolve matches the raw BIDS pattern of cfg in every session.
func (r *BidsReader) Resolve(ctx context.Context, cfg preprocessing.Config, options ...InputOption) (m.Resolution, error) {
	o := collectInputOptions(options)

	fileType, err := preprocessing.BIDSFileType(cfg, o.reconstruction)
	if err != nil {
		return m.Resolution{}, err
	}

	return resolve(ctx, r.sessions, r.files, r.root, o.subjectSessionFile, true, fileType)
}
