package domain

import (
	"context"
	"fmt"
	"log/slog"

	"clinicaio.dev/pkg/clinicaio/internal/adapter"
	"clinicaio.dev/pkg/clinicaio/internal/domain/preprocessing"
	m "clinicaio.dev/pkg/clinicaio/internal/model"
)

const (
	capsSubjectsDir  = "subjects"
	tensorPrepareDir = "deeplearning_prepare_data"
	tensorImageBased = "image_based"
)

// CapsReader reads a CAPS directory: subjects live under root/subjects and
// every pipeline writes into its own folder inside the session.
type CapsReader struct {
	root     m.Path
	sessions adapter.SessionAdapter
	files    adapter.FileReaderAdapter
}

var _ Reader = (*CapsReader)(nil)

// NewCapsReader checks that root follows the CAPS layout and returns a reader
// for it.
func NewCapsReader(ctx context.Context, root m.Path, layout adapter.LayoutAdapter, sessions adapter.SessionAdapter, files adapter.FileReaderAdapter) (*CapsReader, error) {
	if err := layout.CheckCAPSFolder(ctx, root); err != nil {
		return nil, err
	}

	return &CapsReader{root: root, sessions: sessions, files: files}, nil
}

func (r *CapsReader) Root() m.Path { return r.root }

func (r *CapsReader) SubjectPath(subject string) m.Path {
	return r.root.Join(capsSubjectsDir, subject)
}

func (r *CapsReader) SessionPath(subject, session string) m.Path {
	return r.SubjectPath(subject).Join(session)
}

// PreprocessingFolder returns the folder written by pipeline p for one session.
func (r *CapsReader) PreprocessingFolder(subject, session string, p m.Preprocessing) m.Path {
	return r.SessionPath(subject, session).Join(p.FolderName(false))
}

// ConfigFor returns the default configuration registered for id.
func (r *CapsReader) ConfigFor(id string) (preprocessing.Config, error) {
	return preprocessing.New(id)
}

// TensorDirectory returns the folder holding the tensors extracted from file.
func (r *CapsReader) TensorDirectory(file m.Path, cfg preprocessing.Config) (m.Path, error) {
	container, err := ContainerFromFilename(file)
	if err != nil {
		return "", err
	}

	return r.root.Join(string(container), tensorPrepareDir, tensorImageBased, preprocessing.OutputSubfolder(cfg, false)), nil
}

// InputFiles returns the file selected for every subject/session of the
// dataset.
func (r *CapsReader) InputFiles(ctx context.Context, cfg preprocessing.Config, options ...InputOption) ([]m.Path, error) {
	resolution, err := r.Resolve(ctx, cfg, options...)
	if err != nil {
		return nil, err
	}

	return resolution.Files, nil
}

// Resolve is InputFiles keeping the diagnostics of the sessions without a
// unique match.
func (r *CapsReader) Resolve(ctx context.Context, cfg preprocessing.Config, options ...InputOption) (m.Resolution, error) {
	o := collectInputOptions(options)

	fileType, err := preprocessing.ResolvedFileType(cfg)
	if err != nil {
		return m.Resolution{}, err
	}

	return resolve(ctx, r.sessions, r.files, r.root, o.subjectSessionFile, false, fileType)
}

func resolve(ctx context.Context, sessions adapter.SessionAdapter, files adapter.FileReaderAdapter, root, tsv m.Path, isBIDS bool, fileType m.FileType) (m.Resolution, error) {
	subjects, sessionIDs, err := sessions.SubjectSessions(ctx, root, tsv, isBIDS)
	if err != nil {
		return m.Resolution{}, fmt.Errorf("list subjects and sessions of %s: %w", root, err)
	}

	slog.Debug("List of subjects", "subjects", subjects)
	slog.Debug("List of sessions", "sessions", sessionIDs)

	resolution, err := files.Read(ctx, subjects, sessionIDs, root, fileType)
	if err != nil {
		return resolution, err
	}

	slog.Debug("Selected image files", "pattern", fileType.Pattern(), "files", resolution.Files)

	return resolution, nil
}
