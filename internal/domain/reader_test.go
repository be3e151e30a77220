package domain_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"clinicaio.dev/pkg/clinicaio/internal/adapter"
	adaptermocks "clinicaio.dev/pkg/clinicaio/internal/adapter/mocks"
	"clinicaio.dev/pkg/clinicaio/internal/domain"
	"clinicaio.dev/pkg/clinicaio/internal/domain/preprocessing"
	m "clinicaio.dev/pkg/clinicaio/internal/model"
)

const capsRoot = m.Path("/data/caps")

func newCapsReader(t *testing.T) (*domain.CapsReader, *adaptermocks.MockSessionAdapter, *adaptermocks.MockFileReaderAdapter) {
	t.Helper()

	ctx := context.Background()
	layout := adaptermocks.NewMockLayoutAdapter(t)
	sessions := adaptermocks.NewMockSessionAdapter(t)
	files := adaptermocks.NewMockFileReaderAdapter(t)

	layout.EXPECT().CheckCAPSFolder(ctx, capsRoot).Return(nil)

	reader, err := domain.NewCapsReader(ctx, capsRoot, layout, sessions, files)
	require.NoError(t, err)

	return reader, sessions, files
}

func TestNewCapsReader_InvalidLayout(t *testing.T) {
	ctx := context.Background()
	layout := adaptermocks.NewMockLayoutAdapter(t)
	layout.EXPECT().CheckCAPSFolder(ctx, capsRoot).Return(m.ErrCAPSStructure)

	reader, err := domain.NewCapsReader(ctx, capsRoot, layout, nil, nil)

	require.ErrorIs(t, err, m.ErrCAPSStructure)
	assert.Nil(t, reader)
}

func TestCapsReader_Paths(t *testing.T) {
	reader, _, _ := newCapsReader(t)

	assert.Equal(t, capsRoot, reader.Root())
	assert.Equal(t, m.Path("/data/caps/subjects/sub-01"), reader.SubjectPath("sub-01"))
	assert.Equal(t, m.Path("/data/caps/subjects/sub-01/ses-M00"), reader.SessionPath("sub-01", "ses-M00"))

	tests := []struct {
		p    m.Preprocessing
		want m.Path
	}{
		{m.T1Linear, "/data/caps/subjects/sub-01/ses-M00/t1_linear"},
		{m.FlairLinear, "/data/caps/subjects/sub-01/ses-M00/flair_linear"},
		{m.PETLinear, "/data/caps/subjects/sub-01/ses-M00/pet_linear"},
		{m.DWIDTI, "/data/caps/subjects/sub-01/ses-M00/dwi_dti"},
		{m.Custom, "/data/caps/subjects/sub-01/ses-M00/custom"},
	}

	for _, tt := range tests {
		t.Run(tt.p.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, reader.PreprocessingFolder("sub-01", "ses-M00", tt.p))
		})
	}
}

func TestCapsReader_ConfigFor(t *testing.T) {
	reader, _, _ := newCapsReader(t)

	cfg, err := reader.ConfigFor("pet-linear")
	require.NoError(t, err)
	assert.Equal(t, preprocessing.PETConfig{Tracer: m.TracerFFDG, SUVRReferenceRegion: m.RegionCerebellumPons2}, cfg)

	_, err = reader.ConfigFor("t3-linear")
	require.ErrorIs(t, err, m.ErrUnknownPreprocessing)
}

func TestCapsReader_TensorDirectory(t *testing.T) {
	reader, _, _ := newCapsReader(t)

	dir, err := reader.TensorDirectory(
		"/data/caps/subjects/sub-01/ses-M00/t1_linear/sub-01_ses-M00_space-MNI152NLin2009cSym_res-1x1x1_T1w.nii.gz",
		preprocessing.T1Config{})
	require.NoError(t, err)
	assert.Equal(t, m.Path("/data/caps/subjects/sub-01/ses-M00/deeplearning_prepare_data/image_based/t1_linear"), dir)

	_, err = reader.TensorDirectory("/data/caps/T1w.nii.gz", preprocessing.T1Config{})
	require.ErrorIs(t, err, m.ErrNoContainer)
}

func TestCapsReader_InputFiles(t *testing.T) {
	ctx := context.Background()
	reader, sessions, files := newCapsReader(t)

	subjects := []string{"sub-01", "sub-02"}
	sessionIDs := []string{"ses-M00", "ses-M00"}
	selected := []m.Path{"/data/caps/a_T1w.nii.gz", "/data/caps/b_T1w.nii.gz"}

	sessions.EXPECT().SubjectSessions(ctx, capsRoot, m.Path("split.tsv"), false).Return(subjects, sessionIDs, nil)
	files.EXPECT().Read(ctx, subjects, sessionIDs, capsRoot, mock.MatchedBy(func(ft m.FileType) bool {
		return ft.Pattern() == "*space-MNI152NLin2009cSym_desc-Crop_res-1x1x1_T1w.nii.gz" && ft.NeededPipeline() == "t1-linear"
	})).Return(m.Resolution{Files: selected}, nil)

	got, err := reader.InputFiles(ctx, preprocessing.T1Config{}, domain.WithSubjectSessionFile("split.tsv"))

	require.NoError(t, err)
	assert.Equal(t, selected, got)
}

func TestCapsReader_InputFiles_FromBIDSPattern(t *testing.T) {
	ctx := context.Background()
	reader, sessions, files := newCapsReader(t)

	sessions.EXPECT().SubjectSessions(ctx, capsRoot, m.Path(""), false).Return([]string{"sub-01"}, []string{"ses-M00"}, nil)
	files.EXPECT().Read(ctx, mock.Anything, mock.Anything, capsRoot, mock.MatchedBy(func(ft m.FileType) bool {
		return ft.Pattern() == "anat/sub-*_ses-*_T1w.nii*"
	})).Return(m.Resolution{Files: []m.Path{"x"}}, nil)

	cfg := preprocessing.T1Config{Settings: preprocessing.Settings{FromBIDS: true}}
	got, err := reader.InputFiles(ctx, cfg)

	require.NoError(t, err)
	assert.Equal(t, []m.Path{"x"}, got)
}

func TestCapsReader_Resolve_KeepsDiagnostics(t *testing.T) {
	ctx := context.Background()
	reader, sessions, files := newCapsReader(t)

	diagnostics := []m.Diagnostic{{Subject: "sub-02", Session: "ses-M00"}}

	sessions.EXPECT().SubjectSessions(ctx, capsRoot, m.Path(""), false).Return([]string{"sub-01", "sub-02"}, []string{"ses-M00", "ses-M00"}, nil)
	files.EXPECT().Read(ctx, mock.Anything, mock.Anything, capsRoot, mock.Anything).
		Return(m.Resolution{Files: []m.Path{"a"}, Diagnostics: diagnostics}, nil)

	resolution, err := reader.Resolve(ctx, preprocessing.FlairConfig{})

	require.NoError(t, err)
	assert.Equal(t, diagnostics, resolution.Diagnostics)
}

func TestCapsReader_InputFiles_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("session listing", func(t *testing.T) {
		reader, sessions, _ := newCapsReader(t)
		testErr := errors.New("boom")
		sessions.EXPECT().SubjectSessions(ctx, capsRoot, m.Path(""), false).Return(nil, nil, testErr)

		_, err := reader.InputFiles(ctx, preprocessing.T1Config{})
		require.ErrorIs(t, err, testErr)
	})

	t.Run("file reader", func(t *testing.T) {
		reader, sessions, files := newCapsReader(t)
		sessions.EXPECT().SubjectSessions(ctx, capsRoot, m.Path(""), false).Return([]string{"sub-01"}, []string{"ses-M00"}, nil)
		files.EXPECT().Read(ctx, mock.Anything, mock.Anything, capsRoot, mock.Anything).
			Return(m.Resolution{}, m.ErrMissingFiles)

		got, err := reader.InputFiles(ctx, preprocessing.T1Config{})
		require.ErrorIs(t, err, m.ErrMissingFiles)
		assert.Nil(t, got)
	})

	t.Run("unsupported raw pattern", func(t *testing.T) {
		reader, _, _ := newCapsReader(t)

		cfg := preprocessing.T2Config{Settings: preprocessing.Settings{FromBIDS: true}}
		_, err := reader.InputFiles(ctx, cfg)
		require.ErrorIs(t, err, m.ErrNotImplemented)
	})
}

func TestBidsReader(t *testing.T) {
	ctx := context.Background()
	root := m.Path("/data/bids")

	layout := adaptermocks.NewMockLayoutAdapter(t)
	sessions := adaptermocks.NewMockSessionAdapter(t)
	files := adaptermocks.NewMockFileReaderAdapter(t)

	layout.EXPECT().CheckBIDSFolder(ctx, root).Return(nil)

	reader, err := domain.NewBidsReader(ctx, root, layout, sessions, files)
	require.NoError(t, err)

	assert.Equal(t, root, reader.Root())
	assert.Equal(t, m.Path("/data/bids/sub-01"), reader.SubjectPath("sub-01"))
	assert.Equal(t, m.Path("/data/bids/sub-01/ses-M00"), reader.SessionPath("sub-01", "ses-M00"))

	sessions.EXPECT().SubjectSessions(ctx, root, m.Path(""), true).Return([]string{"sub-01"}, []string{"ses-M00"}, nil)
	files.EXPECT().Read(ctx, []string{"sub-01"}, []string{"ses-M00"}, root, mock.MatchedBy(func(ft m.FileType) bool {
		return ft.Pattern() == "pet/*_trc-18FAV45_rec-OSEM_pet.nii*"
	})).Return(m.Resolution{Files: []m.Path{"pet.nii.gz"}}, nil)

	cfg := preprocessing.PETConfig{Tracer: m.TracerFAV45, SUVRReferenceRegion: m.RegionPons}
	got, err := reader.InputFiles(ctx, cfg, domain.WithReconstruction("OSEM"))

	require.NoError(t, err)
	assert.Equal(t, []m.Path{"pet.nii.gz"}, got)
}

func TestNewBidsReader_InvalidLayout(t *testing.T) {
	ctx := context.Background()
	layout := adaptermocks.NewMockLayoutAdapter(t)
	layout.EXPECT().CheckBIDSFolder(ctx, m.Path("/data/caps")).Return(m.ErrBIDSStructure)

	_, err := domain.NewBidsReader(ctx, "/data/caps", layout, nil, nil)
	require.ErrorIs(t, err, m.ErrBIDSStructure)
}

func TestCapsReader_LocalAdapters(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()

	t1 := filepath.Join(root, "subjects", "sub-01", "ses-M00", "t1_linear",
		"sub-01_ses-M00_space-MNI152NLin2009cSym_desc-Crop_res-1x1x1_T1w.nii.gz")
	require.NoError(t, os.MkdirAll(filepath.Dir(t1), 0o755))
	require.NoError(t, os.WriteFile(t1, []byte("nifti"), 0o600))

	fs := adapter.NewLocalFSAdapter()
	reader, err := domain.NewCapsReader(ctx, m.Path(root),
		adapter.NewLocalLayoutAdapter(fs), adapter.NewLocalSessionAdapter(fs), adapter.NewLocalFileReaderAdapter(fs))
	require.NoError(t, err)

	assert.Equal(t, m.Path(filepath.Join(root, "subjects", "sub-01", "ses-M00", "t1_linear")),
		reader.PreprocessingFolder("sub-01", "ses-M00", m.T1Linear))

	cfg, err := reader.ConfigFor("t1-linear")
	require.NoError(t, err)

	got, err := reader.InputFiles(ctx, cfg)
	require.NoError(t, err)
	require.Equal(t, []m.Path{m.Path(t1)}, got)

	dir, err := reader.TensorDirectory(got[0], cfg)
	require.NoError(t, err)
	assert.Equal(t, m.Path(filepath.Join(root, "subjects", "sub-01", "ses-M00", "deeplearning_prepare_data", "image_based", "t1_linear")), dir)
}
