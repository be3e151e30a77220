package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	m "clinicaio.dev/pkg/clinicaio/internal/model"
)

const t1Name = "_space-MNI152NLin2009cSym_desc-Crop_res-1x1x1_T1w.nii.gz"

func writeFile(t *testing.T, path string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("nifti"), 0o600))
}

// capsTree creates a CAPS directory with a cropped T1 image for each session.
func capsTree(t *testing.T, pairs ...[2]string) string {
	t.Helper()

	root := t.TempDir()
	for _, pair := range pairs {
		writeFile(t, filepath.Join(root, "subjects", pair[0], pair[1], "t1_linear", pair[0]+"_"+pair[1]+t1Name))
	}

	return root
}

func TestPipelinesCmd(t *testing.T) {
	out, _, err := executeCommand(t, newPipelinesCmd(), "-f", "yaml")
	require.NoError(t, err)

	var rows []map[string]string
	require.NoError(t, yaml.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, len(m.AllPreprocessings()))

	byName := map[string]map[string]string{}
	for _, row := range rows {
		byName[row["preprocessing"]] = row
	}

	assert.Equal(t, "T1w", byName["t1-linear"]["modality"])
	assert.Equal(t, "anat/sub-*_ses-*_T1w.nii*", byName["t1-linear"]["bids_pattern"])
	assert.NotContains(t, byName["t2-linear"], "bids_pattern")
	assert.Equal(t, "dwi_dti", byName["dwi-dti"]["folder"])
	assert.Equal(t, "dwi/dti_based_processing/*/*_space-*_FA.nii.gz", byName["dwi-dti"]["caps_pattern"])
}

func TestPipelinesCmd_Table(t *testing.T) {
	out, _, err := executeCommand(t, newPipelinesCmd())
	require.NoError(t, err)
	assert.Contains(t, out, "flair-linear")
	assert.Contains(t, out, "pet_linear/*_trc-18FFDG")
}

func TestPatternCmd(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"default", nil, "*space-MNI152NLin2009cSym_desc-Crop_res-1x1x1_T1w.nii.gz\n"},
		{"uncropped flair", []string{"-p", "flair-linear", "--uncropped"}, "*space-MNI152NLin2009cSym_res-1x1x1_flair.nii.gz\n"},
		{"pet", []string{"-p", "pet-linear", "--tracer", "18FAV45", "--suvr-reference-region", "pons"},
			"pet_linear/*_trc-18FAV45_space-MNI152NLin2009cSym_desc-Crop_res-1x1x1_suvr-pons_pet.nii.gz\n"},
		{"pet from bids", []string{"-p", "pet-linear", "--from-bids", "--tracer", "FDG", "--reconstruction", "OSEM"},
			"pet/*_trc-FDG_rec-OSEM_pet.nii*\n"},
		{"dti", []string{"-p", "dwi-dti", "--dti-measure", "MD", "--dti-space", "native"},
			"dwi/dti_based_processing/*/*_space-native_MD.nii.gz\n"},
		{"custom", []string{"-p", "custom", "--custom-suffix", "_mask.nii.gz"}, "*_mask.nii.gz\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := executeCommand(t, newPatternCmd(), append(tt.args, "-f", "plain")...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestPatternCmd_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"unknown preprocessing", []string{"-p", "t3-linear"}, m.ErrUnknownPreprocessing},
		{"t2 from bids", []string{"-p", "t2-linear", "--from-bids"}, m.ErrNotImplemented},
		{"bad region", []string{"-p", "pet-linear", "--suvr-reference-region", "cortex"}, m.ErrInvalidConfig},
		{"bad format", []string{"-f", "json"}, m.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := executeCommand(t, newPatternCmd(), tt.args...)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestFolderCmd(t *testing.T) {
	root := capsTree(t, [2]string{"sub-01", "ses-M00"})

	out, _, err := executeCommand(t, newFolderCmd(), root, "sub-01", "ses-M00", "-p", "pet-linear", "-f", "plain")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "subjects", "sub-01", "ses-M00", "pet_linear")+"\n", out)
}

func TestFolderCmd_RejectsBIDS(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub-01", "ses-M00"), 0o755))

	_, _, err := executeCommand(t, newFolderCmd(), root, "sub-01", "ses-M00")
	require.ErrorIs(t, err, m.ErrCAPSStructure)
}

func TestTensorDirCmd(t *testing.T) {
	root := capsTree(t, [2]string{"sub-01", "ses-M00"})
	file := filepath.Join(root, "subjects", "sub-01", "ses-M00", "t1_linear", "sub-01_ses-M00"+t1Name)

	out, _, err := executeCommand(t, newTensorDirCmd(), root, file, "-f", "plain")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "subjects", "sub-01", "ses-M00", "deeplearning_prepare_data", "image_based", "t1_linear")+"\n", out)

	_, _, err = executeCommand(t, newTensorDirCmd(), root, "image.nii.gz")
	require.ErrorIs(t, err, m.ErrNoContainer)
}

func TestFilesCmd_CAPS(t *testing.T) {
	root := capsTree(t, [2]string{"sub-01", "ses-M00"}, [2]string{"sub-01", "ses-M06"}, [2]string{"sub-02", "ses-M00"})

	out, _, err := executeCommand(t, newFilesCmd(), root, "-f", "plain", "--parallel", "2")
	require.NoError(t, err)

	assert.Equal(t,
		filepath.Join(root, "subjects", "sub-01", "ses-M00", "t1_linear", "sub-01_ses-M00"+t1Name)+"\n"+
			filepath.Join(root, "subjects", "sub-01", "ses-M06", "t1_linear", "sub-01_ses-M06"+t1Name)+"\n"+
			filepath.Join(root, "subjects", "sub-02", "ses-M00", "t1_linear", "sub-02_ses-M00"+t1Name)+"\n",
		out)
}

func TestFilesCmd_TSV(t *testing.T) {
	root := capsTree(t, [2]string{"sub-01", "ses-M00"}, [2]string{"sub-02", "ses-M00"})
	tsv := filepath.Join(t.TempDir(), "split.tsv")
	require.NoError(t, os.WriteFile(tsv, []byte("participant_id\tsession_id\nsub-02\tses-M00\n"), 0o600))

	out, _, err := executeCommand(t, newFilesCmd(), root, "--tsv", tsv, "-f", "yaml")
	require.NoError(t, err)

	var doc struct {
		Files []string `yaml:"files"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, []string{filepath.Join(root, "subjects", "sub-02", "ses-M00", "t1_linear", "sub-02_ses-M00"+t1Name)}, doc.Files)
}

func TestFilesCmd_MissingSession(t *testing.T) {
	root := capsTree(t, [2]string{"sub-01", "ses-M00"})
	require.NoError(t, os.MkdirAll(filepath.Join(root, "subjects", "sub-02", "ses-M00"), 0o755))

	t.Run("strict", func(t *testing.T) {
		_, _, err := executeCommand(t, newFilesCmd(), root)
		require.ErrorIs(t, err, m.ErrMissingFiles)
		assert.Contains(t, err.Error(), "(sub-02 | ses-M00): no file found")
	})

	t.Run("lenient", func(t *testing.T) {
		out, errOut, err := executeCommand(t, newFilesCmd(), root, "--strict=false", "-f", "plain")
		require.NoError(t, err)
		assert.Contains(t, out, "sub-01_ses-M00"+t1Name)
		assert.Contains(t, errOut, "(sub-02 | ses-M00): no file found")
	})
}

func TestFilesCmd_BIDS(t *testing.T) {
	root := t.TempDir()
	pet := filepath.Join(root, "sub-01", "ses-M00", "pet", "sub-01_ses-M00_trc-18FFDG_rec-OSEM_pet.nii.gz")
	writeFile(t, pet)
	writeFile(t, filepath.Join(root, "sub-01", "ses-M00", "pet", "sub-01_ses-M00_trc-18FAV45_rec-OSEM_pet.nii.gz"))

	out, _, err := executeCommand(t, newFilesCmd(), root, "--bids", "-p", "pet-linear", "--reconstruction", "OSEM", "-f", "plain")
	require.NoError(t, err)
	assert.Equal(t, pet+"\n", out)

	_, _, err = executeCommand(t, newFilesCmd(), root)
	require.ErrorIs(t, err, m.ErrCAPSStructure)
}
