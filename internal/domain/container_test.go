package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinicaio.dev/pkg/clinicaio/internal/domain"
	m "clinicaio.dev/pkg/clinicaio/internal/model"
)

func TestContainerFromFilename(t *testing.T) {
	tests := []struct {
		file m.Path
		want m.Path
	}{
		{"sub-01_ses-M00_T1w.nii.gz", "subjects/sub-01/ses-M00"},
		{"/caps/subjects/sub-ADNI011S4105/ses-M000/t1_linear/sub-ADNI011S4105_ses-M000_space-MNI152NLin2009cSym_res-1x1x1_T1w.nii.gz", "subjects/sub-ADNI011S4105/ses-M000"},
		{"prefix_sub-a1_ses-b2_run-01_pet.nii.gz", "subjects/sub-a1/ses-b2"},
	}

	for _, tt := range tests {
		t.Run(string(tt.file), func(t *testing.T) {
			got, err := domain.ContainerFromFilename(tt.file)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestContainerFromFilename_NoMatch(t *testing.T) {
	for _, file := range []m.Path{"T1w.nii.gz", "sub-01_T1w.nii.gz", "/subjects/sub-01_ses-M00/T1w.nii.gz", "sub-01_ses-M00.nii.gz"} {
		_, err := domain.ContainerFromFilename(file)
		assert.ErrorIs(t, err, m.ErrNoContainer, string(file))
	}
}
