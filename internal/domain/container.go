package domain

import (
	"fmt"
	"path/filepath"
	"regexp"

	m "clinicaio.dev/pkg/clinicaio/internal/model"
)

var subjectSession = regexp.MustCompile(`(sub-[a-zA-Z0-9]+)_(ses-[a-zA-Z0-9]+)_`)

// ContainerFromFilename returns subjects/<sub>/<ses> for a file named after
// its subject and session, such as sub-01_ses-M000_T1w.nii.gz.
func ContainerFromFilename(file m.Path) (m.Path, error) {
	base := filepath.Base(string(file))

	match := subjectSession.FindStringSubmatch(base)
	if match == nil {
		return "", fmt.Errorf("%w: %q does not contain sub-<label>_ses-<label>_", m.ErrNoContainer, base)
	}

	return m.Path(capsSubjectsDir).Join(match[1], match[2]), nil
}
