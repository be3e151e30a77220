package preprocessing

import (
	"fmt"

	m "clinicaio.dev/pkg/clinicaio/internal/model"
)

const (
	templateSpace   = "MNI152NLin2009cSym"
	resolution      = "res-1x1x1"
	cropQualifier   = "_desc-Crop"
	cropDescription = "and cropped (matrix size 169×208×179, 1 mm isotropic voxels)"
)

// BIDSFileType builds the FileType locating the raw file of cfg in a BIDS
// directory. reconstruction is only used by PET and may be empty.
func BIDSFileType(cfg Config, reconstruction string) (m.FileType, error) {
	switch c := cfg.(type) {
	case T1Config:
		return m.NewFileType("anat/sub-*_ses-*_T1w.nii*", "T1w MRI", "")
	case FlairConfig:
		return m.NewFileType("sub-*_ses-*_flair.nii*", "FLAIR T2w MRI", "")
	case T2Config:
		return m.FileType{}, fmt.Errorf("%w: extraction of preprocessing %s is not implemented from BIDS directory", m.ErrNotImplemented, c.Preprocessing())
	case DTIConfig:
		return m.NewFileType("dwi/sub-*_ses-*_dwi.nii*", "DWI NIfTI", "")
	case PETConfig:
		return petBIDSFileType(c, reconstruction)
	case CustomConfig:
		return m.NewFileType("*"+c.Suffix, "Custom suffix", "")
	default:
		return m.FileType{}, unsupported(cfg)
	}
}

func petBIDSFileType(c PETConfig, reconstruction string) (m.FileType, error) {
	trc, rec, description := "", "", "PET data"

	if c.Tracer != "" {
		description += fmt.Sprintf(" with %s tracer", c.Tracer)
		trc = "_trc-" + string(c.Tracer)
	}

	if reconstruction != "" {
		description += " and reconstruction method " + reconstruction
		rec = "_rec-" + reconstruction
	}

	return m.NewFileType(fmt.Sprintf("pet/*%s%s_pet.nii*", trc, rec), description, "")
}

// CAPSIdentity returns the pipeline that produced the CAPS file of cfg and the
// modality suffix it carries.
func CAPSIdentity(cfg Config) (m.Preprocessing, string, error) {
	switch c := cfg.(type) {
	case T1Config:
		return c.Preprocessing(), string(m.LinearT1w), nil
	case T2Config:
		return c.Preprocessing(), string(m.LinearT2w), nil
	case FlairConfig:
		return c.Preprocessing(), string(m.LinearFlair), nil
	case PETConfig:
		return c.Preprocessing(), string(m.ModalityPET), nil
	case DTIConfig:
		return c.Preprocessing(), string(m.ModalityDWI), nil
	case CustomConfig:
		return c.Preprocessing(), string(m.ModalityCustom), nil
	default:
		return "", "", unsupported(cfg)
	}
}

// CAPSFileType builds the FileType locating the processed file of cfg in a
// CAPS directory.
func CAPSFileType(cfg Config) (m.FileType, error) {
	switch c := cfg.(type) {
	case T1Config, T2Config, FlairConfig:
		return linearFileType(c)
	case PETConfig:
		return petCAPSFileType(c)
	case DTIConfig:
		return m.NewFileType(
			fmt.Sprintf("dwi/dti_based_processing/*/*_space-%s_%s.nii.gz", c.Space, c.Measure),
			fmt.Sprintf("DTI-based %s in space %s.", c.Measure, c.Space),
			string(c.Preprocessing()),
		)
	case CustomConfig:
		return BIDSFileType(c, "")
	default:
		return m.FileType{}, unsupported(cfg)
	}
}

// linearFileType is shared by the linear anatomical pipelines.
func linearFileType(cfg Config) (m.FileType, error) {
	pipeline, modality, err := CAPSIdentity(cfg)
	if err != nil {
		return m.FileType{}, err
	}

	uncropped := cfg.settings().UseUncroppedImage

	crop := cropQualifier
	description := fmt.Sprintf("%s Image registered in %s space using %s pipeline", modality, templateSpace, pipeline)

	if uncropped {
		crop = ""
	} else {
		description += " " + cropDescription
	}

	return m.NewFileType(
		fmt.Sprintf("*space-%s%s_%s_%s.nii.gz", templateSpace, crop, resolution, modality),
		description,
		string(pipeline),
	)
}

func petCAPSFileType(c PETConfig) (m.FileType, error) {
	tracer := string(c.Tracer)
	if tracer == "" {
		tracer = "*"
	}

	crop := cropQualifier
	if c.UseUncroppedImage {
		crop = ""
	}

	description := fmt.Sprintf(
		"%s Image registered in %s space using %s pipeline with %s tracer and SUVR normalised on %s region",
		m.ModalityPET, templateSpace, c.Preprocessing(), c.Tracer, c.SUVRReferenceRegion,
	)
	if !c.UseUncroppedImage {
		description += " " + cropDescription
	}

	return m.NewFileType(
		fmt.Sprintf("%s/*_trc-%s_space-%s%s_%s_suvr-%s_pet.nii.gz",
			c.Preprocessing().FolderName(false), tracer, templateSpace, crop, resolution, c.SUVRReferenceRegion),
		description,
		string(c.Preprocessing()),
	)
}

// ResolvedFileType returns the BIDS FileType when cfg reads from BIDS and the
// CAPS FileType otherwise.
func ResolvedFileType(cfg Config) (m.FileType, error) {
	if cfg.settings().FromBIDS {
		return BIDSFileType(cfg, "")
	}

	if !cfg.Preprocessing().Valid() {
		return m.FileType{}, fmt.Errorf("%w: extraction of preprocessing %s is not implemented from CAPS directory", m.ErrNotImplemented, cfg.Preprocessing())
	}

	return CAPSFileType(cfg)
}

func unsupported(cfg Config) error {
	return fmt.Errorf("%w: no file type for configuration %T", m.ErrNotImplemented, cfg)
}
