// Package model defines the value types shared by the clinicaio layers.
package model

import (
	"fmt"
	"regexp"
	"strings"
)

// Preprocessing identifies a processing pipeline whose outputs can be located
// in BIDS or CAPS directories.
type Preprocessing string

const (
	// T1Linear is the linear registration of T1-weighted MRI.
	T1Linear Preprocessing = "t1-linear"
	// T2Linear is the linear registration of T2-weighted MRI.
	T2Linear Preprocessing = "t2-linear"
	// FlairLinear is the linear registration of FLAIR MRI.
	FlairLinear Preprocessing = "flair-linear"
	// PETLinear is the linear registration and SUVR normalisation of PET images.
	PETLinear Preprocessing = "pet-linear"
	// Custom selects files by a user-defined suffix.
	Custom Preprocessing = "custom"
	// DWIDTI is the extraction of DTI-based measures from diffusion MRI.
	DWIDTI Preprocessing = "dwi-dti"
)

// AllPreprocessings lists every registered preprocessing tag.
func AllPreprocessings() []Preprocessing {
	return []Preprocessing{T1Linear, T2Linear, FlairLinear, PETLinear, Custom, DWIDTI}
}

// ParsePreprocessing converts an identifier into a Preprocessing tag.
func ParsePreprocessing(value string) (Preprocessing, error) {
	p := Preprocessing(value)
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q is not a valid preprocessing (use one of %s)", ErrUnknownPreprocessing, value, joinPreprocessings())
	}

	return p, nil
}

// Valid reports whether p is one of the registered tags.
func (p Preprocessing) Valid() bool {
	for _, known := range AllPreprocessings() {
		if p == known {
			return true
		}
	}

	return false
}

// FolderName returns the on-disk folder name of the pipeline. BIDS-side
// names keep the hyphen, CAPS folders use underscores.
func (p Preprocessing) FolderName(fromBIDS bool) string {
	if fromBIDS {
		return string(p)
	}

	return strings.ReplaceAll(string(p), "-", "_")
}

func (p Preprocessing) String() string {
	return string(p)
}

func joinPreprocessings() string {
	names := make([]string, 0, len(AllPreprocessings()))
	for _, p := range AllPreprocessings() {
		names = append(names, string(p))
	}

	return strings.Join(names, ", ")
}

// Tracer is the BIDS label of a PET radiotracer. The set is open: any
// alphanumeric label is accepted and embedded as is.
type Tracer string

// Known tracers.
const (
	TracerFFDG  Tracer = "18FFDG"
	TracerFAV45 Tracer = "18FAV45"
	TracerCPIB  Tracer = "11CPIB"
	TracerFFBB  Tracer = "18FFBB"
	TracerFFMM  Tracer = "18FFMM"
)

var bidsLabel = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// Valid reports whether t can be used as a BIDS label. The empty tracer is
// valid and means "any tracer".
func (t Tracer) Valid() bool {
	return t == "" || bidsLabel.MatchString(string(t))
}

// SUVRReferenceRegion is the region used to normalise PET intensities.
type SUVRReferenceRegion string

// Known reference regions.
const (
	RegionPons            SUVRReferenceRegion = "pons"
	RegionCerebellumPons  SUVRReferenceRegion = "cerebellumPons"
	RegionPons2           SUVRReferenceRegion = "pons2"
	RegionCerebellumPons2 SUVRReferenceRegion = "cerebellumPons2"
)

// Valid reports whether r is a known reference region.
func (r SUVRReferenceRegion) Valid() bool {
	switch r {
	case RegionPons, RegionCerebellumPons, RegionPons2, RegionCerebellumPons2:
		return true
	}

	return false
}

// DTIMeasure is a scalar map derived from a diffusion tensor.
type DTIMeasure string

// Known DTI measures.
const (
	MeasureFractionalAnisotropy DTIMeasure = "FA"
	MeasureMeanDiffusivity      DTIMeasure = "MD"
	MeasureAxialDiffusivity     DTIMeasure = "AD"
	MeasureRadialDiffusivity    DTIMeasure = "RD"
)

// Valid reports whether m is a known measure.
func (m DTIMeasure) Valid() bool {
	switch m {
	case MeasureFractionalAnisotropy, MeasureMeanDiffusivity, MeasureAxialDiffusivity, MeasureRadialDiffusivity:
		return true
	}

	return false
}

// DTISpace is the space DTI measures are expressed in.
type DTISpace string

// Known DTI spaces. SpaceAll is a glob matching every space.
const (
	SpaceNative     DTISpace = "native"
	SpaceNormalized DTISpace = "normalized"
	SpaceAll        DTISpace = "*"
)

// Valid reports whether s is a known space.
func (s DTISpace) Valid() bool {
	switch s {
	case SpaceNative, SpaceNormalized, SpaceAll:
		return true
	}

	return false
}

// ImageModality is the modality suffix of non-linear CAPS outputs.
type ImageModality string

// Image modalities.
const (
	ModalityT1     ImageModality = "t1"
	ModalityT2     ImageModality = "t2"
	ModalityFlair  ImageModality = "flair"
	ModalityPET    ImageModality = "pet"
	ModalityDWI    ImageModality = "dwi"
	ModalityCustom ImageModality = "custom"
)

// LinearModality is the BIDS suffix of linearly registered anatomical images.
type LinearModality string

// Linear modalities.
const (
	LinearT1w   LinearModality = "T1w"
	LinearT2w   LinearModality = "T2w"
	LinearFlair LinearModality = "flair"
)
