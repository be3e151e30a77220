// Package preprocessing maps preprocessing pipelines onto the file patterns
// used in BIDS and CAPS directories.
//
// Config is a closed sum type: one struct per pipeline tag. Operations are
// package functions that switch over the concrete variant.
package preprocessing

import m "clinicaio.dev/pkg/clinicaio/internal/model"

// Settings holds the fields shared by every variant.
type Settings struct {
	// FromBIDS selects the raw BIDS file instead of the CAPS output.
	FromBIDS bool `yaml:"from_bids"`
	// UseUncroppedImage drops the crop qualifier from linear CAPS patterns.
	UseUncroppedImage bool `yaml:"use_uncropped_image"`
}

// Config is implemented by the six variant structs of this package only.
type Config interface {
	// Preprocessing returns the tag identifying the variant.
	Preprocessing() m.Preprocessing
	settings() Settings
}

// T1Config selects T1-weighted images.
type T1Config struct {
	Settings `yaml:",inline"`
}

// T2Config selects T2-weighted images. Only CAPS outputs are supported.
type T2Config struct {
	Settings `yaml:",inline"`
}

// FlairConfig selects FLAIR images.
type FlairConfig struct {
	Settings `yaml:",inline"`
}

// PETConfig selects PET images for a tracer and SUVR reference region.
type PETConfig struct {
	Settings            `yaml:",inline"`
	Tracer              m.Tracer              `yaml:"tracer"`
	SUVRReferenceRegion m.SUVRReferenceRegion `yaml:"suvr_reference_region"`
}

// CustomConfig selects any file ending with Suffix.
type CustomConfig struct {
	Settings `yaml:",inline"`
	Suffix   string `yaml:"custom_suffix"`
}

// DTIConfig selects a DTI-based measure map.
type DTIConfig struct {
	Settings `yaml:",inline"`
	Measure  m.DTIMeasure `yaml:"dti_measure"`
	Space    m.DTISpace   `yaml:"dti_space"`
}

func (T1Config) Preprocessing() m.Preprocessing     { return m.T1Linear }
func (T2Config) Preprocessing() m.Preprocessing     { return m.T2Linear }
func (FlairConfig) Preprocessing() m.Preprocessing  { return m.FlairLinear }
func (PETConfig) Preprocessing() m.Preprocessing    { return m.PETLinear }
func (CustomConfig) Preprocessing() m.Preprocessing { return m.Custom }
func (DTIConfig) Preprocessing() m.Preprocessing    { return m.DWIDTI }

func (s Settings) settings() Settings { return s }

// SettingsOf returns the shared fields of cfg.
func SettingsOf(cfg Config) Settings {
	return cfg.settings()
}

// OutputSubfolder returns the folder named after the pipeline: the tag itself
// when fromBIDS is true, the underscore form otherwise.
func OutputSubfolder(cfg Config, fromBIDS bool) string {
	return cfg.Preprocessing().FolderName(fromBIDS)
}
