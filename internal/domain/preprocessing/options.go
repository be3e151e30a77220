package preprocessing

import (
	"fmt"
	"strings"

	m "clinicaio.dev/pkg/clinicaio/internal/model"
)

// Options carries user-provided values for a configuration. Empty strings keep
// the variant defaults; fields that do not apply to the selected variant are
// ignored.
type Options struct {
	Preprocessing       string `yaml:"name"`
	FromBIDS            bool   `yaml:"from_bids"`
	UseUncroppedImage   bool   `yaml:"use_uncropped_image"`
	Tracer              string `yaml:"tracer"`
	SUVRReferenceRegion string `yaml:"suvr_reference_region"`
	DTIMeasure          string `yaml:"dti_measure"`
	DTISpace            string `yaml:"dti_space"`
	CustomSuffix        string `yaml:"custom_suffix"`
}

// AnyTracer selects PET files whatever their tracer.
const AnyTracer = "any"

// Build constructs and validates the configuration described by opts.
func Build(opts Options) (Config, error) {
	cfg, err := New(opts.Preprocessing)
	if err != nil {
		return nil, err
	}

	settings := Settings{FromBIDS: opts.FromBIDS, UseUncroppedImage: opts.UseUncroppedImage}

	switch c := cfg.(type) {
	case T1Config:
		c.Settings = settings
		cfg = c
	case T2Config:
		c.Settings = settings
		cfg = c
	case FlairConfig:
		c.Settings = settings
		cfg = c
	case PETConfig:
		c.Settings = settings
		switch {
		case strings.EqualFold(opts.Tracer, AnyTracer):
			c.Tracer = ""
		case opts.Tracer != "":
			c.Tracer = m.Tracer(opts.Tracer)
		}

		if opts.SUVRReferenceRegion != "" {
			c.SUVRReferenceRegion = m.SUVRReferenceRegion(opts.SUVRReferenceRegion)
		}

		cfg = c
	case CustomConfig:
		c.Settings = settings
		c.Suffix = opts.CustomSuffix
		cfg = c
	case DTIConfig:
		c.Settings = settings
		if opts.DTIMeasure != "" {
			c.Measure = m.DTIMeasure(opts.DTIMeasure)
		}

		if opts.DTISpace != "" {
			c.Space = m.DTISpace(opts.DTISpace)
		}

		cfg = c
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the variant-specific fields of cfg.
func Validate(cfg Config) error {
	switch c := cfg.(type) {
	case PETConfig:
		if !c.Tracer.Valid() {
			return fmt.Errorf("%w: tracer %q is not a BIDS label", m.ErrInvalidConfig, c.Tracer)
		}

		if !c.SUVRReferenceRegion.Valid() {
			return fmt.Errorf("%w: unknown SUVR reference region %q", m.ErrInvalidConfig, c.SUVRReferenceRegion)
		}
	case DTIConfig:
		if !c.Measure.Valid() {
			return fmt.Errorf("%w: unknown DTI measure %q", m.ErrInvalidConfig, c.Measure)
		}

		if !c.Space.Valid() {
			return fmt.Errorf("%w: unknown DTI space %q", m.ErrInvalidConfig, c.Space)
		}
	case T1Config, T2Config, FlairConfig, CustomConfig:
	default:
		return unsupported(cfg)
	}

	return nil
}
