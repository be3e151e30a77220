package preprocessing

import (
	"fmt"

	m "clinicaio.dev/pkg/clinicaio/internal/model"
)

// Factory builds a configuration holding the defaults of its variant.
type Factory func() Config

// Lookup returns the factory of the variant registered for p.
//
//exhaustive:enforce
func Lookup(p m.Preprocessing) (Factory, error) {
	switch p {
	case m.T1Linear:
		return func() Config { return T1Config{} }, nil
	case m.T2Linear:
		return func() Config { return T2Config{} }, nil
	case m.FlairLinear:
		return func() Config { return FlairConfig{} }, nil
	case m.PETLinear:
		return func() Config {
			return PETConfig{Tracer: m.TracerFFDG, SUVRReferenceRegion: m.RegionCerebellumPons2}
		}, nil
	case m.Custom:
		return func() Config { return CustomConfig{} }, nil
	case m.DWIDTI:
		return func() Config {
			return DTIConfig{Measure: m.MeasureFractionalAnisotropy, Space: m.SpaceAll}
		}, nil
	default:
		return nil, fmt.Errorf("%w: preprocessing %q has no registered configuration", m.ErrUnknownPreprocessing, p)
	}
}

// LookupString parses id and returns its factory.
func LookupString(id string) (Factory, error) {
	p, err := m.ParsePreprocessing(id)
	if err != nil {
		return nil, err
	}

	return Lookup(p)
}

// New returns the default configuration for id.
func New(id string) (Config, error) {
	factory, err := LookupString(id)
	if err != nil {
		return nil, err
	}

	return factory(), nil
}
