// Package controller renders the results of the clinicaio commands.
package controller

import (
	"context"
	"fmt"
	"strings"

	m "clinicaio.dev/pkg/clinicaio/internal/model"
)

// Format selects how results are printed.
type Format string

// Available output formats.
const (
	FormatTable Format = "table"
	FormatYAML  Format = "yaml"
	FormatPlain Format = "plain"
)

// ParseFormat validates a format name, case insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTable, FormatYAML, FormatPlain:
		return f, nil
	case "":
		return FormatTable, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want %s, %s or %s)", s, FormatTable, FormatYAML, FormatPlain)
	}
}

// PipelineRow describes one registered preprocessing with its default
// configuration.
type PipelineRow struct {
	Preprocessing  m.Preprocessing `yaml:"preprocessing"`
	Modality       string          `yaml:"modality"`
	Folder         string          `yaml:"folder"`
	BIDSPattern    string          `yaml:"bids_pattern,omitempty"`
	CAPSPattern    string          `yaml:"caps_pattern"`
	NeededPipeline string          `yaml:"needed_pipeline,omitempty"`
}

// UI defines the output surface of the commands.
type UI interface {
	DisplayPipelines(ctx context.Context, rows []PipelineRow) error
	DisplayFileType(ctx context.Context, fileType m.FileType) error
	DisplayPath(ctx context.Context, path m.Path) error
	// DisplayResolution prints the selected files, then the diagnostics of the
	// sessions left without a unique match.
	DisplayResolution(ctx context.Context, resolution m.Resolution) error
}
