package controller

import (
	"bytes"
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	m "clinicaio.dev/pkg/clinicaio/internal/model"
)

const bidsUnsupported = "-"

// SimpleUI implements UI by writing to the streams of a cobra command.
type SimpleUI struct {
	cmd    *cobra.Command
	format Format
}

// NewSimpleUI creates a new SimpleUI printing in format.
func NewSimpleUI(cmd *cobra.Command, format Format) *SimpleUI {
	return &SimpleUI{cmd: cmd, format: format}
}

// DisplayPipelines prints the registered preprocessings.
func (s *SimpleUI) DisplayPipelines(ctx context.Context, rows []PipelineRow) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	switch s.format {
	case FormatYAML:
		return s.printYAML(rows)
	case FormatPlain:
		for _, row := range rows {
			s.printf("%s\n", row.Preprocessing)
		}

		return nil
	default:
		s.printf("%s", renderPipelinesTable(rows))
		return nil
	}
}

func renderPipelinesTable(rows []PipelineRow) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Preprocessing", "Modality", "Folder", "BIDS pattern", "CAPS pattern"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for _, row := range rows {
		bids := row.BIDSPattern
		if bids == "" {
			bids = bidsUnsupported
		}

		table.Append([]string{string(row.Preprocessing), row.Modality, row.Folder, bids, row.CAPSPattern})
	}

	table.SetFooter([]string{fmt.Sprintf("Total %d", len(rows)), "", "", "", ""})
	table.Render()

	return tableBuffer.String()
}

// DisplayFileType prints a pattern with its description.
func (s *SimpleUI) DisplayFileType(ctx context.Context, fileType m.FileType) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	switch s.format {
	case FormatYAML:
		return s.printYAML(fileType)
	case FormatPlain:
		s.printf("%s\n", fileType.Pattern())
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT})
	table.Append([]string{"Pattern", fileType.Pattern()})
	table.Append([]string{"Description", fileType.Description()})

	if fileType.NeededPipeline() != "" {
		table.Append([]string{"Needed pipeline", fileType.NeededPipeline()})
	}

	table.Render()
	s.printf("%s", tableBuffer.String())

	return nil
}

// DisplayPath prints a single path.
func (s *SimpleUI) DisplayPath(ctx context.Context, path m.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if s.format == FormatYAML {
		return s.printYAML(map[string]string{"path": path.String()})
	}

	s.printf("%s\n", path)

	return nil
}

type resolutionDocument struct {
	Files       []string             `yaml:"files"`
	Diagnostics []diagnosticDocument `yaml:"diagnostics,omitempty"`
}

type diagnosticDocument struct {
	Subject string   `yaml:"subject"`
	Session string   `yaml:"session"`
	Matches []string `yaml:"matches,omitempty"`
}

// DisplayResolution prints the selected files and highlights the diagnostics
// on the error stream.
func (s *SimpleUI) DisplayResolution(ctx context.Context, resolution m.Resolution) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	switch s.format {
	case FormatYAML:
		return s.printYAML(toResolutionDocument(resolution))
	case FormatPlain:
		for _, file := range resolution.Files {
			s.printf("%s\n", file)
		}
	default:
		var tableBuffer bytes.Buffer

		table := tablewriter.NewWriter(&tableBuffer)
		table.SetHeader([]string{"#", "File"})
		table.SetBorder(false)
		table.SetCenterSeparator("")
		table.SetAutoWrapText(false)
		table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT})

		for i, file := range resolution.Files {
			table.Append([]string{fmt.Sprintf("%d", i+1), file.String()})
		}

		table.SetFooter([]string{"", fmt.Sprintf("%d file(s)", len(resolution.Files))})
		table.Render()
		s.printf("%s", tableBuffer.String())
	}

	s.printDiagnostics(resolution.Diagnostics)

	return nil
}

func toResolutionDocument(resolution m.Resolution) resolutionDocument {
	doc := resolutionDocument{Files: make([]string, 0, len(resolution.Files))}
	for _, file := range resolution.Files {
		doc.Files = append(doc.Files, file.String())
	}

	for _, diagnostic := range resolution.Diagnostics {
		entry := diagnosticDocument{Subject: diagnostic.Subject, Session: diagnostic.Session}
		for _, match := range diagnostic.Matches {
			entry.Matches = append(entry.Matches, match.String())
		}

		doc.Diagnostics = append(doc.Diagnostics, entry)
	}

	return doc
}

func (s *SimpleUI) printDiagnostics(diagnostics []m.Diagnostic) {
	if len(diagnostics) == 0 {
		return
	}

	yellow := color.New(color.FgYellow)
	red := color.New(color.FgRed)
	w := s.cmd.ErrOrStderr()

	yellow.Fprintf(w, "%d session(s) without a unique file:\n", len(diagnostics))

	for _, diagnostic := range diagnostics {
		if len(diagnostic.Matches) == 0 {
			red.Fprintf(w, "  %s\n", diagnostic)
			continue
		}

		yellow.Fprintf(w, "  %s\n", diagnostic)
	}
}

func (s *SimpleUI) printYAML(value any) error {
	encoder := yaml.NewEncoder(s.cmd.OutOrStdout())
	encoder.SetIndent(2)

	if err := encoder.Encode(value); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}

	return encoder.Close()
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
