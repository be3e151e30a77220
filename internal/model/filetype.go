package model

import (
	"fmt"
	"strings"
)

// rootMarker cannot start a pattern: joining such a pattern to a directory
// would discard the directory.
const rootMarker = "/"

// FileType describes how to locate one kind of file: a glob pattern relative
// to a session directory, a human description and optionally the pipeline
// that must have produced the file.
type FileType struct {
	pattern        string
	description    string
	neededPipeline string
}

// NewFileType validates pattern and builds a FileType. neededPipeline may be
// empty.
func NewFileType(pattern, description, neededPipeline string) (FileType, error) {
	if strings.HasPrefix(pattern, rootMarker) {
		return FileType{}, fmt.Errorf(
			"%w: pattern %q cannot start with char %s (it would discard the directory it is joined to). "+
				"If you want to indicate the exact name of the file, use the format "+
				"directory_name/filename.extension or filename.extension in the pattern argument",
			ErrInvalidPattern, pattern, rootMarker,
		)
	}

	return FileType{
		pattern:        pattern,
		description:    description,
		neededPipeline: neededPipeline,
	}, nil
}

// Pattern returns the glob pattern.
func (f FileType) Pattern() string {
	return f.pattern
}

// Description returns the human description.
func (f FileType) Description() string {
	return f.description
}

// NeededPipeline returns the producing pipeline, or "" when none is required.
func (f FileType) NeededPipeline() string {
	return f.neededPipeline
}

type fileTypeDocument struct {
	Pattern        string `yaml:"pattern"`
	Description    string `yaml:"description"`
	NeededPipeline string `yaml:"needed_pipeline,omitempty"`
}

// MarshalYAML implements yaml.Marshaler.
func (f FileType) MarshalYAML() (interface{}, error) {
	return fileTypeDocument{
		Pattern:        f.pattern,
		Description:    f.description,
		NeededPipeline: f.neededPipeline,
	}, nil
}
