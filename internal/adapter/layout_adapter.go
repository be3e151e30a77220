package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	m "clinicaio.dev/pkg/clinicaio/internal/model"
)

const (
	subjectPrefix    = "sub-"
	sessionPrefix    = "ses-"
	capsSubjectsName = "subjects"
)

// LayoutAdapter checks that a root directory follows a dataset layout.
type LayoutAdapter interface {
	// CheckCAPSFolder fails with model.ErrCAPSStructure when path is not a CAPS root.
	CheckCAPSFolder(ctx context.Context, path m.Path) error
	// CheckBIDSFolder fails with model.ErrBIDSStructure when path is not a BIDS root.
	CheckBIDSFolder(ctx context.Context, path m.Path) error
}

// LocalLayoutAdapter runs the layout checks against the filesystem.
type LocalLayoutAdapter struct {
	fs FSAdapter
}

// NewLocalLayoutAdapter builds a LocalLayoutAdapter reading through fs.
func NewLocalLayoutAdapter(fs FSAdapter) *LocalLayoutAdapter {
	return &LocalLayoutAdapter{fs: fs}
}

// CheckCAPSFolder verifies that path is an existing directory without
// top-level subject folders, which would denote a BIDS directory.
func (a *LocalLayoutAdapter) CheckCAPSFolder(ctx context.Context, path m.Path) error {
	entries, err := a.listRoot(ctx, path, m.ErrCAPSStructure)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if name := entry.Name(); strings.HasPrefix(name, subjectPrefix) {
			slog.Error("CAPS directory contains a subject folder", "path", path, "entry", name)
			return fmt.Errorf("%w: %s contains at least one folder whose name starts with %q (%s); "+
				"CAPS subjects live under %s/, this looks like a BIDS directory",
				m.ErrCAPSStructure, path, subjectPrefix, name, capsSubjectsName)
		}
	}

	return nil
}

// CheckBIDSFolder verifies that path is an existing directory holding at
// least one subject folder and no CAPS subjects folder.
func (a *LocalLayoutAdapter) CheckBIDSFolder(ctx context.Context, path m.Path) error {
	entries, err := a.listRoot(ctx, path, m.ErrBIDSStructure)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		return fmt.Errorf("%w: %s is empty", m.ErrBIDSStructure, path)
	}

	hasSubject := false

	for _, entry := range entries {
		name := entry.Name()
		if name == capsSubjectsName {
			slog.Error("BIDS directory contains a CAPS subjects folder", "path", path)
			return fmt.Errorf("%w: %s contains a %q folder, this looks like a CAPS directory", m.ErrBIDSStructure, path, capsSubjectsName)
		}

		if entry.IsDir() && strings.HasPrefix(name, subjectPrefix) {
			hasSubject = true
		}
	}

	if !hasSubject {
		return fmt.Errorf("%w: %s contains no folder whose name starts with %q", m.ErrBIDSStructure, path, subjectPrefix)
	}

	return nil
}

func (a *LocalLayoutAdapter) listRoot(ctx context.Context, path m.Path, kind error) ([]os.DirEntry, error) {
	info, err := a.fs.FileInfo(ctx, path)
	if err != nil {
		slog.Error("Failed to access dataset root", "path", path, "error", err)
		return nil, fmt.Errorf("%w: %s: %w", kind, path, err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", kind, path)
	}

	entries, err := a.fs.ReadDir(ctx, path)
	if err != nil {
		slog.Error("Failed to list dataset root", "path", path, "error", err)
		return nil, fmt.Errorf("%w: %s: %w", kind, path, err)
	}

	return entries, nil
}
