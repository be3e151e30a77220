package adapter

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	m "clinicaio.dev/pkg/clinicaio/internal/model"
)

const (
	participantColumn = "participant_id"
	sessionColumn     = "session_id"
)

// SessionAdapter enumerates the subject/session pairs of a dataset.
type SessionAdapter interface {
	// SubjectSessions returns aligned subject and session lists. When tsv is
	// set, the pairs come from its participant_id and session_id columns;
	// otherwise the dataset tree under root is scanned.
	SubjectSessions(ctx context.Context, root m.Path, tsv m.Path, isBIDS bool) ([]string, []string, error)
}

// LocalSessionAdapter reads subject/session pairs from disk.
type LocalSessionAdapter struct {
	fs FSAdapter
}

// NewLocalSessionAdapter builds a LocalSessionAdapter reading through fs.
func NewLocalSessionAdapter(fs FSAdapter) *LocalSessionAdapter {
	return &LocalSessionAdapter{fs: fs}
}

// SubjectSessions implements SessionAdapter.
func (a *LocalSessionAdapter) SubjectSessions(ctx context.Context, root m.Path, tsv m.Path, isBIDS bool) ([]string, []string, error) {
	if tsv != "" {
		return a.readTSV(ctx, tsv)
	}

	return a.scan(ctx, root, isBIDS)
}

func (a *LocalSessionAdapter) readTSV(ctx context.Context, tsv m.Path) ([]string, []string, error) {
	content, err := a.fs.ReadFile(ctx, tsv)
	if err != nil {
		slog.Error("Failed to read subject/session file", "path", tsv, "error", err)
		return nil, nil, fmt.Errorf("%w: %s: %w", m.ErrTSV, tsv, err)
	}

	reader := csv.NewReader(bytes.NewReader(content))
	reader.Comma = '\t'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, fmt.Errorf("%w: %s is empty", m.ErrTSV, tsv)
		}

		return nil, nil, fmt.Errorf("%w: %s: %w", m.ErrTSV, tsv, err)
	}

	subjectIdx, sessionIdx := columnIndex(header, participantColumn), columnIndex(header, sessionColumn)
	if subjectIdx < 0 || sessionIdx < 0 {
		return nil, nil, fmt.Errorf("%w: %s must contain %q and %q columns, found %v",
			m.ErrTSV, tsv, participantColumn, sessionColumn, header)
	}

	var subjects, sessions []string

	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s: %w", m.ErrTSV, tsv, err)
		}

		if len(record) <= subjectIdx || len(record) <= sessionIdx {
			return nil, nil, fmt.Errorf("%w: %s line %d has %d fields", m.ErrTSV, tsv, line, len(record))
		}

		subject, session := strings.TrimSpace(record[subjectIdx]), strings.TrimSpace(record[sessionIdx])
		if subject == "" && session == "" {
			continue
		}

		if subject == "" || session == "" {
			return nil, nil, fmt.Errorf("%w: %s line %d has an empty %s or %s", m.ErrTSV, tsv, line, participantColumn, sessionColumn)
		}

		subjects = append(subjects, subject)
		sessions = append(sessions, session)
	}

	slog.Debug("Loaded subject/session file", "path", tsv, "pairs", len(subjects))

	return subjects, sessions, nil
}

func columnIndex(header []string, name string) int {
	for i, column := range header {
		if strings.TrimSpace(strings.TrimPrefix(column, "\ufeff")) == name {
			return i
		}
	}

	return -1
}

func (a *LocalSessionAdapter) scan(ctx context.Context, root m.Path, isBIDS bool) ([]string, []string, error) {
	subjectsDir := root
	if !isBIDS {
		subjectsDir = root.Join(capsSubjectsName)
	}

	subjectNames, err := a.prefixedDirs(ctx, subjectsDir, subjectPrefix)
	if err != nil {
		return nil, nil, err
	}

	var subjects, sessions []string

	for _, subject := range subjectNames {
		sessionNames, err := a.prefixedDirs(ctx, subjectsDir.Join(subject), sessionPrefix)
		if err != nil {
			return nil, nil, err
		}

		for _, session := range sessionNames {
			subjects = append(subjects, subject)
			sessions = append(sessions, session)
		}
	}

	slog.Debug("Scanned subject/session pairs", "root", root, "bids", isBIDS, "pairs", len(subjects))

	return subjects, sessions, nil
}

func (a *LocalSessionAdapter) prefixedDirs(ctx context.Context, dir m.Path, prefix string) ([]string, error) {
	entries, err := a.fs.ReadDir(ctx, dir)
	if err != nil {
		slog.Error("Failed to list directory", "path", dir, "error", err)
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))

	for _, entry := range entries {
		if entry.IsDir() && strings.HasPrefix(entry.Name(), prefix) {
			names = append(names, entry.Name())
		}
	}

	sort.Strings(names)

	return names, nil
}
