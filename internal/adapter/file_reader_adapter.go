package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	m "clinicaio.dev/pkg/clinicaio/internal/model"
)

// DefaultFileReaderParallel is the number of sessions resolved concurrently.
const DefaultFileReaderParallel = 4

// FileReaderAdapter resolves a FileType against the session directories of a
// dataset.
type FileReaderAdapter interface {
	// Read returns, in input order, the file selected for every
	// subject/session pair, and a diagnostic for every pair without an
	// unambiguous match.
	Read(ctx context.Context, subjects, sessions []string, root m.Path, fileType m.FileType) (m.Resolution, error)
}

// FileReaderOption configures a LocalFileReaderAdapter.
type FileReaderOption func(*LocalFileReaderAdapter)

// WithParallel bounds the number of sessions resolved at once.
func WithParallel(parallel int) FileReaderOption {
	return func(a *LocalFileReaderAdapter) {
		if parallel > 0 {
			a.parallel = parallel
		}
	}
}

// WithStrict makes Read fail with model.ErrMissingFiles when any diagnostic
// is produced.
func WithStrict(strict bool) FileReaderOption {
	return func(a *LocalFileReaderAdapter) {
		a.strict = strict
	}
}

// LocalFileReaderAdapter matches patterns against the files below each
// session directory. A pattern with k segments is compared, case
// insensitively, with the last k segments of every file path, which amounts
// to globbing <session>/**/<pattern>.
type LocalFileReaderAdapter struct {
	fs       FSAdapter
	parallel int
	strict   bool
}

// NewLocalFileReaderAdapter builds a LocalFileReaderAdapter reading through fs.
// It is strict by default.
func NewLocalFileReaderAdapter(fs FSAdapter, options ...FileReaderOption) *LocalFileReaderAdapter {
	a := &LocalFileReaderAdapter{
		fs:       fs,
		parallel: DefaultFileReaderParallel,
		strict:   true,
	}

	for _, option := range options {
		option(a)
	}

	return a
}

type sessionResult struct {
	file       m.Path
	diagnostic *m.Diagnostic
}

// Read implements FileReaderAdapter.
func (a *LocalFileReaderAdapter) Read(ctx context.Context, subjects, sessions []string, root m.Path, fileType m.FileType) (m.Resolution, error) {
	if len(subjects) != len(sessions) {
		return m.Resolution{}, fmt.Errorf("got %d subjects for %d sessions", len(subjects), len(sessions))
	}

	if _, err := path.Match(strings.ToLower(fileType.Pattern()), ""); err != nil {
		return m.Resolution{}, fmt.Errorf("%w: %q: %w", m.ErrInvalidPattern, fileType.Pattern(), err)
	}

	results := make([]sessionResult, len(subjects))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(a.parallel)

	for i := range subjects {
		index := i

		group.Go(func() error {
			result, err := a.resolveSession(groupCtx, root, subjects[index], sessions[index], fileType.Pattern())
			if err != nil {
				return fmt.Errorf("resolve %s %s: %w", subjects[index], sessions[index], err)
			}

			results[index] = result

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		slog.Error("Failed to resolve input files", "root", root, "pattern", fileType.Pattern(), "error", err)
		return m.Resolution{}, err
	}

	resolution := m.Resolution{Files: make([]m.Path, 0, len(results))}

	for _, result := range results {
		if result.diagnostic != nil {
			resolution.Diagnostics = append(resolution.Diagnostics, *result.diagnostic)
			continue
		}

		resolution.Files = append(resolution.Files, result.file)
	}

	if a.strict && len(resolution.Diagnostics) > 0 {
		return resolution, missingFilesError(fileType, resolution.Diagnostics)
	}

	return resolution, nil
}

func (a *LocalFileReaderAdapter) resolveSession(ctx context.Context, root m.Path, subject, session, pattern string) (sessionResult, error) {
	sessionDir, found, err := a.sessionDir(ctx, root, subject, session)
	if err != nil {
		return sessionResult{}, err
	}

	if !found {
		return sessionResult{diagnostic: &m.Diagnostic{Subject: subject, Session: session}}, nil
	}

	var matches []m.Path

	err = a.fs.Walk(ctx, sessionDir, func(current string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			return nil
		}

		rel, err := a.fs.RelPath(ctx, sessionDir, m.Path(current))
		if err != nil {
			return err
		}

		if matchTail(pattern, string(rel)) {
			matches = append(matches, m.Path(current))
		}

		return nil
	})
	if err != nil {
		return sessionResult{}, err
	}

	sort.Slice(matches, func(i, j int) bool { return matches[i] < matches[j] })

	switch len(matches) {
	case 0:
		return sessionResult{diagnostic: &m.Diagnostic{Subject: subject, Session: session}}, nil
	case 1:
		return sessionResult{file: matches[0]}, nil
	}

	if latest, ok := latestRun(matches); ok {
		slog.Debug("Selected latest run", "subject", subject, "session", session, "file", latest, "candidates", len(matches))
		return sessionResult{file: latest}, nil
	}

	return sessionResult{diagnostic: &m.Diagnostic{Subject: subject, Session: session, Matches: matches}}, nil
}

// sessionDir finds the session folder of a BIDS (root/sub/ses) or CAPS
// (root/subjects/sub/ses) dataset.
func (a *LocalFileReaderAdapter) sessionDir(ctx context.Context, root m.Path, subject, session string) (m.Path, bool, error) {
	candidates := []m.Path{
		a.fs.JoinPath(ctx, string(root), subject, session),
		a.fs.JoinPath(ctx, string(root), capsSubjectsName, subject, session),
	}

	for _, candidate := range candidates {
		info, err := a.fs.FileInfo(ctx, candidate)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}

			return "", false, err
		}

		if info.IsDir() {
			return candidate, true, nil
		}
	}

	return "", false, nil
}

func matchTail(pattern, rel string) bool {
	patternSegments := strings.Split(strings.ToLower(pattern), "/")
	relSegments := strings.Split(strings.ToLower(filepath.ToSlash(rel)), "/")

	if len(relSegments) < len(patternSegments) {
		return false
	}

	tail := strings.Join(relSegments[len(relSegments)-len(patternSegments):], "/")

	matched, err := path.Match(strings.Join(patternSegments, "/"), tail)

	return err == nil && matched
}

var runEntity = regexp.MustCompile(`_run-(\d+)`)

// latestRun picks the candidate with the highest run number. It fails when a
// candidate has no run entity or when the highest run is not unique.
func latestRun(candidates []m.Path) (m.Path, bool) {
	best, bestRun, tie := m.Path(""), -1, false

	for _, candidate := range candidates {
		match := runEntity.FindStringSubmatch(filepath.Base(string(candidate)))
		if match == nil {
			return "", false
		}

		run, err := strconv.Atoi(match[1])
		if err != nil {
			return "", false
		}

		switch {
		case run > bestRun:
			best, bestRun, tie = candidate, run, false
		case run == bestRun:
			tie = true
		}
	}

	return best, !tie
}

func missingFilesError(fileType m.FileType, diagnostics []m.Diagnostic) error {
	lines := make([]string, 0, len(diagnostics))
	for _, diagnostic := range diagnostics {
		lines = append(lines, "\t"+diagnostic.String())
	}

	return fmt.Errorf("%w: %d session(s) without a unique %q file (%s):\n%s",
		m.ErrMissingFiles, len(diagnostics), fileType.Pattern(), fileType.Description(), strings.Join(lines, "\n"))
}
