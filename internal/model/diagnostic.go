package model

import "fmt"

// Diagnostic explains why no file was selected for a subject/session pair.
type Diagnostic struct {
	Subject string
	Session string
	// Matches holds every candidate found; empty when nothing matched.
	Matches []Path
}

func (d Diagnostic) String() string {
	if len(d.Matches) == 0 {
		return fmt.Sprintf("(%s | %s): no file found", d.Subject, d.Session)
	}

	return fmt.Sprintf("(%s | %s): more than 1 file found: %v", d.Subject, d.Session, d.Matches)
}

// Resolution is the outcome of resolving a FileType across sessions.
type Resolution struct {
	Files       []Path
	Diagnostics []Diagnostic
}
