package note

import "errors"

var (
	// ErrNoteNotFound means no note exists for the requested day.
	ErrNoteNotFound = errors.New("daily note not found")

	// ErrInvalidNote means the generator returned JSON that does not satisfy
	// the structured-note schema. Nothing is persisted in that case.
	ErrInvalidNote = errors.New("generated note failed validation")

	// ErrInsightNotFound means the insight is missing, already dismissed, or
	// owned by another founder.
	ErrInsightNotFound = errors.New("insight not found")
)
