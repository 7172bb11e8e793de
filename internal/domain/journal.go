package domain

import "time"

type JournalEntryType string

const (
	JournalWin        JournalEntryType = "WIN"
	JournalProblem    JournalEntryType = "PROBLEM"
	JournalReflection JournalEntryType = "REFLECTION"
)

type JournalEntry struct {
	ID        string
	FounderID string
	Type      JournalEntryType
	Content   string
	Date      time.Time
	CreatedAt time.Time
}
