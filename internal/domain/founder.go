package domain

import "time"

// Founder is the tenant of the system. Every other entity hangs off a founder.
type Founder struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Company      string
	CreatedAt    time.Time
}
