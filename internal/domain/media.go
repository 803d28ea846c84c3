package domain

import "time"

// MaxOrphanAttempts is the number of failed removals after which an orphan
// is left for manual inspection.
const MaxOrphanAttempts = 10

// MediaOrphan is a storage key whose removal failed after its owning row was
// updated or deleted. The sweeper retries it until it succeeds.
type MediaOrphan struct {
	ID        int64     `json:"id"`
	MediaKey  string    `json:"mediaKey"`
	Attempts  int       `json:"attempts"`
	LastError string    `json:"lastError"`
	CreatedAt time.Time `json:"createdAt"`
}
