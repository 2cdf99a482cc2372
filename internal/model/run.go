package model

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Load run statuses
const (
	RunRunning   = "running"
	RunCompleted = "completed"
	RunFailed    = "failed"
)

// LoadRun records one load of a document family into the database
type LoadRun struct {
	ID         uuid.UUID
	Family     string
	StartedAt  time.Time
	FinishedAt sql.NullTime
	Total      int
	Processed  int
	Failed     int
	Rows       int
	Status     string
}

// Duration is how long the run took, or zero while it is still running
func (r LoadRun) Duration() time.Duration {
	if !r.FinishedAt.Valid {
		return 0
	}
	return r.FinishedAt.Time.Sub(r.StartedAt)
}
