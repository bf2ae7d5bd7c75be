package services

import (
	"time"

	"github.com/Sandee004/Voterz/internal/models"
)

const (
	StatusUpcoming = "Upcoming"
	StatusOngoing  = "Ongoing"
	StatusEnded    = "Ended"
)

// ElectionStatus derives the lifecycle state of an election at the
// given instant. An unbuilt election is Upcoming no matter what its
// dates say; a built one is Ongoing between start and end inclusive.
// The stored status column is never consulted — callers recompute on
// every read.
func ElectionStatus(e *models.Election, now time.Time) string {
	if !e.IsBuilt {
		return StatusUpcoming
	}

	now = now.UTC()
	start := e.StartDate.UTC()
	end := e.EndDate.UTC()

	switch {
	case now.Before(start):
		return StatusUpcoming
	case now.After(end):
		return StatusEnded
	default:
		return StatusOngoing
	}
}
