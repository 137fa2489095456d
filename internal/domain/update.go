package domain

import (
	"fmt"
	"time"
)

// Update is a completed, summarized status update ready for persistence.
type Update struct {
	ID        string
	UserEmail string
	Week      string // ISO week bucket, "YYYY-WW"
	Phase     Phase
	Summary   string
	CreatedAt time.Time
}

// WeekBucket returns the ISO week bucket for t, formatted "YYYY-WW".
// Updates from the same user in the same week land in the same bucket.
func WeekBucket(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-%02d", year, week)
}
