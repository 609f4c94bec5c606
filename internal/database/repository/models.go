package repository

import "time"

// Record is one row of the kv table.
type Record struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}
