package models

import (
	"time"

	"github.com/rs/xid"
)

// NewID returns a fresh opaque record id. Ids are sortable by creation
// time and collision-free, unlike the timestamp tokens they replace.
func NewID() string {
	return xid.New().String()
}

// Today returns the current date in the YYYY-MM-DD form used by every
// date field in the stored collections.
func Today() string {
	return time.Now().Format("2006-01-02")
}
