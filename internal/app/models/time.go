package models

import "time"

// Now is the clock used for server-assigned timestamps. Tests replace it.
var Now = func() time.Time {
	return time.Now().UTC()
}
