package news

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// for tests
var nowFunc = time.Now

// IsExpired reports whether an item's active window has elapsed: true iff
// the instant is strictly before the current moment. An absent instant
// never expires. The live clock is consulted on every call.
func IsExpired(until null.Time) bool {
	if !until.Valid {
		return false
	}
	return until.Time.Before(nowFunc())
}
