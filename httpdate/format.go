package httpdate

import (
	"net/http"
	"time"
)

// Format renders t in the preferred IMF-fixdate form (e.g. "Sun, 06 Nov 1994
// 08:49:37 GMT"), which Parse accepts as its primary grammar
func Format(t time.Time) string {
	return t.UTC().Format(http.TimeFormat)
}
