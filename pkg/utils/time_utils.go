package utils

import "time"

// Thailand time location (ICT, +07:00)
var thLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Asia/Bangkok"); err == nil {
		return loc
	}
	return time.FixedZone("ICT", 7*3600)
}()

func NowUnixSeconds() int64 { return time.Now().Unix() }

// NowRFC3339TH renders the current instant in Bangkok time,
// the format every journey document stores dates in.
func NowRFC3339TH() string {
	return time.Now().In(thLoc).Format(time.RFC3339)
}

// FromUnixSecondsTH converts an epoch value in seconds to Bangkok time.
// Returns zero time if t<=0 to let callers decide how to render.
func FromUnixSecondsTH(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0).In(thLoc)
}

func FormatRFC3339TH(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(thLoc).Format(time.RFC3339)
}
