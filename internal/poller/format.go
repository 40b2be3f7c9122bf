package poller

import (
	"math"
	"strconv"
	"time"
)

// FormatTime renders ts as hour and minute in local time.
// Values below 1e12 are seconds since the epoch, larger values milliseconds.
func FormatTime(ts float64) string {
	return toTime(ts).Format("15:04")
}

// FormatDate renders ts as a calendar date in local time.
func FormatDate(ts float64) string {
	return toTime(ts).Format("2006-01-02")
}

func toTime(ts float64) time.Time {
	if math.Abs(ts) < millisecondThreshold {
		sec, frac := math.Modf(ts)
		return time.Unix(int64(sec), int64(frac*1e9)).Local()
	}
	return time.UnixMilli(int64(ts)).Local()
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatFixed(v float64, precision int) string {
	if precision < 0 {
		return formatNumber(v)
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}

func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}
