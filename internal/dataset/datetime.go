package dataset

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/rng"
)

// ISOLayout is the UTC millisecond timestamp format used by every row.
const ISOLayout = "2006-01-02T15:04:05.000Z"

const (
	dayMs = 24 * 60 * 60 * 1000
	day   = 24 * time.Hour
)

// normalizeNow drops sub-millisecond precision so that a timestamp and its
// ISO form compare equal.
func normalizeNow(now time.Time) time.Time {
	return now.UTC().Truncate(time.Millisecond)
}

func ToISO(t time.Time) string {
	return t.UTC().Format(ISOLayout)
}

// ParseISO reads a timestamp written by ToISO.
func ParseISO(s string) (time.Time, error) {
	return time.Parse(ISOLayout, s)
}

func randomPast(r *rng.Rng, now time.Time, daysBack int) time.Time {
	delta := rng.RandInt(r, 0, daysBack*dayMs)
	return now.Add(-time.Duration(delta) * time.Millisecond)
}

func randomFuture(r *rng.Rng, now time.Time, minDays, maxDays int) time.Time {
	days := rng.RandInt(r, minDays, maxDays)
	return now.Add(time.Duration(days) * day)
}

// RiskLevel grades how close expireAt is: 5 expired, 4 within a week,
// 3 within a month, 2 within a quarter, 1 otherwise.
func RiskLevel(expireAt, now time.Time) int {
	days := math.Floor(float64(expireAt.Sub(now)) / float64(day))
	switch {
	case days < 0:
		return 5
	case days <= 7:
		return 4
	case days <= 30:
		return 3
	case days <= 90:
		return 2
	}
	return 1
}

// pad left-pads n with zeros to width digits.
func pad(n, width int) string {
	s := strconv.Itoa(n)
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}
