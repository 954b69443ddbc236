// Package format renders prices and quote ages for display.
package format

import (
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
)

// Placeholder is shown for missing values
const Placeholder = "-"

// Silver formats a price with thousands separators. Zero means no data.
func Silver(v int64) string {
	if v == 0 {
		return Placeholder
	}
	return humanize.Comma(v)
}

// SilverPtr formats an optional value; nil means unavailable
func SilverPtr(v *int64) string {
	if v == nil {
		return Placeholder
	}
	return humanize.Comma(*v)
}

// Age buckets the time elapsed since t as <1m, Nm, Nh or Nd. Days are
// reported exactly, without clamping.
func Age(t, now time.Time) string {
	if t.IsZero() {
		return Placeholder
	}
	diffMin := int64(now.Sub(t) / time.Minute)
	if diffMin < 1 {
		return "<1m"
	}
	if diffMin < 60 {
		return strconv.FormatInt(diffMin, 10) + "m"
	}
	diffH := diffMin / 60
	if diffH < 24 {
		return strconv.FormatInt(diffH, 10) + "h"
	}
	return strconv.FormatInt(diffH/24, 10) + "d"
}
