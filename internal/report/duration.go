package report

import (
	"math"
	"regexp"
	"strconv"
)

// durationPattern matches the optional PT prefix and the optional H, M and S
// components of an ISO-8601 duration. Every group is optional, so any input
// matches at least the empty prefix.
var durationPattern = regexp.MustCompile(`^(?:PT)?(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)

// ParseDuration converts a duration token such as "PT1H30M15S" into seconds.
// It never fails: an empty or unparseable token yields 0, and components that
// cannot be read or do not fit in int64 seconds contribute 0. The result is
// never negative.
func ParseDuration(token string) int64 {
	if token == "" {
		return 0
	}
	m := durationPattern.FindStringSubmatch(token)
	if m == nil {
		return 0
	}
	var total int64
	for i, unit := range []int64{3600, 60, 1} {
		v := component(m[i+1], unit)
		if v > math.MaxInt64-total {
			return 0
		}
		total += v
	}
	return total
}

// component returns digits*unit, or 0 when digits is empty, unreadable or the
// product overflows.
func component(digits string, unit int64) int64 {
	if digits == "" {
		return 0
	}
	v, err := strconv.ParseInt(digits, 10, 64)
	if err != nil || v > math.MaxInt64/unit {
		return 0
	}
	return v * unit
}
