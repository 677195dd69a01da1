package scoring

import "math"

// Grade buckets a percentage into a letter grade. Lower bounds are inclusive.
func Grade(pct int) string {
	switch {
	case pct >= 90:
		return "A+"
	case pct >= 80:
		return "A"
	case pct >= 70:
		return "B"
	case pct >= 60:
		return "C"
	case pct >= 50:
		return "D"
	default:
		return "F"
	}
}

// round rounds half away from zero to the nearest int.
func round(v float64) int {
	return int(math.Round(v))
}
