package stats

import (
	"fmt"
	"math"
	"time"
)

// maxGapSeconds caps labels at roughly a million years so the integer
// conversion below cannot overflow.
const maxGapSeconds = 1 << 45

// TimeGapLabel formats elapsed seconds as a short label, flooring to
// whole units: "<1m", "12m", "3h", "3h 5m", "2d", "2d 4h".
func TimeGapLabel(seconds float64) string {
	if math.IsNaN(seconds) || seconds < 60 {
		return "<1m"
	}
	s := int64(math.Floor(min(seconds, maxGapSeconds)))
	switch {
	case s < 3600:
		return fmt.Sprintf("%dm", s/60)
	case s < 86400:
		h, m := s/3600, (s%3600)/60
		if m == 0 {
			return fmt.Sprintf("%dh", h)
		}
		return fmt.Sprintf("%dh %dm", h, m)
	default:
		d, h := s/86400, (s%86400)/3600
		if h == 0 {
			return fmt.Sprintf("%dd", d)
		}
		return fmt.Sprintf("%dd %dh", d, h)
	}
}

// Since labels the gap between t and now.
func Since(t, now time.Time) string {
	return TimeGapLabel(now.Sub(t).Seconds())
}
