package format

import (
	"fmt"
	"regexp"
	"strconv"
)

// isoDurationRe matches the subset of ISO-8601 durations YouTube returns for
// videos. Day and week designators are not supported.
var isoDurationRe = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// ParseISODuration decodes an ISO-8601 duration such as "PT1H2M3S" into whole
// seconds. Anything that is not a string matching the PT[nH][nM][nS] form
// decodes to 0.
func ParseISODuration(v any) int {
	s, ok := v.(string)
	if !ok {
		return 0
	}
	m := isoDurationRe.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	return group(m[1])*3600 + group(m[2])*60 + group(m[3])
}

func group(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// Duration converts seconds to "M:SS" or "H:MM:SS" display format.
func Duration(seconds float64) string {
	if seconds < 0 {
		return "0:00"
	}
	s := int(seconds)
	h := s / 3600
	m := (s % 3600) / 60
	sec := s % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, sec)
	}
	return fmt.Sprintf("%d:%02d", m, sec)
}

// DurationPtr formats a nullable duration in seconds. Returns "" for nil.
func DurationPtr(seconds *int) string {
	if seconds == nil || *seconds < 0 {
		return ""
	}
	return Duration(float64(*seconds))
}
