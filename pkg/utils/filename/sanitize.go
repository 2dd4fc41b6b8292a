// Package filename provides utilities for sanitizing strings into safe filenames.
package filename

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// invalidCharsRe matches characters not safe for filenames across all major OSes.
var invalidCharsRe = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)

// multiDash collapses runs of dashes/underscores.
var multiDash = regexp.MustCompile(`[-_]{2,}`)

// Sanitize converts an arbitrary string into a filename-safe slug. Invalid
// characters and whitespace become dashes, leading and trailing dashes and
// dots are stripped, and the result is cut to at most maxLen bytes on a rune
// boundary (maxLen <= 0 means 120).
func Sanitize(name string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = 120
	}

	s := strings.TrimSpace(name)
	if s == "" {
		return ""
	}

	s = invalidCharsRe.ReplaceAllString(s, "-")
	s = strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			return '-'
		}
		return r
	}, s)
	s = multiDash.ReplaceAllString(s, "-")

	// Avoid hidden files and trailing dots on Windows.
	s = strings.Trim(s, "-.")

	if len(s) > maxLen {
		cut := maxLen
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		s = strings.TrimRight(s[:cut], "-.")
	}
	return s
}

// Export builds the download name for an exported result set, such as
// "assets-city-night-20250102.csv". An empty query is left out.
func Export(kind, query, ext string, at time.Time) string {
	parts := []string{Sanitize(kind, 20)}
	if q := Sanitize(query, 60); q != "" {
		parts = append(parts, q)
	}
	parts = append(parts, at.UTC().Format("20060102"))
	return strings.Join(parts, "-") + "." + strings.TrimPrefix(ext, ".")
}
