// Package keywords draws random keyword cards from a pasted list.
package keywords

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
)

var ErrNothingToDraw = errors.New("keywords: no keywords given")

// Parse splits text into one keyword per line, trimming each line and
// dropping blank ones.
func Parse(text string) []string {
	return Clean(strings.Split(text, "\n"))
}

// Clean trims lines and drops blank ones.
func Clean(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}

// Draw picks n distinct entries of the cleaned pool in random order.
// A nil rng uses the global source.
func Draw(lines []string, n int, rng *rand.Rand) ([]string, error) {
	pool := Clean(lines)
	if len(pool) == 0 {
		return nil, ErrNothingToDraw
	}
	if n < 1 {
		return nil, fmt.Errorf("keywords: must draw at least one, got %d", n)
	}
	if n > len(pool) {
		return nil, fmt.Errorf("keywords: cannot draw %d from %d keywords", n, len(pool))
	}

	perm := rand.Perm
	if rng != nil {
		perm = rng.Perm
	}
	idx := perm(len(pool))[:n]

	out := make([]string, n)
	for i, j := range idx {
		out[i] = pool[j]
	}
	return out, nil
}
