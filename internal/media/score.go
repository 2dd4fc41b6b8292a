package media

import (
	"cmp"
	"math"
	"slices"
)

const (
	aspectWeight   = 0.6
	providerWeight = 0.4
)

// AspectScore rates how close width/height is to 9:16 (vertical) or 16:9.
// Missing or zero dimensions score 0.
func AspectScore(width, height *int, preferVertical bool) float64 {
	if width == nil || height == nil || *width == 0 || *height == 0 {
		return 0
	}
	ratio := float64(*width) / float64(*height)
	target := 16.0 / 9.0
	if preferVertical {
		target = 9.0 / 16.0
	}
	s := 1 - math.Min(1, math.Abs(ratio-target)/target)
	return math.Max(0, math.Min(1, s))
}

// ProviderWeight favours sources whose files can be downloaded and reused.
func ProviderWeight(provider string) float64 {
	switch provider {
	case ProviderWikimedia, ProviderOpenverse, ProviderPexels, ProviderPixabay:
		return 1.0
	default:
		return 0.7
	}
}

// ComputeScore blends aspect fit and provider weight into [0,1].
func ComputeScore(it Item, preferVertical bool) float64 {
	return aspectWeight*AspectScore(it.Width, it.Height, preferVertical) + providerWeight*ProviderWeight(it.Provider)
}

// Dedup drops items whose Key was already seen, keeping the first.
// Items with no identity at all share one key per provider.
func Dedup(items []Item) []Item {
	seen := make(map[Key]struct{}, len(items))
	out := make([]Item, 0, len(items))
	for _, it := range items {
		k := it.Key()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, it)
	}
	return out
}

// Rank scores, annotates and deduplicates items, then sorts them by score,
// highest first. Equal scores keep their input order.
func Rank(items []Item, preferVertical bool) []Item {
	scored := make([]Item, len(items))
	for i, it := range items {
		it.Score = ComputeScore(it, preferVertical)
		scored[i] = Annotate(it)
	}
	out := Dedup(scored)
	slices.SortStableFunc(out, func(a, b Item) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return out
}
