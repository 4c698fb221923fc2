package utils

import (
	"context"

	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// FindClosestString returns the candidate with the smallest Levenshtein distance to v, ok is false if
// no candidate is at most maxDifferences edits away.
func FindClosestString(ctx context.Context, candidates []string, v string, maxDifferences int) (closest string, distance int, ok bool) {
	distance = -1
	target := []rune(v)

	for _, candidate := range candidates {
		if IsContextDone(ctx) {
			return "", 0, false
		}

		d := levenshtein.DistanceForStrings([]rune(candidate), target, levenshtein.DefaultOptionsWithSub)
		if d > maxDifferences {
			continue
		}
		if distance < 0 || d < distance {
			closest = candidate
			distance = d
		}
	}

	if distance < 0 {
		return "", 0, false
	}
	return closest, distance, true
}

func IsContextDone(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}
