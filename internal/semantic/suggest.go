package semantic

// closestMatch returns the candidate within edit distance 1 of name, for a
// "did you mean" hint on an unresolved type/name/function/class lookup.
// Candidates at distance 0 (the name itself, already absent from a
// successful lookup, but present defensively) are skipped; ties keep the
// first candidate encountered, so callers that want a stable hint should
// pass candidates in a stable order.
func closestMatch(name string, candidates []string) (string, bool) {
	best := ""
	bestDist := 2 // anything >1 disqualifies
	for _, cand := range candidates {
		if cand == name {
			continue
		}
		d := editDistanceAtMost1(name, cand)
		if d >= 0 && d < bestDist {
			best, bestDist = cand, d
		}
	}
	return best, bestDist <= 1
}

// editDistanceAtMost1 returns the Levenshtein distance between a and b if it
// is 0 or 1, or -1 otherwise. Bailing out early avoids a full O(len(a)*
// len(b)) table for pairs that are obviously further apart, since callers
// only ever care about the distance-1 threshold.
func editDistanceAtMost1(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == len(rb) {
		diff := 0
		for i := range ra {
			if ra[i] != rb[i] {
				diff++
				if diff > 1 {
					return -1
				}
			}
		}
		return diff
	}
	if abs(len(ra)-len(rb)) > 1 {
		return -1
	}
	// One is exactly one rune longer than the other: a match is a single
	// insertion/deletion, found by skipping one rune in the longer string
	// at the first point the two diverge.
	longer, shorter := ra, rb
	if len(shorter) > len(longer) {
		longer, shorter = shorter, longer
	}
	i, j, skipped := 0, 0, false
	for i < len(longer) && j < len(shorter) {
		if longer[i] == shorter[j] {
			i++
			j++
			continue
		}
		if skipped {
			return -1
		}
		skipped = true
		i++
	}
	return 1
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// suggestionSuffix renders the " (did you mean %q?)" hint appended to a
// diagnostic message when a distance-1 candidate exists, or "" otherwise.
func suggestionSuffix(name string, candidates []string) string {
	if match, ok := closestMatch(name, candidates); ok {
		return " (did you mean \"" + match + "\"?)"
	}
	return ""
}
