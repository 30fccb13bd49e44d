package game

import "math/rand"

// Expand unlocks a higher tier based on the user's score. Each latch
// fires at most once: tier 2 words are appended when 100 <= score < 200,
// tier 3 words when score >= 200. At most one expansion happens per call.
// Returns true if the pool grew.
func (s *Session) Expand(score int) bool {
	if score >= 100 && score < 200 && !s.tier2Merged {
		s.pool = append(s.pool, s.catalog.Tier(2)...)
		s.tier2Merged = true
		s.tier = 2
		return true
	}

	if score >= 200 && !s.tier3Merged {
		s.pool = append(s.pool, s.catalog.Tier(3)...)
		s.tier3Merged = true
		s.tier = 3
		return true
	}

	return false
}

// Reload replaces the pool wholesale with the next tier's word list,
// cycling 1 -> 2 -> 3 -> 1. Rotation is independent of the merge
// latches: a pool can rotate into a tier the user's score never
// unlocked. Called only on pool exhaustion.
func (s *Session) Reload() {
	s.tier = s.tier%3 + 1
	s.pool = s.catalog.Tier(s.tier)

	// The latch for the reloaded tier resets so a later Expand can
	// re-merge it after the cycle passes through
	switch s.tier {
	case 2:
		s.tier2Merged = false
	case 3:
		s.tier3Merged = false
	}
}

// Available returns the distinct pool words not yet used, in pool order
func (s *Session) Available(used map[string]bool) []string {
	seen := make(map[string]bool, len(s.pool))
	candidates := make([]string, 0, len(s.pool))
	for _, word := range s.pool {
		if used[word] || seen[word] {
			continue
		}
		seen[word] = true
		candidates = append(candidates, word)
	}
	return candidates
}

// Draw selects a word uniformly at random from the eligible pool and
// records it as the last thrown word. Returns false when the pool is
// exhausted; the caller decides whether to reload and retry.
func (s *Session) Draw(used map[string]bool, rng *rand.Rand) (string, bool) {
	candidates := s.Available(used)
	if len(candidates) == 0 {
		return "", false
	}

	word := candidates[rng.Intn(len(candidates))]
	s.lastThrown = word
	return word, true
}
