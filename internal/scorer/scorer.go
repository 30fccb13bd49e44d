// Package scorer defines the semantic-similarity collaborator contract
// and an HTTP client for an external scoring service. The engine never
// computes embeddings itself; it only compares scores to a threshold.
package scorer

import "context"

// Scorer computes the semantic similarity of two words. Implementations
// typically return a cosine similarity in [-1, 1], but the engine makes
// no assumption beyond comparing the quantized score to its threshold.
type Scorer interface {
	Similarity(ctx context.Context, word1, word2 string) (float64, error)
}

// Quantize converts a raw similarity into the integer score the game
// uses: floor(similarity * 10) via integer truncation
func Quantize(similarity float64) int {
	return int(similarity * 10)
}
