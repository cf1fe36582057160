// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docindex

import (
	"hash/fnv"
	"math"
	"strings"
	"unicode"
)

// embedDims is the fixed dimensionality of document vectors. Stored
// vectors of a different length never match, so changing this requires
// re-indexing.
const embedDims = 128

// Embed produces a deterministic hashed term-frequency vector for text:
// lowercase word tokens are FNV-hashed into embedDims buckets and the
// bucket counts are L2-normalized. Crude next to a learned embedding,
// but it needs no model, is stable across runs, and ranks documents that
// share vocabulary above ones that do not.
func Embed(content string) []float64 {
	vec := make([]float64, embedDims)

	tokens := strings.FieldsFunc(strings.ToLower(content), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, tok := range tokens {
		h := fnv.New32a()
		h.Write([]byte(tok))
		vec[h.Sum32()%embedDims]++
	}

	var norm float64
	for _, v := range vec {
		norm += v * v
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}

// Cosine returns the cosine similarity of a and b. ok is false when the
// vectors differ in length or either has zero norm.
func Cosine(a, b []float64) (sim float64, ok bool) {
	if len(a) != len(b) || len(a) == 0 {
		return 0, false
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0, false
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), true
}
