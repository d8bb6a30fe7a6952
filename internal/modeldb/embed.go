package modeldb

import (
	"hash/fnv"
	"math"
)

// Embed maps a surface form to a fixed 64-dimensional vector by
// feature-hashing its character trigrams, with boundary markers so
// prefixes and suffixes contribute distinct features. The result is
// L2-normalized and fully deterministic, so writer and reader agree on
// the geometry without sharing state.
func Embed(s string) []float32 {
	vec := make([]float32, Dims)
	if s == "" {
		return vec
	}

	runes := []rune("^" + s + "$")
	for i := 0; i+3 <= len(runes); i++ {
		h := fnv.New32a()
		h.Write([]byte(string(runes[i : i+3])))
		sum := h.Sum32()

		idx := int(sum % Dims)
		sign := float32(1)
		if sum&0x80000000 != 0 {
			sign = -1
		}
		vec[idx] += sign
	}

	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	if norm > 0 {
		inv := float32(1 / math.Sqrt(norm))
		for i := range vec {
			vec[i] *= inv
		}
	}
	return vec
}
