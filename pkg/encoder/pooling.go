package encoder

import "math"

// meanPooling averages token states weighted by the attention mask.
// Input shape [batch, seq_len, hidden], output shape [batch, hidden].
func meanPooling(states []float32, attentionMask []int64, batchSize, seqLen, hiddenSize int) [][]float32 {
	results := make([][]float32, batchSize)

	for b := 0; b < batchSize; b++ {
		result := make([]float32, hiddenSize)
		var maskSum float32

		for s := 0; s < seqLen; s++ {
			maskVal := float32(attentionMask[b*seqLen+s])
			maskSum += maskVal
			if maskVal > 0 {
				offset := (b*seqLen + s) * hiddenSize
				for h := 0; h < hiddenSize; h++ {
					result[h] += states[offset+h] * maskVal
				}
			}
		}

		if maskSum > 0 {
			for h := 0; h < hiddenSize; h++ {
				result[h] /= maskSum
			}
		}

		results[b] = result
	}

	return results
}

// clsPooling takes the first token's state per sequence.
func clsPooling(states []float32, batchSize, seqLen, hiddenSize int) [][]float32 {
	results := make([][]float32, batchSize)
	for b := 0; b < batchSize; b++ {
		result := make([]float32, hiddenSize)
		offset := b * seqLen * hiddenSize
		copy(result, states[offset:offset+hiddenSize])
		results[b] = result
	}
	return results
}

// l2Normalize scales v to unit L2 norm in place. Zero vectors stay zero.
func l2Normalize(v []float32) {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	if sum == 0 {
		return
	}
	norm := float32(math.Sqrt(sum))
	for i := range v {
		v[i] /= norm
	}
}
