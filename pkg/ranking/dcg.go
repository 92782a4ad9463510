package ranking

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// DCGAt computes Discounted Cumulative Gain at every cutoff in ks.
//
// Items of each row are ranked by descending score and
//
//	DCG@k = sum(p=1..k) gain(label_p) / log2(p + 1)
//
// The result has shape (batch, len(ks)) and column j holds DCG@ks[j], in the
// order ks was given. max(ks) must not exceed the number of columns.
func DCGAt(ks []int, scores, labels mat.Matrix, opts ...Option) (*mat.Dense, error) {
	return dcgAt(opDCG, ks, scores, labels, newOptions(opts))
}

func dcgAt(op string, ks []int, scores, labels mat.Matrix, o options) (*mat.Dense, error) {
	s, l, err := checkInputs(op, ks, scores, labels)
	if err != nil {
		return nil, err
	}

	topk, err := extractTopK(op, ks, s, l)
	if err != nil {
		return nil, err
	}

	return cumulativeGain(ks, topk.Labels, o.gain), nil
}

// cumulativeGain sums discounted gains strictly in rank order, so the value
// at a cutoff is the same whichever other cutoffs are requested.
func cumulativeGain(ks []int, topkLabels *mat.Dense, gain Gain) *mat.Dense {
	rows, maxK := topkLabels.Dims()
	out := newOutput(topkLabels, ks)

	cum := make([]float64, maxK)
	for rowIdx := range rows {
		var acc float64
		for p := range maxK {
			acc += gain.apply(topkLabels.At(rowIdx, p)) / math.Log2(float64(p+2))
			cum[p] = acc
		}

		for j, k := range ks {
			out.Set(rowIdx, j, cum[k-1])
		}
	}

	return out
}
