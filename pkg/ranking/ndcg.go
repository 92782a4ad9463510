package ranking

import "gonum.org/v1/gonum/mat"

// NDCGAt computes Normalized DCG at every cutoff in ks: DCGAt divided by the
// DCG of the ideal ranking, obtained by ranking the items by their labels.
// Cells whose ideal DCG is zero are 0.
func NDCGAt(ks []int, scores, labels mat.Matrix, opts ...Option) (*mat.Dense, error) {
	o := newOptions(opts)

	actual, err := dcgAt(opNDCG, ks, scores, labels, o)
	if err != nil {
		return nil, err
	}

	ideal, err := dcgAt(opNDCG, ks, labels, labels, o)
	if err != nil {
		return nil, err
	}

	out := newOutput(actual, ks)
	out.Apply(func(i, j int, _ float64) float64 {
		if d := ideal.At(i, j); d != 0 {
			return actual.At(i, j) / d
		}
		return 0
	}, out)

	return out, nil
}
