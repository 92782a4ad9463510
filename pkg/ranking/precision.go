package ranking

import "gonum.org/v1/gonum/mat"

// PrecisionAt computes, for every cutoff k, the fraction of the top-k items
// that are relevant. An item is relevant when its label is greater than 0.
func PrecisionAt(ks []int, scores, labels mat.Matrix) (*mat.Dense, error) {
	topk, _, err := rankedLabels(opPrecision, ks, scores, labels)
	if err != nil {
		return nil, err
	}

	rows, maxK := topk.Dims()
	out := newOutput(topk, ks)
	hits := make([]float64, maxK)
	for rowIdx := range rows {
		relevantPrefix(hits, topk, rowIdx)
		for j, k := range ks {
			out.Set(rowIdx, j, hits[k-1]/float64(k))
		}
	}

	return out, nil
}

// RecallAt computes, for every cutoff k, the fraction of a row's relevant
// items found in its top-k. Rows without relevant items yield 0.
func RecallAt(ks []int, scores, labels mat.Matrix) (*mat.Dense, error) {
	topk, all, err := rankedLabels(opRecall, ks, scores, labels)
	if err != nil {
		return nil, err
	}

	rows, maxK := topk.Dims()
	_, cols := all.Dims()
	out := newOutput(topk, ks)
	hits := make([]float64, maxK)
	row := make([]float64, cols)
	for rowIdx := range rows {
		mat.Row(row, rowIdx, all)
		total := countRelevant(row)
		if total == 0 {
			continue
		}

		relevantPrefix(hits, topk, rowIdx)
		for j, k := range ks {
			out.Set(rowIdx, j, hits[k-1]/total)
		}
	}

	return out, nil
}

func rankedLabels(op string, ks []int, scores, labels mat.Matrix) (*mat.Dense, *mat.Dense, error) {
	s, l, err := checkInputs(op, ks, scores, labels)
	if err != nil {
		return nil, nil, err
	}

	topk, err := extractTopK(op, ks, s, l)
	if err != nil {
		return nil, nil, err
	}
	return topk.Labels, l, nil
}

// relevantPrefix fills dst[p] with the number of relevant items in ranks 1..p+1.
func relevantPrefix(dst []float64, topk *mat.Dense, rowIdx int) {
	var hits float64
	for p := range dst {
		if topk.At(rowIdx, p) > 0 {
			hits++
		}
		dst[p] = hits
	}
}

func countRelevant(labels []float64) float64 {
	var n float64
	for _, l := range labels {
		if l > 0 {
			n++
		}
	}
	return n
}
