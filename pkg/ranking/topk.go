package ranking

import (
	pkgerrors "github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// TopK holds, for every row, the max(ks) highest-scored items ordered by
// descending score. Indices[i][p] is the column of the item at rank p+1.
type TopK struct {
	Scores  *mat.Dense
	Indices [][]int
	Labels  *mat.Dense
}

// ExtractTopK selects the max(ks) highest-scored items of each row together
// with their labels. Items with equal scores keep their column order.
func ExtractTopK(ks []int, scores, labels mat.Matrix) (TopK, error) {
	s, l, err := checkInputs(opTopK, ks, scores, labels)
	if err != nil {
		return TopK{}, err
	}
	return extractTopK(opTopK, ks, s, l)
}

func extractTopK(op string, ks []int, scores, labels *mat.Dense) (TopK, error) {
	rows, cols := scores.Dims()

	maxK, err := maxCutoff(op, ks, cols)
	if err != nil {
		return TopK{}, err
	}

	topk := TopK{
		Scores:  mat.NewDense(rows, maxK, nil),
		Indices: make([][]int, rows),
		Labels:  mat.NewDense(rows, maxK, nil),
	}

	keys := make([]float64, cols)
	for rowIdx := range rows {
		mat.Row(keys, rowIdx, scores)
		// ascending stable order of the negated scores is descending order
		// of the scores with ties left in column order
		floats.Scale(-1, keys)
		inds := make([]int, cols)
		floats.ArgsortStable(keys, inds)

		for p, col := range inds[:maxK] {
			topk.Scores.Set(rowIdx, p, scores.At(rowIdx, col))
			topk.Labels.Set(rowIdx, p, labels.At(rowIdx, col))
		}
		topk.Indices[rowIdx] = inds[:maxK:maxK]
	}

	return topk, nil
}

func maxCutoff(op string, ks []int, items int) (int, error) {
	maxK := 0
	for _, k := range ks {
		if k <= 0 {
			return 0, pkgerrors.WithStack(&RangeError{Op: op, K: k, Items: items})
		}
		maxK = max(maxK, k)
	}

	if maxK > items {
		return 0, pkgerrors.WithStack(&RangeError{Op: op, K: maxK, Items: items})
	}
	return maxK, nil
}
