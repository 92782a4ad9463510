package ranking

import (
	pkgerrors "github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

const (
	opDCG       = "dcg_at"
	opNDCG      = "ndcg_at"
	opPrecision = "precision_at"
	opRecall    = "recall_at"
	opTopK      = "extract_topk"
)

// checkInputs validates the shapes of a metric call and materializes scores
// and labels as dense row-major matrices.
func checkInputs(op string, ks []int, scores, labels mat.Matrix) (*mat.Dense, *mat.Dense, error) {
	if len(ks) == 0 {
		return nil, nil, shapeErr(op, "ks should be a non-empty 1-dimensional slice")
	}

	if isEmpty(scores) {
		return nil, nil, shapeErr(op, "scores must be a 2-dimensional matrix")
	}

	if isEmpty(labels) {
		return nil, nil, shapeErr(op, "labels must be a 2-dimensional matrix")
	}

	sr, sc := scores.Dims()
	lr, lc := labels.Dims()
	if sr != lr || sc != lc {
		return nil, nil, shapeErr(op, "scores and labels must be the same shape")
	}

	return asDense(scores), asDense(labels), nil
}

func isEmpty(m mat.Matrix) bool {
	if m == nil {
		return true
	}
	if d, ok := m.(*mat.Dense); ok && d == nil {
		return true
	}
	r, c := m.Dims()
	return r == 0 || c == 0
}

// asDense returns m itself when it is already dense. Other implementations
// (transposes, symmetric or banded matrices) are copied.
func asDense(m mat.Matrix) *mat.Dense {
	if d, ok := m.(*mat.Dense); ok {
		return d
	}
	return mat.DenseCopyOf(m)
}

// newOutput allocates the zeroed (batch, len(ks)) result matrix for rows of m.
func newOutput(m mat.Matrix, ks []int) *mat.Dense {
	rows, _ := m.Dims()
	return mat.NewDense(rows, len(ks), nil)
}

func shapeErr(op, msg string) error {
	return pkgerrors.WithStack(&ShapeError{Op: op, Message: msg})
}
