// Package ranking computes ranking-quality metrics over batches of scored,
// labeled items.
//
// Inputs are gonum matrices: row i of scores holds the scores a ranker
// assigned to the candidates of instance i, and row i of labels holds the
// ground-truth relevance of the same candidates. Each metric takes a list of
// cutoffs and returns a matrix of shape (batch, len(ks)) whose column j is
// the metric at ks[j].
//
//	scores := mat.NewDense(1, 4, []float64{0.3, 1.0, 0.7, 0.4})
//	labels := mat.NewDense(1, 4, []float64{2, 5, 3, 1})
//	ndcg, err := ranking.NDCGAt([]int{3}, scores, labels)
//
// All functions are pure: inputs are never modified and nothing is retained
// between calls.
package ranking
