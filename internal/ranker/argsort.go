package ranker

import (
	"math"
	"sort"
)

// argsort returns the indices that sort vals ascending. Equal values keep
// their index order and NaN sorts above every number.
func argsort(vals []float64) []int {
	idxs := make([]int, len(vals))
	for i := range vals {
		idxs[i] = i
	}
	sort.SliceStable(idxs, func(a, b int) bool {
		return less(vals[idxs[a]], vals[idxs[b]])
	})
	return idxs
}

func less(a, b float64) bool {
	if math.IsNaN(a) {
		return false
	}
	return math.IsNaN(b) || a < b
}

// topIndexes returns up to k indices with the highest values, highest first.
// Ties come out in descending index order.
func topIndexes(vals []float64, k int) []int {
	if k <= 0 {
		return nil
	}
	idxs := argsort(vals)
	if k > len(idxs) {
		k = len(idxs)
	}
	top := make([]int, 0, k)
	for i := len(idxs) - 1; i >= len(idxs)-k; i-- {
		top = append(top, idxs[i])
	}
	return top
}
