// Package ranker selects the highest scoring words on each embedding dimension.
package ranker

import (
	"strings"

	"github.com/sirupsen/logrus"

	"topwords/internal/domain"
)

// Options tunes word selection.
type Options struct {
	// Exclude drops words containing this substring; empty disables filtering.
	Exclude string
	// Backfill filters before selecting the top k, so excluded words are
	// replaced by the next best ones. When false, filtering runs after
	// selection and a dimension may yield fewer than k words.
	Backfill bool
}

// DefaultOptions excludes underscored words, without backfill.
func DefaultOptions() Options {
	return Options{Exclude: "_"}
}

// TopK ranks words per dimension.
type TopK struct {
	k    int
	opts Options
	log  logrus.FieldLogger
}

// NewTopK creates a ranker keeping k words per dimension.
func NewTopK(k int, opts Options, log logrus.FieldLogger) *TopK {
	return &TopK{k: k, opts: opts, log: log}
}

// Rank implements domain.Ranker.
func (r *TopK) Rank(emb domain.Embeddings) domain.Ranking {
	ranking := TopWords(emb, r.k, r.opts)
	if r.log != nil {
		r.log.WithFields(logrus.Fields{
			"k":          r.k,
			"dimensions": len(ranking),
			"backfill":   r.opts.Backfill,
		}).Debug("ranking computed")
	}
	return ranking
}

// TopWords returns, for every dimension of emb, its k highest valued words.
// k beyond the vocabulary size is clamped; k <= 0 yields empty lists.
func TopWords(emb domain.Embeddings, k int, opts Options) domain.Ranking {
	dims := Transpose(emb.Matrix)
	ranking := make(domain.Ranking, len(dims))
	for d, vals := range dims {
		ranking[d] = topWordsForDimension(emb.Words, vals, k, opts)
	}
	return ranking
}

func topWordsForDimension(words []string, vals []float64, k int, opts Options) []string {
	k = max(0, min(k, len(vals)))
	out := make([]string, 0, k)
	if !opts.Backfill {
		for _, idx := range topIndexes(vals, k) {
			if excluded(words[idx], opts.Exclude) {
				continue
			}
			out = append(out, words[idx])
		}
		return out
	}

	if k == 0 {
		return out
	}
	for _, idx := range topIndexes(vals, len(vals)) {
		if excluded(words[idx], opts.Exclude) {
			continue
		}
		out = append(out, words[idx])
		if len(out) == k {
			break
		}
	}
	return out
}

func excluded(word, substr string) bool {
	return substr != "" && strings.Contains(word, substr)
}

// Transpose turns rows into columns. All rows must have the length of the first.
func Transpose(matrix [][]float64) [][]float64 {
	if len(matrix) == 0 {
		return nil
	}
	cols := len(matrix[0])
	out := make([][]float64, cols)
	for c := 0; c < cols; c++ {
		col := make([]float64, len(matrix))
		for r, row := range matrix {
			col[r] = row[c]
		}
		out[c] = col
	}
	return out
}
