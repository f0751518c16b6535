package domain

// Embeddings holds a vocabulary and its index-aligned embedding matrix.
// Matrix[i] is the vector of Words[i]; every row has the same length.
type Embeddings struct {
	Words  []string
	Matrix [][]float64
}

// Len returns the number of words.
func (e Embeddings) Len() int { return len(e.Words) }

// Dimension returns the number of columns of the matrix, or 0 when empty.
func (e Embeddings) Dimension() int {
	if len(e.Matrix) == 0 {
		return 0
	}
	return len(e.Matrix[0])
}

// Ranking lists, per embedding dimension, the top words in descending order
// of their value on that dimension.
type Ranking [][]string

// VectorLoader reads word vectors from a file.
type VectorLoader interface {
	Load(path string) (Embeddings, error)
}

// Ranker ranks words per dimension.
type Ranker interface {
	Rank(emb Embeddings) Ranking
}

// Reporter renders a ranking.
type Reporter interface {
	Report(ranking Ranking) error
}

// PipelineService defines the operations exposed by the application core.
type PipelineService interface {
	Run(path string) error
}
