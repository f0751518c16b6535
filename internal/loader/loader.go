package loader

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"topwords/internal/domain"
)

const maxLineBytes = 16 << 20

var (
	// ErrParse is returned when a vector component is not a number.
	ErrParse = errors.New("invalid vector component")
	// ErrInconsistentDimensionality is returned when rows differ in length.
	ErrInconsistentDimensionality = errors.New("inconsistent dimensionality")
)

// TextLoader reads whitespace-delimited word vector files:
// one "<word> <f1> ... <fD>" entry per line, no header.
type TextLoader struct {
	log logrus.FieldLogger
}

// NewTextLoader creates a loader that logs through log.
func NewTextLoader(log logrus.FieldLogger) *TextLoader {
	return &TextLoader{log: log}
}

// Load implements domain.VectorLoader.
func (l *TextLoader) Load(path string) (domain.Embeddings, error) {
	emb, err := LoadVectors(path)
	if err != nil {
		return domain.Embeddings{}, err
	}
	if l.log != nil {
		l.log.WithFields(logrus.Fields{
			"path":      path,
			"words":     emb.Len(),
			"dimension": emb.Dimension(),
		}).Debug("vectors loaded")
	}
	return emb, nil
}

// LoadVectors reads the file at path. Blank lines are skipped. It fails on the
// first unparsable component or on a row whose length differs from the first.
func LoadVectors(path string) (domain.Embeddings, error) {
	file, err := os.Open(path)
	if err != nil {
		return domain.Embeddings{}, errors.Wrap(err, "open vector file")
	}
	defer file.Close()

	var (
		words  []string
		matrix [][]float64
	)
	sc := bufio.NewScanner(file)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		vector := make([]float64, len(fields)-1)
		for i, val := range fields[1:] {
			// Out of range magnitudes keep ParseFloat's ±Inf or 0.
			f, err := strconv.ParseFloat(val, 64)
			if err != nil && !errors.Is(err, strconv.ErrRange) {
				return domain.Embeddings{}, errors.Wrapf(ErrParse, "%s:%d: %q", path, lineNo, val)
			}
			vector[i] = f
		}
		if len(matrix) > 0 && len(vector) != len(matrix[0]) {
			return domain.Embeddings{}, errors.Wrapf(ErrInconsistentDimensionality,
				"%s:%d: word %q has %d components, expected %d", path, lineNo, fields[0], len(vector), len(matrix[0]))
		}
		words = append(words, fields[0])
		matrix = append(matrix, vector)
	}
	if err := sc.Err(); err != nil {
		return domain.Embeddings{}, errors.Wrapf(err, "read %s", path)
	}
	return domain.Embeddings{Words: words, Matrix: matrix}, nil
}
