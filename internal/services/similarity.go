package services

import (
	"fmt"
	"math"
	"strings"

	"github.com/james-bowman/nlp"
	"github.com/james-bowman/nlp/measures/pairwise"
	"gonum.org/v1/gonum/mat"
)

// SimilarityService computes the lexical overlap between two texts as the
// cosine similarity of their TF-IDF vectors over the two-document corpus.
type SimilarityService interface {
	Similarity(textA, textB string) (float64, error)
}

type similarityService struct{}

func NewSimilarityService() SimilarityService {
	return &similarityService{}
}

func (s *similarityService) Similarity(textA, textB string) (float64, error) {
	// Empty input means zero overlap, never a vectorisation failure.
	if strings.TrimSpace(textA) == "" || strings.TrimSpace(textB) == "" {
		return 0, nil
	}

	// The vectoriser is fit per call: the vocabulary is derived from this
	// document pair only, and no state may leak between analysis runs.
	vectoriser := nlp.NewCountVectoriser()
	counts, err := vectoriser.FitTransform(textA, textB)
	if err != nil {
		return 0, fmt.Errorf("failed to vectorise documents: %w", err)
	}

	rows, cols := counts.Dims()
	if rows == 0 || cols != 2 {
		return 0, nil
	}

	colA := mat.Col(nil, 0, counts)
	colB := mat.Col(nil, 1, counts)

	// Smoothed IDF weighting: idf = log((1+n)/(1+df)) + 1. The trailing +1
	// is load-bearing on a two-document corpus — without it, every term
	// present in both documents gets idf log(3/3) = 0 and the shared
	// vocabulary drops out of the dot product entirely, collapsing the
	// cosine to zero for all pairs.
	const n = 2.0
	for i := 0; i < rows; i++ {
		df := 0.0
		if colA[i] > 0 {
			df++
		}
		if colB[i] > 0 {
			df++
		}
		idf := math.Log((1+n)/(1+df)) + 1
		colA[i] *= idf
		colB[i] *= idf
	}

	similarity := pairwise.CosineSimilarity(
		mat.NewVecDense(rows, colA),
		mat.NewVecDense(rows, colB),
	)

	// A zero vector (text that produced no terms) yields NaN from the
	// cosine; define that as zero similarity.
	if math.IsNaN(similarity) || math.IsInf(similarity, 0) {
		return 0, nil
	}

	return clamp(similarity, 0, 1), nil
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
