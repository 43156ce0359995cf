package similarity

import (
	"math"

	"gototest/internal/domain"
)

// DefaultTolerance is the largest score gap that still counts as a near tie.
const DefaultTolerance = 0.05

// epsilon absorbs float rounding so that a gap of exactly the tolerance is a tie.
const epsilon = 1e-9

// Scorer rates how similar two paths are, in [0, 1].
type Scorer func(a, b string) float64

// Disambiguator picks the candidate closest to the originating path.
type Disambiguator struct {
	score     Scorer
	tolerance float64
}

// NewDisambiguator creates a Disambiguator using Dice similarity.
func NewDisambiguator(tolerance float64) *Disambiguator {
	return NewDisambiguatorWithScorer(tolerance, Compare)
}

func NewDisambiguatorWithScorer(tolerance float64, score Scorer) *Disambiguator {
	if score == nil {
		score = Compare
	}
	return &Disambiguator{
		score:     score,
		tolerance: tolerance,
	}
}

// Rate scores every candidate against original, in input order.
func (d *Disambiguator) Rate(original string, candidates []string) ([]domain.Rating, int) {
	return rate(d.score, original, candidates)
}

// Disambiguate returns the best candidate first, followed by every other
// candidate within tolerance of it. A single element means no human choice
// is needed. It returns nil for no candidates.
func (d *Disambiguator) Disambiguate(original string, candidates []string) []string {
	if len(candidates) == 0 {
		return nil
	}

	ratings, best := d.Rate(original, candidates)
	bestMatch := ratings[best]

	options := []string{bestMatch.Target}
	for i, r := range ratings {
		if i == best || r.Target == bestMatch.Target {
			continue
		}
		if math.Abs(bestMatch.Score-r.Score) <= d.tolerance+epsilon {
			options = append(options, r.Target)
		}
	}

	return options
}
