package similarity

import (
	"strings"
	"unicode"

	"gototest/internal/domain"
)

// Compare scores two strings with the Sørensen–Dice coefficient over character
// bigrams. Whitespace is ignored. Identical strings score 1.
func Compare(a, b string) float64 {
	ra := []rune(stripSpace(a))
	rb := []rune(stripSpace(b))

	if string(ra) == string(rb) {
		return 1.0
	}
	if len(ra) < 2 || len(rb) < 2 {
		return 0.0
	}

	bigrams := make(map[string]int, len(ra)-1)
	for i := 0; i < len(ra)-1; i++ {
		bigrams[string(ra[i:i+2])]++
	}

	intersection := 0
	for i := 0; i < len(rb)-1; i++ {
		bg := string(rb[i : i+2])
		if bigrams[bg] > 0 {
			bigrams[bg]--
			intersection++
		}
	}

	return 2.0 * float64(intersection) / float64(len(ra)+len(rb)-2)
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// FindBestMatch rates every target against main and returns the ratings in
// input order with the index of the best one. Ties keep the earliest target.
func FindBestMatch(main string, targets []string) ([]domain.Rating, int) {
	return rate(Compare, main, targets)
}

func rate(score Scorer, main string, targets []string) ([]domain.Rating, int) {
	ratings := make([]domain.Rating, len(targets))
	best := 0
	for i, t := range targets {
		ratings[i] = domain.Rating{Target: t, Score: score(main, t)}
		if ratings[i].Score > ratings[best].Score {
			best = i
		}
	}
	return ratings, best
}
