// Package rating maintains the derived provider rating.
package rating

import "beautymap/internal/domain/entity"

// Aggregate returns the arithmetic mean and count of ratings.
// An empty set yields a zero rating and zero count.
func Aggregate(ratings []int) (float64, int) {
	if len(ratings) == 0 {
		return 0, 0
	}

	sum := 0
	for _, r := range ratings {
		sum += r
	}

	return float64(sum) / float64(len(ratings)), len(ratings)
}

// Valid reports whether r is an accepted review rating.
func Valid(r int) bool {
	return r >= entity.MinReviewRating && r <= entity.MaxReviewRating
}
