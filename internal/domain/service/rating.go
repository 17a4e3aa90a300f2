package service

import (
	"math"

	"paksupply/pkg/errors"
)

const (
	MinStars = 0.0
	MaxStars = 5.0
)

func ValidateStars(stars float64) error {
	if math.IsNaN(stars) || math.IsInf(stars, 0) || stars < MinStars || stars > MaxStars {
		return errors.Validation("stars must be between 0 and 5", nil)
	}
	return nil
}

// AggregateRating folds one more submission into a running mean.
// No rounding is applied; count only ever grows.
func AggregateRating(mean float64, count int, stars float64) (float64, int) {
	newCount := count + 1
	newMean := (mean*float64(count) + stars) / float64(newCount)
	return newMean, newCount
}
