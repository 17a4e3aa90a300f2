package service

import (
	"math"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paksupply/pkg/errors"
)

func TestAggregateRating(t *testing.T) {
	mean, count := 0.0, 0
	for _, s := range []float64{4, 5, 3} {
		mean, count = AggregateRating(mean, count, s)
	}
	assert.Equal(t, 3, count)
	assert.InDelta(t, 4.0, mean, 1e-9)
}

func TestAggregateRatingMatchesArithmeticMean(t *testing.T) {
	faker := gofakeit.New(42)

	mean, count := 0.0, 0
	sum := 0.0
	n := 200
	for i := 0; i < n; i++ {
		stars := faker.Float64Range(0, 5)
		sum += stars
		mean, count = AggregateRating(mean, count, stars)
		assert.Equal(t, i+1, count)
	}
	assert.InDelta(t, sum/float64(n), mean, 1e-9)
}

func TestValidateStars(t *testing.T) {
	for _, ok := range []float64{0, 2.5, 5} {
		assert.NoError(t, ValidateStars(ok))
	}
	for _, bad := range []float64{-0.1, 5.01, math.NaN(), math.Inf(1)} {
		err := ValidateStars(bad)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.CodeValidation))
	}
}
