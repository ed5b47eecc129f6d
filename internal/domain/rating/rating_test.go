package rating

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregate(t *testing.T) {
	tests := []struct {
		name      string
		ratings   []int
		wantMean  float64
		wantCount int
	}{
		{name: "empty set resets", ratings: nil, wantMean: 0, wantCount: 0},
		{name: "single rating", ratings: []int{4}, wantMean: 4, wantCount: 1},
		{name: "two ratings", ratings: []int{4, 2}, wantMean: 3, wantCount: 2},
		{name: "no rounding", ratings: []int{5, 4, 4}, wantMean: 13.0 / 3.0, wantCount: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mean, count := Aggregate(tt.ratings)
			assert.InDelta(t, tt.wantMean, mean, 1e-9)
			assert.Equal(t, tt.wantCount, count)
		})
	}
}

func TestValid(t *testing.T) {
	assert.False(t, Valid(0))
	assert.True(t, Valid(1))
	assert.True(t, Valid(5))
	assert.False(t, Valid(6))
}
