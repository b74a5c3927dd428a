package schedule_test

import (
	"testing"

	"github.com/mauv0809/league-scheduler/internal/schedule"
	"github.com/stretchr/testify/assert"
)

func TestEstimateCapacity(t *testing.T) {
	t.Run("insufficient capacity", func(t *testing.T) {
		est := schedule.EstimateCapacity(3, 7, 2, 40)
		assert.Equal(t, 42, est.Capacity)
		assert.Equal(t, 50, est.RecommendedMinimum)
		assert.False(t, est.Sufficient)
	})

	t.Run("sufficient capacity", func(t *testing.T) {
		est := schedule.EstimateCapacity(5, 6, 2, 40)
		assert.Equal(t, 60, est.Capacity)
		assert.Equal(t, 50, est.RecommendedMinimum)
		assert.True(t, est.Sufficient)
	})

	t.Run("zero matchups", func(t *testing.T) {
		est := schedule.EstimateCapacity(1, 1, 2, 0)
		assert.Equal(t, 0, est.RecommendedMinimum)
		assert.True(t, est.Sufficient)
	})
}
