package schedule

import "math"

// headroomFactor accounts for the greedy placer never achieving perfect
// packing; 25% extra capacity is recommended over the raw matchup count.
const headroomFactor = 1.25

// CapacityEstimate is the advisory pre-generation capacity check. It never
// blocks anything.
type CapacityEstimate struct {
	Capacity           int  `json:"capacity"`
	RecommendedMinimum int  `json:"recommended_minimum"`
	Sufficient         bool `json:"sufficient"`
}

// EstimateCapacity reports whether the planned events provide enough slots for
// the matchup count, with headroom.
func EstimateCapacity(dateCount, slotsPerEvening, courtsPerEvent, matchupCount int) CapacityEstimate {
	capacity := dateCount * slotsPerEvening * courtsPerEvent
	recommended := int(math.Ceil(float64(matchupCount) * headroomFactor))
	return CapacityEstimate{
		Capacity:           capacity,
		RecommendedMinimum: recommended,
		Sufficient:         capacity >= recommended,
	}
}
