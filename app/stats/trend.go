package stats

// Trend compares a current-period aggregate against the prior period's.
// Delta is current minus previous in the aggregate's own unit (percentage
// points or score points).
type Trend struct {
	Delta     float64 `json:"delta"`
	Direction string  `json:"direction"`
}

// Compare returns the trend between two aggregates of the same kind.
// Direction is "up" only for a strictly positive delta; an unchanged
// aggregate reports "down", so callers must not read zero as improvement.
func Compare(current, previous float64) Trend {
	delta := current - previous
	direction := "down"
	if delta > 0 {
		direction = "up"
	}
	return Trend{Delta: delta, Direction: direction}
}
