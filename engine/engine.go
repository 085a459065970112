package engine

import "freckers/experiments/metrics"

type Engine interface {
	// Run plays a game until one side is home or the turn limit is reached.
	// The winner is empty for a draw.
	Run() (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
