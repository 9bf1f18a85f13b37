package debugui

import "github.com/plus3/blockfall/ecs"

// PerformanceStatsComponent renders storage counts and a frame time graph.
type PerformanceStatsComponent struct {
	frames *sampleHistory
}

// SchedulerStatsComponent renders per-system execution statistics and a latency chart.
type SchedulerStatsComponent struct {
	scheduler *ecs.Scheduler
	latency   map[string]*sampleHistory
	capacity  int
}
