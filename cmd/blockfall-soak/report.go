package main

import (
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/blockfall/ecs"
	"github.com/plus3/blockfall/tetris"
)

type Report struct {
	// Configuration
	Duration  time.Duration
	Tick      time.Duration
	Seed      uint64
	DropSpeed float64

	// Results
	TotalTicks     int64
	TotalTime      time.Duration
	SimulatedTime  time.Duration
	TickTime       Stats
	BlockedSpawns  int
	State          tetris.SimState
	LiveEntities   int
	Scheduler      *ecs.SchedulerStats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

// Stats keeps running aggregates so long soaks hold no per-tick samples.
type Stats struct {
	Min   time.Duration
	Max   time.Duration
	Avg   time.Duration
	Count int64
	total time.Duration
}

func (s *Stats) Add(sample time.Duration) {
	if s.Count == 0 {
		s.Min, s.Max = sample, sample
	} else {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
	}
	s.total += sample
	s.Count++
}

func (s *Stats) Finalize() {
	if s.Count == 0 {
		return
	}
	s.Avg = s.total / time.Duration(s.Count)
}

const reportTemplate = `
# Blockfall Soak Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Tick:** {{.Tick}}
- **Seed:** {{.Seed}}
- **Drop Speed:** {{.DropSpeed}} rows/s

## Simulation
- **Ticks:** {{.TotalTicks}} ({{.SimulatedTime}} simulated in {{.TotalTime}})
- **Pieces Locked:** {{.State.PiecesLocked}}
- **Lines Cleared:** {{.State.LinesCleared}}
- **Blocked Spawns:** {{.BlockedSpawns}}
- **Final Phase:** {{.State.Phase}}
- **Live Entities:** {{.LiveEntities}}

## Tick Time
- **Avg:** {{.TickTime.Avg}}
- **Min:** {{.TickTime.Min}}
- **Max:** {{.TickTime.Max}}

## Systems
{{range .Scheduler.Systems}}- **{{.Name}}:** {{.ExecutionCount}} runs, avg {{.AvgDuration}}, max {{.MaxDuration}}
{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
{{end}}`

func (r *Report) Generate(w io.Writer) error {
	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
