package debugui

import "github.com/plus3/blockfall/ecs"

// SpawnDebugUI spawns the storage and scheduler panels as ImguiItem entities.
func SpawnDebugUI(storage *ecs.Storage, scheduler *ecs.Scheduler) {
	perf := NewPerformanceStatsComponent(120)
	timer := NewFrameTimer()
	storage.Spawn(ImguiItem{
		Render: func() {
			perf.Render(storage, timer.GetDeltaTime())
		},
	})

	sched := NewSchedulerStatsComponent(scheduler, 120)
	storage.Spawn(ImguiItem{
		Render: sched.Render,
	})
}

func RegisterDebugUIComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[ImguiItem](registry)
	ecs.RegisterComponent[ImguiInputState](registry)
}
