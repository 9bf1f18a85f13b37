package debugui

import (
	"fmt"
	"sort"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/AllenDang/cimgui-go/implot"
	"github.com/plus3/blockfall/ecs"
)

func NewSchedulerStatsComponent(scheduler *ecs.Scheduler, historyFrames int) SchedulerStatsComponent {
	return SchedulerStatsComponent{
		scheduler: scheduler,
		latency:   make(map[string]*sampleHistory),
		capacity:  historyFrames,
	}
}

// record appends the last duration of every system to its latency history and
// returns the system names in a stable order.
func (ss *SchedulerStatsComponent) record(stats *ecs.SchedulerStats) []string {
	names := make([]string, 0, len(stats.Systems))
	for _, sys := range stats.Systems {
		history, ok := ss.latency[sys.Name]
		if !ok {
			history = newSampleHistory(ss.capacity)
			ss.latency[sys.Name] = history
		}
		history.push(float32(sys.LastDuration.Microseconds()) / 1000.0)
		names = append(names, sys.Name)
	}
	sort.Strings(names)
	return names
}

func (ss *SchedulerStatsComponent) Render() {
	stats := ss.scheduler.GetStats()
	names := ss.record(stats)

	imgui.SetNextWindowSizeV(imgui.NewVec2(520, 320), imgui.CondOnce)
	if !imgui.BeginV("Scheduler", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Systems: %d", stats.SystemCount))
	imgui.Text(fmt.Sprintf("Total Executions: %d", stats.TotalExecutions))

	if imgui.BeginTabBar("SchedulerTabs") {
		if imgui.BeginTabItem("Systems") {
			const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
			if imgui.BeginTableV("SystemStatsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
				imgui.TableSetupColumn("System")
				imgui.TableSetupColumn("Runs")
				imgui.TableSetupColumn("Avg")
				imgui.TableSetupColumn("Max")
				imgui.TableHeadersRow()

				for _, sys := range stats.Systems {
					imgui.TableNextRow()
					imgui.TableNextColumn()
					imgui.Text(sys.Name)
					imgui.TableNextColumn()
					imgui.Text(fmt.Sprintf("%d", sys.ExecutionCount))
					imgui.TableNextColumn()
					imgui.Text(sys.AvgDuration.String())
					imgui.TableNextColumn()
					imgui.Text(sys.MaxDuration.String())
				}

				imgui.EndTable()
			}
			imgui.EndTabItem()
		}

		if imgui.BeginTabItem("Latency") {
			yMax := float64(1)
			for _, name := range names {
				yMax = max(yMax, float64(ss.latency[name].peak())*1.1)
			}

			if implot.BeginPlotV("System Latency", imgui.NewVec2(-1, -1), 0) {
				implot.SetupAxesV("Frame", "Time (ms)", 0, 0)
				implot.SetupAxisLimitsV(implot.AxisY1, 0, yMax, implot.CondAlways)
				for _, name := range names {
					samples := ss.latency[name].ordered()
					implot.PlotLineFloatPtrInt(name, &samples[0], int32(len(samples)))
				}
				implot.EndPlot()
			}
			imgui.EndTabItem()
		}

		imgui.EndTabBar()
	}

	imgui.End()
}
