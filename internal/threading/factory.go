package threading

import (
	"raycaster/internal/threading/monitoring"
	"raycaster/internal/threading/rendering"
)

// ThreadingComponents holds all threading-related components
type ThreadingComponents struct {
	ParallelRenderer   *rendering.ParallelRenderer
	PerformanceMonitor *monitoring.PerformanceMonitor
}

// NewThreadingComponents creates the column worker pool and the performance monitor.
// A worker count of 0 uses one worker per CPU.
func NewThreadingComponents(workers int, minFPS, maxMemoryMB float64) *ThreadingComponents {
	return &ThreadingComponents{
		ParallelRenderer:   rendering.NewParallelRenderer(workers),
		PerformanceMonitor: monitoring.NewPerformanceMonitorWithThresholds(minFPS, maxMemoryMB),
	}
}

// Shutdown gracefully shuts down all threading components
func (tc *ThreadingComponents) Shutdown() {
	if tc.ParallelRenderer != nil {
		tc.ParallelRenderer.Stop()
	}
	if tc.PerformanceMonitor != nil {
		tc.PerformanceMonitor.Reset()
	}
}

// GetPerformanceMetrics returns current performance metrics
func (tc *ThreadingComponents) GetPerformanceMetrics() monitoring.FrameMetrics {
	return tc.PerformanceMonitor.GetCurrentMetrics()
}

// GetDetailedPerformanceStats returns detailed performance statistics
func (tc *ThreadingComponents) GetDetailedPerformanceStats() map[string]interface{} {
	return tc.PerformanceMonitor.GetDetailedStats()
}

// CheckPerformanceAlerts returns any performance warnings
func (tc *ThreadingComponents) CheckPerformanceAlerts() []monitoring.PerformanceAlert {
	return tc.PerformanceMonitor.CheckPerformanceAlerts()
}
