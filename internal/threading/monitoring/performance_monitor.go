package monitoring

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// smoothing is the weight of the newest sample in the running averages.
const smoothing = 0.1

// PerformanceMonitor tracks frame, render and movement metrics
type PerformanceMonitor struct {
	// Frame metrics
	frameCount atomic.Uint64
	frameTime  atomic.Uint64 // nanoseconds

	// Rendering metrics
	renderTime      atomic.Uint64
	columnsRendered atomic.Uint64

	// Simulation metrics
	tickCount    atomic.Uint64
	blockedMoves atomic.Uint64

	// Statistics
	mutex         sync.RWMutex
	avgFrameTime  float64
	avgRenderTime float64
	startTime     time.Time

	// Configuration
	enableDetailed bool
	minFPS         float64
	maxMemoryMB    float64
}

// NewPerformanceMonitor creates a monitor that alerts below 30 FPS or above 500MB.
func NewPerformanceMonitor() *PerformanceMonitor {
	return NewPerformanceMonitorWithThresholds(30, 500)
}

// NewPerformanceMonitorWithThresholds creates a monitor with explicit alert thresholds.
func NewPerformanceMonitorWithThresholds(minFPS, maxMemoryMB float64) *PerformanceMonitor {
	return &PerformanceMonitor{
		startTime:      time.Now(),
		enableDetailed: true,
		minFPS:         minFPS,
		maxMemoryMB:    maxMemoryMB,
	}
}

// FrameTimer helps measure frame timing
type FrameTimer struct {
	monitor   *PerformanceMonitor
	startTime time.Time
}

// StartFrame begins frame timing
func (pm *PerformanceMonitor) StartFrame() *FrameTimer {
	return &FrameTimer{
		monitor:   pm,
		startTime: time.Now(),
	}
}

// EndFrame completes frame timing
func (ft *FrameTimer) EndFrame() {
	ft.monitor.recordFrame(time.Since(ft.startTime))
}

func (pm *PerformanceMonitor) recordFrame(d time.Duration) {
	pm.frameTime.Store(uint64(d.Nanoseconds()))
	pm.frameCount.Add(1)

	pm.mutex.Lock()
	if pm.enableDetailed {
		pm.avgFrameTime = runningAverage(pm.avgFrameTime, float64(d.Nanoseconds()))
	}
	pm.mutex.Unlock()
}

// RenderTimer measures one full frame of ray casting and column shading
type RenderTimer struct {
	monitor   *PerformanceMonitor
	startTime time.Time
}

// StartRender begins render timing
func (pm *PerformanceMonitor) StartRender() *RenderTimer {
	return &RenderTimer{
		monitor:   pm,
		startTime: time.Now(),
	}
}

// EndRender completes render timing for a frame of the given column count
func (rt *RenderTimer) EndRender(columns int) {
	rt.monitor.recordRender(time.Since(rt.startTime), columns)
}

func (pm *PerformanceMonitor) recordRender(d time.Duration, columns int) {
	pm.renderTime.Store(uint64(d.Nanoseconds()))
	pm.columnsRendered.Add(uint64(columns))

	pm.mutex.Lock()
	if pm.enableDetailed {
		pm.avgRenderTime = runningAverage(pm.avgRenderTime, float64(d.Nanoseconds()))
	}
	pm.mutex.Unlock()
}

func runningAverage(avg, sample float64) float64 {
	if avg == 0 {
		return sample
	}
	return avg + smoothing*(sample-avg)
}

// RecordTick counts one simulation update
func (pm *PerformanceMonitor) RecordTick() {
	pm.tickCount.Add(1)
}

// RecordBlockedMove counts one movement step rejected by collision
func (pm *PerformanceMonitor) RecordBlockedMove() {
	pm.blockedMoves.Add(1)
}

// FrameMetrics is a snapshot of the headline numbers
type FrameMetrics struct {
	FramesPerSecond float64
	AvgFrameTime    time.Duration
	AvgRenderTime   time.Duration
	Frames          uint64
	Ticks           uint64
	BlockedMoves    uint64
	MemoryUsageMB   uint64
}

// GetCurrentMetrics returns current performance metrics
func (pm *PerformanceMonitor) GetCurrentMetrics() FrameMetrics {
	pm.mutex.RLock()
	avgFrame, avgRender := pm.avgFrameTime, pm.avgRenderTime
	pm.mutex.RUnlock()

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	return FrameMetrics{
		FramesPerSecond: fps(pm.frameTime.Load()),
		AvgFrameTime:    time.Duration(avgFrame),
		AvgRenderTime:   time.Duration(avgRender),
		Frames:          pm.frameCount.Load(),
		Ticks:           pm.tickCount.Load(),
		BlockedMoves:    pm.blockedMoves.Load(),
		MemoryUsageMB:   memStats.Alloc / 1024 / 1024,
	}
}

func fps(frameNanos uint64) float64 {
	if frameNanos == 0 {
		return 0
	}
	return float64(time.Second) / float64(frameNanos)
}

// GetDetailedStats returns detailed performance statistics
func (pm *PerformanceMonitor) GetDetailedStats() map[string]interface{} {
	pm.mutex.RLock()
	defer pm.mutex.RUnlock()

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	frames := pm.frameCount.Load()
	columnsPerFrame := 0.0
	if frames > 0 {
		columnsPerFrame = float64(pm.columnsRendered.Load()) / float64(frames)
	}

	return map[string]interface{}{
		"uptime_seconds":     time.Since(pm.startTime).Seconds(),
		"frame_count":        frames,
		"avg_frame_time_ms":  pm.avgFrameTime / 1e6,
		"avg_render_time_ms": pm.avgRenderTime / 1e6,
		"current_fps":        fps(pm.frameTime.Load()),
		"columns_rendered":   pm.columnsRendered.Load(),
		"columns_per_frame":  columnsPerFrame,
		"tick_count":         pm.tickCount.Load(),
		"blocked_moves":      pm.blockedMoves.Load(),
		"memory_alloc_mb":    memStats.Alloc / 1024 / 1024,
		"memory_sys_mb":      memStats.Sys / 1024 / 1024,
		"gc_cycles":          memStats.NumGC,
		"cpu_cores":          runtime.NumCPU(),
		"goroutines":         runtime.NumGoroutine(),
	}
}

// PerformanceAlert represents a performance warning
type PerformanceAlert struct {
	Type      string
	Message   string
	Value     float64
	Threshold float64
	Timestamp time.Time
}

// CheckPerformanceAlerts checks for performance issues and returns alerts
func (pm *PerformanceMonitor) CheckPerformanceAlerts() []PerformanceAlert {
	alerts := make([]PerformanceAlert, 0)
	currentTime := time.Now()

	if frameTime := pm.frameTime.Load(); frameTime > 0 {
		if current := fps(frameTime); current < pm.minFPS {
			alerts = append(alerts, PerformanceAlert{
				Type:      "low_fps",
				Message:   "Frame rate is below target",
				Value:     current,
				Threshold: pm.minFPS,
				Timestamp: currentTime,
			})
		}
	}

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)
	memoryMB := float64(memStats.Alloc) / 1024 / 1024
	if memoryMB > pm.maxMemoryMB {
		alerts = append(alerts, PerformanceAlert{
			Type:      "high_memory",
			Message:   "Memory usage is above limit",
			Value:     memoryMB,
			Threshold: pm.maxMemoryMB,
			Timestamp: currentTime,
		})
	}

	return alerts
}

// EnableDetailedLogging enables/disables running averages
func (pm *PerformanceMonitor) EnableDetailedLogging(enabled bool) {
	pm.mutex.Lock()
	defer pm.mutex.Unlock()
	pm.enableDetailed = enabled
}

// Reset resets all performance counters
func (pm *PerformanceMonitor) Reset() {
	pm.frameCount.Store(0)
	pm.frameTime.Store(0)
	pm.renderTime.Store(0)
	pm.columnsRendered.Store(0)
	pm.tickCount.Store(0)
	pm.blockedMoves.Store(0)

	pm.mutex.Lock()
	pm.avgFrameTime = 0
	pm.avgRenderTime = 0
	pm.startTime = time.Now()
	pm.mutex.Unlock()
}

// ProfiledFunction times fn and records it as a "frame" or "render" sample. Other
// names are timed without being recorded.
func (pm *PerformanceMonitor) ProfiledFunction(name string, fn func()) time.Duration {
	start := time.Now()
	fn()
	duration := time.Since(start)

	switch name {
	case "frame":
		pm.recordFrame(duration)
	case "render":
		pm.recordRender(duration, 0)
	}

	return duration
}
