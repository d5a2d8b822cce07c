package profiler

import (
	"log"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"
)

// Counters are the per-frame figures the caller reports alongside each tick.
type Counters struct {
	Tweens    int    // pending transitions in the registry
	Instances int    // nodes drawn this frame
	Uploaded  uint64 // bytes written to the GPU this frame
}

// Sample is one logged window of statistics.
type Sample struct {
	FPS       float64
	Heap      uint64 // live heap bytes
	AllocRate uint64 // heap bytes allocated per second over the window
	Sys       uint64 // bytes obtained from the OS
	GCCount   uint32
	LastPause time.Duration
	MaxPause  time.Duration
	Counters  Counters
}

// Profiler tracks frame rate, memory and carousel counters.
// Outputs stats to the log at a fixed interval.
type Profiler struct {
	frameCount     int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64

	readMemStats func(*runtime.MemStats)
	last         Sample
}

// NewProfiler creates a new Profiler. The window starts on the first Tick; the interval
// defaults to 1 second.
//
// Parameters:
//   - interval: how often a sample is logged; values <= 0 mean one second
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(interval time.Duration) *Profiler {
	if interval <= 0 {
		interval = time.Second
	}
	return &Profiler{
		updateInterval: interval,
		readMemStats:   runtime.ReadMemStats,
	}
}

// Tick should be called once per frame.
// Logs a sample when the interval has elapsed since the previous one.
//
// Parameters:
//   - now: the current wall time
//   - c: the counters of the frame just drawn
//
// Returns:
//   - Sample: the logged sample, zero when nothing was logged
//   - bool: true if stats were logged this tick
func (p *Profiler) Tick(now time.Time, c Counters) (Sample, bool) {
	if p.lastTime.IsZero() {
		p.lastTime = now
		p.frameCount = 0
		return Sample{}, false
	}

	p.frameCount++
	elapsed := now.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return Sample{}, false
	}

	p.readMemStats(&p.memStats)
	s := Sample{
		FPS:      float64(p.frameCount) / elapsed.Seconds(),
		Heap:     p.memStats.Alloc,
		Sys:      p.memStats.Sys,
		GCCount:  p.memStats.NumGC,
		Counters: c,
	}
	if p.memStats.TotalAlloc >= p.lastTotalAlloc {
		s.AllocRate = uint64(float64(p.memStats.TotalAlloc-p.lastTotalAlloc) / elapsed.Seconds())
	}

	if gcCount := p.memStats.NumGC; gcCount > 0 {
		// PauseNs is a circular buffer of the last 256 pauses
		s.LastPause = time.Duration(p.memStats.PauseNs[(gcCount-1)%256])
		start := p.lastGCCount
		if gcCount-start > 256 {
			start = gcCount - 256
		}
		for i := start; i < gcCount; i++ {
			if pause := time.Duration(p.memStats.PauseNs[i%256]); pause > s.MaxPause {
				s.MaxPause = pause
			}
		}
	}

	log.Printf("[Profiler] FPS: %.2f | Heap: %s | Alloc Rate: %s/s | GC: %d (last: %s, max: %s) | Sys: %s | Tweens: %d | Instances: %d | Upload: %s",
		s.FPS, humanize.Bytes(s.Heap), humanize.Bytes(s.AllocRate), s.GCCount, s.LastPause, s.MaxPause,
		humanize.Bytes(s.Sys), c.Tweens, c.Instances, humanize.Bytes(c.Uploaded))

	p.frameCount = 0
	p.lastTime = now
	p.lastGCCount = p.memStats.NumGC
	p.lastTotalAlloc = p.memStats.TotalAlloc
	p.last = s
	return s, true
}

// Reset restarts the window on the next Tick. Used when profiling is toggled back on.
func (p *Profiler) Reset() {
	p.lastTime = time.Time{}
	p.frameCount = 0
}

// Last returns the most recently logged sample.
func (p *Profiler) Last() Sample {
	return p.last
}
