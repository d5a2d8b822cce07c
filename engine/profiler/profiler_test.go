package profiler

import (
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeMemStats(alloc, total uint64, pauses ...uint64) func(*runtime.MemStats) {
	return func(m *runtime.MemStats) {
		m.Alloc = alloc
		m.TotalAlloc = total
		m.Sys = 4 * alloc
		m.NumGC = uint32(len(pauses))
		for i, p := range pauses {
			m.PauseNs[i%256] = p
		}
	}
}

func TestTickLogsOncePerInterval(t *testing.T) {
	p := NewProfiler(time.Second)
	p.readMemStats = fakeMemStats(1<<20, 2<<20, 1000, 5000, 2000)

	start := time.Unix(100, 0)
	_, logged := p.Tick(start, Counters{})
	assert.False(t, logged, "first tick only opens the window")

	for i := 1; i < 60; i++ {
		_, logged = p.Tick(start.Add(time.Duration(i)*time.Second/60), Counters{})
		require.False(t, logged)
	}

	s, logged := p.Tick(start.Add(time.Second), Counters{Tweens: 3, Instances: 7, Uploaded: 640})
	require.True(t, logged)
	assert.InDelta(t, 60, s.FPS, 1e-9)
	assert.Equal(t, uint64(1<<20), s.Heap)
	assert.Equal(t, uint64(2<<20), s.AllocRate)
	assert.Equal(t, uint32(3), s.GCCount)
	assert.Equal(t, 2*time.Microsecond, s.LastPause)
	assert.Equal(t, 5*time.Microsecond, s.MaxPause)
	assert.Equal(t, Counters{Tweens: 3, Instances: 7, Uploaded: 640}, s.Counters)
	assert.Equal(t, s, p.Last())
}

func TestAllocRateUsesDelta(t *testing.T) {
	p := NewProfiler(time.Second)
	start := time.Unix(0, 0)

	p.readMemStats = fakeMemStats(10, 1000)
	p.Tick(start, Counters{})
	_, logged := p.Tick(start.Add(time.Second), Counters{})
	require.True(t, logged)

	p.readMemStats = fakeMemStats(10, 3000)
	s, logged := p.Tick(start.Add(3*time.Second), Counters{})
	require.True(t, logged)
	assert.Equal(t, uint64(1000), s.AllocRate)
	assert.InDelta(t, 0.5, s.FPS, 1e-9)
}

func TestResetRestartsWindow(t *testing.T) {
	p := NewProfiler(0)
	p.readMemStats = fakeMemStats(1, 1)
	start := time.Unix(0, 0)

	p.Tick(start, Counters{})
	p.Reset()

	_, logged := p.Tick(start.Add(5*time.Second), Counters{})
	assert.False(t, logged, "window reopens after reset")
	_, logged = p.Tick(start.Add(6*time.Second), Counters{})
	assert.True(t, logged)
}
