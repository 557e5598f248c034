package profiler

import (
	"testing"
	"time"
)

func TestTickRespectsInterval(t *testing.T) {
	p := NewProfiler()
	p.SetUpdateInterval(time.Hour)

	for i := 0; i < 10; i++ {
		if p.Tick() {
			t.Fatalf("expected no stats record before the interval elapsed")
		}
	}
}

func TestTickLogsAfterInterval(t *testing.T) {
	p := NewProfiler()
	p.SetUpdateInterval(time.Nanosecond)

	time.Sleep(time.Millisecond)
	if !p.Tick() {
		t.Fatalf("expected a stats record once the interval elapsed")
	}
	if p.frameCount != 0 {
		t.Fatalf("expected the frame counter to reset after logging, got %d", p.frameCount)
	}
}
