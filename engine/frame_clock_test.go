package engine

import (
	"sync"
	"testing"
	"time"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestFrameClockTicks(t *testing.T) {
	mock := NewMockTimeProvider(epoch)
	clock := NewFrameClock(mock, 0)

	if dt := clock.Tick(); dt != 0 {
		t.Errorf("Expected first tick 0, got %v", dt)
	}

	mock.Advance(16 * time.Millisecond)
	if dt := clock.Tick(); dt != 0.016 {
		t.Errorf("Expected 0.016, got %v", dt)
	}

	mock.Advance(5 * time.Second)
	if dt := clock.Tick(); dt != 0.1 {
		t.Errorf("Expected clamp to 0.1, got %v", dt)
	}
	if clock.Clamped() != 1 {
		t.Errorf("Expected 1 clamped tick, got %d", clock.Clamped())
	}

	mock.SetTime(epoch)
	if dt := clock.Tick(); dt != 0 {
		t.Errorf("Expected backwards clock to tick 0, got %v", dt)
	}
}

func TestFrameClockCustomMax(t *testing.T) {
	mock := NewMockTimeProvider(epoch)
	clock := NewFrameClock(mock, 50*time.Millisecond)
	clock.Tick()
	mock.Advance(time.Second)
	if dt := clock.Tick(); dt != 0.05 {
		t.Errorf("Expected 0.05, got %v", dt)
	}
}

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	if d := t2.Sub(t1); d < 10*time.Millisecond {
		t.Errorf("Expected at least 10ms difference, got %v", d)
	}
}

func TestMockTimeProviderConcurrency(t *testing.T) {
	mock := NewMockTimeProvider(epoch)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = mock.Now()
			}
		}()
	}
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				mock.Advance(time.Millisecond)
			}
		}()
	}
	wg.Wait()

	if want := epoch.Add(250 * time.Millisecond); !mock.Now().Equal(want) {
		t.Errorf("Expected %v after concurrent advances, got %v", want, mock.Now())
	}
}

func TestTimeProviderInterface(t *testing.T) {
	var _ TimeProvider = &MonotonicTimeProvider{}
	var _ TimeProvider = &MockTimeProvider{}
}
