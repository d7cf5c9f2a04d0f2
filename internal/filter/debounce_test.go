package filter

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncer_CoalescesBurst(t *testing.T) {
	var calls atomic.Int32
	got := make(chan Criteria, 10)

	d := NewDebouncer(DefaultQuiescence, func(c Criteria) {
		calls.Add(1)
		got <- c
	})
	defer d.Stop()

	keywords := []string{"雨", "雨傘", "傘", "手", "手錶"}
	for _, kw := range keywords {
		d.Trigger(Criteria{Keyword: kw})
		time.Sleep(20 * time.Millisecond)
	}

	select {
	case c := <-got:
		if c.Keyword != "手錶" {
			t.Errorf("evaluated keyword = %q, want last value 手錶", c.Keyword)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("debounced function never ran")
	}

	time.Sleep(2 * DefaultQuiescence)
	if n := calls.Load(); n != 1 {
		t.Errorf("function ran %d times, want 1", n)
	}
}

func TestDebouncer_SeparateBursts(t *testing.T) {
	var calls atomic.Int32
	d := NewDebouncer(30*time.Millisecond, func(int) { calls.Add(1) })
	defer d.Stop()

	d.Trigger(1)
	time.Sleep(150 * time.Millisecond)
	d.Trigger(2)
	time.Sleep(150 * time.Millisecond)

	if n := calls.Load(); n != 2 {
		t.Errorf("function ran %d times, want 2", n)
	}
}

func TestDebouncer_Cancel(t *testing.T) {
	var calls atomic.Int32
	d := NewDebouncer(30*time.Millisecond, func(int) { calls.Add(1) })

	d.Trigger(1)
	if !d.Pending() {
		t.Error("Pending() = false after Trigger")
	}
	d.Cancel()
	if d.Pending() {
		t.Error("Pending() = true after Cancel")
	}

	time.Sleep(100 * time.Millisecond)
	if n := calls.Load(); n != 0 {
		t.Errorf("cancelled function ran %d times", n)
	}
}

func TestDebouncer_Flush(t *testing.T) {
	var mu sync.Mutex
	var seen []int
	d := NewDebouncer(time.Hour, func(v int) {
		mu.Lock()
		seen = append(seen, v)
		mu.Unlock()
	})
	defer d.Stop()

	if d.Flush() {
		t.Error("Flush() with nothing pending should report false")
	}

	d.Trigger(1)
	d.Trigger(2)
	if !d.Flush() {
		t.Fatal("Flush() should report a pending call")
	}

	mu.Lock()
	defer mu.Unlock()
	if len(seen) != 1 || seen[0] != 2 {
		t.Errorf("flushed values = %v, want [2]", seen)
	}
}

func TestDebouncer_StopIgnoresTriggers(t *testing.T) {
	var calls atomic.Int32
	d := NewDebouncer(10*time.Millisecond, func(int) { calls.Add(1) })

	d.Stop()
	d.Trigger(1)
	time.Sleep(60 * time.Millisecond)

	if n := calls.Load(); n != 0 {
		t.Errorf("stopped debouncer ran %d times", n)
	}
}

func TestNewDebouncer_DefaultWindow(t *testing.T) {
	d := NewDebouncer(0, func(int) {})
	if d.window != DefaultQuiescence {
		t.Errorf("window = %v, want %v", d.window, DefaultQuiescence)
	}
}
