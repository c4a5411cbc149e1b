package appointment

import (
	"testing"
	"time"
)

func TestDayWindow(t *testing.T) {
	ts := time.Date(2030, 6, 1, 14, 37, 12, 0, time.Local)

	start, end := DayWindow(ts)

	wantStart := time.Date(2030, 6, 1, 0, 0, 0, 0, time.Local)
	wantEnd := time.Date(2030, 6, 2, 0, 0, 0, 0, time.Local)
	if !start.Equal(wantStart) {
		t.Errorf("expected start %v, got %v", wantStart, start)
	}
	if !end.Equal(wantEnd) {
		t.Errorf("expected end %v, got %v", wantEnd, end)
	}
}

func TestDayWindow_MidnightIsItsOwnDay(t *testing.T) {
	midnight := time.Date(2030, 6, 1, 0, 0, 0, 0, time.Local)

	start, end := DayWindow(midnight)

	if !start.Equal(midnight) {
		t.Errorf("expected start %v, got %v", midnight, start)
	}
	if !end.Equal(midnight.AddDate(0, 0, 1)) {
		t.Errorf("expected end %v, got %v", midnight.AddDate(0, 0, 1), end)
	}
}

func TestSpacingWindow(t *testing.T) {
	ts := time.Date(2030, 6, 1, 10, 0, 0, 0, time.Local)

	from, to := SpacingWindow(ts)

	if !from.Equal(ts.Add(-2 * time.Hour)) {
		t.Errorf("expected from %v, got %v", ts.Add(-2*time.Hour), from)
	}
	if !to.Equal(ts.Add(2 * time.Hour)) {
		t.Errorf("expected to %v, got %v", ts.Add(2*time.Hour), to)
	}
}
