package timeutil

import (
	"fmt"
	"testing"
)

func TestToMinutes(t *testing.T) {
	cases := []struct {
		clock string
		want  int
	}{
		{"00:00", 0},
		{"06:00", 360},
		{"13:07", 787},
		{"23:59", 1439},
		{"26:00", 1560}, // past midnight, extended board window
	}
	for _, c := range cases {
		if got := ToMinutes(c.clock); got != c.want {
			t.Errorf("ToMinutes(%q) = %d, want %d", c.clock, got, c.want)
		}
	}
}

func TestToClock_NoModulo(t *testing.T) {
	if got := ToClock(1560); got != "26:00" {
		t.Errorf("ToClock(1560) = %q, want \"26:00\"", got)
	}
	if got := ToClock(65); got != "01:05" {
		t.Errorf("ToClock(65) = %q, want \"01:05\"", got)
	}
}

func TestClockRoundTrip(t *testing.T) {
	// Round-trips must hold for the full extended window, hours 0-47.
	for h := 0; h < 48; h++ {
		for _, m := range []int{0, 1, 15, 30, 59} {
			clock := fmt.Sprintf("%02d:%02d", h, m)
			if got := ToClock(ToMinutes(clock)); got != clock {
				t.Fatalf("round trip of %q gave %q", clock, got)
			}
		}
	}
}

func TestSnap(t *testing.T) {
	cases := []struct {
		minutes  float64
		interval int
		want     int
	}{
		{787, 15, 780},  // 13:07 -> 13:00
		{788, 15, 795},  // past the midpoint rounds up
		{787.5, 15, 795},
		{0, 15, 0},
		{-22, 15, -15},
		{-22.5, 15, -15}, // ties round toward +inf, negatives included
		{454, 30, 450},
	}
	for _, c := range cases {
		if got := Snap(c.minutes, c.interval); got != c.want {
			t.Errorf("Snap(%v, %d) = %d, want %d", c.minutes, c.interval, got, c.want)
		}
	}
}

func TestSnapIdempotentAndAligned(t *testing.T) {
	for m := -600; m <= 600; m += 7 {
		for _, interval := range []int{5, 15, 30, 60} {
			s := Snap(float64(m), interval)
			if s%interval != 0 {
				t.Fatalf("Snap(%d, %d) = %d not a multiple of interval", m, interval, s)
			}
			if again := Snap(float64(s), interval); again != s {
				t.Fatalf("Snap not idempotent: Snap(%d) = %d then %d", m, s, again)
			}
		}
	}
}

func TestWeekdayOf(t *testing.T) {
	cases := []struct {
		date string
		want string
	}{
		{"2025-12-29", "Mon"},
		{"2025-12-31", "Wed"},
		{"2026-01-04", "Sun"},
		{"not-a-date", ""},
	}
	for _, c := range cases {
		if got := WeekdayOf(c.date); got != c.want {
			t.Errorf("WeekdayOf(%q) = %q, want %q", c.date, got, c.want)
		}
	}
}
