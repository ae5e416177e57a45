// Package timeutil converts between the board's "HH:MM" wall-clock strings and
// integer minutes from midnight. Hours may exceed 23 to represent times past
// midnight within one board day, so conversions never apply a modulo.
package timeutil

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	DateFormat = "2006-01-02"
)

// Weekdays holds the requirement day-of-week labels, Monday first.
var Weekdays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// ToMinutes parses "HH:MM" into minutes since midnight. Callers are assumed to
// pass well-formed values; malformed components count as zero.
func ToMinutes(clock string) int {
	hh, mm, _ := strings.Cut(clock, ":")
	hours, _ := strconv.Atoi(hh)
	minutes, _ := strconv.Atoi(mm)
	return hours*60 + minutes
}

// ToClock is the inverse of ToMinutes. Hours are not wrapped at 24, so 1500
// renders as "25:00".
func ToClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Snap rounds minutes to the nearest multiple of interval, ties rounding up.
func Snap(minutes float64, interval int) int {
	return int(math.Floor(minutes/float64(interval)+0.5)) * interval
}

// WeekdayOf returns the Monday-first label for a YYYY-MM-DD date. An
// unparseable date yields the empty string, which matches no requirement.
func WeekdayOf(date string) string {
	d, err := time.Parse(DateFormat, date)
	if err != nil {
		return ""
	}
	return Weekdays[(int(d.Weekday())+6)%7]
}

func Today() string {
	return time.Now().Format(DateFormat)
}
