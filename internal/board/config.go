// Package board implements the shift board: the drag interaction state
// machine, the time-grid layout model, and the controller that composes them
// over one date's shift collection.
package board

// Config fixes the board geometry and editing granularity. PxPerMin is the
// single shared vertical scale: every minute offset from the board open time
// maps to PxPerMin vertical units, whether those units are browser pixels or
// terminal rows.
type Config struct {
	OpenHour  int // first visible clock hour
	CloseHour int // exclusive; may exceed 24 for a past-midnight window
	PxPerMin  float64

	SnapInterval        int // minutes; every interactive edit lands on a multiple
	MinShiftMinutes     int
	DefaultShiftMinutes int

	MinColumnWidth int
	MinShiftHeight int // rendered floor so short shifts stay grabbable
	EdgePx         int // resize affordance band at the top/bottom of a shift
}

// DefaultConfig sizes the board for a terminal: two rows per hour, 06:00
// through 02:00 the next morning.
func DefaultConfig() Config {
	return Config{
		OpenHour:            6,
		CloseHour:           26,
		PxPerMin:            2.0 / 60.0,
		SnapInterval:        15,
		MinShiftMinutes:     30,
		DefaultShiftMinutes: 240,
		MinColumnWidth:      12,
		MinShiftHeight:      1,
		EdgePx:              1,
	}
}

func (c Config) OpenMinutes() int  { return c.OpenHour * 60 }
func (c Config) CloseMinutes() int { return c.CloseHour * 60 }

// BoardHeight is the total vertical extent of the scheduling area.
func (c Config) BoardHeight() int {
	return int(float64(c.CloseMinutes()-c.OpenMinutes()) * c.PxPerMin)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
