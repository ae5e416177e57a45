package board

import (
	"github.com/zenzaizenzai/ShiftPatch/internal/models"
	"github.com/zenzaizenzai/ShiftPatch/internal/timeutil"
)

// Box is a shift's vertical placement inside its department column.
type Box struct {
	Top    int
	Height int
}

// ShiftBox maps a shift's time range onto the shared vertical scale. Height is
// floored at MinShiftHeight so very short shifts stay visible and grabbable.
func (c Config) ShiftBox(s models.Shift) Box {
	start := timeutil.ToMinutes(s.StartTime)
	end := timeutil.ToMinutes(s.EndTime)
	top := int(float64(start-c.OpenMinutes()) * c.PxPerMin)
	height := int(float64(end-start) * c.PxPerMin)
	if height < c.MinShiftHeight {
		height = c.MinShiftHeight
	}
	return Box{Top: top, Height: height}
}

// MinutesAt converts a vertical offset from the top of the scheduling area
// into absolute minutes from midnight, unsnapped.
func (c Config) MinutesAt(offsetY int) float64 {
	return float64(c.OpenMinutes()) + float64(offsetY)/c.PxPerMin
}

// Zone identifies which affordance of a rendered shift a pointer press lands
// on. Edge bands win over the body so resize stays reachable on short shifts.
type Zone int

const (
	ZoneNone Zone = iota
	ZoneBody
	ZoneTopEdge
	ZoneBottomEdge
)

// HitZone resolves a vertical position against a shift box.
func (c Config) HitZone(b Box, y int) Zone {
	if y < b.Top || y >= b.Top+b.Height {
		return ZoneNone
	}
	if y < b.Top+c.EdgePx {
		return ZoneTopEdge
	}
	if y >= b.Top+b.Height-c.EdgePx {
		return ZoneBottomEdge
	}
	return ZoneBody
}

// DragModeFor maps a hit zone to the gesture it starts.
func (z Zone) DragModeFor() (DragMode, bool) {
	switch z {
	case ZoneBody:
		return DragMove, true
	case ZoneTopEdge:
		return DragResizeStart, true
	case ZoneBottomEdge:
		return DragResizeEnd, true
	default:
		return 0, false
	}
}

// ColumnWidths resolves the width of every department column. A manual
// override from a column resize wins; the remaining columns share the leftover
// space equally, floored at MinColumnWidth.
func (c Config) ColumnWidths(departments []models.Department, overrides map[string]int, totalWidth int) []int {
	widths := make([]int, len(departments))
	remaining := totalWidth
	flex := 0
	for i, d := range departments {
		if w, ok := overrides[d.DeptID]; ok {
			if w < c.MinColumnWidth {
				w = c.MinColumnWidth
			}
			widths[i] = w
			remaining -= w
		} else {
			flex++
		}
	}
	if flex == 0 {
		return widths
	}
	share := remaining / flex
	if share < c.MinColumnWidth {
		share = c.MinColumnWidth
	}
	for i := range widths {
		if widths[i] == 0 {
			widths[i] = share
		}
	}
	return widths
}

// AvailabilityWarning reports whether a shift is scheduled outside its staff
// member's personal availability window. Informational only; it never blocks
// an edit.
func AvailabilityWarning(s models.Shift, st models.Staff) bool {
	return timeutil.ToMinutes(s.StartTime) < timeutil.ToMinutes(st.StartTime) ||
		timeutil.ToMinutes(s.EndTime) > timeutil.ToMinutes(st.EndTime)
}
