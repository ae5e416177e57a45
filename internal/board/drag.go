package board

import (
	"github.com/zenzaizenzai/ShiftPatch/internal/models"
	"github.com/zenzaizenzai/ShiftPatch/internal/timeutil"
)

type DragMode int

const (
	DragMove DragMode = iota
	DragResizeStart
	DragResizeEnd
)

func (m DragMode) String() string {
	switch m {
	case DragResizeStart:
		return "resize-start"
	case DragResizeEnd:
		return "resize-end"
	default:
		return "move"
	}
}

// ShiftDrag is the in-progress manipulation of one shift. It captures the
// pre-drag reference values at press time; every pointer move recomputes the
// shift's times from the pointer displacement against those origins, so the
// drag stays stable no matter how many intermediate updates were applied.
type ShiftDrag struct {
	ShiftID        string
	Mode           DragMode
	OriginY        int
	OriginTime     int // start minutes, or end minutes for DragResizeEnd
	OriginDuration int
}

// ColumnDrag is the in-progress width adjustment of one department column.
// It is pure presentation state and never touches shift data.
type ColumnDrag struct {
	DeptID      string
	OriginX     int
	OriginWidth int
}

// BeginShiftDrag captures a shift's reference values at pointer press.
func BeginShiftDrag(s models.Shift, mode DragMode, pointerY int) ShiftDrag {
	start := timeutil.ToMinutes(s.StartTime)
	end := timeutil.ToMinutes(s.EndTime)
	origin := start
	if mode == DragResizeEnd {
		origin = end
	}
	return ShiftDrag{
		ShiftID:        s.ShiftID,
		Mode:           mode,
		OriginY:        pointerY,
		OriginTime:     origin,
		OriginDuration: end - start,
	}
}

// Apply recomputes the dragged shift's times for the current pointer position
// and returns a new collection with only that shift replaced. The pointer
// displacement is converted to minutes, snapped, then clamped to the board
// window; a move preserves duration, a resize preserves the opposite edge and
// keeps at least MinShiftMinutes between the edges.
func (d ShiftDrag) Apply(cfg Config, shifts []models.Shift, pointerY int) []models.Shift {
	deltaMinutes := timeutil.Snap(float64(pointerY-d.OriginY)/cfg.PxPerMin, cfg.SnapInterval)
	return d.applyDelta(cfg, shifts, deltaMinutes)
}

// applyDelta is the pixel-free core of Apply; keyboard nudges feed snapped
// minute deltas into it directly.
func (d ShiftDrag) applyDelta(cfg Config, shifts []models.Shift, deltaMinutes int) []models.Shift {
	out := make([]models.Shift, len(shifts))
	for i, s := range shifts {
		if s.ShiftID != d.ShiftID {
			out[i] = s
			continue
		}

		newStart := timeutil.ToMinutes(s.StartTime)
		newEnd := timeutil.ToMinutes(s.EndTime)

		switch d.Mode {
		case DragMove:
			newStart = clamp(d.OriginTime+deltaMinutes, cfg.OpenMinutes(), cfg.CloseMinutes()-d.OriginDuration)
			newEnd = newStart + d.OriginDuration
		case DragResizeStart:
			newStart = clamp(d.OriginTime+deltaMinutes, cfg.OpenMinutes(), newEnd-cfg.MinShiftMinutes)
		case DragResizeEnd:
			newEnd = clamp(d.OriginTime+deltaMinutes, newStart+cfg.MinShiftMinutes, cfg.CloseMinutes())
		}

		s.StartTime = timeutil.ToClock(newStart)
		s.EndTime = timeutil.ToClock(newEnd)
		out[i] = s
	}
	return out
}

// Apply returns the column's new width for the current pointer position,
// floored at the configured minimum.
func (d ColumnDrag) Apply(cfg Config, pointerX int) int {
	w := d.OriginWidth + pointerX - d.OriginX
	if w < cfg.MinColumnWidth {
		return cfg.MinColumnWidth
	}
	return w
}
