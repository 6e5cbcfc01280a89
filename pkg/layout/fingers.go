package layout

import (
	"slices"

	"github.com/matzehuels/steeb/pkg/config"
	"github.com/matzehuels/steeb/pkg/geom"
)

// ColumnOffsets turns stagger offsets into absolute per-column vertical
// offsets. The result has len(stagger)+1 entries. Offset i shifts every
// column at or before i, so entry j is the suffix sum of stagger[j:]. The
// profile is then shifted so its minimum is exactly zero.
func ColumnOffsets(stagger []float64) []float64 {
	out := make([]float64, len(stagger)+1)
	for j := len(stagger) - 1; j >= 0; j-- {
		out[j] = out[j+1] + stagger[j]
	}

	lowest := slices.Min(out)
	for i := range out {
		out[i] -= lowest
	}
	return out
}

// FingerLayout is the finger block of one hand.
type FingerLayout struct {
	Offsets []float64
	Slots   []KeySlot

	// Top and bottom keys of the innermost column; the thumb cluster and the
	// mirrored hand are positioned from these.
	InnerUpper geom.Point
	InnerLower geom.Point
}

// Fingers places every finger key of one hand, column-major.
func Fingers(cfg config.LayoutConfig) FingerLayout {
	offsets := ColumnOffsets(cfg.Stagger)
	l := FingerLayout{
		Offsets: offsets,
		Slots:   make([]KeySlot, 0, len(offsets)*cfg.Rows),
	}

	inner := len(offsets) - 1
	for c, off := range offsets {
		for r := 0; r < cfg.Rows; r++ {
			center := geom.Pt(
				(float64(c)+0.5)*cfg.Spacing.Width,
				(float64(r)+0.5)*cfg.Spacing.Height+off,
			)
			if c == inner && r == 0 {
				l.InnerUpper = center
			}
			if c == inner && r == cfg.Rows-1 {
				l.InnerLower = center
			}
			l.Slots = append(l.Slots, KeySlot{
				Kind:   FingerKey,
				Column: c,
				Row:    r,
				Center: center,
				Size:   1,
			})
		}
	}
	return l
}
