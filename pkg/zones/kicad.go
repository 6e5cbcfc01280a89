package zones

import (
	"bufio"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/matzehuels/steeb/pkg/errors"
	"github.com/matzehuels/steeb/pkg/geom"
)

// Fill parameters shared by every emitted zone.
const (
	HatchEdge          = 0.5
	Clearance          = 0.5
	MinThickness       = 0.25
	ThermalGap         = 0.5
	ThermalBridgeWidth = 0.5
)

// Option configures [Write].
type Option func(*writer)

type writer struct {
	newID func() string
}

// WithIDGenerator replaces the random UUID used for each zone's tstamp.
func WithIDGenerator(f func() string) Option {
	return func(w *writer) { w.newID = f }
}

// Write prints one KiCad zone record per definition. Each named path becomes a
// polygon; names missing from found produce an empty polygon.
func Write(out io.Writer, defs []Def, found map[string][]geom.Point, opts ...Option) error {
	w := writer{newID: uuid.NewString}
	for _, opt := range opts {
		opt(&w)
	}

	bw := bufio.NewWriter(out)
	f := geom.Fmt
	for _, d := range defs {
		fmt.Fprintf(bw, "  (zone (net %d) (net_name %q) (layer %q) (tstamp %s) (hatch edge %s)\n",
			d.Net, d.NetName, d.Layer, w.newID(), f(HatchEdge))
		if d.HasPriority {
			fmt.Fprintf(bw, "    (priority %d)\n", d.Priority)
		}
		fmt.Fprintf(bw, "    (connect_pads (clearance %s))\n", f(Clearance))
		fmt.Fprintf(bw, "    (min_thickness %s) (filled_areas_thickness no)\n", f(MinThickness))
		fmt.Fprintf(bw, "    (fill (thermal_gap %s) (thermal_bridge_width %s))\n", f(ThermalGap), f(ThermalBridgeWidth))

		for _, name := range d.Names {
			bw.WriteString("    (polygon\n")
			bw.WriteString("      (pts\n")
			for _, p := range found[name] {
				fmt.Fprintf(bw, "        (xy %s %s)\n", f(p.X), f(p.Y))
			}
			bw.WriteString("      )\n")
			bw.WriteString("    )\n")
		}
		bw.WriteString("  )\n")
	}

	if err := bw.Flush(); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "write zones")
	}
	return nil
}
