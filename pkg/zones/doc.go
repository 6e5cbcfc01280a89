// Package zones extracts copper-zone outlines from a hand-edited layout
// drawing and formats them as KiCad zone records.
//
// The drawing is expected to contain path elements whose inkscape:label
// matches the names listed in the zone definitions. [Find] walks the SVG tree
// depth first and stops as soon as every requested name has been found.
// [ParsePath] understands the absolute move, line, horizontal and vertical
// commands an editor emits for straight-edged outlines; anything else is an
// input error. [Write] prints one zone record per definition with one polygon
// per named path:
//
//	defs, err := zones.LoadDefs("zones.toml")
//	found, err := zones.Find(drawing, zones.Names(defs))
//	err = zones.Write(os.Stdout, defs, found)
package zones
