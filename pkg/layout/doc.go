// Package layout computes the key geometry of a split keyboard.
//
// The engine works in three stages, all pure functions of a
// [config.LayoutConfig]:
//
//  1. [Fingers] places every (column, row) key of one hand using the
//     cumulative stagger profile from [ColumnOffsets], and records the top and
//     bottom keys of the innermost column.
//  2. [Thumbs] places the thumb keys along an arc around the anchor returned
//     by [ThumbAnchor], which hangs off the bottom inner key.
//  3. [Compose] assembles one [Hand], derives the opposite hand as a deep
//     clone with a mirrored transform, corrects the separation for the tilt
//     foreshortening and computes the canvas-centering transform.
//
// Coordinates are millimeters in the hand's own frame (y grows downward);
// the transforms on [Hand] and [Board] place them on the canvas.
package layout
