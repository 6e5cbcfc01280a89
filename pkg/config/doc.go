// Package config defines the parameter model of the keyboard layout engine.
//
// A [LayoutConfig] is a single immutable value holding every ergonomic and
// styling parameter: key-cap and switch sizes, row/column spacing, the
// per-column stagger profile, thumb-cluster geometry, the inter-half
// separation and the whole-hand tilt. All lengths are millimeters, all angles
// degrees.
//
// # Loading
//
// Configurations are stored as TOML. [Parse] and [Load] layer a file over
// [Default], so a file only needs the keys it changes:
//
//	stagger = [7, 3, -3, -3]
//	tilt = 15
//
//	[[thumb.keys]]
//	size = 1.5
//
// Optional thumb-key fields are resolved into concrete values once, while
// loading; the layout code never deals with missing values.
//
// # Presets
//
// [Preset] values reproduce the stagger and thumb tuning of a few well-known
// split boards. See [Presets] and [FromPreset].
package config
