package config

import (
	"maps"
	"slices"
	"strings"

	"github.com/matzehuels/steeb/pkg/errors"
)

// Preset is a named tuning of the stagger profile and thumb anchor. Zero
// values for Tilt, Separation and the anchor offset keep the base value.
type Preset struct {
	Name        string
	Description string
	Stagger     []float64
	Tilt        float64
	Separation  float64
	Cap         Size
	Anchor      AnchorOffset
}

var presets = map[string]Preset{
	"corne": {
		Description: "Corne",
		Stagger:     []float64{4.75, 2.37, -2.37, -2.37},
		Cap:         Size{Width: 19, Height: 19},
		Anchor:      AnchorOffset{Horizontal: 7.5, Vertical: 20},
	},
	"reviung34": {
		Description: "Reviung34",
		Stagger:     []float64{3.5, 3.5, -3.5, -3.5},
		Tilt:        10,
		Cap:         Size{Width: 19.05, Height: 19.05},
	},
	"sweep": {
		Description: "Ferris Sweep, choc spacing",
		Stagger:     []float64{12, 7, -5.5, -2.5},
		Cap:         Size{Width: 18, Height: 17},
		Anchor:      AnchorOffset{Horizontal: 8, Vertical: 17.69},
	},
	"fidrildi": {
		Description: "Fidrildi, first revision",
		Stagger:     []float64{5, 3, -3, -2},
		Tilt:        12,
		Separation:  30.6,
		Cap:         Size{Width: 19, Height: 19},
		Anchor:      AnchorOffset{Horizontal: 7.27, Vertical: 20.89},
	},
	"fidrildi2": {
		Description: "Fidrildi, second revision",
		Stagger:     []float64{7, 3, -3, -3},
		Tilt:        15,
		Separation:  60,
		Cap:         Size{Width: 19, Height: 19},
		Anchor:      AnchorOffset{Horizontal: 7.27, Vertical: 22},
	},
	"fidrildi3": {
		Description: "Fidrildi, third revision",
		Stagger:     []float64{7, 3, -3, -4},
		Tilt:        20,
		Separation:  40,
		Cap:         Size{Width: 19, Height: 19},
		Anchor:      AnchorOffset{Horizontal: 7.27, Vertical: 22},
	},
	"fidrildi4": {
		Description: "Fidrildi, fourth revision",
		Stagger:     []float64{7, 3, -3, -3},
		Tilt:        20,
		Separation:  40,
		Cap:         Size{Width: 19, Height: 19},
		Anchor:      AnchorOffset{Horizontal: 7.27, Vertical: 23},
	},
	"steeb1": {
		Description: "Steeb, choc spacing, untilted",
		Stagger:     []float64{12, 7, -5, -3},
		Cap:         Size{Width: 18, Height: 17},
		Anchor:      AnchorOffset{Horizontal: 8, Vertical: 17.7},
	},
	"steeb2": {
		Description: "Steeb, choc spacing, tilted",
		Stagger:     []float64{6, 3, -3, -3},
		Tilt:        12,
		Separation:  50,
		Cap:         Size{Width: 18, Height: 17},
		Anchor:      AnchorOffset{Horizontal: 9, Vertical: 18},
	},
}

func init() {
	for name, p := range presets {
		p.Name = name
		presets[name] = p
	}
}

// Presets returns all presets sorted by name.
func Presets() []Preset {
	names := slices.Sorted(maps.Keys(presets))
	out := make([]Preset, len(names))
	for i, n := range names {
		out[i] = presets[n]
	}
	return out
}

// LookupPreset returns the preset with the given (case-insensitive) name.
func LookupPreset(name string) (Preset, bool) {
	p, ok := presets[strings.ToLower(name)]
	return p, ok
}

// Apply returns base with the preset's tuning applied. Spacing follows the
// preset cap size.
func (p Preset) Apply(base LayoutConfig) LayoutConfig {
	c := base.Clone()
	c.Stagger = slices.Clone(p.Stagger)
	c.Tilt = p.Tilt
	if p.Separation > 0 {
		c.Separation = p.Separation
	}
	if p.Cap.Width > 0 && p.Cap.Height > 0 {
		c.Cap = p.Cap
		c.Spacing = p.Cap
	}
	if p.Anchor.Horizontal != 0 || p.Anchor.Vertical != 0 {
		c.Thumb.Anchor.Offset = p.Anchor
	}
	return c
}

// FromPreset returns [Default] with the named preset applied.
func FromPreset(name string) (LayoutConfig, error) {
	p, ok := LookupPreset(name)
	if !ok {
		return LayoutConfig{}, errors.New(errors.ErrCodeInvalidPreset, "unknown preset %q (available: %s)", name, strings.Join(PresetNames(), ", "))
	}
	return p.Apply(Default()), nil
}

// PresetNames returns the sorted preset names.
func PresetNames() []string {
	return slices.Sorted(maps.Keys(presets))
}
