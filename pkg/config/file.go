package config

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/steeb/pkg/errors"
)

// fileConfig is the TOML schema. It differs from LayoutConfig only where a
// field is optional in the file.
type fileConfig struct {
	Canvas      Size        `toml:"canvas"`
	Cap         Size        `toml:"cap"`
	Switch      Size        `toml:"switch"`
	Spacing     Size        `toml:"spacing"`
	Stagger     []float64   `toml:"stagger"`
	Rows        int         `toml:"rows"`
	Separation  float64     `toml:"separation"`
	Tilt        float64     `toml:"tilt"`
	StrokeColor string      `toml:"stroke_color"`
	StrokeWidth float64     `toml:"stroke_width"`
	Cutout      CutoutStyle `toml:"cutout_style"`
	Thumb       fileThumb   `toml:"thumb"`
}

type fileThumb struct {
	Radius float64        `toml:"radius"`
	Anchor Anchor         `toml:"anchor"`
	Keys   []fileThumbKey `toml:"keys"`
}

type fileThumbKey struct {
	Angle    *float64 `toml:"angle,omitempty"`
	Size     *float64 `toml:"size,omitempty"`
	Rotation *float64 `toml:"rotation,omitempty"`
}

func toFile(c LayoutConfig) fileConfig {
	f := fileConfig{
		Canvas:      c.Canvas,
		Cap:         c.Cap,
		Switch:      c.Switch,
		Spacing:     c.Spacing,
		Stagger:     c.Stagger,
		Rows:        c.Rows,
		Separation:  c.Separation,
		Tilt:        c.Tilt,
		StrokeColor: c.StrokeColor,
		StrokeWidth: c.StrokeWidth,
		Cutout:      c.Cutout,
		Thumb: fileThumb{
			Radius: c.Thumb.Radius,
			Anchor: c.Thumb.Anchor,
			Keys:   make([]fileThumbKey, len(c.Thumb.Keys)),
		},
	}
	for i, k := range c.Thumb.Keys {
		size, rot := k.Size, k.Rotation
		fk := fileThumbKey{Size: &size, Rotation: &rot}
		if k.Fixed {
			angle := k.Angle
			fk.Angle = &angle
		}
		f.Thumb.Keys[i] = fk
	}
	return f
}

// resolve turns the file schema into a LayoutConfig, filling in defaults for
// absent thumb-key fields.
func (f fileConfig) resolve() LayoutConfig {
	c := LayoutConfig{
		Canvas:      f.Canvas,
		Cap:         f.Cap,
		Switch:      f.Switch,
		Spacing:     f.Spacing,
		Stagger:     f.Stagger,
		Rows:        f.Rows,
		Separation:  f.Separation,
		Tilt:        f.Tilt,
		StrokeColor: f.StrokeColor,
		StrokeWidth: f.StrokeWidth,
		Cutout:      CutoutStyle(strings.ToLower(string(f.Cutout))),
		Thumb: Thumb{
			Radius: f.Thumb.Radius,
			Anchor: f.Thumb.Anchor,
			Keys:   make([]ThumbKey, len(f.Thumb.Keys)),
		},
	}
	for i, fk := range f.Thumb.Keys {
		k := ThumbKey{Rotation: DefaultThumbRotation, Size: DefaultThumbSize}
		if fk.Rotation != nil {
			k.Rotation = *fk.Rotation
		}
		if fk.Size != nil {
			k.Size = *fk.Size
		}
		if fk.Angle != nil {
			k.Angle, k.Fixed = *fk.Angle, true
		}
		c.Thumb.Keys[i] = k
	}
	return c
}

// Parse decodes TOML data layered over base and validates the result.
// Keys that do not belong to the schema are rejected.
func Parse(data []byte, base LayoutConfig) (LayoutConfig, error) {
	f := toFile(base.Clone())
	// Thumb keys are replaced as a whole; decoding into the base entries would
	// leak fields the file leaves out.
	baseKeys := f.Thumb.Keys
	f.Thumb.Keys = nil

	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return LayoutConfig{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	if !md.IsDefined("thumb", "keys") {
		f.Thumb.Keys = baseKeys
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return LayoutConfig{}, errors.New(errors.ErrCodeInvalidConfig, "unknown config keys: %s", strings.Join(keys, ", "))
	}

	c := f.resolve()
	if err := c.Validate(); err != nil {
		return LayoutConfig{}, err
	}
	return c, nil
}

// Load reads the TOML file at path and layers it over [Default].
func Load(path string) (LayoutConfig, error) {
	return LoadOver(path, Default())
}

// LoadOver reads the TOML file at path and layers it over base.
func LoadOver(path string, base LayoutConfig) (LayoutConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return LayoutConfig{}, errors.Wrap(errors.ErrCodeReadFailed, err, "read config %s", path)
	}
	c, err := Parse(data, base)
	if err != nil {
		return LayoutConfig{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config %s", path)
	}
	return c, nil
}

// Encode writes c as a complete TOML document.
func Encode(w io.Writer, c LayoutConfig) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(toFile(c)); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode config")
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "write config")
	}
	return nil
}
