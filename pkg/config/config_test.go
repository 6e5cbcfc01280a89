package config

import (
	"bytes"
	"testing"

	"github.com/matzehuels/steeb/pkg/errors"
)

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if got := c.FingerColumns(); got != 5 {
		t.Errorf("FingerColumns() = %d, want 5", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*LayoutConfig)
	}{
		{"no stagger", func(c *LayoutConfig) { c.Stagger = nil }},
		{"zero rows", func(c *LayoutConfig) { c.Rows = 0 }},
		{"zero cap width", func(c *LayoutConfig) { c.Cap.Width = 0 }},
		{"negative switch", func(c *LayoutConfig) { c.Switch.Height = -1 }},
		{"zero radius", func(c *LayoutConfig) { c.Thumb.Radius = 0 }},
		{"zero thumb size", func(c *LayoutConfig) { c.Thumb.Keys[1].Size = 0 }},
		{"right angle tilt", func(c *LayoutConfig) { c.Tilt = 90 }},
		{"zero stroke", func(c *LayoutConfig) { c.StrokeWidth = 0 }},
		{"empty color", func(c *LayoutConfig) { c.StrokeColor = "" }},
		{"unknown cutout", func(c *LayoutConfig) { c.Cutout = "dots" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.modify(&c)
			err := c.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("Validate() code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidConfig)
			}
		})
	}
}

func TestCloneIsDeep(t *testing.T) {
	a := Default()
	b := a.Clone()
	b.Stagger[0] = 99
	b.Thumb.Keys[0].Size = 3

	if a.Stagger[0] == 99 {
		t.Error("Clone shares Stagger with original")
	}
	if a.Thumb.Keys[0].Size == 3 {
		t.Error("Clone shares thumb keys with original")
	}
}

func TestParseLayersOverBase(t *testing.T) {
	data := []byte(`
tilt = 12
stagger = [6, 3, -3, -3]

[cap]
width = 18
height = 17
`)
	c, err := Parse(data, Default())
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if c.Tilt != 12 {
		t.Errorf("Tilt = %v, want 12", c.Tilt)
	}
	if c.Cap != (Size{Width: 18, Height: 17}) {
		t.Errorf("Cap = %v, want 18x17", c.Cap)
	}
	if c.Separation != 42 {
		t.Errorf("Separation = %v, want default 42", c.Separation)
	}
	if len(c.Thumb.Keys) != 2 {
		t.Errorf("thumb keys = %d, want default 2", len(c.Thumb.Keys))
	}
	if Default().Stagger[0] != 7 {
		t.Error("Parse modified the default stagger")
	}
}

func TestParseThumbKeyDefaults(t *testing.T) {
	data := []byte(`
[[thumb.keys]]

[[thumb.keys]]
size = 1.5

[[thumb.keys]]
angle = 50
rotation = 10
`)
	c, err := Parse(data, Default())
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	want := []ThumbKey{
		{Rotation: DefaultThumbRotation, Size: DefaultThumbSize},
		{Rotation: DefaultThumbRotation, Size: 1.5},
		{Rotation: 10, Size: DefaultThumbSize, Angle: 50, Fixed: true},
	}
	if len(c.Thumb.Keys) != len(want) {
		t.Fatalf("thumb keys = %d, want %d", len(c.Thumb.Keys), len(want))
	}
	for i, k := range c.Thumb.Keys {
		if k != want[i] {
			t.Errorf("key %d = %+v, want %+v", i, k, want[i])
		}
	}
}

func TestParseFixedAngleDoesNotLeak(t *testing.T) {
	base := Default()
	base.Thumb.Keys[0] = ThumbKey{Rotation: 15, Size: 1, Angle: 33, Fixed: true}

	c, err := Parse([]byte("[[thumb.keys]]\nsize = 1\n"), base)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if c.Thumb.Keys[0].Fixed {
		t.Error("fixed angle from base leaked into parsed key")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"syntax", "tilt = ["},
		{"unknown key", "tilted = 4"},
		{"invalid value", "rows = 0"},
		{"bad cutout", `cutout_style = "holes"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), Default())
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("Parse() error = %v, want %s", err, errors.ErrCodeInvalidConfig)
			}
		})
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	in := Default()
	in.Thumb.Keys = append(in.Thumb.Keys, ThumbKey{Rotation: 5, Size: 1, Angle: 70, Fixed: true})
	in.Cutout = CutoutOutline

	var buf bytes.Buffer
	if err := Encode(&buf, in); err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	out, err := Parse(buf.Bytes(), LayoutConfig{})
	if err != nil {
		t.Fatalf("Parse(Encode()) error: %v\n%s", err, buf.String())
	}
	if out.Cutout != CutoutOutline || out.Rows != in.Rows || out.Tilt != in.Tilt {
		t.Errorf("scalar fields differ after round trip: %+v", out)
	}
	if len(out.Thumb.Keys) != 3 || out.Thumb.Keys[2] != in.Thumb.Keys[2] {
		t.Errorf("thumb keys differ after round trip: %+v", out.Thumb.Keys)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("does-not-exist.toml")
	if !errors.Is(err, errors.ErrCodeReadFailed) {
		t.Errorf("Load() error = %v, want %s", err, errors.ErrCodeReadFailed)
	}
}
