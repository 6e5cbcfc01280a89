package layout

import (
	"math"
	"reflect"
	"slices"
	"testing"

	"github.com/matzehuels/steeb/pkg/config"
	"github.com/matzehuels/steeb/pkg/geom"
)

const eps = 1e-9

func TestColumnOffsets(t *testing.T) {
	tests := []struct {
		name    string
		stagger []float64
		want    []float64
	}{
		{"reference", []float64{7, 3, -3, -3}, []float64{10, 3, 0, 3, 6}},
		{"flat", []float64{0, 0, 0}, []float64{0, 0, 0, 0}},
		{"single", []float64{-4}, []float64{0, 4}},
		{"all positive", []float64{1, 2}, []float64{3, 2, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ColumnOffsets(tt.stagger)
			if !slices.Equal(got, tt.want) {
				t.Errorf("ColumnOffsets(%v) = %v, want %v", tt.stagger, got, tt.want)
			}
			if slices.Min(got) != 0 {
				t.Errorf("min offset = %v, want 0", slices.Min(got))
			}
		})
	}
}

func TestColumnOffsetsMinimumIsZeroForPresets(t *testing.T) {
	for _, p := range config.Presets() {
		if m := slices.Min(ColumnOffsets(p.Stagger)); m != 0 {
			t.Errorf("%s: min offset = %v, want 0", p.Name, m)
		}
	}
}

func TestFingers(t *testing.T) {
	cfg := config.Default()
	l := Fingers(cfg)

	if got, want := len(l.Slots), cfg.FingerColumns()*cfg.Rows; got != want {
		t.Fatalf("finger slots = %d, want %d", got, want)
	}
	if len(l.Slots) != 15 {
		t.Errorf("finger slots = %d, want 15", len(l.Slots))
	}

	if want := geom.Pt(85.5, 15.5); !l.InnerUpper.ApproxEqual(want, eps) {
		t.Errorf("InnerUpper = %v, want %v", l.InnerUpper, want)
	}
	if want := geom.Pt(85.5, 53.5); !l.InnerLower.ApproxEqual(want, eps) {
		t.Errorf("InnerLower = %v, want %v", l.InnerLower, want)
	}

	first := l.Slots[0]
	if first.Column != 0 || first.Row != 0 || !first.Center.ApproxEqual(geom.Pt(9.5, 19.5), eps) {
		t.Errorf("first slot = %+v, want column 0 row 0 at (9.5, 19.5)", first)
	}
	for _, s := range l.Slots {
		if s.Kind != FingerKey || s.Size != 1 || s.Angle != 0 {
			t.Errorf("finger slot %+v should be an unrotated 1u finger key", s)
		}
	}
}

func TestThumbAnchor(t *testing.T) {
	cfg := config.Default()
	got := ThumbAnchor(cfg, geom.Pt(85.5, 53.5))

	sin, cos := math.Sincos(geom.Rad(15))
	want := geom.Pt(85.5-7.27-85*sin, 53.5+23+85*cos)
	if !got.ApproxEqual(want, eps) {
		t.Errorf("ThumbAnchor() = %v, want %v", got, want)
	}
}

func TestThumbAngles(t *testing.T) {
	tests := []struct {
		name string
		keys []config.ThumbKey
		want []float64
	}{
		{
			name: "accumulated",
			keys: []config.ThumbKey{{Rotation: 15, Size: 1}, {Rotation: 15, Size: 1.5}},
			want: []float64{15, 30},
		},
		{
			name: "fixed angle keeps accumulating",
			keys: []config.ThumbKey{{Rotation: 15}, {Rotation: 10, Angle: 90, Fixed: true}, {Rotation: 5}},
			want: []float64{15, 90, 30},
		},
		{
			name: "empty",
			keys: nil,
			want: []float64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ThumbAngles(tt.keys); !slices.Equal(got, tt.want) {
				t.Errorf("ThumbAngles() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestThumbCapTop(t *testing.T) {
	if got := ThumbCapTop(1, 19); got != -9.5 {
		t.Errorf("ThumbCapTop(1) = %v, want -9.5", got)
	}
	if got := ThumbCapTop(1.5, 19); got != (0.5-1.5)*19 {
		t.Errorf("ThumbCapTop(1.5) = %v, want %v", got, (0.5-1.5)*19)
	}
	// A 1.5u key reaches half a cap further up than a 1u key.
	if d := ThumbCapTop(1.5, 19) - ThumbCapTop(1, 19); d != -0.5*19 {
		t.Errorf("1.5u top relative to 1u = %v, want %v", d, -0.5*19)
	}
}

func TestThumbs(t *testing.T) {
	cfg := config.Default()
	anchor := geom.Pt(100, 200)
	slots := Thumbs(cfg, anchor)

	if len(slots) != 2 {
		t.Fatalf("thumb slots = %d, want 2", len(slots))
	}
	if slots[0].Angle != 15 || slots[1].Angle != 30 {
		t.Errorf("angles = %v, %v, want 15, 30", slots[0].Angle, slots[1].Angle)
	}

	want0 := anchor.Add(geom.Pt(0, -85).Rotate(15))
	if !slots[0].Center.ApproxEqual(want0, eps) {
		t.Errorf("slot 0 center = %v, want %v", slots[0].Center, want0)
	}

	// The 1.5u key's center sits a quarter cap further out along the arc.
	want1 := anchor.Add(geom.Pt(0, -85-0.25*19).Rotate(30))
	if !slots[1].Center.ApproxEqual(want1, eps) {
		t.Errorf("slot 1 center = %v, want %v", slots[1].Center, want1)
	}
	if slots[1].Size != 1.5 || slots[1].Kind != ThumbKey || slots[1].Column != 1 {
		t.Errorf("slot 1 = %+v", slots[1])
	}
}

func TestCorrectedSeparation(t *testing.T) {
	cfg := config.Default()

	cfg.Tilt = 0
	if got := CorrectedSeparation(cfg); got != cfg.Separation {
		t.Errorf("CorrectedSeparation(tilt=0) = %v, want %v", got, cfg.Separation)
	}

	cfg.Tilt = 20
	loss := cfg.Separation - CorrectedSeparation(cfg)
	want := 2 * 5 * 19 * (1 - math.Cos(geom.Rad(20)))
	if math.Abs(loss-want) > eps {
		t.Errorf("separation loss at 20° = %v, want %v", loss, want)
	}
	if math.Abs(loss-11.458) > 1e-3 {
		t.Errorf("separation loss at 20° = %v, want ≈11.458", loss)
	}
}

func TestCorrectedSeparationDecreasesWithTilt(t *testing.T) {
	cfg := config.Default()
	prev := math.Inf(1)
	for tilt := 0.0; tilt < 90; tilt++ {
		cfg.Tilt = tilt
		got := CorrectedSeparation(cfg)
		if got >= prev {
			t.Fatalf("CorrectedSeparation(%v) = %v, not below %v", tilt, got, prev)
		}
		prev = got
	}
}

func TestCenterOffset(t *testing.T) {
	cfg := config.Default()
	offsets := ColumnOffsets(cfg.Stagger)
	want := (10+3*19)*math.Sin(geom.Rad(20)) + 3*19
	if got := CenterOffset(cfg, offsets); math.Abs(got-want) > eps {
		t.Errorf("CenterOffset() = %v, want %v", got, want)
	}

	cfg.Tilt = 0
	if got := CenterOffset(cfg, offsets); got != 57 {
		t.Errorf("CenterOffset(tilt=0) = %v, want 57", got)
	}
}

func TestComposeCounts(t *testing.T) {
	b := Compose(config.Default())

	if len(b.Left.Fingers) != 15 || len(b.Right.Fingers) != 15 {
		t.Errorf("finger slots = %d/%d, want 15/15", len(b.Left.Fingers), len(b.Right.Fingers))
	}
	if got := b.KeyCount(); got != 34 {
		t.Errorf("KeyCount() = %d, want 34", got)
	}
	if got := b.Transform.String(); got == "" {
		t.Error("board transform is empty")
	}
}

func TestComposeMirrorSymmetry(t *testing.T) {
	for _, tilt := range []float64{0, 12, 20, -8} {
		cfg := config.Default()
		cfg.Tilt = tilt
		b := Compose(cfg)

		left := b.Left.Placed()
		right := b.Right.Placed()
		undo := b.MirrorTransform().Matrix().Invert()

		if len(left) != len(right) {
			t.Fatalf("tilt %v: hand sizes differ: %d vs %d", tilt, len(left), len(right))
		}
		for i := range left {
			if got := undo.Apply(right[i]); !got.ApproxEqual(left[i], 1e-9) {
				t.Errorf("tilt %v: slot %d unmirrored = %v, want %v", tilt, i, got, left[i])
			}
		}
	}
}

func TestComposeCloneIsIndependent(t *testing.T) {
	b := Compose(config.Default())
	before := b.Left.Fingers[0]

	b.Right.Fingers[0].Center = geom.Pt(-1, -1)
	b.Right.Thumbs[0].Size = 9
	b.Right.Transform[0].X = 123

	if b.Left.Fingers[0] != before {
		t.Error("editing the right hand changed the left hand fingers")
	}
	if b.Left.Thumbs[0].Size == 9 {
		t.Error("editing the right hand changed the left hand thumbs")
	}
	if b.Left.Transform[0].X == 123 {
		t.Error("hands share their transform")
	}
}

func TestComposeDeterministic(t *testing.T) {
	a := Compose(config.Default())
	b := Compose(config.Default())
	if !reflect.DeepEqual(a, b) {
		t.Error("Compose is not deterministic")
	}
}

func TestRightTransform(t *testing.T) {
	cfg := config.Default()
	b := Compose(cfg)

	rx := b.InnerUpper.X + 19 + b.Separation + 5*19
	want := "translate(" + geom.Fmt(rx) + ", 0) scale(-1, 1) rotate(20)"
	if got := b.Right.Transform.String(); got != want {
		t.Errorf("right transform = %q, want %q", got, want)
	}
	if got := b.Left.Transform.String(); got != "rotate(20)" {
		t.Errorf("left transform = %q, want rotate(20)", got)
	}
}
