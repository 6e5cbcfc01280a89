package sink

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/matzehuels/steeb/pkg/config"
	"github.com/matzehuels/steeb/pkg/layout"
)

func TestRenderJSON(t *testing.T) {
	b := layout.Compose(config.Default())
	data, err := RenderJSON(b)
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if len(out.Hands) != 2 || out.Hands[0].Side != "left" || out.Hands[1].Side != "right" {
		t.Fatalf("hands = %+v", out.Hands)
	}
	for _, h := range out.Hands {
		if len(h.Keys) != 17 {
			t.Errorf("%s hand has %d keys, want 17", h.Side, len(h.Keys))
		}
	}
	if len(out.Offsets) != 5 || out.Offsets[0] != 10 {
		t.Errorf("column offsets = %v", out.Offsets)
	}
	if math.Abs(out.Width-500*layout.OutputScale) > 1e-9 {
		t.Errorf("width = %v", out.Width)
	}
	if out.Corrected >= out.Separation {
		t.Errorf("corrected separation %v not below %v", out.Corrected, out.Separation)
	}

	thumb := out.Hands[0].Keys[16]
	if thumb.Kind != "thumb" || thumb.Angle != 30 || thumb.Size != 1.5 {
		t.Errorf("last key = %+v, want 1.5u thumb at 30°", thumb)
	}
}
