package sink

import (
	"encoding/json"

	"github.com/matzehuels/steeb/pkg/layout"
)

type jsonOutput struct {
	Width      float64    `json:"width"`
	Height     float64    `json:"height"`
	Scale      float64    `json:"scale"`
	Tilt       float64    `json:"tilt"`
	Separation float64    `json:"separation"`
	Corrected  float64    `json:"corrected_separation"`
	Offsets    []float64  `json:"column_offsets"`
	InnerUpper jsonPoint  `json:"inner_upper"`
	InnerLower jsonPoint  `json:"inner_lower"`
	Transform  string     `json:"transform"`
	Hands      []jsonHand `json:"hands"`
}

type jsonPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type jsonHand struct {
	Side      string    `json:"side"`
	Transform string    `json:"transform"`
	Anchor    jsonPoint `json:"thumb_anchor"`
	Keys      []jsonKey `json:"keys"`
}

type jsonKey struct {
	Kind   string    `json:"kind"`
	Column int       `json:"column"`
	Row    int       `json:"row"`
	Center jsonPoint `json:"center"`
	Placed jsonPoint `json:"placed"`
	Size   float64   `json:"size"`
	Angle  float64   `json:"angle,omitempty"`
}

// RenderJSON exports the board geometry. Key centers are given both in the
// hand frame (center) and after the hand transform (placed), in millimeters.
func RenderJSON(b layout.Board) ([]byte, error) {
	cfg := b.Config
	out := jsonOutput{
		Width:      cfg.Canvas.Width * layout.OutputScale,
		Height:     cfg.Canvas.Height * layout.OutputScale,
		Scale:      layout.OutputScale,
		Tilt:       cfg.Tilt,
		Separation: cfg.Separation,
		Corrected:  b.Separation,
		Offsets:    b.Offsets,
		InnerUpper: jsonPoint{b.InnerUpper.X, b.InnerUpper.Y},
		InnerLower: jsonPoint{b.InnerLower.X, b.InnerLower.Y},
		Transform:  b.Transform.String(),
		Hands: []jsonHand{
			buildJSONHand("left", b.Left),
			buildJSONHand("right", b.Right),
		},
	}
	return json.MarshalIndent(out, "", "  ")
}

func buildJSONHand(side string, h layout.Hand) jsonHand {
	slots := h.Slots()
	placed := h.Placed()
	keys := make([]jsonKey, len(slots))
	for i, s := range slots {
		keys[i] = jsonKey{
			Kind:   s.Kind.String(),
			Column: s.Column,
			Row:    s.Row,
			Center: jsonPoint{s.Center.X, s.Center.Y},
			Placed: jsonPoint{placed[i].X, placed[i].Y},
			Size:   s.Size,
			Angle:  s.Angle,
		}
	}
	return jsonHand{
		Side:      side,
		Transform: h.Transform.String(),
		Anchor:    jsonPoint{h.Anchor.X, h.Anchor.Y},
		Keys:      keys,
	}
}
