package layout

import "github.com/matzehuels/steeb/pkg/geom"

// KeyKind distinguishes finger keys from thumb keys.
type KeyKind int

const (
	FingerKey KeyKind = iota
	ThumbKey
)

func (k KeyKind) String() string {
	if k == ThumbKey {
		return "thumb"
	}
	return "finger"
}

// KeySlot is one placed key.
//
// For finger keys Column and Row index the block (outermost column and top
// row first) and Angle is zero. For thumb keys Column is the key's position in
// the cluster, Row is zero and Angle is the arc placement angle.
type KeySlot struct {
	Kind   KeyKind
	Column int
	Row    int
	Center geom.Point // center of the cap outline
	Size   float64    // cap height in key-cap units
	Angle  float64    // degrees, about Center
}
