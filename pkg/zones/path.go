package zones

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/matzehuels/steeb/pkg/errors"
	"github.com/matzehuels/steeb/pkg/geom"
)

// pathCommands are all SVG path command letters. Only some are supported, but
// all of them split tokens so unsupported ones are reported by name.
const pathCommands = "MmLlHhVvZzCcSsQqTtAa"

// ParsePath returns the vertices of an outline given as SVG path data.
//
// Supported are absolute M (first command only), L, H and V. Bare coordinate
// pairs continue as implicit line-to. Z is ignored since outlines are closed
// implicitly. Any other command, a missing coordinate or a malformed number is
// an [errors.ErrCodeInvalidPathData] error naming zone.
func ParsePath(zone, d string) ([]geom.Point, error) {
	tokens := tokenize(d)
	var pts []geom.Point
	var cur geom.Point

	i := 0
	next := func() (float64, error) {
		if i >= len(tokens) {
			return 0, errors.New(errors.ErrCodeInvalidPathData, "missing coordinate at end of path in %s", zone)
		}
		tok := tokens[i]
		i++
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return 0, errors.New(errors.ErrCodeInvalidPathData, "unexpected value %s in %s", tok, zone)
		}
		return v, nil
	}

	var err error
	for i < len(tokens) {
		tok := tokens[i]
		i++

		switch tok {
		case "Z", "z":
			continue
		case "M":
			if i != 1 {
				return nil, errors.New(errors.ErrCodeInvalidPathData, "unexpected command %s in %s", tok, zone)
			}
			if cur.X, err = next(); err != nil {
				return nil, err
			}
			if cur.Y, err = next(); err != nil {
				return nil, err
			}
		case "L":
			if cur.X, err = next(); err != nil {
				return nil, err
			}
			if cur.Y, err = next(); err != nil {
				return nil, err
			}
		case "H":
			if cur.X, err = next(); err != nil {
				return nil, err
			}
		case "V":
			if cur.Y, err = next(); err != nil {
				return nil, err
			}
		default:
			if !isNumber(tok) {
				return nil, errors.New(errors.ErrCodeInvalidPathData, "unsupported command %s in %s", tok, zone)
			}
			i--
			if cur.X, err = next(); err != nil {
				return nil, err
			}
			if cur.Y, err = next(); err != nil {
				return nil, err
			}
		}
		pts = append(pts, cur)
	}
	return pts, nil
}

// tokenize splits path data on whitespace and commas and separates command
// letters from adjacent numbers.
func tokenize(d string) []string {
	var b strings.Builder
	for _, r := range d {
		switch {
		case strings.ContainsRune(pathCommands, r):
			b.WriteRune(' ')
			b.WriteRune(r)
			b.WriteRune(' ')
		case r == ',':
			b.WriteRune(' ')
		default:
			b.WriteRune(r)
		}
	}
	return strings.Fields(b.String())
}

func isNumber(tok string) bool {
	r := rune(tok[0])
	return unicode.IsDigit(r) || r == '-' || r == '+' || r == '.'
}
