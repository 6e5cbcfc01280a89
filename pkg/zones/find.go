package zones

import (
	"encoding/xml"
	"io"

	"github.com/matzehuels/steeb/pkg/errors"
	"github.com/matzehuels/steeb/pkg/geom"
)

// InkscapeNamespace is the namespace of the inkscape:label attribute.
const InkscapeNamespace = "http://www.inkscape.org/namespaces/inkscape"

// node is a generic XML element.
type node struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Children []node     `xml:",any"`
}

func (n *node) attr(space, local string) string {
	for _, a := range n.Attrs {
		if a.Name.Local == local && a.Name.Space == space {
			return a.Value
		}
	}
	return ""
}

func (n *node) label() string {
	if v := n.attr(InkscapeNamespace, "label"); v != "" {
		return v
	}
	// Undeclared prefix: the decoder leaves the prefix as the space.
	return n.attr("inkscape", "label")
}

// Find reads an SVG drawing and returns the outline of every path whose label
// is in names. The search is depth first and stops once all names are found;
// the first path carrying a name wins. Names that are not found are absent
// from the result.
func Find(r io.Reader, names []string) (map[string][]geom.Point, error) {
	var root node
	dec := xml.NewDecoder(r)
	dec.Entity = xml.HTMLEntity
	if err := dec.Decode(&root); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDrawing, err, "parse drawing")
	}

	s := search{
		want:  make(map[string]bool, len(names)),
		found: make(map[string][]geom.Point, len(names)),
	}
	for _, n := range names {
		s.want[n] = true
	}
	if len(s.want) == 0 {
		return s.found, nil
	}

	if _, err := s.visit(&root); err != nil {
		return nil, err
	}
	return s.found, nil
}

type search struct {
	want  map[string]bool
	found map[string][]geom.Point
}

// visit reports whether every wanted name has been found.
func (s *search) visit(n *node) (bool, error) {
	if n.XMLName.Local == "path" {
		name := n.label()
		if s.want[name] {
			if _, dup := s.found[name]; !dup {
				pts, err := ParsePath(name, n.attr("", "d"))
				if err != nil {
					return false, err
				}
				s.found[name] = pts
			}
			return len(s.found) == len(s.want), nil
		}
	}

	for i := range n.Children {
		done, err := s.visit(&n.Children[i])
		if err != nil || done {
			return done, err
		}
	}
	return false, nil
}
