// Package svg is a minimal SVG document builder.
//
// Elements keep their attributes in insertion order so that rendering the same
// drawing twice produces byte-identical output. Trees are plain values that
// can be deep-copied with [Element.Clone]; the layout renderer builds one hand
// and clones it for the other.
package svg

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Header is the two-line preamble written before the root element.
var Header = []string{
	`<?xml version="1.0" encoding="UTF-8" standalone="no"?>`,
	`<!DOCTYPE svg PUBLIC "-//W3C//DTD SVG 1.1//EN" "http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd">`,
}

const indentUnit = "    "

// Attr is a single name/value attribute.
type Attr struct {
	Name  string
	Value string
}

// Element is a node of the drawing tree. An empty element never has children
// and is written self-closing.
type Element struct {
	Name     string
	Attrs    []Attr
	Children []*Element
	empty    bool
}

// New returns an element that may hold children. Attributes are given as
// alternating name/value pairs.
func New(name string, attrs ...string) *Element {
	return &Element{Name: name, Attrs: pairs(attrs)}
}

// NewEmpty returns a self-closing element.
func NewEmpty(name string, attrs ...string) *Element {
	return &Element{Name: name, Attrs: pairs(attrs), empty: true}
}

func pairs(kv []string) []Attr {
	if len(kv)%2 != 0 {
		panic(fmt.Sprintf("svg: odd number of attribute arguments: %q", kv))
	}
	attrs := make([]Attr, 0, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		attrs = append(attrs, Attr{Name: kv[i], Value: kv[i+1]})
	}
	return attrs
}

// IsEmpty reports whether e is a self-closing element.
func (e *Element) IsEmpty() bool { return e.empty }

// Add appends children. It panics if e is an empty element.
func (e *Element) Add(children ...*Element) *Element {
	if e.empty && len(children) > 0 {
		panic(fmt.Sprintf("svg: can't add child to empty element %q", e.Name))
	}
	e.Children = append(e.Children, children...)
	return e
}

// Get returns the value of the named attribute.
func (e *Element) Get(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Set replaces the named attribute in place, or appends it if absent.
func (e *Element) Set(name, value string) *Element {
	for i := range e.Attrs {
		if e.Attrs[i].Name == name {
			e.Attrs[i].Value = value
			return e
		}
	}
	e.Attrs = append(e.Attrs, Attr{Name: name, Value: value})
	return e
}

// Clone returns a deep copy of e and its subtree.
func (e *Element) Clone() *Element {
	c := &Element{
		Name:  e.Name,
		Attrs: append([]Attr(nil), e.Attrs...),
		empty: e.empty,
	}
	if len(e.Children) > 0 {
		c.Children = make([]*Element, len(e.Children))
		for i, child := range e.Children {
			c.Children[i] = child.Clone()
		}
	}
	return c
}

// Count returns the number of elements in the subtree named name, including e.
func (e *Element) Count(name string) int {
	n := 0
	if e.Name == name {
		n++
	}
	for _, c := range e.Children {
		n += c.Count(name)
	}
	return n
}

func (e *Element) write(lines []string, indent string) []string {
	var b strings.Builder
	b.WriteString(indent)
	b.WriteByte('<')
	b.WriteString(e.Name)
	for _, a := range e.Attrs {
		fmt.Fprintf(&b, ` %s="%s"`, a.Name, escape(a.Value))
	}

	switch {
	case e.empty:
		b.WriteString(" />")
		return append(lines, b.String())
	case len(e.Children) == 0:
		fmt.Fprintf(&b, "></%s>", e.Name)
		return append(lines, b.String())
	}

	b.WriteByte('>')
	lines = append(lines, b.String())
	for _, c := range e.Children {
		lines = c.write(lines, indent+indentUnit)
	}
	return append(lines, indent+"</"+e.Name+">")
}

var attrEscaper = strings.NewReplacer(`&`, "&amp;", `<`, "&lt;", `>`, "&gt;", `"`, "&quot;")

func escape(s string) string { return attrEscaper.Replace(s) }

// Document is a complete drawing with an <svg> root.
type Document struct {
	Width  float64
	Height float64
	Root   *Element
}

// NewDocument returns a document whose root carries the size and the SVG
// namespaces.
func NewDocument(width, height float64) *Document {
	return &Document{
		Width:  width,
		Height: height,
		Root: New("svg",
			"width", strconv.FormatFloat(width, 'f', -1, 64),
			"height", strconv.FormatFloat(height, 'f', -1, 64),
			"xmlns", "http://www.w3.org/2000/svg",
			"xmlns:xlink", "http://www.w3.org/1999/xlink",
		),
	}
}

// Add appends elements to the root.
func (d *Document) Add(children ...*Element) { d.Root.Add(children...) }

// Lines serializes the document: the header followed by the indented tree.
func (d *Document) Lines() []string {
	lines := append([]string(nil), Header...)
	return d.Root.write(lines, "")
}

// Bytes returns the serialized document, lines joined by newlines.
func (d *Document) Bytes() []byte {
	return []byte(strings.Join(d.Lines(), "\n"))
}

// WriteTo writes the serialized document to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(d.Bytes())
	return int64(n), err
}
