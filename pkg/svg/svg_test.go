package svg

import (
	"bytes"
	"slices"
	"strings"
	"testing"
)

func TestWriteForms(t *testing.T) {
	tests := []struct {
		name string
		el   *Element
		want []string
	}{
		{
			name: "self-closing",
			el:   NewEmpty("rect", "x", "1", "y", "2"),
			want: []string{`<rect x="1" y="2" />`},
		},
		{
			name: "childless",
			el:   New("g"),
			want: []string{`<g></g>`},
		},
		{
			name: "nested",
			el:   New("g", "fill", "none").Add(NewEmpty("path", "d", "M 0 0")),
			want: []string{
				`<g fill="none">`,
				`    <path d="M 0 0" />`,
				`</g>`,
			},
		},
		{
			name: "escaped",
			el:   NewEmpty("text", "label", `a<b & "c"`),
			want: []string{`<text label="a&lt;b &amp; &quot;c&quot;" />`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.el.write(nil, "")
			if !slices.Equal(got, tt.want) {
				t.Errorf("write() =\n%s\nwant\n%s", strings.Join(got, "\n"), strings.Join(tt.want, "\n"))
			}
		})
	}
}

func TestAttributeOrder(t *testing.T) {
	e := New("g", "stroke", "black", "fill", "none")
	e.Set("transform", "rotate(20)")
	e.Set("stroke", "red")

	var names []string
	for _, a := range e.Attrs {
		names = append(names, a.Name)
	}
	if want := []string{"stroke", "fill", "transform"}; !slices.Equal(names, want) {
		t.Errorf("attribute order = %v, want %v", names, want)
	}
	if v, _ := e.Get("stroke"); v != "red" {
		t.Errorf("Get(stroke) = %q, want red", v)
	}
	if _, ok := e.Get("missing"); ok {
		t.Error("Get(missing) reported present")
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := New("g", "id", "left").Add(
		New("g").Add(NewEmpty("rect", "x", "1")),
	)
	c := orig.Clone()

	c.Set("id", "right")
	c.Children[0].Children[0].Set("x", "99")
	c.Children[0].Add(NewEmpty("path"))

	if v, _ := orig.Get("id"); v != "left" {
		t.Errorf("original id = %q after editing clone", v)
	}
	if v, _ := orig.Children[0].Children[0].Get("x"); v != "1" {
		t.Errorf("original rect x = %q after editing clone", v)
	}
	if n := len(orig.Children[0].Children); n != 1 {
		t.Errorf("original has %d grandchildren after editing clone", n)
	}
	if !c.Children[0].Children[0].IsEmpty() {
		t.Error("clone lost the empty flag")
	}
}

func TestAddToEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Add on empty element did not panic")
		}
	}()
	NewEmpty("rect").Add(New("g"))
}

func TestCount(t *testing.T) {
	root := New("svg").Add(
		New("g").Add(NewEmpty("rect"), NewEmpty("rect")),
		NewEmpty("rect"),
	)
	if got := root.Count("rect"); got != 3 {
		t.Errorf("Count(rect) = %d, want 3", got)
	}
}

func TestDocument(t *testing.T) {
	d := NewDocument(100, 50.5)
	d.Add(New("g"))

	lines := d.Lines()
	if !slices.Equal(lines[:2], Header) {
		t.Errorf("header = %v", lines[:2])
	}
	want := `<svg width="100" height="50.5" xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink">`
	if lines[2] != want {
		t.Errorf("root = %q, want %q", lines[2], want)
	}
	if lines[len(lines)-1] != "</svg>" {
		t.Errorf("last line = %q", lines[len(lines)-1])
	}

	var buf bytes.Buffer
	n, err := d.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo() error: %v", err)
	}
	if n != int64(buf.Len()) || !bytes.Equal(buf.Bytes(), d.Bytes()) {
		t.Error("WriteTo() output differs from Bytes()")
	}
}
