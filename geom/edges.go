package geom

import "strings"

// Edges is a set of rectangle edges. The bit values match the
// xdg_toplevel resize_edge enum, so a combined set can be sent to a
// compositor as-is.
type Edges uint32

const (
	EdgeNone   Edges = 0
	EdgeTop    Edges = 1
	EdgeBottom Edges = 2
	EdgeLeft   Edges = 4
	EdgeRight  Edges = 8

	EdgeTopLeft     = EdgeTop | EdgeLeft
	EdgeBottomLeft  = EdgeBottom | EdgeLeft
	EdgeTopRight    = EdgeTop | EdgeRight
	EdgeBottomRight = EdgeBottom | EdgeRight
)

var edgeNames = [...]struct {
	e    Edges
	name string
}{
	{EdgeTop, "top"},
	{EdgeBottom, "bottom"},
	{EdgeLeft, "left"},
	{EdgeRight, "right"},
}

// Has reports whether every edge in o is also in e.
func (e Edges) Has(o Edges) bool {
	return e&o == o
}

// Corner reports whether e names exactly one horizontal and one
// vertical edge.
func (e Edges) Corner() bool {
	vert := e & (EdgeTop | EdgeBottom)
	horiz := e & (EdgeLeft | EdgeRight)
	return (vert == EdgeTop || vert == EdgeBottom) &&
		(horiz == EdgeLeft || horiz == EdgeRight)
}

func (e Edges) String() string {
	if e == EdgeNone {
		return "none"
	}

	var buf strings.Builder
	for _, n := range edgeNames {
		if e&n.e == 0 {
			continue
		}
		if buf.Len() > 0 {
			buf.WriteByte('|')
		}
		buf.WriteString(n.name)
	}
	return buf.String()
}
