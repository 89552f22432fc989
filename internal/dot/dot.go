// Package dot builds Graphviz DOT graphs in memory.
//
// A Graph accumulates nodes, edges and subgraphs in insertion order and
// serializes them in a single pass with WriteTo. Keeping one in-memory
// representation with one serialization step avoids scattering DOT
// string formatting across the model types that use this package.
package dot

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// An attr is a single key=value attribute. Attributes are kept as a
// slice, not a map, so serialization order matches insertion order.
type attr struct {
	key, value string
}

// A Node is a node statement with optional attributes.
type Node struct {
	id    string
	attrs []attr
}

// Attr sets an attribute on the node and returns it for chaining.
func (n *Node) Attr(key, value string) *Node {
	n.attrs = append(n.attrs, attr{key, value})
	return n
}

// An Edge is an edge statement between two node identifiers. The nodes
// need not have been declared; DOT treats undeclared identifiers as
// implicit nodes.
type Edge struct {
	from, to string
	attrs    []attr
}

// Attr sets an attribute on the edge and returns it for chaining.
func (e *Edge) Attr(key, value string) *Edge {
	e.attrs = append(e.attrs, attr{key, value})
	return e
}

// A Graph is a directed graph or a subgraph of one. Subgraphs whose
// name starts with "cluster" are drawn by Graphviz as boxed clusters.
type Graph struct {
	name       string
	sub        bool // subgraph, not top-level digraph
	graphAttrs []attr
	nodes      []*Node
	edges      []*Edge
	subgraphs  []*Graph
}

// NewDigraph returns an empty directed graph with the given name.
func NewDigraph(name string) *Graph {
	return &Graph{name: name}
}

// GraphAttr sets a graph-level attribute (label, style, color, ...).
func (g *Graph) GraphAttr(key, value string) *Graph {
	g.graphAttrs = append(g.graphAttrs, attr{key, value})
	return g
}

// Node appends a node with the given identifier.
func (g *Graph) Node(id string) *Node {
	n := &Node{id: id}
	g.nodes = append(g.nodes, n)
	return n
}

// Edge appends an edge from one node identifier to another.
func (g *Graph) Edge(from, to string) *Edge {
	e := &Edge{from: from, to: to}
	g.edges = append(g.edges, e)
	return e
}

// Subgraph appends and returns an empty subgraph with the given name.
func (g *Graph) Subgraph(name string) *Graph {
	s := &Graph{name: name, sub: true}
	g.subgraphs = append(g.subgraphs, s)
	return s
}

// quote renders s as a double-quoted DOT string.
// NB: not %q; DOT escapes like \n in labels must pass through verbatim,
// so only the quote character itself is escaped.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}

func writeAttrs(buf *bytes.Buffer, attrs []attr) {
	if len(attrs) == 0 {
		return
	}
	buf.WriteString(" [")
	for i, a := range attrs {
		if i > 0 {
			buf.WriteString(",")
		}
		fmt.Fprintf(buf, "%s=%s", a.key, quote(a.value))
	}
	buf.WriteString("]")
}

func (g *Graph) write(buf *bytes.Buffer, depth int) {
	indent := strings.Repeat("  ", depth)
	if g.sub {
		fmt.Fprintf(buf, "%ssubgraph %s {\n", indent, quote(g.name))
	} else {
		fmt.Fprintf(buf, "digraph %s {\n", quote(g.name))
	}
	inner := strings.Repeat("  ", depth+1)
	if len(g.graphAttrs) > 0 {
		fmt.Fprintf(buf, "%sgraph", inner)
		writeAttrs(buf, g.graphAttrs)
		buf.WriteString(";\n")
	}
	for _, s := range g.subgraphs {
		s.write(buf, depth+1)
	}
	for _, n := range g.nodes {
		fmt.Fprintf(buf, "%s%s", inner, quote(n.id))
		writeAttrs(buf, n.attrs)
		buf.WriteString(";\n")
	}
	for _, e := range g.edges {
		fmt.Fprintf(buf, "%s%s -> %s", inner, quote(e.from), quote(e.to))
		writeAttrs(buf, e.attrs)
		buf.WriteString(";\n")
	}
	fmt.Fprintf(buf, "%s}\n", indent)
}

// WriteTo serializes the graph as DOT text.
func (g *Graph) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	g.write(&buf, 0)
	n, err := w.Write(buf.Bytes())
	return int64(n), err
}

// String returns the DOT text of the graph.
func (g *Graph) String() string {
	var buf bytes.Buffer
	g.write(&buf, 0)
	return buf.String()
}
