package netdiag

// This file renders a Network into a DOT graph: one cluster per
// environment, one box node per system, one edge per data flow.

import (
	"strings"

	"github.com/libsys/netdiag/internal/dot"
)

// Graph walks the network and builds the equivalent DOT graph.
// Environments come first, then top-level systems, then data flows,
// each in the order they were added.
func (n *Network) Graph() *dot.Graph {
	g := dot.NewDigraph(n.Name)
	for _, env := range n.Environments() {
		env.addToGraph(g, n.Highlight)
	}
	for _, s := range n.TopLevelSystems() {
		s.addToGraph(g)
	}
	for _, df := range n.DataFlows() {
		df.addToGraph(g)
	}
	return g
}

// addToGraph adds the environment as a dashed cluster labelled at the
// bottom, containing a node per member system. On-campus environments
// get the highlight color on border and label.
func (env *Environment) addToGraph(g *dot.Graph, highlight string) {
	c := g.Subgraph("cluster_" + env.Code)
	c.GraphAttr("label", env.Name)
	c.GraphAttr("labelloc", "b")
	c.GraphAttr("style", "dashed")
	if env.OnCampus {
		c.GraphAttr("color", highlight)
		c.GraphAttr("fontcolor", highlight)
	}
	for _, s := range env.Systems {
		s.addToGraph(c)
	}
}

// addToGraph adds the system as a box node. Spaces in the display name
// become DOT line breaks so multi-word names wrap inside the box.
func (s *System) addToGraph(g *dot.Graph) {
	label := strings.ReplaceAll(s.Name, " ", `\n`)
	g.Node(s.Code).Attr("label", label).Attr("shape", "box")
}

// addToGraph adds the flow as an edge between node codes, dashed for
// reads and solid otherwise.
func (df *DataFlow) addToGraph(g *dot.Graph) {
	style := "solid"
	if df.reads() {
		style = "dashed"
	}
	g.Edge(ToCode(df.Source), ToCode(df.Target)).Attr("style", style)
}
