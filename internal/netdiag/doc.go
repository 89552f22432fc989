/*
Package netdiag models a logical data-flow diagram: a network of
software systems, the environments hosting them, and the flows of data
between them.

The model has three levels. At the bottom are SYSTEMS, each drawn as a
box node. Systems may be grouped into hosting ENVIRONMENTS, each drawn
as a dashed cluster labelled at the bottom; environments hosted on
campus are highlighted. DATA FLOWS connect systems and are drawn as
edges, dashed when the flow only reads data and solid when it writes.

Identifiers are derived from display names by ToCode, which lower-cases
the name and replaces spaces and periods with underscores. Two names
that normalize to the same code silently collide: the later entry
overwrites the earlier one in the Network's keyed collections. That is
long-standing behavior this package preserves rather than resolves.

A Network must be assembled in order: environments first, then systems,
then data flows. A system is filed under its named environment only if
that environment is already known; otherwise it becomes a top-level
node. Data flows are never checked against known systems, so a flow
naming an unknown system renders as an edge to an identifier with no
declared node.
*/
package netdiag
