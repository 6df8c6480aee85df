package workflow

import (
	"fmt"
	"strings"
)

// Exporter provides methods to export a workflow graph in different formats.
type Exporter struct {
	graph *Graph
}

// NewExporter creates a new graph exporter for the given graph.
func NewExporter(g *Graph) *Exporter {
	return &Exporter{graph: g}
}

// MermaidOptions defines configuration for Mermaid diagram generation.
type MermaidOptions struct {
	// Direction of the flowchart (e.g., "TD", "LR")
	Direction string
}

// DrawMermaid generates a Mermaid diagram representation of the graph.
func (ge *Exporter) DrawMermaid() string {
	return ge.DrawMermaidWithOptions(MermaidOptions{Direction: "TD"})
}

// DrawMermaidWithOptions generates a Mermaid diagram with custom options.
// Node identifiers follow insertion order (n0, n1, ...) so output is stable
// across runs; disabled links render dashed.
func (ge *Exporter) DrawMermaidWithOptions(opts MermaidOptions) string {
	var sb strings.Builder

	direction := opts.Direction
	if direction == "" {
		direction = "TD"
	}
	sb.WriteString(fmt.Sprintf("flowchart %s\n", direction))

	ids := ge.nodeIDs()
	for _, n := range ge.graph.Nodes() {
		sb.WriteString(fmt.Sprintf("    %s[\"%s\"]\n", ids[n.ID()], n.Title()))
	}

	for _, link := range ge.graph.Links() {
		arrow := "-->"
		if !link.Enabled {
			arrow = "-.->"
		}
		sb.WriteString(fmt.Sprintf("    %s %s|%s| %s\n",
			ids[link.Source.ID()], arrow, link.SourceChannel, ids[link.Sink.ID()]))
	}

	return sb.String()
}

// DrawDOT generates a DOT (Graphviz) representation of the graph.
func (ge *Exporter) DrawDOT() string {
	var sb strings.Builder

	sb.WriteString("digraph G {\n")
	sb.WriteString("    rankdir=TD;\n")
	sb.WriteString("    node [shape=box];\n")

	ids := ge.nodeIDs()
	for _, n := range ge.graph.Nodes() {
		sb.WriteString(fmt.Sprintf("    %s [label=\"%s\"];\n", ids[n.ID()], n.Title()))
	}

	for _, link := range ge.graph.Links() {
		attrs := fmt.Sprintf("label=\"%s\"", link.SourceChannel)
		if !link.Enabled {
			attrs += ", style=dashed"
		}
		sb.WriteString(fmt.Sprintf("    %s -> %s [%s];\n",
			ids[link.Source.ID()], ids[link.Sink.ID()], attrs))
	}

	sb.WriteString("}\n")
	return sb.String()
}

// nodeIDs maps node UUIDs to short diagram identifiers by insertion order.
func (ge *Exporter) nodeIDs() map[string]string {
	ids := make(map[string]string)
	for i, n := range ge.graph.Nodes() {
		ids[n.ID()] = fmt.Sprintf("n%d", i)
	}
	return ids
}
