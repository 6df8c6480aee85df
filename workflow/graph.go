package workflow

import (
	"errors"
	"slices"

	"github.com/spflow/spflow/log"
	"github.com/spflow/spflow/particle"
)

var (
	// ErrNodeNotFound is returned when an operation names a node that is
	// not part of the graph.
	ErrNodeNotFound = errors.New("node not in graph")

	// ErrUnknownChannel is returned when a connection names a channel the
	// node does not expose.
	ErrUnknownChannel = errors.New("unknown channel")

	// ErrCyclicConnection is returned when a connection would close a
	// cycle. The workflow topology must stay a DAG; propagation performs no
	// cycle handling of its own.
	ErrCyclicConnection = errors.New("connection would create a cycle")
)

// Canvas offset applied to duplicated nodes.
const (
	duplicateOffsetX = 170
	duplicateOffsetY = 120
)

// Graph owns the node and link collections of one editing session and
// implements the propagation pass that re-runs Produce on every node
// reachable from a change.
//
// All graph mutation and propagation happens synchronously on the thread
// handling the triggering event; the graph performs no locking and must not
// be shared across goroutines.
type Graph struct {
	nodes []Node
	links []*Link
}

// NewGraph creates an empty workflow graph.
func NewGraph() *Graph {
	return &Graph{}
}

// AddNode adds a node and subscribes the graph to its configuration-changed
// signal so future configure calls start a propagation pass. Existing edges
// are untouched. Returns the node for chaining.
func (g *Graph) AddNode(n Node) Node {
	g.nodes = append(g.nodes, n)
	n.OnConfigurationChanged(func() { g.Trigger(n) })
	log.Debug("added node %q (%s)", n.Title(), n.Kind())
	return n
}

// Nodes returns the nodes in insertion order.
func (g *Graph) Nodes() []Node {
	return slices.Clone(g.nodes)
}

// Links returns the current links.
func (g *Graph) Links() []*Link {
	return slices.Clone(g.links)
}

// Contains reports whether the node is part of the graph.
func (g *Graph) Contains(n Node) bool {
	return slices.Contains(g.nodes, n)
}

// RemoveNode deletes every link touching the node, then the node itself.
// Sink nodes downstream keep their last-received input until reconfigured or
// reconnected.
func (g *Graph) RemoveNode(n Node) {
	for _, link := range g.Links() {
		if link.Source == n || link.Sink == n {
			g.Disconnect(link)
		}
	}
	if i := slices.Index(g.nodes, n); i >= 0 {
		g.nodes = slices.Delete(g.nodes, i, i+1)
		log.Debug("removed node %q", n.Title())
	}
}

// Connect creates a link from an output channel to an input channel and
// immediately runs one propagation pass from the source.
//
// The connection is rejected when either node is not in the graph, a named
// channel does not exist, or the link would close a cycle. An input channel
// holds at most one incoming link: connecting a second producer replaces the
// existing link instead of duplicating it.
func (g *Graph) Connect(source Node, sourceChannel string, sink Node, sinkChannel string) (*Link, error) {
	if !g.Contains(source) || !g.Contains(sink) {
		return nil, ErrNodeNotFound
	}
	if !source.HasOutputChannel(sourceChannel) || !sink.HasInputChannel(sinkChannel) {
		return nil, ErrUnknownChannel
	}
	if source == sink || g.reaches(sink, source) {
		return nil, ErrCyclicConnection
	}

	if existing := g.linkInto(sink, sinkChannel); existing != nil {
		g.Disconnect(existing)
	}

	link := NewLink(source, sourceChannel, sink, sinkChannel)
	g.links = append(g.links, link)
	log.Info("connected %q[%s] -> %q[%s]", source.Title(), sourceChannel, sink.Title(), sinkChannel)

	g.Trigger(source)
	return link, nil
}

// Disconnect removes the link. The sink node deliberately keeps its
// last-received input until it is reconfigured or another link delivers new
// data (last-known-value policy).
func (g *Graph) Disconnect(link *Link) {
	if i := slices.Index(g.links, link); i >= 0 {
		g.links = slices.Delete(g.links, i, i+1)
		log.Debug("disconnected %q[%s] -> %q[%s]",
			link.Source.Title(), link.SourceChannel, link.Sink.Title(), link.SinkChannel)
	}
}

// DuplicateNode clones the node's configuration into a new node of the same
// kind, offset on the canvas, with no links copied.
func (g *Graph) DuplicateNode(n Node) (Node, error) {
	if !g.Contains(n) {
		return nil, ErrNodeNotFound
	}
	clone := n.Clone()
	pos := n.Position()
	clone.SetPosition(Position{X: pos.X + duplicateOffsetX, Y: pos.Y + duplicateOffsetY})
	g.AddNode(clone)
	log.Info("duplicated node %q", n.Title())
	return clone, nil
}

// Trigger runs one propagation pass starting from the node: every enabled
// outgoing link recomputes the source output and delivers it to its sink,
// recursing while the sink feeds further consumers. Visiting order across
// independent branches is unspecified; recursion ends at nodes with no
// outgoing links. A failure on one branch stays local to that branch.
func (g *Graph) Trigger(n Node) {
	for _, link := range g.LinksFrom(n) {
		if !link.Enabled {
			continue
		}
		link.Sink.Accept(link.SinkChannel, g.linkData(link))
		if len(g.LinksFrom(link.Sink)) > 0 {
			g.Trigger(link.Sink)
		}
	}
}

// LinksFrom returns the links whose source is the given node.
func (g *Graph) LinksFrom(n Node) []*Link {
	var out []*Link
	for _, link := range g.links {
		if link.Source == n {
			out = append(out, link)
		}
	}
	return out
}

// linkInto returns the link currently feeding the given sink channel.
func (g *Graph) linkInto(sink Node, channel string) *Link {
	for _, link := range g.links {
		if link.Sink == sink && link.SinkChannel == channel {
			return link
		}
	}
	return nil
}

// linkData recomputes a link's data, containing any produce panic so one
// faulty node cannot abort propagation to sibling branches.
func (g *Graph) linkData(link *Link) (ds *particle.Dataset) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("produce on %q[%s] panicked: %v", link.Source.Title(), link.SourceChannel, r)
			ds = nil
		}
	}()
	return link.Data()
}

// reaches reports whether to is reachable from from by following links,
// regardless of their enabled state.
func (g *Graph) reaches(from, to Node) bool {
	if from == to {
		return true
	}
	for _, link := range g.LinksFrom(from) {
		if g.reaches(link.Sink, to) {
			return true
		}
	}
	return false
}
