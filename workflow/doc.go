// Package workflow provides the node graph at the heart of the visual
// analysis editor.
//
// A Graph holds nodes (sample selectors, plot views, the AI assistant) and
// the directed links between their channels. Data flows as *particle.Dataset
// values: when a node's configuration changes or a link is created, the graph
// runs a propagation pass that recomputes every downstream node from its
// current inputs. Links never cache data.
//
// # Core Concepts
//
// ## Nodes and Channels
// Every node exposes fixed, named input and output channels. Accept stores
// the last dataset delivered to an input channel; Produce derives a fresh
// dataset for an output channel. Produce must be pure and must never mutate
// the records it received.
//
// ## Graph and Propagation
// The graph validates connections (existing nodes, known channels, no
// cycles), replaces the producer when an input channel is already occupied,
// and triggers propagation from the source of every new or changed link.
// Disconnecting keeps the sink's last-received input.
//
// ## Registry
// Node kinds are created through a Registry of factories so applications can
// extend the palette without touching the graph. Factories receive shared
// dependencies (the raw data provider) through Deps.
//
// # Example Usage
//
//	reg := workflow.NewRegistry()
//	g := workflow.NewGraph()
//
//	src, _ := reg.New(workflow.KindSampleSelector, workflow.Deps{Provider: p})
//	view, _ := reg.New(workflow.KindHistogramPlot, workflow.Deps{})
//	g.AddNode(src)
//	g.AddNode(view)
//
//	if _, err := g.Connect(src, workflow.ChannelOutput, view, workflow.ChannelInput); err != nil {
//		return err
//	}
//
//	sample := src.(*workflow.SampleNode)
//	if err := sample.Configure("Sample A", isotopes); err != nil {
//		return err
//	}
//	ds := view.(*workflow.ViewNode).Dataset()
//
// # Thread Safety
//
// The graph is single threaded by design: all mutation and propagation run
// synchronously on the caller's goroutine, mirroring an event-driven editor
// loop. Share a Graph across goroutines only with external synchronization.
package workflow
