package workflow

import "github.com/spflow/spflow/particle"

// Link is a directed connection from one node's output channel to another
// node's input channel. The endpoints are fixed at creation; only Enabled is
// mutable. A disabled link behaves as if it did not exist for propagation.
type Link struct {
	Source        Node
	SourceChannel string
	Sink          Node
	SinkChannel   string
	Enabled       bool
}

// NewLink creates an enabled link between the given endpoints.
func NewLink(source Node, sourceChannel string, sink Node, sinkChannel string) *Link {
	return &Link{
		Source:        source,
		SourceChannel: sourceChannel,
		Sink:          sink,
		SinkChannel:   sinkChannel,
		Enabled:       true,
	}
}

// Data recomputes the source node's output for this link. There is no
// caching: every invocation reflects the source's current state.
func (l *Link) Data() *particle.Dataset {
	if l.Source == nil {
		return nil
	}
	return l.Source.Produce(l.SourceChannel)
}
