package workflow

import (
	"slices"

	"github.com/google/uuid"

	"github.com/spflow/spflow/log"
	"github.com/spflow/spflow/particle"
)

// Kind identifies a node type for the registry and for duplication.
type Kind string

const (
	KindSampleSelector         Kind = "sample_selector"
	KindMultipleSampleSelector Kind = "multiple_sample_selector"
	KindBatchSampleSelector    Kind = "batch_sample_selector"

	KindHistogramPlot             Kind = "histogram_plot"
	KindBoxPlot                   Kind = "box_plot"
	KindPieChartPlot              Kind = "pie_chart_plot"
	KindElementBarChartPlot       Kind = "element_bar_chart_plot"
	KindCorrelationPlot           Kind = "correlation_plot"
	KindHeatmapPlot               Kind = "heatmap_plot"
	KindClusteringPlot            Kind = "clustering_plot"
	KindIsotopicRatioPlot         Kind = "isotopic_ratio_plot"
	KindMolarRatioPlot            Kind = "molar_ratio_plot"
	KindTrianglePlot              Kind = "triangle_plot"
	KindElementCompositionPlot    Kind = "element_composition_plot"
	KindSingleMultipleElementPlot Kind = "single_multiple_element_plot"
	KindAIAssistant               Kind = "ai_assistant"
)

// Default channel names. Every current node type has at most one input and
// one output channel, but the contract allows arbitrary fixed channel sets.
const (
	ChannelInput  = "input"
	ChannelOutput = "output"
)

// Position is a node's location on the editor canvas. It has no effect on
// data flow; position changes are surfaced only for canvas rendering.
type Position struct {
	X float64
	Y float64
}

// Node is one unit in the workflow graph: a fixed set of named channels, a
// mutable configuration, and a Produce operation deriving an output dataset
// from the most recently accepted inputs.
//
// Produce must be pure: idempotent, free of side effects beyond building a
// fresh dataset, and it must never mutate records received as input (the
// same records may feed sibling consumers through fan-out). A nil result
// means "no data yet" and is a normal state, not an error.
type Node interface {
	ID() string
	Title() string
	Kind() Kind

	InputChannels() []string
	OutputChannels() []string
	HasInputChannel(name string) bool
	HasOutputChannel(name string) bool

	// Accept stores the most recently received dataset for an input
	// channel. It does not trigger recomputation; that is the graph's job.
	Accept(channel string, ds *particle.Dataset)

	// Input returns the last dataset accepted on a channel, which is kept
	// even after the delivering link is disconnected.
	Input(channel string) *particle.Dataset

	// Produce computes the output for one output channel from the stored
	// inputs and the node's configuration. Nil when configuration or data
	// is missing.
	Produce(channel string) *particle.Dataset

	Position() Position
	SetPosition(Position)

	// OnConfigurationChanged registers a callback fired after every
	// successful configuration change.
	OnConfigurationChanged(fn func())

	// OnPositionChanged registers a callback fired on node relocation.
	OnPositionChanged(fn func(Position))

	// Clone returns a new unconnected node of the same kind with a deep
	// copy of this node's configuration.
	Clone() Node
}

// BaseNode carries the state and signal plumbing shared by every node
// implementation: identity, channels, last-received inputs and the observer
// lists standing in for UI framework signals. The graph is single threaded
// by contract, so no locking is involved.
type BaseNode struct {
	id       string
	title    string
	kind     Kind
	inputs   []string
	outputs  []string
	position Position

	lastInput map[string]*particle.Dataset

	configListeners   []func()
	positionListeners []func(Position)
}

// NewBaseNode initializes the shared node state. The channel sets are fixed
// for the node's lifetime.
func NewBaseNode(title string, kind Kind, inputs, outputs []string) BaseNode {
	return BaseNode{
		id:        uuid.NewString(),
		title:     title,
		kind:      kind,
		inputs:    slices.Clone(inputs),
		outputs:   slices.Clone(outputs),
		lastInput: make(map[string]*particle.Dataset),
	}
}

// ID returns the node's unique identifier.
func (n *BaseNode) ID() string { return n.id }

// Title returns the display title.
func (n *BaseNode) Title() string { return n.title }

// Kind returns the node kind tag.
func (n *BaseNode) Kind() Kind { return n.kind }

// InputChannels lists the input channel names.
func (n *BaseNode) InputChannels() []string { return slices.Clone(n.inputs) }

// OutputChannels lists the output channel names.
func (n *BaseNode) OutputChannels() []string { return slices.Clone(n.outputs) }

// HasInputChannel reports whether the node exposes the named input channel.
func (n *BaseNode) HasInputChannel(name string) bool {
	return slices.Contains(n.inputs, name)
}

// HasOutputChannel reports whether the node exposes the named output channel.
func (n *BaseNode) HasOutputChannel(name string) bool {
	return slices.Contains(n.outputs, name)
}

// Accept stores the dataset as the last-known input for the channel.
// Deliveries on unknown channels are dropped.
func (n *BaseNode) Accept(channel string, ds *particle.Dataset) {
	if !n.HasInputChannel(channel) {
		log.Warn("node %q dropped data for unknown input channel %q", n.title, channel)
		return
	}
	n.lastInput[channel] = ds
}

// Input returns the last dataset accepted on the channel, nil when nothing
// has arrived yet.
func (n *BaseNode) Input(channel string) *particle.Dataset {
	return n.lastInput[channel]
}

// Position returns the canvas position.
func (n *BaseNode) Position() Position { return n.position }

// SetPosition relocates the node and notifies position listeners when the
// position actually changed.
func (n *BaseNode) SetPosition(pos Position) {
	if n.position == pos {
		return
	}
	n.position = pos
	for _, fn := range n.positionListeners {
		notifyPosition(fn, pos)
	}
}

// OnConfigurationChanged registers a configuration-changed callback.
func (n *BaseNode) OnConfigurationChanged(fn func()) {
	n.configListeners = append(n.configListeners, fn)
}

// OnPositionChanged registers a position-changed callback.
func (n *BaseNode) OnPositionChanged(fn func(Position)) {
	n.positionListeners = append(n.positionListeners, fn)
}

// notifyConfigurationChanged fires the configuration-changed callbacks
// synchronously. Concrete nodes call this after every successful configure.
func (n *BaseNode) notifyConfigurationChanged() {
	for _, fn := range n.configListeners {
		notifyConfig(fn)
	}
}

// notifyConfig guards a listener call so one misbehaving observer cannot
// abort the rest of the notification pass.
func notifyConfig(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("configuration listener panicked: %v", r)
		}
	}()
	fn()
}

func notifyPosition(fn func(Position), pos Position) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("position listener panicked: %v", r)
		}
	}()
	fn(pos)
}
