package workflow

import (
	"errors"
	"slices"

	"github.com/spflow/spflow/particle"
	"github.com/spflow/spflow/provider"
)

// ErrNoWindowsSelected is returned when a batch configuration names no
// windows.
var ErrNoWindowsSelected = errors.New("no windows selected")

// WindowSource names one independent session ("window") contributing to a
// batch merge. An empty Label is assigned positionally (W1, W2, ...) at
// merge time.
type WindowSource struct {
	Label    string
	Provider provider.RawDataProvider
}

// BatchNode merges the samples of several windows into one batch dataset
// with disambiguated sample names. It has no input channels; its output is
// consumed by the single- and multi-sample selectors, which apply isotope
// filtering downstream.
type BatchNode struct {
	BaseNode

	windows []WindowSource
}

// NewBatchNode creates an unconfigured batch selector.
func NewBatchNode() *BatchNode {
	return &BatchNode{
		BaseNode: NewBaseNode("Batch Selector", KindBatchSampleSelector,
			nil, []string{ChannelOutput}),
	}
}

// Configure selects the windows to merge. Fires the configuration-changed
// signal on success.
func (n *BatchNode) Configure(windows []WindowSource) error {
	if len(windows) == 0 {
		return ErrNoWindowsSelected
	}
	n.windows = slices.Clone(windows)
	n.notifyConfigurationChanged()
	return nil
}

// Windows returns the configured window sources.
func (n *BatchNode) Windows() []WindowSource { return slices.Clone(n.windows) }

// Produce merges the configured windows. Nil while no windows are selected.
func (n *BatchNode) Produce(channel string) *particle.Dataset {
	if channel != ChannelOutput || len(n.windows) == 0 {
		return nil
	}

	merged := make([]particle.Window, 0, len(n.windows))
	for _, src := range n.windows {
		window := particle.Window{Label: src.Label}
		if src.Provider != nil {
			names := src.Provider.SampleNames()
			window.Isotopes = src.Provider.AvailableIsotopes(names)
			for _, name := range names {
				window.Samples = append(window.Samples, particle.WindowSample{
					Name:    name,
					Records: src.Provider.ParticleRecords(name),
				})
			}
		}
		merged = append(merged, window)
	}
	return particle.MergeBatchWindows(merged)
}

// Clone copies the node's configuration into a new unconnected node.
func (n *BatchNode) Clone() Node {
	c := NewBatchNode()
	c.windows = slices.Clone(n.windows)
	return c
}
