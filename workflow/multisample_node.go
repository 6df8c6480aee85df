package workflow

import (
	"errors"
	"slices"

	"github.com/spflow/spflow/particle"
	"github.com/spflow/spflow/provider"
)

// ErrNoSamplesIncluded is returned when a multi-sample configuration has no
// included sample.
var ErrNoSamplesIncluded = errors.New("no samples included")

// MultiSampleNode selects several samples, optionally merged into sum
// groups, and emits the combined multi-sample dataset. Like SampleNode it
// consumes a connected batch dataset in place of the provider and passes
// other upstream datasets through unchanged.
type MultiSampleNode struct {
	BaseNode

	provider provider.RawDataProvider

	configs  []particle.SampleConfig
	isotopes []particle.Isotope
}

// NewMultiSampleNode creates an unconfigured multi-sample selector.
func NewMultiSampleNode(p provider.RawDataProvider) *MultiSampleNode {
	return &MultiSampleNode{
		BaseNode: NewBaseNode("Multiple Samples", KindMultipleSampleSelector,
			[]string{ChannelInput}, []string{ChannelOutput}),
		provider: p,
	}
}

// Configure installs the per-sample configuration and isotope selection.
// At least one sample must be included. Fires the configuration-changed
// signal on success.
func (n *MultiSampleNode) Configure(configs []particle.SampleConfig, isotopes []particle.Isotope) error {
	included := false
	for _, cfg := range configs {
		if cfg.Included {
			included = true
			break
		}
	}
	if !included {
		return ErrNoSamplesIncluded
	}
	n.configs = slices.Clone(configs)
	n.isotopes = slices.Clone(isotopes)
	n.notifyConfigurationChanged()
	return nil
}

// Configs returns the current sample configuration.
func (n *MultiSampleNode) Configs() []particle.SampleConfig { return slices.Clone(n.configs) }

// Isotopes returns the current isotope selection.
func (n *MultiSampleNode) Isotopes() []particle.Isotope { return slices.Clone(n.isotopes) }

// AvailableSamples lists the samples the node can select from.
func (n *MultiSampleNode) AvailableSamples() []string {
	if in := n.Input(ChannelInput); in != nil && in.Type == particle.TypeBatchSampleList {
		return slices.Clone(in.SampleNames)
	}
	if n.provider == nil {
		return nil
	}
	return n.provider.SampleNames()
}

// Produce builds the combined dataset for the configured samples. Nil while
// nothing is included or nothing survives filtering.
func (n *MultiSampleNode) Produce(channel string) *particle.Dataset {
	if channel != ChannelOutput {
		return nil
	}

	in := n.Input(ChannelInput)
	if in != nil && in.Type != particle.TypeBatchSampleList {
		return in
	}
	if len(n.configs) == 0 {
		return nil
	}

	return particle.BuildMultiSampleDataset(n.configs, n.rawBySample(in), n.isotopes)
}

// Clone copies the node's configuration into a new unconnected node.
func (n *MultiSampleNode) Clone() Node {
	c := NewMultiSampleNode(n.provider)
	c.configs = slices.Clone(n.configs)
	c.isotopes = slices.Clone(n.isotopes)
	return c
}

// rawBySample assembles the raw record lookup the aggregation works from:
// batch records partitioned by source sample when a batch is connected,
// provider lookups otherwise.
func (n *MultiSampleNode) rawBySample(in *particle.Dataset) map[string][]*particle.Record {
	if in != nil && in.Type == particle.TypeBatchSampleList {
		return in.RecordsBySample()
	}

	out := make(map[string][]*particle.Record, len(n.configs))
	if n.provider == nil {
		return out
	}
	for _, cfg := range n.configs {
		if !cfg.Included {
			continue
		}
		if records := n.provider.ParticleRecords(cfg.Sample); records != nil {
			out[cfg.Sample] = records
		}
	}
	return out
}
