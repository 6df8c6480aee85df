package workflow

import (
	"errors"
	"slices"
	"strings"

	"github.com/spflow/spflow/particle"
	"github.com/spflow/spflow/provider"
)

// ErrNoSampleSelected is returned when a configuration names no sample.
var ErrNoSampleSelected = errors.New("no sample selected")

// SampleNode selects one sample (or a set of summed replicates) and emits a
// single-sample dataset filtered to its isotope selection.
//
// When a batch dataset is connected upstream, the node draws its records
// from the batch instead of the injected provider; any other upstream
// dataset passes straight through unchanged.
type SampleNode struct {
	BaseNode

	provider provider.RawDataProvider

	selectedSample   string
	isotopes         []particle.Isotope
	sumReplicates    bool
	replicateSamples []string
}

// NewSampleNode creates an unconfigured single-sample selector.
func NewSampleNode(p provider.RawDataProvider) *SampleNode {
	return &SampleNode{
		BaseNode: NewBaseNode("Single Sample", KindSampleSelector,
			[]string{ChannelInput}, []string{ChannelOutput}),
		provider: p,
	}
}

// Configure selects one sample and an isotope selection, clearing any
// replicate summing. Fires the configuration-changed signal on success.
func (n *SampleNode) Configure(sample string, isotopes []particle.Isotope) error {
	if sample == "" {
		return ErrNoSampleSelected
	}
	n.selectedSample = sample
	n.isotopes = slices.Clone(isotopes)
	n.sumReplicates = false
	n.replicateSamples = nil
	n.notifyConfigurationChanged()
	return nil
}

// ConfigureReplicates selects a set of replicate samples whose populations
// are concatenated under one "Summed: ..." display name.
func (n *SampleNode) ConfigureReplicates(samples []string, isotopes []particle.Isotope) error {
	if len(samples) == 0 {
		return ErrNoSampleSelected
	}
	n.replicateSamples = slices.Clone(samples)
	n.selectedSample = samples[0]
	n.sumReplicates = true
	n.isotopes = slices.Clone(isotopes)
	n.notifyConfigurationChanged()
	return nil
}

// SelectedSample returns the currently selected sample name.
func (n *SampleNode) SelectedSample() string { return n.selectedSample }

// Isotopes returns the current isotope selection.
func (n *SampleNode) Isotopes() []particle.Isotope { return slices.Clone(n.isotopes) }

// AvailableSamples lists the samples the node can select from: the batch
// input's samples when one is connected, the provider's otherwise.
func (n *SampleNode) AvailableSamples() []string {
	if in := n.Input(ChannelInput); in != nil && in.Type == particle.TypeBatchSampleList {
		return slices.Clone(in.SampleNames)
	}
	if n.provider == nil {
		return nil
	}
	return n.provider.SampleNames()
}

// Produce builds the node's output dataset. Nil while no sample is selected
// or the selection has no records.
func (n *SampleNode) Produce(channel string) *particle.Dataset {
	if channel != ChannelOutput {
		return nil
	}

	in := n.Input(ChannelInput)
	if in != nil && in.Type != particle.TypeBatchSampleList {
		// Already-aggregated upstream data passes straight through.
		return in
	}

	raw := n.rawRecords(in)
	if len(raw) == 0 {
		return nil
	}
	return particle.BuildSingleSampleDataset(n.displayName(), raw, n.isotopes)
}

// Clone copies the node's configuration into a new unconnected node.
func (n *SampleNode) Clone() Node {
	c := NewSampleNode(n.provider)
	c.selectedSample = n.selectedSample
	c.isotopes = slices.Clone(n.isotopes)
	c.sumReplicates = n.sumReplicates
	c.replicateSamples = slices.Clone(n.replicateSamples)
	return c
}

func (n *SampleNode) displayName() string {
	if n.sumReplicates && len(n.replicateSamples) > 0 {
		return "Summed: " + strings.Join(n.replicateSamples, ", ")
	}
	return n.selectedSample
}

func (n *SampleNode) rawRecords(in *particle.Dataset) []*particle.Record {
	if n.sumReplicates && len(n.replicateSamples) > 0 {
		var out []*particle.Record
		for _, sample := range n.replicateSamples {
			for _, rec := range n.sourceRecords(in, sample) {
				c := rec.Clone()
				if c.OriginalSample == "" {
					c.OriginalSample = sample
				}
				out = append(out, c)
			}
		}
		return out
	}
	if n.selectedSample == "" {
		return nil
	}
	return n.sourceRecords(in, n.selectedSample)
}

// sourceRecords pulls one sample's records from the batch input when
// present, from the provider otherwise.
func (n *SampleNode) sourceRecords(in *particle.Dataset, sample string) []*particle.Record {
	if in != nil && in.Type == particle.TypeBatchSampleList {
		var out []*particle.Record
		for _, rec := range in.Records {
			if rec.SourceSample == sample {
				out = append(out, rec)
			}
		}
		return out
	}
	if n.provider == nil {
		return nil
	}
	return n.provider.ParticleRecords(sample)
}
