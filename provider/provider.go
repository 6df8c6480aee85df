package provider

import (
	"sort"

	"github.com/spflow/spflow/particle"
)

// RawDataProvider is the raw-data surface a workflow node pulls from,
// injected instead of reached through a shared application object: sample
// names, per-sample particle records, and the isotope labels observed across
// a set of samples (used to populate selection UIs).
type RawDataProvider interface {
	// SampleNames lists the known samples in load order.
	SampleNames() []string

	// ParticleRecords returns the particles measured in one sample. Unknown
	// samples yield nil. Callers must treat the returned records as
	// read-only shared state.
	ParticleRecords(sample string) []*particle.Record

	// AvailableIsotopes returns element symbol -> sorted isotope labels
	// observed across the given samples.
	AvailableIsotopes(samples []string) map[string][]string
}

// availableIsotopes derives the element -> isotope-label map from the
// records of the given samples, using the presence test on raw counts.
func availableIsotopes(samples []string, lookup func(string) []*particle.Record) map[string][]string {
	seen := make(map[string]map[string]bool)
	for _, sample := range samples {
		for _, rec := range lookup(sample) {
			for label, count := range rec.Elements {
				if count <= 0 {
					continue
				}
				symbol := particle.ElementSymbol(label)
				if seen[symbol] == nil {
					seen[symbol] = make(map[string]bool)
				}
				seen[symbol][label] = true
			}
		}
	}

	out := make(map[string][]string, len(seen))
	for symbol, labels := range seen {
		list := make([]string, 0, len(labels))
		for label := range labels {
			list = append(list, label)
		}
		sort.Strings(list)
		out[symbol] = list
	}
	return out
}
