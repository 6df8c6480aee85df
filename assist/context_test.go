package assist

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spflow/spflow/particle"
)

func TestDataContextNoData(t *testing.T) {
	assert.Contains(t, DataContext(nil), "No particle data available")
	assert.Contains(t, DataContext(&particle.Dataset{Type: particle.TypeSingleSample}),
		"No particle data available")
}

func TestDataContextSingleSample(t *testing.T) {
	ds := singleDataset()
	ds.Isotopes = []particle.Isotope{
		{Symbol: "Fe", Mass: 56, Key: "Fe56", Label: "Fe"},
	}

	out := DataContext(ds)
	assert.Contains(t, out, "COMPREHENSIVE DATASET ANALYSIS")
	assert.Contains(t, out, "Sample Name: Lake")
	assert.Contains(t, out, "Total Particles Analyzed: 2")
	assert.Contains(t, out, "Fe: found in 2 particles (100.0%)")
	assert.Contains(t, out, "Ti: found in 1 particles (50.0%)")
	assert.Contains(t, out, "STATISTICAL SUMMARY")
	assert.Contains(t, out, "AVAILABLE ISOTOPES:\n- Fe")
}

func TestDataContextMultiSample(t *testing.T) {
	mk := func(sample string, elements map[string]float64) *particle.Record {
		return &particle.Record{SourceSample: sample, Elements: elements}
	}
	ds := &particle.Dataset{
		Type:        particle.TypeMultiSample,
		SampleNames: []string{"A", "B"},
		Records: []*particle.Record{
			mk("A", map[string]float64{"Fe": 1}),
			mk("A", map[string]float64{"Fe": 2, "Ti": 1}),
			mk("B", map[string]float64{"Au": 4}),
		},
	}

	out := DataContext(ds)
	assert.Contains(t, out, "MULTI-SAMPLE DATASET ANALYSIS")
	assert.Contains(t, out, "Total Samples: 2")
	assert.Contains(t, out, "Combined Particles: 3")
	assert.Contains(t, out, "Top Elements: Fe (2 particles), Ti (1 particles)")
	assert.Contains(t, out, "A: 1.5 avg elements per particle")
	assert.Contains(t, out, "B: 1.0 avg elements per particle")
}

func TestDataContextCustomNames(t *testing.T) {
	ds := &particle.Dataset{
		Type:        particle.TypeMultiSample,
		SampleNames: []string{"A"},
		Configs: []particle.SampleConfig{
			{Sample: "A", Included: true, CustomName: "Control"},
		},
		Records: []*particle.Record{
			{SourceSample: "A", Elements: map[string]float64{"Fe": 1}},
		},
	}

	out := DataContext(ds)
	assert.Contains(t, out, "Control:", "breakdown uses the custom display name")
}

func TestDataContextIsotopeListTruncated(t *testing.T) {
	ds := singleDataset()
	for i := 0; i < 25; i++ {
		ds.Isotopes = append(ds.Isotopes, particle.Isotope{Label: "X"})
	}

	out := DataContext(ds)
	assert.Contains(t, out, "... and 5 more isotopes")
}
