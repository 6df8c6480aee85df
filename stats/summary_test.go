package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spflow/spflow/particle"
)

func rec(sample string, diameters map[string]float64) *particle.Record {
	elements := make(map[string]float64, len(diameters))
	for label := range diameters {
		elements[label] = 1
	}
	return &particle.Record{
		Elements:           elements,
		ParticleDiameterNm: diameters,
		SourceSample:       sample,
	}
}

func TestSummarize(t *testing.T) {
	ds := &particle.Dataset{
		Type:        particle.TypeMultiSample,
		SampleNames: []string{"A", "B"},
		Records: []*particle.Record{
			rec("A", map[string]float64{"Fe": 10}),
			rec("A", map[string]float64{"Fe": 20}),
			rec("A", map[string]float64{"Fe": 30}),
			rec("B", map[string]float64{"Fe": 40}),
		},
	}

	summaries := Summarize(ds, QuantityParticleDiameterNm)
	require.Len(t, summaries, 2)

	a := summaries[0]
	assert.Equal(t, "A", a.Sample)
	assert.Equal(t, 3, a.Particles)
	assert.Equal(t, 3, a.Values)
	assert.InDelta(t, 20, a.Mean, 1e-9)
	assert.InDelta(t, 20, a.Median, 1e-9)
	assert.InDelta(t, 10, a.StdDev, 1e-9)
	assert.InDelta(t, 10, a.Min, 1e-9)
	assert.InDelta(t, 30, a.Max, 1e-9)

	b := summaries[1]
	assert.Equal(t, 1, b.Particles)
	assert.InDelta(t, 40, b.Mean, 1e-9)
	assert.Zero(t, b.StdDev)
}

func TestSummarizeEdgeCases(t *testing.T) {
	t.Run("Nil dataset", func(t *testing.T) {
		assert.Nil(t, Summarize(nil, QuantityCounts))
	})

	t.Run("Single-sample dataset without SampleNames", func(t *testing.T) {
		ds := &particle.Dataset{
			Type:       particle.TypeSingleSample,
			SampleName: "Solo",
			Records:    []*particle.Record{rec("Solo", map[string]float64{"Fe": 5})},
		}
		summaries := Summarize(ds, QuantityParticleDiameterNm)
		require.Len(t, summaries, 1)
		assert.Equal(t, "Solo", summaries[0].Sample)
	})

	t.Run("NaN and non-positive values are skipped", func(t *testing.T) {
		ds := &particle.Dataset{
			Type:        particle.TypeMultiSample,
			SampleNames: []string{"A"},
			Records: []*particle.Record{
				rec("A", map[string]float64{"Fe": math.NaN(), "Ti": -3, "Au": 12}),
			},
		}
		summaries := Summarize(ds, QuantityParticleDiameterNm)
		require.Len(t, summaries, 1)
		assert.Equal(t, 1, summaries[0].Values)
		assert.InDelta(t, 12, summaries[0].Mean, 1e-9)
	})

	t.Run("Sample with no records still gets a row", func(t *testing.T) {
		ds := &particle.Dataset{
			Type:        particle.TypeMultiSample,
			SampleNames: []string{"Empty"},
		}
		summaries := Summarize(ds, QuantityCounts)
		require.Len(t, summaries, 1)
		assert.Zero(t, summaries[0].Particles)
		assert.Zero(t, summaries[0].Mean)
	})
}

func TestElementFrequencies(t *testing.T) {
	records := []*particle.Record{
		{Elements: map[string]float64{"Fe": 2, "Ti": 0}},
		{Elements: map[string]float64{"Fe": 1, "Au": 3}},
	}
	freq := ElementFrequencies(records)
	assert.Equal(t, 2, freq["Fe"])
	assert.Equal(t, 1, freq["Au"])
	assert.NotContains(t, freq, "Ti")
}

func TestTopElements(t *testing.T) {
	freq := map[string]int{"Fe": 5, "Ti": 5, "Au": 9, "Ag": 1}
	top := TopElements(freq, 3)
	require.Len(t, top, 3)
	assert.Equal(t, ElementCount{Label: "Au", Particles: 9}, top[0])
	// Ties break alphabetically.
	assert.Equal(t, "Fe", top[1].Label)
	assert.Equal(t, "Ti", top[2].Label)
}

func TestMeanElementsPerParticle(t *testing.T) {
	records := []*particle.Record{
		{Elements: map[string]float64{"Fe": 2, "Ti": 1}},
		{Elements: map[string]float64{"Fe": 1}},
	}
	assert.InDelta(t, 1.5, MeanElementsPerParticle(records), 1e-9)
	assert.Zero(t, MeanElementsPerParticle(nil))
}
