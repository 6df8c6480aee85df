// Package stats derives the summary quantities visualization consumers and
// the AI assistant report over a dataset: per-sample distribution summaries
// and element frequency tables, always computed over the concatenated
// particle population (sum groups are one population, never pre-summed).
package stats

import (
	"math"
	"sort"

	mstats "github.com/montanaflynn/stats"

	"github.com/spflow/spflow/particle"
)

// Quantity selects which per-record value map a summary is computed over.
type Quantity string

const (
	QuantityCounts             Quantity = "counts"
	QuantityElementMassFg      Quantity = "element_mass_fg"
	QuantityParticleMassFg     Quantity = "particle_mass_fg"
	QuantityElementMolesFmol   Quantity = "element_moles_fmol"
	QuantityParticleMolesFmol  Quantity = "particle_moles_fmol"
	QuantityElementDiameterNm  Quantity = "element_diameter_nm"
	QuantityParticleDiameterNm Quantity = "particle_diameter_nm"
)

// Summary describes the distribution of one quantity within one sample.
type Summary struct {
	Sample    string
	Particles int
	Values    int
	Mean      float64
	Median    float64
	StdDev    float64
	Min       float64
	Max       float64
	Q1        float64
	Q3        float64
}

// ElementCount pairs an isotope label with the number of particles carrying
// a positive raw count for it.
type ElementCount struct {
	Label     string
	Particles int
}

// fieldFor picks the value map a quantity reads from.
func fieldFor(rec *particle.Record, q Quantity) map[string]float64 {
	switch q {
	case QuantityElementMassFg:
		return rec.ElementMassFg
	case QuantityParticleMassFg:
		return rec.ParticleMassFg
	case QuantityElementMolesFmol:
		return rec.ElementMolesFmol
	case QuantityParticleMolesFmol:
		return rec.ParticleMolesFmol
	case QuantityElementDiameterNm:
		return rec.ElementDiameterNm
	case QuantityParticleDiameterNm:
		return rec.ParticleDiameterNm
	default:
		return rec.Elements
	}
}

// Summarize computes one Summary per dataset sample, in SampleNames order,
// over every present entry of the chosen quantity. Samples with no values
// still get an entry so consumers can render empty rows.
func Summarize(ds *particle.Dataset, q Quantity) []Summary {
	if ds == nil {
		return nil
	}

	bySample := ds.RecordsBySample()
	names := ds.SampleNames
	if len(names) == 0 && ds.SampleName != "" {
		names = []string{ds.SampleName}
	}

	out := make([]Summary, 0, len(names))
	for _, name := range names {
		records := bySample[name]
		var values []float64
		for _, rec := range records {
			for _, v := range fieldFor(rec, q) {
				if v > 0 && !math.IsNaN(v) {
					values = append(values, v)
				}
			}
		}
		out = append(out, summarize(name, len(records), values))
	}
	return out
}

func summarize(sample string, particles int, values []float64) Summary {
	s := Summary{Sample: sample, Particles: particles, Values: len(values)}
	if len(values) == 0 {
		return s
	}

	data := mstats.Float64Data(values)
	s.Mean, _ = mstats.Mean(data)
	s.Median, _ = mstats.Median(data)
	s.Min, _ = mstats.Min(data)
	s.Max, _ = mstats.Max(data)
	if len(values) > 1 {
		s.StdDev, _ = mstats.StandardDeviationSample(data)
	}
	if quartiles, err := mstats.Quartile(data); err == nil {
		s.Q1 = quartiles.Q1
		s.Q3 = quartiles.Q3
	}
	return s
}

// ElementFrequencies counts, per isotope label, how many records carry a
// positive raw count.
func ElementFrequencies(records []*particle.Record) map[string]int {
	freq := make(map[string]int)
	for _, rec := range records {
		for label, count := range rec.Elements {
			if count > 0 {
				freq[label]++
			}
		}
	}
	return freq
}

// TopElements returns the n most frequent elements, most frequent first.
// Ties break alphabetically so output is deterministic.
func TopElements(freq map[string]int, n int) []ElementCount {
	out := make([]ElementCount, 0, len(freq))
	for label, particles := range freq {
		out = append(out, ElementCount{Label: label, Particles: particles})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Particles != out[j].Particles {
			return out[i].Particles > out[j].Particles
		}
		return out[i].Label < out[j].Label
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// MeanElementsPerParticle is the average number of present elements per
// record, as reported in comparative sample breakdowns.
func MeanElementsPerParticle(records []*particle.Record) float64 {
	if len(records) == 0 {
		return 0
	}
	total := 0
	for _, rec := range records {
		for _, count := range rec.Elements {
			if count > 0 {
				total++
			}
		}
	}
	return float64(total) / float64(len(records))
}
