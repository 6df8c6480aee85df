package assist

import (
	"fmt"
	"strings"

	"github.com/spflow/spflow/particle"
	"github.com/spflow/spflow/stats"
)

const topElementLimit = 15

// DataContext renders a dataset into the textual context block appended to
// the assistant's system prompt. Nil or empty datasets produce an explicit
// "no data" status so the model does not hallucinate numbers.
func DataContext(ds *particle.Dataset) string {
	if ds == nil || len(ds.Records) == 0 {
		return "STATUS: No particle data available."
	}

	switch ds.Type {
	case particle.TypeSingleSample:
		return singleSampleContext(ds)
	case particle.TypeMultiSample, particle.TypeBatchSampleList:
		return multiSampleContext(ds)
	default:
		return fmt.Sprintf("DATA: %s format available.", ds.Type)
	}
}

func singleSampleContext(ds *particle.Dataset) string {
	var sb strings.Builder

	sb.WriteString("====================\n")
	sb.WriteString("COMPREHENSIVE DATASET ANALYSIS\n")
	sb.WriteString("====================\n\n")
	sb.WriteString("SAMPLE INFORMATION:\n")
	fmt.Fprintf(&sb, "- Sample Name: %s\n", ds.SampleName)
	fmt.Fprintf(&sb, "- Total Particles Analyzed: %d\n", len(ds.Records))
	fmt.Fprintf(&sb, "- Isotopes Selected: %d\n", len(ds.Isotopes))
	sb.WriteString("- Coverage: Complete dataset (all particles analyzed)\n\n")

	sb.WriteString(elementAnalysis(ds.Records))
	sb.WriteString("\n")
	sb.WriteString(statisticalSummary(ds))

	sb.WriteString("\nAVAILABLE ISOTOPES:\n")
	if len(ds.Isotopes) > 0 {
		for i, iso := range ds.Isotopes {
			if i == 20 {
				fmt.Fprintf(&sb, "- ... and %d more isotopes\n", len(ds.Isotopes)-20)
				break
			}
			fmt.Fprintf(&sb, "- %s\n", iso.Label)
		}
	} else {
		sb.WriteString("- All detected isotopes included\n")
	}

	sb.WriteString("\nUse this comprehensive data to answer questions about particle composition, element distributions, and statistical patterns.")
	return sb.String()
}

func multiSampleContext(ds *particle.Dataset) string {
	var sb strings.Builder
	bySample := ds.RecordsBySample()

	sb.WriteString("====================\n")
	sb.WriteString("MULTI-SAMPLE DATASET ANALYSIS\n")
	sb.WriteString("====================\n\n")
	sb.WriteString("DATASET OVERVIEW:\n")
	fmt.Fprintf(&sb, "- Total Samples: %d\n", len(ds.SampleNames))
	fmt.Fprintf(&sb, "- Combined Particles: %d\n", len(ds.Records))
	fmt.Fprintf(&sb, "- Isotopes Selected: %d\n", len(ds.Isotopes))
	sb.WriteString("- Coverage: Complete datasets (all particles from all samples)\n\n")

	sb.WriteString("SAMPLE BREAKDOWN:\n")
	for _, name := range ds.SampleNames {
		records := bySample[name]
		if len(records) == 0 {
			continue
		}
		fmt.Fprintf(&sb, "\n%s:\n", ds.DisplayName(name))
		fmt.Fprintf(&sb, "  - Particles: %d\n", len(records))
		top := stats.TopElements(stats.ElementFrequencies(records), 5)
		if len(top) > 0 {
			parts := make([]string, len(top))
			for i, ec := range top {
				parts[i] = fmt.Sprintf("%s (%d particles)", ec.Label, ec.Particles)
			}
			fmt.Fprintf(&sb, "  - Top Elements: %s\n", strings.Join(parts, ", "))
		}
	}

	sb.WriteString("\n")
	sb.WriteString(elementAnalysis(ds.Records))

	sb.WriteString("\nCOMPARATIVE ANALYSIS:\n")
	for _, name := range ds.SampleNames {
		records := bySample[name]
		if len(records) == 0 {
			continue
		}
		fmt.Fprintf(&sb, "- %s: %.1f avg elements per particle\n",
			ds.DisplayName(name), stats.MeanElementsPerParticle(records))
	}

	sb.WriteString("\nUse this comprehensive multi-sample data to compare samples, identify patterns, and analyze cross-sample relationships.")
	return sb.String()
}

// elementAnalysis summarizes element frequency across a particle population.
func elementAnalysis(records []*particle.Record) string {
	freq := stats.ElementFrequencies(records)
	if len(freq) == 0 {
		return "ELEMENT ANALYSIS:\n- No elements detected in particles\n"
	}

	var sb strings.Builder
	sb.WriteString("COMPREHENSIVE ELEMENT ANALYSIS:\n")
	fmt.Fprintf(&sb, "- Total Unique Elements: %d\n", len(freq))
	fmt.Fprintf(&sb, "- Analysis Coverage: %d particles (100%% of dataset)\n\n", len(records))

	sb.WriteString("TOP ELEMENTS (by frequency):\n")
	for i, ec := range stats.TopElements(freq, topElementLimit) {
		share := float64(ec.Particles) / float64(len(records)) * 100
		fmt.Fprintf(&sb, "%2d. %s: found in %d particles (%.1f%%)\n",
			i+1, ec.Label, ec.Particles, share)
	}
	return sb.String()
}

// statisticalSummary renders per-sample mass distribution summaries.
func statisticalSummary(ds *particle.Dataset) string {
	summaries := stats.Summarize(ds, stats.QuantityElementMassFg)
	if len(summaries) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("STATISTICAL SUMMARY (element mass, fg):\n")
	for _, s := range summaries {
		if s.Values == 0 {
			fmt.Fprintf(&sb, "- %s: no mass values\n", s.Sample)
			continue
		}
		fmt.Fprintf(&sb, "- %s: mean %.3f, median %.3f, range %.3f-%.3f (%d values)\n",
			s.Sample, s.Mean, s.Median, s.Min, s.Max, s.Values)
	}
	return sb.String()
}
