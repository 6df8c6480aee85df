package particle

import (
	"fmt"
	"sort"
)

// WindowSample is one sample inside a batch window.
type WindowSample struct {
	Name    string
	Records []*Record
}

// Window is an independent top-level session whose samples are merged into a
// batch dataset. Isotopes maps element symbol to the isotope labels the
// window has in scope.
type Window struct {
	Label    string
	Samples  []WindowSample
	Isotopes map[string][]string
}

// MergeBatchWindows merges independent windows into one batch dataset. Every
// sample name is disambiguated with its window label ("S1 [W1]"), record
// copies are rewritten to the disambiguated SourceSample with SourceWindow
// and OriginalSample set, and the per-window available-isotope maps are
// unioned per element symbol. No isotope filtering happens at this stage.
//
// Windows without an explicit Label are labelled W1, W2, ... by position.
func MergeBatchWindows(windows []Window) *Dataset {
	if len(windows) == 0 {
		return nil
	}

	var (
		sampleNames []string
		records     []*Record
		available   = make(map[string]map[string]bool)
	)

	for i, window := range windows {
		label := window.Label
		if label == "" {
			label = fmt.Sprintf("W%d", i+1)
		}

		for element, isotopes := range window.Isotopes {
			if available[element] == nil {
				available[element] = make(map[string]bool)
			}
			for _, iso := range isotopes {
				available[element][iso] = true
			}
		}

		for _, sample := range window.Samples {
			displayName := fmt.Sprintf("%s [%s]", sample.Name, label)
			sampleNames = append(sampleNames, displayName)

			for _, rec := range sample.Records {
				c := rec.Clone()
				c.SourceSample = displayName
				c.SourceWindow = label
				c.OriginalSample = sample.Name
				records = append(records, c)
			}
		}
	}

	availableIsotopes := make(map[string][]string, len(available))
	for element, set := range available {
		isotopes := make([]string, 0, len(set))
		for iso := range set {
			isotopes = append(isotopes, iso)
		}
		sort.Strings(isotopes)
		availableIsotopes[element] = isotopes
	}

	return &Dataset{
		Type:              TypeBatchSampleList,
		SampleNames:       sampleNames,
		Records:           records,
		AvailableIsotopes: availableIsotopes,
		TotalParticles:    len(records),
		FilteredParticles: len(records),
		SourceWindows:     len(windows),
	}
}
