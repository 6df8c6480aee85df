package particle

// BuildSingleSampleDataset filters the raw records of one sample and wraps
// them in a single-sample dataset. Returns nil when there are no raw records
// to work with.
//
// Every emitted record is a clone stamped with the display name; records
// that already carry an OriginalSample (for example out of a batch merge)
// keep it.
func BuildSingleSampleDataset(sampleName string, raw []*Record, selector []Isotope) *Dataset {
	if len(raw) == 0 {
		return nil
	}

	filtered := ApplyIsotopeFilter(raw, selector)

	records := make([]*Record, 0, len(filtered))
	for _, rec := range filtered {
		c := rec.Clone()
		c.SourceSample = sampleName
		if c.OriginalSample == "" {
			c.OriginalSample = sampleName
		}
		records = append(records, c)
	}

	return &Dataset{
		Type:              TypeSingleSample,
		SampleName:        sampleName,
		SampleNames:       []string{sampleName},
		Records:           records,
		Isotopes:          selector,
		TotalParticles:    len(raw),
		FilteredParticles: len(records),
	}
}

// BuildMultiSampleDataset combines the configured samples into one dataset.
//
// Samples with an empty SumGroup stay individually attributed; samples
// sharing a non-empty SumGroup are concatenated under the group name, one
// record per member particle (grouping is population concatenation, not a
// numeric sum). Excluded samples contribute nothing, and a configured sample
// missing from rawBySample contributes zero records without error.
//
// SampleNames lists one entry per individual sample followed by one entry
// per distinct group, in first-seen configuration order. Returns nil when no
// sample is included or nothing survives filtering.
func BuildMultiSampleDataset(configs []SampleConfig, rawBySample map[string][]*Record, selector []Isotope) *Dataset {
	var (
		included    []string
		individuals []string
		groupOrder  []string
		groups      = make(map[string][]string)
	)

	for _, cfg := range configs {
		if !cfg.Included {
			continue
		}
		included = append(included, cfg.Sample)
		if cfg.SumGroup == "" {
			individuals = append(individuals, cfg.Sample)
			continue
		}
		if _, seen := groups[cfg.SumGroup]; !seen {
			groupOrder = append(groupOrder, cfg.SumGroup)
		}
		groups[cfg.SumGroup] = append(groups[cfg.SumGroup], cfg.Sample)
	}

	if len(included) == 0 {
		return nil
	}

	sampleNames := make([]string, 0, len(individuals)+len(groupOrder))
	sampleNames = append(sampleNames, individuals...)
	sampleNames = append(sampleNames, groupOrder...)

	var combined []*Record
	total := 0

	for _, sample := range individuals {
		raw := rawBySample[sample]
		total += len(raw)
		for _, rec := range ApplyIsotopeFilter(raw, selector) {
			c := rec.Clone()
			c.SourceSample = sample
			if c.OriginalSample == "" {
				c.OriginalSample = sample
			}
			combined = append(combined, c)
		}
	}

	for _, group := range groupOrder {
		for _, sample := range groups[group] {
			raw := rawBySample[sample]
			total += len(raw)
			for _, rec := range ApplyIsotopeFilter(raw, selector) {
				c := rec.Clone()
				c.SourceSample = group
				if c.OriginalSample == "" {
					c.OriginalSample = sample
				}
				c.SumGroup = group
				c.IsSummed = true
				combined = append(combined, c)
			}
		}
	}

	if len(combined) == 0 {
		return nil
	}

	cfgCopy := make([]SampleConfig, len(configs))
	copy(cfgCopy, configs)

	return &Dataset{
		Type:                TypeMultiSample,
		SampleNames:         sampleNames,
		OriginalSampleNames: included,
		Configs:             cfgCopy,
		Records:             combined,
		Isotopes:            selector,
		TotalParticles:      total,
		FilteredParticles:   len(combined),
	}
}
