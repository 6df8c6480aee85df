package particle

// ApplyIsotopeFilter restricts records to the isotopes named by the
// selector. For every kept record a clone with freshly built value maps is
// returned; records without any positive raw count left after filtering are
// dropped entirely. An empty selector is the identity and returns the input
// slice unchanged.
func ApplyIsotopeFilter(records []*Record, selector []Isotope) []*Record {
	if len(selector) == 0 {
		return records
	}

	selected := make(map[string]bool, len(selector))
	for _, iso := range selector {
		selected[iso.Label] = true
	}

	filtered := make([]*Record, 0, len(records))
	for _, rec := range records {
		keep := false
		for label, count := range rec.Elements {
			if selected[label] && count > 0 {
				keep = true
				break
			}
		}
		if !keep {
			continue
		}

		c := rec.Clone()
		c.Elements = filterMap(rec.Elements, selected, false)
		c.ElementMassFg = filterMap(rec.ElementMassFg, selected, true)
		c.ParticleMassFg = filterMap(rec.ParticleMassFg, selected, true)
		c.ElementMolesFmol = filterMap(rec.ElementMolesFmol, selected, true)
		c.ParticleMolesFmol = filterMap(rec.ParticleMolesFmol, selected, true)
		c.ElementDiameterNm = filterMap(rec.ElementDiameterNm, selected, true)
		c.ParticleDiameterNm = filterMap(rec.ParticleDiameterNm, selected, true)
		filtered = append(filtered, c)
	}

	return filtered
}

// filterMap builds a new map holding only the selected labels that pass the
// presence test. A nil input stays nil.
func filterMap(m map[string]float64, selected map[string]bool, derived bool) map[string]float64 {
	if m == nil {
		return nil
	}
	out := make(map[string]float64, len(m))
	for label, value := range m {
		if selected[label] && present(value, derived) {
			out[label] = value
		}
	}
	return out
}
