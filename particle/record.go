package particle

import (
	"math"
	"strings"
)

// Isotope identifies one isotope in scope for filtering. Label is the key
// used in the per-record value maps (e.g. "56Fe").
type Isotope struct {
	Symbol string
	Mass   int
	Key    string
	Label  string
}

// Record is one detected particle. Elements holds raw counts per isotope
// label; the six derived maps share the same key set and arrive already
// populated from upstream instrument processing.
//
// A key with a non-positive or NaN value is semantically absent: filtering
// and statistics treat value > 0 (and, on the derived maps, not NaN) as the
// presence test.
type Record struct {
	Elements           map[string]float64
	ElementMassFg      map[string]float64
	ParticleMassFg     map[string]float64
	ElementMolesFmol   map[string]float64
	ParticleMolesFmol  map[string]float64
	ElementDiameterNm  map[string]float64
	ParticleDiameterNm map[string]float64

	// SourceSample is the display sample or group name this particle is
	// currently attributed to. Rewritten when the particle is grouped.
	SourceSample string

	// OriginalSample is the sample the particle was physically measured in.
	// Never rewritten once set.
	OriginalSample string

	// Provenance tags set during aggregation.
	SumGroup     string
	IsSummed     bool
	SourceWindow string
}

// Clone returns a shallow copy of the record. The value maps stay shared
// with the original until a caller installs fresh ones, so a clone is safe
// to restamp but its maps must never be written in place.
func (r *Record) Clone() *Record {
	c := *r
	return &c
}

// HasElement reports whether the record carries a positive raw count for the
// given isotope label.
func (r *Record) HasElement(label string) bool {
	return r.Elements[label] > 0
}

// present reports the presence test for one map entry. Raw counts use
// value > 0 only; derived quantities additionally exclude NaN.
func present(value float64, derived bool) bool {
	if derived && math.IsNaN(value) {
		return false
	}
	return value > 0
}

// ElementSymbol strips a leading mass number from an isotope label,
// so "56Fe" yields "Fe" and a bare "Fe" is returned unchanged.
func ElementSymbol(label string) string {
	return strings.TrimLeft(label, "0123456789")
}
