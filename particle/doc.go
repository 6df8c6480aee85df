// Package particle holds the data model flowing through the workflow graph:
// per-particle records, isotope selectors, sample configurations and the
// tagged Dataset variants carried on links, together with the pure filter
// and aggregation functions that build them.
//
// All functions in this package are pure: inputs are never mutated, and
// records are shallow-cloned before any field is stamped, because the same
// record objects may be shared across sibling consumers through fan-out.
package particle
