// Package provider supplies raw per-sample particle data to workflow nodes.
//
// RawDataProvider is the boundary the graph core depends on; MemoryProvider
// and CSVProvider are the two bundled implementations. Nodes receive a
// provider at construction instead of reaching through shared ambient state.
package provider
