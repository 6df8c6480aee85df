package provider

import "github.com/spflow/spflow/particle"

// MemoryProvider is an in-memory RawDataProvider. It is the usual choice in
// tests and for embedders that already hold processed particle data.
type MemoryProvider struct {
	order   []string
	records map[string][]*particle.Record
}

var _ RawDataProvider = (*MemoryProvider)(nil)

// NewMemoryProvider creates an empty in-memory provider.
func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{records: make(map[string][]*particle.Record)}
}

// AddSample registers a sample with its particle records. Adding the same
// sample again replaces its records and keeps the original position.
func (p *MemoryProvider) AddSample(name string, records []*particle.Record) {
	if _, exists := p.records[name]; !exists {
		p.order = append(p.order, name)
	}
	p.records[name] = records
}

// SampleNames lists samples in insertion order.
func (p *MemoryProvider) SampleNames() []string {
	out := make([]string, len(p.order))
	copy(out, p.order)
	return out
}

// ParticleRecords returns the records of one sample, nil when unknown.
func (p *MemoryProvider) ParticleRecords(sample string) []*particle.Record {
	return p.records[sample]
}

// AvailableIsotopes derives element symbol -> isotope labels from the
// records of the given samples.
func (p *MemoryProvider) AvailableIsotopes(samples []string) map[string][]string {
	return availableIsotopes(samples, p.ParticleRecords)
}
