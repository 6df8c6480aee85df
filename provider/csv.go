package provider

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/spflow/spflow/particle"
)

// particleRow is one long-format CSV row: one line per particle/isotope
// pair, matching the per-sample particle exports produced by the processing
// stage.
type particleRow struct {
	ParticleID         int     `csv:"particle_id"`
	Isotope            string  `csv:"isotope"`
	Counts             float64 `csv:"counts"`
	ElementMassFg      float64 `csv:"element_mass_fg"`
	ParticleMassFg     float64 `csv:"particle_mass_fg"`
	ElementMolesFmol   float64 `csv:"element_moles_fmol"`
	ParticleMolesFmol  float64 `csv:"particle_moles_fmol"`
	ElementDiameterNm  float64 `csv:"element_diameter_nm"`
	ParticleDiameterNm float64 `csv:"particle_diameter_nm"`
}

// CSVProvider serves particle records loaded from per-sample CSV files. The
// sample name is the file name without its .csv extension.
type CSVProvider struct {
	mem *MemoryProvider
}

var _ RawDataProvider = (*CSVProvider)(nil)

// LoadCSVDir loads every .csv file in dir into a provider. Files are loaded
// in lexical order so sample order is stable across runs.
func LoadCSVDir(dir string) (*CSVProvider, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read sample directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".csv") {
			continue
		}
		files = append(files, entry.Name())
	}
	sort.Strings(files)

	p := &CSVProvider{mem: NewMemoryProvider()}
	for _, name := range files {
		sample := strings.TrimSuffix(name, filepath.Ext(name))
		records, err := loadSampleCSV(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("load sample %q: %w", sample, err)
		}
		p.mem.AddSample(sample, records)
	}
	return p, nil
}

// loadSampleCSV reads one per-sample file and folds its long-format rows
// into particle records keyed by particle id.
func loadSampleCSV(path string) ([]*particle.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var rows []*particleRow
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, err
	}

	var (
		order   []int
		byID    = make(map[int]*particle.Record)
		records []*particle.Record
	)
	for _, row := range rows {
		rec, ok := byID[row.ParticleID]
		if !ok {
			rec = &particle.Record{
				Elements:           make(map[string]float64),
				ElementMassFg:      make(map[string]float64),
				ParticleMassFg:     make(map[string]float64),
				ElementMolesFmol:   make(map[string]float64),
				ParticleMolesFmol:  make(map[string]float64),
				ElementDiameterNm:  make(map[string]float64),
				ParticleDiameterNm: make(map[string]float64),
			}
			byID[row.ParticleID] = rec
			order = append(order, row.ParticleID)
		}
		rec.Elements[row.Isotope] = row.Counts
		rec.ElementMassFg[row.Isotope] = row.ElementMassFg
		rec.ParticleMassFg[row.Isotope] = row.ParticleMassFg
		rec.ElementMolesFmol[row.Isotope] = row.ElementMolesFmol
		rec.ParticleMolesFmol[row.Isotope] = row.ParticleMolesFmol
		rec.ElementDiameterNm[row.Isotope] = row.ElementDiameterNm
		rec.ParticleDiameterNm[row.Isotope] = row.ParticleDiameterNm
	}
	for _, id := range order {
		records = append(records, byID[id])
	}
	return records, nil
}

// SampleNames lists loaded samples.
func (p *CSVProvider) SampleNames() []string {
	return p.mem.SampleNames()
}

// ParticleRecords returns the records of one loaded sample.
func (p *CSVProvider) ParticleRecords(sample string) []*particle.Record {
	return p.mem.ParticleRecords(sample)
}

// AvailableIsotopes derives element symbol -> isotope labels from the
// loaded records.
func (p *CSVProvider) AvailableIsotopes(samples []string) map[string][]string {
	return p.mem.AvailableIsotopes(samples)
}
