package particle

// DatasetType tags the three dataset variants carried on workflow links.
type DatasetType string

const (
	// TypeSingleSample is a dataset produced from one sample (or one set of
	// summed replicates presented under a single display name).
	TypeSingleSample DatasetType = "sample_data"

	// TypeMultiSample is the concatenation of several samples and sum
	// groups, each particle attributed via its SourceSample.
	TypeMultiSample DatasetType = "multiple_sample_data"

	// TypeBatchSampleList is a merge of independent windows with
	// disambiguated sample names, not yet filtered or grouped.
	TypeBatchSampleList DatasetType = "batch_sample_list"
)

// SampleConfig is the per-sample entry of a multi-sample selection. Samples
// sharing a non-empty SumGroup are concatenated into one logical group whose
// emitted SourceSample becomes the group name. CustomName only affects
// display, never grouping or provenance.
type SampleConfig struct {
	Sample     string
	Included   bool
	SumGroup   string
	CustomName string
}

// Dataset is the value carried on every workflow link. The Type tag decides
// which fields are meaningful. Datasets are constructed fresh on every
// produce call and must never be mutated by a consumer: the underlying
// records may be shared with sibling consumers through fan-out.
type Dataset struct {
	Type DatasetType

	// SampleName is the display name of a single-sample dataset.
	SampleName string

	// SampleNames lists each distinct SourceSample value after grouping
	// (multi-sample) or each disambiguated window sample (batch).
	SampleNames []string

	// OriginalSampleNames lists the included samples before grouping.
	OriginalSampleNames []string

	// Configs is the sample configuration a multi-sample dataset was built
	// from.
	Configs []SampleConfig

	// Records is the concatenation of all contributing particles.
	Records []*Record

	// Isotopes is the selector the dataset was filtered with. Empty means
	// all isotopes pass.
	Isotopes []Isotope

	// AvailableIsotopes maps element symbol to the isotope labels observed
	// across a batch merge. Only set on batch datasets.
	AvailableIsotopes map[string][]string

	// TotalParticles is the pre-filter particle count, FilteredParticles the
	// post-filter count. Diagnostic only.
	TotalParticles    int
	FilteredParticles int

	// SourceWindows is the number of windows merged into a batch dataset.
	SourceWindows int
}

// RecordsBySample partitions the dataset's records by their SourceSample,
// preserving record order within each sample.
func (d *Dataset) RecordsBySample() map[string][]*Record {
	out := make(map[string][]*Record)
	for _, rec := range d.Records {
		out[rec.SourceSample] = append(out[rec.SourceSample], rec)
	}
	return out
}

// DisplayName resolves the display name for a sample, honoring a CustomName
// from the dataset's configuration when one is set.
func (d *Dataset) DisplayName(sample string) string {
	for _, cfg := range d.Configs {
		if cfg.Sample == sample && cfg.CustomName != "" {
			return cfg.CustomName
		}
	}
	return sample
}
