package particle

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	fe = Isotope{Symbol: "Fe", Mass: 56, Key: "Fe56", Label: "Fe"}
	ti = Isotope{Symbol: "Ti", Mass: 48, Key: "Ti48", Label: "Ti"}
	au = Isotope{Symbol: "Au", Mass: 197, Key: "Au197", Label: "Au"}
)

func testRecord(elements map[string]float64) *Record {
	mass := make(map[string]float64, len(elements))
	diameter := make(map[string]float64, len(elements))
	for label, count := range elements {
		mass[label] = count * 0.5
		diameter[label] = count * 10
	}
	return &Record{
		Elements:           elements,
		ElementMassFg:      mass,
		ElementDiameterNm:  diameter,
		ParticleMassFg:     mass,
		ParticleDiameterNm: diameter,
	}
}

func TestApplyIsotopeFilter(t *testing.T) {
	t.Run("Empty selector is the identity", func(t *testing.T) {
		records := []*Record{
			testRecord(map[string]float64{"Fe": 3}),
			testRecord(map[string]float64{"Ti": 1}),
		}
		out := ApplyIsotopeFilter(records, nil)
		assert.Equal(t, records, out)
		// Identity must hand back the same underlying records.
		assert.Same(t, records[0], out[0])
	})

	t.Run("Drops records without any selected element", func(t *testing.T) {
		records := []*Record{
			testRecord(map[string]float64{"Fe": 3, "Ti": 2}),
			testRecord(map[string]float64{"Ti": 5}),
		}
		out := ApplyIsotopeFilter(records, []Isotope{fe})
		require.Len(t, out, 1)
		assert.Equal(t, map[string]float64{"Fe": 3}, out[0].Elements)
	})

	t.Run("Never mutates input records", func(t *testing.T) {
		rec := testRecord(map[string]float64{"Fe": 3, "Ti": 2})
		_ = ApplyIsotopeFilter([]*Record{rec}, []Isotope{fe})
		assert.Equal(t, map[string]float64{"Fe": 3, "Ti": 2}, rec.Elements)
		assert.Contains(t, rec.ElementMassFg, "Ti")
	})

	t.Run("Idempotent", func(t *testing.T) {
		records := []*Record{
			testRecord(map[string]float64{"Fe": 3, "Ti": 2}),
			testRecord(map[string]float64{"Ti": 5}),
			testRecord(map[string]float64{"Fe": 1}),
		}
		selector := []Isotope{fe, au}
		once := ApplyIsotopeFilter(records, selector)
		twice := ApplyIsotopeFilter(once, selector)
		assert.Equal(t, once, twice)
	})

	t.Run("Presence invariant on derived fields", func(t *testing.T) {
		rec := &Record{
			Elements:          map[string]float64{"Fe": 2, "Ti": 1},
			ElementMassFg:     map[string]float64{"Fe": math.NaN(), "Ti": 4},
			ElementDiameterNm: map[string]float64{"Fe": -1, "Ti": 12},
		}
		out := ApplyIsotopeFilter([]*Record{rec}, []Isotope{fe, ti})
		require.Len(t, out, 1)

		for _, field := range []map[string]float64{
			out[0].Elements, out[0].ElementMassFg, out[0].ElementDiameterNm,
		} {
			for label, value := range field {
				assert.Greater(t, value, 0.0, "label %s", label)
				assert.False(t, math.IsNaN(value), "label %s", label)
			}
		}
		// NaN mass and negative diameter entries are gone.
		assert.NotContains(t, out[0].ElementMassFg, "Fe")
		assert.NotContains(t, out[0].ElementDiameterNm, "Fe")
	})

	t.Run("Zero raw count is treated as absent", func(t *testing.T) {
		rec := testRecord(map[string]float64{"Fe": 0})
		out := ApplyIsotopeFilter([]*Record{rec}, []Isotope{fe})
		assert.Empty(t, out)
	})
}

func TestElementSymbol(t *testing.T) {
	assert.Equal(t, "Fe", ElementSymbol("56Fe"))
	assert.Equal(t, "Fe", ElementSymbol("Fe"))
	assert.Equal(t, "Au", ElementSymbol("197Au"))
}
