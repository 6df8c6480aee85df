package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryBuiltins(t *testing.T) {
	r := NewRegistry()
	deps := Deps{Provider: sampleProvider()}

	for _, kind := range []Kind{
		KindSampleSelector,
		KindMultipleSampleSelector,
		KindBatchSampleSelector,
		KindHistogramPlot,
		KindClusteringPlot,
		KindAIAssistant,
	} {
		n, err := r.New(kind, deps)
		require.NoError(t, err, "kind %s", kind)
		assert.Equal(t, kind, n.Kind())
	}
}

func TestRegistrySelectorsGetProvider(t *testing.T) {
	r := NewRegistry()
	p := sampleProvider()

	n, err := r.New(KindSampleSelector, Deps{Provider: p})
	require.NoError(t, err)

	sample, ok := n.(*SampleNode)
	require.True(t, ok)
	assert.Equal(t, p.SampleNames(), sample.AvailableSamples())
}

func TestRegistryUnknownKind(t *testing.T) {
	r := NewRegistry()
	_, err := r.New(Kind("nonsense"), Deps{})
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestRegistryRegisterCustomKind(t *testing.T) {
	r := NewRegistry()
	custom := Kind("custom_view")
	r.Register(custom, func(Deps) Node { return NewViewNode(custom) })

	n, err := r.New(custom, Deps{})
	require.NoError(t, err)
	assert.Equal(t, custom, n.Kind())
	assert.Contains(t, r.Kinds(), custom)
}

func TestRegistryKindsOrderStable(t *testing.T) {
	r := NewRegistry()
	kinds := r.Kinds()
	require.NotEmpty(t, kinds)
	assert.Equal(t, KindSampleSelector, kinds[0])

	// Re-registering must not duplicate the kind in the palette.
	r.Register(KindSampleSelector, func(d Deps) Node { return NewSampleNode(d.Provider) })
	assert.Equal(t, kinds, r.Kinds())
}
