package workflow

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spflow/spflow/provider"
)

// ErrUnknownKind is returned when a factory lookup names an unregistered
// node kind.
var ErrUnknownKind = errors.New("unknown node kind")

// Deps carries the shared dependencies injected into node factories.
type Deps struct {
	Provider provider.RawDataProvider
}

// Factory builds a fresh node of one kind.
type Factory func(deps Deps) Node

// Registry maps node kinds to factories. A new registry is preloaded with
// every builtin kind; applications register additional kinds to extend the
// palette.
type Registry struct {
	factories map[Kind]Factory
	order     []Kind
}

// NewRegistry creates a registry preloaded with the builtin node kinds.
func NewRegistry() *Registry {
	r := &Registry{factories: make(map[Kind]Factory)}

	r.Register(KindSampleSelector, func(d Deps) Node { return NewSampleNode(d.Provider) })
	r.Register(KindMultipleSampleSelector, func(d Deps) Node { return NewMultiSampleNode(d.Provider) })
	r.Register(KindBatchSampleSelector, func(Deps) Node { return NewBatchNode() })

	for _, kind := range []Kind{
		KindHistogramPlot,
		KindBoxPlot,
		KindPieChartPlot,
		KindElementBarChartPlot,
		KindCorrelationPlot,
		KindHeatmapPlot,
		KindClusteringPlot,
		KindIsotopicRatioPlot,
		KindMolarRatioPlot,
		KindTrianglePlot,
		KindElementCompositionPlot,
		KindSingleMultipleElementPlot,
		KindAIAssistant,
	} {
		k := kind
		r.Register(k, func(Deps) Node { return NewViewNode(k) })
	}
	return r
}

// Register installs or replaces the factory for a kind.
func (r *Registry) Register(kind Kind, factory Factory) {
	if _, exists := r.factories[kind]; !exists {
		r.order = append(r.order, kind)
	}
	r.factories[kind] = factory
}

// Kinds lists the registered kinds in registration order.
func (r *Registry) Kinds() []Kind {
	return slices.Clone(r.order)
}

// New builds a fresh node of the given kind.
func (r *Registry) New(kind Kind, deps Deps) (Node, error) {
	factory, ok := r.factories[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	return factory(deps), nil
}
