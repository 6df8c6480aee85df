package workflow

import "github.com/spflow/spflow/particle"

// ViewNode is a pure consumer: a plot or assistant view that renders its
// input dataset and produces nothing. Its configuration is an open key/value
// map since every view kind carries different rendering options.
type ViewNode struct {
	BaseNode

	config map[string]any
}

var viewTitles = map[Kind]string{
	KindHistogramPlot:             "Histogram",
	KindBoxPlot:                   "Box Plot",
	KindPieChartPlot:              "Pie Chart",
	KindElementBarChartPlot:       "Element Bar Chart",
	KindCorrelationPlot:           "Correlation",
	KindHeatmapPlot:               "Heatmap",
	KindClusteringPlot:            "Clustering",
	KindIsotopicRatioPlot:         "Isotopic Ratio",
	KindMolarRatioPlot:            "Molar Ratio",
	KindTrianglePlot:              "Triangle Plot",
	KindElementCompositionPlot:    "Element Composition",
	KindSingleMultipleElementPlot: "Single/Multiple Element",
	KindAIAssistant:               "AI Assistant",
}

// NewViewNode creates a view node of the given kind with its default
// rendering options. Unknown kinds get the kind tag as title and an empty
// configuration.
func NewViewNode(kind Kind) *ViewNode {
	title, ok := viewTitles[kind]
	if !ok {
		title = string(kind)
	}
	return &ViewNode{
		BaseNode: NewBaseNode(title, kind, []string{ChannelInput}, nil),
		config:   defaultViewConfig(kind),
	}
}

// defaultViewConfig returns the initial options for a view kind.
func defaultViewConfig(kind Kind) map[string]any {
	switch kind {
	case KindHistogramPlot:
		return map[string]any{
			"bins":  20,
			"alpha": 0.7,
			"log_x": false,
			"log_y": false,
		}
	case KindAIAssistant:
		return map[string]any{
			"model":       "llama3.2",
			"temperature": 0.7,
		}
	default:
		return map[string]any{}
	}
}

// Configure replaces the node's options wholesale. Fires the
// configuration-changed signal.
func (n *ViewNode) Configure(config map[string]any) {
	n.config = deepCopyConfig(config)
	n.notifyConfigurationChanged()
}

// SetOption updates a single option. Fires the configuration-changed signal.
func (n *ViewNode) SetOption(key string, value any) {
	if n.config == nil {
		n.config = map[string]any{}
	}
	n.config[key] = value
	n.notifyConfigurationChanged()
}

// Config returns a copy of the current options.
func (n *ViewNode) Config() map[string]any {
	return deepCopyConfig(n.config)
}

// Dataset returns the dataset the view should render, nil while no data has
// arrived.
func (n *ViewNode) Dataset() *particle.Dataset {
	return n.Input(ChannelInput)
}

// Produce always returns nil: views are terminal consumers with no output
// channels.
func (n *ViewNode) Produce(string) *particle.Dataset { return nil }

// Clone copies the node's options into a new unconnected node.
func (n *ViewNode) Clone() Node {
	c := NewViewNode(n.Kind())
	c.config = deepCopyConfig(n.config)
	return c
}

// deepCopyConfig copies a config map, recursing into nested string-keyed
// maps. Slice and other reference values are shared; view options are
// treated as immutable once set.
func deepCopyConfig(in map[string]any) map[string]any {
	if in == nil {
		return map[string]any{}
	}
	out := make(map[string]any, len(in))
	for k, v := range in {
		if nested, ok := v.(map[string]any); ok {
			out[k] = deepCopyConfig(nested)
			continue
		}
		out[k] = v
	}
	return out
}
