// spflow - Visual Workflow Engine for Single-Particle Mass Spectrometry Data
//
// spflow is the headless core of a node-based analysis editor for single
// particle ICP-MS data. Samples, plots and an AI assistant are nodes on a
// canvas; connecting them builds a directed acyclic workflow through which
// particle datasets flow and recompute automatically whenever a node is
// reconfigured.
//
// # Quick Start
//
// Install the package:
//
//	go get github.com/spflow/spflow
//
// Basic example:
//
//	package main
//
//	import (
//		"fmt"
//
//		"github.com/spflow/spflow/provider"
//		"github.com/spflow/spflow/workflow"
//	)
//
//	func main() {
//		// Load processed particle data, one CSV per sample
//		p, err := provider.LoadCSVDir("data/")
//		if err != nil {
//			panic(err)
//		}
//
//		reg := workflow.NewRegistry()
//		g := workflow.NewGraph()
//		deps := workflow.Deps{Provider: p}
//
//		src, _ := reg.New(workflow.KindSampleSelector, deps)
//		plot, _ := reg.New(workflow.KindHistogramPlot, deps)
//		g.AddNode(src)
//		g.AddNode(plot)
//
//		g.Connect(src, workflow.ChannelOutput, plot, workflow.ChannelInput)
//
//		sample := src.(*workflow.SampleNode)
//		sample.Configure(sample.AvailableSamples()[0], nil)
//
//		ds := plot.(*workflow.ViewNode).Dataset()
//		fmt.Printf("%d particles ready to render\n", len(ds.Records))
//	}
//
// # Key Features
//
//   - Workflow Graph: nodes with named channels, replace-on-connect inputs,
//     cycle rejection and synchronous change propagation
//   - Sample Selection: single samples, summed replicates, multi-sample
//     configurations with sum groups and custom display names
//   - Batch Merging: samples from independent sessions merged under
//     window-tagged names ("sample [W1]")
//   - Isotope Filtering: per-node element selections applied without ever
//     mutating shared records
//   - Statistics: per-sample distribution summaries and element frequency
//     tables for plots and reports
//   - AI Assistant: dataset-aware chat sessions against a local Ollama
//     model, with sanitized markdown rendering
//   - Visualization: Mermaid and DOT export of the workflow topology
//
// # Package Structure
//
// workflow/
// The node graph: Graph, Node, Link, the kind registry and the concrete
// selector and view nodes.
//
// particle/
// The data model (Record, Dataset, Isotope) and the pure aggregation
// primitives: isotope filtering, single/multi-sample building and batch
// window merging.
//
// provider/
// RawDataProvider implementations supplying processed particle records:
// in-memory and CSV-directory backed.
//
// stats/
// Distribution summaries and element frequency tables computed over
// dataset populations.
//
// assist/
// The AI assistant session bound to a dataset snapshot.
//
// log/
// The leveled logging facade shared by all packages.
//
// # Data Flow
//
// Datasets carried on links come in three shapes: single-sample,
// multi-sample and batch sample lists. Selector nodes build them fresh on
// every Produce call; links never cache. A nil dataset means "no data yet"
// and is a normal state for unconfigured or disconnected nodes.
package spflow
