// Package topology is the entry point for grid analysis. It chains the
// stages of the engine and packages their results in a Report:
//
//	core.BuildAdjacency → reach.Cloud → span.Build → cycle.FromTree
//
// A connected network gets its full cycle basis. A disconnected one is not an
// error here: the Report carries the cloud and the component split, and the
// cycles of the root's own component.
//
// Usage
//
//	a := topology.New(topology.WithLogger(logger))
//	rep, err := a.Analyze(ctx, g, 14319)
//
//	// Several candidate roots over one shared adjacency:
//	reps, err := a.AnalyzeRoots(ctx, g, []int{1, 2, 3}, 4)
//
// Every Report gets a RunID (a UUID) that is also attached to its log lines.
// Classify and HasCycle answer the shape questions without a root.
package topology
