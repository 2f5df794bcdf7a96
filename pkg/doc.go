// Package pkg provides the libraries behind the necklace TikZ generator.
//
// # Overview
//
// necklace draws one labeled graph found by the vertex-magic search. The
// pkg directory is organized by pipeline stage:
//
//  1. [report] - read the search report (header, matrix, records)
//  2. [perm] - parse a permutation record and hand out its labels
//  3. [graph] - the adjacency matrix
//  4. [layout] - place vertices in three columns
//  5. [render/tikz] - emit the TikZ picture
//  6. [pipeline] - run the stages in order
//
// Supporting packages: [errors] for coded errors, [observability] for stage
// hooks and [buildinfo] for version information.
//
// # Architecture
//
//	output_<C>_<K>.txt
//	         ↓
//	    [report] + [perm] (matrix and one record)
//	         ↓
//	    [layout] (node coordinates)
//	         ↓
//	    [render/tikz] (tikzpicture on stdout)
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/necklace/pkg/layout"
//	    "github.com/matzehuels/necklace/pkg/pipeline"
//	)
//
//	res, err := pipeline.NewRunner(nil).Execute(ctx, pipeline.Options{
//	    Params: layout.Params{CycleSize: 4, Connecting: 2},
//	    Index:  1,
//	})
//	if err != nil {
//	    return err
//	}
//	fmt.Print(res.TikZ)
package pkg
