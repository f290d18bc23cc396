// Package pkg provides the libraries behind the pgfplots command.
//
// # Overview
//
// pgfplots builds PGFPlots figures as a scene graph, serializes them to
// LaTeX and compiles the result. The pkg directory is organized as:
//
//  1. [pgf] - Scene graph (picture, axis, plot), keys and serialization
//  2. [compile] - Compilation pipeline, scratch workspaces and viewer
//  3. [figure] - Declarative figure files (JSON, YAML, TOML)
//  4. [dataset] - Coordinate import from CSV and XLSX
//  5. [server] - HTTP API for rendering and compiling
//  6. [cache] - Compiled artifact cache
//
// Supporting packages: [errors] (coded errors), [observability] (hooks) and
// [buildinfo] (version information).
//
// # Data Flow
//
//	figure file / Go code
//	         ↓
//	    [pgf] Picture → Standalone() document
//	         ↓
//	    [compile] Runner: workspace → strategy → artifact check
//	         ↓
//	    PDF/DVI artifact → viewer
//
// # Quick Start
//
//	import (
//	    "context"
//	    "github.com/matzehuels/pgfplots/pkg/compile"
//	    "github.com/matzehuels/pgfplots/pkg/pgf"
//	)
//
//	plot := pgf.NewPlot2D()
//	plot.Coordinates = pgf.SeriesFrom([]float64{0, 1, 2, 3}, func(x float64) float64 { return x * x })
//	plot.AddKey(pgf.SmoothPlot)
//
//	axis := pgf.NewAxis()
//	axis.SetTitle("Squares")
//	axis.Plots = append(axis.Plots, *plot)
//
//	runner := compile.NewRunner(compile.NewExternal(compile.PdfLaTeX))
//	res, err := runner.ShowPicture(context.Background(), axis.Picture())
package pkg
