// Package pgf builds PGFPlots figures as an in-memory scene graph and renders
// them to LaTeX source.
//
// # Overview
//
// A figure is a three-level tree that mirrors the LaTeX environments it
// renders to:
//
//   - [Picture]: the tikzpicture environment, owning zero or more axes
//   - [Axis]: the axis environment, owning zero or more plots
//   - [Plot2D]: an \addplot command with its coordinate [Series]
//
// Every node holds an ordered list of options ("keys"). Picture, axis and
// plot keys are distinct interfaces ([PictureKey], [AxisKey], [PlotKey]) so
// the compiler rejects a plot option on an axis. [Custom] satisfies all three
// and is the escape hatch for options this package does not model.
//
// # Conflict Groups
//
// Each key belongs to a [Group]. Adding a key removes every key of the same
// group from that node first, then appends the new key, so the last write
// wins and the surviving key moves to the end of the list. Groups are scoped
// to a single node: an axis key never evicts a key on one of its plots.
//
// Several key types may share one group. [Type2D], [XBar] and [YBar] all
// belong to [GroupType2D] because a plot has exactly one drawing style:
//
//	plot := pgf.NewPlot2D()
//	plot.AddKey(pgf.XBar{Width: 10})
//	plot.AddKey(pgf.YBar{Width: 19.5}) // evicts the XBar
//
// [GroupCustom] is never deduplicated; custom keys accumulate in insertion
// order.
//
// # Custom Keys Are Not Escaped
//
// [Custom] text is written verbatim into the options clause. Braces, commas
// and backslashes are passed through untouched, which means a caller can
// inject arbitrary LaTeX into the generated document. Only pass custom keys
// built from trusted input.
//
// # Rendering
//
// Nodes implement [fmt.Stringer] and [io.WriterTo]. Rendering is a pure read
// of the tree; rendering an unmodified tree twice yields identical text. The
// output uses literal newlines and tabs for readability. [Picture.Standalone]
// wraps the picture in a complete standalone LaTeX document:
//
//	axis := pgf.NewAxis()
//	axis.SetTitle("Squares")
//	plot := pgf.NewPlot2D()
//	plot.Coordinates = pgf.Series{pgf.Coord(0, 0), pgf.Coord(1, 1), pgf.Coord(2, 4)}
//	axis.Plots = append(axis.Plots, *plot)
//
//	picture := pgf.NewPicture()
//	picture.Axes = append(picture.Axes, *axis)
//	source := picture.Standalone()
//
// # Ownership
//
// Child nodes are stored by value. Appending a node to its parent copies it;
// later changes to the original do not affect the copy. Key lists are never
// shared between copies.
package pgf
