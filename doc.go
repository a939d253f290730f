// Package ggart composites a retained tree of vector primitives into a
// platform surface with gg.
//
// # Overview
//
// A [github.com/gogpu/ggart/artview.SurfaceView] is a node of a retained UI
// tree that owns no pixels of its own. Its children (groups, shapes and text
// from package primitive) are flattened into one surface once per frame: the
// view locks the surface canvas, paints the children back to front, clears
// their pending-update flags and posts the frame.
//
// The surface belongs to the windowing subsystem and can be created,
// resized or destroyed at any time, including in the middle of a draw. The
// view tolerates that: a frame drawn into a surface that went away is
// dropped, never posted, and never turned into a panic.
//
// # Quick Start
//
//	view := artview.New(artview.WithClearColor(gg.White))
//
//	shape := primitive.NewShape()
//	_ = shape.SetPath([]float64{primitive.PathArc, 50, 50, 40, 0, 2 * math.Pi, 0})
//	shape.SetFill(gg.RGB(1, 0, 0))
//	view.AddChild(shape)
//
//	host := surface.NewHost()
//	host.AddCallback(view)
//	_ = host.Create(100, 100) // first frame is drawn here
//
//	view.CollectExtraUpdates(frame.NewBatch()) // every following frame
//
// # Packages
//
//   - layout: padding values and edges
//   - node: the tree base and update-flag propagation
//   - surface: the surface contract, lifecycle tracking, CPU and GPU surfaces
//   - primitive: drawable group, shape and text nodes
//   - frame: the per-frame update batch
//   - artview: the surface-backed composite view
//
// # Logging
//
// Diagnostics go through log/slog. Nothing is logged until [SetLogger] is
// called; views may also be given their own logger with artview.WithLogger.
package ggart
