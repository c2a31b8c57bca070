// Package bangerman provides a frame-scoped 2D draw-command recorder.
//
// # Overview
//
// bangerman captures drawing intents (clear, filled and outlined rectangles,
// lines, sprites) issued during a frame into an append-only command buffer,
// fully decoupled from any rendering backend. Commands are authored in a
// fixed logical coordinate space (320x180 by default) and replayed by a
// backend with integer pixel-art scaling and letterbox centering.
//
// The recorder never draws. It produces a deterministic, ordered sequence of
// typed commands each frame; a Backend interprets them against a concrete
// drawing surface.
//
// # Quick Start
//
//	rec := bangerman.New(bangerman.Config{Capacity: 1024})
//	defer rec.Close()
//	rec.SetLogicalSize(320, 180)
//	rec.SetClearColor(bangerman.RGBA(0.05, 0.05, 0.1, 1))
//
//	for running {
//	    rec.BeginFrame()
//
//	    rec.SetDrawColor(bangerman.RGB(1, 0, 0))
//	    rec.RectFill(10, 10, 50, 30)
//
//	    rec.SetDrawColor(bangerman.RGB(0, 1, 0))
//	    rec.Line(0, 0, 319, 179)
//
//	    rec.EndFrame()
//
//	    bangerman.Replay(rec.Frame(), backend, windowW, windowH)
//	}
//
// # Frame Lifecycle
//
// BeginFrame resets the command buffer, primitive emitters append commands,
// EndFrame marks the frame finished, and Frame returns a borrowed snapshot
// that stays valid until the next BeginFrame on the same recorder.
//
// # Backends
//
// Backends register themselves by name, following the database/sql driver
// pattern:
//
//	import _ "github.com/bangdev/bangerman/backends/raster"
//
//	backend, err := bangerman.NewBackend("raster")
//
// The module ships a software raster backend (PNG output) and a raylib
// backend (windowed rendering via gen2brain/raylib-go).
//
// # Concurrency
//
// A Recorder is not safe for concurrent use. Recording is fully synchronous
// with the caller; multithreaded access requires external synchronization.
package bangerman
