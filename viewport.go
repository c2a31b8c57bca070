package bangerman

import "math"

// Viewport describes where and at what magnification the logical canvas
// lands on a physical surface: an integer scale factor plus a centered,
// letterboxed placement.
type Viewport struct {
	// Scale is the integer magnification, never below 1.
	Scale int

	// X, Y is the top-left corner of the scaled canvas on the physical
	// surface; the centering offset.
	X, Y float64

	// W, H is the scaled canvas size (logical size times Scale).
	W, H float64

	// PhysicalW, PhysicalH is the full physical surface size.
	PhysicalW, PhysicalH float64
}

// FitViewport computes the integer-scaled, centered placement of a logical
// canvas on a physical surface.
//
// The scale is max(1, floor(min(pw/lw, ph/lh))): whole-number magnification
// keeps pixel-art edges crisp, and the floor never drops below 1 even when
// the surface is smaller than the canvas (content then clips). The scaled
// canvas is centered, leaving letterbox or pillarbox bars when the aspect
// ratios differ.
//
// Non-positive logical dimensions yield a degenerate viewport at scale 1
// with zero size.
func FitViewport(physicalW, physicalH, logicalW, logicalH float64) Viewport {
	vp := Viewport{Scale: 1, PhysicalW: physicalW, PhysicalH: physicalH}
	if logicalW <= 0 || logicalH <= 0 {
		return vp
	}

	scale := math.Floor(math.Min(physicalW/logicalW, physicalH/logicalH))
	if scale < 1 {
		scale = 1
	}
	vp.Scale = int(scale)

	vp.W = logicalW * scale
	vp.H = logicalH * scale
	vp.X = (physicalW - vp.W) / 2
	vp.Y = (physicalH - vp.H) / 2
	return vp
}

// MapPoint maps a point from logical coordinates to physical pixels.
func (v Viewport) MapPoint(x, y float64) (px, py float64) {
	s := float64(v.Scale)
	return v.X + x*s, v.Y + y*s
}

// MapRect maps a rectangle from logical coordinates to physical pixels.
func (v Viewport) MapRect(r Rect) Rect {
	s := float64(v.Scale)
	return Rect{
		X: v.X + r.X*s,
		Y: v.Y + r.Y*s,
		W: r.W * s,
		H: r.H * s,
	}
}

// Bounds returns the viewport rectangle on the physical surface.
func (v Viewport) Bounds() Rect {
	return Rect{X: v.X, Y: v.Y, W: v.W, H: v.H}
}
