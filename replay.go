package bangerman

import "image"

// Backend is the interface replaying backends must implement. A backend
// receives commands already mapped to physical pixels and issues them
// against its concrete drawing surface.
//
// Backends are created via the registry using NewBackend(name) and
// registered via Register in their init functions.
//
// # Implementation Contract
//
// Begin is called once per replayed frame with the computed viewport and
// must prepare the surface, including clearing the full physical area so
// letterbox bars outside the viewport have a defined background (the
// backend's own background color, typically black, distinct from the
// frame's clear color). Drawing methods arrive in strict emission order;
// later commands draw over earlier ones. End finalizes the frame.
type Backend interface {
	// Begin prepares the surface for a frame at the given viewport.
	// It must clear the entire physical surface.
	Begin(vp Viewport) error

	// Clear fills the viewport area with the given color.
	Clear(c Color)

	// FillRect fills an axis-aligned rectangle, in physical pixels.
	FillRect(r Rect, c Color)

	// StrokeRect outlines an axis-aligned rectangle, in physical pixels.
	StrokeRect(r Rect, c Color)

	// Line draws a line segment, in physical pixels.
	Line(x0, y0, x1, y1 float64, c Color)

	// End finalizes the frame.
	End() error
}

// TextureBackend extends Backend with textured quad support. A backend
// that owns no texture table simply does not implement it; Replay skips
// sprite commands for such backends instead of aborting.
type TextureBackend interface {
	Backend

	// Sprite draws the src region of a texture into dst, tinted with c.
	// dst is in physical pixels, src in texture pixels (empty src means
	// the whole texture). Unknown handles must be ignored.
	Sprite(tex TextureID, dst, src Rect, c Color)
}

// ImageBackend extends Backend with access to the rendered frame as an
// in-memory image. Software backends implement it so callers can inspect
// or encode the result without depending on the concrete backend type.
type ImageBackend interface {
	Backend

	// Image returns the rendered surface. It is nil before the first
	// Begin; the backend owns the image and may reuse it across frames.
	Image() *image.NRGBA
}

// Replay maps a frame's commands onto a physical surface and executes them
// against the backend.
//
// The viewport is computed once per call: integer scale, then centering
// offsets. Every command's logical coordinates are premultiplied by the
// scale and offset before the backend sees them, so the backend draws
// against the full physical surface with no transform of its own.
//
// The frame's clear color is applied to the viewport before the commands
// run, matching recorders without an implicit clear; frames recorded with
// AutoClear simply clear once more from index 0. Sprite commands are
// skipped when the backend lacks texture support or the handle is invalid;
// replay of subsequent commands continues.
func Replay(f Frame, b Backend, physicalW, physicalH int) error {
	vp := FitViewport(float64(physicalW), float64(physicalH), f.LogicalWidth, f.LogicalHeight)

	if err := b.Begin(vp); err != nil {
		return err
	}

	b.Clear(f.ClearColor)

	tb, hasTextures := b.(TextureBackend)

	for _, cmd := range f.Commands {
		switch c := cmd.(type) {
		case ClearCommand:
			b.Clear(c.Color)
		case RectFillCommand:
			b.FillRect(vp.MapRect(c.Rect), c.Color)
		case RectOutlineCommand:
			b.StrokeRect(vp.MapRect(c.Rect), c.Color)
		case LineCommand:
			x0, y0 := vp.MapPoint(c.X0, c.Y0)
			x1, y1 := vp.MapPoint(c.X1, c.Y1)
			b.Line(x0, y0, x1, y1, c.Color)
		case SpriteCommand:
			if !hasTextures {
				Logger().Debug("bangerman: sprite skipped, backend has no texture support")
				continue
			}
			if !c.Texture.IsValid() {
				Logger().Debug("bangerman: sprite skipped, invalid texture handle")
				continue
			}
			tb.Sprite(c.Texture, vp.MapRect(c.Dst), c.Src, c.Color)
		default:
			// Unknown command types are skipped, not fatal.
			Logger().Debug("bangerman: unknown command skipped", "type", cmd.Type())
		}
	}

	return b.End()
}
