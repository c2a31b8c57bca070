// Package raster provides a software backend for replaying recorded frames
// into an in-memory image.
//
// The raster backend serves multiple purposes:
//   - Reference implementation for other backends
//   - Pixel-accurate testing of the replay and viewport mapping
//   - Headless rendering with PNG output
//
// Primitives are drawn with integer pixel operations (Bresenham lines,
// inclusive rectangle fills) and source-over blending. Sprites are scaled
// with nearest-neighbor interpolation to preserve pixel-art edges.
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/bangdev/bangerman/backends/raster"
//
//	// Create via registry
//	backend, _ := bangerman.NewBackend("raster")
//
//	// Or create directly to access textures and output
//	backend := raster.New()
//	tex := backend.AddTexture(img)
//
//	bangerman.Replay(rec.Frame(), backend, 800, 600)
//	backend.SavePNG("frame.png")
package raster

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	xdraw "golang.org/x/image/draw"

	"github.com/bangdev/bangerman"
)

func init() {
	bangerman.Register("raster", func() bangerman.Backend {
		return New()
	})
}

// Backend renders replayed frames into an *image.NRGBA.
// It implements bangerman.Backend and bangerman.TextureBackend.
//
// The Backend is not safe for concurrent use.
type Backend struct {
	img        *image.NRGBA
	vp         bangerman.Viewport
	background bangerman.Color
	textures   []image.Image
}

// New creates a raster backend with a black letterbox background.
// The image surface is allocated lazily on the first Begin.
func New() *Backend {
	return &Backend{background: bangerman.Black}
}

// SetBackground sets the color used for the area outside the viewport
// (the letterbox bars). Default is opaque black.
func (b *Backend) SetBackground(c bangerman.Color) {
	b.background = c
}

// AddTexture registers an image in the backend's texture table and returns
// its handle. A nil image yields InvalidTexture.
func (b *Backend) AddTexture(img image.Image) bangerman.TextureID {
	if img == nil {
		return bangerman.InvalidTexture
	}
	b.textures = append(b.textures, img)
	// #nosec G115 -- table size is bounded by available memory
	return bangerman.TextureID(uint32(len(b.textures) - 1))
}

// texture resolves a handle against the texture table.
// Returns nil for handles outside the table.
func (b *Backend) texture(id bangerman.TextureID) image.Image {
	if !id.IsValid() || int(id) >= len(b.textures) {
		return nil
	}
	return b.textures[id]
}

// Begin implements bangerman.Backend. It (re)allocates the surface to the
// physical size and clears all of it to the background color.
func (b *Backend) Begin(vp bangerman.Viewport) error {
	w := int(vp.PhysicalW)
	h := int(vp.PhysicalH)
	if w <= 0 || h <= 0 {
		return fmt.Errorf("raster: invalid surface size %dx%d", w, h)
	}

	b.vp = vp
	if b.img == nil || b.img.Bounds().Dx() != w || b.img.Bounds().Dy() != h {
		b.img = image.NewNRGBA(image.Rect(0, 0, w, h))
	}

	bg := b.background.NRGBA()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			b.img.SetNRGBA(x, y, bg)
		}
	}
	return nil
}

// End implements bangerman.Backend.
func (b *Backend) End() error {
	if b.img == nil {
		return fmt.Errorf("raster: End called before Begin")
	}
	return nil
}

// Clear implements bangerman.Backend; it fills the viewport area.
func (b *Backend) Clear(c bangerman.Color) {
	b.FillRect(b.vp.Bounds(), c)
}

// FillRect implements bangerman.Backend.
func (b *Backend) FillRect(r bangerman.Rect, c bangerman.Color) {
	if b.img == nil || r.Empty() {
		return
	}
	bounds := pixelBounds(r).Intersect(b.img.Bounds())
	src := c.NRGBA()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			b.blendPixel(x, y, src)
		}
	}
}

// StrokeRect implements bangerman.Backend; the outline is one physical
// pixel thick, drawn just inside the rectangle.
func (b *Backend) StrokeRect(r bangerman.Rect, c bangerman.Color) {
	if b.img == nil || r.Empty() {
		return
	}
	bounds := pixelBounds(r)
	src := c.NRGBA()
	top, bottom := bounds.Min.Y, bounds.Max.Y-1
	left, right := bounds.Min.X, bounds.Max.X-1
	// Each border pixel is composited exactly once; a rect one pixel tall
	// or wide has coinciding edges that must not blend twice.
	for x := left; x <= right; x++ {
		b.blendPixel(x, top, src)
		if bottom > top {
			b.blendPixel(x, bottom, src)
		}
	}
	for y := top + 1; y < bottom; y++ {
		b.blendPixel(left, y, src)
		if right > left {
			b.blendPixel(right, y, src)
		}
	}
}

// Line implements bangerman.Backend using Bresenham's algorithm on the
// rounded endpoints.
func (b *Backend) Line(x0, y0, x1, y1 float64, c bangerman.Color) {
	if b.img == nil {
		return
	}
	ix0, iy0 := int(math.Round(x0)), int(math.Round(y0))
	ix1, iy1 := int(math.Round(x1)), int(math.Round(y1))
	src := c.NRGBA()

	dx := abs(ix1 - ix0)
	dy := -abs(iy1 - iy0)
	sx := 1
	if ix0 > ix1 {
		sx = -1
	}
	sy := 1
	if iy0 > iy1 {
		sy = -1
	}
	err := dx + dy

	for {
		b.blendPixel(ix0, iy0, src)
		if ix0 == ix1 && iy0 == iy1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			ix0 += sx
		}
		if e2 <= dx {
			err += dx
			iy0 += sy
		}
	}
}

// Sprite implements bangerman.TextureBackend. The source region is scaled
// into the destination with nearest-neighbor interpolation; a non-white
// color multiplies the texture as a tint.
func (b *Backend) Sprite(tex bangerman.TextureID, dst, src bangerman.Rect, c bangerman.Color) {
	img := b.texture(tex)
	if b.img == nil || img == nil || dst.Empty() {
		return
	}

	srcBounds := img.Bounds()
	if !src.Empty() {
		srcBounds = image.Rect(
			srcBounds.Min.X+int(src.X),
			srcBounds.Min.Y+int(src.Y),
			srcBounds.Min.X+int(src.X+src.W),
			srcBounds.Min.Y+int(src.Y+src.H),
		).Intersect(img.Bounds())
	}
	if srcBounds.Empty() {
		return
	}

	dstBounds := pixelBounds(dst)
	if c == bangerman.White {
		xdraw.NearestNeighbor.Scale(b.img, dstBounds, img, srcBounds, xdraw.Over, nil)
		return
	}

	// Tinted path: scale into a scratch image first, multiply by the tint,
	// then composite over the surface.
	scratch := image.NewNRGBA(dstBounds)
	xdraw.NearestNeighbor.Scale(scratch, dstBounds, img, srcBounds, xdraw.Src, nil)
	tint := c.NRGBA()
	for y := dstBounds.Min.Y; y < dstBounds.Max.Y; y++ {
		for x := dstBounds.Min.X; x < dstBounds.Max.X; x++ {
			p := scratch.NRGBAAt(x, y)
			b.blendPixel(x, y, color.NRGBA{
				R: mul255(p.R, tint.R),
				G: mul255(p.G, tint.G),
				B: mul255(p.B, tint.B),
				A: mul255(p.A, tint.A),
			})
		}
	}
}

// Image returns the rendered surface. It is nil before the first Begin and
// is reused across frames of the same size.
func (b *Backend) Image() *image.NRGBA {
	return b.img
}

// WriteTo encodes the rendered surface as PNG to the given writer.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if b.img == nil {
		return 0, fmt.Errorf("raster: no rendered image")
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, b.img); err != nil {
		return 0, fmt.Errorf("raster: encoding PNG: %w", err)
	}
	return buf.WriteTo(w)
}

// SavePNG writes the rendered surface to a PNG file.
func (b *Backend) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("raster: creating %s: %w", path, err)
	}
	defer f.Close()

	if _, err := b.WriteTo(f); err != nil {
		return err
	}
	return f.Close()
}

// blendPixel composites a non-premultiplied source pixel over the surface.
func (b *Backend) blendPixel(x, y int, c color.NRGBA) {
	if !(image.Pt(x, y).In(b.img.Bounds())) || c.A == 0 {
		return
	}
	if c.A == 0xff {
		b.img.SetNRGBA(x, y, c)
		return
	}

	d := b.img.NRGBAAt(x, y)
	a := uint32(c.A)
	inv := 255 - a
	outA := a + uint32(d.A)*inv/255
	if outA == 0 {
		b.img.SetNRGBA(x, y, color.NRGBA{})
		return
	}
	den := outA * 255
	blend := func(s, dc uint8) uint8 {
		return uint8((uint32(s)*a*255 + uint32(dc)*uint32(d.A)*inv) / den)
	}
	b.img.SetNRGBA(x, y, color.NRGBA{
		R: blend(c.R, d.R),
		G: blend(c.G, d.G),
		B: blend(c.B, d.B),
		A: uint8(outA),
	})
}

// pixelBounds converts a physical-space rectangle to integer pixel bounds,
// covering every partially touched pixel.
func pixelBounds(r bangerman.Rect) image.Rectangle {
	return image.Rect(
		int(math.Floor(r.X)),
		int(math.Floor(r.Y)),
		int(math.Ceil(r.X+r.W)),
		int(math.Ceil(r.Y+r.H)),
	)
}

func mul255(a, b uint8) uint8 {
	return uint8((uint32(a)*uint32(b) + 127) / 255)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
