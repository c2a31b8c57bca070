package raster

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/bangdev/bangerman"
)

func TestBackendRegistration(t *testing.T) {
	if !bangerman.IsRegistered("raster") {
		t.Fatal("raster backend not registered")
	}

	backend, err := bangerman.NewBackend("raster")
	if err != nil {
		t.Fatalf("failed to create raster backend: %v", err)
	}
	if _, ok := backend.(*Backend); !ok {
		t.Fatalf("registry returned %T, want *Backend", backend)
	}
}

func recordScene(t *testing.T) *bangerman.Recorder {
	t.Helper()
	rec := bangerman.New(bangerman.Config{})
	t.Cleanup(rec.Close)

	rec.SetLogicalSize(320, 180)
	rec.SetClearColor(bangerman.RGBA(0.05, 0.05, 0.1, 1))

	rec.BeginFrame()
	rec.SetDrawColor(bangerman.RGB(1, 0, 0))
	rec.RectFill(10, 10, 50, 30)
	rec.SetDrawColor(bangerman.RGB(0, 1, 0))
	rec.RectOutline(80, 40, 80, 60)
	rec.SetDrawColor(bangerman.White)
	rec.Line(0, 0, 319, 179)
	rec.EndFrame()
	return rec
}

func TestReplayPixels(t *testing.T) {
	rec := recordScene(t)
	backend := New()

	if err := bangerman.Replay(rec.Frame(), backend, 800, 600); err != nil {
		t.Fatalf("Replay: %v", err)
	}

	img := backend.Image()
	if img == nil {
		t.Fatal("Image() returned nil after replay")
	}
	if img.Bounds().Dx() != 800 || img.Bounds().Dy() != 600 {
		t.Fatalf("surface size = %v, want 800x600", img.Bounds())
	}

	// Scale 2, viewport 640x360 at (80, 120).
	clear := color.NRGBA{R: 12, G: 12, B: 25, A: 255}
	tests := []struct {
		name string
		x, y int
		want color.NRGBA
	}{
		{"letterbox corner is background", 0, 0, color.NRGBA{A: 255}},
		{"pillarbox bar left of viewport", 40, 300, color.NRGBA{A: 255}},
		{"viewport background is clear color", 90, 130, clear},
		{"inside filled rect", 150, 170, color.NRGBA{R: 255, A: 255}},
		{"outline edge", 240, 200, color.NRGBA{G: 255, A: 255}},
		{"outline interior stays clear", 300, 250, clear},
		{"line start", 80, 120, color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := img.NRGBAAt(tt.x, tt.y); got != tt.want {
				t.Errorf("pixel (%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

// checkerTexture builds a 2x2 texture: red, green / blue, white.
func checkerTexture() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{G: 255, A: 255})
	img.SetNRGBA(0, 1, color.NRGBA{B: 255, A: 255})
	img.SetNRGBA(1, 1, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	return img
}

func TestSpriteNearestNeighbor(t *testing.T) {
	rec := bangerman.New(bangerman.Config{})
	defer rec.Close()
	rec.SetLogicalSize(320, 180)

	backend := New()
	tex := backend.AddTexture(checkerTexture())
	if !tex.IsValid() {
		t.Fatal("AddTexture returned an invalid handle")
	}

	rec.BeginFrame()
	rec.Sprite(tex, 0, 0, 2, 2)
	rec.EndFrame()

	// 640x360 replays at scale 2: the 2x2 texture covers 4x4 pixels with
	// hard nearest-neighbor edges.
	if err := bangerman.Replay(rec.Frame(), backend, 640, 360); err != nil {
		t.Fatalf("Replay: %v", err)
	}

	img := backend.Image()
	tests := []struct {
		x, y int
		want color.NRGBA
	}{
		{0, 0, color.NRGBA{R: 255, A: 255}},
		{1, 1, color.NRGBA{R: 255, A: 255}},
		{3, 0, color.NRGBA{G: 255, A: 255}},
		{0, 3, color.NRGBA{B: 255, A: 255}},
		{3, 3, color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
	}
	for _, tt := range tests {
		if got := img.NRGBAAt(tt.x, tt.y); got != tt.want {
			t.Errorf("pixel (%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestSpriteTint(t *testing.T) {
	rec := bangerman.New(bangerman.Config{})
	defer rec.Close()
	rec.SetLogicalSize(320, 180)

	backend := New()
	white := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	white.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	tex := backend.AddTexture(white)

	rec.BeginFrame()
	rec.SetDrawColor(bangerman.RGB(1, 0, 0))
	rec.Sprite(tex, 0, 0, 1, 1)
	rec.EndFrame()

	if err := bangerman.Replay(rec.Frame(), backend, 320, 180); err != nil {
		t.Fatalf("Replay: %v", err)
	}

	if got := backend.Image().NRGBAAt(0, 0); got != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("tinted sprite pixel = %v, want opaque red", got)
	}
}

func TestSpriteRegion(t *testing.T) {
	rec := bangerman.New(bangerman.Config{})
	defer rec.Close()
	rec.SetLogicalSize(320, 180)

	backend := New()
	tex := backend.AddTexture(checkerTexture())

	rec.BeginFrame()
	// Only the green texel.
	rec.SpriteRegion(tex, bangerman.NewRect(0, 0, 1, 1), bangerman.NewRect(1, 0, 1, 1))
	rec.EndFrame()

	if err := bangerman.Replay(rec.Frame(), backend, 320, 180); err != nil {
		t.Fatalf("Replay: %v", err)
	}

	if got := backend.Image().NRGBAAt(0, 0); got != (color.NRGBA{G: 255, A: 255}) {
		t.Errorf("region sprite pixel = %v, want opaque green", got)
	}
}

func TestAddTextureNil(t *testing.T) {
	backend := New()
	if tex := backend.AddTexture(nil); tex.IsValid() {
		t.Error("AddTexture(nil) should return InvalidTexture")
	}
}

func TestUnknownTextureIsSkipped(t *testing.T) {
	rec := bangerman.New(bangerman.Config{})
	defer rec.Close()
	rec.SetLogicalSize(320, 180)
	rec.SetClearColor(bangerman.Black)

	rec.BeginFrame()
	rec.Sprite(bangerman.TextureID(99), 0, 0, 8, 8)
	rec.SetDrawColor(bangerman.White)
	rec.RectFill(0, 0, 1, 1)
	rec.EndFrame()

	backend := New()
	if err := bangerman.Replay(rec.Frame(), backend, 320, 180); err != nil {
		t.Fatalf("Replay should not fail on an unknown texture: %v", err)
	}
	// The command after the skipped sprite still drew.
	if got := backend.Image().NRGBAAt(0, 0); got != (color.NRGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("pixel (0, 0) = %v, want white from the rect after the sprite", got)
	}
}

func TestAlphaBlending(t *testing.T) {
	rec := bangerman.New(bangerman.Config{})
	defer rec.Close()
	rec.SetLogicalSize(320, 180)
	rec.SetClearColor(bangerman.Black)

	rec.BeginFrame()
	rec.SetDrawColor(bangerman.RGBA(1, 1, 1, 0.5))
	rec.RectFill(0, 0, 10, 10)
	rec.EndFrame()

	backend := New()
	if err := bangerman.Replay(rec.Frame(), backend, 320, 180); err != nil {
		t.Fatalf("Replay: %v", err)
	}

	got := backend.Image().NRGBAAt(5, 5)
	// Half-transparent white over opaque black lands near mid gray.
	for _, ch := range []uint8{got.R, got.G, got.B} {
		if ch < 125 || ch > 130 {
			t.Errorf("blended channel = %d, want ~127", ch)
		}
	}
	if got.A != 255 {
		t.Errorf("blended alpha = %d, want 255", got.A)
	}
}

func TestBeginInvalidSize(t *testing.T) {
	rec := bangerman.New(bangerman.Config{})
	defer rec.Close()

	backend := New()
	if err := bangerman.Replay(rec.Frame(), backend, 0, 600); err == nil {
		t.Error("Replay onto a zero-width surface should fail")
	}
}

func TestWriteTo(t *testing.T) {
	rec := recordScene(t)
	backend := New()
	if err := bangerman.Replay(rec.Frame(), backend, 320, 180); err != nil {
		t.Fatalf("Replay: %v", err)
	}

	var buf bytes.Buffer
	n, err := backend.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("WriteTo reported %d bytes, buffer has %d", n, buf.Len())
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("WriteTo output is not a PNG stream")
	}
}

func TestWriteToBeforeBegin(t *testing.T) {
	backend := New()
	if _, err := backend.WriteTo(&bytes.Buffer{}); err == nil {
		t.Error("WriteTo before any replay should fail")
	}
}

func TestStrokeRectThinRects(t *testing.T) {
	rec := bangerman.New(bangerman.Config{})
	defer rec.Close()
	rec.SetLogicalSize(320, 180)
	rec.SetClearColor(bangerman.Black)

	rec.BeginFrame()
	rec.SetDrawColor(bangerman.RGBA(1, 1, 1, 0.5))
	rec.RectOutline(10, 10, 20, 1)
	rec.RectOutline(30, 30, 1, 20)
	rec.EndFrame()

	backend := New()
	if err := bangerman.Replay(rec.Frame(), backend, 320, 180); err != nil {
		t.Fatalf("Replay: %v", err)
	}

	img := backend.Image()
	// Opposite edges coincide for a rect one pixel tall or wide; each
	// border pixel must blend once, landing near mid gray rather than
	// the brighter result of compositing twice.
	for _, p := range []image.Point{{15, 10}, {30, 35}} {
		got := img.NRGBAAt(p.X, p.Y)
		if got.R < 125 || got.R > 130 {
			t.Errorf("outline pixel at %v = %d, want ~127 from a single blend", p, got.R)
		}
	}
}

func TestImageBackendCapability(t *testing.T) {
	backend := bangerman.MustBackend("raster")
	ib, ok := backend.(bangerman.ImageBackend)
	if !ok {
		t.Fatal("raster backend should implement bangerman.ImageBackend")
	}
	if ib.Image() != nil {
		t.Error("Image() before the first Begin should be nil")
	}
}
