// Package raylib provides a backend that replays recorded frames through
// raylib draw calls (github.com/gen2brain/raylib-go).
//
// The backend assumes the caller owns the window and the frame loop: call
// rl.BeginDrawing before bangerman.Replay and rl.EndDrawing (which presents)
// after it.
//
//	import (
//	    rl "github.com/gen2brain/raylib-go/raylib"
//	    "github.com/bangdev/bangerman"
//	    "github.com/bangdev/bangerman/backends/raylib"
//	)
//
//	backend := raylib.New()
//	defer backend.UnloadTextures()
//
//	for !rl.WindowShouldClose() {
//	    // ... record a frame ...
//	    rl.BeginDrawing()
//	    bangerman.Replay(rec.Frame(), backend, rl.GetScreenWidth(), rl.GetScreenHeight())
//	    rl.EndDrawing()
//	}
package raylib

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/bangdev/bangerman"
)

func init() {
	bangerman.Register("raylib", func() bangerman.Backend {
		return New()
	})
}

// Backend issues replayed commands as raylib draw calls. It owns the side
// table resolving TextureID handles to GPU textures.
//
// It implements bangerman.Backend and bangerman.TextureBackend.
type Backend struct {
	background rl.Color
	viewport   rl.Rectangle
	textures   map[bangerman.TextureID]rl.Texture2D
	nextID     uint32
}

// New creates a raylib backend with a black letterbox background.
// raylib must be initialized (rl.InitWindow) before textures are loaded or
// frames are replayed.
func New() *Backend {
	return &Backend{
		background: rl.Black,
		textures:   make(map[bangerman.TextureID]rl.Texture2D),
	}
}

// SetBackground sets the color used for the area outside the viewport
// (the letterbox bars). Default is opaque black.
func (b *Backend) SetBackground(c bangerman.Color) {
	b.background = toRL(c)
}

// LoadTexture loads an image file into GPU memory and returns its handle.
// Returns InvalidTexture if loading fails; the failure is logged at Warn.
func (b *Backend) LoadTexture(path string) bangerman.TextureID {
	tex := rl.LoadTexture(path)
	if tex.ID == 0 {
		bangerman.Logger().Warn("raylib: texture load failed", "path", path)
		return bangerman.InvalidTexture
	}
	return b.addTexture(tex)
}

// AddTexture registers an already loaded raylib texture and returns its
// handle. Ownership transfers to the backend; UnloadTextures releases it.
func (b *Backend) AddTexture(tex rl.Texture2D) bangerman.TextureID {
	if tex.ID == 0 {
		return bangerman.InvalidTexture
	}
	return b.addTexture(tex)
}

func (b *Backend) addTexture(tex rl.Texture2D) bangerman.TextureID {
	id := bangerman.TextureID(b.nextID)
	b.nextID++
	b.textures[id] = tex
	return id
}

// UnloadTextures releases every texture in the side table.
func (b *Backend) UnloadTextures() {
	for id, tex := range b.textures {
		rl.UnloadTexture(tex)
		delete(b.textures, id)
	}
}

// Begin implements bangerman.Backend. It clears the whole render target to
// the background color; the caller must already be inside BeginDrawing.
func (b *Backend) Begin(vp bangerman.Viewport) error {
	b.viewport = toRLRect(vp.Bounds())
	rl.ClearBackground(b.background)
	return nil
}

// End implements bangerman.Backend. Presentation happens in the caller's
// rl.EndDrawing.
func (b *Backend) End() error {
	return nil
}

// Clear implements bangerman.Backend; it fills the viewport area only, so
// the letterbox bars keep the background color.
func (b *Backend) Clear(c bangerman.Color) {
	rl.DrawRectangleRec(b.viewport, toRL(c))
}

// FillRect implements bangerman.Backend.
func (b *Backend) FillRect(r bangerman.Rect, c bangerman.Color) {
	rl.DrawRectangleRec(toRLRect(r), toRL(c))
}

// StrokeRect implements bangerman.Backend with a one pixel outline.
func (b *Backend) StrokeRect(r bangerman.Rect, c bangerman.Color) {
	rl.DrawRectangleLinesEx(toRLRect(r), 1, toRL(c))
}

// Line implements bangerman.Backend.
func (b *Backend) Line(x0, y0, x1, y1 float64, c bangerman.Color) {
	rl.DrawLineV(
		rl.NewVector2(float32(x0), float32(y0)),
		rl.NewVector2(float32(x1), float32(y1)),
		toRL(c),
	)
}

// Sprite implements bangerman.TextureBackend. Unknown handles are ignored.
func (b *Backend) Sprite(tex bangerman.TextureID, dst, src bangerman.Rect, c bangerman.Color) {
	t, ok := b.textures[tex]
	if !ok {
		bangerman.Logger().Debug("raylib: sprite skipped, unknown texture", "id", uint32(tex))
		return
	}

	srcRec := rl.NewRectangle(0, 0, float32(t.Width), float32(t.Height))
	if !src.Empty() {
		srcRec = toRLRect(src)
	}

	rl.DrawTexturePro(t, srcRec, toRLRect(dst), rl.NewVector2(0, 0), 0, toRL(c))
}

// toRL converts a Color to raylib's 8-bit color, clamping each channel.
func toRL(c bangerman.Color) rl.Color {
	n := c.NRGBA()
	return rl.NewColor(n.R, n.G, n.B, n.A)
}

func toRLRect(r bangerman.Rect) rl.Rectangle {
	return rl.NewRectangle(float32(r.X), float32(r.Y), float32(r.W), float32(r.H))
}
