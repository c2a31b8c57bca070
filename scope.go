package bangerman

// Scope is a lightweight handle that forwards drawing calls to a bound
// Recorder. It replaces the process-wide "current context" found in
// immediate-mode C APIs with an explicitly scoped value: thread it through
// call sites as a local variable instead of mutating global state.
//
// The zero Scope (and Bind(nil)) is inert: every call is a silent no-op.
// Rebinding is just creating a new Scope; nothing is deactivated globally.
//
//	draw := bangerman.Bind(rec)
//	draw.BeginFrame()
//	draw.RectFill(10, 10, 50, 30)
//	draw.EndFrame()
type Scope struct {
	r *Recorder
}

// Bind returns a Scope targeting the given recorder. Binding nil yields an
// inert Scope whose calls are all no-ops.
func Bind(r *Recorder) Scope {
	return Scope{r: r}
}

// Active reports whether the scope is bound to a recorder.
func (s Scope) Active() bool {
	return s.r != nil
}

// Recorder returns the bound recorder, or nil for an inert scope.
func (s Scope) Recorder() *Recorder {
	return s.r
}

// BeginFrame forwards to Recorder.BeginFrame.
func (s Scope) BeginFrame() { s.r.BeginFrame() }

// EndFrame forwards to Recorder.EndFrame.
func (s Scope) EndFrame() { s.r.EndFrame() }

// SetLogicalSize forwards to Recorder.SetLogicalSize.
func (s Scope) SetLogicalSize(w, h float64) { s.r.SetLogicalSize(w, h) }

// SetClearColor forwards to Recorder.SetClearColor.
func (s Scope) SetClearColor(c Color) { s.r.SetClearColor(c) }

// SetDrawColor forwards to Recorder.SetDrawColor.
func (s Scope) SetDrawColor(c Color) { s.r.SetDrawColor(c) }

// RectFill forwards to Recorder.RectFill.
func (s Scope) RectFill(x, y, w, h float64) { s.r.RectFill(x, y, w, h) }

// RectOutline forwards to Recorder.RectOutline.
func (s Scope) RectOutline(x, y, w, h float64) { s.r.RectOutline(x, y, w, h) }

// Line forwards to Recorder.Line.
func (s Scope) Line(x0, y0, x1, y1 float64) { s.r.Line(x0, y0, x1, y1) }

// Sprite forwards to Recorder.Sprite.
func (s Scope) Sprite(tex TextureID, x, y, w, h float64) { s.r.Sprite(tex, x, y, w, h) }

// SpriteRegion forwards to Recorder.SpriteRegion.
func (s Scope) SpriteRegion(tex TextureID, dst, src Rect) { s.r.SpriteRegion(tex, dst, src) }
