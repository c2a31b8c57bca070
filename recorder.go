package bangerman

// DefaultCapacity is the command capacity used when Config.Capacity is
// zero or negative.
const DefaultCapacity = 64

// Default logical canvas size, chosen for 16:9 pixel-art scenes.
const (
	DefaultLogicalWidth  = 320.0
	DefaultLogicalHeight = 180.0
)

// CapacityPolicy selects how the command buffer behaves when it is full.
// The policy is fixed at construction time; the two behaviors are never
// mixed within one Recorder.
type CapacityPolicy uint8

const (
	// PolicyGrow reallocates the buffer geometrically on demand.
	// Appends never drop commands and the overflow flag is never set.
	// This is the default.
	PolicyGrow CapacityPolicy = iota

	// PolicyFixed caps the buffer at its construction-time capacity.
	// Appends beyond the cap are silently dropped and the frame's
	// overflow flag is set; memory footprint stays deterministic.
	PolicyFixed
)

// Config configures a Recorder. The zero value is valid: a growing buffer
// with DefaultCapacity initial storage and no implicit clear.
type Config struct {
	// Capacity is the initial command capacity, and the hard cap under
	// PolicyFixed. Values <= 0 fall back to DefaultCapacity.
	Capacity int

	// Policy selects the buffer growth behavior.
	Policy CapacityPolicy

	// AutoClear makes BeginFrame emit a ClearCommand carrying the current
	// clear color, so replaying from index 0 always starts from a defined
	// background. When false (the default) the background is established
	// by the replayer from the frame's clear color instead.
	AutoClear bool
}

// Recorder captures drawing intents issued during a frame as an ordered
// command buffer. It owns the logical canvas size, the clear color and the
// current draw color; primitive emitters append commands carrying the draw
// color active at emission time.
//
// A nil *Recorder is safe to call: every method is a silent no-op, which is
// also how a Scope bound to nothing behaves.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	cfg Config

	logicalW float64
	logicalH float64

	clearColor Color
	drawColor  Color

	commands   []Command
	overflowed bool
	closed     bool
}

// New creates a Recorder with the given configuration.
//
// The logical canvas defaults to 320x180, the clear color to opaque black
// and the draw color to opaque white.
func New(cfg Config) *Recorder {
	if cfg.Capacity <= 0 {
		cfg.Capacity = DefaultCapacity
	}
	return &Recorder{
		cfg:        cfg,
		logicalW:   DefaultLogicalWidth,
		logicalH:   DefaultLogicalHeight,
		clearColor: Black,
		drawColor:  White,
		commands:   make([]Command, 0, cfg.Capacity),
	}
}

// Close releases the command storage. The recorder must not be used after
// Close; all further calls are silent no-ops. Closing a nil or already
// closed recorder is a no-op.
func (r *Recorder) Close() {
	if r == nil || r.closed {
		return
	}
	r.commands = nil
	r.closed = true
}

// SetLogicalSize sets the logical canvas size primitives are authored in.
// Non-positive dimensions are rejected and the prior size is preserved;
// the logical size never becomes zero or negative.
func (r *Recorder) SetLogicalSize(w, h float64) {
	if r == nil || r.closed {
		return
	}
	if w <= 0 || h <= 0 {
		return
	}
	r.logicalW = w
	r.logicalH = h
}

// LogicalSize returns the logical canvas size.
func (r *Recorder) LogicalSize() (w, h float64) {
	if r == nil {
		return DefaultLogicalWidth, DefaultLogicalHeight
	}
	return r.logicalW, r.logicalH
}

// SetClearColor sets the background color for subsequent frames.
func (r *Recorder) SetClearColor(c Color) {
	if r == nil || r.closed {
		return
	}
	r.clearColor = c
}

// ClearColor returns the current clear color.
func (r *Recorder) ClearColor() Color {
	if r == nil {
		return Black
	}
	return r.clearColor
}

// SetDrawColor sets the color carried by subsequently emitted commands.
// Already recorded commands are never changed retroactively.
func (r *Recorder) SetDrawColor(c Color) {
	if r == nil || r.closed {
		return
	}
	r.drawColor = c
}

// DrawColor returns the current draw color.
func (r *Recorder) DrawColor() Color {
	if r == nil {
		return White
	}
	return r.drawColor
}

// BeginFrame starts a new frame: the command count resets to zero and the
// overflow flag clears. Any Frame snapshot taken earlier is invalidated.
//
// With Config.AutoClear set, one ClearCommand carrying the current clear
// color is emitted immediately, so the count resets to one instead.
func (r *Recorder) BeginFrame() {
	if r == nil || r.closed {
		return
	}
	r.commands = r.commands[:0]
	r.overflowed = false
	if r.cfg.AutoClear {
		r.push(ClearCommand{Color: r.clearColor})
	}
}

// EndFrame marks the frame as finished. It records no state change; the
// buffer is advisorily read-only until the next BeginFrame, which is when
// consumers should take and replay the Frame snapshot.
func (r *Recorder) EndFrame() {
	// Advisory only. Backends read commands afterwards.
}

// RectFill records a filled rectangle in the current draw color.
func (r *Recorder) RectFill(x, y, w, h float64) {
	if r == nil || r.closed {
		return
	}
	r.push(RectFillCommand{Rect: NewRect(x, y, w, h), Color: r.drawColor})
}

// RectOutline records a rectangle outline in the current draw color.
func (r *Recorder) RectOutline(x, y, w, h float64) {
	if r == nil || r.closed {
		return
	}
	r.push(RectOutlineCommand{Rect: NewRect(x, y, w, h), Color: r.drawColor})
}

// Line records a line segment in the current draw color.
func (r *Recorder) Line(x0, y0, x1, y1 float64) {
	if r == nil || r.closed {
		return
	}
	r.push(LineCommand{X0: x0, Y0: y0, X1: x1, Y1: y1, Color: r.drawColor})
}

// Sprite records a textured quad covering the destination rectangle with
// the entire texture, tinted by the current draw color.
func (r *Recorder) Sprite(tex TextureID, x, y, w, h float64) {
	if r == nil || r.closed {
		return
	}
	r.push(SpriteCommand{Texture: tex, Dst: NewRect(x, y, w, h), Color: r.drawColor})
}

// SpriteRegion records a textured quad sourcing a sub-rectangle of the
// texture, tinted by the current draw color.
func (r *Recorder) SpriteRegion(tex TextureID, dst, src Rect) {
	if r == nil || r.closed {
		return
	}
	r.push(SpriteCommand{Texture: tex, Dst: dst, Src: src, Color: r.drawColor})
}

// Overflowed reports whether at least one command was dropped during the
// current frame because the buffer was full. Only PolicyFixed recorders
// can overflow; the flag resets at every BeginFrame.
func (r *Recorder) Overflowed() bool {
	if r == nil {
		return false
	}
	return r.overflowed
}

// Len returns the number of commands recorded in the current frame.
func (r *Recorder) Len() int {
	if r == nil {
		return 0
	}
	return len(r.commands)
}

// Frame returns a borrowed snapshot of the current frame: the recorded
// commands in emission order plus the logical canvas size and clear color.
//
// The snapshot aliases internal storage. It is valid until the next
// BeginFrame on this recorder and must not be retained past that point;
// holding it longer is a use-after-invalidate hazard the library does not
// guard against.
func (r *Recorder) Frame() Frame {
	if r == nil || r.closed {
		return Frame{
			LogicalWidth:  DefaultLogicalWidth,
			LogicalHeight: DefaultLogicalHeight,
			ClearColor:    Black,
		}
	}
	return Frame{
		Commands:      r.commands,
		LogicalWidth:  r.logicalW,
		LogicalHeight: r.logicalH,
		ClearColor:    r.clearColor,
	}
}

// push appends one command, honoring the capacity policy. Under PolicyFixed
// a full buffer drops the command and sets the overflow flag; under
// PolicyGrow the buffer reallocates to max(capacity*2, needed).
func (r *Recorder) push(cmd Command) {
	if len(r.commands) == cap(r.commands) {
		if r.cfg.Policy == PolicyFixed {
			r.overflowed = true
			return
		}
		r.grow(1)
	}
	r.commands = append(r.commands, cmd)
}

// grow reallocates the buffer for at least extra additional commands.
// Growth only ever happens on append, never while resetting, so a Frame
// taken after EndFrame keeps aliasing the buffer it was taken from.
func (r *Recorder) grow(extra int) {
	required := len(r.commands) + extra
	newCap := cap(r.commands) * 2
	if newCap == 0 {
		newCap = DefaultCapacity
	}
	if newCap < required {
		newCap = required
	}
	grown := make([]Command, len(r.commands), newCap)
	copy(grown, r.commands)
	r.commands = grown
}

// Frame is a borrowed, read-only snapshot of a recorder's current frame.
// It is the sole data contract between the recorder and a replaying
// backend. See Recorder.Frame for the lifetime rules.
type Frame struct {
	// Commands is the recorded command sequence in emission order.
	Commands []Command

	// LogicalWidth and LogicalHeight describe the coordinate space the
	// commands were authored in.
	LogicalWidth  float64
	LogicalHeight float64

	// ClearColor is the recorder's background color for this frame.
	ClearColor Color
}
