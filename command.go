package bangerman

// CommandType identifies the type of a recorded command.
type CommandType uint8

const (
	// CmdClear fills the logical canvas with a color.
	CmdClear CommandType = iota
	// CmdRectFill fills an axis-aligned rectangle.
	CmdRectFill
	// CmdRectOutline strokes the border of an axis-aligned rectangle.
	CmdRectOutline
	// CmdLine draws a line segment between two points.
	CmdLine
	// CmdSprite draws a textured quad.
	CmdSprite
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdClear:       "Clear",
	CmdRectFill:    "RectFill",
	CmdRectOutline: "RectOutline",
	CmdLine:        "Line",
	CmdSprite:      "Sprite",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all recorded command types.
// Every command carries the draw color that was active when it was emitted.
// Commands are immutable once appended to a frame.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// TextureID is an opaque handle identifying a texture resource.
// The recorder never dereferences it; resolution to a concrete resource is
// entirely the backend's responsibility, typically via a side table it owns.
type TextureID uint32

// InvalidTexture is the sentinel value for a handle that does not refer to
// any texture. Backends must skip sprites carrying it.
const InvalidTexture = TextureID(^uint32(0))

// IsValid reports whether the handle may refer to a texture.
func (t TextureID) IsValid() bool {
	return t != InvalidTexture
}

// ClearCommand fills the whole logical canvas with a color.
type ClearCommand struct {
	// Color is the fill color.
	Color Color
}

// Type implements Command.
func (ClearCommand) Type() CommandType { return CmdClear }

// RectFillCommand fills an axis-aligned rectangle.
type RectFillCommand struct {
	// Rect is the rectangle in logical units.
	Rect Rect
	// Color is the draw color active at emission time.
	Color Color
}

// Type implements Command.
func (RectFillCommand) Type() CommandType { return CmdRectFill }

// RectOutlineCommand strokes the border of an axis-aligned rectangle.
type RectOutlineCommand struct {
	// Rect is the rectangle in logical units.
	Rect Rect
	// Color is the draw color active at emission time.
	Color Color
}

// Type implements Command.
func (RectOutlineCommand) Type() CommandType { return CmdRectOutline }

// LineCommand draws a line segment between two points.
type LineCommand struct {
	// X0, Y0 is the start point in logical units.
	X0, Y0 float64
	// X1, Y1 is the end point in logical units.
	X1, Y1 float64
	// Color is the draw color active at emission time.
	Color Color
}

// Type implements Command.
func (LineCommand) Type() CommandType { return CmdLine }

// SpriteCommand draws a textured quad.
type SpriteCommand struct {
	// Texture identifies the texture in the backend's resource table.
	Texture TextureID
	// Dst is the destination rectangle in logical units.
	Dst Rect
	// Src is the source rectangle in texture pixels.
	// An empty Src selects the entire texture.
	Src Rect
	// Color is the tint; White means no tinting.
	Color Color
}

// Type implements Command.
func (SpriteCommand) Type() CommandType { return CmdSprite }
