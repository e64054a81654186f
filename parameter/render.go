package parameter

// Terminal Renderer
const (
	// TerminalViewRange is the arena distance shown at the viewport edge at zoom 1
	TerminalViewRange = 0.6

	// TerminalCellAspect is the height/width ratio of a terminal cell
	TerminalCellAspect = 2.0

	// CursorArc is the cursor's angular width as a fraction of a full turn
	CursorArc = 0.04
)

// Window Renderer
const (
	WindowWidth  = 960
	WindowHeight = 720

	// WindowViewRange is the arena distance shown at the window's half-height at zoom 1
	WindowViewRange = 0.5

	WindowTitle = "hexagon"
)
