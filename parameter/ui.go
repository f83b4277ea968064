package parameter

import "time"

// Terminal presentation
const (
	// FrameUpdateInterval is the terminal frame period (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta clamps dt after stalls (suspend, debugger) so one tick cannot tunnel far
	MaxFrameDelta = 0.1

	// CellWidth is world units per terminal column
	CellWidth = 10.0
	// CellHeight is world units per terminal row, cells are roughly twice as tall as wide
	CellHeight = 20.0

	// HeightLabel prefixes the height readout
	HeightLabel = "Height: "

	// MenuTitle is shown on the start screen
	MenuTitle = "404 JUMPER"
	// MenuPrompt is shown under the title
	MenuPrompt = "Press ENTER to Start"
)
