package main

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/jumper/core"
	"github.com/lixenwraith/jumper/game"
	"github.com/lixenwraith/jumper/parameter"
	"github.com/lixenwraith/jumper/vmath"
)

var (
	stylePlatform = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	stylePlayer   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleCharging = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleText     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleTitle    = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
)

// viewportOf converts a terminal size to world units
func viewportOf(cols, rows int) core.Size {
	return core.Size{W: float64(cols) * parameter.CellWidth, H: float64(rows) * parameter.CellHeight}
}

// pointerX is the screen-space x at the center of a column
func pointerX(col int) float64 {
	return float64(col)*parameter.CellWidth + parameter.CellWidth/2
}

// projection maps world space (y up, camera centered) to cells (y down, origin top-left)
type projection struct {
	camera   vmath.Vec2
	viewport core.Size
}

func (p projection) screenX(x float64) float64 {
	return (x - p.camera.X + p.viewport.W/2) / parameter.CellWidth
}

func (p projection) screenY(y float64) float64 {
	return (p.viewport.H/2 - (y - p.camera.Y)) / parameter.CellHeight
}

// toCell returns the cell containing a world point
func (p projection) toCell(pos vmath.Vec2) (col, row int) {
	return int(math.Floor(p.screenX(pos.X))), int(math.Floor(p.screenY(pos.Y)))
}

// boxCells returns the inclusive cell range covered by a centered box
// A box thinner than one cell still covers one
func (p projection) boxCells(pos vmath.Vec2, size core.Size) (c0, r0, c1, r1 int) {
	c0 = int(math.Floor(p.screenX(pos.X - size.HalfW())))
	c1 = int(math.Ceil(p.screenX(pos.X+size.HalfW()))) - 1
	r0 = int(math.Floor(p.screenY(pos.Y + size.HalfH())))
	r1 = int(math.Ceil(p.screenY(pos.Y-size.HalfH()))) - 1
	if c1 < c0 {
		c1 = c0
	}
	if r1 < r0 {
		r1 = r0
	}
	return c0, r0, c1, r1
}

// fillBox draws a box clipped to the screen
func fillBox(screen tcell.Screen, p projection, pos vmath.Vec2, size core.Size, r rune, style tcell.Style) {
	w, h := screen.Size()
	c0, r0, c1, r1 := p.boxCells(pos, size)
	for row := max(r0, 0); row <= min(r1, h-1); row++ {
		for col := max(c0, 0); col <= min(c1, w-1); col++ {
			screen.SetContent(col, row, r, nil, style)
		}
	}
}

// drawText writes s from (col, row), clipped to the screen width
func drawText(screen tcell.Screen, col, row int, s string, style tcell.Style) {
	w, h := screen.Size()
	if row < 0 || row >= h {
		return
	}
	for _, r := range s {
		if col >= w {
			return
		}
		if col >= 0 {
			screen.SetContent(col, row, r, nil, style)
		}
		col++
	}
}

// drawGame renders one frame of the session
func drawGame(screen tcell.Screen, rs game.RenderState, viewport core.Size) {
	screen.Clear()
	p := projection{camera: rs.Camera, viewport: viewport}

	for _, platform := range rs.Platforms {
		fillBox(screen, p, platform.Position, platform.Size, '▀', stylePlatform)
	}

	style := stylePlayer
	if rs.Charge > 0 {
		style = styleCharging
	}
	fillBox(screen, p, rs.Player.Position, rs.Player.Size, '█', style)

	drawText(screen, 1, 0, parameter.HeightLabel+rs.HeightText, styleText)
	screen.Show()
}

// drawMenu renders the start screen centered
func drawMenu(screen tcell.Screen) {
	screen.Clear()
	w, h := screen.Size()
	row := h/2 - 1
	drawText(screen, (w-len(parameter.MenuTitle))/2, row, parameter.MenuTitle, styleTitle)
	drawText(screen, (w-len(parameter.MenuPrompt))/2, row+2, parameter.MenuPrompt, styleText)
	screen.Show()
}
