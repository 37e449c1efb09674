package game

import (
	"fmt"

	"github.com/mkraev/tetrois/internal/core"
)

// Cell strings, three characters wide like the classic layout.
const (
	cellW     = 3
	cellBlock = "[#]"
	cellGhost = " # "
	cellEmpty = " . "
	titleText = "T E T R O I S"
)

// Frame geometry derived from the fixed playfield.
const (
	gridInnerW = Cols * cellW
	gridFrameW = gridInnerW + 2 // Playfield plus border
	gridFrameH = Rows + 2
	panelGap   = 2
	panelW     = 18
	titleH     = 1
)

var controlLines = []string{
	"A/D: Move",
	"W: Rotate",
	"S: Down",
	"Space: Drop",
}

// Render draws the board, active and ghost pieces and the info panel.
// A side panel is used when the terminal is wide enough; otherwise the
// panel stacks below the grid. When even the stacked layout cannot
// fit, a resize notice is shown instead.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	sidePanel := g.screenW >= gridFrameW+panelGap+panelW

	viewW := gridFrameW
	viewH := titleH + gridFrameH
	if sidePanel {
		viewW += panelGap + panelW
	} else {
		viewH += g.stackedHeight()
	}

	originX := core.Max(0, (g.screenW-viewW)/2)
	originY := core.Max(0, (g.screenH-viewH)/2)

	// Title
	titleX := originX + core.Max(0, (viewW-len(titleText))/2)
	dst.DrawTextColored(titleX, originY, titleText, core.ColorMagenta)

	gridX := originX
	gridY := originY + titleH
	g.renderGrid(dst, gridX, gridY)

	if sidePanel {
		g.renderSidePanel(dst, originX+gridFrameW+panelGap, gridY)
	} else {
		g.renderStackedPanel(dst, gridX, gridY+gridFrameH)
	}

	g.renderOverlays(dst, gridX, gridY)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	msg := "Window too small"
	y := g.screenH / 2
	dst.DrawText((g.screenW-len(msg))/2, y, msg)

	hint := "Please resize terminal"
	dst.DrawText((g.screenW-len(hint))/2, y+1, hint)
}

// renderGrid draws the bordered playfield with settled blocks, the
// ghost projection and the active piece.
func (g *Game) renderGrid(dst *core.Screen, gridX, gridY int) {
	dst.DrawBox(gridX, gridY, gridFrameW, gridFrameH)

	var curMask, ghostMask [Rows][Cols]bool
	for _, b := range g.active.Blocks() {
		if g.board.Inside(b) {
			curMask[b.Y][b.X] = true
		}
	}
	if g.tuning.GhostEnabled {
		for _, b := range g.board.Ghost(g.active).Blocks() {
			if g.board.Inside(b) {
				ghostMask[b.Y][b.X] = true
			}
		}
	}

	for y := 0; y < Rows; y++ {
		for x := 0; x < Cols; x++ {
			cellStr := cellEmpty
			color := core.ColorDefault

			if cell := g.board.At(core.Offset{X: x, Y: y}); cell.Occupied {
				cellStr = cellBlock
				color = cell.Shape.Color()
			} else if ghostMask[y][x] {
				cellStr = cellGhost
				color = core.ColorGray
			}

			// The active piece overlays everything.
			if curMask[y][x] {
				cellStr = cellBlock
				color = g.active.Color()
			}

			drawCell(dst, gridX+1+x*cellW, gridY+1+y, cellStr, color)
		}
	}
}

// renderSidePanel draws score, level, lines, high score, the next
// piece preview and the control hints to the right of the grid.
func (g *Game) renderSidePanel(dst *core.Screen, panelX, panelY int) {
	dst.DrawTextColored(panelX, panelY+2, "SCORE", core.ColorYellow)
	dst.DrawTextColored(panelX, panelY+3, fmt.Sprintf("%d", g.score), core.ColorGreen)
	dst.DrawTextColored(panelX, panelY+5, "LEVEL", core.ColorYellow)
	dst.DrawTextColored(panelX, panelY+6, fmt.Sprintf("%d", g.level), core.ColorCyan)
	dst.DrawTextColored(panelX, panelY+8, "LINES", core.ColorYellow)
	dst.DrawTextColored(panelX, panelY+9, fmt.Sprintf("%d", g.lines), core.ColorBlue)
	dst.DrawTextColored(panelX, panelY+11, "HIGHSCORE", core.ColorYellow)
	dst.DrawTextColored(panelX, panelY+12, fmt.Sprintf("%d", g.highScore), core.ColorRed)

	dst.DrawTextColored(panelX, panelY+13, "NEXT", core.ColorYellow)
	for i, line := range g.next.Shape().Preview() {
		dst.DrawTextColored(panelX, panelY+14+i, line, g.next.Color())
	}

	controlsY := panelY + Rows - 4
	dst.DrawTextColored(panelX, controlsY, "CONTROLS", core.ColorYellow)
	for i, line := range controlLines {
		dst.DrawText(panelX, controlsY+1+i, line)
	}
}

// stackedHeight returns the height of the boxed panel used below the
// grid on narrow terminals.
func (g *Game) stackedHeight() int {
	// Stats, NEXT header and preview, blank, CONTROLS header and
	// hints, plus the surrounding border.
	return 4 + 1 + len(g.next.Shape().Preview()) + 1 + 1 + len(controlLines) + 2
}

// renderStackedPanel draws the info panel below the grid when the
// terminal is too narrow for the side panel.
func (g *Game) renderStackedPanel(dst *core.Screen, panelX, panelY int) {
	dst.DrawBox(panelX, panelY, gridFrameW, g.stackedHeight())

	row := panelY + 1
	line := func(text string, color core.Color) {
		dst.DrawTextColored(panelX+1, row, text, color)
		row++
	}

	line(fmt.Sprintf("SCORE: %d", g.score), core.ColorGreen)
	line(fmt.Sprintf("LEVEL: %d", g.level), core.ColorDefault)
	line(fmt.Sprintf("LINES: %d", g.lines), core.ColorDefault)
	line(fmt.Sprintf("HIGHSCORE: %d", g.highScore), core.ColorDefault)
	line("NEXT", core.ColorYellow)
	for _, preview := range g.next.Shape().Preview() {
		line(preview, g.next.Color())
	}
	line("", core.ColorDefault)
	line("CONTROLS", core.ColorYellow)
	for _, hint := range controlLines {
		line(hint, core.ColorDefault)
	}
}

// renderOverlays draws pause and game-over overlays centered on the
// grid.
func (g *Game) renderOverlays(dst *core.Screen, gridX, gridY int) {
	centerX := gridX + gridFrameW/2
	centerY := gridY + gridFrameH/2

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.gameOver {
		g.drawOverlay(dst, centerX, centerY,
			"GAME OVER",
			fmt.Sprintf("Final Score: %d", g.score),
			"Press R to restart, Q to quit")
	}
}

// drawOverlay draws a centered boxed text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	// Clear area behind the overlay
	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}

	dst.DrawBox(boxX, boxY, boxW, boxH)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, boxY+1+i, line)
	}
}

// drawCell writes one grid cell string in the given color.
func drawCell(dst *core.Screen, x, y int, s string, color core.Color) {
	for i, r := range s {
		dst.SetCell(x+i, y, r, color)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "A/D: Move | W: Rotate | S: Down | Space: Drop | P: Pause | Q: Quit"
}
