package orbsort

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/orb-sort/internal/core"
	"github.com/vovakirdan/orb-sort/internal/games/orbsort/engine"
)

const (
	tubeWidth = 5 // "│ ● │"
	tubeGap   = 2
	hudHeight = 3
	airRows   = 3 // Travel row, lift row and one spacer above the tubes
	orbRune   = '●'
)

// orbColors maps orb colors to screen colors.
var orbColors = map[engine.Color]core.Color{
	engine.ColorRed:    core.ColorRed,
	engine.ColorBlue:   core.ColorBrightBlue,
	engine.ColorGreen:  core.ColorGreen,
	engine.ColorYellow: core.ColorYellow,
	engine.ColorPurple: core.ColorMagenta,
	engine.ColorOrange: core.ColorOrange,
	engine.ColorCyan:   core.ColorCyan,
	engine.ColorPink:   core.ColorPink,
}

// boardGeom places tubes and orbs on the screen.
type boardGeom struct {
	xs       []int // Left column of each tube
	top      int   // Row of the topmost slot
	capacity int
}

func (g *Game) geometry() boardGeom {
	return boardGeom{
		xs:       core.Spread(g.engine.TubeCount(), tubeWidth, tubeGap, g.screenW),
		top:      hudHeight + airRows,
		capacity: g.engine.Capacity(),
	}
}

func (b boardGeom) orbX(tube int) int { return b.xs[tube] + tubeWidth/2 }
func (b boardGeom) slotY(pos int) int { return b.top + b.capacity - 1 - pos }
func (b boardGeom) liftY() int        { return b.top - 1 }
func (b boardGeom) travelY() int      { return b.top - 2 }
func (b boardGeom) bottomY() int      { return b.top + b.capacity }

// minSize returns the smallest screen that fits the current board.
func (g *Game) minSize() (w, h int) {
	n := g.engine.TubeCount()
	w = n*tubeWidth + (n-1)*tubeGap + 2
	// Tubes, bottom, labels, cursor, message
	h = hudHeight + airRows + g.engine.Capacity() + 4
	return w, h
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.loadErr != nil {
		g.renderError(dst)
		return
	}
	if g.engine == nil {
		return
	}
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	bg := g.geometry()
	g.renderHUD(dst)
	g.renderTubes(dst, bg)
	g.renderFlights(dst, bg)
	g.renderFooter(dst, bg)

	switch {
	case g.won && !g.animating():
		g.renderWinBanner(dst, bg)
	case g.paused:
		g.renderBox(dst, bg, core.ColorBrightWhite, "PAUSED", "Press P to resume")
	}
}

// renderError shows why the level could not be started.
func (g *Game) renderError(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCenteredColored(y-1, "Cannot start level", core.ColorBrightRed)
	dst.DrawTextCentered(y, g.loadErr.Error())
	dst.DrawTextCentered(y+2, "Press Q to quit")
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	minW, minH := g.minSize()
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d, have %dx%d", minW, minH, g.screenW, g.screenH))
}

// renderHUD draws the title, level, move counter and clock.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextCenteredColored(0, g.Title(), core.ColorBrightWhite)

	dst.DrawText(2, 1, "Level: "+g.level.Name)

	secs := g.ticks / g.tickRate
	stats := fmt.Sprintf("Moves: %d  Time: %02d:%02d", g.engine.Moves(), secs/60, secs%60)
	dst.DrawText(g.screenW-len(stats)-2, 1, stats)

	opts := g.engine.Options()
	rules := "Single orbs"
	if opts.BatchMoves {
		rules = "Whole runs"
	}
	if opts.RequireFullTubeToWin {
		rules += " · full tubes win"
	} else {
		rules += " · sorted tubes win"
	}
	dst.DrawTextCenteredColored(2, rules, core.ColorGray)
}

// renderTubes draws every tube with its resting orbs, labels and cursor.
func (g *Game) renderTubes(dst *core.Screen, bg boardGeom) {
	selected, hasSel := g.engine.Selection()

	for i, tube := range g.engine.Tubes() {
		x := bg.xs[i]

		outline := core.ColorGray
		switch {
		case hasSel && i == selected:
			outline = core.ColorBrightYellow
		case g.hint != nil && (i == g.hint.Source || i == g.hint.Target):
			outline = core.ColorBrightCyan
		case i == g.cursor:
			outline = core.ColorBrightWhite
		}

		for pos := range bg.capacity {
			y := bg.slotY(pos)
			dst.SetColored(x, y, '│', outline)
			dst.SetColored(x+tubeWidth-1, y, '│', outline)

			c, ok := tube.At(pos)
			if !ok || g.incoming(Slot{Tube: i, Pos: pos}) {
				continue
			}
			// The selected tube's top orb is drawn lifted out of the tube
			if hasSel && i == selected && pos == tube.Len()-1 {
				dst.SetColored(bg.orbX(i), bg.liftY(), orbRune, orbColors[c])
				continue
			}
			dst.SetColored(bg.orbX(i), y, orbRune, orbColors[c])
		}

		bottom := bg.bottomY()
		dst.SetColored(x, bottom, '└', outline)
		for dx := 1; dx < tubeWidth-1; dx++ {
			dst.SetColored(x+dx, bottom, '─', outline)
		}
		dst.SetColored(x+tubeWidth-1, bottom, '┘', outline)

		label := strconv.Itoa(i + 1)
		dst.DrawTextColored(bg.orbX(i)-(len(label)-1)/2, bottom+1, label, core.ColorGray)

		if i == g.cursor {
			dst.SetColored(bg.orbX(i), bottom+2, '▲', core.ColorBrightWhite)
		}
	}
}

// renderFlights draws orbs that are still moving.
func (g *Game) renderFlights(dst *core.Screen, bg boardGeom) {
	for _, f := range g.flights {
		x, y := g.flightPosition(f, bg)
		dst.SetColored(x, y, orbRune, orbColors[f.Color])
	}
}

// renderFooter draws the status message.
func (g *Game) renderFooter(dst *core.Screen, bg boardGeom) {
	if g.message != "" {
		dst.DrawTextCenteredColored(bg.bottomY()+3, g.message, core.ColorBrightYellow)
	}
}

// renderWinBanner draws the victory box.
func (g *Game) renderWinBanner(dst *core.Screen, bg boardGeom) {
	g.renderBox(dst, bg, core.ColorBrightGreen,
		"YOU WIN!",
		fmt.Sprintf("Solved in %d moves", g.engine.Moves()),
		fmt.Sprintf("Score: %d", g.score),
		"Press any key to play again",
	)
}

// renderBox draws a centered box with lines of text over the board.
func (g *Game) renderBox(dst *core.Screen, bg boardGeom, color core.Color, lines ...string) {
	boxW := 0
	for _, line := range lines {
		boxW = max(boxW, len([]rune(line)))
	}
	boxW += 4
	boxH := len(lines) + 2

	boxX := (g.screenW - boxW) / 2
	boxY := max(0, bg.top+(bg.capacity-boxH)/2)

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBoxColored(box, color)
	for i, line := range lines {
		c := core.ColorDefault
		if i == 0 {
			c = color
		}
		dst.DrawTextCenteredColored(boxY+1+i, line, c)
	}
}
