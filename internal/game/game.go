// Package game implements the falling-block puzzle core: the board and
// collision model, piece movement and rotation, line clearing, scoring
// and the gravity-driven tick loop. The platform handles input mapping,
// timing and terminal output.
package game

import (
	"math/rand"
	"time"

	"github.com/mkraev/tetrois/internal/core"
	"github.com/mkraev/tetrois/internal/registry"
)

// ShapeSource produces the sequence of spawned shapes. The default
// source draws uniformly and independently from the seven shapes (no
// bag scheme); tests inject scripted sources for reproducible runs.
type ShapeSource interface {
	NextShape() Shape
}

type randomShapes struct {
	rng *rand.Rand
}

func (r randomShapes) NextShape() Shape {
	return Shape(r.rng.Intn(shapeCount))
}

// Tuning holds the gameplay parameters loaded from configuration.
type Tuning struct {
	DropStartMS  int   // Gravity interval before any lines are cleared
	DropStepMS   int   // Interval reduction per level
	DropMinMS    int   // Interval floor
	LineScores   []int // Points per clear event, indexed by lines cleared
	GhostEnabled bool  // Whether the ghost piece is drawn
}

// DefaultTuning returns the classic parameters.
func DefaultTuning() Tuning {
	return Tuning{
		DropStartMS:  800,
		DropStepMS:   50,
		DropMinMS:    100,
		LineScores:   []int{0, 40, 100, 300, 1200},
		GhostEnabled: true,
	}
}

// hardDropTimer is how far in the past the drop timer is pushed after a
// hard drop, guaranteeing gravity fires on the very next check.
const hardDropTimer = 10 * time.Second

// Package-level tuning applied at the next Reset (set by the CLI
// before game creation, like the other platform-level knobs).
var selectedTuning = DefaultTuning()

// SetTuning installs gameplay parameters for subsequently reset games.
func SetTuning(t Tuning) {
	if t.DropStartMS <= 0 || t.DropMinMS <= 0 || len(t.LineScores) < 2 {
		return
	}
	selectedTuning = t
}

// Game implements the falling-block puzzle.
type Game struct {
	tuning   Tuning
	rng      *rand.Rand
	source   ShapeSource
	scripted ShapeSource // Injected by tests; overrides the seeded source
	tick     uint64
	tickDur  time.Duration

	board  Board
	active Piece
	next   Piece

	score     int
	level     int
	lines     int
	highScore int

	dropInterval time.Duration
	sinceDrop    time.Duration

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	gameOver bool
	paused   bool
	tooSmall bool
}

// New creates a new game instance.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("tetrois", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tetrois"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetrois"
}

// SetShapeSource injects a deterministic shape sequence. Passing nil
// restores the seeded random source on the next Reset.
func (g *Game) SetShapeSource(src ShapeSource) {
	g.scripted = src
	if src != nil {
		g.source = src
	}
}

// Reset initializes/restarts the game. A restart is a brand-new
// session: fresh board, fresh score, new piece sequence.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.tuning = selectedTuning
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	if g.scripted != nil {
		g.source = g.scripted
	} else {
		g.source = randomShapes{rng: g.rng}
	}

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.tickDur = time.Second / time.Duration(tickRate)

	g.tick = 0
	g.score = 0
	g.level = 1
	g.lines = 0
	g.highScore = cfg.HighScore
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.gameOver = false
	g.paused = false

	g.board = Board{}
	g.active = g.spawn()
	g.next = g.spawn()

	g.dropInterval = time.Duration(g.tuning.DropStartMS) * time.Millisecond
	g.sinceDrop = 0

	g.checkScreenSize()
}

// spawn creates a fresh piece from the shape source at its template
// position.
func (g *Game) spawn() Piece {
	return NewPiece(g.source.NextShape())
}

// checkScreenSize checks whether even the stacked layout fits.
func (g *Game) checkScreenSize() {
	g.tooSmall = g.screenW < gridFrameW || g.screenH < gridFrameH+1
}

// Step advances the game by one tick: consume at most one input
// action, then apply gravity if the drop interval has elapsed.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.paused || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	g.handleInput(in)
	g.applyGravity()

	return core.StepResult{State: g.State()}
}

// handleInput dispatches a single action per tick. A transform that
// would collide is silently discarded; the active piece is replaced
// only by a validated candidate.
func (g *Game) handleInput(in core.InputFrame) {
	switch {
	case in.Has(core.ActionHardDrop):
		g.active = g.board.Ghost(g.active)
		// Force the next gravity check to fire immediately.
		g.sinceDrop = hardDropTimer

	case in.Has(core.ActionRotate):
		g.tryRotate()

	case in.Has(core.ActionMoveLeft):
		g.tryMove(core.Left)

	case in.Has(core.ActionMoveRight):
		g.tryMove(core.Right)

	case in.Has(core.ActionSoftDrop):
		g.tryMove(core.Down)
	}
}

// tryMove commits a translation if the candidate is collision-free.
func (g *Game) tryMove(d core.Offset) bool {
	candidate := g.active.Moved(d)
	if g.board.Collides(candidate) {
		return false
	}
	g.active = candidate
	return true
}

// tryRotate commits a rotation, falling back to the fixed wall-kick
// sequence: one cell right, then two cells left of the rotated
// position. The kick order is asymmetric and not a standard kick
// table; changing it changes which rotations succeed near walls.
func (g *Game) tryRotate() bool {
	rotated := g.active.Rotated()
	for _, kick := range []core.Offset{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: -2, Y: 0}} {
		candidate := rotated.Moved(kick)
		if !g.board.Collides(candidate) {
			g.active = candidate
			return true
		}
	}
	return false
}

// applyGravity advances the drop timer and, once the interval elapses,
// either moves the active piece down or locks it in place.
func (g *Game) applyGravity() {
	g.sinceDrop += g.tickDur
	if g.sinceDrop <= g.dropInterval {
		return
	}

	if !g.tryMove(core.Down) {
		g.lockAndSpawn()
	}
	g.sinceDrop = 0
}

// lockAndSpawn settles the active piece, clears lines, updates score
// and level, and promotes the next piece. A blocked spawn ends the
// session.
func (g *Game) lockAndSpawn() {
	g.board.Lock(g.active)

	if cleared := g.board.ClearLines(); cleared > 0 {
		g.score += g.lineScore(cleared) * g.level
		g.lines += cleared
		g.level = g.lines/10 + 1

		interval := g.tuning.DropStartMS - g.level*g.tuning.DropStepMS
		if interval < g.tuning.DropMinMS {
			interval = g.tuning.DropMinMS
		}
		g.dropInterval = time.Duration(interval) * time.Millisecond

		if g.score > g.highScore {
			g.highScore = g.score
		}
	}

	g.active = g.next
	g.next = g.spawn()

	if g.board.Collides(g.active) {
		g.gameOver = true
	}
}

// lineScore returns the per-event score for the given clear count.
// Counts beyond the table use its last entry rather than assuming a
// four-line cap.
func (g *Game) lineScore(cleared int) int {
	if cleared < 0 {
		return 0
	}
	if cleared >= len(g.tuning.LineScores) {
		return g.tuning.LineScores[len(g.tuning.LineScores)-1]
	}
	return g.tuning.LineScores[cleared]
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// HighScore returns the best score known to this session.
func (g *Game) HighScore() int {
	return g.highScore
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall,
	}
}
