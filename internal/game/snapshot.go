package game

import "github.com/mkraev/tetrois/internal/core"

// StateType names the coarse session state for snapshots.
type StateType string

const (
	StateFalling     StateType = "falling"
	StateGameOver    StateType = "game_over"
	StatePaused      StateType = "paused"
	StatePausedSmall StateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing
// and for read-only consumers such as renderers. The receiver is not
// mutated and the snapshot shares no storage with the live game.
type Snapshot struct {
	Tick       uint64
	Board      [Rows][Cols]BoardCell
	Active     [4]core.Offset
	ActiveKind Shape
	Ghost      [4]core.Offset
	NextKind   Shape
	Score      int
	Level      int
	Lines      int
	HighScore  int
	State      StateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StateFalling
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	return Snapshot{
		Tick:       g.tick,
		Board:      g.board.cells,
		Active:     g.active.Blocks(),
		ActiveKind: g.active.Shape(),
		Ghost:      g.board.Ghost(g.active).Blocks(),
		NextKind:   g.next.Shape(),
		Score:      g.score,
		Level:      g.level,
		Lines:      g.lines,
		HighScore:  g.highScore,
		State:      state,
	}
}
