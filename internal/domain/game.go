package domain

// Game is the turn state machine of a single game. It never touches scores;
// the match decides what an outcome is worth.
type Game struct {
	Board         *Board
	FirstPlayer   *Player
	SecondPlayer  *Player
	CurrentPlayer *Player
	Status        GameStatus
	Winner        *Player
	MoveCount     int
}

func NewGame(board *Board, first, second, starter *Player) *Game {
	return &Game{
		Board:         board,
		FirstPlayer:   first,
		SecondPlayer:  second,
		CurrentPlayer: starter,
		Status:        StatusAwaitingMove,
	}
}

// Apply handles a parsed move. The end command aborts the game whatever the
// board looks like.
func (g *Game) Apply(move Move) (int, error) {
	if move.End {
		if g.IsFinished() {
			return -1, ErrGameOver
		}
		g.Status = StatusAborted
		return -1, nil
	}
	return g.MakeMove(move.Column)
}

func (g *Game) MakeMove(column int) (int, error) {
	if g.IsFinished() {
		return -1, ErrGameOver
	}

	row, err := g.Board.Drop(column, g.CurrentPlayer.Sign)
	if err != nil {
		return -1, err
	}

	g.MoveCount++

	// a board can be full and won at once, the win has to be checked first
	if HasWon(g.Board, g.CurrentPlayer.Sign) {
		g.Status = StatusWon
		g.Winner = g.CurrentPlayer
		return row, nil
	}

	if IsDraw(g.Board) {
		g.Status = StatusDraw
		return row, nil
	}

	g.CurrentPlayer = g.Opponent(g.CurrentPlayer)
	return row, nil
}

func (g *Game) Opponent(p *Player) *Player {
	if p == g.FirstPlayer {
		return g.SecondPlayer
	}
	return g.FirstPlayer
}

func (g *Game) IsFinished() bool {
	return g.Status != StatusAwaitingMove
}

func (g *Game) Outcome() Outcome {
	switch g.Status {
	case StatusWon:
		return Outcome{Kind: OutcomeWin, Winner: g.Winner}
	case StatusDraw:
		return Outcome{Kind: OutcomeDraw}
	case StatusAborted:
		return Outcome{Kind: OutcomeAborted}
	}
	return Outcome{Kind: OutcomePending}
}
