package domain

type OutcomeKind string

const (
	OutcomePending OutcomeKind = "pending"
	OutcomeWin     OutcomeKind = "win"
	OutcomeDraw    OutcomeKind = "draw"
	OutcomeAborted OutcomeKind = "aborted"
)

type Outcome struct {
	Kind   OutcomeKind
	Winner *Player
}

// Award adds the points of the outcome to the players' cumulative scores.
// Aborted and unfinished games are worth nothing.
func (o Outcome) Award(first, second *Player) {
	switch o.Kind {
	case OutcomeWin:
		o.Winner.Score += WinPoints
	case OutcomeDraw:
		first.Score += DrawPoints
		second.Score += DrawPoints
	}
}

// Scored reports whether the outcome changes the score.
func (o Outcome) Scored() bool {
	return o.Kind == OutcomeWin || o.Kind == OutcomeDraw
}
