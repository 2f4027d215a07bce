package domain

import (
	"testing"

	"github.com/pkg/errors"
)

func newTestGame(t *testing.T, columns, rows int) (*Game, *Player, *Player) {
	t.Helper()
	b, err := NewBoard(columns, rows)
	if err != nil {
		t.Fatal(err)
	}
	alice := NewPlayer("Alice", DefaultFirstSign)
	bob := NewPlayer("Bob", DefaultSecondSign)
	return NewGame(b, alice, bob, alice), alice, bob
}

func TestGameColumnWin(t *testing.T) {
	g, alice, bob := newTestGame(t, 7, 6)

	moves := []int{0, 1, 0, 1, 0, 1, 0}
	for i, column := range moves {
		mover := g.CurrentPlayer
		if _, err := g.MakeMove(column); err != nil {
			t.Fatalf("move %d: %v", i, err)
		}
		if i < len(moves)-1 {
			if g.Status != StatusAwaitingMove {
				t.Fatalf("game ended early after move %d with %s", i, g.Status)
			}
			if g.CurrentPlayer == mover {
				t.Fatalf("turn did not pass after move %d", i)
			}
		}
	}

	if g.Status != StatusWon || g.Winner != alice {
		t.Fatalf("status %s winner %v, want alice to win", g.Status, g.Winner)
	}
	if !HasFourInColumn(g.Board, alice.Sign) {
		t.Error("expected a column of four for alice")
	}
	if g.MoveCount != len(moves) {
		t.Errorf("MoveCount = %d, want %d", g.MoveCount, len(moves))
	}

	g.Outcome().Award(alice, bob)
	if alice.Score != WinPoints || bob.Score != 0 {
		t.Errorf("scores alice=%d bob=%d", alice.Score, bob.Score)
	}

	if _, err := g.MakeMove(3); !errors.Is(err, ErrGameOver) {
		t.Errorf("move after the end returned %v, want ErrGameOver", err)
	}
}

func TestGameInvalidMoveKeepsTurn(t *testing.T) {
	g, _, bob := newTestGame(t, 5, 5)
	for i := 0; i < 5; i++ {
		g.MakeMove(0)
	}
	current := g.CurrentPlayer

	if _, err := g.MakeMove(0); !errors.Is(err, ErrColumnFull) {
		t.Fatalf("error = %v, want ErrColumnFull", err)
	}
	if _, err := g.MakeMove(5); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("error = %v, want ErrOutOfRange", err)
	}
	if g.CurrentPlayer != current {
		t.Error("a rejected move must not pass the turn")
	}
	if g.MoveCount != 5 {
		t.Errorf("MoveCount = %d, want 5", g.MoveCount)
	}
	if current != bob {
		t.Error("five moves starting with alice leave bob to play")
	}
}

func TestGameWinOnLastCellIsNotDraw(t *testing.T) {
	board := boardFromRows(t, fullBoardRows(".")...)
	alice := NewPlayer("Alice", DefaultFirstSign)
	bob := NewPlayer("Bob", DefaultSecondSign)
	g := NewGame(board, alice, bob, alice)

	if _, err := g.MakeMove(0); err != nil {
		t.Fatal(err)
	}
	if !board.IsFull() {
		t.Fatal("board should be full")
	}
	if g.Status != StatusWon || g.Winner != alice {
		t.Fatalf("status = %s, want won by alice", g.Status)
	}

	g.Outcome().Award(alice, bob)
	if alice.Score != WinPoints || bob.Score != 0 {
		t.Errorf("scores alice=%d bob=%d, want %d and 0", alice.Score, bob.Score, WinPoints)
	}
}

func TestGameDrawOnLastCell(t *testing.T) {
	board := boardFromRows(t, fullBoardRows(".")...)
	alice := NewPlayer("Alice", DefaultFirstSign)
	bob := NewPlayer("Bob", DefaultSecondSign)
	g := NewGame(board, alice, bob, bob)

	if _, err := g.MakeMove(0); err != nil {
		t.Fatal(err)
	}
	if g.Status != StatusDraw {
		t.Fatalf("status = %s, want draw", g.Status)
	}

	alice.Score, bob.Score = 3, 1
	g.Outcome().Award(alice, bob)
	if alice.Score != 3+DrawPoints || bob.Score != 1+DrawPoints {
		t.Errorf("scores alice=%d bob=%d", alice.Score, bob.Score)
	}
}

func TestGameEndCommand(t *testing.T) {
	g, alice, bob := newTestGame(t, 7, 6)
	g.MakeMove(3)

	if _, err := g.Apply(Move{End: true}); err != nil {
		t.Fatal(err)
	}
	if g.Status != StatusAborted {
		t.Fatalf("status = %s, want aborted", g.Status)
	}
	out := g.Outcome()
	if out.Scored() {
		t.Error("an aborted game must not be scored")
	}
	out.Award(alice, bob)
	if alice.Score != 0 || bob.Score != 0 {
		t.Errorf("scores changed on abort: %d %d", alice.Score, bob.Score)
	}
}

func TestGameStartsWithStarter(t *testing.T) {
	b, _ := NewBoard(7, 6)
	alice := NewPlayer("Alice", DefaultFirstSign)
	bob := NewPlayer("Bob", DefaultSecondSign)
	g := NewGame(b, alice, bob, bob)

	row, err := g.MakeMove(4)
	if err != nil || row != 0 {
		t.Fatalf("MakeMove = %d, %v", row, err)
	}
	if b.Cell(4, 0) != bob.Sign {
		t.Errorf("first token is %q, want bob's %q", b.Cell(4, 0), bob.Sign)
	}
	if g.CurrentPlayer != alice {
		t.Error("alice should play second")
	}
}
