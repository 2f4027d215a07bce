package match

import (
	"context"
	"fmt"

	"github.com/iamasit07/connect-four/internal/analytics"
	"github.com/iamasit07/connect-four/internal/domain"
	"github.com/iamasit07/connect-four/pkg/uid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Terminal interface {
	ReadLine() (string, error)
	Println(a ...any)
	Printf(format string, a ...any)
	Print(s string)
	Err() error
}

type EventPublisher interface {
	Publish(ctx context.Context, matchID, event string, payload map[string]any)
}

// Service runs a match: a fixed number of games between the same two
// players whose scores add up from game to game.
type Service struct {
	term   Terminal
	events EventPublisher
	log    *zap.Logger
}

func NewService(term Terminal, events EventPublisher, log *zap.Logger) *Service {
	return &Service{
		term:   term,
		events: events,
		log:    log.With(zap.String("component", "match")),
	}
}

// Run plays every game of the match. It only returns early when the input
// ends, the output fails or ctx is cancelled.
func (s *Service) Run(ctx context.Context, settings domain.Settings) error {
	matchID := uid.NewMatchID()
	log := s.log.With(zap.String("match_id", matchID))
	first, second := settings.FirstPlayer, settings.SecondPlayer

	s.term.Printf("%s VS %s\n", first.Name, second.Name)
	s.term.Printf("%d X %d board\n", settings.Rows, settings.Columns)
	if settings.NumberOfGames > 1 {
		s.term.Printf("Total %d games\n", settings.NumberOfGames)
	}

	log.Info("match started", zap.Int("games", settings.NumberOfGames))
	s.publish(ctx, matchID, analytics.EventMatchStarted, map[string]any{
		"first_player":  first.Name,
		"second_player": second.Name,
		"rows":          settings.Rows,
		"columns":       settings.Columns,
		"games":         settings.NumberOfGames,
	})

	for i := 0; i < settings.NumberOfGames; i++ {
		outcome, err := s.PlayGame(ctx, i, settings)
		if err != nil {
			log.Warn("match interrupted", zap.Int("game", i+1), zap.Error(err))
			return err
		}

		log.Info("game finished",
			zap.Int("game", i+1),
			zap.String("outcome", string(outcome.Kind)),
			zap.Int("first_score", first.Score),
			zap.Int("second_score", second.Score))
		s.publish(ctx, matchID, analytics.EventGameFinished, gamePayload(i, outcome, settings))
	}

	s.term.Println("Game over!")

	s.publish(ctx, matchID, analytics.EventMatchFinished, map[string]any{
		"first_score":  first.Score,
		"second_score": second.Score,
	})
	return nil
}

// StartingPlayer alternates the opener: even games start with the first
// player, odd games with the second.
func StartingPlayer(gameIndex int, settings domain.Settings) *domain.Player {
	if gameIndex%2 == 0 {
		return settings.FirstPlayer
	}
	return settings.SecondPlayer
}

// PlayGame runs the turn loop of one game on a fresh board and credits the
// outcome to the players.
func (s *Service) PlayGame(ctx context.Context, gameIndex int, settings domain.Settings) (domain.Outcome, error) {
	board, err := domain.NewBoard(settings.Columns, settings.Rows)
	if err != nil {
		return domain.Outcome{}, err
	}
	first, second := settings.FirstPlayer, settings.SecondPlayer
	game := domain.NewGame(board, first, second, StartingPlayer(gameIndex, settings))

	if settings.NumberOfGames > 1 {
		s.term.Printf("Game #%d\n", gameIndex+1)
	} else {
		s.term.Println("Single game")
	}
	s.term.Print(domain.Render(board))

	for !game.IsFinished() {
		if err := ctx.Err(); err != nil {
			return domain.Outcome{}, err
		}
		if err := s.playTurn(game); err != nil {
			return domain.Outcome{}, err
		}
		if err := s.term.Err(); err != nil {
			return domain.Outcome{}, err
		}
	}

	outcome := game.Outcome()
	outcome.Award(first, second)
	s.report(outcome, first, second)
	return outcome, nil
}

// playTurn asks the current player until a move is accepted. Rejected moves
// are explained and asked again without passing the turn.
func (s *Service) playTurn(game *domain.Game) error {
	player := game.CurrentPlayer
	columns := game.Board.Columns()

	for {
		s.term.Printf("%s's turn:\n", player.Name)
		input, err := s.term.ReadLine()
		if err != nil {
			return errors.Wrap(err, "read move")
		}

		move, err := domain.ParseMove(input, columns)
		if err == nil {
			_, err = game.Apply(move)
		}
		if err != nil {
			s.log.Debug("move rejected", zap.String("player", player.Name), zap.String("input", input), zap.Error(err))
			s.term.Println(moveMessage(err, input, columns))
			continue
		}

		if move.End {
			s.log.Debug("game aborted", zap.String("player", player.Name))
			return nil
		}

		s.log.Debug("move played", zap.String("player", player.Name), zap.Int("column", move.Column+1))
		s.term.Print(domain.Render(game.Board))
		return nil
	}
}

func (s *Service) report(outcome domain.Outcome, first, second *domain.Player) {
	if !outcome.Scored() {
		s.term.Println("Game over!")
		return
	}
	switch outcome.Kind {
	case domain.OutcomeWin:
		s.term.Printf("Player %s won\n", outcome.Winner.Name)
	case domain.OutcomeDraw:
		s.term.Println("It is a draw")
	}
	s.term.Println("Score")
	s.term.Printf("%s: %d %s: %d\n", first.Name, first.Score, second.Name, second.Score)
}

func (s *Service) publish(ctx context.Context, matchID, event string, payload map[string]any) {
	if s.events == nil {
		return
	}
	s.events.Publish(ctx, matchID, event, payload)
}

func moveMessage(err error, input string, columns int) string {
	switch {
	case errors.Is(err, domain.ErrParse):
		return "Incorrect column number"
	case errors.Is(err, domain.ErrOutOfRange):
		return fmt.Sprintf("The column number is out of range (1 - %d)", columns)
	case errors.Is(err, domain.ErrColumnFull):
		return fmt.Sprintf("Column %s is full", input)
	}
	return err.Error()
}

func gamePayload(gameIndex int, outcome domain.Outcome, settings domain.Settings) map[string]any {
	payload := map[string]any{
		"game":         gameIndex + 1,
		"outcome":      string(outcome.Kind),
		"first_score":  settings.FirstPlayer.Score,
		"second_score": settings.SecondPlayer.Score,
	}
	if outcome.Winner != nil {
		payload["winner"] = outcome.Winner.Name
	}
	return payload
}
