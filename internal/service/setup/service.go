package setup

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/iamasit07/connect-four/internal/domain"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var (
	ErrDimensionsFormat = errors.WithMessage(domain.ErrConfig, "dimensions must look like <rows> x <columns>")
	ErrRowsRange        = errors.WithMessage(domain.ErrConfig, "board rows out of range")
	ErrColumnsRange     = errors.WithMessage(domain.ErrConfig, "board columns out of range")
	ErrGameCount        = errors.WithMessage(domain.ErrConfig, "number of games must be a positive integer")
)

var (
	dimensionsPattern = regexp.MustCompile(`^(\d+)X(\d+)$`)
	gameCountPattern  = regexp.MustCompile(`^\d+$`)
)

type Terminal interface {
	ReadLine() (string, error)
	Println(a ...any)
}

// Service collects everything a match needs before the first move.
type Service struct {
	term       Terminal
	firstSign  domain.Sign
	secondSign domain.Sign
	log        *zap.Logger
}

func NewService(term Terminal, firstSign, secondSign domain.Sign, log *zap.Logger) *Service {
	return &Service{
		term:       term,
		firstSign:  firstSign,
		secondSign: secondSign,
		log:        log.With(zap.String("component", "setup")),
	}
}

// Collect asks for names, board size and number of games. Invalid answers
// are reported and asked again; only input errors are returned.
func (s *Service) Collect() (domain.Settings, error) {
	first, second, err := s.collectPlayers()
	if err != nil {
		return domain.Settings{}, err
	}

	rows, columns, err := s.collectDimensions()
	if err != nil {
		return domain.Settings{}, err
	}

	games, err := s.collectNumberOfGames()
	if err != nil {
		return domain.Settings{}, err
	}

	settings := domain.Settings{
		FirstPlayer:   first,
		SecondPlayer:  second,
		Rows:          rows,
		Columns:       columns,
		NumberOfGames: games,
	}
	s.log.Info("settings collected",
		zap.String("first_player", first.Name),
		zap.String("second_player", second.Name),
		zap.Int("rows", rows),
		zap.Int("columns", columns),
		zap.Int("games", games))
	return settings, nil
}

func (s *Service) collectPlayers() (*domain.Player, *domain.Player, error) {
	s.term.Println("Connect Four")

	s.term.Println("First player's name:")
	firstName, err := s.term.ReadLine()
	if err != nil {
		return nil, nil, errors.Wrap(err, "read first player name")
	}

	s.term.Println("Second player's name:")
	secondName, err := s.term.ReadLine()
	if err != nil {
		return nil, nil, errors.Wrap(err, "read second player name")
	}

	return domain.NewPlayer(firstName, s.firstSign), domain.NewPlayer(secondName, s.secondSign), nil
}

func (s *Service) collectDimensions() (int, int, error) {
	for {
		s.term.Println("Set the board dimensions (Rows x Columns)")
		s.term.Println("Press Enter for default (6 x 7)")

		input, err := s.term.ReadLine()
		if err != nil {
			return 0, 0, errors.Wrap(err, "read board dimensions")
		}

		rows, columns, err := ParseDimensions(input)
		if err == nil {
			return rows, columns, nil
		}
		s.log.Debug("dimensions rejected", zap.String("input", input), zap.Error(err))
		s.term.Println(dimensionsMessage(err))
	}
}

func (s *Service) collectNumberOfGames() (int, error) {
	for {
		s.term.Println("Do you want to play single or multiple games?")
		s.term.Println("For a single game, input 1 or press Enter")
		s.term.Println("Input a number of games:")

		input, err := s.term.ReadLine()
		if err != nil {
			return 0, errors.Wrap(err, "read number of games")
		}

		games, err := ParseGameCount(input)
		if err == nil {
			return games, nil
		}
		s.log.Debug("number of games rejected", zap.String("input", input), zap.Error(err))
		s.term.Println("Invalid input")
	}
}

// ParseDimensions reads "<rows> x <columns>", ignoring case, spaces and
// tabs. An empty answer means the default 6 x 7 board.
func ParseDimensions(input string) (rows, columns int, err error) {
	normalized := strings.ToUpper(input)
	normalized = strings.NewReplacer(" ", "", "\t", "").Replace(normalized)
	if normalized == "" {
		return domain.DefaultRows, domain.DefaultColumns, nil
	}

	m := dimensionsPattern.FindStringSubmatch(normalized)
	if m == nil {
		return 0, 0, ErrDimensionsFormat
	}

	rows, err = strconv.Atoi(m[1])
	if err != nil || !domain.ValidDimension(rows) {
		return 0, 0, ErrRowsRange
	}
	columns, err = strconv.Atoi(m[2])
	if err != nil || !domain.ValidDimension(columns) {
		return 0, 0, ErrColumnsRange
	}
	return rows, columns, nil
}

// ParseGameCount accepts a positive integer; an empty answer means one game.
func ParseGameCount(input string) (int, error) {
	if input == "" {
		return 1, nil
	}
	if !gameCountPattern.MatchString(input) {
		return 0, ErrGameCount
	}
	n, err := strconv.Atoi(input)
	if err != nil || n < 1 {
		return 0, ErrGameCount
	}
	return n, nil
}

func dimensionsMessage(err error) string {
	switch {
	case errors.Is(err, ErrRowsRange):
		return fmt.Sprintf("Board rows should be from %d to %d", domain.MinDimension, domain.MaxDimension)
	case errors.Is(err, ErrColumnsRange):
		return fmt.Sprintf("Board columns should be from %d to %d", domain.MinDimension, domain.MaxDimension)
	}
	return "Invalid input"
}
