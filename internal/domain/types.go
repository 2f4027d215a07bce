package domain

// Sign is the single character a player drops into the board.
type Sign rune

const Empty Sign = ' '

const (
	DefaultFirstSign  Sign = 'o'
	DefaultSecondSign Sign = '*'
)

const (
	MinDimension   = 5
	MaxDimension   = 9
	DefaultRows    = 6
	DefaultColumns = 7
	ToWin          = 4
)

const (
	WinPoints  = 2
	DrawPoints = 1
)

type Player struct {
	Name  string
	Sign  Sign
	Score int
}

func NewPlayer(name string, sign Sign) *Player {
	return &Player{Name: name, Sign: sign}
}

// Settings is produced once by setup and only read afterwards.
type Settings struct {
	FirstPlayer   *Player
	SecondPlayer  *Player
	Rows          int
	Columns       int
	NumberOfGames int
}

// to represent the game status
type GameStatus string

const (
	StatusAwaitingMove GameStatus = "awaiting_move"
	StatusWon          GameStatus = "won"
	StatusDraw         GameStatus = "draw"
	StatusAborted      GameStatus = "aborted"
)

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrConfig      Error = "invalid configuration"
	ErrParse       Error = "incorrect column number"
	ErrOutOfRange  Error = "column number is out of range"
	ErrColumnFull  Error = "column is full"
	ErrInvalidSign Error = "invalid sign"
	ErrGameOver    Error = "game is already over"
)
