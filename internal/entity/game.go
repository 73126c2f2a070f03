package entity

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"

	EmptyCell = ""
)

const (
	ModePvP     = "pvp"
	ModeRandom  = "random"
	ModeOptimal = "optimal"
)

type Game struct {
	ID      string    `json:"id"`
	Board   [9]string `json:"board"`
	Winner  string    `json:"winner"`
	Status  string    `json:"status"`
	Turn    string    `json:"player_turn"`
	Mode    string    `json:"mode,omitempty"`
	Players []*Player `json:"players,omitempty"`
}

// NewGame - creates an ongoing game on an empty board; X always moves first.
func NewGame(id, mode string) *Game {
	return &Game{
		ID:     id,
		Board:  [9]string{EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell},
		Turn:   PlayerX,
		Status: StatusOngoing,
		Mode:   mode,
	}
}

// EmptyCells - returns the free cell indexes in ascending order.
func (that *Game) EmptyCells() []int {
	cells := make([]int, 0, len(that.Board))
	for i, cell := range that.Board {
		if cell == EmptyCell {
			cells = append(cells, i)
		}
	}

	return cells
}

func (that *Game) IsFull() bool {
	for _, cell := range that.Board {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWithBot() bool {
	return that.Mode == ModeRandom || that.Mode == ModeOptimal
}

// CurrentPlayer - returns the player whose mark matches the turn, or nil.
func (that *Game) CurrentPlayer() *Player {
	for _, player := range that.Players {
		if player.Mark == that.Turn {
			return player
		}
	}

	return nil
}

// BotPlayer - returns the bot seat, or nil for a PvP game.
func (that *Game) BotPlayer() *Player {
	for _, player := range that.Players {
		if player.IsBot() {
			return player
		}
	}

	return nil
}

func ToggleMark(currentMark string) string {
	if currentMark == PlayerX {
		return PlayerO
	}
	return PlayerX
}
