package entity

type Player struct {
	ID   string `json:"id"`
	Mark string `json:"mark,omitempty"`
	Bot  bool   `json:"bot,omitempty"`
}

func NewHumanPlayer(id, mark string) *Player {
	return &Player{ID: id, Mark: mark}
}

func NewBotPlayer(id, mark string) *Player {
	return &Player{ID: id, Mark: mark, Bot: true}
}

func (that *Player) IsBot() bool {
	return that.Bot
}
