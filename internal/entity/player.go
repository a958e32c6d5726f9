package entity

type Player struct {
	Name      string
	Symbol    string
	Automatic bool
}

func NewPlayer(name string, automatic bool) *Player {
	return &Player{
		Name:      name,
		Automatic: automatic,
	}
}

// IsAutomatic - reports whether the player's moves are drawn at random instead of read from input.
func (that *Player) IsAutomatic() bool {
	return that.Automatic
}
