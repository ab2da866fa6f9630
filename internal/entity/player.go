package entity

// ComputerName is the name given to the computer opponent.
const ComputerName = "Computer"

type Player struct {
	Name   string `json:"name"`
	Symbol Symbol `json:"symbol"`
}

func NewPlayer(name string, symbol Symbol) Player {
	return Player{Name: name, Symbol: symbol}
}
