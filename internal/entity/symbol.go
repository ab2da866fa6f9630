package entity

// Symbol is the mark a player puts on the board. The zero value is an empty cell.
type Symbol string

const (
	SymbolO Symbol = "O"
	SymbolX Symbol = "X"

	EmptyCell Symbol = ""
)

func (that Symbol) Opposite() Symbol {
	switch that {
	case SymbolO:
		return SymbolX
	case SymbolX:
		return SymbolO
	default:
		return EmptyCell
	}
}

func (that Symbol) IsEmpty() bool {
	return that == EmptyCell
}
