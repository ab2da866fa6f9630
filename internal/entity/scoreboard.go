package entity

import "slices"

// Scoreboard tallies finished games of one session.
type Scoreboard struct {
	Wins   map[string]int `json:"wins"`
	Ties   int            `json:"ties"`
	Played int            `json:"played"`
	order  []string
}

func NewScoreboard() *Scoreboard {
	return &Scoreboard{Wins: make(map[string]int)}
}

// Record adds a finished game. Unfinished games are ignored.
func (that *Scoreboard) Record(game *Game) {
	if !game.IsFinished() {
		return
	}

	for _, player := range game.Players {
		if _, ok := that.Wins[player.Name]; !ok {
			that.Wins[player.Name] = 0
			that.order = append(that.order, player.Name)
		}
	}

	that.Played++

	switch game.Status {
	case StatusHasWinner:
		that.Wins[game.Winner.Name]++
	case StatusTie:
		that.Ties++
	}
}

// Names returns the players in the order they first appeared.
func (that *Scoreboard) Names() []string {
	return slices.Clone(that.order)
}

func (that *Scoreboard) Clone() *Scoreboard {
	clone := &Scoreboard{
		Wins:   make(map[string]int, len(that.Wins)),
		Ties:   that.Ties,
		Played: that.Played,
		order:  slices.Clone(that.order),
	}
	for name, wins := range that.Wins {
		clone.Wins[name] = wins
	}
	return clone
}
