package tictactoe

// Outcome is the perfect-play result of a position for the player to move.
type Outcome int

const (
	Defeat Outcome = iota
	Tie
	Victory
)

// Invert - the same outcome seen by the opponent.
func (that Outcome) Invert() Outcome {
	switch that {
	case Victory:
		return Defeat
	case Defeat:
		return Victory
	default:
		return Tie
	}
}

func (that Outcome) String() string {
	switch that {
	case Victory:
		return "victory"
	case Defeat:
		return "defeat"
	default:
		return "tie"
	}
}
