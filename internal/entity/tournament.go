package entity

// Tournament tracks a best-of-N series. A single game is modelled as an inactive
// one-game series.
type Tournament struct {
	Active       bool     `json:"active"`
	TotalGames   int      `json:"total_games"`
	CurrentGame  int      `json:"current_game"`
	RequiredWins int      `json:"required_wins"`
	Wins         [2]int   `json:"wins"`
	Champion     PlayerID `json:"champion,omitempty"`
}

// RequiredWinsFor returns ceil(totalGames/2).
func RequiredWinsFor(totalGames int) int {
	return (totalGames + 1) / 2
}

func IsValidTournamentSize(totalGames int) bool {
	switch totalGames {
	case 3, 5, 7:
		return true
	default:
		return false
	}
}

func (that Tournament) WinsOf(id PlayerID) int {
	if !id.IsValid() {
		return 0
	}

	return that.Wins[id.index()]
}
