package entity

// PlayerID identifies one side of the pair. Player1 always sits at index 0.
type PlayerID int

const (
	NoPlayer PlayerID = 0
	Player1  PlayerID = 1
	Player2  PlayerID = 2

	// MaxPlacements is how many symbols a player may have on the board at once.
	MaxPlacements = 3
)

func (that PlayerID) IsValid() bool {
	return that == Player1 || that == Player2
}

func (that PlayerID) Opponent() PlayerID {
	switch that {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return NoPlayer
	}
}

// index returns the position of the player inside GameState.Players.
func (that PlayerID) index() int {
	return int(that) - 1
}

// Placement is a single symbol put on the board. Sequence orders placements by age.
type Placement struct {
	Symbol   string `json:"symbol"`
	Position int    `json:"position"`
	Sequence uint64 `json:"sequence"`
}

type Player struct {
	ID         PlayerID    `json:"id"`
	Name       string      `json:"name"`
	Category   string      `json:"category,omitempty"`
	Symbols    []string    `json:"symbols,omitempty"`
	Placements []Placement `json:"placements,omitempty"`
	Score      int         `json:"score"`
}

func NewPlayer(id PlayerID, name string) Player {
	return Player{
		ID:   id,
		Name: name,
	}
}

// Clone returns a copy that shares no slices with the receiver.
func (that Player) Clone() Player {
	clone := that

	if that.Symbols != nil {
		clone.Symbols = append([]string(nil), that.Symbols...)
	}

	if that.Placements != nil {
		clone.Placements = append([]Placement(nil), that.Placements...)
	}

	return clone
}

func (that Player) HasCategory() bool {
	return that.Category != "" && len(that.Symbols) > 0
}

func (that Player) OwnsPosition(position int) bool {
	for _, placement := range that.Placements {
		if placement.Position == position {
			return true
		}
	}

	return false
}
