package entity

type Phase string

const (
	PhaseModeSelection      Phase = "mode-selection"
	PhaseCategorySelection  Phase = "category-selection"
	PhasePlaying            Phase = "playing"
	PhaseGameWon            Phase = "game-won"
	PhaseTournamentComplete Phase = "tournament-complete"
)

type Mode string

const (
	ModeUnset      Mode = ""
	ModeSingle     Mode = "single"
	ModeTournament Mode = "tournament"
)

const (
	BoardSize = 9
	EmptyCell = ""
)

// WinCombos lists the winning lines in the order they are checked.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

type Board [BoardSize]string

func (that Board) IsEmpty(position int) bool {
	return that[position] == EmptyCell
}

func (that Board) Occupied() int {
	count := 0
	for _, cell := range that {
		if cell != EmptyCell {
			count++
		}
	}

	return count
}

// GameState is an immutable snapshot of a session. Transitions produce a new value
// through Clone and never write into the receiver's slices.
type GameState struct {
	Board        Board      `json:"board"`
	Players      [2]Player  `json:"players"`
	Turn         PlayerID   `json:"player_turn"`
	Phase        Phase      `json:"phase"`
	LastWinner   PlayerID   `json:"last_winner,omitempty"`
	WinningLine  []int      `json:"winning_line,omitempty"`
	Round        int        `json:"round"`
	Tournament   Tournament `json:"tournament"`
	Mode         Mode       `json:"mode,omitempty"`
	NextSequence uint64     `json:"next_sequence"`
}

func (that GameState) Clone() GameState {
	clone := that

	clone.Players = [2]Player{that.Players[0].Clone(), that.Players[1].Clone()}

	if that.WinningLine != nil {
		clone.WinningLine = append([]int(nil), that.WinningLine...)
	}

	return clone
}

// Player returns the player with the given id.
func (that GameState) Player(id PlayerID) (Player, bool) {
	if !id.IsValid() {
		return Player{}, false
	}

	return that.Players[id.index()], true
}

func (that GameState) CurrentPlayer() Player {
	player, _ := that.Player(that.Turn)
	return player
}

// Winner returns the player who won the last game, if any.
func (that GameState) Winner() (Player, bool) {
	return that.Player(that.LastWinner)
}

// Champion returns the player who won the series, if it is decided.
func (that GameState) Champion() (Player, bool) {
	return that.Player(that.Tournament.Champion)
}

// CanStart reports whether both players have picked a category with symbols.
func (that GameState) CanStart() bool {
	return that.Players[0].HasCategory() && that.Players[1].HasCategory()
}

func (that GameState) IsPlaying() bool {
	return that.Phase == PhasePlaying
}

func (that GameState) IsFinished() bool {
	return that.Phase == PhaseGameWon || that.Phase == PhaseTournamentComplete
}

func (that GameState) IsTournament() bool {
	return that.Mode == ModeTournament
}

// WithPlayer returns a copy of the state with the player replaced in its slot.
func (that GameState) WithPlayer(player Player) GameState {
	clone := that.Clone()
	if player.ID.IsValid() {
		clone.Players[player.ID.index()] = player.Clone()
	}

	return clone
}
