// Package tictactoe is the game engine. Every function takes a GameState by value and
// returns a new one; inputs are never modified.
package tictactoe

import (
	"fmt"
	"slices"

	"github.com/rocketscienceinc/blinktactoe-backend/internal/apperror"
	"github.com/rocketscienceinc/blinktactoe-backend/internal/entity"
)

const (
	defaultPlayer1Name = "Player 1"
	defaultPlayer2Name = "Player 2"

	// fallbackTournamentSize is used when a one-game series asks for a rematch as a tournament.
	fallbackTournamentSize = 3

	firstSequence uint64 = 1
)

// InitializeGame returns the menu state: no mode picked yet.
func InitializeGame() entity.GameState {
	return newState(entity.PhaseModeSelection, entity.ModeUnset, entity.Tournament{
		TotalGames:   fallbackTournamentSize,
		CurrentGame:  1,
		RequiredWins: entity.RequiredWinsFor(fallbackTournamentSize),
	})
}

func InitializeSingleGame() entity.GameState {
	return newState(entity.PhaseCategorySelection, entity.ModeSingle, entity.Tournament{
		TotalGames:   1,
		CurrentGame:  1,
		RequiredWins: 1,
	})
}

func InitializeTournament(totalGames int) (entity.GameState, error) {
	if !entity.IsValidTournamentSize(totalGames) {
		return entity.GameState{}, fmt.Errorf("%w: got %d", apperror.ErrInvalidTournamentSize, totalGames)
	}

	return newState(entity.PhaseCategorySelection, entity.ModeTournament, entity.Tournament{
		Active:       true,
		TotalGames:   totalGames,
		CurrentGame:  1,
		RequiredWins: entity.RequiredWinsFor(totalGames),
	}), nil
}

func newState(phase entity.Phase, mode entity.Mode, tournament entity.Tournament) entity.GameState {
	return entity.GameState{
		Players: [2]entity.Player{
			entity.NewPlayer(entity.Player1, defaultPlayer1Name),
			entity.NewPlayer(entity.Player2, defaultPlayer2Name),
		},
		Turn:         entity.Player1,
		Phase:        phase,
		Round:        1,
		Tournament:   tournament,
		Mode:         mode,
		NextSequence: firstSequence,
	}
}

// SelectCategory sets the category and symbol set of one player. It does not change the phase.
func SelectCategory(state entity.GameState, playerID entity.PlayerID, category string, symbols []string) (entity.GameState, error) {
	player, ok := state.Player(playerID)
	if !ok {
		return state, fmt.Errorf("%w: %w %d", apperror.ErrInvalidCategorySelection, apperror.ErrUnknownPlayer, playerID)
	}

	if category == "" || len(symbols) == 0 {
		return state, fmt.Errorf("%w: category %q has no symbols", apperror.ErrInvalidCategorySelection, category)
	}

	player.Category = category
	player.Symbols = append([]string(nil), symbols...)

	return state.WithPlayer(player), nil
}

// StartGame moves a state with both categories chosen into play. Any other state is
// returned as is.
func StartGame(state entity.GameState) entity.GameState {
	if state.Phase != entity.PhaseCategorySelection || !state.CanStart() {
		return state
	}

	next := state.Clone()
	next.Phase = entity.PhasePlaying

	return next
}

// ApplyMove places symbol for the player whose turn it is. When that player already has
// MaxPlacements symbols on the board the oldest one vanishes first. On error the input
// state is returned unchanged.
func ApplyMove(state entity.GameState, position int, symbol string) (entity.GameState, error) {
	if err := validateMove(state, position, symbol); err != nil {
		return state, fmt.Errorf("%w: %w", apperror.ErrInvalidMove, err)
	}

	next := state.Clone()
	player := &next.Players[next.Turn-1]

	if len(player.Placements) >= entity.MaxPlacements {
		oldest := oldestPlacement(player.Placements)
		next.Board[player.Placements[oldest].Position] = entity.EmptyCell
		player.Placements = slices.Delete(player.Placements, oldest, oldest+1)
	}

	next.Board[position] = symbol
	player.Placements = append(player.Placements, entity.Placement{
		Symbol:   symbol,
		Position: position,
		Sequence: next.NextSequence,
	})
	next.NextSequence++

	updateGameStatus(&next)

	return next, nil
}

// validateMove - checks if the move is valid.
func validateMove(state entity.GameState, position int, symbol string) error {
	if !state.IsPlaying() {
		return fmt.Errorf("%w: %s", apperror.ErrWrongPhase, state.Phase)
	}

	if !state.Turn.IsValid() {
		return fmt.Errorf("%w: turn %d", apperror.ErrUnknownPlayer, state.Turn)
	}

	if position < 0 || position >= entity.BoardSize {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, position)
	}

	if !state.Board.IsEmpty(position) {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, position)
	}

	if symbol == entity.EmptyCell {
		return apperror.ErrEmptySymbol
	}

	return nil
}

// updateGameStatus - checks the game status after a move.
func updateGameStatus(state *entity.GameState) {
	winner, line := CheckWinner(state.Board, state.Players)
	if winner == entity.NoPlayer {
		state.Turn = state.Turn.Opponent()
		return
	}

	state.LastWinner = winner
	state.WinningLine = line
	state.Players[winner-1].Score++

	if !state.IsTournament() {
		state.Phase = entity.PhaseGameWon
		return
	}

	state.Tournament.Wins[winner-1]++
	if state.Tournament.WinsOf(winner) >= state.Tournament.RequiredWins {
		state.Phase = entity.PhaseTournamentComplete
		state.Tournament.Champion = winner
		return
	}

	state.Phase = entity.PhaseGameWon
	state.Tournament.CurrentGame++
}

// CheckWinner returns the owner of the first completed line in WinCombos order.
// Ownership comes from placement records, so two players sharing a symbol never
// complete a line together.
func CheckWinner(board entity.Board, players [2]entity.Player) (entity.PlayerID, []int) {
	for _, combo := range entity.WinCombos {
		a, b, c := combo[0], combo[1], combo[2]
		if board.IsEmpty(a) || board.IsEmpty(b) || board.IsEmpty(c) {
			continue
		}

		owner := ownerOf(players, a)
		if owner != entity.NoPlayer && owner == ownerOf(players, b) && owner == ownerOf(players, c) {
			return owner, []int{a, b, c}
		}
	}

	return entity.NoPlayer, nil
}

func ownerOf(players [2]entity.Player, position int) entity.PlayerID {
	for _, player := range players {
		if player.OwnsPosition(position) {
			return player.ID
		}
	}

	return entity.NoPlayer
}

// oldestPlacement returns the index of the placement with the smallest sequence.
func oldestPlacement(placements []entity.Placement) int {
	oldest := 0
	for i, placement := range placements {
		if placement.Sequence < placements[oldest].Sequence {
			oldest = i
		}
	}

	return oldest
}

// ResetBoardForNextGame clears the board for another game between the same players.
// Categories, scores and the series tally are kept.
func ResetBoardForNextGame(state entity.GameState) entity.GameState {
	next := state.Clone()

	next.Board = entity.Board{}
	next.Turn = entity.Player1
	next.Phase = entity.PhasePlaying
	next.LastWinner = entity.NoPlayer
	next.WinningLine = nil
	next.Round++

	for i := range next.Players {
		next.Players[i].Placements = nil
	}

	return next
}

// StartNewTournamentOrGame starts a fresh series of the same kind, dropping the old scoreline.
func StartNewTournamentOrGame(state entity.GameState) entity.GameState {
	if !state.IsTournament() {
		return InitializeSingleGame()
	}

	totalGames := state.Tournament.TotalGames
	if !entity.IsValidTournamentSize(totalGames) {
		totalGames = fallbackTournamentSize
	}

	next, err := InitializeTournament(totalGames)
	if err != nil {
		return InitializeSingleGame()
	}

	return next
}
