package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/blinktactoe-backend/internal/apperror"
	"github.com/rocketscienceinc/blinktactoe-backend/internal/emoji"
	"github.com/rocketscienceinc/blinktactoe-backend/internal/entity"
	"github.com/rocketscienceinc/blinktactoe-backend/internal/pkg"
	"github.com/rocketscienceinc/blinktactoe-backend/internal/tictactoe"
)

type sessionRepo interface {
	Save(ctx context.Context, id string, state entity.GameState) error
	GetByID(ctx context.Context, id string) (entity.GameState, error)
	DeleteByID(ctx context.Context, id string) error
}

type symbolSource interface {
	Category(name string) (emoji.Category, error)
	RandomEmoji(category string) string
	Pick(symbols []string) string
}

type Options struct {
	PlayerNames      []string
	CustomMinSymbols int
	CustomMaxSymbols int
}

// GameManager is the only writer of session state. Calls for the same session are
// serialized; each one loads the snapshot, applies one engine transition and saves the result.
type GameManager struct {
	logger      *slog.Logger
	sessionRepo sessionRepo
	symbols     symbolSource
	options     Options

	mu    sync.Mutex
	locks map[string]*sessionLock
}

func NewGameManager(logger *slog.Logger, sessionRepo sessionRepo, symbols symbolSource, options Options) *GameManager {
	return &GameManager{
		logger: logger,

		sessionRepo: sessionRepo,
		symbols:     symbols,
		options:     options,

		locks: make(map[string]*sessionLock),
	}
}

// NewSession creates a session at the mode menu and returns its id.
func (that *GameManager) NewSession(ctx context.Context) (string, entity.GameState, error) {
	sessionID := pkg.GenerateNewSessionID()
	state := that.withNames(tictactoe.InitializeGame())

	if err := that.sessionRepo.Save(ctx, sessionID, state); err != nil {
		return "", entity.GameState{}, fmt.Errorf("failed to create session: %w", err)
	}

	that.logger.Info("session created", "session", sessionID)

	return sessionID, state, nil
}

func (that *GameManager) GetSession(ctx context.Context, sessionID string) (entity.GameState, error) {
	state, err := that.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return entity.GameState{}, fmt.Errorf("failed to get session: %w", err)
	}

	return state, nil
}

func (that *GameManager) SelectSingle(ctx context.Context, sessionID string) (entity.GameState, error) {
	return that.update(ctx, sessionID, func(state entity.GameState) (entity.GameState, error) {
		if err := requirePhase(state, entity.PhaseModeSelection); err != nil {
			return state, err
		}

		return that.withNames(tictactoe.InitializeSingleGame()), nil
	})
}

func (that *GameManager) SelectTournament(ctx context.Context, sessionID string, totalGames int) (entity.GameState, error) {
	return that.update(ctx, sessionID, func(state entity.GameState) (entity.GameState, error) {
		if err := requirePhase(state, entity.PhaseModeSelection); err != nil {
			return state, err
		}

		next, err := tictactoe.InitializeTournament(totalGames)
		if err != nil {
			return state, fmt.Errorf("failed to start tournament: %w", err)
		}

		return that.withNames(next), nil
	})
}

// SelectCategory gives the player one of the built-in categories.
func (that *GameManager) SelectCategory(ctx context.Context, sessionID string, playerID entity.PlayerID, name string) (entity.GameState, error) {
	category, err := that.symbols.Category(name)
	if err != nil {
		return entity.GameState{}, fmt.Errorf("%w: %w", apperror.ErrInvalidCategorySelection, err)
	}

	return that.selectCategory(ctx, sessionID, playerID, category)
}

// SelectCustomCategory gives the player a category made of the emojis found in text.
func (that *GameManager) SelectCustomCategory(ctx context.Context, sessionID string, playerID entity.PlayerID, text string) (entity.GameState, error) {
	category, err := emoji.NewCustomCategory(emoji.ParseSymbols(text), that.options.CustomMinSymbols, that.options.CustomMaxSymbols)
	if err != nil {
		return entity.GameState{}, err
	}

	return that.selectCategory(ctx, sessionID, playerID, category)
}

func (that *GameManager) selectCategory(ctx context.Context, sessionID string, playerID entity.PlayerID, category emoji.Category) (entity.GameState, error) {
	return that.update(ctx, sessionID, func(state entity.GameState) (entity.GameState, error) {
		if err := requirePhase(state, entity.PhaseCategorySelection); err != nil {
			return state, err
		}

		return tictactoe.SelectCategory(state, playerID, category.Name, category.Symbols)
	})
}

func (that *GameManager) StartGame(ctx context.Context, sessionID string) (entity.GameState, error) {
	return that.update(ctx, sessionID, func(state entity.GameState) (entity.GameState, error) {
		if err := requirePhase(state, entity.PhaseCategorySelection); err != nil {
			return state, err
		}

		if !state.CanStart() {
			return state, fmt.Errorf("%w: both players must pick a category", apperror.ErrWrongPhase)
		}

		return tictactoe.StartGame(state), nil
	})
}

// MakeMove places a symbol drawn from the current player's category.
func (that *GameManager) MakeMove(ctx context.Context, sessionID string, position int) (entity.GameState, error) {
	log := that.logger.With("method", "MakeMove", "session", sessionID)

	return that.update(ctx, sessionID, func(state entity.GameState) (entity.GameState, error) {
		next, err := tictactoe.ApplyMove(state, position, that.drawSymbol(state.CurrentPlayer()))
		if err != nil {
			return state, fmt.Errorf("failed make turn: %w", err)
		}

		switch next.Phase {
		case entity.PhaseGameWon:
			log.Info("game won", "winner", next.LastWinner, "line", next.WinningLine)
		case entity.PhaseTournamentComplete:
			log.Info("tournament complete", "champion", next.Tournament.Champion, "wins", next.Tournament.Wins)
		}

		return next, nil
	})
}

func (that *GameManager) drawSymbol(player entity.Player) string {
	if player.Category == emoji.CustomCategoryName {
		return that.symbols.Pick(player.Symbols)
	}

	return that.symbols.RandomEmoji(player.Category)
}

// NextGame clears the board for the next game of a tournament.
func (that *GameManager) NextGame(ctx context.Context, sessionID string) (entity.GameState, error) {
	return that.update(ctx, sessionID, func(state entity.GameState) (entity.GameState, error) {
		if err := requirePhase(state, entity.PhaseGameWon); err != nil {
			return state, err
		}

		if !state.IsTournament() {
			return state, fmt.Errorf("%w: not a tournament", apperror.ErrWrongPhase)
		}

		return tictactoe.ResetBoardForNextGame(state), nil
	})
}

// PlayAgain starts another single game with the same categories and scores.
func (that *GameManager) PlayAgain(ctx context.Context, sessionID string) (entity.GameState, error) {
	return that.update(ctx, sessionID, func(state entity.GameState) (entity.GameState, error) {
		if err := requirePhase(state, entity.PhaseGameWon); err != nil {
			return state, err
		}

		if state.IsTournament() {
			return state, fmt.Errorf("%w: tournament games continue with next", apperror.ErrWrongPhase)
		}

		return tictactoe.ResetBoardForNextGame(state), nil
	})
}

// NewSeries starts a fresh series of the same kind once the current one is over.
func (that *GameManager) NewSeries(ctx context.Context, sessionID string) (entity.GameState, error) {
	return that.update(ctx, sessionID, func(state entity.GameState) (entity.GameState, error) {
		if !state.IsFinished() {
			return state, fmt.Errorf("%w: %s", apperror.ErrWrongPhase, state.Phase)
		}

		if state.IsTournament() && state.Phase != entity.PhaseTournamentComplete {
			return state, fmt.Errorf("%w: series in progress, use next", apperror.ErrWrongPhase)
		}

		return that.withNames(tictactoe.StartNewTournamentOrGame(state)), nil
	})
}

func (that *GameManager) BackToMenu(ctx context.Context, sessionID string) (entity.GameState, error) {
	return that.update(ctx, sessionID, func(_ entity.GameState) (entity.GameState, error) {
		return that.withNames(tictactoe.InitializeGame()), nil
	})
}

func (that *GameManager) EndSession(ctx context.Context, sessionID string) error {
	unlock := that.lock(sessionID)
	defer unlock()

	if err := that.sessionRepo.DeleteByID(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	that.logger.Info("session ended", "session", sessionID)

	return nil
}

// update runs one transition under the session lock. The stored snapshot only changes
// when the transition succeeds.
func (that *GameManager) update(
	ctx context.Context,
	sessionID string,
	transition func(entity.GameState) (entity.GameState, error),
) (entity.GameState, error) {
	unlock := that.lock(sessionID)
	defer unlock()

	state, err := that.GetSession(ctx, sessionID)
	if err != nil {
		return entity.GameState{}, err
	}

	next, err := transition(state)
	if err != nil {
		return state, err
	}

	if err = that.sessionRepo.Save(ctx, sessionID, next); err != nil {
		return state, fmt.Errorf("failed to update session: %w", err)
	}

	return next, nil
}

// sessionLock is shared by every caller working on one session. The entry is dropped
// once the last holder or waiter releases it.
type sessionLock struct {
	sync.Mutex
	refs int
}

func (that *GameManager) lock(sessionID string) func() {
	that.mu.Lock()
	entry, ok := that.locks[sessionID]
	if !ok {
		entry = &sessionLock{}
		that.locks[sessionID] = entry
	}
	entry.refs++
	that.mu.Unlock()

	entry.Lock()

	return func() {
		entry.Unlock()

		that.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(that.locks, sessionID)
		}
		that.mu.Unlock()
	}
}

func (that *GameManager) withNames(state entity.GameState) entity.GameState {
	for i, name := range that.options.PlayerNames {
		player, ok := state.Player(entity.PlayerID(i + 1))
		if !ok || name == "" {
			continue
		}

		player.Name = name
		state = state.WithPlayer(player)
	}

	return state
}

func requirePhase(state entity.GameState, phase entity.Phase) error {
	if state.Phase != phase {
		return fmt.Errorf("%w: %s", apperror.ErrWrongPhase, state.Phase)
	}

	return nil
}
