// Package console drives a game session from a line based text stream. Every command maps
// to one GameManager call; the rendered state is written back after each of them.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/blinktactoe-backend/internal/apperror"
	"github.com/rocketscienceinc/blinktactoe-backend/internal/emoji"
	"github.com/rocketscienceinc/blinktactoe-backend/internal/entity"
)

var (
	errQuit           = errors.New("quit")
	errUnknownCommand = errors.New("unknown command, type help")
	errUsage          = errors.New("usage")
)

type uGame interface {
	NewSession(ctx context.Context) (string, entity.GameState, error)
	GetSession(ctx context.Context, sessionID string) (entity.GameState, error)
	EndSession(ctx context.Context, sessionID string) error

	SelectSingle(ctx context.Context, sessionID string) (entity.GameState, error)
	SelectTournament(ctx context.Context, sessionID string, totalGames int) (entity.GameState, error)
	SelectCategory(ctx context.Context, sessionID string, playerID entity.PlayerID, name string) (entity.GameState, error)
	SelectCustomCategory(ctx context.Context, sessionID string, playerID entity.PlayerID, text string) (entity.GameState, error)
	StartGame(ctx context.Context, sessionID string) (entity.GameState, error)

	MakeMove(ctx context.Context, sessionID string, position int) (entity.GameState, error)
	NextGame(ctx context.Context, sessionID string) (entity.GameState, error)
	PlayAgain(ctx context.Context, sessionID string) (entity.GameState, error)
	NewSeries(ctx context.Context, sessionID string) (entity.GameState, error)
	BackToMenu(ctx context.Context, sessionID string) (entity.GameState, error)
}

type categoryList interface {
	Categories() []emoji.Category
}

type handler func(ctx context.Context, sessionID string, args []string) (string, error)

type Server struct {
	logger     *slog.Logger
	uGame      uGame
	categories categoryList

	handlers map[string]handler
}

func New(logger *slog.Logger, uGame uGame, categories categoryList) *Server {
	server := &Server{
		logger:     logger,
		uGame:      uGame,
		categories: categories,

		handlers: make(map[string]handler),
	}

	server.handlers["single"] = server.stateHandler(server.handleSingle)
	server.handlers["tournament"] = server.stateHandler(server.handleTournament)
	server.handlers["category"] = server.stateHandler(server.handleCategory)
	server.handlers["custom"] = server.stateHandler(server.handleCustom)
	server.handlers["start"] = server.stateHandler(server.handleStart)
	server.handlers["move"] = server.stateHandler(server.handleMove)
	server.handlers["next"] = server.stateHandler(server.handleNext)
	server.handlers["again"] = server.stateHandler(server.handleAgain)
	server.handlers["new"] = server.stateHandler(server.handleNew)
	server.handlers["menu"] = server.stateHandler(server.handleMenu)
	server.handlers["show"] = server.stateHandler(server.handleShow)
	server.handlers["categories"] = server.handleCategories
	server.handlers["help"] = server.handleHelp
	server.handlers["quit"] = server.handleQuit

	return server
}

// Serve runs one session until input ends, quit is typed or ctx is canceled.
func (that *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	log := that.logger.With("method", "Serve")

	sessionID, state, err := that.uGame.NewSession(ctx)
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}

	defer func() {
		// the session may outlive a canceled ctx, so clean up with a fresh one
		if err := that.uGame.EndSession(context.WithoutCancel(ctx), sessionID); err != nil {
			log.Error("failed to end session", "session", sessionID, "error", err)
		}
	}()

	if err = write(out, renderState(state)); err != nil {
		return err
	}

	done := make(chan struct{})
	defer close(done)

	lines := readLines(done, in)

	for {
		select {
		case <-ctx.Done():
			log.Info("context canceled, closing session", "session", sessionID)
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil
			}

			response, err := that.dispatch(ctx, sessionID, line)
			if errors.Is(err, errQuit) {
				return write(out, "Bye!\n")
			}

			if err != nil {
				response = describeError(err)
				if !isUserError(err) {
					log.Error("command failed", "session", sessionID, "command", line, "error", err)
				}
			}

			if err = write(out, response); err != nil {
				return err
			}
		}
	}
}

func (that *Server) dispatch(ctx context.Context, sessionID, line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}

	command := strings.ToLower(fields[0])

	handle, ok := that.handlers[command]
	if !ok {
		return "", fmt.Errorf("%w: %s", errUnknownCommand, command)
	}

	that.logger.Debug("handling command", "session", sessionID, "command", command)

	return handle(ctx, sessionID, fields[1:])
}

// stateHandler renders the state returned by a game call.
func (that *Server) stateHandler(call func(ctx context.Context, sessionID string, args []string) (entity.GameState, error)) handler {
	return func(ctx context.Context, sessionID string, args []string) (string, error) {
		state, err := call(ctx, sessionID, args)
		if err != nil {
			return "", err
		}

		return renderState(state), nil
	}
}

func (that *Server) handleSingle(ctx context.Context, sessionID string, _ []string) (entity.GameState, error) {
	return that.uGame.SelectSingle(ctx, sessionID)
}

func (that *Server) handleTournament(ctx context.Context, sessionID string, args []string) (entity.GameState, error) {
	totalGames := 3
	if len(args) > 0 {
		number, err := strconv.Atoi(args[0])
		if err != nil {
			return entity.GameState{}, fmt.Errorf("%w: tournament 3|5|7", errUsage)
		}

		totalGames = number
	}

	return that.uGame.SelectTournament(ctx, sessionID, totalGames)
}

func (that *Server) handleCategory(ctx context.Context, sessionID string, args []string) (entity.GameState, error) {
	if len(args) < 2 {
		return entity.GameState{}, fmt.Errorf("%w: category 1|2 NAME", errUsage)
	}

	playerID, err := parsePlayer(args[0])
	if err != nil {
		return entity.GameState{}, err
	}

	return that.uGame.SelectCategory(ctx, sessionID, playerID, args[1])
}

func (that *Server) handleCustom(ctx context.Context, sessionID string, args []string) (entity.GameState, error) {
	if len(args) < 2 {
		return entity.GameState{}, fmt.Errorf("%w: custom 1|2 EMOJIS", errUsage)
	}

	playerID, err := parsePlayer(args[0])
	if err != nil {
		return entity.GameState{}, err
	}

	return that.uGame.SelectCustomCategory(ctx, sessionID, playerID, strings.Join(args[1:], " "))
}

func (that *Server) handleStart(ctx context.Context, sessionID string, _ []string) (entity.GameState, error) {
	return that.uGame.StartGame(ctx, sessionID)
}

func (that *Server) handleMove(ctx context.Context, sessionID string, args []string) (entity.GameState, error) {
	if len(args) != 1 {
		return entity.GameState{}, fmt.Errorf("%w: move 0-8", errUsage)
	}

	position, err := strconv.Atoi(args[0])
	if err != nil {
		return entity.GameState{}, fmt.Errorf("%w: move 0-8", errUsage)
	}

	return that.uGame.MakeMove(ctx, sessionID, position)
}

func (that *Server) handleNext(ctx context.Context, sessionID string, _ []string) (entity.GameState, error) {
	return that.uGame.NextGame(ctx, sessionID)
}

func (that *Server) handleAgain(ctx context.Context, sessionID string, _ []string) (entity.GameState, error) {
	return that.uGame.PlayAgain(ctx, sessionID)
}

func (that *Server) handleNew(ctx context.Context, sessionID string, _ []string) (entity.GameState, error) {
	return that.uGame.NewSeries(ctx, sessionID)
}

func (that *Server) handleMenu(ctx context.Context, sessionID string, _ []string) (entity.GameState, error) {
	return that.uGame.BackToMenu(ctx, sessionID)
}

func (that *Server) handleShow(ctx context.Context, sessionID string, _ []string) (entity.GameState, error) {
	return that.uGame.GetSession(ctx, sessionID)
}

func (that *Server) handleCategories(_ context.Context, _ string, _ []string) (string, error) {
	return renderCategories(that.categories.Categories()), nil
}

func (that *Server) handleHelp(_ context.Context, _ string, _ []string) (string, error) {
	return helpText, nil
}

func (that *Server) handleQuit(_ context.Context, _ string, _ []string) (string, error) {
	return "", errQuit
}

func parsePlayer(arg string) (entity.PlayerID, error) {
	number, err := strconv.Atoi(arg)
	if err != nil || !entity.PlayerID(number).IsValid() {
		return entity.NoPlayer, fmt.Errorf("%w: player must be 1 or 2", errUsage)
	}

	return entity.PlayerID(number), nil
}

// readLines feeds input lines to the returned channel and closes it at the end of input
// or once done is closed.
func readLines(done <-chan struct{}, in io.Reader) <-chan string {
	lines := make(chan string)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
	}()

	return lines
}

func write(out io.Writer, text string) error {
	if text == "" {
		return nil
	}

	if _, err := io.WriteString(out, text); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}

	return nil
}

func isUserError(err error) bool {
	for _, target := range []error{
		errUsage,
		errUnknownCommand,
		apperror.ErrInvalidMove,
		apperror.ErrInvalidCategorySelection,
		apperror.ErrInvalidTournamentSize,
		apperror.ErrWrongPhase,
	} {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}
