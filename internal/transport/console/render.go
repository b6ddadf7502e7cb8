package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/rocketscienceinc/blinktactoe-backend/internal/emoji"
	"github.com/rocketscienceinc/blinktactoe-backend/internal/entity"
)

const cellWidth = 2

const helpText = `Commands:
  single                  play one game
  tournament 3|5|7        play a best of N series
  categories              list the emoji categories
  category 1|2 NAME       pick a category for player 1 or 2
  custom 1|2 EMOJIS       pick your own emojis
  start                   start once both players picked
  move 0-8                place a symbol, cells are numbered row by row
  next                    next game of the tournament
  again                   replay a single game
  new                     start a new series of the same kind
  menu                    back to the mode menu
  show                    show the current state
  quit                    leave
Each player keeps at most 3 symbols on the board; the oldest one vanishes on the 4th move.
`

func renderState(state entity.GameState) string {
	var b strings.Builder

	switch state.Phase {
	case entity.PhaseModeSelection:
		b.WriteString("Choose a mode: single, or tournament 3|5|7.\n")

	case entity.PhaseCategorySelection:
		b.WriteString(renderHeader(state))
		for _, player := range state.Players {
			fmt.Fprintf(&b, "  %d %s: %s\n", player.ID, player.Name, renderCategory(player))
		}

		if state.CanStart() {
			b.WriteString("Both players are ready, type start.\n")
		} else {
			b.WriteString("Pick with category 1|2 NAME or custom 1|2 EMOJIS.\n")
		}

	case entity.PhasePlaying:
		b.WriteString(renderHeader(state))
		b.WriteString(renderBoard(state.Board))

		player := state.CurrentPlayer()
		fmt.Fprintf(&b, "%s's turn (%s)\n", player.Name, player.Category)

	case entity.PhaseGameWon:
		b.WriteString(renderHeader(state))
		b.WriteString(renderBoard(state.Board))

		if winner, ok := state.Winner(); ok {
			fmt.Fprintf(&b, "%s wins with %s!\n", winner.Name, renderLine(state.WinningLine))
		}

		if state.IsTournament() {
			fmt.Fprintf(&b, "Type next for game %d.\n", state.Tournament.CurrentGame)
		} else {
			b.WriteString("Type again for a rematch, new for a fresh game or menu.\n")
		}

	case entity.PhaseTournamentComplete:
		b.WriteString(renderHeader(state))
		b.WriteString(renderBoard(state.Board))

		if champion, ok := state.Champion(); ok {
			fmt.Fprintf(&b, "%s is the champion, %d-%d!\n", champion.Name,
				state.Tournament.WinsOf(champion.ID), state.Tournament.WinsOf(champion.ID.Opponent()))
		}

		b.WriteString("Type new for another tournament or menu.\n")
	}

	return b.String()
}

func renderHeader(state entity.GameState) string {
	first, second := state.Players[0], state.Players[1]

	if state.IsTournament() {
		return fmt.Sprintf("Best of %d, game %d | %s %d - %d %s\n",
			state.Tournament.TotalGames, state.Tournament.CurrentGame,
			first.Name, state.Tournament.WinsOf(first.ID), state.Tournament.WinsOf(second.ID), second.Name)
	}

	return fmt.Sprintf("Round %d | %s %d - %d %s\n", state.Round, first.Name, first.Score, second.Score, second.Name)
}

func renderCategory(player entity.Player) string {
	if !player.HasCategory() {
		return "not chosen"
	}

	return player.Category + " " + strings.Join(player.Symbols, " ")
}

// renderBoard draws the grid; empty cells show their number.
func renderBoard(board entity.Board) string {
	var b strings.Builder

	for row := 0; row < 3; row++ {
		if row > 0 {
			b.WriteString("----+----+----\n")
		}

		cells := make([]string, 0, 3)
		for column := 0; column < 3; column++ {
			position := row*3 + column

			cell := board[position]
			if board.IsEmpty(position) {
				cell = strconv.Itoa(position)
			}

			cells = append(cells, pad(cell))
		}

		b.WriteString(" " + strings.Join(cells, " | ") + "\n")
	}

	return b.String()
}

// pad right aligns text to the cell width as the terminal displays it.
func pad(text string) string {
	if width := uniseg.StringWidth(text); width < cellWidth {
		return strings.Repeat(" ", cellWidth-width) + text
	}

	return text
}

func renderLine(line []int) string {
	positions := make([]string, 0, len(line))
	for _, position := range line {
		positions = append(positions, strconv.Itoa(position))
	}

	return strings.Join(positions, "-")
}

func renderCategories(categories []emoji.Category) string {
	var b strings.Builder

	b.WriteString("Categories:\n")
	for _, category := range categories {
		fmt.Fprintf(&b, "  %-10s %s\n", category.Name, strings.Join(category.Symbols, " "))
	}
	b.WriteString("  or custom 1|2 followed by your own emojis\n")

	return b.String()
}

func describeError(err error) string {
	return "error: " + err.Error() + "\n"
}
