package zephyr

import (
	"slices"
	"strings"

	"github.com/specialistvlad/targetconf/internal/config"
	"github.com/specialistvlad/targetconf/internal/kconfig"
	"github.com/specialistvlad/targetconf/internal/target"
)

// DefaultBoard is built for when neither the target nor the federate names
// a board.
const DefaultBoard = "nrf52840dk_nrf52840"

// boardSnippet is extra configuration some boards need before the runtime
// compiles at all.
type boardSnippet struct {
	boards []string
	apply  func(b *kconfig.Builder)
}

var boardSnippets = []boardSnippet{
	{
		boards: []string{"rpi_pico", "rpi_pico2", "rpi_pico_w", "rpi_pico2_w", "raspberrypi_pico", "w5500_evb_pico"},
		apply: func(b *kconfig.Builder) {
			b.Comment("Pico specific configuration").
				Blank().
				Append("SERIAL", "y").
				Append("UART_CONSOLE", "y").
				Append("STDOUT_CONSOLE", "y").
				Append("ENTROPY_GENERATOR", "y").
				Append("TEST_RANDOM_GENERATOR", "y")
		},
	},
}

// Board is the board a fragment is generated for.
type Board struct {
	// Name is the board the user selected, or DefaultBoard.
	Name string
	// Explicit is false when Name is DefaultBoard because nothing was set.
	Explicit bool
}

// SelectBoard picks the board for fed, which is nil for a standalone
// program. A board on the federate wins over the target's board.
func SelectBoard(cfg *target.Config, fed *config.Federate) Board {
	if fed != nil && fed.Board != "" {
		return Board{Name: fed.Board, Explicit: true}
	}
	if board := target.Get(cfg, target.PlatformProperty).Board; board.SetByUser {
		return Board{Name: board.Value, Explicit: true}
	}
	return Board{Name: DefaultBoard}
}

// HasSnippet reports whether extra configuration is known for the board.
func HasSnippet(board string) bool {
	return findSnippet(board) != nil
}

func findSnippet(board string) *boardSnippet {
	board = strings.ToLower(board)
	for i := range boardSnippets {
		if slices.Contains(boardSnippets[i].boards, board) {
			return &boardSnippets[i]
		}
	}
	return nil
}
