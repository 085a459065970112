package game

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
)

// Render draws the board one row per line: R/B frogs, * pads, . empty.
// With ansi set, frogs and pads are coloured for terminals.
func Render(b Board, ansi bool) string {
	var sb strings.Builder
	n := b.Size()
	fmt.Fprintf(&sb, "turn %d, %s to move\n", b.TurnCount(), b.Turn())
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			cell := b.Cell(Coord{r, c})
			symbol := cell.String()
			if ansi {
				symbol = colorize(cell, symbol)
			}
			sb.WriteString(symbol)
			if c < n-1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func colorize(cell Cell, symbol string) string {
	style := termenv.String(symbol)
	switch cell {
	case RedFrog:
		style = style.Foreground(termenv.ANSIBrightRed).Bold()
	case BlueFrog:
		style = style.Foreground(termenv.ANSIBrightBlue).Bold()
	case LilyPad:
		style = style.Foreground(termenv.ANSIGreen)
	default:
		style = style.Faint()
	}
	return style.String()
}
