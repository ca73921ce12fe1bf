package game

import (
	"strconv"
	"strings"

	"github.com/muesli/termenv"
)

// ANSI colors of the two rows and the stores
const (
	firstColor  = "1"
	secondColor = "2"
	storeColor  = "4"
)

// String returns the slot counts in absolute order.
func (b Board) String() string {
	var sb strings.Builder
	for _, seeds := range b.pits {
		sb.WriteString(strconv.Itoa(int(seeds)))
		sb.WriteByte(' ')
	}
	return sb.String()
}

// Render returns the slot counts in absolute order, colored by the side that
// owns each slot, with the stores in bold.
func (b Board) Render(out *termenv.Output) string {
	var sb strings.Builder
	for idx, seeds := range b.pits {
		style := out.String(strconv.Itoa(int(seeds)) + " ")
		switch {
		case IsStore(idx):
			style = style.Foreground(out.Color(storeColor)).Bold()
		case idx < NumSlots/2:
			style = style.Foreground(out.Color(firstColor))
		default:
			style = style.Foreground(out.Color(secondColor))
		}
		sb.WriteString(style.String())
	}
	return sb.String()
}

// Label colors the name of a side the way its row is rendered.
func Label(out *termenv.Output, side Side) string {
	color := secondColor
	if side == First {
		color = firstColor
	}
	return out.String(side.String()).Foreground(out.Color(color)).String()
}
