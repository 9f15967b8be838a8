/*
	Package render builds the character frame for a board.
	Pure functions only, coloring and terminal IO happen in the view.
*/
package render

import "lifeterm/src/board"

//box drawing decoration around the field
const (
	BorderVertical    = '║'
	BorderHorizontal  = '═'
	cornerTopLeft     = '╔'
	cornerTopRight    = '╗'
	cornerBottomLeft  = '╚'
	cornerBottomRight = '╝'
)

//Frame renders the board into rune rows
//the result is Height+2 rows of Width+2 runes, the extra cells hold
//the box border, every live cell is drawn with glyph, the rest blank
func Frame(b *board.Board, glyph rune) [][]rune {
	rows := make([][]rune, b.Height+2)
	for y := range rows {
		row := make([]rune, b.Width+2)
		for x := range row {
			row[x] = ' '
		}
		switch y {
		case 0:
			horizontalBorder(row, cornerTopLeft, cornerTopRight)
		case b.Height + 1:
			horizontalBorder(row, cornerBottomLeft, cornerBottomRight)
		default:
			row[0] = BorderVertical
			row[b.Width+1] = BorderVertical
		}
		rows[y] = row
	}
	for p := range b.Occupied {
		rows[p.Y+1][p.X+1] = glyph
	}
	return rows
}

//ScreenPosition maps a board coordinate to its frame cell
//offset by one for the border
func ScreenPosition(p board.Point) (col int, row int) {
	return p.X + 1, p.Y + 1
}

func horizontalBorder(row []rune, left rune, right rune) {
	for x := range row {
		row[x] = BorderHorizontal
	}
	row[0] = left
	row[len(row)-1] = right
}
