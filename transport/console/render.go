package console

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// renderBoard - prints the board as three bracketed rows.
func (that *Server) renderBoard(board [9]string) {
	fmt.Fprintln(that.writer)
	for row := 0; row < 3; row++ {
		fmt.Fprintf(
			that.writer,
			"[ %s ] [ %s ] [ %s ]\n",
			cellSymbol(board[row*3]),
			cellSymbol(board[row*3+1]),
			cellSymbol(board[row*3+2]),
		)
	}
	fmt.Fprintln(that.writer)
}

func cellSymbol(cell string) string {
	if cell == entity.EmptyCell {
		return " "
	}
	return cell
}
