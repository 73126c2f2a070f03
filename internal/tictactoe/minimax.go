package tictactoe

import "github.com/rocketscienceinc/tictactoe-console/internal/entity"

// Scores are always taken from the bot's perspective, regardless of whose
// turn a recursion level represents.
const (
	scoreWin  = 1
	scoreDraw = 0
	scoreLoss = -1
)

// BestMove - exhaustively searches the position and returns its game-theoretic
// value for botMark together with a cell achieving it. Terminal positions
// have no move and return cell -1. The board is mutated during the search but
// is restored before returning. Ties between equally good cells go to the
// lowest index.
func BestMove(board *[9]string, botMark, opponentMark string) (int, int) {
	return minimax(board, true, botMark, opponentMark)
}

func minimax(board *[9]string, maximizing bool, botMark, opponentMark string) (int, int) {
	switch DetermineResult(*board) {
	case botMark:
		return scoreWin, -1
	case opponentMark:
		return scoreLoss, -1
	case entity.PlayerTie:
		return scoreDraw, -1
	}

	if maximizing {
		bestScore, bestCell := scoreLoss-1, -1
		for cell := range board {
			if board[cell] != entity.EmptyCell {
				continue
			}

			board[cell] = botMark
			score, _ := minimax(board, false, botMark, opponentMark)
			board[cell] = entity.EmptyCell

			if score > bestScore {
				bestScore, bestCell = score, cell
				// nothing beats a forced win, stop scanning
				if bestScore == scoreWin {
					break
				}
			}
		}

		return bestScore, bestCell
	}

	bestScore, bestCell := scoreWin+1, -1
	for cell := range board {
		if board[cell] != entity.EmptyCell {
			continue
		}

		board[cell] = opponentMark
		score, _ := minimax(board, true, botMark, opponentMark)
		board[cell] = entity.EmptyCell

		if score < bestScore {
			bestScore, bestCell = score, cell
			if bestScore == scoreLoss {
				break
			}
		}
	}

	return bestScore, bestCell
}
