package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/daystram/bitvariant/board"
	"github.com/daystram/bitvariant/position"
)

// Evaluator scores a state, higher favoring White. Implementations must be
// pure; results are cached by placement.
type Evaluator interface {
	Evaluate(s board.State) Score
}

type EvaluatorFunc func(s board.State) Score

func (f EvaluatorFunc) Evaluate(s board.State) Score {
	return f(s)
}

var (
	MaterialEvaluator   = EvaluatorFunc(evaluateMaterial)
	PositionalEvaluator = EvaluatorFunc(evaluatePositional)
	CenterEvaluator     = EvaluatorFunc(evaluateCenter)

	evaluators = map[string]Evaluator{
		"material":   MaterialEvaluator,
		"positional": PositionalEvaluator,
		"center":     CenterEvaluator,
	}
)

// EvaluatorNames lists the names accepted by NewEvaluatorFromName.
func EvaluatorNames() []string {
	names := make([]string, 0, len(evaluators))
	for name := range evaluators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func NewEvaluatorFromName(name string) (Evaluator, error) {
	eval, ok := evaluators[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown evaluator %q, want one of %s", name, strings.Join(EvaluatorNames(), ", "))
	}
	return eval, nil
}

var (
	scorePiece = [6 + 1]Score{
		board.PiecePawn:   1,
		board.PieceBishop: 3,
		board.PieceKnight: 3,
		board.PieceRook:   5,
		board.PieceQueen:  8,
		board.PieceKing:   50,
	}

	// Tables from https://www.chessprogramming.org/Simplified_Evaluation_Function,
	// seen from White with rank 8 on the first row.
	scorePiecePosition = [6 + 1][64]Score{
		board.PiecePawn: {
			0, 0, 0, 0, 0, 0, 0, 0,
			50, 50, 50, 50, 50, 50, 50, 50,
			10, 10, 20, 30, 30, 20, 10, 10,
			5, 5, 10, 25, 25, 10, 5, 5,
			0, 0, 0, 20, 20, 0, 0, 0,
			5, -5, -10, 0, 0, -10, -5, 5,
			5, 10, 10, -20, -20, 10, 10, 5,
			0, 0, 0, 0, 0, 0, 0, 0,
		},
		board.PieceKnight: {
			-50, -40, -30, -30, -30, -30, -40, -50,
			-40, -20, 0, 0, 0, 0, -20, -40,
			-30, 0, 10, 15, 15, 10, 0, -30,
			-30, 5, 15, 20, 20, 15, 5, -30,
			-30, 0, 15, 20, 20, 15, 0, -30,
			-30, 5, 10, 15, 15, 10, 5, -30,
			-40, -20, 0, 5, 5, 0, -20, -40,
			-50, -40, -30, -30, -30, -30, -40, -50,
		},
		board.PieceBishop: {
			-20, -10, -10, -10, -10, -10, -10, -20,
			-10, 0, 0, 0, 0, 0, 0, -10,
			-10, 0, 5, 10, 10, 5, 0, -10,
			-10, 5, 5, 10, 10, 5, 5, -10,
			-10, 0, 10, 10, 10, 10, 0, -10,
			-10, 10, 10, 10, 10, 10, 10, -10,
			-10, 5, 0, 0, 0, 0, 5, -10,
			-20, -10, -10, -10, -10, -10, -10, -20,
		},
		board.PieceRook: {
			0, 0, 0, 0, 0, 0, 0, 0,
			5, 10, 10, 10, 10, 10, 10, 5,
			-5, 0, 0, 0, 0, 0, 0, -5,
			-5, 0, 0, 0, 0, 0, 0, -5,
			-5, 0, 0, 0, 0, 0, 0, -5,
			-5, 0, 0, 0, 0, 0, 0, -5,
			-5, 0, 0, 0, 0, 0, 0, -5,
			0, 0, 0, 5, 5, 0, 0, 0,
		},
		board.PieceQueen: {
			-20, -10, -10, -5, -5, -10, -10, -20,
			-10, 0, 0, 0, 0, 0, 0, -10,
			-10, 0, 5, 5, 5, 5, 0, -10,
			-5, 0, 5, 5, 5, 5, 0, -5,
			0, 0, 5, 5, 5, 5, 0, -5,
			-10, 5, 5, 5, 5, 5, 0, -10,
			-10, 0, 5, 0, 0, 0, 0, -10,
			-20, -10, -10, -5, -5, -10, -10, -20,
		},
		board.PieceKing: {
			-30, -40, -40, -50, -50, -40, -40, -30,
			-30, -40, -40, -50, -50, -40, -40, -30,
			-30, -40, -40, -50, -50, -40, -40, -30,
			-30, -40, -40, -50, -50, -40, -40, -30,
			-20, -30, -30, -40, -40, -30, -30, -20,
			-10, -20, -20, -20, -20, -20, -20, -10,
			20, 20, 0, 0, 0, 0, 20, 20,
			20, 30, 10, 0, 0, 10, 30, 20,
		},
	}

	scoreCenterFour   Score = 2
	scoreSecondCenter Score = 1
)

// sign is +1 for White slices and -1 for Black.
func sign(sl board.Slice) Score {
	if sl.Side() == board.SideWhite {
		return 1
	}
	return -1
}

func evaluateMaterial(s board.State) Score {
	var score Score
	for sl, bm := range s {
		slice := board.Slice(sl)
		score += sign(slice) * scorePiece[slice.Piece()] * Score(bm.BitCount())
	}
	return score
}

// evaluatePositional works in hundredths of a pawn.
func evaluatePositional(s board.State) Score {
	var score Score
	for sl, bm := range s {
		slice := board.Slice(sl)
		p := slice.Piece()
		for _, pos := range bm.Positions() {
			score += sign(slice) * (100*scorePiece[p] + scorePiecePosition[p][pieceSquareIndex(slice.Side(), pos)])
		}
	}
	return score
}

// evaluateCenter is material in tenths of a pawn plus a bonus for every piece
// standing on or around the center.
func evaluateCenter(s board.State) Score {
	score := 10 * evaluateMaterial(s)
	for sl, bm := range s {
		slice := board.Slice(sl)
		score += sign(slice) * (scoreCenterFour*Score((bm&board.CenterFourSquares).BitCount()) +
			scoreSecondCenter*Score((bm&board.SecondCenterSquares).BitCount()))
	}
	return score
}

func pieceSquareIndex(side board.Side, pos position.Pos) int {
	if side == board.SideBlack {
		return int(pos)
	}
	return int(position.NewPosFromXY(pos.X(), board.Height-1-pos.Y()))
}
