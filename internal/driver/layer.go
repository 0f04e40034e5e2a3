package driver

import (
	"errors"
	"fmt"

	"github.com/goodnatureofminers/smartcoin-wallet/internal/clvm"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/model"
)

var (
	// ErrStructuralMismatch means a puzzle was recognized but one of its fixed
	// arguments holds the wrong value.
	ErrStructuralMismatch = errors.New("driver: structural mismatch")
	// ErrUnknownPuzzle means no parser recognized the puzzle.
	ErrUnknownPuzzle = errors.New("driver: unknown puzzle")
	// ErrSolutionType means a solution of the wrong variant was passed to a layer.
	ErrSolutionType = errors.New("driver: solution type does not match layer")
)

// Layer is one level of puzzle logic. The set of layers is closed.
type Layer interface {
	// ConstructPuzzle allocates the puzzle, including all nested layers.
	ConstructPuzzle(ctx *SpendContext) (clvm.NodePtr, error)
	// ConstructSolution allocates the solution for this layer and everything below it.
	ConstructSolution(ctx *SpendContext, solution Solution) (clvm.NodePtr, error)
	// ParseSolution reads a solution node built for this layer.
	ParseSolution(ctx *SpendContext, n clvm.NodePtr) (Solution, error)
	// TreeHash returns the puzzle hash ConstructPuzzle would produce.
	TreeHash() model.Bytes32

	layer()
}

// Solution is the typed solution of one layer.
type Solution interface {
	solution()
}

// Parser recognizes a layer. A false result is a miss, not an error: the caller may
// try another parser.
type Parser func(ctx *SpendContext, p Puzzle) (Layer, bool, error)

// FirstOf tries parsers in order and returns the first match.
func FirstOf(parsers ...Parser) Parser {
	return func(ctx *SpendContext, p Puzzle) (Layer, bool, error) {
		for _, parse := range parsers {
			l, ok, err := parse(ctx, p)
			if err != nil {
				return nil, false, err
			}
			if ok {
				return l, true, nil
			}
		}
		return nil, false, nil
	}
}

// Parse runs parser against a puzzle node and turns a miss into ErrUnknownPuzzle.
func Parse(ctx *SpendContext, parser Parser, n clvm.NodePtr) (Layer, error) {
	p := InspectPuzzle(ctx.Allocator(), n)
	l, ok, err := parser(ctx, p)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: mod %s", ErrUnknownPuzzle, p.ModHash)
	}
	return l, nil
}

// ParseCoinSpend recovers the layer and solution of a coin spend. The puzzle reveal
// must hash to the coin's puzzle hash.
func ParseCoinSpend(ctx *SpendContext, parser Parser, cs model.CoinSpend) (Layer, Solution, error) {
	puzzle, err := ctx.Deserialize(cs.PuzzleReveal)
	if err != nil {
		return nil, nil, fmt.Errorf("puzzle reveal: %w", err)
	}
	if hash := ctx.TreeHash(puzzle); hash != cs.Coin.PuzzleHash {
		return nil, nil, fmt.Errorf("%w: puzzle reveal hashes to %s, coin puzzle hash is %s",
			ErrStructuralMismatch, hash, cs.Coin.PuzzleHash)
	}
	l, err := Parse(ctx, parser, puzzle)
	if err != nil {
		return nil, nil, err
	}
	solution, err := ctx.Deserialize(cs.Solution)
	if err != nil {
		return nil, nil, fmt.Errorf("solution: %w", err)
	}
	s, err := l.ParseSolution(ctx, solution)
	if err != nil {
		return nil, nil, err
	}
	return l, s, nil
}

// Spend builds a coin spend for coin locked by l. Nothing is returned on failure.
func Spend(ctx *SpendContext, coin model.Coin, l Layer, solution Solution) (model.CoinSpend, error) {
	puzzle, err := l.ConstructPuzzle(ctx)
	if err != nil {
		return model.CoinSpend{}, fmt.Errorf("construct puzzle: %w", err)
	}
	if hash := ctx.TreeHash(puzzle); hash != coin.PuzzleHash {
		return model.CoinSpend{}, fmt.Errorf("%w: puzzle hashes to %s, coin puzzle hash is %s",
			ErrStructuralMismatch, hash, coin.PuzzleHash)
	}
	sol, err := l.ConstructSolution(ctx, solution)
	if err != nil {
		return model.CoinSpend{}, fmt.Errorf("construct solution: %w", err)
	}

	reveal, err := ctx.Serialize(puzzle)
	if err != nil {
		return model.CoinSpend{}, err
	}
	serialized, err := ctx.Serialize(sol)
	if err != nil {
		return model.CoinSpend{}, err
	}
	return model.NewCoinSpend(coin, reveal, serialized), nil
}

func solutionTypeError(l Layer, s Solution) error {
	return fmt.Errorf("%w: %T cannot take %T", ErrSolutionType, l, s)
}

func structural(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrStructuralMismatch}, args...)...)
}
