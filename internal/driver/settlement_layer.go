package driver

import (
	"github.com/goodnatureofminers/smartcoin-wallet/internal/clvm"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/model"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/puzzles"
)

// SettlementLayer locks coins in an offer. Anyone may spend them, but only to the
// notarized payments in the solution, each of which is announced.
type SettlementLayer struct {
	ModHash model.Bytes32
}

type SettlementSolution struct {
	NotarizedPayments []puzzles.NotarizedPayment
}

func (SettlementLayer) layer()       {}
func (SettlementSolution) solution() {}

func NewSettlementLayer(lib *puzzles.Library) SettlementLayer {
	return SettlementLayer{ModHash: lib.Hash(puzzles.SettlementPayments)}
}

func (l SettlementLayer) TreeHash() model.Bytes32 { return l.ModHash }

func (l SettlementLayer) ConstructPuzzle(ctx *SpendContext) (clvm.NodePtr, error) {
	return ctx.checkedMod(puzzles.SettlementPayments, l.ModHash)
}

func (l SettlementLayer) ConstructSolution(ctx *SpendContext, solution Solution) (clvm.NodePtr, error) {
	s, ok := solution.(SettlementSolution)
	if !ok {
		return 0, solutionTypeError(l, solution)
	}
	payments := make([]clvm.Value, 0, len(s.NotarizedPayments))
	for _, np := range s.NotarizedPayments {
		payments = append(payments, np.Value())
	}
	return ctx.Alloc(clvm.List(payments...))
}

func (l SettlementLayer) ParseSolution(ctx *SpendContext, n clvm.NodePtr) (Solution, error) {
	payments, err := puzzles.ParseNotarizedPayments(ctx.Allocator(), n)
	if err != nil {
		return nil, err
	}
	return SettlementSolution{NotarizedPayments: payments}, nil
}

func ParseSettlement(ctx *SpendContext, p Puzzle) (Layer, bool, error) {
	modHash := ctx.Library().Hash(puzzles.SettlementPayments)
	if p.IsCurried() || p.Hash != modHash {
		return nil, false, nil
	}
	return SettlementLayer{ModHash: modHash}, true, nil
}
