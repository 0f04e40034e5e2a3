// Package driver models puzzles as typed, composable layers: each layer can build its
// puzzle and solution, compute its puzzle hash without allocating, and be recognized
// again from an on-chain puzzle reveal.
package driver

import (
	"fmt"

	"github.com/goodnatureofminers/smartcoin-wallet/internal/clvm"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/model"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/puzzles"
)

// SpendContext owns the arena for one build, caches deserialized mods and collects
// coin spends. It is not safe for concurrent use; independent builds use independent
// contexts.
type SpendContext struct {
	alloc      *clvm.Allocator
	lib        *puzzles.Library
	mods       map[puzzles.Name]clvm.NodePtr
	coinSpends []model.CoinSpend
}

func NewSpendContext(lib *puzzles.Library) *SpendContext {
	return &SpendContext{
		alloc: clvm.NewAllocator(),
		lib:   lib,
		mods:  make(map[puzzles.Name]clvm.NodePtr),
	}
}

func (c *SpendContext) Allocator() *clvm.Allocator { return c.alloc }

func (c *SpendContext) Library() *puzzles.Library { return c.lib }

// Mod returns the named mod, deserializing it on first use.
func (c *SpendContext) Mod(name puzzles.Name) (clvm.NodePtr, error) {
	if n, ok := c.mods[name]; ok {
		return n, nil
	}
	program := c.lib.Program(name)
	if program == nil {
		return 0, fmt.Errorf("%w: mod %s not in library", ErrUnknownPuzzle, name)
	}
	n, err := c.alloc.Deserialize(program)
	if err != nil {
		return 0, fmt.Errorf("load mod %s: %w", name, err)
	}
	c.mods[name] = n
	return n, nil
}

// curry loads the named mod, checks that the layer refers to it by modHash and
// applies args.
func (c *SpendContext) curry(name puzzles.Name, modHash model.Bytes32, args ...clvm.NodePtr) (clvm.NodePtr, error) {
	mod, err := c.checkedMod(name, modHash)
	if err != nil {
		return 0, err
	}
	return clvm.Curry(c.alloc, mod, args...)
}

func (c *SpendContext) checkedMod(name puzzles.Name, modHash model.Bytes32) (clvm.NodePtr, error) {
	if want := c.lib.Hash(name); modHash != want {
		return 0, fmt.Errorf("%w: %s mod hash %s, library has %s", ErrStructuralMismatch, name, modHash, want)
	}
	return c.Mod(name)
}

func (c *SpendContext) Alloc(v clvm.Value) (clvm.NodePtr, error) {
	return c.alloc.Alloc(v)
}

func (c *SpendContext) Serialize(n clvm.NodePtr) (model.Program, error) {
	return c.alloc.Serialize(n)
}

func (c *SpendContext) Deserialize(p model.Program) (clvm.NodePtr, error) {
	return c.alloc.Deserialize(p)
}

func (c *SpendContext) TreeHash(n clvm.NodePtr) model.Bytes32 {
	return c.alloc.TreeHash(n)
}

// Insert appends finished coin spends to the build.
func (c *SpendContext) Insert(spends ...model.CoinSpend) {
	c.coinSpends = append(c.coinSpends, spends...)
}

// Take returns the collected coin spends and resets the collection.
func (c *SpendContext) Take() []model.CoinSpend {
	spends := c.coinSpends
	c.coinSpends = nil
	return spends
}
