// Package clvm implements the node arena, canonical serialization and content
// hashing for the S-expression programs that lock coins.
package clvm

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/smartcoin-wallet/internal/model"
)

var (
	// ErrAllocation is returned when an allocation would exceed the arena limits.
	ErrAllocation = errors.New("clvm: allocation failed")
	// ErrDecode is returned for malformed serialized programs.
	ErrDecode = errors.New("clvm: malformed program")
)

const (
	maxPairs    = 62_500_000
	maxAtoms    = 62_500_000
	maxAtomSize = 1 << 26
)

// NodePtr references a node in an Allocator. Non-negative values index pairs,
// negative values index atoms.
type NodePtr int32

const (
	nilPtr NodePtr = -1
	onePtr NodePtr = -2
)

func atomPtr(i int) NodePtr { return NodePtr(-1 - i) }

func (n NodePtr) atomIndex() int { return int(-1 - n) }

// IsAtom reports whether the node is an atom.
func (n NodePtr) IsAtom() bool { return n < 0 }

// Allocator is an append-only node arena owned by a single build.
// It is not safe for concurrent use.
type Allocator struct {
	atoms [][]byte
	pairs [][2]NodePtr
}

// NewAllocator returns an arena with the nil and one atoms preallocated.
func NewAllocator() *Allocator {
	return &Allocator{
		atoms: [][]byte{nil, {1}},
	}
}

// Nil returns the empty atom.
func (a *Allocator) Nil() NodePtr { return nilPtr }

// One returns the atom 0x01.
func (a *Allocator) One() NodePtr { return onePtr }

// NewAtom copies b into the arena.
func (a *Allocator) NewAtom(b []byte) (NodePtr, error) {
	if len(b) == 0 {
		return nilPtr, nil
	}
	if len(b) > maxAtomSize {
		return 0, fmt.Errorf("%w: atom of %d bytes", ErrAllocation, len(b))
	}
	if len(a.atoms) >= maxAtoms {
		return 0, fmt.Errorf("%w: too many atoms", ErrAllocation)
	}
	a.atoms = append(a.atoms, append([]byte(nil), b...))
	return atomPtr(len(a.atoms) - 1), nil
}

// NewNumber allocates the canonical integer atom for u.
func (a *Allocator) NewNumber(u uint64) (NodePtr, error) {
	return a.NewAtom(EncodeUint(u))
}

// NewBytes32 allocates a 32-byte atom.
func (a *Allocator) NewBytes32(h model.Bytes32) (NodePtr, error) {
	return a.NewAtom(h[:])
}

// NewPair allocates (first . rest).
func (a *Allocator) NewPair(first, rest NodePtr) (NodePtr, error) {
	if len(a.pairs) >= maxPairs {
		return 0, fmt.Errorf("%w: too many pairs", ErrAllocation)
	}
	a.pairs = append(a.pairs, [2]NodePtr{first, rest})
	return NodePtr(len(a.pairs) - 1), nil
}

// NewList allocates a nil-terminated list of items.
func (a *Allocator) NewList(items ...NodePtr) (NodePtr, error) {
	list := a.Nil()
	for i := len(items) - 1; i >= 0; i-- {
		var err error
		if list, err = a.NewPair(items[i], list); err != nil {
			return 0, err
		}
	}
	return list, nil
}

// Atom returns the bytes of an atom node. The slice must not be modified.
func (a *Allocator) Atom(n NodePtr) ([]byte, bool) {
	if !n.IsAtom() {
		return nil, false
	}
	return a.atoms[n.atomIndex()], true
}

// Pair returns the children of a pair node.
func (a *Allocator) Pair(n NodePtr) (NodePtr, NodePtr, bool) {
	if n.IsAtom() {
		return 0, 0, false
	}
	p := a.pairs[n]
	return p[0], p[1], true
}

// AtomEquals reports whether n is an atom holding exactly b.
func (a *Allocator) AtomEquals(n NodePtr, b []byte) bool {
	atom, ok := a.Atom(n)
	return ok && bytes.Equal(atom, b)
}

// Bytes32 reads a 32-byte atom.
func (a *Allocator) Bytes32(n NodePtr) (model.Bytes32, bool) {
	var out model.Bytes32
	atom, ok := a.Atom(n)
	if !ok || len(atom) != len(out) {
		return out, false
	}
	copy(out[:], atom)
	return out, true
}

// Uint reads a canonical unsigned integer atom.
func (a *Allocator) Uint(n NodePtr) (uint64, error) {
	atom, ok := a.Atom(n)
	if !ok {
		return 0, fmt.Errorf("%w: expected integer atom, got pair", ErrDecode)
	}
	return DecodeUint(atom)
}

// ListItems returns the items of a nil-terminated list.
func (a *Allocator) ListItems(n NodePtr) ([]NodePtr, bool) {
	var items []NodePtr
	for {
		if n.IsAtom() {
			if n != nilPtr && len(a.atoms[n.atomIndex()]) != 0 {
				return nil, false
			}
			return items, true
		}
		first, rest, _ := a.Pair(n)
		items = append(items, first)
		n = rest
	}
}

// ListN returns the items of a list that must have exactly n items.
func (a *Allocator) ListN(node NodePtr, n int) ([]NodePtr, bool) {
	items, ok := a.ListItems(node)
	if !ok || len(items) != n {
		return nil, false
	}
	return items, true
}
