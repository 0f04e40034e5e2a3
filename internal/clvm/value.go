package clvm

import (
	"bytes"

	"github.com/goodnatureofminers/smartcoin-wallet/internal/model"
)

// Value is an immutable S-expression that lives outside any Allocator. It carries
// metadata, condition lists and opaque programs between builds.
type Value struct {
	atom  []byte
	first *Value
	rest  *Value
}

// Nil is the empty atom.
var Nil = Value{}

// Atom returns an atom value holding a copy of b.
func Atom(b []byte) Value {
	if len(b) == 0 {
		return Value{}
	}
	return Value{atom: append([]byte(nil), b...)}
}

// Uint returns the canonical integer atom for u.
func Uint(u uint64) Value {
	return Value{atom: EncodeUint(u)}
}

// Bytes32 returns a 32-byte atom.
func Bytes32(h model.Bytes32) Value {
	return Atom(h[:])
}

// Pair returns (first . rest).
func Pair(first, rest Value) Value {
	return Value{first: &first, rest: &rest}
}

// List returns a nil-terminated list.
func List(items ...Value) Value {
	list := Nil
	for i := len(items) - 1; i >= 0; i-- {
		list = Pair(items[i], list)
	}
	return list
}

// Quote returns (q . v).
func Quote(v Value) Value {
	return Pair(Atom([]byte{opQuote}), v)
}

// IsPair reports whether v is a pair.
func (v Value) IsPair() bool { return v.first != nil }

// AtomBytes returns the atom bytes. The slice must not be modified.
func (v Value) AtomBytes() ([]byte, bool) {
	if v.IsPair() {
		return nil, false
	}
	return v.atom, true
}

// Split returns the children of a pair.
func (v Value) Split() (Value, Value, bool) {
	if !v.IsPair() {
		return Value{}, Value{}, false
	}
	return *v.first, *v.rest, true
}

// Items returns the items of a nil-terminated list.
func (v Value) Items() ([]Value, bool) {
	var items []Value
	for v.IsPair() {
		items = append(items, *v.first)
		v = *v.rest
	}
	if len(v.atom) != 0 {
		return nil, false
	}
	return items, true
}

// Equal reports structural equality.
func (v Value) Equal(o Value) bool {
	stack := [][2]*Value{{&v, &o}}
	for len(stack) > 0 {
		x, y := stack[len(stack)-1][0], stack[len(stack)-1][1]
		stack = stack[:len(stack)-1]

		if x.IsPair() != y.IsPair() {
			return false
		}
		if !x.IsPair() {
			if !bytes.Equal(x.atom, y.atom) {
				return false
			}
			continue
		}
		stack = append(stack, [2]*Value{x.rest, y.rest}, [2]*Value{x.first, y.first})
	}
	return true
}

// TreeHash returns the content hash of the value. Like Allocator.TreeHash, the walk
// keeps its own stack.
func (v Value) TreeHash() model.Bytes32 {
	type task struct {
		value   *Value
		combine bool
	}

	tasks := []task{{value: &v}}
	var hashes []model.Bytes32

	for len(tasks) > 0 {
		t := tasks[len(tasks)-1]
		tasks = tasks[:len(tasks)-1]

		if t.combine {
			right := hashes[len(hashes)-1]
			left := hashes[len(hashes)-2]
			hashes = append(hashes[:len(hashes)-2], TreeHashPair(left, right))
			continue
		}
		if !t.value.IsPair() {
			hashes = append(hashes, TreeHashAtom(t.value.atom))
			continue
		}
		tasks = append(tasks, task{combine: true}, task{value: t.value.rest}, task{value: t.value.first})
	}
	return hashes[0]
}

// Alloc copies a Value into the arena.
func (a *Allocator) Alloc(v Value) (NodePtr, error) {
	type task struct {
		value   *Value
		combine bool
	}

	tasks := []task{{value: &v}}
	var nodes []NodePtr

	for len(tasks) > 0 {
		t := tasks[len(tasks)-1]
		tasks = tasks[:len(tasks)-1]

		if t.combine {
			rest := nodes[len(nodes)-1]
			first := nodes[len(nodes)-2]
			pair, err := a.NewPair(first, rest)
			if err != nil {
				return 0, err
			}
			nodes = append(nodes[:len(nodes)-2], pair)
			continue
		}
		if !t.value.IsPair() {
			node, err := a.NewAtom(t.value.atom)
			if err != nil {
				return 0, err
			}
			nodes = append(nodes, node)
			continue
		}
		tasks = append(tasks, task{combine: true}, task{value: t.value.rest}, task{value: t.value.first})
	}
	return nodes[0], nil
}

// Value copies a node out of the arena.
func (a *Allocator) Value(n NodePtr) Value {
	type task struct {
		node    NodePtr
		combine bool
	}

	tasks := []task{{node: n}}
	var values []Value

	for len(tasks) > 0 {
		t := tasks[len(tasks)-1]
		tasks = tasks[:len(tasks)-1]

		if t.combine {
			rest := values[len(values)-1]
			first := values[len(values)-2]
			values = append(values[:len(values)-2], Pair(first, rest))
			continue
		}
		if atom, ok := a.Atom(t.node); ok {
			values = append(values, Atom(atom))
			continue
		}
		first, rest, _ := a.Pair(t.node)
		tasks = append(tasks, task{combine: true}, task{node: rest}, task{node: first})
	}
	return values[0]
}

// Serialize encodes a Value in the canonical program byte format.
func (v Value) Serialize() ([]byte, error) {
	a := NewAllocator()
	n, err := a.Alloc(v)
	if err != nil {
		return nil, err
	}
	return a.Serialize(n)
}
