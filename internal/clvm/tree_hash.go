package clvm

import (
	"crypto/sha256"

	"github.com/goodnatureofminers/smartcoin-wallet/internal/model"
)

const (
	atomHashPrefix = 0x01
	pairHashPrefix = 0x02
)

// TreeHashAtom returns sha256(0x01 ++ b).
func TreeHashAtom(b []byte) model.Bytes32 {
	h := sha256.New()
	h.Write([]byte{atomHashPrefix})
	h.Write(b)
	var out model.Bytes32
	copy(out[:], h.Sum(nil))
	return out
}

// TreeHashPair returns sha256(0x02 ++ left ++ right).
func TreeHashPair(left, right model.Bytes32) model.Bytes32 {
	h := sha256.New()
	h.Write([]byte{pairHashPrefix})
	h.Write(left[:])
	h.Write(right[:])
	var out model.Bytes32
	copy(out[:], h.Sum(nil))
	return out
}

var (
	nilTreeHash = TreeHashAtom(nil)
	oneTreeHash = TreeHashAtom([]byte{1})
)

// TreeHash returns the content hash of the node. The walk uses an explicit stack
// so deeply nested on-chain programs cannot exhaust the goroutine stack.
func (a *Allocator) TreeHash(n NodePtr) model.Bytes32 {
	type task struct {
		node    NodePtr
		combine bool
	}

	tasks := []task{{node: n}}
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

		switch t.node {
		case nilPtr:
			hashes = append(hashes, nilTreeHash)
			continue
		case onePtr:
			hashes = append(hashes, oneTreeHash)
			continue
		}

		if atom, ok := a.Atom(t.node); ok {
			hashes = append(hashes, TreeHashAtom(atom))
			continue
		}

		first, rest, _ := a.Pair(t.node)
		tasks = append(tasks, task{combine: true}, task{node: rest}, task{node: first})
	}

	return hashes[0]
}
