package clvm

import "fmt"

const (
	consBoxMarker = 0xff
	nilMarker     = 0x80
)

// Serialize encodes the node in the canonical program byte format.
func (a *Allocator) Serialize(n NodePtr) ([]byte, error) {
	var out []byte
	stack := []NodePtr{n}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if atom, ok := a.Atom(node); ok {
			var err error
			if out, err = appendAtom(out, atom); err != nil {
				return nil, err
			}
			continue
		}

		first, rest, _ := a.Pair(node)
		out = append(out, consBoxMarker)
		stack = append(stack, rest, first)
	}
	return out, nil
}

func appendAtom(out, atom []byte) ([]byte, error) {
	size := uint64(len(atom))
	switch {
	case size == 0:
		return append(out, nilMarker), nil
	case size == 1 && atom[0] <= 0x7f:
		return append(out, atom[0]), nil
	case size < 0x40:
		out = append(out, 0x80|byte(size))
	case size < 0x2000:
		out = append(out, 0xc0|byte(size>>8), byte(size))
	case size < 0x100000:
		out = append(out, 0xe0|byte(size>>16), byte(size>>8), byte(size))
	case size < 0x8000000:
		out = append(out, 0xf0|byte(size>>24), byte(size>>16), byte(size>>8), byte(size))
	case size < 0x400000000:
		out = append(out, 0xf8|byte(size>>32), byte(size>>24), byte(size>>16), byte(size>>8), byte(size))
	default:
		return nil, fmt.Errorf("%w: atom of %d bytes cannot be serialized", ErrAllocation, size)
	}
	return append(out, atom...), nil
}

// Deserialize parses a serialized program into the arena. Trailing bytes are rejected.
func (a *Allocator) Deserialize(data []byte) (NodePtr, error) {
	const (
		opParse = iota
		opCons
	)

	ops := []int{opParse}
	var values []NodePtr
	pos := 0

	for len(ops) > 0 {
		op := ops[len(ops)-1]
		ops = ops[:len(ops)-1]

		if op == opCons {
			rest := values[len(values)-1]
			first := values[len(values)-2]
			pair, err := a.NewPair(first, rest)
			if err != nil {
				return 0, err
			}
			values = append(values[:len(values)-2], pair)
			continue
		}

		if pos >= len(data) {
			return 0, fmt.Errorf("%w: unexpected end of input", ErrDecode)
		}
		b := data[pos]
		if b == consBoxMarker {
			pos++
			ops = append(ops, opCons, opParse, opParse)
			continue
		}

		atom, next, err := readAtom(data, pos)
		if err != nil {
			return 0, err
		}
		pos = next
		node, err := a.NewAtom(atom)
		if err != nil {
			return 0, err
		}
		values = append(values, node)
	}

	if pos != len(data) {
		return 0, fmt.Errorf("%w: %d trailing bytes", ErrDecode, len(data)-pos)
	}
	return values[0], nil
}

func readAtom(data []byte, pos int) ([]byte, int, error) {
	b := data[pos]
	if b == nilMarker {
		return nil, pos + 1, nil
	}
	if b <= 0x7f {
		return data[pos : pos+1], pos + 1, nil
	}

	prefixLen := 0
	for mask := byte(0x80); b&mask != 0; mask >>= 1 {
		prefixLen++
	}
	if prefixLen > 5 {
		return nil, 0, fmt.Errorf("%w: invalid atom length prefix %#x", ErrDecode, b)
	}
	if pos+prefixLen > len(data) {
		return nil, 0, fmt.Errorf("%w: truncated atom length prefix", ErrDecode)
	}

	size := uint64(b & (0xff >> (prefixLen + 1)))
	for _, c := range data[pos+1 : pos+prefixLen] {
		size = size<<8 | uint64(c)
	}
	start := pos + prefixLen
	if size > uint64(len(data)-start) {
		return nil, 0, fmt.Errorf("%w: atom of %d bytes exceeds input", ErrDecode, size)
	}
	end := start + int(size)
	return data[start:end], end, nil
}
