package clvm

import (
	"encoding/binary"
	"fmt"
)

// EncodeUint returns the canonical integer atom for u: minimal big-endian bytes,
// with a single 0x00 prefix only when the top bit would otherwise read as a sign.
// Zero encodes as the empty atom.
func EncodeUint(u uint64) []byte {
	if u == 0 {
		return nil
	}
	var buf [9]byte
	binary.BigEndian.PutUint64(buf[1:], u)
	i := 1
	for i < 8 && buf[i] == 0 {
		i++
	}
	if buf[i]&0x80 != 0 {
		i--
	}
	return append([]byte(nil), buf[i:]...)
}

// DecodeUint parses a canonical unsigned integer atom.
func DecodeUint(b []byte) (uint64, error) {
	if len(b) == 0 {
		return 0, nil
	}
	if b[0]&0x80 != 0 {
		return 0, fmt.Errorf("%w: negative integer atom", ErrDecode)
	}
	if b[0] == 0 && (len(b) == 1 || b[1]&0x80 == 0) {
		return 0, fmt.Errorf("%w: non-canonical integer atom %x", ErrDecode, b)
	}
	if len(b) > 9 || (len(b) == 9 && b[0] != 0) {
		return 0, fmt.Errorf("%w: integer atom overflows uint64", ErrDecode)
	}
	var u uint64
	for _, c := range b {
		u = u<<8 | uint64(c)
	}
	return u, nil
}
