package clvm

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSerializeKnownEncodings(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  []byte
	}{
		{name: "nil", value: Nil, want: []byte{0x80}},
		{name: "small atom inline", value: Uint(1), want: []byte{0x01}},
		{name: "high byte is prefixed", value: Atom([]byte{0x80}), want: []byte{0x81, 0x80}},
		{name: "pair", value: Pair(Uint(1), Uint(2)), want: []byte{0xff, 0x01, 0x02}},
		{name: "list", value: List(Uint(1)), want: []byte{0xff, 0x01, 0x80}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.value.Serialize()
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	long := bytes.Repeat([]byte{0xab}, 70)
	huge := bytes.Repeat([]byte{0xcd}, 0x2001)
	v := List(Atom(long), Pair(Atom(huge), Uint(5)), List(List(Nil)))

	a := NewAllocator()
	n, err := a.Alloc(v)
	require.NoError(t, err)
	data, err := a.Serialize(n)
	require.NoError(t, err)

	b := NewAllocator()
	back, err := b.Deserialize(data)
	require.NoError(t, err)
	require.True(t, v.Equal(b.Value(back)))
	require.Equal(t, a.TreeHash(n), b.TreeHash(back))
}

func TestDeserializeRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: nil},
		{name: "truncated pair", data: []byte{0xff, 0x01}},
		{name: "truncated atom", data: []byte{0x83, 0x01}},
		{name: "trailing bytes", data: []byte{0x01, 0x02}},
		{name: "invalid prefix", data: []byte{0xfe}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAllocator().Deserialize(tt.data)
			if !errors.Is(err, ErrDecode) {
				t.Errorf("Deserialize() error = %v, want ErrDecode", err)
			}
		})
	}
}
