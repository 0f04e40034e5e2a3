// Package model defines the ledger value types shared by the wallet packages.
package model

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Bytes32 is a 32-byte hash: coin ids, puzzle hashes, tree hashes.
type Bytes32 [32]byte

// Bytes32FromHex parses a hex string, with or without a 0x prefix.
func Bytes32FromHex(s string) (Bytes32, error) {
	var out Bytes32
	b, err := decodeHex(s)
	if err != nil {
		return out, err
	}
	if len(b) != len(out) {
		return out, fmt.Errorf("bytes32: expected 32 bytes, got %d", len(b))
	}
	copy(out[:], b)
	return out, nil
}

func (b Bytes32) String() string {
	return hex.EncodeToString(b[:])
}

// Bytes returns a copy of the hash as a slice.
func (b Bytes32) Bytes() []byte {
	return append([]byte(nil), b[:]...)
}

func (b Bytes32) MarshalJSON() ([]byte, error) {
	return json.Marshal("0x" + b.String())
}

func (b *Bytes32) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := Bytes32FromHex(s)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// PublicKey is a compressed BLS12-381 G1 element. The wallet treats it as opaque bytes.
type PublicKey [48]byte

// PublicKeyFromHex parses a hex encoded public key.
func PublicKeyFromHex(s string) (PublicKey, error) {
	var out PublicKey
	b, err := decodeHex(s)
	if err != nil {
		return out, err
	}
	if len(b) != len(out) {
		return out, fmt.Errorf("public key: expected 48 bytes, got %d", len(b))
	}
	copy(out[:], b)
	return out, nil
}

func (k PublicKey) String() string {
	return hex.EncodeToString(k[:])
}

func (k PublicKey) MarshalJSON() ([]byte, error) {
	return json.Marshal("0x" + k.String())
}

func (k *PublicKey) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := PublicKeyFromHex(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Program is a serialized program or argument tree.
type Program []byte

// ProgramFromHex parses a hex encoded program, with or without a 0x prefix.
func ProgramFromHex(s string) (Program, error) {
	b, err := decodeHex(s)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (p Program) String() string {
	return hex.EncodeToString(p)
}

func (p Program) MarshalJSON() ([]byte, error) {
	return json.Marshal("0x" + p.String())
}

func (p *Program) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	b, err := decodeHex(s)
	if err != nil {
		return err
	}
	*p = b
	return nil
}

func decodeHex(s string) ([]byte, error) {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decode hex: %w", err)
	}
	return b, nil
}
