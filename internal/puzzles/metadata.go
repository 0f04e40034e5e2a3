package puzzles

import (
	"fmt"

	"github.com/goodnatureofminers/smartcoin-wallet/internal/clvm"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/model"
)

// NftMetadata is the key/value list understood by the default metadata updater.
// Layers carry metadata as an opaque clvm.Value; this type only helps build and read
// the common shape.
type NftMetadata struct {
	EditionNumber uint64         `json:"edition_number"`
	EditionTotal  uint64         `json:"edition_total"`
	DataURIs      []string       `json:"data_uris,omitempty"`
	DataHash      *model.Bytes32 `json:"data_hash,omitempty"`
	MetadataURIs  []string       `json:"metadata_uris,omitempty"`
	MetadataHash  *model.Bytes32 `json:"metadata_hash,omitempty"`
	LicenseURIs   []string       `json:"license_uris,omitempty"`
	LicenseHash   *model.Bytes32 `json:"license_hash,omitempty"`
}

// DefaultNftMetadata is an edition 1 of 1 with no content.
func DefaultNftMetadata() NftMetadata {
	return NftMetadata{EditionNumber: 1, EditionTotal: 1}
}

func (m NftMetadata) Value() clvm.Value {
	var items []clvm.Value
	uris := func(key string, values []string) {
		list := make([]clvm.Value, 0, len(values))
		for _, v := range values {
			list = append(list, clvm.Atom([]byte(v)))
		}
		items = append(items, clvm.Pair(clvm.Atom([]byte(key)), clvm.List(list...)))
	}
	hash := func(key string, h *model.Bytes32) {
		if h != nil {
			items = append(items, clvm.Pair(clvm.Atom([]byte(key)), clvm.Bytes32(*h)))
		}
	}

	uris("u", m.DataURIs)
	hash("h", m.DataHash)
	uris("mu", m.MetadataURIs)
	hash("mh", m.MetadataHash)
	uris("lu", m.LicenseURIs)
	hash("lh", m.LicenseHash)
	items = append(items,
		clvm.Pair(clvm.Atom([]byte("sn")), clvm.Uint(m.EditionNumber)),
		clvm.Pair(clvm.Atom([]byte("st")), clvm.Uint(m.EditionTotal)),
	)
	return clvm.List(items...)
}

// ParseNftMetadata reads the known keys and ignores the rest.
func ParseNftMetadata(v clvm.Value) (NftMetadata, error) {
	m := DefaultNftMetadata()
	items, ok := v.Items()
	if !ok {
		return m, fmt.Errorf("%w: metadata is not a list", clvm.ErrDecode)
	}

	for _, item := range items {
		key, value, ok := item.Split()
		if !ok {
			return m, fmt.Errorf("%w: metadata entry is not a pair", clvm.ErrDecode)
		}
		k, ok := key.AtomBytes()
		if !ok {
			continue
		}

		var err error
		switch string(k) {
		case "u":
			m.DataURIs, err = parseStrings(value)
		case "mu":
			m.MetadataURIs, err = parseStrings(value)
		case "lu":
			m.LicenseURIs, err = parseStrings(value)
		case "h":
			m.DataHash, err = parseHash(value)
		case "mh":
			m.MetadataHash, err = parseHash(value)
		case "lh":
			m.LicenseHash, err = parseHash(value)
		case "sn":
			m.EditionNumber, err = parseNumber(value)
		case "st":
			m.EditionTotal, err = parseNumber(value)
		}
		if err != nil {
			return m, fmt.Errorf("metadata key %q: %w", k, err)
		}
	}
	return m, nil
}

func parseStrings(v clvm.Value) ([]string, error) {
	items, ok := v.Items()
	if !ok {
		return nil, fmt.Errorf("%w: expected list", clvm.ErrDecode)
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		b, ok := item.AtomBytes()
		if !ok {
			return nil, fmt.Errorf("%w: expected atom", clvm.ErrDecode)
		}
		out = append(out, string(b))
	}
	return out, nil
}

func parseHash(v clvm.Value) (*model.Bytes32, error) {
	b, ok := v.AtomBytes()
	if !ok || len(b) != 32 {
		return nil, fmt.Errorf("%w: expected 32 byte atom", clvm.ErrDecode)
	}
	var h model.Bytes32
	copy(h[:], b)
	return &h, nil
}

func parseNumber(v clvm.Value) (uint64, error) {
	b, ok := v.AtomBytes()
	if !ok {
		return 0, fmt.Errorf("%w: expected atom", clvm.ErrDecode)
	}
	return clvm.DecodeUint(b)
}
