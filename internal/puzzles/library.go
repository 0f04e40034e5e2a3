package puzzles

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goodnatureofminers/smartcoin-wallet/internal/clvm"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/model"
)

var (
	// ErrMissingMod is returned when a library is built without one of AllNames.
	ErrMissingMod = errors.New("puzzles: missing mod")
	// ErrModHashMismatch is returned when a mod does not hash to its canonical value.
	ErrModHashMismatch = errors.New("puzzles: mod hash mismatch")
)

// Library maps mod names to serialized programs and their tree hashes.
// It is immutable after construction and safe for concurrent use.
type Library struct {
	programs map[Name]model.Program
	hashes   map[Name]model.Bytes32
	byHash   map[model.Bytes32]Name
}

// NewLibrary validates and indexes the given mods. Every name in AllNames is required
// and distinct names must hash to distinct values.
func NewLibrary(mods map[Name]model.Program) (*Library, error) {
	lib := &Library{
		programs: make(map[Name]model.Program, len(mods)),
		hashes:   make(map[Name]model.Bytes32, len(mods)),
		byHash:   make(map[model.Bytes32]Name, len(mods)),
	}

	for _, name := range AllNames {
		program, ok := mods[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingMod, name)
		}

		a := clvm.NewAllocator()
		node, err := a.Deserialize(program)
		if err != nil {
			return nil, fmt.Errorf("mod %s: %w", name, err)
		}
		hash := a.TreeHash(node)
		if other, dup := lib.byHash[hash]; dup {
			return nil, fmt.Errorf("mods %s and %s share hash %s", other, name, hash)
		}

		lib.programs[name] = append(model.Program(nil), program...)
		lib.hashes[name] = hash
		lib.byHash[hash] = name
	}

	return lib, nil
}

// LoadLibrary reads <name>.hex for every mod from dir.
func LoadLibrary(dir string) (*Library, error) {
	mods := make(map[Name]model.Program, len(AllNames))
	for _, name := range AllNames {
		path := filepath.Join(dir, string(name)+".hex")
		raw, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("%w: %s", ErrMissingMod, path)
			}
			return nil, fmt.Errorf("read mod %s: %w", path, err)
		}

		program, err := model.ProgramFromHex(strings.TrimSpace(string(raw)))
		if err != nil {
			return nil, fmt.Errorf("decode mod %s: %w", path, err)
		}
		mods[name] = program
	}
	return NewLibrary(mods)
}

// LoadCanonicalLibrary loads a library from dir and checks every mod against
// CanonicalHashes.
func LoadCanonicalLibrary(dir string) (*Library, error) {
	lib, err := LoadLibrary(dir)
	if err != nil {
		return nil, err
	}
	if err := lib.VerifyCanonical(); err != nil {
		return nil, err
	}
	return lib, nil
}

// VerifyCanonical reports the first mod whose hash differs from CanonicalHashes.
func (l *Library) VerifyCanonical() error {
	for _, name := range AllNames {
		if got, want := l.hashes[name], CanonicalHashes[name]; got != want {
			return fmt.Errorf("%w: %s hashes to %s, want %s", ErrModHashMismatch, name, got, want)
		}
	}
	return nil
}

// Hash returns the tree hash of the named mod.
func (l *Library) Hash(name Name) model.Bytes32 {
	return l.hashes[name]
}

// Program returns the serialized named mod. The slice must not be modified.
func (l *Library) Program(name Name) model.Program {
	return l.programs[name]
}

// NameOf resolves a mod hash to its name.
func (l *Library) NameOf(hash model.Bytes32) (Name, bool) {
	name, ok := l.byHash[hash]
	return name, ok
}

// SingletonStruct returns the singleton struct for a launcher id using this library's
// singleton and launcher mods.
func (l *Library) SingletonStruct(launcherID model.Bytes32) SingletonStruct {
	return SingletonStruct{
		ModHash:            l.Hash(SingletonTopLayer),
		LauncherID:         launcherID,
		LauncherPuzzleHash: l.Hash(SingletonLauncher),
	}
}
