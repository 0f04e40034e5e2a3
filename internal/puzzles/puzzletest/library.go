// Package puzzletest provides a stand-in puzzle library for tests. Each mod is a
// distinct quoted program, so hashes, currying and parsing behave exactly as they do
// with the compiled mods.
package puzzletest

import (
	"testing"

	"github.com/goodnatureofminers/smartcoin-wallet/internal/clvm"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/model"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/puzzles"
)

// Mods returns serialized stand-in programs keyed by name.
func Mods(tb testing.TB) map[puzzles.Name]model.Program {
	tb.Helper()

	mods := make(map[puzzles.Name]model.Program, len(puzzles.AllNames))
	for _, name := range puzzles.AllNames {
		program, err := clvm.Quote(clvm.Atom([]byte(name))).Serialize()
		if err != nil {
			tb.Fatalf("serialize stand-in mod %s: %v", name, err)
		}
		mods[name] = program
	}
	return mods
}

// Library returns a library built from Mods.
func Library(tb testing.TB) *puzzles.Library {
	tb.Helper()

	lib, err := puzzles.NewLibrary(Mods(tb))
	if err != nil {
		tb.Fatalf("build stand-in library: %v", err)
	}
	return lib
}
