package driver

import (
	"fmt"
	"strings"
)

// NFTParser recognizes the full NFT stack: singleton, state layer, ownership layer
// with a royalty transfer program, and a p2 puzzle accepted by p2.
func NFTParser(p2 Parser) Parser {
	return SingletonParser(StateParser(OwnershipParser(ParseRoyaltyTransfer, p2)))
}

// DefaultParser recognizes every layer the wallet builds. Inner puzzles it does not
// model are kept as raw layers; top level puzzles it does not know are a miss.
func DefaultParser() Parser {
	p2 := FirstOf(ParseStandard, ParseSettlement, ParseRaw)
	return FirstOf(
		NFTParser(p2),
		SingletonParser(p2),
		ParseIntermediateLauncher,
		ParseLauncher,
		ParseStandard,
		ParseSettlement,
	)
}

// Describe renders the layer stack, outermost first, e.g.
// singleton(nft_state(nft_ownership(royalty_transfer, standard))).
func Describe(l Layer) string {
	switch v := l.(type) {
	case SingletonLayer:
		return fmt.Sprintf("singleton(%s)", Describe(v.Inner))
	case StateLayer:
		return fmt.Sprintf("nft_state(%s)", Describe(v.Inner))
	case OwnershipLayer:
		return fmt.Sprintf("nft_ownership(%s)", strings.Join([]string{Describe(v.Transfer), Describe(v.Inner)}, ", "))
	case RoyaltyTransferLayer:
		return "royalty_transfer"
	case StandardLayer:
		return "standard"
	case SettlementLayer:
		return "settlement"
	case LauncherLayer:
		return "launcher"
	case IntermediateLauncherLayer:
		return "intermediate_launcher"
	case RawLayer:
		return "raw"
	default:
		return fmt.Sprintf("%T", l)
	}
}
