package memmap

import (
	"cmp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/ianlancetaylor/demangle"
	"github.com/samber/lo"

	memmapdemangle "github.com/grafana/memmap/pkg/memmap/demangle"
)

// NamedSymbol is a symbol whose name decoded as text.
type NamedSymbol struct {
	Address uint64
	Name    string
	Symbol  Symbol
}

type SymbolsOptions struct {
	DemangleOptions []demangle.Option
}

// OrderSymbols resolves symbol names and sorts the symbols by ascending
// address. Symbols sharing an address are ordered by descending raw name, so
// that e.g. end markers print before the start marker of the next object.
// Symbols whose name is not valid UTF-8 are dropped.
func OrderSymbols(symbols []Symbol, opt *SymbolsOptions) []NamedSymbol {
	named := lo.FilterMap(symbols, func(s Symbol, _ int) (NamedSymbol, bool) {
		if !utf8.Valid(s.Name) {
			return NamedSymbol{}, false
		}
		return NamedSymbol{Address: s.Address, Name: string(s.Name), Symbol: s}, true
	})
	slices.SortStableFunc(named, func(a, b NamedSymbol) int {
		if c := cmp.Compare(a.Address, b.Address); c != 0 {
			return c
		}
		return strings.Compare(b.Name, a.Name)
	})
	if opt != nil && len(opt.DemangleOptions) > 0 {
		for i := range named {
			named[i].Name = memmapdemangle.Name(named[i].Name, opt.DemangleOptions)
		}
	}
	return named
}
