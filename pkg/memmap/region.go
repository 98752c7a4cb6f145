package memmap

import (
	"fmt"

	"github.com/samber/lo"
)

// Region is the half-open address interval [Start, End).
type Region struct {
	Start uint64
	End   uint64
}

func (r Region) Contains(addr uint64) bool {
	return addr >= r.Start && addr < r.End
}

// Capacity is the number of bytes the region spans.
func (r Region) Capacity() ByteCount {
	if r.End <= r.Start {
		return 0
	}
	return ByteCount(r.End - r.Start)
}

func (r Region) Validate() error {
	if r.End <= r.Start {
		return fmt.Errorf("%w: [0x%x, 0x%x)", ErrInvalidRegion, r.Start, r.End)
	}
	return nil
}

func (r Region) String() string {
	return fmt.Sprintf("[0x%x, 0x%x)", r.Start, r.End)
}

// Select returns the items whose address lies within r, in input order.
// The input slice is left untouched.
func Select[T Addressed](r Region, items []T) []T {
	return lo.Filter(items, func(item T, _ int) bool {
		return r.Contains(item.Addr())
	})
}

func SelectSections(r Region, sections []Section) []Section {
	return Select(r, sections)
}

func SelectSymbols(r Region, symbols []Symbol) []Symbol {
	return Select(r, symbols)
}

type NamedRegion struct {
	Name string
	Region
}

// Layout is an ordered memory map. Reports are produced in layout order.
type Layout []NamedRegion

func (l Layout) Lookup(name string) (Region, bool) {
	r, ok := lo.Find(l, func(r NamedRegion) bool {
		return r.Name == name
	})
	return r.Region, ok
}

func (l Layout) Validate() error {
	seen := make(map[string]struct{}, len(l))
	for _, r := range l {
		if r.Name == "" {
			return fmt.Errorf("%w: region %s has no name", ErrInvalidRegion, r.Region)
		}
		if _, ok := seen[r.Name]; ok {
			return fmt.Errorf("%w: duplicate region name %q", ErrInvalidRegion, r.Name)
		}
		seen[r.Name] = struct{}{}
		if err := r.Region.Validate(); err != nil {
			return fmt.Errorf("region %s: %w", r.Name, err)
		}
	}
	return nil
}
