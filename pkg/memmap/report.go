package memmap

import (
	"cmp"
	"slices"
	"unicode/utf8"
)

type LineKind int

const (
	LineSection LineKind = iota
	LinePadding
)

func (k LineKind) String() string {
	switch k {
	case LineSection:
		return "section"
	case LinePadding:
		return "padding"
	default:
		return "unknown"
	}
}

// Line is one row of an allocation report.
//
// Padding lines only carry Size, the bytes lost to Align before the next
// section; Start and End are the gap bounds.
type Line struct {
	Kind    LineKind
	Name    string
	Start   uint64
	End     uint64
	Size    ByteCount
	Align   uint64
	Percent float64
}

// Report describes how the sections of one region consume its capacity.
type Report struct {
	Name   string
	Region Region
	Lines  []Line
	Total  ByteCount
}

func (r *Report) Capacity() ByteCount {
	return r.Region.Capacity()
}

// Percent is the share of the region capacity used by the total.
func (r *Report) Percent() float64 {
	return r.Total.Percent(r.Capacity())
}

// Overflow reports whether more bytes were accounted than the region holds.
// This only happens on inconsistent input.
func (r *Report) Overflow() bool {
	return r.Total > r.Capacity()
}

// Padding sums the bytes lost to alignment.
func (r *Report) Padding() ByteCount {
	var pad ByteCount
	for _, l := range r.Lines {
		if l.Kind == LinePadding {
			pad = pad.Add(l.Size)
		}
	}
	return pad
}

func (r *Report) Sections() int {
	n := 0
	for _, l := range r.Lines {
		if l.Kind == LineSection {
			n++
		}
	}
	return n
}

// Allocate builds the allocation report of region r from the sections placed
// in it (see SelectSections). Sections are visited in ascending address
// order; the input slice is not reordered.
//
// Between consecutive sections, the distance from the end of the previous one
// to the next boundary of the current section's alignment is accounted as
// padding. A section with an undecodable name or an alignment that is not a
// power of two fails the whole report.
func Allocate(name string, r Region, sections []Section) (*Report, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	sorted := slices.Clone(sections)
	slices.SortStableFunc(sorted, func(a, b Section) int {
		return cmp.Compare(a.Address, b.Address)
	})

	var (
		capacity = r.Capacity()
		total    ByteCount
		last     = r.Start
		lines    = make([]Line, 0, len(sorted))
	)
	for _, sec := range sorted {
		mask, err := alignMask(sec)
		if err != nil {
			return nil, err
		}
		pad := (mask + 1 - last&mask) & mask
		if pad > 0 {
			lines = append(lines, Line{
				Kind:    LinePadding,
				Start:   last,
				End:     last + pad,
				Size:    ByteCount(pad),
				Align:   mask + 1,
				Percent: ByteCount(pad).Percent(capacity),
			})
		}
		if !utf8.Valid(sec.Name) {
			return nil, &SectionNameError{Address: sec.Address, Name: sec.Name}
		}

		size := ByteCount(sec.Size)
		end := sec.Address + sec.Size
		lines = append(lines, Line{
			Kind:    LineSection,
			Name:    string(sec.Name),
			Start:   sec.Address,
			End:     end,
			Size:    size,
			Align:   mask + 1,
			Percent: size.Percent(capacity),
		})
		total = total.Add(size).AddUint64(pad)
		last = end
	}

	return &Report{
		Name:   name,
		Region: r,
		Lines:  lines,
		Total:  total,
	}, nil
}

// Analyze selects the sections of obj that lie in region r and builds its
// allocation report.
func Analyze(obj Object, r NamedRegion) (*Report, error) {
	sections, err := obj.Sections()
	if err != nil {
		return nil, err
	}
	return Allocate(r.Name, r.Region, SelectSections(r.Region, sections))
}

func alignMask(sec Section) (uint64, error) {
	align := sec.Align
	if align == 0 {
		return 0, nil
	}
	if align&(align-1) != 0 {
		return 0, &AlignmentError{Address: sec.Address, Align: sec.Align, Name: sec.Name}
	}
	return align - 1, nil
}
