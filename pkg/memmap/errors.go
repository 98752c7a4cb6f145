package memmap

import (
	"errors"
	"fmt"
)

var ErrInvalidRegion = errors.New("invalid region")

// SectionNameError is returned when a section name is not valid UTF-8.
// Unlike symbols, sections cannot be skipped: the report would be wrong.
type SectionNameError struct {
	Address uint64
	Name    []byte
}

func (e *SectionNameError) Error() string {
	return fmt.Sprintf("section at 0x%x: name %q is not valid UTF-8", e.Address, e.Name)
}

// AlignmentError is returned for a section whose alignment is not a power of
// two.
type AlignmentError struct {
	Address uint64
	Align   uint64
	Name    []byte
}

func (e *AlignmentError) Error() string {
	return fmt.Sprintf("section %q at 0x%x: alignment 0x%x is not a power of two", e.Name, e.Address, e.Align)
}
