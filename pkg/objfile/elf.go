package objfile

import (
	"bytes"
	"debug/elf"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/grafana/memmap/pkg/memmap"
)

// File is an ELF image loaded fully into memory. It keeps the decoded
// section headers and symbol tables only; the image bytes are released once
// parsing is done.
type File struct {
	elf.FileHeader
	Path        string
	Size        int
	Compression Compression

	sections []memmap.Section
	symbols  []memmap.Symbol
}

var _ memmap.Object = (*File)(nil)

// Open reads the ELF image at path from fs. gzip, zstd and xz compressed
// images are decompressed first.
func Open(fs afero.Fs, path string) (*File, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Wrap(err, "read")
	}
	data, c, err := decompress(data)
	if err != nil {
		return nil, errors.Wrapf(err, "decompress %s", c)
	}
	f, err := NewFile(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	f.Path = path
	f.Size = len(data)
	f.Compression = c
	return f, nil
}

func NewFile(r io.ReaderAt) (*File, error) {
	elfFile, err := elf.NewFile(r)
	if err != nil {
		return nil, errors.Wrap(err, "parse")
	}
	defer elfFile.Close()

	res := &File{
		FileHeader: elfFile.FileHeader,
		sections:   make([]memmap.Section, 0, len(elfFile.Sections)),
	}
	for _, s := range elfFile.Sections {
		if s.Type == elf.SHT_NULL {
			continue
		}
		res.sections = append(res.sections, memmap.Section{
			Address: s.Addr,
			Size:    s.Size,
			Align:   s.Addralign,
			Name:    []byte(s.Name),
		})
	}

	symtab, err := elfFile.Symbols()
	if err != nil && !errors.Is(err, elf.ErrNoSymbols) {
		return nil, errors.Wrap(err, "parse .symtab")
	}
	dynsym, err := elfFile.DynamicSymbols()
	if err != nil && !errors.Is(err, elf.ErrNoSymbols) {
		return nil, errors.Wrap(err, "parse .dynsym")
	}
	res.symbols = make([]memmap.Symbol, 0, len(symtab)+len(dynsym))
	for _, table := range [][]elf.Symbol{symtab, dynsym} {
		for _, sym := range table {
			res.symbols = append(res.symbols, memmap.Symbol{
				Address: sym.Value,
				Size:    sym.Size,
				Name:    []byte(sym.Name),
				Kind:    elf.ST_TYPE(sym.Info).String(),
				Section: sectionName(elfFile, sym.Section),
			})
		}
	}
	return res, nil
}

func sectionName(f *elf.File, idx elf.SectionIndex) string {
	switch {
	case idx == elf.SHN_UNDEF:
		return ""
	case idx == elf.SHN_ABS:
		return "*ABS*"
	case idx == elf.SHN_COMMON:
		return "*COM*"
	case idx >= elf.SHN_LORESERVE || int(idx) >= len(f.Sections):
		return ""
	default:
		return f.Sections[idx].Name
	}
}

func (f *File) Sections() ([]memmap.Section, error) {
	return f.sections, nil
}

func (f *File) Symbols() ([]memmap.Symbol, error) {
	return f.symbols, nil
}

// Section returns the header of the named section, or nil.
func (f *File) Section(name string) *memmap.Section {
	for i := range f.sections {
		s := &f.sections[i]
		if string(s.Name) == name {
			return s
		}
	}
	return nil
}
