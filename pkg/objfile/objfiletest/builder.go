// Package objfiletest synthesises small ELF images for tests.
package objfiletest

import (
	"bytes"
	"debug/elf"
	"encoding/binary"
)

type Section struct {
	Name  string
	Type  elf.SectionType
	Flags elf.SectionFlag
	Addr  uint32
	Size  uint32
	Align uint32
}

type Symbol struct {
	Name  string
	Value uint32
	Size  uint32
	Type  elf.SymType
	// Section is the index of the defining section in Builder.Sections,
	// or -1 for an undefined symbol.
	Section int
}

// Builder produces a little-endian ELF32 RISC-V executable with the given
// sections, a .symtab and the string tables. PROGBITS sections get zero
// filled contents.
type Builder struct {
	Sections []Section
	Symbols  []Symbol
}

func (b *Builder) AddSection(s Section) int {
	b.Sections = append(b.Sections, s)
	return len(b.Sections) - 1
}

func (b *Builder) AddSymbol(s Symbol) {
	b.Symbols = append(b.Symbols, s)
}

const ehsize = 52

func (b *Builder) Bytes() []byte {
	var (
		le       = binary.LittleEndian
		shstrtab = []byte{0}
		strtab   = []byte{0}
		body     bytes.Buffer
		headers  = []elf.Section32{{}}
	)
	addString := func(tab *[]byte, s string) uint32 {
		off := uint32(len(*tab))
		*tab = append(*tab, s...)
		*tab = append(*tab, 0)
		return off
	}
	offset := func() uint32 {
		return uint32(ehsize + body.Len())
	}

	for _, s := range b.Sections {
		typ := s.Type
		if typ == elf.SHT_NULL {
			typ = elf.SHT_PROGBITS
		}
		headers = append(headers, elf.Section32{
			Name:      addString(&shstrtab, s.Name),
			Type:      uint32(typ),
			Flags:     uint32(s.Flags),
			Addr:      s.Addr,
			Off:       offset(),
			Size:      s.Size,
			Addralign: s.Align,
		})
		if typ != elf.SHT_NOBITS {
			body.Write(make([]byte, s.Size))
		}
	}

	var symtab bytes.Buffer
	_ = binary.Write(&symtab, le, elf.Sym32{})
	for _, s := range b.Symbols {
		shndx := uint16(elf.SHN_UNDEF)
		if s.Section >= 0 {
			shndx = uint16(s.Section + 1)
		}
		_ = binary.Write(&symtab, le, elf.Sym32{
			Name:  addString(&strtab, s.Name),
			Value: s.Value,
			Size:  s.Size,
			Info:  elf.ST_INFO(elf.STB_GLOBAL, s.Type),
			Shndx: shndx,
		})
	}
	strtabIndex := uint32(len(headers) + 1)
	headers = append(headers, elf.Section32{
		Name:      addString(&shstrtab, ".symtab"),
		Type:      uint32(elf.SHT_SYMTAB),
		Off:       offset(),
		Size:      uint32(symtab.Len()),
		Link:      strtabIndex,
		Info:      1,
		Addralign: 4,
		Entsize:   elf.Sym32Size,
	})
	body.Write(symtab.Bytes())

	headers = append(headers, elf.Section32{
		Name:      addString(&shstrtab, ".strtab"),
		Type:      uint32(elf.SHT_STRTAB),
		Off:       offset(),
		Size:      uint32(len(strtab)),
		Addralign: 1,
	})
	body.Write(strtab)

	shstrndx := len(headers)
	name := addString(&shstrtab, ".shstrtab")
	headers = append(headers, elf.Section32{
		Name:      name,
		Type:      uint32(elf.SHT_STRTAB),
		Off:       offset(),
		Size:      uint32(len(shstrtab)),
		Addralign: 1,
	})
	body.Write(shstrtab)

	var out bytes.Buffer
	hdr := elf.Header32{
		Type:      uint16(elf.ET_EXEC),
		Machine:   uint16(elf.EM_RISCV),
		Version:   uint32(elf.EV_CURRENT),
		Shoff:     offset(),
		Ehsize:    ehsize,
		Shentsize: 40,
		Shnum:     uint16(len(headers)),
		Shstrndx:  uint16(shstrndx),
	}
	copy(hdr.Ident[:], []byte{
		0x7f, 'E', 'L', 'F',
		byte(elf.ELFCLASS32),
		byte(elf.ELFDATA2LSB),
		byte(elf.EV_CURRENT),
	})
	_ = binary.Write(&out, le, hdr)
	out.Write(body.Bytes())
	for _, h := range headers {
		_ = binary.Write(&out, le, h)
	}
	return out.Bytes()
}

// ESP32C3 returns a builder for a small image using the ESP32-C3 DRAM and
// IRAM regions.
func ESP32C3() *Builder {
	b := &Builder{}
	text := b.AddSection(Section{Name: ".rwtext", Type: elf.SHT_PROGBITS, Flags: elf.SHF_ALLOC | elf.SHF_EXECINSTR, Addr: 0x40380000, Size: 0x1f0, Align: 4})
	b.AddSection(Section{Name: ".rwtext.wifi", Type: elf.SHT_PROGBITS, Flags: elf.SHF_ALLOC | elf.SHF_EXECINSTR, Addr: 0x40380200, Size: 0x40, Align: 0x100})
	data := b.AddSection(Section{Name: ".data", Type: elf.SHT_PROGBITS, Flags: elf.SHF_ALLOC | elf.SHF_WRITE, Addr: 0x3FC80000, Size: 0x106, Align: 4})
	bss := b.AddSection(Section{Name: ".bss", Type: elf.SHT_NOBITS, Flags: elf.SHF_ALLOC | elf.SHF_WRITE, Addr: 0x3FC80108, Size: 0x2000, Align: 8})
	b.AddSection(Section{Name: ".comment", Type: elf.SHT_PROGBITS, Size: 0x10, Align: 1})

	b.AddSymbol(Symbol{Name: "_sdata", Value: 0x3FC80000, Type: elf.STT_NOTYPE, Section: data})
	b.AddSymbol(Symbol{Name: "_edata", Value: 0x3FC80106, Type: elf.STT_NOTYPE, Section: data})
	b.AddSymbol(Symbol{Name: "_sbss", Value: 0x3FC80108, Type: elf.STT_NOTYPE, Section: bss})
	b.AddSymbol(Symbol{Name: "HEAP", Value: 0x3FC80108, Size: 0x1000, Type: elf.STT_OBJECT, Section: bss})
	b.AddSymbol(Symbol{Name: "_ZN4main4tick17h0123456789abcdefE", Value: 0x40380010, Size: 0x20, Type: elf.STT_FUNC, Section: text})
	b.AddSymbol(Symbol{Name: "abort", Type: elf.STT_FUNC, Section: -1})
	return b
}
