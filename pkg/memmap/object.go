package memmap

// Object is the view of a decoded object file the allocation analysis works
// on. Implementations own the returned slices; callers must not modify them.
type Object interface {
	Symbols() ([]Symbol, error)
	Sections() ([]Section, error)
}

// Addressed is anything placed at a single address.
type Addressed interface {
	Addr() uint64
}

// Symbol is an entry of the object file symbol tables. Name holds the raw
// string table bytes, which are not guaranteed to be valid text.
type Symbol struct {
	Address uint64
	Size    uint64
	Name    []byte

	// Kind and Section describe the backing table entry: the symbol type
	// (e.g. STT_FUNC) and the name of the section it is defined in.
	Kind    string
	Section string
}

func (s Symbol) Addr() uint64 { return s.Address }

// Section is a section header. Align is the required start alignment in
// bytes; 0 and 1 both mean no constraint.
type Section struct {
	Address uint64
	Size    uint64
	Align   uint64
	Name    []byte
}

func (s Section) Addr() uint64 { return s.Address }
