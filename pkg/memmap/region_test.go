package memmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegion_Contains(t *testing.T) {
	r := Region{Start: 0x1000, End: 0x2000}
	assert.True(t, r.Contains(0x1000))
	assert.True(t, r.Contains(0x1fff))
	assert.False(t, r.Contains(0x2000))
	assert.False(t, r.Contains(0xfff))
	assert.False(t, r.Contains(0))
	assert.Equal(t, ByteCount(0x1000), r.Capacity())
	assert.Equal(t, "[0x1000, 0x2000)", r.String())
}

func TestRegion_Validate(t *testing.T) {
	require.NoError(t, Region{Start: 0, End: 1}.Validate())
	require.ErrorIs(t, Region{Start: 0x10, End: 0x10}.Validate(), ErrInvalidRegion)
	require.ErrorIs(t, Region{Start: 0x20, End: 0x10}.Validate(), ErrInvalidRegion)
	require.Zero(t, Region{Start: 0x20, End: 0x10}.Capacity())
}

func TestSelectSections(t *testing.T) {
	r := Region{Start: 0x1000, End: 0x2000}
	sections := []Section{
		{Address: 0x1800, Size: 0x10, Name: []byte(".b")},
		{Address: 0, Size: 0x10, Name: []byte(".comment")},
		{Address: 0x1000, Size: 0x10, Name: []byte(".a")},
		{Address: 0x2000, Size: 0x10, Name: []byte(".next")},
		{Address: 0x1fff, Size: 0x10, Name: []byte(".c")},
	}
	before := append([]Section(nil), sections...)

	selected := SelectSections(r, sections)
	names := make([]string, 0, len(selected))
	for _, s := range selected {
		names = append(names, string(s.Name))
	}
	require.Equal(t, []string{".b", ".a", ".c"}, names)
	require.Equal(t, before, sections)
}

func TestSelectSymbols(t *testing.T) {
	r := Region{Start: 0x10, End: 0x20}
	symbols := []Symbol{
		{Address: 0x0f, Name: []byte("before")},
		{Address: 0x10, Name: []byte("first")},
		{Address: 0x20, Name: []byte("after")},
	}
	require.Equal(t, []Symbol{symbols[1]}, SelectSymbols(r, symbols))
	require.Empty(t, SelectSymbols(r, nil))
}

func TestLayout(t *testing.T) {
	l := Layout{
		{Name: "DRAM", Region: Region{Start: 0x100, End: 0x200}},
		{Name: "IRAM", Region: Region{Start: 0x400, End: 0x800}},
	}
	require.NoError(t, l.Validate())

	r, ok := l.Lookup("IRAM")
	require.True(t, ok)
	require.Equal(t, Region{Start: 0x400, End: 0x800}, r)
	_, ok = l.Lookup("ROM")
	require.False(t, ok)

	for name, invalid := range map[string]Layout{
		"duplicate": {l[0], l[0]},
		"unnamed":   {{Region: Region{Start: 0, End: 1}}},
		"empty":     {{Name: "X", Region: Region{Start: 1, End: 1}}},
	} {
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, invalid.Validate(), ErrInvalidRegion)
		})
	}
}
