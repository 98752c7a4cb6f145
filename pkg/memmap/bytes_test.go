package memmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByteCount_String(t *testing.T) {
	for _, tc := range []struct {
		value    ByteCount
		expected string
	}{
		{0, "0.000B  "},
		{1, "1.000B  "},
		{1023, "1023.000B  "},
		{1024, "1.000KiB"},
		{1536, "1.500KiB"},
		{0x50600, "321.500KiB"},
		{1024*1024 + 512, "1.000MiB"},
		{3*1024*1024 + 256*1024, "3.250MiB"},
		{1 << 30, "1.000GiB"},
		{5<<40 + 1<<39, "5.500TiB"},
		{1 << 50, "1.000PiB"},
		{1<<60 + 1<<58, "1.250EiB"},
		{2047, "1.999KiB"},
		{2<<20 - 1, "2.000MiB"},
		{1<<30 - 1, "1.000GiB"},
		{1<<20 - 1, "1023.999KiB"},
		{^ByteCount(0), "16.000EiB"},
	} {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.value.String())
		})
	}
}

func TestByteCount_Units(t *testing.T) {
	whole, frac, suffix := ByteCount(1024*1024 + 512).Units()
	require.Equal(t, uint64(1), whole)
	require.Equal(t, "MiB", suffix)
	require.InDelta(t, 512.0/(1024*1024), frac, 1e-12)

	whole, frac, suffix = ByteCount(0).Units()
	require.Equal(t, uint64(0), whole)
	require.Zero(t, frac)
	require.Equal(t, "B", suffix)

	whole, frac, suffix = ByteCount(0x2108).Units()
	require.Equal(t, uint64(8), whole)
	require.Equal(t, "KiB", suffix)
	require.InDelta(t, 264.0/1024, frac, 1e-12)
}

func TestByteCount_Hex(t *testing.T) {
	assert.Equal(t, "0", ByteCount(0).Hex())
	assert.Equal(t, "100", ByteCount(0x100).Hex())
	assert.Equal(t, "50600", ByteCount(0x50600).Hex())
	assert.Equal(t, "ffffffffffffffff", ByteCount(^uint64(0)).Hex())
}

func TestByteCount_Add(t *testing.T) {
	b := ByteCount(0x100)
	require.Equal(t, ByteCount(0x180), b.Add(0x80))
	require.Equal(t, ByteCount(0x10b), b.AddUint64(0xb))
	require.Equal(t, ByteCount(0x100), b)
}

func TestByteCount_Percent(t *testing.T) {
	require.Equal(t, 6.25, ByteCount(0x100).Percent(0x1000))
	require.Equal(t, 100.0, ByteCount(0x1000).Percent(0x1000))
	require.Zero(t, ByteCount(0).Percent(0x1000))
	require.Zero(t, ByteCount(0x10).Percent(0))
}
