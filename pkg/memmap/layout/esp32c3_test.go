package layout

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/grafana/memmap/pkg/memmap"
)

func TestESP32C3(t *testing.T) {
	l := ESP32C3()
	require.NoError(t, l.Validate())
	require.Len(t, l, 2)
	require.Equal(t, "DRAM", l[0].Name)
	require.Equal(t, "IRAM", l[1].Name)

	require.Equal(t, memmap.Region{Start: 0x3FC80000, End: 0x3FCD0600}, l[0].Region)
	require.Equal(t, memmap.ByteCount(0x50600), l[0].Capacity())
	require.Equal(t, "321.500KiB", l[0].Capacity().String())

	require.Equal(t, memmap.Region{Start: 0x40380000, End: 0x403E3C00}, l[1].Region)
	require.Equal(t, "399.000KiB", l[1].Capacity().String())
}
