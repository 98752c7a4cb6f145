// Package layout holds the memory maps of supported targets.
package layout

import "github.com/grafana/memmap/pkg/memmap"

// ESP32-C3 internal SRAM, as laid out by the esp-hal linker scripts
// (esp32c3-hal/ld/db-esp32c3-memory.x).
const (
	ESP32C3DRAMBase = 0x3FC80000
	ESP32C3DRAMSize = 0x50000 + 0x600

	// IRAM starts after the 16 KiB cache region and leaves the last 1 KiB to
	// the ROM.
	ESP32C3IRAMBase = 0x4037C000 + 0x4000
	ESP32C3IRAMSize = 400*1024 - 0x400
)

var (
	ESP32C3DRAM = memmap.Region{Start: ESP32C3DRAMBase, End: ESP32C3DRAMBase + ESP32C3DRAMSize}
	ESP32C3IRAM = memmap.Region{Start: ESP32C3IRAMBase, End: ESP32C3IRAMBase + ESP32C3IRAMSize}
)

// ESP32C3 returns the regions reported for the ESP32-C3, data memory first.
func ESP32C3() memmap.Layout {
	return memmap.Layout{
		{Name: "DRAM", Region: ESP32C3DRAM},
		{Name: "IRAM", Region: ESP32C3IRAM},
	}
}
