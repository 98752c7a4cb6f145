package memmap

import (
	"fmt"
	"math"
	"strconv"
)

// ByteCount is a size in bytes.
type ByteCount uint64

var byteUnits = []struct {
	shift  uint
	suffix string
}{
	{60, "EiB"},
	{50, "PiB"},
	{40, "TiB"},
	{30, "GiB"},
	{20, "MiB"},
	{10, "KiB"},
}

func (b ByteCount) Add(o ByteCount) ByteCount {
	return b + o
}

func (b ByteCount) AddUint64(n uint64) ByteCount {
	return b + ByteCount(n)
}

// Hex returns the exact value in lowercase hexadecimal without a prefix.
func (b ByteCount) Hex() string {
	return strconv.FormatUint(uint64(b), 16)
}

// Units splits b into the largest binary unit it reaches: the whole number
// of units, the remainder as a fraction of one unit, and the unit suffix.
// Values below 1 KiB are plain bytes with a zero fraction.
func (b ByteCount) Units() (whole uint64, frac float64, suffix string) {
	v := uint64(b)
	for _, u := range byteUnits {
		if v>>u.shift == 0 {
			continue
		}
		div := uint64(1) << u.shift
		return v >> u.shift, float64(v%div) / float64(div), u.suffix
	}
	return v, 0, "B"
}

// String renders b as "<whole>.<fraction><unit>", e.g. "1.500KiB" or
// "0.000B  ". The unit is padded to three characters so values line up.
//
// The fraction is rounded to three digits. A fraction that rounds up to a
// whole unit is carried, so 2 MiB - 1 renders as "2.000MiB" and 1 GiB - 1 as
// "1.000GiB".
func (b ByteCount) String() string {
	whole, frac, suffix := b.Units()
	milli := uint64(math.RoundToEven(frac * 1000))
	if milli == 1000 {
		whole, milli = whole+1, 0
		if whole == 1024 {
			for i := 1; i < len(byteUnits); i++ {
				if byteUnits[i].suffix == suffix {
					whole, suffix = 1, byteUnits[i-1].suffix
					break
				}
			}
		}
	}
	return fmt.Sprintf("%d.%03d%-3s", whole, milli, suffix)
}

// Percent returns b as a percentage of capacity.
func (b ByteCount) Percent(capacity ByteCount) float64 {
	if capacity == 0 {
		return 0
	}
	return float64(b) / float64(capacity) * 100
}
