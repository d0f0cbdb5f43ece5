package dux

import (
	"fmt"
	"math"
	"math/big"

	"github.com/dustin/go-humanize"
)

// sizeUnits are the 1024-based unit labels, smallest first.
//
//nolint:gochecknoglobals // Config constant
var sizeUnits = []string{"B", "K", "M", "G", "T", "P", "E", "Z", "Y"}

// FormatSize renders n as a scaled size with two decimal digits and a
// single-letter unit, e.g. "1.95 K". Scaling divides by 1024 until the
// value drops below 1024 or the last unit is reached.
func FormatSize(n uint64) string {
	size := float64(n)
	order := 0

	for size >= 1024 && order+1 < len(sizeUnits) {
		order++
		size /= 1024
	}

	return fmt.Sprintf("%.2f %s", size, sizeUnits[order])
}

// FormatCount renders n in decimal with comma-separated thousands
// groups, e.g. "1,234,567". The full uint64 range is supported.
func FormatCount(n uint64) string {
	if n <= math.MaxInt64 {
		return humanize.Comma(int64(n))
	}

	return humanize.BigComma(new(big.Int).SetUint64(n))
}
