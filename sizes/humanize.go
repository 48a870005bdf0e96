package sizes

import (
	"github.com/dustin/go-humanize"

	"cssm/common"
)

// Humanize formats byte count for people: decimal units (1.2 kB) for si,
// binary ones (1.2 KiB) for iec.
func Humanize(n int64, units common.SizeUnits) string {
	if n < 0 {
		n = 0
	}
	if units == common.SizeUnitsIec {
		return humanize.IBytes(uint64(n))
	}
	return humanize.Bytes(uint64(n))
}
