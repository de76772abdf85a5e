package fileutil

import (
	"math"
	"strconv"
)

var sizeUnits = []string{"Bytes", "KB", "MB", "GB", "TB", "PB"}

// FormatSize converts a byte count into the largest fitting 1024-based
// unit with the given decimal precision (default 2). Exactly zero bytes
// formats as "0 Bytes".
//
//	FormatSize(1048576) // "1.00 MB"
//	FormatSize(1536, 0) // "2 KB"
func FormatSize(bytes int64, decimals ...int) string {
	if bytes == 0 {
		return "0 Bytes"
	}

	precision := 2
	if len(decimals) > 0 {
		precision = decimals[0]
	}
	if precision < 0 {
		precision = 0
	}

	if bytes < 0 {
		return strconv.FormatFloat(float64(bytes), 'f', precision, 64) + " Bytes"
	}

	i := int(math.Floor(math.Log(float64(bytes)) / math.Log(1024)))
	if i < 0 {
		i = 0
	}
	if i >= len(sizeUnits) {
		i = len(sizeUnits) - 1
	}

	value := float64(bytes) / math.Pow(1024, float64(i))
	return strconv.FormatFloat(value, 'f', precision, 64) + " " + sizeUnits[i]
}
