package fileutil

import "strings"

// Extension returns the part of filename after the last dot, or an empty
// string when there is no dot.
func Extension(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return ""
	}
	return filename[idx+1:]
}

// BaseName returns filename with its extension removed. A name without a
// dot is returned unchanged.
func BaseName(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return filename
	}
	return filename[:idx]
}
