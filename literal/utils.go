package literal

import "strings"

// indexPercent returns the index of the first '%' in s, or -1.
func indexPercent(s string) int {
	return strings.IndexByte(s, percent)
}

// unhex returns the value of the hex digit c, or -1.
func unhex(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c - 'a' + 10)
	case 'A' <= c && c <= 'F':
		return int(c - 'A' + 10)
	}

	return -1
}
