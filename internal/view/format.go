package view

import "strconv"

func uintText(n uint64) string {
	return strconv.FormatUint(n, 10)
}

func millis(n int64) string {
	return strconv.FormatInt(n, 10) + "ms"
}
