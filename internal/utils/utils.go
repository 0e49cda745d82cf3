package utils

// RoundUp2 - Rounds up a number to the nearest bigger exponent of 2
func RoundUp2(a int64) int64 {
	r := a - 1
	r |= r >> 1
	r |= r >> 2
	r |= r >> 4
	r |= r >> 8
	r |= r >> 16
	r |= r >> 32

	return r + 1
}
