// Package numname names the magnitude of a number by its digit count.
package numname

import "strconv"

// Unknown is returned for magnitudes without a name.
const Unknown = "ERR"

var names = map[int]string{
	3:  "hundred",
	4:  "thousand",
	5:  "ten thousand",
	6:  "hundred thousand",
	7:  "million",
	8:  "ten million",
	9:  "hundred million",
	10: "billion",
	11: "ten billion",
	12: "hundred billion",
	13: "trillion",
	14: "ten trillion",
	15: "hundred trillion",
	16: "quadrillion",
}

// Name returns the magnitude word for n, e.g. 1000000 -> "million".
func Name(n uint64) string {
	if name, ok := names[len(strconv.FormatUint(n, 10))]; ok {
		return name
	}
	return Unknown
}
