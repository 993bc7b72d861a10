package parsec

import "unicode/utf8"

func decodeRuneMultibyte(input string, pos int) (rune, int) {
	r, size := utf8.DecodeRuneInString(input[pos:])
	if r == utf8.RuneError && size <= 1 {
		return rune(input[pos]), 1
	}
	return r, size
}
