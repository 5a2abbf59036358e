package strictread

import "unicode"

const (
	lineFeed     = 10  // \n
	space        = 32
	minusSign    = 45  // - char
	decimalPoint = 46  // . char
	del          = 127 // del char
)

const zeroChar = 48
const nineChar = 57

const lowerA = 97
const lowerZ = 122
const upperA = 65
const upperZ = 90

const maxByteValue = 255

func isNewLine(ch int) bool {
	return ch == lineFeed
}

func isSpace(ch int) bool {
	return ch == space
}

func isPrintableAscii(ch int) bool {
	return ch > space && ch < del
}

func isAsciiDigit(ch int) bool {
	return ch >= zeroChar && ch <= nineChar
}

func isLowerCaseAlphabet(ch int) bool {
	return ch >= lowerA && ch <= lowerZ
}

func isUpperCaseAlphabet(ch int) bool {
	return ch >= upperA && ch <= upperZ
}

// readableString names a byte for failure messages, so that invisible
// characters show up as words instead of vanishing into the output.
func readableString(ch int) string {
	if ch == eof {
		return "EOF"
	}
	if ch < 0 || ch > maxByteValue {
		return "undefined"
	}
	if isNewLine(ch) {
		return "new line"
	}
	if unicode.IsSpace(rune(ch)) {
		return "white space"
	}
	if unicode.IsControl(rune(ch)) {
		return "control character"
	}
	return string(rune(ch))
}
