package strutil

import "github.com/indigo-web/utils/uf"

func LStripWS(str string) string {
	for i, c := range str {
		switch c {
		case ' ', '\t', '\r', '\v', '\f':
		default:
			return str[i:]
		}
	}

	return ""
}

func RStripWS(str string) string {
	for i := len(str); i > 0; i-- {
		switch str[i-1] {
		case ' ', '\t', '\r', '\v', '\f':
		default:
			return str[:i]
		}
	}

	return ""
}

// StripWS strips the whitespace from both ends. CR counts as whitespace, so values
// carved out of CRLF-delimited text come out clean.
func StripWS(str string) string {
	return LStripWS(RStripWS(str))
}

// Lower returns the string with all ASCII uppercase letters lower-cased. A string
// containing none is returned as-is, without allocating. Bytes outside of A-Z are
// left untouched, so no Unicode case folding happens.
func Lower(str string) string {
	for i := 0; i < len(str); i++ {
		if isUpper(str[i]) {
			return lowerFrom(str, i)
		}
	}

	return str
}

func lowerFrom(str string, first int) string {
	b := []byte(str)

	for i := first; i < len(b); i++ {
		if isUpper(b[i]) {
			b[i] |= 0x20
		}
	}

	return uf.B2S(b)
}

func isUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

func Unquote(str string) string {
	if len(str) > 1 && str[0] == '"' && str[len(str)-1] == '"' {
		return str[1 : len(str)-1]
	}

	return str
}
