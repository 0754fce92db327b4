package headers

import (
	"strings"

	"github.com/indigo-web/headers/internal/strutil"
	"github.com/indigo-web/utils/strcomp"
)

// Cut splits the value into the bare value and its parameters at the first
// semicolon. Whatever follows the semicolon counts as parameters, even if it
// isn't a well-formed parameter at all. A value carrying none yields an empty
// params string.
func Cut(value string) (bare, params string) {
	bare, params, _ = strings.Cut(value, ";")
	return bare, strutil.LStripWS(params)
}

// ValueOf returns the value until the first semicolon, parameters dropped.
func ValueOf(value string) string {
	bare, _ := Cut(value)
	return bare
}

// ParamOf looks the parameter up in the value. Parameter names are matched
// case-insensitively, the parameter value is unquoted if quoted and cut at a
// comma, as the comma starts the next element of a list-valued header. In case
// the parameter isn't found, the fallback is returned.
func ParamOf(value, param, or string) string {
	_, params := Cut(value)

	for len(params) > 0 {
		var pair string
		pair, params, _ = strings.Cut(params, ";")

		key, val, found := strings.Cut(pair, "=")
		if !found {
			continue
		}

		if strcomp.EqualFold(strutil.StripWS(key), param) {
			val, _, _ = strings.Cut(val, ",")
			return strutil.Unquote(strutil.StripWS(val))
		}
	}

	return or
}

// QualityOf returns the quality parameter as a single decimal digit: the N of
// q=0.N. A value missing the parameter, just as a malformed one, weighs the
// maximal 9.
func QualityOf(value string) uint8 {
	q := ParamOf(value, "q", "")

	if len(q) >= 3 && q[0] == '0' && q[1] == '.' && isDigit(q[2]) {
		return q[2] - '0'
	}

	return 9
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
