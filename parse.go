package headers

import (
	"strings"

	"github.com/indigo-web/headers/internal/strutil"
	"github.com/indigo-web/utils/uf"
)

// Parse builds a new Headers instance off a raw response headers text: a blob of
// newline-separated "Name: value" lines. Parsing never fails. Lines carrying no
// colon, as well as ones whose name is empty, are silently skipped. The name is
// taken as-is up to the first colon, the value is stripped of the surrounding
// whitespace (trailing CR included, so CRLF-delimited text is parsed clean). A
// repeated name overwrites the values parsed so far instead of appending to them.
func Parse(raw string) *Headers {
	h := New()

	for len(raw) > 0 {
		line := raw

		if lf := strings.IndexByte(raw, '\n'); lf != -1 {
			line, raw = raw[:lf], raw[lf+1:]
		} else {
			raw = ""
		}

		colon := strings.IndexByte(line, ':')
		if colon <= 0 {
			continue
		}

		h.Set(line[:colon], strutil.StripWS(line[colon+1:]))
	}

	return h
}

// ParseBytes is Parse for a blob kept as bytes. The conversion is zero-copy:
// stored values alias the passed slice, so modifying it afterwards modifies the
// stored values as well.
func ParseBytes(raw []byte) *Headers {
	return Parse(uf.B2S(raw))
}
