package headers

import "errors"

// ErrEntriesNotImplemented is reported by Headers.Entries. The message is fixed:
// callers are known to match it verbatim.
var ErrEntriesNotImplemented = errors.New("entries method is not implemented on Headers class.")
