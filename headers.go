package headers

import (
	"strings"

	"github.com/indigo-web/headers/internal/strutil"
	"github.com/indigo-web/iter"
)

// Pair is a single header entry, as pair-wise iteration would yield it.
type Pair struct {
	Key, Value string
}

// Headers is an associative storage of header name-value entries. Names are
// case-insensitive: every name is lower-cased before it is used as a storage key,
// so all stored names are guaranteed to be in the normalized form. A name holds
// one or more values, kept in the order they were added. A name holding no values
// cannot exist: absence of a name is represented by the name itself being absent.
//
// Instances must be obtained via New, NewPrealloc, NewFromMap, NewFromScalars,
// Parse, ParseBytes or Clone.
type Headers struct {
	entries map[string][]string
}

func New() *Headers {
	return NewPrealloc(0)
}

// NewPrealloc returns an instance of Headers with space for n names pre-allocated.
func NewPrealloc(n int) *Headers {
	return &Headers{
		entries: make(map[string][]string, n),
	}
}

// NewFromMap returns a new instance with already inserted values from given map.
// The values are inserted one-by-one into fresh sequences, so the passed map stays
// foreign to the instance; names carrying empty sequences are thereby simply
// never materialized.
func NewFromMap(m map[string][]string) *Headers {
	h := NewPrealloc(len(m))

	for key, values := range m {
		for _, value := range values {
			h.Add(key, value)
		}
	}

	return h
}

// NewFromScalars returns a new instance built off a plain single-valued map, each
// value wrapped into its own single-element sequence.
func NewFromScalars(m map[string]string) *Headers {
	h := NewPrealloc(len(m))

	for key, value := range m {
		h.Add(key, value)
	}

	return h
}

// Add appends a value to the name, preserving all the previously added ones.
func (h *Headers) Add(key, value string) *Headers {
	key = strutil.Lower(key)
	h.entries[key] = append(h.entries[key], value)
	return h
}

// Set replaces all the previously stored values of the name with a single one.
func (h *Headers) Set(key, value string) *Headers {
	h.entries[strutil.Lower(key)] = []string{value}
	return h
}

// SetAll replaces all the previously stored values of the name with the passed
// sequence, collapsed into a single comma-joined value. The collapse is lossy on
// purpose: unlike repeated Add, the sequence ends up as one entry, not as
// len(values) distinct ones.
func (h *Headers) SetAll(key string, values []string) *Headers {
	return h.Set(key, strings.Join(values, ","))
}

// Delete removes the name with all its values. Deleting an absent name is a no-op.
func (h *Headers) Delete(key string) *Headers {
	delete(h.entries, strutil.Lower(key))
	return h
}

// Get returns the first value of the name and a bool, indicating whether the name
// is present at all. Looking an absent name up is not a fault, just a false.
func (h *Headers) Get(key string) (value string, found bool) {
	values, found := h.entries[strutil.Lower(key)]
	if !found {
		return "", false
	}

	return values[0], true
}

// Value returns the first value of the name. Otherwise, empty string is returned.
func (h *Headers) Value(key string) string {
	return h.ValueOr(key, "")
}

// ValueOr returns either the first value of the name or the fallback value,
// defined via the second parameter.
func (h *Headers) ValueOr(key, or string) string {
	value, found := h.Get(key)
	if !found {
		return or
	}

	return value
}

// Values returns all the values of the name in the order they were added, or nil
// if the name isn't present.
//
// WARNING: the returned slice is the live storage, not a copy. Modifying its
// elements modifies the stored values. Consider copying for safe use.
func (h *Headers) Values(key string) []string {
	return h.entries[strutil.Lower(key)]
}

// Has indicates, whether there's an entry of the name.
func (h *Headers) Has(key string) bool {
	_, found := h.entries[strutil.Lower(key)]
	return found
}

// Keys returns all the stored names in the normalized form. The order is the map
// iteration order, thereby not contractually stable.
func (h *Headers) Keys() []string {
	keys := make([]string, 0, len(h.entries))

	for key := range h.entries {
		keys = append(keys, key)
	}

	return keys
}

// AllValues returns the value sequences of all the stored names, one sequence per
// name, in the map iteration order. The sequences are live, as in Values.
func (h *Headers) AllValues() [][]string {
	values := make([][]string, 0, len(h.entries))

	for _, sequence := range h.entries {
		values = append(values, sequence)
	}

	return values
}

// ForEach calls visit once per stored name, synchronously, passing the normalized
// name and the live value sequence. Mutating the instance from inside visit is
// unspecified, don't rely on it.
func (h *Headers) ForEach(visit func(key string, values []string)) {
	for key, values := range h.entries {
		visit(key, values)
	}
}

// Entries would iterate the entries pair-wise. It is not implemented and always
// reports ErrEntriesNotImplemented.
func (h *Headers) Entries() (entries iter.Iterator[Pair], err error) {
	return entries, ErrEntriesNotImplemented
}

// Len returns a number of distinct stored names.
func (h *Headers) Len() int {
	return len(h.entries)
}

func (h *Headers) Empty() bool {
	return h.Len() == 0
}

// Clone creates a deep copy: the name set and every value sequence are copied, so
// no mutation of the copy is ever observable through the origin, and vice versa.
func (h *Headers) Clone() *Headers {
	cloned := NewPrealloc(len(h.entries))

	for key, values := range h.entries {
		cloned.entries[key] = clone(values)
	}

	return cloned
}

// Clear removes all the entries, keeping the underlying storage allocated.
func (h *Headers) Clear() *Headers {
	for key := range h.entries {
		delete(h.entries, key)
	}

	return h
}

// String renders the entries as "name: value" lines, a value per line. The result
// is a human-readable representation for debugging, not a wire format.
func (h *Headers) String() string {
	var b strings.Builder

	for key, values := range h.entries {
		for _, value := range values {
			b.WriteString(key)
			b.WriteString(": ")
			b.WriteString(value)
			b.WriteByte('\n')
		}
	}

	return b.String()
}

func clone[T any](source []T) []T {
	if len(source) == 0 {
		return nil
	}

	newSlice := make([]T, len(source))
	copy(newSlice, source)

	return newSlice
}
