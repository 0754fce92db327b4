package headers

import (
	"io"
	"strings"

	json "github.com/json-iterator/go"
)

// ToJSON returns the entries as a plain JSON-friendly mapping. Every stored value
// is split on commas and the pieces are flattened into one combined sequence per
// name: values collapsed by SetAll are expanded back, and a plain value carrying
// a comma of its own is expanded just the same. The mapping is a snapshot —
// neither it nor its sequences alias the storage.
func (h *Headers) ToJSON() map[string][]string {
	m := make(map[string][]string, len(h.entries))

	for key, values := range h.entries {
		flat := make([]string, 0, len(values))

		for _, value := range values {
			flat = append(flat, strings.Split(value, ",")...)
		}

		m[key] = flat
	}

	return m
}

// MarshalJSON implements json.Marshaler over the ToJSON form.
func (h *Headers) MarshalJSON() ([]byte, error) {
	return json.ConfigDefault.Marshal(h.ToJSON())
}

// WriteJSON streams the ToJSON form into the writer.
func (h *Headers) WriteJSON(w io.Writer) error {
	stream := json.ConfigDefault.BorrowStream(w)
	stream.WriteVal(h.ToJSON())
	err := stream.Flush()
	json.ConfigDefault.ReturnStream(stream)

	return err
}
