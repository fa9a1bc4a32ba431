// Package wire converts between the in-memory entity shapes and the remote
// store's snake_case row shape. Conversions are pure and total: ToRow omits
// fields that are absent on input (never writes null over an unspecified
// column) and FromRow substitutes a default for every optional column so the
// returned entity is always fully populated.
package wire

import "encoding/json"

// jsonList marshals a string list for a jsonb column. A nil slice is encoded
// as an empty array, not null.
func jsonList(v []string) []byte {
	if v == nil {
		v = []string{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return []byte("[]")
	}
	return b
}

// listFromJSON decodes a jsonb column into a string list; anything
// undecodable comes back as an empty list.
func listFromJSON(b []byte) []string {
	if len(b) == 0 {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal(b, &out); err != nil || out == nil {
		return []string{}
	}
	return out
}
