package repo

import (
	"bytes"
	"encoding/json"
)

// JSON-valued columns are stored as native JSONB. Writes always send a
// materialised value and reads always return one, even for null or
// malformed legacy rows.

func jsonList[E any](v []E) ([]byte, error) {
	if v == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(v)
}

func jsonMap[V any](m map[string]V) ([]byte, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

// decodeList parses a JSONB column into a slice, falling back to an empty
// slice on null or malformed input. A JSON string holding encoded JSON (as
// written by older clients) is unwrapped once.
func decodeList[E any](raw []byte) []E {
	out := []E{}
	raw = unwrapJSONString(raw)
	if len(raw) == 0 {
		return out
	}
	if err := json.Unmarshal(raw, &out); err != nil || out == nil {
		return []E{}
	}
	return out
}

// decodeMap is decodeList for object-valued columns.
func decodeMap[V any](raw []byte) map[string]V {
	out := map[string]V{}
	raw = unwrapJSONString(raw)
	if len(raw) == 0 {
		return out
	}
	if err := json.Unmarshal(raw, &out); err != nil || out == nil {
		return map[string]V{}
	}
	return out
}

func unwrapJSONString(raw []byte) []byte {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '"' {
		return raw
	}
	var inner string
	if err := json.Unmarshal(raw, &inner); err != nil {
		return nil
	}
	return bytes.TrimSpace([]byte(inner))
}
