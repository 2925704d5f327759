package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// IsTruthyJSON reports whether raw holds a present, non-empty JSON value.
// Missing input, null, false, 0 and "" are falsy; any object or array is truthy.
func IsTruthyJSON(raw []byte) bool {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return false
	}

	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}

	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case float64:
		return val != 0
	case string:
		return val != ""
	default:
		return true
	}
}

// DecodeExactKeys decodes the JSON object in data into targets, matching each
// key exactly. Keys that differ only in case are ignored.
func DecodeExactKeys(data []byte, targets map[string]interface{}) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	for key, target := range targets {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, target); err != nil {
			return fmt.Errorf("field %q: %w", key, err)
		}
	}
	return nil
}
