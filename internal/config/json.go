package config

import (
	"encoding/json"
	"os"
)

// LoadJSON decodes the file at path into T. ok is false when the file is
// missing, unreadable or not valid JSON; the cause is not reported.
func LoadJSON[T any](path string) (v T, ok bool) {
	st, err := os.Stat(path)
	if err != nil || st.IsDir() {
		return v, false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return v, false
	}
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return v, false
	}
	return out, true
}
