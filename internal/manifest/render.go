package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Render encodes v as two-space indented JSON with a trailing newline.
// HTML escaping is disabled so values like ">=18" and "&&" stay readable.
func Render(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("encoding JSON: %w", err)
	}
	return buf.Bytes(), nil
}
