package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// ReadPayloadFile loads a JSON object from path. An empty path yields a nil
// map so the server reports the payload as missing.
func ReadPayloadFile(path string) (map[string]any, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read payload %s: %w", path, err)
	}

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("payload %s must be a JSON object: %w", path, err)
	}

	return m, nil
}
