package pcp

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// DecodeJSON parses data into untyped values suitable for Validate/Solve.
// Both a bare list of {"top","bottom"} objects and {"pairs": [...]} work.
func DecodeJSON(data []byte) (any, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("pcp: decode json: %w", err)
	}

	return v, nil
}

// DecodeYAML parses data into untyped values suitable for Validate/Solve.
// Unquoted numeric scalars (e.g. top: 01) decode as numbers and are then
// rejected by Validate; quote them.
func DecodeYAML(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("pcp: decode yaml: %w", err)
	}

	return v, nil
}
