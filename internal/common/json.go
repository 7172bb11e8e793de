package common

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseJSON extracts and unmarshals the JSON object embedded in an LLM
// response. Models routinely wrap the payload in markdown fences or prose,
// so everything outside the outermost braces is discarded.
func ParseJSON[T any](response string) (T, error) {
	var zero T

	start := strings.IndexByte(response, '{')
	if start < 0 {
		return zero, fmt.Errorf("no JSON object found in response")
	}
	end := strings.LastIndexByte(response, '}')
	if end < start {
		return zero, fmt.Errorf("unterminated JSON object in response")
	}

	var result T
	if err := json.Unmarshal([]byte(response[start:end+1]), &result); err != nil {
		return zero, fmt.Errorf("unmarshal response: %w", err)
	}
	return result, nil
}
