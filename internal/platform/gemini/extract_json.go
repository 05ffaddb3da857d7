package gemini

import (
	"encoding/json"
	"fmt"

	"github.com/whitepaper-ai/course-api/internal/generation"
)

// extractJSON returns the first balanced JSON object or array found in
// text. Models sometimes wrap their JSON in prose or code fences even
// when asked not to; scanning for a balanced value recovers it.
func extractJSON(text string) ([]byte, error) {
	var stack []byte
	start := -1
	inString := false
	escape := false

	for i := 0; i < len(text); i++ {
		c := text[i]
		if escape {
			escape = false
			continue
		}
		switch c {
		case '\\':
			if inString {
				escape = true
			}
			continue
		case '"':
			inString = !inString
			continue
		}
		if inString {
			continue
		}
		switch c {
		case '{', '[':
			if len(stack) == 0 {
				start = i
			}
			stack = append(stack, c)
		case '}', ']':
			if len(stack) == 0 {
				continue
			}
			stack = stack[:len(stack)-1]
			if len(stack) == 0 && start >= 0 {
				candidate := []byte(text[start : i+1])
				if json.Valid(candidate) {
					return candidate, nil
				}
				start = -1
			}
		}
	}

	return nil, fmt.Errorf("%w: no valid JSON object or array found in response", generation.ErrInvalidResponse)
}
