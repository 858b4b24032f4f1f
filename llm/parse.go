package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/casve-tools/decision-api/domain"
)

// ErrParse marks responses that could not be decoded as the expected JSON
// object. Handlers map it to a fixed error message; the raw text goes to the
// process log only.
var ErrParse = errors.New("llm response is not valid JSON")

// ParseOptions strips an optional code-fence wrapper from raw LLM output and
// extracts the options array. A valid object without an "options" key yields
// an empty slice. Option shape is not validated beyond being a JSON value.
func ParseOptions(content string) ([]domain.Option, error) {
	content = stripFence(content)

	var payload struct {
		Options []domain.Option `json:"options"`
	}
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if payload.Options == nil {
		return []domain.Option{}, nil
	}
	return payload.Options, nil
}

// stripFence keeps the interior of a leading ```json or ``` fenced block, if
// present. Text without a fence passes through unchanged.
func stripFence(content string) string {
	content = strings.TrimSpace(content)

	for _, marker := range []string{"```json", "```"} {
		if !strings.HasPrefix(content, marker) {
			continue
		}
		inner := content[len(marker):]
		if end := strings.Index(inner, "```"); end >= 0 {
			inner = inner[:end]
		}
		return strings.TrimSpace(inner)
	}
	return content
}
