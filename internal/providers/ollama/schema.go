// internal/providers/ollama/schema.go
package ollama

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// finalPayloadSchema describes the terminal object of a chat exchange: the
// batch response, or the done chunk of a stream. Telemetry fields must be
// present and non-negative before the payload is trusted for benchmarking.
const finalPayloadSchema = `{
	"type": "object",
	"required": ["model", "done", "total_duration", "prompt_eval_duration", "eval_count", "eval_duration"],
	"properties": {
		"model":                {"type": "string", "minLength": 1},
		"done":                 {"type": "boolean"},
		"total_duration":       {"type": "integer", "minimum": 0},
		"load_duration":        {"type": "integer", "minimum": 0},
		"prompt_eval_count":    {"type": "integer", "minimum": 0},
		"prompt_eval_duration": {"type": "integer", "minimum": 0},
		"eval_count":           {"type": "integer", "minimum": 0},
		"eval_duration":        {"type": "integer", "minimum": 0}
	}
}`

// validateFinalPayload checks a raw terminal payload against finalPayloadSchema.
func validateFinalPayload(raw []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(finalPayloadSchema)
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("ollama: could not validate final response: %w", err)
	}
	if !result.Valid() {
		var problems []string
		for _, desc := range result.Errors() {
			problems = append(problems, desc.String())
		}
		return fmt.Errorf("ollama: final response failed validation: %s", strings.Join(problems, "; "))
	}
	return nil
}
