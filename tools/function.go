package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"

	"github.com/geminikit/agentpack/schema"
)

// Function is one callable entry point a tool declares to the model.
type Function struct {
	// Name is the function name exposed to the model
	Name string
	// Description tells the model when to call the function
	Description string
	// Parameters is the JSON schema of the function arguments
	Parameters *jsonschema.Schema
	// Call executes the function with JSON encoded arguments
	Call func(context.Context, json.RawMessage) (any, error)
}

// Reflect builds an inline JSON schema for a function input struct.
func Reflect(v any) *jsonschema.Schema {
	r := jsonschema.Reflector{
		Anonymous:      true,
		DoNotReference: true,
		ExpandedStruct: true,
	}
	return r.Reflect(v)
}

// DecodeArgs unmarshals model supplied arguments into an input struct and
// validates it.
func DecodeArgs(args json.RawMessage, dst any) error {
	if len(args) > 0 {
		if err := json.Unmarshal(args, dst); err != nil {
			return fmt.Errorf("decode arguments: %w", err)
		}
	}
	return schema.Validate(dst)
}
