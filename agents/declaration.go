package agents

import (
	"github.com/google/generative-ai-go/genai"
	"github.com/invopop/jsonschema"

	"github.com/geminikit/agentpack/tools"
)

// declarations renders the bound tools as Gemini function declarations.
func (c *Config) declarations() []*genai.FunctionDeclaration {
	out := make([]*genai.FunctionDeclaration, 0, len(c.functions))
	for _, tool := range c.tools {
		for _, fn := range tool.Functions() {
			out = append(out, &genai.FunctionDeclaration{
				Name:        fn.Name,
				Description: fn.Description,
				Parameters:  toGeminiSchema(fn.Parameters),
			})
		}
	}
	return out
}

// indexFunctions maps function names to their implementations. Later
// bindings do not shadow earlier ones.
func indexFunctions(list []tools.AnonymousTool) map[string]tools.Function {
	out := make(map[string]tools.Function)
	for _, tool := range list {
		for _, fn := range tool.Functions() {
			if _, ok := out[fn.Name]; ok {
				continue
			}
			out[fn.Name] = fn
		}
	}
	return out
}

// toGeminiSchema converts a reflected JSON schema into the Gemini
// declaration schema. Schemas without properties map to nil: the API
// treats a missing parameter block as a no-argument function.
func toGeminiSchema(s *jsonschema.Schema) *genai.Schema {
	if s == nil {
		return nil
	}
	out := &genai.Schema{
		Type:        toGeminiType(s.Type),
		Description: s.Description,
		Required:    s.Required,
	}
	for _, v := range s.Enum {
		if str, ok := v.(string); ok {
			out.Enum = append(out.Enum, str)
		}
	}
	if s.Items != nil {
		out.Items = toGeminiSchema(s.Items)
	}
	if s.Properties != nil {
		for pair := s.Properties.Oldest(); pair != nil; pair = pair.Next() {
			if out.Properties == nil {
				out.Properties = make(map[string]*genai.Schema)
			}
			out.Properties[pair.Key] = toGeminiSchema(pair.Value)
		}
	}
	if out.Type == genai.TypeObject && len(out.Properties) == 0 {
		return nil
	}
	return out
}

func toGeminiType(t string) genai.Type {
	switch t {
	case "string":
		return genai.TypeString
	case "integer":
		return genai.TypeInteger
	case "number":
		return genai.TypeNumber
	case "boolean":
		return genai.TypeBoolean
	case "array":
		return genai.TypeArray
	case "object":
		return genai.TypeObject
	default:
		return genai.TypeUnspecified
	}
}
