package agents

import (
	"testing"

	"github.com/google/generative-ai-go/genai"

	"github.com/geminikit/agentpack/schema"
	"github.com/geminikit/agentpack/tools"
)

type declInput struct {
	schema.Base
	Query string   `json:"query" jsonschema:"title=query,description=What to look for." validate:"required"`
	Count int      `json:"count,omitempty" jsonschema:"title=count"`
	Tags  []string `json:"tags,omitempty" jsonschema:"title=tags"`
	Deep  bool     `json:"deep,omitempty" jsonschema:"title=deep"`
}

func TestToGeminiSchema(t *testing.T) {
	got := toGeminiSchema(tools.Reflect(&declInput{}))
	if got == nil {
		t.Fatal("expect schema")
	}
	if got.Type != genai.TypeObject {
		t.Errorf("expect object type, but got %v", got.Type)
	}
	if len(got.Required) != 1 || got.Required[0] != "query" {
		t.Errorf("unexpected required %v", got.Required)
	}
	query := got.Properties["query"]
	if query == nil || query.Type != genai.TypeString {
		t.Fatalf("unexpected query property %+v", query)
	}
	if query.Description != "What to look for." {
		t.Errorf("unexpected description %q", query.Description)
	}
	if p := got.Properties["count"]; p == nil || p.Type != genai.TypeInteger {
		t.Errorf("unexpected count property %+v", p)
	}
	if p := got.Properties["deep"]; p == nil || p.Type != genai.TypeBoolean {
		t.Errorf("unexpected deep property %+v", p)
	}
	tags := got.Properties["tags"]
	if tags == nil || tags.Type != genai.TypeArray {
		t.Fatalf("unexpected tags property %+v", tags)
	}
	if tags.Items == nil || tags.Items.Type != genai.TypeString {
		t.Errorf("unexpected tags items %+v", tags.Items)
	}
}

func TestToGeminiSchemaEmpty(t *testing.T) {
	if got := toGeminiSchema(nil); got != nil {
		t.Errorf("expect nil for nil schema, but got %+v", got)
	}
	if got := toGeminiSchema(tools.Reflect(&struct{}{})); got != nil {
		t.Errorf("expect nil for empty object schema, but got %+v", got)
	}
}

func TestDeclarations(t *testing.T) {
	agent := New(WithTools(
		&fakeTool{names: []string{"a", "b"}},
		&fakeTool{names: []string{"c"}},
	))
	decls := agent.declarations()
	if len(decls) != 3 {
		t.Fatalf("expect 3 declarations, but got %d", len(decls))
	}
	names := map[string]bool{}
	for _, decl := range decls {
		names[decl.Name] = true
	}
	for _, want := range []string{"a", "b", "c"} {
		if !names[want] {
			t.Errorf("missing declaration %q", want)
		}
	}
}
