package tools

import (
	"encoding/json"
	"testing"
)

type sampleInput struct {
	Query string `json:"query" jsonschema:"title=query,description=Search query." validate:"required"`
	Limit int    `json:"limit,omitempty" jsonschema:"title=limit"`
}

func TestReflect(t *testing.T) {
	s := Reflect(&sampleInput{})
	if s.Properties == nil {
		t.Fatal("expect inline properties")
	}
	if _, ok := s.Properties.Get("query"); !ok {
		t.Error("expect query property")
	}
	found := false
	for _, r := range s.Required {
		if r == "query" {
			found = true
		}
	}
	if !found {
		t.Errorf("expect query required, got %v", s.Required)
	}
}

func TestDecodeArgs(t *testing.T) {
	var in sampleInput
	if err := DecodeArgs(json.RawMessage(`{"query":"golang","limit":3}`), &in); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if in.Query != "golang" || in.Limit != 3 {
		t.Errorf("unexpected input: %+v", in)
	}
	var empty sampleInput
	if err := DecodeArgs(json.RawMessage(`{}`), &empty); err == nil {
		t.Error("expect validation error for missing query")
	}
}
