package schema

import "testing"

func TestInputString(t *testing.T) {
	input := NewInput("what is the weather")
	if got := input.String(); got != "what is the weather" {
		t.Errorf("expect chat message, but got %q", got)
	}
}

func TestValidate(t *testing.T) {
	type req struct {
		Query string `validate:"required"`
	}
	if err := Validate(&req{}); err == nil {
		t.Error("expect required error for empty query")
	}
	if err := Validate(&req{Query: "ok"}); err != nil {
		t.Errorf("expect valid struct, but got %v", err)
	}
	if err := Validate("not a struct"); err != nil {
		t.Errorf("expect non-struct to pass, but got %v", err)
	}
}

func TestJSONString(t *testing.T) {
	out := Output{Reply: "hi"}
	if got := JSONString(out); got != `{"reply":"hi"}` {
		t.Errorf("unexpected json: %s", got)
	}
}
