package schema

import "encoding/json"

// Schema is the message schema interface. Every value that travels through
// an agent's memory or a tool binding renders itself to text for the model.
type Schema interface {
	String() string
}

// JSONString marshals v to a compact JSON string for prompt embedding.
// Concrete schema types use it to implement String.
func JSONString(v any) string {
	bs, _ := json.Marshal(v)
	return string(bs)
}

// ToBytes renders a schema value to bytes.
func ToBytes(s Schema) []byte {
	if v, ok := s.(String); ok {
		return []byte(v)
	}
	return []byte(s.String())
}
