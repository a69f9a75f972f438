package components

import (
	"github.com/google/generative-ai-go/genai"
	"github.com/rs/xid"

	"github.com/geminikit/agentpack/schema"
)

// NewTurnID returns a new turn ID.
func NewTurnID() string {
	return xid.New().String()
}

// MessageRole is the role of the message sender (e.g. 'user', 'system', 'tool')
type MessageRole = string

const (
	SystemRole    MessageRole = "system"
	UserRole      MessageRole = "user"
	AssistantRole MessageRole = "assistant"
	ToolRole      MessageRole = "tool"
)

// Gemini chat history knows two roles only.
const (
	geminiUserRole  = "user"
	geminiModelRole = "model"
)

// Message represents a message in the chat history.
type Message struct {
	content schema.Schema
	// role is the role of the message sender
	role MessageRole
	// turnID is the unique identifier for the turn this message belongs to
	turnID string
}

// NewMessage returns a new Message
func NewMessage(role MessageRole, content schema.Schema) *Message {
	return &Message{
		role:    role,
		content: content,
	}
}

// SetTurnID set message turnID
func (m *Message) SetTurnID(turnID string) *Message {
	m.turnID = turnID
	return m
}

// Role returns message role
func (m Message) Role() MessageRole {
	return m.role
}

// Content returns message content
func (m Message) Content() schema.Schema {
	return m.content
}

// TurnID returns message turnID
func (m Message) TurnID() string {
	return m.turnID
}

// ToGemini converts the message to a Gemini chat history entry. Assistant
// messages map to the model role, everything else to the user role.
func (m Message) ToGemini(dist *genai.Content) {
	role := geminiUserRole
	if m.role == AssistantRole {
		role = geminiModelRole
	}
	dist.Role = role
	dist.Parts = []genai.Part{genai.Text(m.content.String())}
}
