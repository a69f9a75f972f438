package components

import (
	"fmt"
	"sync"

	"github.com/geminikit/agentpack/schema"
)

// Memory manages the chat history for an agent.
// threadsafe
type Memory struct {
	// history is a list of messages representing the chat history
	history []Message
	// turnID is the ID of the current turn
	turnID string
	// maxMessages is the maximum number of messages to keep in history.
	// When exceeded, oldest messages are removed first. Zero means unbounded.
	maxMessages int
	mtx         sync.RWMutex
}

// NewMemory initializes the Memory with an empty history and optional bound.
func NewMemory(maxMessages int) *Memory {
	return &Memory{
		maxMessages: maxMessages,
		history:     make([]Message, 0, maxMessages+1),
	}
}

// MaxMessages returns the max number of messages
func (m *Memory) MaxMessages() int {
	return m.maxMessages
}

// TurnID returns the current turn ID
func (m *Memory) TurnID() string {
	m.mtx.RLock()
	defer m.mtx.RUnlock()
	return m.turnID
}

// NewTurn starts a new turn by generating a random turn ID.
func (m *Memory) NewTurn() string {
	id := NewTurnID()
	m.mtx.Lock()
	m.turnID = id
	m.mtx.Unlock()
	return id
}

// Add appends a message to the chat history and manages overflow.
func (m *Memory) Add(role MessageRole, content schema.Schema) *Message {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	msg := NewMessage(role, content).SetTurnID(m.turnID)
	m.history = append(m.history, *msg)
	if m.maxMessages > 0 && len(m.history) > m.maxMessages {
		m.history = m.history[1:]
	}
	return msg
}

// History retrieves a copy of the chat history.
func (m *Memory) History() []Message {
	m.mtx.RLock()
	defer m.mtx.RUnlock()
	out := make([]Message, len(m.history))
	copy(out, m.history)
	return out
}

// Reset clears the chat history.
func (m *Memory) Reset() {
	m.mtx.Lock()
	m.history = m.history[:0]
	m.turnID = ""
	m.mtx.Unlock()
}

// DeleteTurn removes all messages belonging to the given turn ID.
// Returns an error if the turn ID is not found.
func (m *Memory) DeleteTurn(turnID string) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	kept := make([]Message, 0, len(m.history))
	for _, v := range m.history {
		if v.TurnID() == turnID {
			continue
		}
		kept = append(kept, v)
	}
	if len(kept) == len(m.history) {
		return fmt.Errorf("turnID %s not found in memory", turnID)
	}
	m.history = kept
	if len(kept) == 0 {
		m.turnID = ""
	} else if turnID == m.turnID {
		m.turnID = kept[len(kept)-1].TurnID()
	}
	return nil
}

// MessageCount returns the number of messages in the chat history.
func (m *Memory) MessageCount() int {
	m.mtx.RLock()
	defer m.mtx.RUnlock()
	return len(m.history)
}
