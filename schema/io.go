package schema

// Input is the default user input schema for an agent turn.
type Input struct {
	Base
	// ChatMessage the message sent by the user to the agent
	ChatMessage string `json:"chat_message" jsonschema:"title=chat_message,description=The message sent by the user." validate:"required"`
}

func NewInput(msg string) *Input {
	return &Input{
		ChatMessage: msg,
	}
}

func (i Input) String() string {
	return i.ChatMessage
}

// ToolCall records one capability invocation made while producing a reply.
type ToolCall struct {
	// Name is the function name the model invoked
	Name string `json:"name"`
	// Arguments is the JSON encoded arguments of the call
	Arguments string `json:"arguments,omitempty"`
	// Response is the rendered tool response fed back to the model
	Response string `json:"response,omitempty"`
	// Err is set when the tool invocation failed
	Err string `json:"error,omitempty"`
}

// Output is the default agent reply schema.
type Output struct {
	Base
	// Reply is the final text reply of the agent
	Reply string `json:"reply" jsonschema:"title=reply,description=The agent reply."`
	// ToolCalls is the tool call trace, populated only when the agent is
	// configured to show tool calls.
	ToolCalls []ToolCall `json:"tool_calls,omitempty"`
}

func (o Output) String() string {
	return o.Reply
}
