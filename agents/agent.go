// Package agents implements the agent runtime: a configured Gemini model,
// a system prompt, chat memory and a set of tool bindings driven through
// the function calling loop.
package agents

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/generative-ai-go/genai"

	"github.com/geminikit/agentpack/components"
	"github.com/geminikit/agentpack/schema"
)

// DefaultModel is the model bound to agents unless overridden.
const DefaultModel = "gemini-2.0-flash-exp"

// maxToolRounds bounds how many tool call rounds one turn may take.
const maxToolRounds = 5

var (
	ErrMissingClient = errors.New("agents: missing gemini client")
	ErrNoReply       = errors.New("agents: model returned no reply")
	ErrToolRounds    = errors.New("agents: tool call round limit reached")
)

// IAgent is the minimal agent surface.
type IAgent interface {
	Name() string
	Description() string
}

// AnonymousAgent is an agent as seen by an orchestrator: it accepts and
// returns untyped schemas.
type AnonymousAgent interface {
	IAgent
	RunAnonymous(ctx context.Context, input any, apiResp *components.LLMResponse) (any, error)
}

// Agent binds a model to a system prompt, memory and tools.
type Agent struct {
	Config
}

var (
	_ IAgent         = (*Agent)(nil)
	_ AnonymousAgent = (*Agent)(nil)
)

// New returns a configured Agent. A missing client is not an error here;
// Run reports it, so agents can be constructed and inspected offline.
func New(opts ...Option) *Agent {
	ret := new(Agent)
	ret.Config.init(opts...)
	return ret
}

// Run executes one conversational turn. The reply and optional tool call
// trace are written to output, provider details to apiResp when non-nil.
func (a *Agent) Run(ctx context.Context, input *schema.Input, output *schema.Output, apiResp *components.LLMResponse) error {
	if err := schema.Validate(input); err != nil {
		return err
	}
	if a.client == nil {
		return ErrMissingClient
	}
	model := a.buildModel()
	session := model.StartChat()
	session.History = a.geminiHistory()

	turnID := a.memory.NewTurn()
	a.memory.Add(components.UserRole, input)
	reply, trace, err := a.converse(ctx, session, input, apiResp)
	if err != nil {
		a.memory.DeleteTurn(turnID)
		return err
	}
	output.Reply = reply
	if a.showToolCalls {
		output.ToolCalls = trace
	}
	a.memory.Add(components.AssistantRole, output)
	return nil
}

// converse drives the function calling loop until the model settles on a
// text reply.
func (a *Agent) converse(ctx context.Context, session *genai.ChatSession, input *schema.Input, apiResp *components.LLMResponse) (string, []schema.ToolCall, error) {
	var trace []schema.ToolCall
	parts := []genai.Part{genai.Text(input.ChatMessage)}
	for round := 0; round <= maxToolRounds; round++ {
		if a.debugMode {
			slog.Debug("sending message", "agent", a.name, "model", a.model, "round", round)
		}
		resp, err := session.SendMessage(ctx, parts...)
		if err != nil {
			return "", trace, fmt.Errorf("send message: %w", err)
		}
		if apiResp != nil {
			apiResp.FromGemini(resp)
			apiResp.Model = a.model
		}
		text, calls := splitResponse(resp)
		if len(calls) == 0 {
			if text == "" {
				return "", trace, ErrNoReply
			}
			return text, trace, nil
		}
		parts = parts[:0]
		for _, call := range calls {
			response, record := a.invoke(ctx, call)
			trace = append(trace, record)
			parts = append(parts, genai.FunctionResponse{
				Name:     call.Name,
				Response: response,
			})
		}
	}
	return "", trace, ErrToolRounds
}

// invoke dispatches one function call. Tool failures are not turn
// failures: the error is handed back to the model so it can phrase the
// problem for the user.
func (a *Agent) invoke(ctx context.Context, call *genai.FunctionCall) (map[string]any, schema.ToolCall) {
	args, _ := json.Marshal(call.Args)
	record := schema.ToolCall{
		Name:      call.Name,
		Arguments: string(args),
	}
	fn, ok := a.functions[call.Name]
	if !ok {
		err := fmt.Errorf("unknown function %q", call.Name)
		record.Err = err.Error()
		return map[string]any{"error": err.Error()}, record
	}
	if a.debugMode {
		slog.Debug("calling tool", "agent", a.name, "function", call.Name, "arguments", string(args))
	}
	result, err := fn.Call(ctx, args)
	if err != nil {
		if a.debugMode {
			slog.Debug("tool failed", "agent", a.name, "function", call.Name, "error", err)
		}
		record.Err = err.Error()
		return map[string]any{"error": err.Error()}, record
	}
	response := toResponseMap(result)
	if rendered, err := json.Marshal(response); err == nil {
		record.Response = string(rendered)
	}
	return response, record
}

// RunAnonymous implements AnonymousAgent.
func (a *Agent) RunAnonymous(ctx context.Context, input any, apiResp *components.LLMResponse) (any, error) {
	req, err := anonymousInput(input)
	if err != nil {
		return nil, err
	}
	output := new(schema.Output)
	if err := a.Run(ctx, req, output, apiResp); err != nil {
		return nil, err
	}
	return output, nil
}

func anonymousInput(input any) (*schema.Input, error) {
	switch v := input.(type) {
	case *schema.Input:
		return v, nil
	case schema.Input:
		return &v, nil
	case string:
		return schema.NewInput(v), nil
	case schema.Schema:
		return schema.NewInput(v.String()), nil
	default:
		return nil, fmt.Errorf("agents: unsupported input type %T", input)
	}
}

// SystemPrompt renders the agent's system prompt.
func (a *Agent) SystemPrompt() string {
	return a.systemPromptGenerator.Generate()
}

func (a *Agent) buildModel() *genai.GenerativeModel {
	model := a.client.GenerativeModel(a.model)
	if sys := a.SystemPrompt(); sys != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(sys)},
		}
	}
	if decls := a.declarations(); len(decls) > 0 {
		model.Tools = []*genai.Tool{{FunctionDeclarations: decls}}
	}
	if a.temperature > 0 {
		model.SetTemperature(a.temperature)
	}
	if a.maxTokens > 0 {
		model.SetMaxOutputTokens(int32(a.maxTokens))
	}
	return model
}

func (a *Agent) geminiHistory() []*genai.Content {
	history := a.memory.History()
	out := make([]*genai.Content, 0, len(history))
	for _, msg := range history {
		content := new(genai.Content)
		msg.ToGemini(content)
		out = append(out, content)
	}
	return out
}

// splitResponse separates reply text from function calls.
func splitResponse(resp *genai.GenerateContentResponse) (string, []*genai.FunctionCall) {
	var (
		text  string
		calls []*genai.FunctionCall
	)
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			switch v := part.(type) {
			case genai.Text:
				text += string(v)
			case genai.FunctionCall:
				call := v
				calls = append(calls, &call)
			}
		}
		break
	}
	return text, calls
}

// toResponseMap renders a tool result as the map the API expects.
func toResponseMap(result any) map[string]any {
	bs, err := json.Marshal(result)
	if err != nil {
		return map[string]any{"error": fmt.Sprintf("encode result: %v", err)}
	}
	out := make(map[string]any)
	if err := json.Unmarshal(bs, &out); err != nil {
		var v any
		if err := json.Unmarshal(bs, &v); err != nil {
			return map[string]any{"result": string(bs)}
		}
		return map[string]any{"result": v}
	}
	return out
}
