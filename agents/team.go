package agents

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/generative-ai-go/genai"

	"github.com/geminikit/agentpack/components"
	"github.com/geminikit/agentpack/schema"
)

var ErrUnknownMember = errors.New("agents: routed to unknown member")

// Team routes user requests to member agents. The leader model picks the
// member and phrases the task; the member produces the answer. A team
// with no members answers directly like a plain agent.
type Team struct {
	Agent
}

var (
	_ IAgent         = (*Team)(nil)
	_ AnonymousAgent = (*Team)(nil)
)

// NewTeam returns a configured Team.
func NewTeam(opts ...Option) *Team {
	ret := new(Team)
	ret.Config.init(opts...)
	return ret
}

// Members returns a copy of the member agents.
func (t *Team) Members() []AnonymousAgent {
	out := make([]AnonymousAgent, len(t.members))
	copy(out, t.members)
	return out
}

// routing is the leader's delegation decision.
type routing struct {
	Member string `json:"member"`
	Task   string `json:"task"`
}

// Run routes one request to a member and relays the answer.
func (t *Team) Run(ctx context.Context, input *schema.Input, output *schema.Output, apiResp *components.LLMResponse) error {
	if len(t.members) == 0 {
		return t.Agent.Run(ctx, input, output, apiResp)
	}
	if err := schema.Validate(input); err != nil {
		return err
	}
	if t.client == nil {
		return ErrMissingClient
	}
	decision, err := t.route(ctx, input, apiResp)
	if err != nil {
		return err
	}
	member := t.member(decision.Member)
	if member == nil {
		return fmt.Errorf("%w: %q", ErrUnknownMember, decision.Member)
	}
	if t.debugMode {
		slog.Debug("delegating", "team", t.name, "member", decision.Member, "task", decision.Task)
	}
	turnID := t.memory.NewTurn()
	t.memory.Add(components.UserRole, input)
	result, err := member.RunAnonymous(ctx, schema.NewInput(decision.Task), apiResp)
	if err != nil {
		t.memory.DeleteTurn(turnID)
		return fmt.Errorf("member %q: %w", decision.Member, err)
	}
	reply, trace := memberReply(result)
	output.Reply = reply
	if t.showToolCalls {
		output.ToolCalls = append([]schema.ToolCall{{
			Name:      fmt.Sprintf("transfer_to_%s", decision.Member),
			Arguments: schema.JSONString(decision),
		}}, trace...)
	}
	t.memory.Add(components.AssistantRole, output)
	return nil
}

// route asks the leader model to pick a member and phrase its task.
func (t *Team) route(ctx context.Context, input *schema.Input, apiResp *components.LLMResponse) (*routing, error) {
	names := make([]string, 0, len(t.members))
	var roster strings.Builder
	for _, member := range t.members {
		names = append(names, member.Name())
		fmt.Fprintf(&roster, "- %s: %s\n", member.Name(), member.Description())
	}
	model := t.client.GenerativeModel(t.model)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(t.routingPrompt(roster.String()))},
	}
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"member": {Type: genai.TypeString, Enum: names},
			"task":   {Type: genai.TypeString},
		},
		Required: []string{"member", "task"},
	}
	resp, err := model.GenerateContent(ctx, genai.Text(input.ChatMessage))
	if err != nil {
		return nil, fmt.Errorf("route request: %w", err)
	}
	if apiResp != nil {
		apiResp.FromGemini(resp)
		apiResp.Model = t.model
	}
	text, _ := splitResponse(resp)
	decision := new(routing)
	if err := json.Unmarshal([]byte(text), decision); err != nil {
		return nil, fmt.Errorf("parse routing decision %q: %w", text, err)
	}
	return decision, nil
}

func (t *Team) routingPrompt(roster string) string {
	var sb strings.Builder
	sb.WriteString("You lead a team of assistants. Pick the single member best suited to answer the user and phrase the task you hand over.\n")
	sb.WriteString("Members:\n")
	sb.WriteString(roster)
	if sys := t.SystemPrompt(); sys != "" {
		sb.WriteString("\n")
		sb.WriteString(sys)
	}
	return sb.String()
}

func (t *Team) member(name string) AnonymousAgent {
	for _, member := range t.members {
		if member.Name() == name {
			return member
		}
	}
	return nil
}

// RunAnonymous implements AnonymousAgent for nested teams.
func (t *Team) RunAnonymous(ctx context.Context, input any, apiResp *components.LLMResponse) (any, error) {
	req, err := anonymousInput(input)
	if err != nil {
		return nil, err
	}
	output := new(schema.Output)
	if err := t.Run(ctx, req, output, apiResp); err != nil {
		return nil, err
	}
	return output, nil
}

func memberReply(result any) (string, []schema.ToolCall) {
	switch v := result.(type) {
	case *schema.Output:
		return v.Reply, v.ToolCalls
	case schema.Output:
		return v.Reply, v.ToolCalls
	case schema.Schema:
		return v.String(), nil
	default:
		return fmt.Sprintf("%v", v), nil
	}
}
