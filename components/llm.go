package components

import (
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
)

// LLMResponse is the provider chat response envelope.
type LLMResponse struct {
	ID        string      `json:"id,omitempty"`
	Role      MessageRole `json:"role,omitempty"`
	Model     string      `json:"model,omitempty"`
	Usage     *LLMUsage   `json:"usage,omitempty"`
	Timestamp int64       `json:"ts,omitempty"`
	Details   any         `json:"content,omitempty"`
}

// FromGemini converts a response from the Gemini API. The API carries no
// response ID, so one is generated.
func (r *LLMResponse) FromGemini(v *genai.GenerateContentResponse) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	r.Role = AssistantRole
	r.Timestamp = time.Now().Unix()
	if meta := v.UsageMetadata; meta != nil {
		usage := &LLMUsage{
			InputTokens:  int64(meta.PromptTokenCount),
			OutputTokens: int64(meta.CandidatesTokenCount),
		}
		if r.Usage == nil {
			r.Usage = usage
		} else {
			r.Usage.Merge(usage)
		}
	}
	r.Details = v.Candidates
}

type LLMUsage struct {
	InputTokens  int64 `json:"input_tokens,omitempty"`
	OutputTokens int64 `json:"output_tokens,omitempty"`
}

func (u *LLMUsage) Merge(v *LLMUsage) {
	if v == nil {
		return
	}
	u.InputTokens += v.InputTokens
	u.OutputTokens += v.OutputTokens
}
