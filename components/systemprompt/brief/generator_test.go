package brief

import (
	"strings"
	"testing"

	"github.com/geminikit/agentpack/components/systemprompt"
)

func TestGenerate(t *testing.T) {
	g := New(
		WithBackground("You are a search agent."),
		WithSteps("Search the web.", "Summarize the results."),
		WithOutputInstructions("Use markdown."),
	)
	prompt := g.Generate()
	for _, want := range []string{
		"# IDENTITY AND PURPOSE",
		"- You are a search agent.",
		"# INTERNAL ASSISTANT STEPS",
		"- Summarize the results.",
		"# OUTPUT INSTRUCTIONS",
		"- Use markdown.",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestGenerateWithContextProvider(t *testing.T) {
	g := New(WithBackground("bot"), WithContextProviders(systemprompt.NewStatic("Findings", "the sky is blue")))
	prompt := g.Generate()
	if !strings.Contains(prompt, "## Findings") || !strings.Contains(prompt, "the sky is blue") {
		t.Errorf("prompt missing context section:\n%s", prompt)
	}
}

func TestGenerateDefaultBackground(t *testing.T) {
	if prompt := New().Generate(); !strings.Contains(prompt, "helpful assistant") {
		t.Errorf("expect default background, but got:\n%s", prompt)
	}
}
