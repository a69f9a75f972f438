// Package brief generates system prompts from an agent brief: a background
// description, ordered working steps, and output instructions.
package brief

import (
	"fmt"
	"strings"

	"github.com/geminikit/agentpack/components/systemprompt"
)

// Generator is a background/steps/output system prompt generator
type Generator struct {
	systemprompt.BaseGenerator
	background         []string
	steps              []string
	outputInstructions []string
}

var _ systemprompt.Generator = (*Generator)(nil)

// New returns a new system prompt Generator
func New(options ...Option) *Generator {
	ret := new(Generator)
	for _, opt := range options {
		opt(ret)
	}
	if len(ret.background) == 0 {
		ret.background = []string{"You are a helpful assistant."}
	}
	return ret
}

func (g *Generator) Generate() string {
	sections := []struct {
		title string
		lines []string
	}{
		{"IDENTITY AND PURPOSE", g.background},
		{"INTERNAL ASSISTANT STEPS", g.steps},
		{"OUTPUT INSTRUCTIONS", g.outputInstructions},
	}
	parts := make([]string, 0, 8)
	for _, section := range sections {
		if len(section.lines) == 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("# %s", section.title))
		for _, line := range section.lines {
			parts = append(parts, fmt.Sprintf("- %s", line))
		}
		parts = append(parts, "")
	}
	if providers := g.ContextProviders(); len(providers) > 0 {
		parts = append(parts, "# EXTRA INFORMATION AND CONTEXT")
		for _, provider := range providers {
			if info := provider.Info(); info != "" {
				parts = append(parts, fmt.Sprintf("## %s", provider.Title()))
				parts = append(parts, info)
				parts = append(parts, "")
			}
		}
	}
	return strings.TrimSpace(strings.Join(parts, "\n"))
}
