package agents

import (
	"github.com/geminikit/agentpack/components"
	"github.com/geminikit/agentpack/components/systemprompt"
	"github.com/geminikit/agentpack/components/systemprompt/brief"
	"github.com/geminikit/agentpack/gemini"
	"github.com/geminikit/agentpack/tools"
)

// Config carries the agent settings applied through Options.
type Config struct {
	client       *gemini.Client
	model        string
	name         string
	description  string
	instructions []string
	tools        []tools.AnonymousTool
	members      []AnonymousAgent
	functions    map[string]tools.Function

	showToolCalls bool
	debugMode     bool
	markdown      bool
	temperature   float32
	maxTokens     int

	memory                *components.Memory
	systemPromptGenerator systemprompt.Generator
}

func (c *Config) init(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.model == "" {
		c.model = DefaultModel
	}
	if c.memory == nil {
		c.memory = components.NewMemory(0)
	}
	if c.systemPromptGenerator == nil {
		c.systemPromptGenerator = c.buildSystemPromptGenerator()
	}
	c.functions = indexFunctions(c.tools)
}

func (c *Config) buildSystemPromptGenerator() systemprompt.Generator {
	briefOpts := make([]brief.Option, 0, 3)
	if c.description != "" {
		briefOpts = append(briefOpts, brief.WithBackground(c.description))
	}
	if len(c.instructions) > 0 {
		briefOpts = append(briefOpts, brief.WithSteps(c.instructions...))
	}
	if c.markdown {
		briefOpts = append(briefOpts, brief.WithOutputInstructions("Format every response in markdown."))
	}
	return brief.New(briefOpts...)
}

// Name returns the agent name.
func (c *Config) Name() string {
	return c.name
}

// Description returns the agent description.
func (c *Config) Description() string {
	return c.description
}

// Model returns the bound model name.
func (c *Config) Model() string {
	return c.model
}

// Instructions returns a copy of the working instructions.
func (c *Config) Instructions() []string {
	out := make([]string, len(c.instructions))
	copy(out, c.instructions)
	return out
}

// Tools returns a copy of the tool bindings.
func (c *Config) Tools() []tools.AnonymousTool {
	out := make([]tools.AnonymousTool, len(c.tools))
	copy(out, c.tools)
	return out
}

// ShowToolCalls reports whether replies carry the tool call trace.
func (c *Config) ShowToolCalls() bool {
	return c.showToolCalls
}

// DebugMode reports whether debug records are emitted.
func (c *Config) DebugMode() bool {
	return c.debugMode
}

// Markdown reports whether replies are requested in markdown.
func (c *Config) Markdown() bool {
	return c.markdown
}

// Memory returns the agent chat memory.
func (c *Config) Memory() *components.Memory {
	return c.memory
}

// SystemPromptGenerator returns the configured generator.
func (c *Config) SystemPromptGenerator() systemprompt.Generator {
	return c.systemPromptGenerator
}
