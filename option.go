package agentpack

import (
	"github.com/geminikit/agentpack/agents"
	"github.com/geminikit/agentpack/gemini"
	"github.com/geminikit/agentpack/knowledge"
	"github.com/geminikit/agentpack/tools"
)

// DefaultModel is the model every factory binds unless overridden.
const DefaultModel = agents.DefaultModel

// DefaultSearchURL is the SearxNG endpoint the search agent queries
// unless overridden.
const DefaultSearchURL = "http://localhost:8080"

// Option configures a factory.
type Option func(*settings)

type settings struct {
	model         string
	showToolCalls bool
	debugMode     bool
	markdown      bool
	markdownSet   bool
	temperature   float32
	maxTokens     int

	fetchCaptions bool
	dirName       string
	saveEnabled   bool
	readEnabled   bool
	searchURL     string
	interpreter   []string
	kb            *knowledge.Base
}

func newSettings(opts []Option) *settings {
	s := &settings{
		fetchCaptions: true,
		dirName:       "files",
		saveEnabled:   true,
		readEnabled:   true,
		searchURL:     DefaultSearchURL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// agentOptions assembles the shared agent configuration. Factories with a
// different markdown default pass it here; an explicit WithMarkdown wins.
func (s *settings) agentOptions(clt *gemini.Client, name, description string, instructions []string, markdownDefault bool, tool tools.AnonymousTool) []agents.Option {
	markdown := markdownDefault
	if s.markdownSet {
		markdown = s.markdown
	}
	opts := []agents.Option{
		agents.WithClient(clt),
		agents.WithName(name),
		agents.WithDescription(description),
		agents.WithInstructions(instructions...),
		agents.WithShowToolCalls(s.showToolCalls),
		agents.WithDebugMode(s.debugMode),
		agents.WithMarkdown(markdown),
	}
	if s.model != "" {
		opts = append(opts, agents.WithModel(s.model))
	}
	if tool != nil {
		opts = append(opts, agents.WithTools(tool))
	}
	if s.temperature > 0 {
		opts = append(opts, agents.WithTemperature(s.temperature))
	}
	if s.maxTokens > 0 {
		opts = append(opts, agents.WithMaxTokens(s.maxTokens))
	}
	return opts
}

// WithModel overrides the default model.
func WithModel(model string) Option {
	return func(s *settings) {
		s.model = model
	}
}

// WithShowToolCalls includes the tool call trace in replies.
func WithShowToolCalls(v bool) Option {
	return func(s *settings) {
		s.showToolCalls = v
	}
}

// WithDebugMode emits debug log records during turns.
func WithDebugMode(v bool) Option {
	return func(s *settings) {
		s.debugMode = v
	}
}

// WithMarkdown overrides the factory's markdown default.
func WithMarkdown(v bool) Option {
	return func(s *settings) {
		s.markdown = v
		s.markdownSet = true
	}
}

// WithCaptions toggles caption fetching for the YouTube agent.
func WithCaptions(v bool) Option {
	return func(s *settings) {
		s.fetchCaptions = v
	}
}

// WithDirName sets the working directory for the file agent. The value
// is used verbatim.
func WithDirName(dir string) Option {
	return func(s *settings) {
		s.dirName = dir
	}
}

// WithSaveEnabled toggles saving for the file agent.
func WithSaveEnabled(v bool) Option {
	return func(s *settings) {
		s.saveEnabled = v
	}
}

// WithReadEnabled toggles reading for the file agent.
func WithReadEnabled(v bool) Option {
	return func(s *settings) {
		s.readEnabled = v
	}
}

// WithSearchURL sets the SearxNG endpoint for the search agent.
func WithSearchURL(u string) Option {
	return func(s *settings) {
		s.searchURL = u
	}
}

// WithInterpreter sets the interpreter command for the code agent.
func WithInterpreter(cmd []string) Option {
	return func(s *settings) {
		s.interpreter = cmd
	}
}

// WithKnowledgeBase feeds articles fetched by the Wikipedia agent into a
// knowledge base.
func WithKnowledgeBase(kb *knowledge.Base) Option {
	return func(s *settings) {
		s.kb = kb
	}
}

// WithTemperature sets the sampling temperature.
func WithTemperature(v float32) Option {
	return func(s *settings) {
		s.temperature = v
	}
}

// WithMaxTokens bounds the reply length.
func WithMaxTokens(n int) Option {
	return func(s *settings) {
		s.maxTokens = n
	}
}
