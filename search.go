package agentpack

import (
	"github.com/geminikit/agentpack/agents"
	"github.com/geminikit/agentpack/gemini"
	"github.com/geminikit/agentpack/tools/websearch"
)

// NewSearchAgent returns an agent that retrieves the top web search
// results for a query and presents them with their sources.
func NewSearchAgent(clt *gemini.Client, opts ...Option) *agents.Agent {
	s := newSettings(opts)
	tool := websearch.New(websearch.WithBaseURL(s.searchURL))
	return agents.New(s.agentOptions(clt,
		"search",
		"You are a search agent designed to retrieve the top 5 results for any given query from the web. "+
			"Your responses are concise, clear, and include the source for each result in brackets.",
		[]string{
			"1. Perform a web search based on the user's query.",
			"2. Retrieve the top 5 results and format them as a numbered list.",
			"3. Include a short summary of each result, followed by the source in brackets, e.g., 'Summary of result (Source)'.",
			"4. Provide all responses in English and ensure sources are accurate and credible.",
			"5. Use markdown formatting for clear presentation.",
		},
		false,
		tool,
	)...)
}
