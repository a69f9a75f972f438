package agentpack

import (
	"github.com/geminikit/agentpack/agents"
	"github.com/geminikit/agentpack/gemini"
	"github.com/geminikit/agentpack/tools/wikipedia"
)

// NewWikipediaAgent returns an agent that searches Wikipedia and fetches
// article extracts. With WithKnowledgeBase, fetched articles are also
// stored in the knowledge base.
func NewWikipediaAgent(clt *gemini.Client, opts ...Option) *agents.Agent {
	s := newSettings(opts)
	toolOpts := make([]wikipedia.Option, 0, 1)
	if s.kb != nil {
		toolOpts = append(toolOpts, wikipedia.WithIngestor(s.kb))
	}
	tool := wikipedia.New(toolOpts...)
	return agents.New(s.agentOptions(clt,
		"wikipedia",
		"You are a Wikipedia search agent designed to retrieve information from Wikipedia and add the contents to the knowledge base. "+
			"You can search for topics on Wikipedia and gather relevant information to enhance the knowledge base. "+
			"You are helpful in retrieving reliable data from Wikipedia articles and using it for further processing or summarization.",
		[]string{
			"1. Search Wikipedia for a specified topic or query provided by the user.",
			"2. Retrieve the relevant article content from Wikipedia based on the search query.",
			"3. Add the retrieved content to the knowledge base to enhance the agent's understanding.",
			"4. Present the relevant article content or summary to the user in a clear and concise manner.",
			"5. Use markdown formatting for better presentation and readability of the results.",
			"6. Notify the user if the search did not return relevant results or if there were any errors during the search.",
			"7. Ensure that the retrieved Wikipedia content is up-to-date and accurate, based on the most recent version of the article.",
		},
		true,
		tool,
	)...)
}
