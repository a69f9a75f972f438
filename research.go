package agentpack

import (
	"github.com/geminikit/agentpack/agents"
	"github.com/geminikit/agentpack/gemini"
	"github.com/geminikit/agentpack/tools/arxiv"
)

// NewResearchAgent returns an agent that searches arXiv for academic
// publications and summarizes what it finds.
func NewResearchAgent(clt *gemini.Client, opts ...Option) *agents.Agent {
	s := newSettings(opts)
	tool := arxiv.New()
	return agents.New(s.agentOptions(clt,
		"research",
		"You are a research search agent designed to retrieve academic publications based on user queries. "+
			"You can search for scholarly articles, summarize key findings, and provide access to papers and metadata. "+
			"You provide detailed information about the papers, including titles, authors, summaries, and links to the full text or downloads when available.",
		[]string{
			"1. Perform a search based on the user's query for relevant academic publications.",
			"2. Retrieve the top articles and present the findings in a list format, including the paper title, authors, and summary.",
			"3. Provide the publication's metadata and relevant links when available.",
			"4. If the user requests, provide access to the full text or a downloadable version of the paper, if possible.",
			"5. Ensure all responses are clear, concise, and presented in markdown for readability.",
			"6. When searching, prioritize scholarly and credible sources.",
		},
		false,
		tool,
	)...)
}
