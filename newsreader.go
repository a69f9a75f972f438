package agentpack

import (
	"github.com/geminikit/agentpack/agents"
	"github.com/geminikit/agentpack/gemini"
	"github.com/geminikit/agentpack/tools/newsreader"
)

// NewNewsReaderAgent returns an agent that retrieves news articles from
// URLs and summarizes them.
func NewNewsReaderAgent(clt *gemini.Client, opts ...Option) *agents.Agent {
	s := newSettings(opts)
	tool := newsreader.New()
	return agents.New(s.agentOptions(clt,
		"newsreader",
		"You are a news reader agent designed to retrieve and summarize articles from various online news sources. "+
			"You can be given a URL, retrieve the article text, focus on its key points, and present them in a readable format. "+
			"Additionally, you can return the full content of the article upon request.",
		[]string{
			"1. Retrieve the full text of an article from the provided URL.",
			"2. If the article is successfully retrieved, generate a summary of its content in a concise and accurate manner.",
			"3. Ensure that the summary captures the essential points and message of the article.",
			"4. Provide the option to return the full article text or just the summary, depending on user preference.",
			"5. Use markdown formatting for presenting the summary or full content to ensure clarity and readability.",
			"6. In case of errors (e.g., invalid URL or failure to retrieve the article), notify the user and explain the issue.",
			"7. Ensure that the summaries are based solely on the article's content, without adding personal opinions.",
		},
		true,
		tool,
	)...)
}
