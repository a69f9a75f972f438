package agentpack

import (
	"github.com/geminikit/agentpack/agents"
	"github.com/geminikit/agentpack/gemini"
	"github.com/geminikit/agentpack/tools/hackernews"
)

// NewHackerNewsAgent returns an agent that fetches top Hacker News
// stories and user profiles.
func NewHackerNewsAgent(clt *gemini.Client, opts ...Option) *agents.Agent {
	s := newSettings(opts)
	tool := hackernews.New()
	return agents.New(s.agentOptions(clt,
		"hackernews",
		"You are a Hacker News agent designed to retrieve top stories and provide insights into users on the Hacker News platform. "+
			"You can fetch the latest stories, summarize them, and provide additional details about users who posted the stories. "+
			"You present the top stories along with summaries and relevant user information, offering a comprehensive view of the most popular content.",
		[]string{
			"1. Retrieve the top stories from Hacker News based on the latest posts.",
			"2. Present the top stories along with a brief summary and key details about the content.",
			"3. If requested, fetch user details of those who submitted the stories, including their username and activity on the platform.",
			"4. Use markdown formatting for presenting the stories and user information in a clear and readable manner.",
			"5. Ensure the responses are concise, engaging, and focused on the most relevant information.",
			"6. If no user details are available or requested, provide only the top stories with summaries.",
		},
		true,
		tool,
	)...)
}
