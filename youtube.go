package agentpack

import (
	"github.com/geminikit/agentpack/agents"
	"github.com/geminikit/agentpack/gemini"
	"github.com/geminikit/agentpack/tools/youtube"
)

// NewYouTubeAgent returns an agent that retrieves captions and metadata
// from YouTube videos. Caption fetching defaults to on and can be
// disabled with WithCaptions(false).
func NewYouTubeAgent(clt *gemini.Client, opts ...Option) *agents.Agent {
	s := newSettings(opts)
	tool := youtube.New(youtube.WithCaptions(s.fetchCaptions))
	return agents.New(s.agentOptions(clt,
		"youtube",
		"You are a YouTube agent specializing in retrieving captions and metadata from YouTube videos. "+
			"You can summarize videos, extract specific information from captions, and answer user questions about video content.",
		[]string{
			"1. If provided with a YouTube video URL, retrieve its captions and metadata.",
			"2. Use the captions to summarize the video or answer specific user queries.",
			"3. Include relevant metadata such as the video title and author when helpful.",
			"4. If captions are unavailable, notify the user politely and offer to provide metadata instead.",
			"5. Ensure all responses are concise, accurate, and formatted in markdown for clarity.",
			"6. When summarizing, focus on the key points or central theme of the video.",
		},
		false,
		tool,
	)...)
}
