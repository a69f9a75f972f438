package agentpack

import (
	"github.com/geminikit/agentpack/agents"
	"github.com/geminikit/agentpack/gemini"
)

// NewTeam returns an orchestrator that routes each request to the best
// suited member agent. An empty member list is allowed; such a team
// answers directly.
func NewTeam(clt *gemini.Client, members []agents.AnonymousAgent, opts ...Option) *agents.Team {
	s := newSettings(opts)
	agentOpts := s.agentOptions(clt,
		"team",
		"",
		[]string{
			"Ensure all responses are well-structured, accurate, and user-friendly.",
			"Always include credible and properly formatted sources for any information or data shared.",
			"Where appropriate, organize information into tables or bulleted lists for clarity and ease of understanding.",
			"Coordinate seamlessly with team agents to provide comprehensive and unified responses.",
			"Handle conflicting data by prioritizing accuracy and relevance, and mention discrepancies if necessary.",
			"Strive for a balance of brevity and detail, ensuring responses are both concise and informative.",
			"Maintain a professional tone, avoiding unnecessary jargon unless explicitly requested by the user.",
			"Use markdown formatting to enhance readability, including bold headings, tables, and bullet points.",
		},
		true,
		nil,
	)
	agentOpts = append(agentOpts, agents.WithMembers(members...))
	return agents.NewTeam(agentOpts...)
}
