package agentpack

import (
	"github.com/geminikit/agentpack/agents"
	"github.com/geminikit/agentpack/gemini"
	"github.com/geminikit/agentpack/tools/workspace"
)

// NewWorkspaceAgent returns an agent that scaffolds new projects from
// templates and starts existing ones.
func NewWorkspaceAgent(clt *gemini.Client, opts ...Option) *agents.Agent {
	s := newSettings(opts)
	tool := workspace.New()
	return agents.New(s.agentOptions(clt,
		"workspace",
		"You are a workspace management agent designed to create, manage, and start application workspaces. "+
			"You can create new applications from templates (like llm-app, api-app, django-app, and streamlit-app) "+
			"and start existing workspaces for users, streamlining the process of managing applications.",
		[]string{
			"1. Validate that the workspace environment is ready before creating or starting workspaces.",
			"2. Create new workspaces for various application templates (e.g., llm-app, api-app, django-app, streamlit-app).",
			"3. Start a workspace for a user when given the workspace name.",
			"4. Ensure that all workspace operations (creation, starting) are completed successfully before proceeding with further tasks.",
			"5. Provide informative and concise responses to the user, including the status of workspace creation and operations.",
			"6. Use markdown formatting to enhance readability and structure of responses.",
		},
		true,
		tool,
	)...)
}
