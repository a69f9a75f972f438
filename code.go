package agentpack

import (
	"github.com/geminikit/agentpack/agents"
	"github.com/geminikit/agentpack/gemini"
	"github.com/geminikit/agentpack/tools/coderunner"
)

// NewCodeAgent returns an agent that writes code to files, executes them
// with the configured interpreter and reports the results.
func NewCodeAgent(clt *gemini.Client, opts ...Option) *agents.Agent {
	s := newSettings(opts)
	toolOpts := make([]coderunner.Option, 0, 1)
	if len(s.interpreter) > 0 {
		toolOpts = append(toolOpts, coderunner.WithInterpreter(s.interpreter))
	}
	tool := coderunner.New(toolOpts...)
	return agents.New(s.agentOptions(clt,
		"code",
		"You are a scripting agent designed to write, run, and manage code. "+
			"You can create scripts, save them to files, run them, and return the results. "+
			"You can also list and read previously saved files, allowing seamless execution of scripts in various environments.",
		[]string{
			"1. Write code as requested by the user.",
			"2. Save the code to a file and execute it.",
			"3. If requested, list all files in the base directory or run specific files.",
			"4. Ensure that the code output is returned to the user in a readable format, either as the printed value or a success message.",
			"5. Use markdown formatting for clear presentation of code, results, and errors.",
			"6. Notify the user if there are any errors during the script execution, including details about what went wrong.",
		},
		true,
		tool,
	)...)
}
