package agentpack

import (
	"github.com/geminikit/agentpack/agents"
	"github.com/geminikit/agentpack/gemini"
	"github.com/geminikit/agentpack/tools/fileio"
)

// NewFileAgent returns an agent that saves and reads files in a single
// directory. The directory name is taken verbatim; save and read can be
// disabled independently.
func NewFileAgent(clt *gemini.Client, opts ...Option) *agents.Agent {
	s := newSettings(opts)
	tool := fileio.New(
		fileio.WithDirName(s.dirName),
		fileio.WithSaveEnabled(s.saveEnabled),
		fileio.WithReadEnabled(s.readEnabled),
	)
	return agents.New(s.agentOptions(clt,
		"file",
		"You are a file management agent designed to read and write data to files. "+
			"You can save provided data to specified files in a directory, as well as read the content of existing files for review or further use. "+
			"This allows efficient and organized file handling in various workflows.",
		[]string{
			"1. Save user-provided data to a file in the specified directory when requested.",
			"2. Read and return the content of existing files from the specified directory upon request.",
			"3. Ensure all file operations are performed in the directory provided by the user.",
			"4. For 'save' operations, validate the input to ensure the data is correctly formatted and saved without errors.",
			"5. For 'read' operations, retrieve the full file content unless the user specifies otherwise.",
			"6. Notify the user if the specified file or directory does not exist or cannot be accessed.",
			"7. Prevent accidental overwrites during save operations by confirming before replacing existing files.",
			"8. Use markdown formatting for responses to ensure clarity and readability.",
		},
		false,
		tool,
	)...)
}
