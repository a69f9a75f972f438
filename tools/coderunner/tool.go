// Package coderunner is a tool for saving code to files and executing them
// with a configured interpreter.
package coderunner

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/geminikit/agentpack/schema"
	"github.com/geminikit/agentpack/tools"
)

var (
	ErrSaveDisabled    = errors.New("coderunner: saving and running code is disabled")
	ErrInvalidFileName = errors.New("coderunner: file name escapes the base directory")
)

// SaveAndRunInput is the schema for saving a code file and executing it.
type SaveAndRunInput struct {
	schema.Base
	// FileName to save the code under.
	FileName string `json:"file_name" jsonschema:"title=file_name,description=Name of the file to save the code to." validate:"required"`
	// Code is the program source.
	Code string `json:"code" jsonschema:"title=code,description=Code to save and execute." validate:"required"`
	// Overwrite allows replacing an existing file.
	Overwrite bool `json:"overwrite,omitempty" jsonschema:"title=overwrite,description=Whether to overwrite an existing file."`
}

func (s SaveAndRunInput) String() string {
	return schema.JSONString(s)
}

// RunFileInput is the schema for executing an existing file.
type RunFileInput struct {
	schema.Base
	// FileName of the file to execute.
	FileName string `json:"file_name" jsonschema:"title=file_name,description=Name of the file to execute." validate:"required"`
}

func (s RunFileInput) String() string {
	return schema.JSONString(s)
}

// RunOutput carries the result of an execution.
type RunOutput struct {
	schema.Base
	// FileName that was executed
	FileName string `json:"file_name" jsonschema:"title=file_name"`
	// Stdout of the run
	Stdout string `json:"stdout,omitempty" jsonschema:"title=stdout"`
	// Stderr of the run
	Stderr string `json:"stderr,omitempty" jsonschema:"title=stderr"`
	// ExitCode of the run
	ExitCode int `json:"exit_code" jsonschema:"title=exit_code"`
}

func (s RunOutput) String() string {
	return schema.JSONString(s)
}

// ReadInput is the schema for reading a saved file.
type ReadInput struct {
	schema.Base
	// FileName of the file to read.
	FileName string `json:"file_name" jsonschema:"title=file_name,description=Name of the file to read." validate:"required"`
}

func (s ReadInput) String() string {
	return schema.JSONString(s)
}

// ReadOutput carries a saved file's content.
type ReadOutput struct {
	schema.Base
	FileName string `json:"file_name" jsonschema:"title=file_name"`
	Content  string `json:"content" jsonschema:"title=content"`
}

func (s ReadOutput) String() string {
	return schema.JSONString(s)
}

// ListOutput lists the saved files.
type ListOutput struct {
	schema.Base
	Files []string `json:"files,omitempty" jsonschema:"title=files"`
}

func (s ListOutput) String() string {
	return schema.JSONString(s)
}

type Config struct {
	tools.Config
	baseDir     string
	interpreter []string
	timeout     time.Duration
	saveAndRun  bool
}

// Tool saves and executes code files inside a base directory.
type Tool struct {
	Config
}

var _ tools.AnonymousTool = (*Tool)(nil)

func New(opts ...Option) *Tool {
	ret := new(Tool)
	ret.saveAndRun = true
	for _, opt := range opts {
		opt(&ret.Config)
	}
	if ret.Title() == "" {
		ret.SetTitle("CodeRunnerTool")
	}
	if ret.Description() == "" {
		ret.SetDescription("Saves code to files and executes them, returning stdout, stderr and the exit code.")
	}
	if ret.baseDir == "" {
		ret.baseDir = "code"
	}
	if len(ret.interpreter) == 0 {
		ret.interpreter = []string{"python3"}
	}
	if ret.timeout == 0 {
		ret.timeout = 30 * time.Second
	}
	return ret
}

// BaseDir returns the configured code directory.
func (t *Tool) BaseDir() string {
	return t.baseDir
}

// SaveAndRunEnabled reports whether code may be written before execution.
func (t *Tool) SaveAndRunEnabled() bool {
	return t.saveAndRun
}

// SaveAndRun writes the code to a file and executes it.
func (t *Tool) SaveAndRun(ctx context.Context, input *SaveAndRunInput) (*RunOutput, error) {
	t.OnStart(ctx, t, input)
	out, err := t.saveAndRunFile(ctx, input)
	if err != nil {
		t.OnError(ctx, t, input, err)
		return nil, err
	}
	t.OnEnd(ctx, t, input, out)
	return out, nil
}

func (t *Tool) saveAndRunFile(ctx context.Context, input *SaveAndRunInput) (*RunOutput, error) {
	if !t.saveAndRun {
		return nil, ErrSaveDisabled
	}
	path, err := t.resolve(input.FileName)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(t.baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create directory %q: %w", t.baseDir, err)
	}
	if !input.Overwrite {
		if _, err := os.Stat(path); err == nil {
			return nil, fmt.Errorf("file %q already exists", input.FileName)
		}
	}
	if err := os.WriteFile(path, []byte(input.Code), 0o644); err != nil {
		return nil, fmt.Errorf("write %q: %w", input.FileName, err)
	}
	return t.execute(ctx, input.FileName)
}

// RunFile executes an already saved file.
func (t *Tool) RunFile(ctx context.Context, input *RunFileInput) (*RunOutput, error) {
	t.OnStart(ctx, t, input)
	if _, err := t.resolve(input.FileName); err != nil {
		t.OnError(ctx, t, input, err)
		return nil, err
	}
	out, err := t.execute(ctx, input.FileName)
	if err != nil {
		t.OnError(ctx, t, input, err)
		return nil, err
	}
	t.OnEnd(ctx, t, input, out)
	return out, nil
}

func (t *Tool) execute(ctx context.Context, fileName string) (*RunOutput, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	args := append(append([]string{}, t.interpreter[1:]...), fileName)
	cmd := exec.CommandContext(ctx, t.interpreter[0], args...)
	cmd.Dir = t.baseDir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	out := &RunOutput{
		FileName: fileName,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
	}
	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		// Non-zero exits are results, not tool failures.
		out.ExitCode = exitErr.ExitCode()
	default:
		return nil, fmt.Errorf("run %q: %w", fileName, err)
	}
	return out, nil
}

// ReadFile returns a saved file's content.
func (t *Tool) ReadFile(ctx context.Context, input *ReadInput) (*ReadOutput, error) {
	t.OnStart(ctx, t, input)
	path, err := t.resolve(input.FileName)
	if err != nil {
		t.OnError(ctx, t, input, err)
		return nil, err
	}
	bs, err := os.ReadFile(path)
	if err != nil {
		err = fmt.Errorf("read %q: %w", input.FileName, err)
		t.OnError(ctx, t, input, err)
		return nil, err
	}
	out := &ReadOutput{FileName: input.FileName, Content: string(bs)}
	t.OnEnd(ctx, t, input, out)
	return out, nil
}

// ListFiles returns the saved file names.
func (t *Tool) ListFiles(ctx context.Context) (*ListOutput, error) {
	entries, err := os.ReadDir(t.baseDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return new(ListOutput), nil
		}
		return nil, fmt.Errorf("list %q: %w", t.baseDir, err)
	}
	out := new(ListOutput)
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			out.Files = append(out.Files, entry.Name())
		}
	}
	return out, nil
}

func (t *Tool) resolve(name string) (string, error) {
	cleaned := filepath.Clean(name)
	if cleaned == "." || cleaned == ".." || filepath.IsAbs(cleaned) ||
		strings.ContainsRune(cleaned, filepath.Separator) {
		return "", fmt.Errorf("%w: %s", ErrInvalidFileName, name)
	}
	return filepath.Join(t.baseDir, cleaned), nil
}

// Functions implements tools.AnonymousTool. The save_and_run function is
// only declared when enabled.
func (t *Tool) Functions() []tools.Function {
	fns := make([]tools.Function, 0, 4)
	if t.saveAndRun {
		fns = append(fns, tools.Function{
			Name:        "save_and_run",
			Description: "Save code to a file and execute it, returning stdout, stderr and the exit code.",
			Parameters:  tools.Reflect(&SaveAndRunInput{}),
			Call: func(ctx context.Context, args json.RawMessage) (any, error) {
				input := new(SaveAndRunInput)
				if err := tools.DecodeArgs(args, input); err != nil {
					return nil, err
				}
				return t.SaveAndRun(ctx, input)
			},
		})
	}
	fns = append(fns, tools.Function{
		Name:        "run_file",
		Description: "Execute an already saved code file and return its output.",
		Parameters:  tools.Reflect(&RunFileInput{}),
		Call: func(ctx context.Context, args json.RawMessage) (any, error) {
			input := new(RunFileInput)
			if err := tools.DecodeArgs(args, input); err != nil {
				return nil, err
			}
			return t.RunFile(ctx, input)
		},
	}, tools.Function{
		Name:        "read_file",
		Description: "Read a saved code file.",
		Parameters:  tools.Reflect(&ReadInput{}),
		Call: func(ctx context.Context, args json.RawMessage) (any, error) {
			input := new(ReadInput)
			if err := tools.DecodeArgs(args, input); err != nil {
				return nil, err
			}
			return t.ReadFile(ctx, input)
		},
	}, tools.Function{
		Name:        "list_files",
		Description: "List the saved code files.",
		Parameters:  tools.Reflect(&struct{}{}),
		Call: func(ctx context.Context, args json.RawMessage) (any, error) {
			return t.ListFiles(ctx)
		},
	})
	return fns
}
