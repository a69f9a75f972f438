// Package workspace is a tool for scaffolding new projects from templates
// and starting them.
package workspace

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"time"

	"github.com/geminikit/agentpack/schema"
	"github.com/geminikit/agentpack/tools"
)

var (
	ErrUnknownTemplate = errors.New("workspace: unknown template")
	ErrProjectExists   = errors.New("workspace: project already exists")
	ErrInvalidName     = errors.New("workspace: invalid project name")
)

// CreateInput is the schema for a project scaffolding request.
type CreateInput struct {
	schema.Base
	// Template is the project template to use.
	Template string `json:"template" jsonschema:"title=template,description=Project template to scaffold.,enum=llm-app,enum=api-app,enum=django-app,enum=streamlit-app" validate:"required"`
	// Name is the directory name of the new project.
	Name string `json:"name" jsonschema:"title=name,description=Name of the new project directory." validate:"required"`
}

func (s CreateInput) String() string {
	return schema.JSONString(s)
}

// CreateOutput reports the scaffolded project.
type CreateOutput struct {
	schema.Base
	// Name of the project
	Name string `json:"name" jsonschema:"title=name"`
	// Path is the project directory
	Path string `json:"path" jsonschema:"title=path"`
	// Files created from the template
	Files []string `json:"files,omitempty" jsonschema:"title=files"`
}

func (s CreateOutput) String() string {
	return schema.JSONString(s)
}

// StartInput is the schema for a project start request.
type StartInput struct {
	schema.Base
	// Name is the project to start.
	Name string `json:"name" jsonschema:"title=name,description=Name of the project to start." validate:"required"`
}

func (s StartInput) String() string {
	return schema.JSONString(s)
}

// ValidateOutput reports the workspace readiness check.
type ValidateOutput struct {
	schema.Base
	// Ready is true when the workspace root is usable
	Ready bool `json:"ready" jsonschema:"title=ready"`
	// Root is the workspace root directory
	Root string `json:"root" jsonschema:"title=root"`
	// Templates available for scaffolding
	Templates []string `json:"templates" jsonschema:"title=templates"`
}

func (s ValidateOutput) String() string {
	return schema.JSONString(s)
}

// StartOutput carries the start command result.
type StartOutput struct {
	schema.Base
	// Name of the project
	Name string `json:"name" jsonschema:"title=name"`
	// Stdout of the start command
	Stdout string `json:"stdout,omitempty" jsonschema:"title=stdout"`
	// Stderr of the start command
	Stderr string `json:"stderr,omitempty" jsonschema:"title=stderr"`
}

func (s StartOutput) String() string {
	return schema.JSONString(s)
}

type Config struct {
	tools.Config
	rootDir      string
	startCommand []string
	timeout      time.Duration
}

// Tool scaffolds and starts projects under a root directory.
type Tool struct {
	Config
}

var _ tools.AnonymousTool = (*Tool)(nil)

func New(opts ...Option) *Tool {
	ret := new(Tool)
	for _, opt := range opts {
		opt(&ret.Config)
	}
	if ret.Title() == "" {
		ret.SetTitle("WorkspaceTool")
	}
	if ret.Description() == "" {
		ret.SetDescription("Scaffolds new projects from templates and starts existing projects.")
	}
	if ret.rootDir == "" {
		ret.rootDir = "workspace"
	}
	if len(ret.startCommand) == 0 {
		ret.startCommand = []string{"sh", "-c", "ls"}
	}
	if ret.timeout == 0 {
		ret.timeout = 60 * time.Second
	}
	return ret
}

// RootDir returns the configured workspace root.
func (t *Tool) RootDir() string {
	return t.rootDir
}

// Create scaffolds a new project from a template. The project directory
// must not already exist.
func (t *Tool) Create(ctx context.Context, input *CreateInput) (*CreateOutput, error) {
	t.OnStart(ctx, t, input)
	out, err := t.create(input)
	if err != nil {
		t.OnError(ctx, t, input, err)
		return nil, err
	}
	t.OnEnd(ctx, t, input, out)
	return out, nil
}

func (t *Tool) create(input *CreateInput) (*CreateOutput, error) {
	tmpl, ok := builtinTemplates[input.Template]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTemplate, input.Template)
	}
	dir, err := t.projectDir(input.Name)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(dir); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrProjectExists, input.Name)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create project %q: %w", input.Name, err)
	}
	out := &CreateOutput{Name: input.Name, Path: dir}
	for name, content := range tmpl.Files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			return nil, fmt.Errorf("write %q: %w", name, err)
		}
		out.Files = append(out.Files, name)
	}
	sort.Strings(out.Files)
	return out, nil
}

// Start runs the configured start command inside the project directory.
func (t *Tool) Start(ctx context.Context, input *StartInput) (*StartOutput, error) {
	t.OnStart(ctx, t, input)
	out, err := t.start(ctx, input)
	if err != nil {
		t.OnError(ctx, t, input, err)
		return nil, err
	}
	t.OnEnd(ctx, t, input, out)
	return out, nil
}

func (t *Tool) start(ctx context.Context, input *StartInput) (*StartOutput, error) {
	dir, err := t.projectDir(input.Name)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("project %q: %w", input.Name, err)
	}
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	cmd := exec.CommandContext(ctx, t.startCommand[0], t.startCommand[1:]...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("start %q: %w: %s", input.Name, err, stderr.String())
	}
	return &StartOutput{Name: input.Name, Stdout: stdout.String(), Stderr: stderr.String()}, nil
}

// Validate checks that the workspace root is usable and all templates are
// well formed. Exposed to the model as validate_environment so it can
// confirm readiness before scaffolding.
func (t *Tool) Validate(ctx context.Context) (*ValidateOutput, error) {
	t.OnStart(ctx, t, nil)
	if err := os.MkdirAll(t.rootDir, 0o755); err != nil {
		err = fmt.Errorf("workspace root %q: %w", t.rootDir, err)
		t.OnError(ctx, t, nil, err)
		return nil, err
	}
	for name, tmpl := range builtinTemplates {
		if len(tmpl.Files) == 0 {
			err := fmt.Errorf("%w: %s has no files", ErrUnknownTemplate, name)
			t.OnError(ctx, t, nil, err)
			return nil, err
		}
	}
	out := &ValidateOutput{Ready: true, Root: t.rootDir, Templates: Templates()}
	t.OnEnd(ctx, t, nil, out)
	return out, nil
}

func (t *Tool) projectDir(name string) (string, error) {
	cleaned := filepath.Clean(name)
	if cleaned == "." || cleaned == ".." || filepath.IsAbs(cleaned) ||
		filepath.Dir(cleaned) != "." {
		return "", fmt.Errorf("%w: %s", ErrInvalidName, name)
	}
	return filepath.Join(t.rootDir, cleaned), nil
}

// Functions implements tools.AnonymousTool.
func (t *Tool) Functions() []tools.Function {
	return []tools.Function{
		{
			Name:        "create_project",
			Description: "Scaffold a new project from a template. Available templates: llm-app, api-app, django-app, streamlit-app.",
			Parameters:  tools.Reflect(&CreateInput{}),
			Call: func(ctx context.Context, args json.RawMessage) (any, error) {
				input := new(CreateInput)
				if err := tools.DecodeArgs(args, input); err != nil {
					return nil, err
				}
				return t.Create(ctx, input)
			},
		},
		{
			Name:        "validate_environment",
			Description: "Check that the workspace is ready for use and list the available templates.",
			Call: func(ctx context.Context, _ json.RawMessage) (any, error) {
				return t.Validate(ctx)
			},
		},
		{
			Name:        "start_project",
			Description: "Start an existing project in the workspace and return the command output.",
			Parameters:  tools.Reflect(&StartInput{}),
			Call: func(ctx context.Context, args json.RawMessage) (any, error) {
				input := new(StartInput)
				if err := tools.DecodeArgs(args, input); err != nil {
					return nil, err
				}
				return t.Start(ctx, input)
			},
		},
	}
}
