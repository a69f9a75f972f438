// Package fileio is a tool for saving and reading files inside a single
// configured directory. Save and read permissions are independent toggles
// enforced locally: a disabled operation is never declared to the model
// and returns an error if invoked anyway.
package fileio

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/geminikit/agentpack/schema"
	"github.com/geminikit/agentpack/tools"
)

var (
	ErrSaveDisabled    = errors.New("fileio: saving files is disabled")
	ErrReadDisabled    = errors.New("fileio: reading files is disabled")
	ErrFileExists      = errors.New("fileio: file already exists")
	ErrInvalidFileName = errors.New("fileio: file name escapes the configured directory")
)

// SaveInput is the schema for a save request.
type SaveInput struct {
	schema.Base
	// FileName is the target file name inside the configured directory.
	FileName string `json:"file_name" jsonschema:"title=file_name,description=Name of the file to save." validate:"required"`
	// Data is the file content to write.
	Data string `json:"data" jsonschema:"title=data,description=Content to write to the file." validate:"required"`
	// Overwrite allows replacing an existing file.
	Overwrite bool `json:"overwrite,omitempty" jsonschema:"title=overwrite,description=Whether to overwrite an existing file."`
}

func (s SaveInput) String() string {
	return schema.JSONString(s)
}

// SaveOutput reports the saved file location.
type SaveOutput struct {
	schema.Base
	// FileName of the saved file
	FileName string `json:"file_name" jsonschema:"title=file_name"`
	// Bytes written
	Bytes int `json:"bytes" jsonschema:"title=bytes"`
}

func (s SaveOutput) String() string {
	return schema.JSONString(s)
}

// ReadInput is the schema for a read request.
type ReadInput struct {
	schema.Base
	// FileName is the file to read from the configured directory.
	FileName string `json:"file_name" jsonschema:"title=file_name,description=Name of the file to read." validate:"required"`
}

func (s ReadInput) String() string {
	return schema.JSONString(s)
}

// ReadOutput carries the file content and its detected content type.
type ReadOutput struct {
	schema.Base
	// FileName of the file
	FileName string `json:"file_name" jsonschema:"title=file_name"`
	// Content of the file
	Content string `json:"content" jsonschema:"title=content"`
	// ContentType is the detected MIME type
	ContentType string `json:"content_type,omitempty" jsonschema:"title=content_type"`
}

func (s ReadOutput) String() string {
	return schema.JSONString(s)
}

// ListOutput lists the files in the configured directory.
type ListOutput struct {
	schema.Base
	Files []string `json:"files,omitempty" jsonschema:"title=files"`
}

func (s ListOutput) String() string {
	return schema.JSONString(s)
}

type Config struct {
	tools.Config
	dirName     string
	saveEnabled bool
	readEnabled bool
}

// Tool manages files inside one directory.
type Tool struct {
	Config
}

var _ tools.AnonymousTool = (*Tool)(nil)

func New(opts ...Option) *Tool {
	ret := new(Tool)
	ret.saveEnabled = true
	ret.readEnabled = true
	ret.dirName = "files"
	for _, opt := range opts {
		opt(&ret.Config)
	}
	if ret.Title() == "" {
		ret.SetTitle("FileTool")
	}
	if ret.Description() == "" {
		ret.SetDescription("Saves data to files and reads existing files in a single directory.")
	}
	return ret
}

// DirName returns the configured directory verbatim.
func (t *Tool) DirName() string {
	return t.dirName
}

// SaveEnabled reports whether saving is permitted.
func (t *Tool) SaveEnabled() bool {
	return t.saveEnabled
}

// ReadEnabled reports whether reading is permitted.
func (t *Tool) ReadEnabled() bool {
	return t.readEnabled
}

// Save writes data to a file in the configured directory. Existing files
// are not overwritten unless requested.
func (t *Tool) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	t.OnStart(ctx, t, input)
	out, err := t.save(input)
	if err != nil {
		t.OnError(ctx, t, input, err)
		return nil, err
	}
	t.OnEnd(ctx, t, input, out)
	return out, nil
}

func (t *Tool) save(input *SaveInput) (*SaveOutput, error) {
	if !t.saveEnabled {
		return nil, ErrSaveDisabled
	}
	path, err := t.resolve(input.FileName)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(t.dirName, 0o755); err != nil {
		return nil, fmt.Errorf("create directory %q: %w", t.dirName, err)
	}
	if !input.Overwrite {
		if _, err := os.Stat(path); err == nil {
			return nil, fmt.Errorf("%w: %s", ErrFileExists, input.FileName)
		}
	}
	if err := os.WriteFile(path, []byte(input.Data), 0o644); err != nil {
		return nil, fmt.Errorf("write %q: %w", input.FileName, err)
	}
	return &SaveOutput{FileName: input.FileName, Bytes: len(input.Data)}, nil
}

// Read returns the content of a file from the configured directory.
func (t *Tool) Read(ctx context.Context, input *ReadInput) (*ReadOutput, error) {
	t.OnStart(ctx, t, input)
	out, err := t.read(input)
	if err != nil {
		t.OnError(ctx, t, input, err)
		return nil, err
	}
	t.OnEnd(ctx, t, input, out)
	return out, nil
}

func (t *Tool) read(input *ReadInput) (*ReadOutput, error) {
	if !t.readEnabled {
		return nil, ErrReadDisabled
	}
	path, err := t.resolve(input.FileName)
	if err != nil {
		return nil, err
	}
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", input.FileName, err)
	}
	out := &ReadOutput{FileName: input.FileName, Content: string(bs)}
	if mtype := mimetype.Detect(bs); mtype != nil {
		out.ContentType = mtype.String()
	}
	return out, nil
}

// List returns the file names in the configured directory.
func (t *Tool) List(ctx context.Context) (*ListOutput, error) {
	if !t.readEnabled {
		return nil, ErrReadDisabled
	}
	entries, err := os.ReadDir(t.dirName)
	if err != nil {
		return nil, fmt.Errorf("list %q: %w", t.dirName, err)
	}
	out := new(ListOutput)
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			out.Files = append(out.Files, entry.Name())
		}
	}
	return out, nil
}

// Functions implements tools.AnonymousTool. Disabled operations are not
// declared.
func (t *Tool) Functions() []tools.Function {
	fns := make([]tools.Function, 0, 3)
	if t.saveEnabled {
		fns = append(fns, tools.Function{
			Name:        "save_file",
			Description: "Save data to a file in the working directory. Existing files are not overwritten unless overwrite is set.",
			Parameters:  tools.Reflect(&SaveInput{}),
			Call: func(ctx context.Context, args json.RawMessage) (any, error) {
				input := new(SaveInput)
				if err := tools.DecodeArgs(args, input); err != nil {
					return nil, err
				}
				return t.Save(ctx, input)
			},
		})
	}
	if t.readEnabled {
		fns = append(fns, tools.Function{
			Name:        "read_file",
			Description: "Read the full content of a file from the working directory.",
			Parameters:  tools.Reflect(&ReadInput{}),
			Call: func(ctx context.Context, args json.RawMessage) (any, error) {
				input := new(ReadInput)
				if err := tools.DecodeArgs(args, input); err != nil {
					return nil, err
				}
				return t.Read(ctx, input)
			},
		}, tools.Function{
			Name:        "list_files",
			Description: "List the files available in the working directory.",
			Parameters:  tools.Reflect(&struct{}{}),
			Call: func(ctx context.Context, args json.RawMessage) (any, error) {
				return t.List(ctx)
			},
		})
	}
	return fns
}

// resolve joins the file name with the directory and rejects names that
// escape it. The directory itself is the caller's contract and is used
// verbatim; file names come from the model and are not trusted.
func (t *Tool) resolve(name string) (string, error) {
	cleaned := filepath.Clean(name)
	if cleaned == "." || cleaned == ".." || filepath.IsAbs(cleaned) ||
		strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) ||
		strings.ContainsRune(cleaned, filepath.Separator) {
		return "", fmt.Errorf("%w: %s", ErrInvalidFileName, name)
	}
	return filepath.Join(t.dirName, cleaned), nil
}
