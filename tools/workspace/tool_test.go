package workspace

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateProject(t *testing.T) {
	ctx := context.Background()
	tool := New(WithRootDir(t.TempDir()))
	out, err := tool.Create(ctx, &CreateInput{Template: "llm-app", Name: "demo"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if out.Name != "demo" {
		t.Errorf("unexpected name %q", out.Name)
	}
	for _, name := range []string{"README.md", "app.py", "requirements.txt"} {
		if _, err := os.Stat(filepath.Join(out.Path, name)); err != nil {
			t.Errorf("expect %s to exist: %v", name, err)
		}
	}
	if _, err := tool.Create(ctx, &CreateInput{Template: "llm-app", Name: "demo"}); !errors.Is(err, ErrProjectExists) {
		t.Errorf("expect ErrProjectExists, but got %v", err)
	}
	if _, err := tool.Create(ctx, &CreateInput{Template: "rails-app", Name: "other"}); !errors.Is(err, ErrUnknownTemplate) {
		t.Errorf("expect ErrUnknownTemplate, but got %v", err)
	}
	if _, err := tool.Create(ctx, &CreateInput{Template: "llm-app", Name: "../escape"}); !errors.Is(err, ErrInvalidName) {
		t.Errorf("expect ErrInvalidName, but got %v", err)
	}
}

func TestStartProject(t *testing.T) {
	ctx := context.Background()
	tool := New(
		WithRootDir(t.TempDir()),
		WithStartCommand([]string{"sh", "-c", "echo started"}),
	)
	if _, err := tool.Create(ctx, &CreateInput{Template: "api-app", Name: "svc"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	out, err := tool.Start(ctx, &StartInput{Name: "svc"})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if strings.TrimSpace(out.Stdout) != "started" {
		t.Errorf("unexpected stdout %q", out.Stdout)
	}
	if _, err := tool.Start(ctx, &StartInput{Name: "missing"}); err == nil {
		t.Error("expect error for missing project")
	}
}

func TestValidate(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	tool := New(WithRootDir(root))
	out, err := tool.Validate(ctx)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !out.Ready || out.Root != root {
		t.Errorf("unexpected output %+v", out)
	}
	if len(out.Templates) != 4 {
		t.Errorf("expect 4 templates, but got %v", out.Templates)
	}
}

func TestValidateDeclared(t *testing.T) {
	ctx := context.Background()
	tool := New(WithRootDir(t.TempDir()))
	for _, fn := range tool.Functions() {
		if fn.Name != "validate_environment" {
			continue
		}
		res, err := fn.Call(ctx, nil)
		if err != nil {
			t.Fatalf("validate_environment: %v", err)
		}
		if out, ok := res.(*ValidateOutput); !ok || !out.Ready {
			t.Errorf("unexpected result %+v", res)
		}
		return
	}
	t.Error("expect validate_environment to be declared")
}

func TestTemplates(t *testing.T) {
	names := Templates()
	if len(names) != 4 {
		t.Fatalf("expect 4 templates, but got %v", names)
	}
}
