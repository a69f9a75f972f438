package coderunner

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func newShellTool(t *testing.T) *Tool {
	t.Helper()
	return New(WithBaseDir(t.TempDir()), WithInterpreter([]string{"sh"}))
}

func TestSaveAndRun(t *testing.T) {
	ctx := context.Background()
	tool := newShellTool(t)
	out, err := tool.SaveAndRun(ctx, &SaveAndRunInput{FileName: "hello.sh", Code: "echo hello"})
	if err != nil {
		t.Fatalf("save and run: %v", err)
	}
	if strings.TrimSpace(out.Stdout) != "hello" {
		t.Errorf("unexpected stdout %q", out.Stdout)
	}
	if out.ExitCode != 0 {
		t.Errorf("unexpected exit code %d", out.ExitCode)
	}
}

func TestRunFileNonZeroExit(t *testing.T) {
	ctx := context.Background()
	tool := newShellTool(t)
	if _, err := tool.SaveAndRun(ctx, &SaveAndRunInput{FileName: "fail.sh", Code: "echo oops >&2; exit 3"}); err != nil {
		t.Fatalf("save and run: %v", err)
	}
	out, err := tool.RunFile(ctx, &RunFileInput{FileName: "fail.sh"})
	if err != nil {
		t.Fatalf("run file: %v", err)
	}
	if out.ExitCode != 3 {
		t.Errorf("expect exit code 3, but got %d", out.ExitCode)
	}
	if strings.TrimSpace(out.Stderr) != "oops" {
		t.Errorf("unexpected stderr %q", out.Stderr)
	}
}

func TestReadAndList(t *testing.T) {
	ctx := context.Background()
	tool := newShellTool(t)
	if _, err := tool.SaveAndRun(ctx, &SaveAndRunInput{FileName: "a.sh", Code: "true"}); err != nil {
		t.Fatalf("save and run: %v", err)
	}
	got, err := tool.ReadFile(ctx, &ReadInput{FileName: "a.sh"})
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got.Content != "true" {
		t.Errorf("unexpected content %q", got.Content)
	}
	files, err := tool.ListFiles(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(files.Files) != 1 || files.Files[0] != "a.sh" {
		t.Errorf("unexpected listing %v", files.Files)
	}
}

func TestSaveAndRunDisabled(t *testing.T) {
	ctx := context.Background()
	tool := New(WithBaseDir(t.TempDir()), WithInterpreter([]string{"sh"}), WithSaveAndRun(false))
	if _, err := tool.SaveAndRun(ctx, &SaveAndRunInput{FileName: "x.sh", Code: "true"}); !errors.Is(err, ErrSaveDisabled) {
		t.Errorf("expect ErrSaveDisabled, but got %v", err)
	}
	fns := tool.Functions()
	for _, fn := range fns {
		if fn.Name == "save_and_run" {
			t.Error("expect save_and_run to be omitted when disabled")
		}
	}
	if len(fns) != 3 {
		t.Errorf("expect 3 functions, but got %d", len(fns))
	}
}

func TestResolveRejectsEscapes(t *testing.T) {
	ctx := context.Background()
	tool := newShellTool(t)
	for _, name := range []string{"../evil.sh", "/tmp/x.sh", "a/b.sh"} {
		if _, err := tool.SaveAndRun(ctx, &SaveAndRunInput{FileName: name, Code: "true"}); !errors.Is(err, ErrInvalidFileName) {
			t.Errorf("%s: expect ErrInvalidFileName, but got %v", name, err)
		}
	}
}
