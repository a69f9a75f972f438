package fileio

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestSaveAndRead(t *testing.T) {
	ctx := context.Background()
	tool := New(WithDirName(t.TempDir()))
	saved, err := tool.Save(ctx, &SaveInput{FileName: "myfile.txt", Data: "Sample data"})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if saved.Bytes != len("Sample data") {
		t.Errorf("expect %d bytes, but got %d", len("Sample data"), saved.Bytes)
	}
	got, err := tool.Read(ctx, &ReadInput{FileName: "myfile.txt"})
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got.Content != "Sample data" {
		t.Errorf("unexpected content %q", got.Content)
	}
	if !strings.HasPrefix(got.ContentType, "text/plain") {
		t.Errorf("unexpected content type %q", got.ContentType)
	}
	files, err := tool.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(files.Files) != 1 || files.Files[0] != "myfile.txt" {
		t.Errorf("unexpected listing %v", files.Files)
	}
}

func TestSaveNoOverwrite(t *testing.T) {
	ctx := context.Background()
	tool := New(WithDirName(t.TempDir()))
	if _, err := tool.Save(ctx, &SaveInput{FileName: "a.txt", Data: "one"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := tool.Save(ctx, &SaveInput{FileName: "a.txt", Data: "two"}); !errors.Is(err, ErrFileExists) {
		t.Fatalf("expect ErrFileExists, but got %v", err)
	}
	if _, err := tool.Save(ctx, &SaveInput{FileName: "a.txt", Data: "two", Overwrite: true}); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, _ := tool.Read(ctx, &ReadInput{FileName: "a.txt"})
	if got.Content != "two" {
		t.Errorf("expect overwritten content, but got %q", got.Content)
	}
}

func TestPermissionToggles(t *testing.T) {
	ctx := context.Background()
	readOnly := New(WithDirName(t.TempDir()), WithSaveEnabled(false))
	if _, err := readOnly.Save(ctx, &SaveInput{FileName: "x", Data: "d"}); !errors.Is(err, ErrSaveDisabled) {
		t.Errorf("expect ErrSaveDisabled, but got %v", err)
	}
	writeOnly := New(WithDirName(t.TempDir()), WithReadEnabled(false))
	if _, err := writeOnly.Read(ctx, &ReadInput{FileName: "x"}); !errors.Is(err, ErrReadDisabled) {
		t.Errorf("expect ErrReadDisabled, but got %v", err)
	}
}

func TestFunctionsFollowPermissions(t *testing.T) {
	names := func(tool *Tool) []string {
		fns := tool.Functions()
		out := make([]string, 0, len(fns))
		for _, fn := range fns {
			out = append(out, fn.Name)
		}
		return out
	}
	if got := names(New()); len(got) != 3 {
		t.Errorf("expect 3 functions by default, but got %v", got)
	}
	if got := names(New(WithSaveEnabled(false))); len(got) != 2 {
		t.Errorf("expect 2 functions without save, but got %v", got)
	}
	if got := names(New(WithReadEnabled(false))); len(got) != 1 || got[0] != "save_file" {
		t.Errorf("expect only save_file without read, but got %v", got)
	}
}

func TestResolveRejectsEscapes(t *testing.T) {
	ctx := context.Background()
	tool := New(WithDirName(t.TempDir()))
	for _, name := range []string{"../evil.txt", "/etc/passwd", "a/b.txt", ".."} {
		if _, err := tool.Save(ctx, &SaveInput{FileName: name, Data: "d"}); !errors.Is(err, ErrInvalidFileName) {
			t.Errorf("%s: expect ErrInvalidFileName, but got %v", name, err)
		}
	}
}

func TestDirNameVerbatim(t *testing.T) {
	for _, dir := range []string{"", "files", "../odd dir"} {
		tool := New(WithDirName(dir))
		if got := tool.DirName(); got != dir {
			t.Errorf("expect dir %q verbatim, but got %q", dir, got)
		}
	}
}
