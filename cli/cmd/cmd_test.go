package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestSourcesOrStdin(t *testing.T) {
	if got := sourcesOrStdin(nil); len(got) != 1 || got[0] != stdinSource {
		t.Errorf("sourcesOrStdin(nil) = %v, want [-]", got)
	}

	in := []string{"a.teya", "b.teya"}
	if got := sourcesOrStdin(in); len(got) != 2 || got[0] != "a.teya" {
		t.Errorf("sourcesOrStdin(%v) = %v", in, got)
	}
}

func TestReadSourceFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mod.teya")
	content := "module test;\n"

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	file, err := readSource(path)
	if err != nil {
		t.Fatalf("readSource(%q): %v", path, err)
	}

	if file.Name != path {
		t.Errorf("Name = %q, want %q", file.Name, path)
	}

	if file.Content != content {
		t.Errorf("Content = %q, want %q", file.Content, content)
	}
}

func TestReadSourceMissingFile(t *testing.T) {
	_, err := readSource(filepath.Join(t.TempDir(), "nope.teya"))
	if err == nil {
		t.Fatal("readSource on missing file: want error")
	}

	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error does not wrap os.ErrNotExist: %v", err)
	}
}

func TestErrorMessageFormats(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"msg_only", NewError("read source"), "read source"},
		{
			"msg_and_cause",
			NewError("read source").Wrap(errors.New("boom")),
			"read source: boom",
		},
		{"empty", NewError(""), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorWithIsImmutable(t *testing.T) {
	base := NewError("base")
	derived := base.With()

	if derived == base {
		t.Error("With() returned the same instance")
	}

	if !errors.Is(base.Wrap(os.ErrClosed), os.ErrClosed) {
		t.Error("Wrap() result does not unwrap to the cause")
	}
}
