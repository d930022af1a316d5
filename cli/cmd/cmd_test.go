package cmd

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	return path
}

// pipeStdin replaces os.Stdin with a pipe fed with content until the test
// ends.
func pipeStdin(t *testing.T, content string) {
	t.Helper()

	oldStdin := os.Stdin
	t.Cleanup(func() { os.Stdin = oldStdin })

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}

	os.Stdin = r

	go func() {
		defer w.Close()
		io.WriteString(w, content)
	}()
}

// TestWithSourceFilesEmpty tests that an empty source list stores nil.
func TestWithSourceFilesEmpty(t *testing.T) {
	for _, sources := range [][]string{nil, {}} {
		if r := sourceFilesFrom(WithSourceFiles(context.Background(), sources)); r != nil {
			t.Errorf("WithSourceFiles(%#v) should store nil reader", sources)
		}
	}
}

// TestWithSourceFilesDeduplicates tests that the same file named several
// ways is read once, and that missing files are skipped.
func TestWithSourceFilesDeduplicates(t *testing.T) {
	dir := t.TempDir()

	first := writeFile(t, dir, "first.txt", "first\n")
	second := writeFile(t, dir, "second.txt", "second\n")

	link := filepath.Join(dir, "link.txt")
	if err := os.Symlink(first, link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	rel, err := filepath.Rel(wd, first)
	if err != nil {
		t.Fatal(err)
	}

	ctx := WithSourceFiles(context.Background(), []string{
		first, link, rel, filepath.Join(dir, "missing.txt"), second, first,
	})

	reader := sourceFilesFrom(ctx)
	if reader == nil {
		t.Fatal("WithSourceFiles should return non-nil reader")
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("reading from source files: %v", err)
	}

	if want := "first\nsecond\n"; string(data) != want {
		t.Errorf("got %q, want %q", string(data), want)
	}
}

// TestWithSourceFilesAllNonexistent tests that no readable files stores nil.
func TestWithSourceFilesAllNonexistent(t *testing.T) {
	dir := t.TempDir()

	ctx := WithSourceFiles(context.Background(), []string{
		filepath.Join(dir, "a"), filepath.Join(dir, "b"),
	})

	if r := sourceFilesFrom(ctx); r != nil {
		t.Error("WithSourceFiles should store nil reader when no file opens")
	}
}

// TestWithSourceFilesStdinLast tests that stdin is read once, after files.
func TestWithSourceFilesStdinLast(t *testing.T) {
	file := writeFile(t, t.TempDir(), "file.txt", "file\n")

	pipeStdin(t, "stdin\n")

	ctx := WithSourceFiles(context.Background(), []string{"-", file, "-"})

	reader := sourceFilesFrom(ctx)
	if reader == nil {
		t.Fatal("WithSourceFiles should return non-nil reader")
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("reading from source files: %v", err)
	}

	if want := "file\nstdin\n"; string(data) != want {
		t.Errorf("got %q, want %q (stdin should be last)", string(data), want)
	}
}

func TestLines(t *testing.T) {
	var got []string

	for line, err := range lines(strings.NewReader("one\n\ntwo\nthree")) {
		if err != nil {
			t.Fatal(err)
		}

		got = append(got, line)
	}

	if want := []string{"one", "two", "three"}; !slices.Equal(got, want) {
		t.Errorf("lines() = %q, want %q", got, want)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("broken") }

func TestLinesError(t *testing.T) {
	var errs int

	for _, err := range lines(failingReader{}) {
		if err != nil {
			errs++
		}
	}

	if errs != 1 {
		t.Errorf("lines() reported %d errors, want 1", errs)
	}
}
