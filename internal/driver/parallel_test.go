package driver_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"rpncalc/internal/driver"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestEvalFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "3+4*2\n# комментарий пропускается\n\n2^3^2\n")
	b := writeFile(t, dir, "b.txt", "1/0\nsqrt(16)\n")

	results, err := driver.EvalFiles(context.Background(), []string{a, b}, 2)
	if err != nil {
		t.Fatalf("EvalFiles: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}

	// Результаты приходят в порядке аргументов, не в порядке завершения.
	if results[0].Path != a || results[1].Path != b {
		t.Fatalf("result order: %s, %s", results[0].Path, results[1].Path)
	}

	ra := results[0]
	if ra.Err != nil {
		t.Fatalf("file a: %v", ra.Err)
	}
	if len(ra.Lines) != 2 {
		t.Fatalf("file a: %d lines, want 2", len(ra.Lines))
	}
	if ra.Lines[0].Value != 11 || ra.Lines[1].Value != 512 {
		t.Errorf("file a values = %v, %v, want 11, 512", ra.Lines[0].Value, ra.Lines[1].Value)
	}

	rb := results[1]
	if rb.Lines[0].Err == nil {
		t.Error("1/0 line should carry an error")
	}
	if rb.Lines[1].Err != nil || rb.Lines[1].Value != 4 {
		t.Errorf("sqrt(16) line = %+v, want value 4", rb.Lines[1])
	}
}

func TestEvalFilesMissing(t *testing.T) {
	results, err := driver.EvalFiles(context.Background(), []string{"no-such-file.txt"}, 0)
	if err != nil {
		t.Fatalf("EvalFiles: %v", err)
	}
	if len(results) != 1 || results[0].Err == nil {
		t.Fatalf("missing file should produce a file-level error: %+v", results)
	}
}

func TestEvalFilesRegisterIsolation(t *testing.T) {
	dir := t.TempDir()
	// ans внутри файла видит предыдущую строку того же файла.
	a := writeFile(t, dir, "a.txt", "2+3\nans()*10\n")
	b := writeFile(t, dir, "b.txt", "ans\n")

	results, err := driver.EvalFiles(context.Background(), []string{a, b}, 1)
	if err != nil {
		t.Fatalf("EvalFiles: %v", err)
	}
	if got := results[0].Lines[1].Value; got != 50 {
		t.Errorf("ans()*10 in file a = %v, want 50", got)
	}
	// У каждого файла свой калькулятор: чужой регистр не виден.
	if got := results[1].Lines[0].Value; got != 0 {
		t.Errorf("ans in file b = %v, want 0", got)
	}
}
