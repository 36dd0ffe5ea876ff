package writer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCSVWriter_Append(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.csv")
	w := NewCSVWriter(path)

	if err := w.Append(Row{Algorithm: "array-parent-naive", Workload: "query_one", N: 1024, Seconds: 0.0001234567}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := w.Append(Row{Algorithm: "quick-find", Workload: "worst_case 1.000", N: 1024, Seconds: 0.00002}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read CSV: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 rows, got %d: %q", len(lines), string(content))
	}
	if !strings.HasPrefix(lines[0], `"array-parent-naive", "query_one", 1024, `) {
		t.Errorf("unexpected row 0: %q", lines[0])
	}
	if !strings.Contains(lines[0], "e") {
		t.Errorf("expected scientific notation in row 0: %q", lines[0])
	}
}

func TestCSVWriter_AppendIsCumulative(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.csv")
	w := NewCSVWriter(path)

	for i := 0; i < 3; i++ {
		if err := w.Append(Row{Algorithm: "union-find", Workload: "random 2.000", N: 8, Seconds: 1e-6}); err != nil {
			t.Fatalf("Append %d failed: %v", i, err)
		}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read CSV: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 cumulative rows, got %d", len(lines))
	}
}

func TestCSVWriter_AppendFailsOnBadPath(t *testing.T) {
	w := NewCSVWriter(filepath.Join(t.TempDir(), "missing-dir", "data.csv"))
	err := w.Append(Row{Algorithm: "x", Workload: "y", N: 1, Seconds: 0})
	if err == nil {
		t.Fatal("expected error writing to a nonexistent directory")
	}
}
