package writer

import (
	"fmt"
	"os"

	apperrors "github.com/succdel/bench/pkg/errors"
)

// Row is one CSV line: an algorithm's best-of-k timing for one (workload, n)
// scenario.
type Row struct {
	Algorithm string
	Workload  string
	N         int64
	Seconds   float64
}

// CSVWriter appends Row values to a fixed file path, one row per call. Each
// row opens the file in append mode and closes it before returning, so a
// crash mid-run preserves every row completed before the crash.
type CSVWriter struct {
	Path string
}

// NewCSVWriter creates a writer targeting path.
func NewCSVWriter(path string) *CSVWriter {
	return &CSVWriter{Path: path}
}

// Append writes one row, formatting Seconds with 10 significant digits
// in scientific notation.
func (w *CSVWriter) Append(row Row) error {
	f, err := os.OpenFile(w.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return apperrors.Wrap(apperrors.CodeCSVWrite, "failed to open CSV sink", err)
	}
	defer f.Close()

	line := fmt.Sprintf("%q, %q, %d, %.9e\n", row.Algorithm, row.Workload, row.N, row.Seconds)
	if _, err := f.WriteString(line); err != nil {
		return apperrors.Wrap(apperrors.CodeCSVWrite, "failed to append CSV row", err)
	}
	return nil
}
