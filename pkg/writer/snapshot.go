// Package writer provides the harness's output sinks: the append-mode
// CSV sink timing rows go to, and a JSON snapshot for capturing a
// failing scenario.
package writer

import (
	"encoding/json"
	"fmt"
	"os"
)

// WriteSnapshot writes v to path as indented JSON, replacing any
// previous snapshot. The validator uses it to capture the failing
// workload record (n, label, input, expected output) so a
// disagreement can be replayed offline without regenerating the stream
// from its seed.
func WriteSnapshot(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}
