package importer

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// RowFailure records one rejected import row. Failures are collected, never
// fatal to the batch.
type RowFailure struct {
	Line   int      `json:"line"`
	Record []string `json:"record"`
	Reason string   `json:"reason"`
}

// WriteFailureLog writes collected failures to a timestamped side CSV in dir
// and returns the file path. Nothing is written when there are no failures.
func WriteFailureLog(dir, prefix string, failures []RowFailure) (string, error) {
	if len(failures) == 0 {
		return "", nil
	}

	path := filepath.Join(dir, fmt.Sprintf("%s_failures_%s.csv", prefix, time.Now().Format("20060102_150405")))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create failure log: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"line", "reason", "record"}); err != nil {
		return "", fmt.Errorf("write failure log header: %w", err)
	}
	for _, failure := range failures {
		row := []string{
			strconv.Itoa(failure.Line),
			failure.Reason,
			strings.Join(failure.Record, ";"),
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("write failure log row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return path, nil
}
