package report

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

const (
	statsFile = "chunks.csv"
	traceFile = "decisions.jsonl.zst"
)

// Writer places report files in an output directory.
type Writer struct {
	dir string
	log *slog.Logger
}

// New creates a Writer rooted at dir, creating it if needed.
func New(dir string, log *slog.Logger) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create directory %s: %w", dir, err)
	}
	return &Writer{dir: dir, log: log}, nil
}

// WriteStats writes stats to chunks.csv atomically.
func (w *Writer) WriteStats(stats []ChunkStat) error {
	data, err := gocsv.MarshalBytes(stats)
	if err != nil {
		return fmt.Errorf("marshal csv: %w", err)
	}
	path := filepath.Join(w.dir, statsFile)
	if err := atomicWrite(path, data); err != nil {
		return err
	}
	w.log.Info("wrote chunk stats", "path", path, "rows", len(stats))
	return nil
}

// CreateTrace opens decisions.jsonl.zst for writing.
func (w *Writer) CreateTrace() (*Trace, error) {
	path := filepath.Join(w.dir, traceFile)
	t, err := CreateTrace(path)
	if err != nil {
		return nil, err
	}
	w.log.Info("tracing carve decisions", "path", path)
	return t, nil
}

// atomicWrite writes data using a temp file + rename.
func atomicWrite(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
