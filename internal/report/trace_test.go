package report

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/gocarina/gocsv"

	"github.com/OCharnyshevich/worleycaves/pkg/world/caves"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestTraceRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.jsonl.zst")
	tr, err := CreateTrace(path)
	if err != nil {
		t.Fatalf("CreateTrace: %v", err)
	}

	c := NewCollector(tr)
	in := []caves.Decision{
		{X: 0, Y: 64, Z: 15, ChunkX: 2, ChunkZ: -7, Top: true},
		{X: 12, Y: 5, Z: 3, ChunkX: 2, ChunkZ: -7},
	}
	observeAll(t, c, in)
	if tr.Len() != len(in) {
		t.Errorf("Len = %d, want %d", tr.Len(), len(in))
	}
	if err := tr.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := tr.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	var out []TraceRecord
	if err := ReadTrace(f, func(r TraceRecord) error {
		out = append(out, r)
		return nil
	}); err != nil {
		t.Fatalf("ReadTrace: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("read %d records, want %d", len(out), len(in))
	}
	for i, d := range in {
		r := out[i]
		if r.ChunkX != d.ChunkX || r.ChunkZ != d.ChunkZ || r.X != d.X || r.Y != d.Y || r.Z != d.Z || r.Top != d.Top {
			t.Errorf("record %d = %+v, want %+v", i, r, d)
		}
	}
}

func TestTraceWriteAfterClose(t *testing.T) {
	tr, err := CreateTrace(filepath.Join(t.TempDir(), "trace.jsonl.zst"))
	if err != nil {
		t.Fatalf("CreateTrace: %v", err)
	}
	if err := tr.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := tr.Write(caves.Decision{}); !errors.Is(err, os.ErrClosed) {
		t.Errorf("Write after Close = %v, want os.ErrClosed", err)
	}
}

func TestCreateTraceMissingDir(t *testing.T) {
	if _, err := CreateTrace(filepath.Join(t.TempDir(), "missing", "trace.zst")); err == nil {
		t.Error("expected error")
	}
}

func TestWriterStats(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	w, err := New(dir, discardLogger())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	in := []ChunkStat{
		{ChunkX: -1, ChunkZ: 0, Decisions: 10, TopBlocks: 1, AirBlocks: 40, LavaBlocks: 2, DecisionPercent: 0.5, Digest: "00000000000000ab"},
		{ChunkX: 0, ChunkZ: 0, Digest: "ef46db3751d8e999"},
	}
	if err := w.WriteStats(in); err != nil {
		t.Fatalf("WriteStats: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, statsFile))
	if err != nil {
		t.Fatalf("read stats: %v", err)
	}
	var out []ChunkStat
	if err := gocsv.UnmarshalBytes(data, &out); err != nil {
		t.Fatalf("UnmarshalBytes: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("rows = %d, want %d", len(out), len(in))
	}
	for i := range in {
		if out[i] != in[i] {
			t.Errorf("row %d = %+v, want %+v", i, out[i], in[i])
		}
	}
	if _, err := os.Stat(filepath.Join(dir, statsFile+".tmp")); !os.IsNotExist(err) {
		t.Errorf("temporary file left behind: %v", err)
	}
}

func TestWriterCreateTrace(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir, discardLogger())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	tr, err := w.CreateTrace()
	if err != nil {
		t.Fatalf("CreateTrace: %v", err)
	}
	if err := tr.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, traceFile)); err != nil {
		t.Errorf("trace file missing: %v", err)
	}
}
