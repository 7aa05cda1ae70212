package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/OCharnyshevich/worleycaves/pkg/world/caves"
)

// TraceRecord is one line of a decision trace.
type TraceRecord struct {
	ChunkX int  `json:"cx"`
	ChunkZ int  `json:"cz"`
	X      int  `json:"x"`
	Y      int  `json:"y"`
	Z      int  `json:"z"`
	Top    bool `json:"top,omitempty"`
}

// Trace writes carve decisions as zstd-compressed JSON lines.
type Trace struct {
	mu  sync.Mutex
	f   *os.File
	enc *zstd.Encoder
	w   *bufio.Writer
	n   int
}

// CreateTrace creates the trace file at path, truncating any existing file.
func CreateTrace(path string) (*Trace, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create trace: %w", err)
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("create trace: %w", err)
	}
	return &Trace{f: f, enc: enc, w: bufio.NewWriterSize(enc, 128*1024)}, nil
}

// Write appends one decision.
func (t *Trace) Write(d caves.Decision) error {
	b, err := json.Marshal(TraceRecord{
		ChunkX: d.ChunkX, ChunkZ: d.ChunkZ,
		X: d.X, Y: d.Y, Z: d.Z,
		Top: d.Top,
	})
	if err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.w == nil {
		return fmt.Errorf("write trace: %w", os.ErrClosed)
	}
	if _, err := t.w.Write(b); err != nil {
		return fmt.Errorf("write trace: %w", err)
	}
	if err := t.w.WriteByte('\n'); err != nil {
		return fmt.Errorf("write trace: %w", err)
	}
	t.n++
	return nil
}

// Len returns the number of decisions written.
func (t *Trace) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.n
}

// Close flushes the trace and closes the file.
func (t *Trace) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.w == nil {
		return nil
	}

	err := t.w.Flush()
	if cerr := t.enc.Close(); err == nil {
		err = cerr
	}
	if cerr := t.f.Close(); err == nil {
		err = cerr
	}
	t.w, t.enc, t.f = nil, nil, nil
	if err != nil {
		return fmt.Errorf("close trace: %w", err)
	}
	return nil
}

// ReadTrace decodes a trace stream, calling fn for each record.
func ReadTrace(r io.Reader, fn func(TraceRecord) error) error {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return fmt.Errorf("read trace: %w", err)
	}
	defer dec.Close()

	jd := json.NewDecoder(dec)
	for {
		var rec TraceRecord
		if err := jd.Decode(&rec); err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("read trace: %w", err)
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
}
