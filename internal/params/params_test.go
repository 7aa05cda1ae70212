package params

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/OCharnyshevich/worleycaves/pkg/world/caves"
)

func TestDefaultMatchesCaveDefaults(t *testing.T) {
	s := Default()
	if got, want := s.Caves(), caves.DefaultParams(); got != want {
		t.Errorf("Caves() = %+v, want %+v", got, want)
	}
	if !slices.Equal(s.BlacklistedDimensions, []int{-1, 1}) {
		t.Errorf("BlacklistedDimensions = %v, want [-1 1]", s.BlacklistedDimensions)
	}
}

func TestParseOverlaysDefaults(t *testing.T) {
	s, err := Parse([]byte("noise_cutoff: 0.1\nlava_depth: 4\nblacklisted_dimensions: []\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.Cutoff != 0.1 {
		t.Errorf("Cutoff = %v, want 0.1", s.Cutoff)
	}
	if s.LavaDepth != 4 {
		t.Errorf("LavaDepth = %d, want 4", s.LavaDepth)
	}
	if len(s.BlacklistedDimensions) != 0 {
		t.Errorf("BlacklistedDimensions = %v, want empty", s.BlacklistedDimensions)
	}
	if s.WarpAmplifier != 8 || s.EaseInDepth != 15 {
		t.Errorf("unset fields lost their defaults: %+v", s)
	}
}

func TestParseAcceptsJSON(t *testing.T) {
	s, err := Parse([]byte(`{"warp_amplifier": 3.5, "vertical_compression": 1}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.WarpAmplifier != 3.5 || s.VerticalCompression != 1 {
		t.Errorf("Parse = %+v", s)
	}
}

func TestParseEmpty(t *testing.T) {
	s, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.Caves() != caves.DefaultParams() {
		t.Errorf("empty document should yield defaults, got %+v", s)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown key", "noise_cutof: 0.1\n"},
		{"cutoff too large", "noise_cutoff: 2\n"},
		{"negative warp", "warp_amplifier: -1\n"},
		{"zero compression", "vertical_compression: 0\n"},
		{"fractional lava depth", "lava_depth: 2.5\n"},
		{"lava above caves", "lava_depth: 200\n"},
		{"wrong type", "ease_in_depth: deep\n"},
		{"duplicate dimensions", "blacklisted_dimensions: [1, 1]\n"},
		{"not a mapping", "- 1\n- 2\n"},
		{"broken yaml", "noise_cutoff: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.doc)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "caves.yaml")
	if err := os.WriteFile(path, []byte("ease_in_depth: 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.EaseInDepth != 5 {
		t.Errorf("EaseInDepth = %v, want 5", s.EaseInDepth)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	s, err = Load("")
	if err != nil {
		t.Fatalf("Load empty path: %v", err)
	}
	if s.Caves() != caves.DefaultParams() {
		t.Errorf("Load(\"\") = %+v, want defaults", s)
	}
}

func TestFetchLocalFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "remote.yaml")
	dst := filepath.Join(dir, "caves.yaml")
	if err := os.WriteFile(src, []byte("noise_cutoff: -0.3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Fetch(context.Background(), src, dst)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if s.Cutoff != -0.3 {
		t.Errorf("Cutoff = %v, want -0.3", s.Cutoff)
	}
	if _, err := os.Stat(dst); err != nil {
		t.Errorf("destination not written: %v", err)
	}
}

func TestFetchRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "remote.yaml")
	dst := filepath.Join(dir, "caves.yaml")
	if err := os.WriteFile(src, []byte("noise_cutoff: 9\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Fetch(context.Background(), src, dst); err == nil {
		t.Fatal("expected validation error")
	}
	if _, err := os.Stat(dst); !os.IsNotExist(err) {
		t.Errorf("invalid download replaced destination: %v", err)
	}
	if _, err := os.Stat(dst + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temporary file left behind: %v", err)
	}
}
