package batch

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"camper-renderer/internal/camper"
	"camper-renderer/internal/catalog"
	"camper-renderer/internal/export"
)

func quietConfig(dir string, f export.Format) Config {
	return Config{
		OutputDir: dir,
		Export:    export.Options{Format: f},
		Workers:   3,
		Quiet:     true,
		Log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestRunMatrix(t *testing.T) {
	dir := t.TempDir()
	entries := catalog.Matrix(camper.Config{}.WithOptions(camper.SidePanels))

	results := Run(quietConfig(dir, export.SVG), entries)
	if len(results) != 9 {
		t.Fatalf("got %d results, want 9", len(results))
	}
	for i, r := range results {
		if !r.Success {
			t.Fatalf("%s failed: %s", r.Name, r.Error)
		}
		if r.Name != entries[i].Name {
			t.Fatalf("result %d = %s, want %s (entry order)", i, r.Name, entries[i].Name)
		}
		data, err := os.ReadFile(r.Path)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(data), "<svg") {
			t.Fatalf("%s is not an svg document", r.Path)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "heavy-extreme.svg")); err != nil {
		t.Fatalf("missing output: %v", err)
	}
}

func TestRunUnknownFormat(t *testing.T) {
	results := Run(quietConfig(t.TempDir(), "gif"), catalog.Matrix(camper.Config{})[:1])
	if results[0].Success || !strings.Contains(results[0].Error, "unknown format") {
		t.Fatalf("got %+v, want unknown format failure", results[0])
	}
}

func TestWriteManifest(t *testing.T) {
	dir := t.TempDir()
	entries := []catalog.Entry{
		{Name: "default", Build: camper.Default()},
		{Name: "broken", Build: camper.Config{}},
	}
	results := []Result{
		{Name: "default", Path: filepath.Join(dir, "default.png"), Success: true},
		{Name: "broken", Error: "boom"},
	}

	path := filepath.Join(dir, "manifest.json")
	if err := WriteManifest(path, entries, results); err != nil {
		t.Fatal(err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var got []ManifestEntry
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d entries, want 1 (failures skipped)", len(got))
	}
	m := got[0]
	if m.Name != "default" || m.Price != 16649 || m.Display != "$16,649" || m.Image != "default.png" {
		t.Fatalf("got %+v", m)
	}
	if len(m.Options) != 14 {
		t.Fatalf("got %d options, want 14", len(m.Options))
	}
}
