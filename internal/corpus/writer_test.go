// SPDX-License-Identifier: MPL-2.0

package corpus

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
)

func generateSmall(t *testing.T) *Corpus {
	t.Helper()
	o := NewOrchestrator(rand.New(rand.NewSource(DefaultSeed)))
	c, err := o.Generate("small", DefaultProfiles()["small"])
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	return c
}

func TestWrite_Layout(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	c := generateSmall(t)

	stats, err := Write(c, root)
	if err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	scaleDir := filepath.Join(root, "small")
	bp, err := os.ReadFile(filepath.Join(scaleDir, BlueprintFileName))
	if err != nil {
		t.Fatalf("blueprint file not written: %v", err)
	}
	if string(bp) != c.BlueprintFile {
		t.Error("blueprint file content differs from corpus")
	}

	expPath := filepath.Join(scaleDir, ExpectationsDirName, "acme", "platform", ExpectationFileName)
	exp, err := os.ReadFile(expPath)
	if err != nil {
		t.Fatalf("expectation file not written: %v", err)
	}
	if string(exp) != c.ExpectationFiles["acme/platform"] {
		t.Error("expectation file content differs from corpus")
	}

	if stats.Scale != "small" || stats.Blueprints != 2 || stats.Expectations != 4 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if stats.TotalSize != stats.BlueprintSize+stats.ExpectationSize {
		t.Errorf("total size %d != blueprint %d + expectations %d",
			stats.TotalSize, stats.BlueprintSize, stats.ExpectationSize)
	}
}

func TestWrite_Manifest(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	c := generateSmall(t)

	stats, err := Write(c, root)
	if err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(root, "small", ManifestFileName))
	if err != nil {
		t.Fatalf("manifest not written: %v", err)
	}

	var fromDisk Stats
	if err := toml.Unmarshal(raw, &fromDisk); err != nil {
		t.Fatalf("manifest is not valid TOML: %v", err)
	}
	if fromDisk != *stats {
		t.Errorf("manifest %+v differs from returned stats %+v", fromDisk, *stats)
	}
}

func TestWrite_ReplacesPreviousCorpus(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	c := generateSmall(t)

	stale := filepath.Join(root, "small", "stale.txt")
	if err := os.MkdirAll(filepath.Dir(stale), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(stale, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Write(c, root); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Error("previous corpus content should be removed")
	}
}

func TestMeasure(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	c := generateSmall(t)

	written, err := Write(c, root)
	if err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	measured, err := Measure(filepath.Join(root, "small"))
	if err != nil {
		t.Fatalf("Measure() error: %v", err)
	}

	if measured.Scale != "small" {
		t.Errorf("scale = %q, want small", measured.Scale)
	}
	if measured.BlueprintSize != written.BlueprintSize {
		t.Errorf("blueprint size = %d, want %d", measured.BlueprintSize, written.BlueprintSize)
	}
	if measured.ExpectationFiles != written.ExpectationFiles {
		t.Errorf("expectation files = %d, want %d", measured.ExpectationFiles, written.ExpectationFiles)
	}
	if measured.ExpectationSize != written.ExpectationSize {
		t.Errorf("expectation size = %d, want %d", measured.ExpectationSize, written.ExpectationSize)
	}
}

func TestMeasure_MissingBlueprint(t *testing.T) {
	t.Parallel()

	if _, err := Measure(t.TempDir()); err == nil {
		t.Error("measuring an empty directory should fail")
	}
}
