// SPDX-License-Identifier: MPL-2.0

package corpus

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const (
	// BlueprintFileName is the blueprint file within a scale directory.
	BlueprintFileName = "blueprints.caffeine"
	// ExpectationsDirName groups the org/team expectation tree.
	ExpectationsDirName = "expectations"
	// ExpectationFileName is the per-team expectation file.
	ExpectationFileName = "slos.caffeine"
	// ManifestFileName is the machine-readable per-scale stats manifest.
	ManifestFileName = "manifest.toml"
)

// Write materializes c under root/<scale>, replacing any previous corpus
// at that path, and returns the collected statistics. Alongside the
// corpus it writes a TOML manifest so the benchmark harness can consume
// the sizes without re-walking the tree.
func Write(c *Corpus, root string) (*Stats, error) {
	scaleDir := filepath.Join(root, c.Scale)
	if err := os.RemoveAll(scaleDir); err != nil {
		return nil, fmt.Errorf("failed to clear corpus dir: %w", err)
	}
	if err := os.MkdirAll(scaleDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create corpus dir: %w", err)
	}

	bpPath := filepath.Join(scaleDir, BlueprintFileName)
	if err := os.WriteFile(bpPath, []byte(c.BlueprintFile), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write blueprint file: %w", err)
	}

	stats := &Stats{
		Scale:         c.Scale,
		Blueprints:    len(c.Blueprints),
		BlueprintSize: int64(len(c.BlueprintFile)),
		Expectations:  c.Expectations,
	}

	for _, rel := range c.Paths {
		content := c.ExpectationFiles[rel]
		teamDir := filepath.Join(scaleDir, ExpectationsDirName, filepath.FromSlash(rel))
		if err := os.MkdirAll(teamDir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create team dir: %w", err)
		}
		if err := os.WriteFile(filepath.Join(teamDir, ExpectationFileName), []byte(content), 0o644); err != nil {
			return nil, fmt.Errorf("failed to write expectation file: %w", err)
		}
		stats.ExpectationFiles++
		stats.ExpectationSize += int64(len(content))
	}
	stats.TotalSize = stats.BlueprintSize + stats.ExpectationSize

	manifest, err := toml.Marshal(stats)
	if err != nil {
		return nil, fmt.Errorf("failed to encode manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(scaleDir, ManifestFileName), manifest, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write manifest: %w", err)
	}

	return stats, nil
}
