// SPDX-License-Identifier: MPL-2.0

package corpus

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Stats summarizes the on-disk footprint of one corpus scale.
type Stats struct {
	Scale            string `toml:"scale"`
	Blueprints       int    `toml:"blueprints"`
	BlueprintSize    int64  `toml:"blueprint_file_bytes"`
	Expectations     int    `toml:"expectations"`
	ExpectationFiles int    `toml:"expectation_files"`
	ExpectationSize  int64  `toml:"expectations_dir_bytes"`
	TotalSize        int64  `toml:"total_bytes"`
}

// Measure walks a previously written scale directory and recomputes its
// statistics from the filesystem. Expectation and blueprint counts inside
// the files are not recovered; only sizes and file counts are.
func Measure(scaleDir string) (*Stats, error) {
	stats := &Stats{Scale: filepath.Base(scaleDir)}

	bpInfo, err := os.Stat(filepath.Join(scaleDir, BlueprintFileName))
	if err != nil {
		return nil, fmt.Errorf("failed to stat blueprint file: %w", err)
	}
	stats.BlueprintSize = bpInfo.Size()

	expDir := filepath.Join(scaleDir, ExpectationsDirName)
	err = filepath.WalkDir(expDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".caffeine") {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		stats.ExpectationFiles++
		stats.ExpectationSize += info.Size()
		return nil
	})
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to walk expectations dir: %w", err)
	}

	stats.TotalSize = stats.BlueprintSize + stats.ExpectationSize
	return stats, nil
}
