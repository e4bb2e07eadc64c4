// SPDX-License-Identifier: MPL-2.0

package benchcmp

import (
	"encoding/json"
	"fmt"
	"os"
)

type (
	// resultsFile mirrors the subset of hyperfine's JSON export we consume.
	resultsFile struct {
		Results []resultEntry `json:"results"`
	}

	resultEntry struct {
		Command string   `json:"command"`
		Mean    *float64 `json:"mean"`
	}
)

// LoadResults parses a hyperfine JSON export into a map from labeled
// command name to mean duration in seconds. Missing files, invalid JSON,
// and entries without a command or mean are all hard failures: a
// comparison against malformed input would be meaningless.
func LoadResults(path string) (map[string]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read results file: %w", err)
	}

	var file resultsFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%s: invalid hyperfine JSON: %w", path, err)
	}
	if file.Results == nil {
		return nil, fmt.Errorf("%s: missing \"results\" array", path)
	}

	out := make(map[string]float64, len(file.Results))
	for i, r := range file.Results {
		if r.Command == "" {
			return nil, fmt.Errorf("%s: results[%d]: missing \"command\"", path, i)
		}
		if r.Mean == nil {
			return nil, fmt.Errorf("%s: results[%d]: missing \"mean\"", path, i)
		}
		out[r.Command] = *r.Mean
	}
	return out, nil
}
