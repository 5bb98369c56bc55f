// Package replay drives a converter.Converter through a declarative,
// JSON-loadable sequence of operations and checks each step's return value
// and resulting conversion-segment keys against expectations. It exists so
// the end-to-end scenarios of the specification's testable-properties
// table can be captured as data rather than re-written as Go for every new
// case.
package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/nmuraoka/convergo/internal/convfake"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a replay scenario.
type Fixture struct {
	Description string                      `json:"description"`
	Dictionary  map[string][]convfake.Entry  `json:"dictionary"`
	Predictions map[string][]convfake.Entry  `json:"predictions"`
	Suppress    [][2]string                  `json:"suppress"`
	Steps       []Step                       `json:"steps"`
}

// Step is one operation to apply to the shared candset.Segments, plus the
// expectation to check immediately after it runs.
type Step struct {
	Op string `json:"op"`

	Key              string `json:"key,omitempty"`
	SegIdx           int    `json:"seg_idx,omitempty"`
	CandIdx          int    `json:"cand_idx,omitempty"`
	Delta            int    `json:"delta,omitempty"`
	Start            int    `json:"start,omitempty"`
	Count            int    `json:"count,omitempty"`
	Sizes            []int  `json:"sizes,omitempty"`
	CurrentKey       string `json:"current_key,omitempty"`
	NewKey           string `json:"new_key,omitempty"`
	CandidateIndices []int  `json:"candidate_indices,omitempty"`
	PrecedingText    string `json:"preceding_text,omitempty"`

	ExpectReturn bool     `json:"expect_return"`
	ExpectKeys   []string `json:"expect_keys,omitempty"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON scenario file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// #endregion fixture-loader
