package replay

import (
	"os"
	"path/filepath"
	"testing"
)

// #region fixture-tests

func runFixtureFile(t *testing.T, name string) ([]StepResult, Summary) {
	t.Helper()
	path := filepath.Join("testdata", name)
	f, err := LoadFixture(path)
	if err != nil {
		t.Fatalf("LoadFixture: %v", err)
	}
	return Run(f)
}

func requireAllPassed(t *testing.T, results []StepResult, summary Summary) {
	t.Helper()
	if summary.Failed == 0 {
		return
	}
	for _, r := range results {
		if !r.Passed {
			t.Errorf("%s: %s", r.Op, r.Mismatch)
		}
	}
}

// TestFixture_ConversionMath covers scenario 1 (empty key fails) and
// scenario 2 (reverse conversion of a math expression) from the
// specification's end-to-end scenario table.
func TestFixture_ConversionMath(t *testing.T) {
	results, summary := runFixtureFile(t, "conversion_math.json")
	requireAllPassed(t, results, summary)
}

// TestFixture_ResizeGrow covers scenario 4: single-offset grow resize.
func TestFixture_ResizeGrow(t *testing.T) {
	results, summary := runFixtureFile(t, "resize_grow.json")
	requireAllPassed(t, results, summary)
}

// TestFixture_ResizeMultisize covers scenario 5: multi-size resize leaving
// a trailing remainder segment.
func TestFixture_ResizeMultisize(t *testing.T) {
	results, summary := runFixtureFile(t, "resize_multisize.json")
	requireAllPassed(t, results, summary)
}

// TestFixture_ReconstructHistory covers scenarios 6 and 7.
func TestFixture_ReconstructHistory(t *testing.T) {
	results, summary := runFixtureFile(t, "reconstruct_history.json")
	requireAllPassed(t, results, summary)
}

// TestFixture_PartialSuggestionCommit covers scenario 8.
func TestFixture_PartialSuggestionCommit(t *testing.T) {
	results, summary := runFixtureFile(t, "partial_suggestion_commit.json")
	requireAllPassed(t, results, summary)
}

// TestLoadFixture_NotFound verifies error on missing file.
func TestLoadFixture_NotFound(t *testing.T) {
	_, err := LoadFixture("testdata/nonexistent.json")
	if err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}

// TestLoadFixture_Malformed verifies error on invalid JSON.
func TestLoadFixture_Malformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(path, []byte("{not valid json}"), 0644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}

	_, err := LoadFixture(path)
	if err == nil {
		t.Fatal("expected error for malformed JSON, got nil")
	}
}

// #endregion fixture-tests
