package replay

import (
	"fmt"

	"github.com/nmuraoka/convergo/internal/candset"
	"github.com/nmuraoka/convergo/internal/convfake"
	"github.com/nmuraoka/convergo/internal/converter"
	"github.com/nmuraoka/convergo/internal/convmodel"
)

// #region types

// StepResult captures the outcome of replaying one Step.
type StepResult struct {
	Op           string
	Returned     bool
	ExpectReturn bool
	Keys         []string
	ExpectKeys   []string
	Passed       bool
	Mismatch     string
}

// Summary provides aggregate stats from a replay run.
type Summary struct {
	TotalSteps int
	Passed     int
	Failed     int
}

// #endregion types

// #region run

// Run builds a Converter from the fixture's dictionary/predictions/suppress
// tables and plays its Steps in order against one shared candset.Segments,
// checking each step's return value and resulting conversion-segment keys.
func Run(f *Fixture) ([]StepResult, Summary) {
	ic := convfake.NewImmutableConverter(f.Dictionary)
	predictor := convfake.NewPredictor(f.Predictions)
	rewriter := convfake.NewRewriter()
	posMatcher := convfake.NewPOSMatcher(1, 2, 3)

	var suppressPairs [][2]string
	suppressPairs = append(suppressPairs, f.Suppress...)
	suppression := convfake.NewSuppressionDictionary(suppressPairs...)

	modules := convmodel.NewModules(ic, posMatcher, suppression)
	conv := converter.New(modules, predictor, rewriter, nil)
	segs := candset.New()

	results := make([]StepResult, 0, len(f.Steps))
	summary := Summary{}

	for _, step := range f.Steps {
		returned := applyStep(conv, segs, step)
		keys := conversionKeys(segs)

		r := StepResult{
			Op:           step.Op,
			Returned:     returned,
			ExpectReturn: step.ExpectReturn,
			Keys:         keys,
			ExpectKeys:   step.ExpectKeys,
			Passed:       true,
		}
		if returned != step.ExpectReturn {
			r.Passed = false
			r.Mismatch = fmt.Sprintf("return: got %v want %v", returned, step.ExpectReturn)
		} else if step.ExpectKeys != nil && !sameKeys(keys, step.ExpectKeys) {
			r.Passed = false
			r.Mismatch = fmt.Sprintf("keys: got %v want %v", keys, step.ExpectKeys)
		}

		summary.TotalSteps++
		if r.Passed {
			summary.Passed++
		} else {
			summary.Failed++
		}
		results = append(results, r)
	}

	return results, summary
}

// applyStep dispatches one Step to the matching Converter operation. The
// boolean returned by operations that don't naturally return one (Cancel,
// Reset, Revert) is synthesized as true on completion.
func applyStep(conv *converter.Converter, segs *candset.Segments, step Step) bool {
	switch step.Op {
	case "StartConversionWithKey":
		return conv.StartConversionWithKey(segs, step.Key)
	case "StartPredictionWithKey":
		return conv.StartPredictionWithKey(segs, step.Key)
	case "StartSuggestionWithKey":
		return conv.StartSuggestionWithKey(segs, step.Key)
	case "StartPartialPredictionWithKey":
		return conv.StartPartialPredictionWithKey(segs, step.Key)
	case "StartPartialSuggestionWithKey":
		return conv.StartPartialSuggestionWithKey(segs, step.Key)
	case "StartReverseConversion":
		return conv.StartReverseConversion(segs, step.Key)
	case "CommitSegmentValue":
		return conv.CommitSegmentValue(segs, step.SegIdx, step.CandIdx)
	case "CommitPartialSuggestionSegmentValue":
		return conv.CommitPartialSuggestionSegmentValue(segs, step.SegIdx, step.CandIdx, step.CurrentKey, step.NewKey)
	case "CommitSegments":
		return conv.CommitSegments(segs, step.CandidateIndices)
	case "FocusSegmentValue":
		return conv.FocusSegmentValue(segs, step.SegIdx, step.CandIdx)
	case "ResizeSegment":
		return conv.ResizeSegment(segs, step.SegIdx, step.Delta)
	case "ResizeSegmentSizes":
		return conv.ResizeSegmentSizes(segs, step.Start, step.Count, step.Sizes)
	case "ReconstructHistory":
		return conv.ReconstructHistory(segs, step.PrecedingText)
	case "FinishConversion":
		return conv.FinishConversion(segs)
	case "CancelConversion":
		conv.CancelConversion(segs)
		return true
	case "ResetConversion":
		conv.ResetConversion(segs)
		return true
	case "RevertConversion":
		conv.RevertConversion(segs)
		return true
	default:
		return false
	}
}

func conversionKeys(segs *candset.Segments) []string {
	n := segs.ConversionSegmentsSize()
	keys := make([]string, 0, n)
	for i := 0; i < n; i++ {
		keys = append(keys, segs.ConversionSegment(i).Key)
	}
	return keys
}

func sameKeys(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// #endregion run
