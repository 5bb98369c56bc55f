package convfake

import (
	"testing"

	"github.com/nmuraoka/convergo/internal/candset"
	"github.com/nmuraoka/convergo/internal/convmodel"
)

func newSingleSegment(key string) *candset.Segments {
	segs := candset.New()
	seg := segs.AddSegment()
	seg.Key = key
	return segs
}

func TestImmutableConverterFillsRegisteredEntries(t *testing.T) {
	ic := NewImmutableConverter(map[string][]Entry{
		"あ": {
			{Value: "a", Lid: 1, Rid: 1, Cost: 1},
			{Value: "b", Lid: 2, Rid: 2, Cost: 2},
		},
	})
	segs := newSingleSegment("あ")

	if !ic.ConvertForRequest(nil, segs) {
		t.Fatal("expected ConvertForRequest to report success")
	}
	seg := segs.ConversionSegment(0)
	if len(seg.Candidates) != 2 || seg.Candidates[0].Value != "a" || seg.Candidates[1].Value != "b" {
		t.Fatalf("expected candidates [a,b] in table order, got %+v", seg.Candidates)
	}
}

func TestImmutableConverterUnknownKeyFails(t *testing.T) {
	ic := NewImmutableConverter(nil)
	segs := newSingleSegment("あ")

	if ic.ConvertForRequest(nil, segs) {
		t.Fatal("expected ConvertForRequest to fail for an unregistered key")
	}
}

func TestImmutableConverterRespectsCandidatesSizeLimit(t *testing.T) {
	ic := NewImmutableConverter(map[string][]Entry{
		"あ": {
			{Value: "a"}, {Value: "b"}, {Value: "c"},
		},
	})
	segs := newSingleSegment("あ")
	req := convmodel.NewConversionRequest(convmodel.Conversion)
	req.SetCandidatesSizeLimit(2)

	ic.ConvertForRequest(req, segs)
	if got := len(segs.ConversionSegment(0).Candidates); got != 2 {
		t.Fatalf("expected candidates capped at 2, got %d", got)
	}
}

func TestPredictorMatchesPrefix(t *testing.T) {
	predictor := NewPredictor(map[string][]Entry{
		"わたしは": {{Value: "渡しは"}},
		"わた":     {{Value: "私"}},
		"こんにちは": {{Value: "今日は"}},
	})
	segs := newSingleSegment("わた")

	if !predictor.PredictForRequest(nil, segs) {
		t.Fatal("expected PredictForRequest to report success")
	}
	seg := segs.ConversionSegment(0)
	if len(seg.Candidates) != 2 {
		t.Fatalf("expected 2 predictions sharing the 'わた' prefix, got %d: %+v", len(seg.Candidates), seg.Candidates)
	}
}

func TestPredictorNoMatchFails(t *testing.T) {
	predictor := NewPredictor(map[string][]Entry{"こんにちは": {{Value: "今日は"}}})
	segs := newSingleSegment("ぜんぜん")

	if predictor.PredictForRequest(nil, segs) {
		t.Fatal("expected PredictForRequest to fail when no reading has key as a prefix")
	}
}

func TestPredictorEmptySegmentsFails(t *testing.T) {
	predictor := NewPredictor(nil)
	segs := candset.New()

	if predictor.PredictForRequest(nil, segs) {
		t.Fatal("expected PredictForRequest to fail with no conversion segment present")
	}
}

func TestPredictorRevertAccumulatesEntries(t *testing.T) {
	predictor := NewPredictor(nil)
	segs := candset.New()
	segs.AddRevertEntry(candset.RevertEntry{Token: "t1"})

	predictor.Revert(segs)
	if len(predictor.reverted) != 1 || predictor.reverted[0].Token != "t1" {
		t.Fatalf("expected reverted to record 1 entry with token t1, got %+v", predictor.reverted)
	}
}

func TestRewriterAlwaysRewrites(t *testing.T) {
	r := NewRewriter()
	if !r.Rewrite(nil, candset.New()) {
		t.Fatal("expected Rewrite to always report success")
	}
}

func TestRewriterRecordsFocusCalls(t *testing.T) {
	r := NewRewriter()
	segs := candset.New()

	if !r.Focus(segs, 1, 2) {
		t.Fatal("expected Focus to report success")
	}
	if len(r.FocusCalls) != 1 || r.FocusCalls[0] != (FocusCall{1, 2}) {
		t.Fatalf("expected FocusCalls to record (1,2), got %+v", r.FocusCalls)
	}
}

func TestSuppressionDictionaryIsEmpty(t *testing.T) {
	empty := NewSuppressionDictionary()
	if !empty.IsEmpty() {
		t.Error("expected a suppression dictionary with no pairs to report empty")
	}

	nonEmpty := NewSuppressionDictionary([2]string{"k", "v"})
	if nonEmpty.IsEmpty() {
		t.Error("expected a suppression dictionary with a pair to report non-empty")
	}
}

func TestSuppressionDictionarySuppressEntry(t *testing.T) {
	sd := NewSuppressionDictionary([2]string{"k", "v"})

	if !sd.SuppressEntry("k", "v") {
		t.Error("expected the registered pair to be suppressed")
	}
	if sd.SuppressEntry("k", "other") {
		t.Error("expected an unregistered pair to not be suppressed")
	}
}

func TestPOSMatcherReturnsFixedIDs(t *testing.T) {
	pm := NewPOSMatcher(1, 2, 3)
	if pm.GetGeneralNounId() != 1 || pm.GetNumberId() != 2 || pm.GetUniqueNounId() != 3 {
		t.Fatalf("expected fixed ids (1,2,3), got (%d,%d,%d)",
			pm.GetGeneralNounId(), pm.GetNumberId(), pm.GetUniqueNounId())
	}
}

func TestComposerCursorAtEndOfQuery(t *testing.T) {
	c := NewComposer("わたしは")
	if c.GetLength() != 4 || c.GetCursor() != 4 {
		t.Fatalf("expected length=cursor=4 runes, got length=%d cursor=%d", c.GetLength(), c.GetCursor())
	}
	if c.GetQueryForConversion() != "わたしは" || c.GetQueryForPrediction() != "わたしは" {
		t.Fatalf("expected both queries to echo the constructor argument, got conv=%q pred=%q",
			c.GetQueryForConversion(), c.GetQueryForPrediction())
	}
}
