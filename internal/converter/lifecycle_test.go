package converter

import (
	"testing"

	"github.com/nmuraoka/convergo/internal/candset"
	"github.com/nmuraoka/convergo/internal/convfake"
)

func TestFinishConversionPromotesToHistoryWithinBudget(t *testing.T) {
	c := newTestConverter(map[string][]convfake.Entry{
		"あ": {{Value: "a", Lid: 7, Rid: 7, Cost: 1}},
	})
	segs := candset.New()
	c.StartConversionWithKey(segs, "あ")

	if !c.FinishConversion(segs) {
		t.Fatal("expected FinishConversion to succeed")
	}
	if segs.HistorySegmentsSize() != 1 || segs.ConversionSegmentsSize() != 0 {
		t.Fatalf("expected 1 history segment and 0 conversion segments, got history=%d conversion=%d",
			segs.HistorySegmentsSize(), segs.ConversionSegmentsSize())
	}
	if segs.Segment(0).Type != candset.History {
		t.Fatalf("expected segment retyped HISTORY, got %s", segs.Segment(0).Type)
	}
	if segs.Segment(0).Candidates[0].Lid != 7 {
		t.Errorf("expected the already-assigned lid 7 to be left alone, got %d", segs.Segment(0).Candidates[0].Lid)
	}
}

func TestFinishConversionTrimsToHistoryBudget(t *testing.T) {
	c := newTestConverter(nil)
	segs := candset.New()
	segs.SetMaxHistorySegmentsSize(2)
	for _, key := range []string{"a", "b", "c", "d"} {
		seg := segs.AddSegment()
		seg.Key = key
		seg.PushBackCandidate().Value = key
	}

	if !c.FinishConversion(segs) {
		t.Fatal("expected FinishConversion to succeed")
	}
	if segs.SegmentsSize() != 2 {
		t.Fatalf("expected trimmed to history budget 2, got %d", segs.SegmentsSize())
	}
	if segs.Segment(0).Key != "c" || segs.Segment(1).Key != "d" {
		t.Fatalf("expected the last 2 segments retained in order, got %+v", segs.All())
	}
}

func TestFinishConversionClearsRevertLog(t *testing.T) {
	c := newTestConverter(nil)
	segs := candset.New()
	segs.AddSegment().Key = "あ"
	segs.AddRevertEntry(candset.RevertEntry{Token: "t"})

	c.FinishConversion(segs)
	if len(segs.RevertEntries()) != 0 {
		t.Fatal("expected revert log cleared by FinishConversion")
	}
}

func TestFinishConversionPromotesSubmittedSegmentToHistory(t *testing.T) {
	c := newTestConverter(nil)
	segs := candset.New()
	seg := segs.AddSegment()
	seg.Key = "あ"
	seg.Type = candset.Submitted
	seg.PushBackCandidate().Value = "a"

	c.FinishConversion(segs)
	if segs.Segment(0).Type != candset.History {
		t.Fatalf("expected final type HISTORY after promotion, got %s", segs.Segment(0).Type)
	}
}

func TestCancelConversionPreservesHistory(t *testing.T) {
	c := newTestConverter(nil)
	segs := candset.New()
	segs.AddSegment().Key = "hist"
	segs.PromoteAllToHistory()
	segs.AddSegment().Key = "conv"

	c.CancelConversion(segs)
	if segs.HistorySegmentsSize() != 1 || segs.Segment(0).Key != "hist" {
		t.Fatalf("expected history segment 'hist' preserved bitwise, got %+v", segs.Segment(0))
	}
	if segs.ConversionSegmentsSize() != 0 {
		t.Fatalf("expected conversion segments cleared, got %d", segs.ConversionSegmentsSize())
	}
}

func TestResetConversionClearsEverything(t *testing.T) {
	c := newTestConverter(nil)
	segs := candset.New()
	segs.AddSegment().Key = "hist"
	segs.PromoteAllToHistory()
	segs.AddSegment().Key = "conv"

	c.ResetConversion(segs)
	if segs.SegmentsSize() != 0 {
		t.Fatalf("expected all segments cleared, got %d", segs.SegmentsSize())
	}
}

func TestFinishThenResetEquivalentToResetAlone(t *testing.T) {
	build := func() *candset.Segments {
		segs := candset.New()
		seg := segs.AddSegment()
		seg.Key = "あ"
		seg.PushBackCandidate().Value = "a"
		return segs
	}

	c := newTestConverter(nil)

	finishThenReset := build()
	c.FinishConversion(finishThenReset)
	c.ResetConversion(finishThenReset)

	resetAlone := build()
	c.ResetConversion(resetAlone)

	if finishThenReset.SegmentsSize() != resetAlone.SegmentsSize() {
		t.Fatalf("expected observational equivalence, got %d vs %d segments",
			finishThenReset.SegmentsSize(), resetAlone.SegmentsSize())
	}
}

func TestRevertConversionNoOpWhenLogEmpty(t *testing.T) {
	c := newTestConverter(nil)
	segs := candset.New()
	c.RevertConversion(segs) // must not panic even with a nil predictor path untouched
}

func TestRevertConversionCallsPredictorAndClearsLog(t *testing.T) {
	predictor := convfake.NewPredictor(nil)
	c := New(nil, predictor, convfake.NewRewriter(), nil)
	segs := candset.New()
	segs.AddRevertEntry(candset.RevertEntry{Token: "t1"})

	c.RevertConversion(segs)
	if len(segs.RevertEntries()) != 0 {
		t.Fatal("expected revert log cleared")
	}
}
