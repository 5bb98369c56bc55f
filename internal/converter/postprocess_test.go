package converter

import (
	"testing"

	"github.com/nmuraoka/convergo/internal/candset"
	"github.com/nmuraoka/convergo/internal/convfake"
	"github.com/nmuraoka/convergo/internal/convmodel"
)

func TestRewriteFalseSkipsSuppression(t *testing.T) {
	ic := convfake.NewImmutableConverter(map[string][]convfake.Entry{
		"あ": {{Value: "forbidden", Lid: 1, Rid: 1, Cost: 1}},
	})
	predictor := convfake.NewPredictor(nil)
	rewriter := &alwaysFalseRewriter{}
	suppression := convfake.NewSuppressionDictionary([2]string{"あ", "forbidden"})
	modules := convmodel.NewModules(ic, convfake.NewPOSMatcher(1, 2, 3), suppression)
	c := New(modules, predictor, rewriter, nil)

	segs := candset.New()
	c.SetKey(segs, "あ")
	req := convmodel.NewConversionRequest(convmodel.Conversion)
	ic.ConvertForRequest(req, segs)

	c.postProcess(segs, req)

	seg := segs.ConversionSegment(0)
	if seg.CandidatesSize() != 1 {
		t.Fatalf("expected suppression to be skipped when rewrite fails, got %d candidates", seg.CandidatesSize())
	}
}

type alwaysFalseRewriter struct{}

func (alwaysFalseRewriter) Rewrite(*convmodel.ConversionRequest, *candset.Segments) bool { return false }
func (alwaysFalseRewriter) Focus(*candset.Segments, int, int) bool                       { return true }
func (alwaysFalseRewriter) Finish(*convmodel.ConversionRequest, *candset.Segments)        {}

func TestSuppressionRemovesForbiddenCandidates(t *testing.T) {
	c := newTestConverter(map[string][]convfake.Entry{
		"あ": {
			{Value: "ok", Lid: 1, Rid: 1, Cost: 1},
			{Value: "forbidden", Lid: 1, Rid: 1, Cost: 1},
		},
	}, [2]string{"あ", "forbidden"})
	segs := candset.New()

	if !c.StartConversionWithKey(segs, "あ") {
		t.Fatal("expected conversion to succeed")
	}
	seg := segs.ConversionSegment(0)
	for _, cand := range seg.Candidates {
		if cand.Value == "forbidden" {
			t.Fatalf("expected 'forbidden' to be suppressed, got %+v", seg.Candidates)
		}
	}
	if seg.CandidatesSize() != 1 {
		t.Fatalf("expected exactly 1 surviving candidate, got %d", seg.CandidatesSize())
	}
}

func TestTrimCapsToCandidatesSizeLimit(t *testing.T) {
	c := newTestConverter(map[string][]convfake.Entry{
		"あ": {
			{Value: "a", Lid: 1, Rid: 1, Cost: 1},
			{Value: "b", Lid: 1, Rid: 1, Cost: 1},
			{Value: "c", Lid: 1, Rid: 1, Cost: 1},
		},
	})
	segs := candset.New()
	c.SetKey(segs, "あ")
	req := convmodel.NewConversionRequest(convmodel.Conversion).SetCandidatesSizeLimit(2)
	c.convert(segs, "あ", req)

	seg := segs.ConversionSegment(0)
	if seg.CandidatesSize() != 2 {
		t.Fatalf("expected candidates trimmed to 2, got %d", seg.CandidatesSize())
	}
}

func TestTrimNoLimitLeavesCandidatesAlone(t *testing.T) {
	c := newTestConverter(map[string][]convfake.Entry{
		"あ": {
			{Value: "a", Lid: 1, Rid: 1, Cost: 1},
			{Value: "b", Lid: 1, Rid: 1, Cost: 1},
		},
	})
	segs := candset.New()
	if !c.StartConversionWithKey(segs, "あ") {
		t.Fatal("expected conversion to succeed")
	}
	if segs.ConversionSegment(0).CandidatesSize() != 2 {
		t.Fatalf("expected both candidates retained, got %d", segs.ConversionSegment(0).CandidatesSize())
	}
}
