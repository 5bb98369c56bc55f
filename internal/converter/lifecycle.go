package converter

import (
	"github.com/nmuraoka/convergo/internal/candset"
	"github.com/nmuraoka/convergo/internal/convmodel"
)

// #region finish

// FinishConversion implements §4.D.8: records usage stats for every
// conversion segment, retypes SUBMITTED segments to FIXED_VALUE while
// completing POS ids on every segment's top candidate, clears the revert
// log, runs the rewriter and predictor commit hooks, then trims the
// segment list down to the history budget and re-types what remains as
// HISTORY.
func (c *Converter) FinishConversion(segs *candset.Segments) bool {
	c.commitUsageStats(segs, segs.HistorySegmentsSize(), segs.ConversionSegmentsSize())

	all := segs.All()
	for i := range all {
		seg := &all[i]
		if seg.Type == candset.Submitted {
			seg.Type = candset.FixedValue
		}
		if seg.CandidatesSize() > 0 {
			c.completePosIds(&seg.Candidates[0])
		}
	}
	segs.ClearRevertEntries()

	req := convmodel.NewConversionRequest(convmodel.Conversion)
	if c.rewriter != nil {
		c.rewriter.Finish(req, segs)
	}
	if c.predictor != nil {
		c.predictor.Finish(req, segs)
	}

	if overflow := segs.SegmentsSize() - segs.MaxHistorySegmentsSize(); overflow > 0 {
		segs.EraseSegments(0, overflow)
	}
	segs.PromoteAllToHistory()
	return true
}

// #endregion

// #region cancel-reset-revert

// CancelConversion clears every conversion segment, leaving history intact.
func (c *Converter) CancelConversion(segs *candset.Segments) {
	segs.ClearConversionSegments()
}

// ResetConversion clears everything: history, conversion segments, and the
// revert log.
func (c *Converter) ResetConversion(segs *candset.Segments) {
	segs.Clear()
}

// RevertConversion undoes predictor-side learning for the pending revert
// log, if any, then clears it. A no-op when the log is empty.
func (c *Converter) RevertConversion(segs *candset.Segments) {
	if len(segs.RevertEntries()) == 0 {
		return
	}
	if c.predictor != nil {
		c.predictor.Revert(segs)
	}
	segs.ClearRevertEntries()
}

// #endregion
