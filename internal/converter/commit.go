package converter

import (
	"log"

	"github.com/nmuraoka/convergo/internal/candset"
)

// #region commit-internal

// commitSegmentValueInternal is shared by CommitSegmentValue,
// CommitPartialSuggestionSegmentValue, and CommitSegments: it moves the
// chosen candidate to position 0, retypes the segment, and marks RERANKED
// when the committed candidate wasn't already the top one. candIdx may be
// negative to address a meta candidate, down to -candset.NumT13nTypes.
func (c *Converter) commitSegmentValueInternal(segs *candset.Segments, segIdx, candIdx int, newType candset.SegmentType) bool {
	abs, ok := segs.ConversionSegmentIndex(segIdx)
	if !ok {
		return false
	}
	seg := segs.Segment(abs)
	if candIdx < -candset.NumT13nTypes || candIdx >= seg.CandidatesSize() {
		return false
	}
	reranked := candIdx != 0
	seg.MoveCandidateToFront(candIdx)
	seg.Type = newType
	if reranked && seg.CandidatesSize() > 0 {
		seg.Candidates[0].Attributes |= candset.Reranked
	}
	return true
}

// #endregion

// #region commit-segment-value

// CommitSegmentValue commits the candidate at candIdx in the
// conversion-relative segment segIdx, fixing it as the segment's value.
func (c *Converter) CommitSegmentValue(segs *candset.Segments, segIdx, candIdx int) bool {
	return c.commitSegmentValueInternal(segs, segIdx, candIdx, candset.FixedValue)
}

// #endregion

// #region commit-partial-suggestion

// CommitPartialSuggestionSegmentValue commits candIdx as SUBMITTED, records
// usage stats for that single segment, then shrinks the segment's key to
// currentKey and inserts a new FREE segment immediately after it keyed by
// newKey. Emits CommitAutoPartialSuggestion when the submitted candidate's
// key character length differs from the segment's pre-shrink key character
// length, otherwise CommitPartialSuggestion.
func (c *Converter) CommitPartialSuggestionSegmentValue(segs *candset.Segments, segIdx, candIdx int, currentKey, newKey string) bool {
	abs, ok := segs.ConversionSegmentIndex(segIdx)
	if !ok {
		return false
	}
	seg := segs.Segment(abs)
	oldKeyLen := len([]rune(seg.Key))

	if !c.commitSegmentValueInternal(segs, segIdx, candIdx, candset.Submitted) {
		return false
	}

	top := seg.Candidates[0]
	if len([]rune(top.Key)) != oldKeyLen {
		c.stats.IncrementCount("CommitAutoPartialSuggestion")
	} else {
		c.stats.IncrementCount("CommitPartialSuggestion")
	}
	c.commitUsageStats(segs, abs, 1)

	seg.Key = currentKey
	newSeg := segs.InsertSegment(abs + 1)
	newSeg.Key = newKey
	newSeg.Type = candset.Free
	return true
}

// #endregion

// #region commit-segments

// CommitSegments commits candidateIndices[i] to the i-th conversion segment,
// in order, retyping each SUBMITTED; FinishConversion later promotes them
// to HISTORY. Records one batch usage-stats entry covering the whole run.
func (c *Converter) CommitSegments(segs *candset.Segments, candidateIndices []int) bool {
	if len(candidateIndices) == 0 {
		return false
	}
	abs, ok := segs.ConversionSegmentIndex(0)
	if !ok {
		return false
	}
	for i, candIdx := range candidateIndices {
		if !c.commitSegmentValueInternal(segs, i, candIdx, candset.Submitted) {
			return false
		}
	}
	c.commitUsageStats(segs, abs, len(candidateIndices))
	return true
}

// #endregion

// #region focus

// FocusSegmentValue delegates to the rewriter's focus hook, giving it a
// chance to record the user's explicit choice. segIdx is translated to an
// absolute segment index before delegating, per §4.D.7.
func (c *Converter) FocusSegmentValue(segs *candset.Segments, segIdx, candIdx int) bool {
	if c.rewriter == nil {
		return false
	}
	abs, ok := segs.ConversionSegmentIndex(segIdx)
	if !ok {
		return false
	}
	return c.rewriter.Focus(segs, abs, candIdx)
}

// #endregion

// #region usage-stats

// commitUsageStats records the per-segment and aggregate timing histograms
// for the submitted range [begin, begin+length). An out-of-range request is
// an invariant violation per §7: it is logged, stats are skipped, and
// segs is left unmutated.
func (c *Converter) commitUsageStats(segs *candset.Segments, begin, length int) {
	if begin < 0 || length < 0 || begin+length > segs.SegmentsSize() {
		log.Printf("[CONV] commit usage stats: begin=%d length=%d exceeds segments_size=%d", begin, length, segs.SegmentsSize())
		return
	}

	all := segs.All()
	submittedLen := 0
	for i := begin; i < begin+length; i++ {
		segLen := len([]rune(all[i].Key))
		submittedLen += segLen
		c.stats.UpdateTiming("SubmittedSegmentLengthx1000", int64(segLen)*1000)
	}
	c.stats.UpdateTiming("SubmittedLengthx1000", int64(submittedLen)*1000)
	c.stats.UpdateTiming("SubmittedSegmentNumberx1000", int64(length)*1000)
	c.stats.IncrementCountBy("SubmittedTotalLength", int64(submittedLen))
}

// #endregion
