package converter

import (
	"github.com/nmuraoka/convergo/internal/candset"
	"github.com/nmuraoka/convergo/internal/convmodel"
)

// #region post-process

// postProcess runs the two-step common post-processing of §4.D.1 after any
// delegate call that can populate candidates.
func (c *Converter) postProcess(segs *candset.Segments, req *convmodel.ConversionRequest) {
	c.rewriteAndSuppress(segs, req)
	c.trim(segs, req)
}

// #endregion

// #region rewrite-and-suppress

// rewriteAndSuppress invokes the rewriter; a false return stops here and
// skips suppression entirely. Otherwise, if the suppression dictionary is
// non-empty, every conversion segment has its forbidden (key, value)
// candidates removed.
func (c *Converter) rewriteAndSuppress(segs *candset.Segments, req *convmodel.ConversionRequest) {
	if c.rewriter != nil {
		if !c.rewriter.Rewrite(req, segs) {
			return
		}
	}

	dict := c.suppressionDictionary()
	if dict == nil || dict.IsEmpty() {
		return
	}

	n := segs.ConversionSegmentsSize()
	for i := 0; i < n; i++ {
		seg := segs.ConversionSegment(i)
		kept := seg.Candidates[:0]
		for _, cand := range seg.Candidates {
			if dict.SuppressEntry(cand.Key, cand.Value) {
				continue
			}
			kept = append(kept, cand)
		}
		seg.Candidates = kept
	}
}

func (c *Converter) suppressionDictionary() convmodel.SuppressionDictionary {
	if c.modules == nil {
		return nil
	}
	return c.modules.SuppressionDictionary
}

// #endregion

// #region trim

// trim caps each conversion segment's candidate list to
// max(1, limit - meta_candidates_size) entries, retaining the head, when
// the request carries a candidates-size limit.
func (c *Converter) trim(segs *candset.Segments, req *convmodel.ConversionRequest) {
	if req == nil || !req.HasCandidatesSizeLimit() {
		return
	}
	limit := req.CandidatesSizeLimit()

	n := segs.ConversionSegmentsSize()
	for i := 0; i < n; i++ {
		seg := segs.ConversionSegment(i)
		maxLen := limit - seg.MetaCandidatesSize()
		if maxLen < 1 {
			maxLen = 1
		}
		if seg.CandidatesSize() > maxLen {
			seg.Candidates = seg.Candidates[:maxLen]
		}
	}
}

// #endregion
