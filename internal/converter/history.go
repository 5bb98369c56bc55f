package converter

import (
	"github.com/nmuraoka/convergo/internal/candset"
	"github.com/nmuraoka/convergo/internal/convmodel"
	"github.com/nmuraoka/convergo/internal/script"
)

// #region reconstruct-history

// ReconstructHistory implements §4.D.10: reset, extract the last
// same-script token of precedingText, and accept only NUMBER or ALPHABET
// tokens. The accepted token becomes the sole HISTORY segment: its key and
// the candidate's Key/ContentKey are half-width-folded, while the
// candidate's Value/ContentValue keep the original token. NO_LEARNING is
// set since this candidate was never actually converted.
func (c *Converter) ReconstructHistory(segs *candset.Segments, precedingText string) bool {
	c.ResetConversion(segs)

	token, t, ok := script.ExtractLastTokenOfSameScript(precedingText)
	if !ok {
		return false
	}

	matcher := c.posMatcher()
	var id uint16
	switch t {
	case script.Number:
		if matcher == nil {
			return false
		}
		id = matcher.GetNumberId()
	case script.Alphabet:
		if matcher == nil {
			return false
		}
		id = matcher.GetUniqueNounId()
	default:
		return false
	}

	key := script.FoldToHalfWidth(token)
	seg := segs.AddSegment()
	seg.Key = key
	cand := seg.PushBackCandidate()
	cand.Key = key
	cand.Value = token
	cand.ContentKey = key
	cand.ContentValue = token
	cand.Lid = id
	cand.Rid = id
	cand.Attributes = candset.NoLearning

	segs.PromoteAllToHistory()
	return true
}

func (c *Converter) posMatcher() convmodel.POSMatcher {
	if c.modules == nil {
		return nil
	}
	return c.modules.POSMatcher
}

// #endregion
