package converter

import (
	"github.com/nmuraoka/convergo/internal/candset"
	"github.com/nmuraoka/convergo/internal/convmodel"
)

// #region complete-pos-ids

// maxCandidatesSizeStart, maxCandidatesSizeCap, and maxCandidatesSizeStep
// describe the growing candidate window completePosIds re-invokes the
// immutable converter with: 5, then 55 — the next step (105) exceeds the
// cap and the loop gives up.
const (
	maxCandidatesSizeStart = 5
	maxCandidatesSizeStep  = 50
	maxCandidatesSizeCap   = 80
)

// completePosIds fills in a free-floating candidate's (lid, rid) and
// associated costs, per §4.E. It skips only candidates where both lid and
// rid are already non-zero (converter.cc's `lid != 0 && rid != 0` guard),
// so a one-sided (N, 0) pair is still completed. It also requires a
// non-empty key and value; everything else is left untouched. On failure
// to find a match it leaves (lid, rid) set to (general_noun_id,
// general_noun_id) and keeps the candidate's original costs.
func (c *Converter) completePosIds(cand *candset.Candidate) {
	if cand.Lid != 0 && cand.Rid != 0 {
		return
	}
	if cand.Key == "" || cand.Value == "" {
		return
	}

	matcher := c.posMatcher()
	var generalNounID uint16
	if matcher != nil {
		generalNounID = matcher.GetGeneralNounId()
	}
	cand.Lid, cand.Rid = generalNounID, generalNounID

	ic := c.immutableConverter()
	if ic == nil {
		return
	}

	for size := maxCandidatesSizeStart; size < maxCandidatesSizeCap; size += maxCandidatesSizeStep {
		trial := candset.New()
		seg := trial.AddSegment()
		seg.Key = cand.Key
		seg.Type = candset.Free

		req := convmodel.NewConversionRequest(convmodel.Prediction)
		req.SetCandidatesSizeLimit(size)
		if !ic.ConvertForRequest(req, trial) {
			continue
		}

		result := trial.ConversionSegment(0)
		if result == nil {
			continue
		}
		for i := 0; i < result.CandidatesSize(); i++ {
			found := &result.Candidates[i]
			if found.Value != cand.Value {
				continue
			}
			cand.Lid = found.Lid
			cand.Rid = found.Rid
			cand.Cost = found.Cost
			cand.Wcost = found.Wcost
			cand.StructureCost = found.StructureCost
			return
		}
	}
}

// #endregion
