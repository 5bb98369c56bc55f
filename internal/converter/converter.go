// Package converter is the conversion session state machine: given a
// caller-owned candset.Segments and a convmodel.ConversionRequest, it
// mutates Segments through SetKey and the Start* dispatchers, delegating
// baseline segmentation to an ImmutableConverter, suggestion/prediction
// candidates to a Predictor, and post-processing to a Rewriter chain.
package converter

// #region imports
import (
	"log"

	"github.com/nmuraoka/convergo/internal/candset"
	"github.com/nmuraoka/convergo/internal/convmodel"
	"github.com/nmuraoka/convergo/internal/mathexpr"
	"github.com/nmuraoka/convergo/internal/usagestats"
)

// #endregion

// #region converter-struct

// Converter is the top-level coordinator described in §4.D. It borrows its
// immutable converter, POS matcher, and suppression dictionary from a
// Modules aggregate, and exclusively owns its predictor and rewriter.
type Converter struct {
	modules   *convmodel.Modules
	predictor convmodel.Predictor
	rewriter  convmodel.Rewriter
	stats     usagestats.Sink
}

// #endregion

// #region constructor

// New returns a fully wired Converter. predictor and rewriter become
// exclusively owned by the returned Converter; modules is borrowed and
// must outlive it. stats may be nil, in which case usage-stats calls are
// discarded via usagestats.NewNoop.
func New(modules *convmodel.Modules, predictor convmodel.Predictor, rewriter convmodel.Rewriter, stats usagestats.Sink) *Converter {
	if stats == nil {
		stats = usagestats.NewNoop()
	}
	return &Converter{
		modules:   modules,
		predictor: predictor,
		rewriter:  rewriter,
		stats:     stats,
	}
}

// #endregion

// #region set-key

// SetKey clears every conversion segment and appends a single FREE segment
// whose key is the supplied reading. It resets the history budget to
// candset.DefaultMaxHistorySegmentsSize, matching §4.D.2.
func (c *Converter) SetKey(segs *candset.Segments, key string) {
	segs.ClearConversionSegments()
	seg := segs.AddSegment()
	seg.Key = key
	seg.Type = candset.Free
	segs.SetMaxHistorySegmentsSize(candset.DefaultMaxHistorySegmentsSize)
}

// #endregion

// #region convert

// convert implements §4.D.3: SetKey, delegate to the immutable converter
// (a false return is a warning, not a failure), then common
// post-processing. Returns the validity predicate of invariant 3.
func (c *Converter) convert(segs *candset.Segments, key string, req *convmodel.ConversionRequest) bool {
	c.SetKey(segs, key)
	if ic := c.immutableConverter(); ic != nil {
		if !ic.ConvertForRequest(req, segs) {
			log.Printf("[CONV] immutable converter returned false for key=%q (non-fatal)", key)
		}
	}
	c.postProcess(segs, req)
	return validConversion(segs, req)
}

// #endregion

// #region predict

// predict implements §4.D.4. SetKey is omitted iff the request does not
// set ShouldCallSetKeyInPrediction and there is already exactly one
// conversion segment whose key equals key; otherwise SetKey runs.
func (c *Converter) predict(segs *candset.Segments, key string, req *convmodel.ConversionRequest) bool {
	if req.ShouldCallSetKeyInPrediction() || !singleConversionSegmentKeyed(segs, key) {
		c.SetKey(segs, key)
	}

	if c.predictor != nil {
		if !c.predictor.PredictForRequest(req, segs) {
			log.Printf("[CONV] predictor returned false for key=%q (non-fatal)", key)
		}
	}
	c.postProcess(segs, req)

	switch req.Type() {
	case convmodel.PartialPrediction, convmodel.PartialSuggestion:
		markPartiallyConsumed(segs, key)
	}

	return validConversion(segs, req)
}

// singleConversionSegmentKeyed reports whether segs has exactly one
// conversion segment and its key equals key.
func singleConversionSegmentKeyed(segs *candset.Segments, key string) bool {
	if segs.ConversionSegmentsSize() != 1 {
		return false
	}
	seg := segs.ConversionSegment(0)
	return seg != nil && seg.Key == key
}

// markPartiallyConsumed sets PARTIALLY_KEY_CONSUMED and consumed_key_size
// on every candidate and meta-candidate of the sole conversion segment that
// doesn't already carry the attribute, per §4.D.4.
func markPartiallyConsumed(segs *candset.Segments, key string) {
	seg := segs.ConversionSegment(0)
	if seg == nil {
		return
	}
	size := uint16(len([]rune(key)))
	mark := func(cand *candset.Candidate) {
		if cand.Attributes.Has(candset.PartiallyKeyConsumed) {
			return
		}
		cand.Attributes |= candset.PartiallyKeyConsumed
		cand.ConsumedKeySize = size
	}
	for i := range seg.Candidates {
		mark(&seg.Candidates[i])
	}
	for i := range seg.MetaCandidates {
		mark(&seg.MetaCandidates[i])
	}
}

// validConversion implements invariant 3: every conversion segment has at
// least one candidate, or — on a mobile request, one with both
// zero-query-suggestion and mixed-conversion set — at least one meta
// candidate.
func validConversion(segs *candset.Segments, req *convmodel.ConversionRequest) bool {
	mobile := req != nil && req.ZeroQuerySuggestion() && req.MixedConversion()
	n := segs.ConversionSegmentsSize()
	if n == 0 {
		return false
	}
	for i := 0; i < n; i++ {
		seg := segs.ConversionSegment(i)
		if seg.CandidatesSize() >= 1 {
			continue
		}
		if mobile && seg.MetaCandidatesSize() >= 1 {
			continue
		}
		return false
	}
	return true
}

func (c *Converter) immutableConverter() convmodel.ImmutableConverter {
	if c.modules == nil {
		return nil
	}
	return c.modules.ImmutableConverter
}

// #endregion

// #region start-dispatchers

// StartConversionWithKey runs plain conversion over a caller-supplied key,
// skipping the composer entirely.
func (c *Converter) StartConversionWithKey(segs *candset.Segments, key string) bool {
	if key == "" {
		return false
	}
	req := convmodel.NewConversionRequest(convmodel.Conversion)
	return c.convert(segs, key, req)
}

// StartConversion pulls its key from req's composer, choosing
// GetQueryForConversion or GetQueryForPrediction according to
// ComposerKeySelection, per §4.D.5. An empty key fails.
func (c *Converter) StartConversion(segs *candset.Segments, req *convmodel.ConversionRequest) bool {
	if !req.HasComposer() {
		return false
	}
	key := req.Composer().GetQueryForConversion()
	if req.ComposerKeySelection() {
		key = req.Composer().GetQueryForPrediction()
	}
	if key == "" {
		return false
	}
	req.SetType(convmodel.Conversion)
	return c.convert(segs, key, req)
}

// StartPredictionWithKey runs prediction over a caller-supplied key.
func (c *Converter) StartPredictionWithKey(segs *candset.Segments, key string) bool {
	req := convmodel.NewConversionRequest(convmodel.Prediction)
	return c.predict(segs, key, req)
}

// StartPrediction pulls its key from req's composer via
// GetQueryForPrediction.
func (c *Converter) StartPrediction(segs *candset.Segments, req *convmodel.ConversionRequest) bool {
	if !req.HasComposer() {
		return false
	}
	req.SetType(convmodel.Prediction)
	return c.predict(segs, req.Composer().GetQueryForPrediction(), req)
}

// StartSuggestionWithKey runs suggestion over a caller-supplied key.
func (c *Converter) StartSuggestionWithKey(segs *candset.Segments, key string) bool {
	req := convmodel.NewConversionRequest(convmodel.Suggestion)
	return c.predict(segs, key, req)
}

// StartSuggestion pulls its key from req's composer via
// GetQueryForPrediction.
func (c *Converter) StartSuggestion(segs *candset.Segments, req *convmodel.ConversionRequest) bool {
	if !req.HasComposer() {
		return false
	}
	req.SetType(convmodel.Suggestion)
	return c.predict(segs, req.Composer().GetQueryForPrediction(), req)
}

// StartPartialPrediction implements §4.D.5's partial dispatch: at cursor 0
// or length it falls back to StartPrediction, which stamps the non-partial
// PREDICTION request type, so no candidate is marked PARTIALLY_KEY_CONSUMED.
func (c *Converter) StartPartialPrediction(segs *candset.Segments, req *convmodel.ConversionRequest) bool {
	return c.startPartial(segs, req, convmodel.PartialPrediction)
}

// StartPartialSuggestion is StartPartialPrediction's SUGGESTION-family twin.
func (c *Converter) StartPartialSuggestion(segs *candset.Segments, req *convmodel.ConversionRequest) bool {
	return c.startPartial(segs, req, convmodel.PartialSuggestion)
}

func (c *Converter) startPartial(segs *candset.Segments, req *convmodel.ConversionRequest, t convmodel.RequestType) bool {
	if !req.HasComposer() {
		return false
	}
	composer := req.Composer()
	cursor, length := composer.GetCursor(), composer.GetLength()

	if cursor == 0 || cursor == length {
		if t == convmodel.PartialSuggestion {
			return c.StartSuggestion(segs, req)
		}
		return c.StartPrediction(segs, req)
	}

	req.SetType(t)
	full := composer.GetQueryForConversion()
	key := sliceChars(full, cursor)
	return c.predict(segs, key, req)
}

func sliceChars(s string, n int) string {
	runes := []rune(s)
	if n > len(runes) {
		n = len(runes)
	}
	if n < 0 {
		n = 0
	}
	return string(runes[:n])
}

// StartPartialPredictionWithKey runs a partial prediction over a
// caller-supplied key, skipping the composer.
func (c *Converter) StartPartialPredictionWithKey(segs *candset.Segments, key string) bool {
	req := convmodel.NewConversionRequest(convmodel.PartialPrediction)
	return c.predict(segs, key, req)
}

// StartPartialSuggestionWithKey runs a partial suggestion over a
// caller-supplied key, skipping the composer.
func (c *Converter) StartPartialSuggestionWithKey(segs *candset.Segments, key string) bool {
	req := convmodel.NewConversionRequest(convmodel.PartialSuggestion)
	return c.predict(segs, key, req)
}

// #endregion

// #region reverse-conversion

// StartReverseConversion implements §4.D.6: reset, SetKey(key), then try
// math normalisation first. If that succeeds the whole pipeline
// short-circuits: one candidate is appended and the immutable converter is
// never invoked. Any empty segment or empty top-candidate value from the
// converter path is a hard failure that resets segs.
func (c *Converter) StartReverseConversion(segs *candset.Segments, key string) bool {
	c.ResetConversion(segs)
	c.SetKey(segs, key)

	if normalised, ok := mathexpr.Normalize(key); ok {
		seg := segs.ConversionSegment(0)
		cand := seg.PushBackCandidate()
		cand.Key = key
		cand.Value = normalised
		return true
	}

	req := convmodel.NewConversionRequest(convmodel.ReverseConversion)
	ic := c.immutableConverter()
	if ic == nil || !ic.ConvertForRequest(req, segs) {
		c.ResetConversion(segs)
		return false
	}

	n := segs.ConversionSegmentsSize()
	for i := 0; i < n; i++ {
		seg := segs.ConversionSegment(i)
		if seg.CandidatesSize() == 0 || seg.Candidates[0].Value == "" {
			c.ResetConversion(segs)
			return false
		}
	}
	return true
}

// #endregion
