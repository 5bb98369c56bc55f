// Package convmodel defines the collaborator surface the converter depends
// on: the lattice converter, predictor, rewriter chain, suppression
// dictionary and POS matcher it is handed at construction time, plus the
// per-call request and module bundle. convmodel never implements any of
// these itself — internal/convfake holds test doubles, which
// cmd/convertdemo also wires into its demo REPL.
package convmodel

import "github.com/nmuraoka/convergo/internal/candset"

// #region immutable-converter

// ImmutableConverter runs the underlying lattice search and fills segments
// with ranked candidates. "Immutable" names the role, not the Go type: the
// converter holds one as a borrowed, never-owned dependency.
type ImmutableConverter interface {
	// ConvertForRequest fills candidates over segs's existing keys, and may
	// re-segment where segments are still FREE. A false return is
	// recoverable — rewriters may still produce valid candidates.
	ConvertForRequest(req *ConversionRequest, segs *candset.Segments) bool
}

// #endregion immutable-converter

// #region predictor

// Predictor appends prediction/suggestion candidates to a conversion
// segment and owns whatever learning state backs Finish and Revert.
type Predictor interface {
	// PredictForRequest appends candidates to the sole conversion segment.
	PredictForRequest(req *ConversionRequest, segs *candset.Segments) bool

	// Finish commits learning for the candidates segs now holds.
	Finish(req *ConversionRequest, segs *candset.Segments)

	// Revert undoes learning recorded for segs's current revert entries.
	Revert(segs *candset.Segments)
}

// #endregion predictor

// #region rewriter

// Rewriter mutates segments post-conversion: reranking, suppressing, or
// annotating candidates. The converter runs one Rewriter, itself typically
// composed of an ordered chain by the caller wiring Modules.
type Rewriter interface {
	// Rewrite adjusts segs in place according to req. A false return skips
	// suppression-dictionary filtering for this call.
	Rewrite(req *ConversionRequest, segs *candset.Segments) bool

	// Focus is invoked by the converter's FocusSegmentValue when the user
	// focuses a candidate, giving the rewriter a chance to record the
	// choice. The commit operations do not call it.
	Focus(segs *candset.Segments, segmentIndex, candidateIndex int) bool

	// Finish commits any rewriter-side learning state.
	Finish(req *ConversionRequest, segs *candset.Segments)
}

// #endregion rewriter

// #region suppression

// SuppressionDictionary reports whether a candidate's (key, value) pair must
// never be surfaced, regardless of what the lattice or predictor produced.
type SuppressionDictionary interface {
	IsEmpty() bool
	SuppressEntry(key, value string) bool
}

// #endregion suppression

// #region pos-matcher

// POSMatcher resolves the fixed-at-init part-of-speech ids CompletePosIds
// and ReconstructHistory need.
type POSMatcher interface {
	GetGeneralNounId() uint16
	GetNumberId() uint16
	GetUniqueNounId() uint16
}

// #endregion pos-matcher

// #region composer

// Composer is the upstream keystroke→reading state and cursor the
// Start* dispatchers pull a key from.
type Composer interface {
	GetQueryForConversion() string
	GetQueryForPrediction() string
	GetCursor() int
	GetLength() int
}

// #endregion composer
